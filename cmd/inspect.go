package cmd

import (
	"fmt"
	"io"
	"sort"

	"github.com/jsphweid/jianpu/chord"
	"github.com/jsphweid/jianpu/midi"
	"github.com/jsphweid/jianpu/util"
	"github.com/spf13/cobra"
	"gitlab.com/gomidi/midi/v2/smf"
)

var inspectChordSize int

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().IntVar(&inspectChordSize, "chords", 0, "also list chords with at least this many notes")
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <file.mid>",
	Short: "Inspects a MIDI file",
	Long:  `Reads a MIDI file back and prints what each track contains.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := midi.ReadMidiFile(args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "format: %v\n", s.Format())
		fmt.Fprintf(out, "time format: %v\n", s.TimeFormat)
		fmt.Fprintf(out, "tracks: %v\n", len(s.Tracks))
		for i, info := range midi.Describe(s) {
			fmt.Fprintf(out, "track %d: %q\n", i, info.Name)
			fmt.Fprintf(out, "  events: %v notes: %v ticks: %v\n", info.Events, info.Notes, info.Ticks)
			fmt.Fprintf(out, "  tempo: %.2f meter: %v\n", info.Tempo, info.Meter)
			fmt.Fprintf(out, "  channels: %v programs: %v\n", info.Channels, info.Programs)
		}
		if inspectChordSize > 0 {
			printChords(out, s, inspectChordSize)
		}
		return nil
	},
}

func printChords(out io.Writer, s *smf.SMF, minNotes int) {
	counts := chord.CountByKey(chord.GetChords(s), minNotes)
	keys := util.GetKeys(counts)
	sort.SliceStable(keys, func(i, j int) bool {
		return counts[keys[i]] > counts[keys[j]]
	})
	fmt.Fprintf(out, "chords: %v distinct\n", len(keys))
	for _, key := range keys {
		fmt.Fprintf(out, "  %v: %v\n", key, counts[key])
	}
}
