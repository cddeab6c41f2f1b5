package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/jsphweid/jianpu/constants"
	"github.com/jsphweid/jianpu/percussion"
	"github.com/jsphweid/jianpu/score"
	"github.com/jsphweid/jianpu/util"
	"github.com/spf13/cobra"
)

var reportScorePath string

func init() {
	rootCmd.AddCommand(reportCmd)
	reportCmd.Flags().StringVar(&reportScorePath, "score", constants.GetScorePath(), "YAML score file (env SCORE_PATH)")
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Creates a report",
	Long:  `Prints the sections of the score and, per part, notes, ticks and bars.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		sc, err := score.LoadOrDefault(reportScorePath)
		if err != nil {
			return err
		}
		summaries, err := score.Summarize(sc)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintf(w, "score: %v\n\n", sc.Title)
		fmt.Fprintln(w, "SECTION\tREPEAT\tCHARS")
		for _, name := range util.GetKeys(sc.Sections) {
			section := sc.Sections[name]
			fmt.Fprintf(w, "%v\t%v\t%v\n", name, max(section.Repeat, 1), len([]rune(score.SectionNotation(section))))
		}

		fmt.Fprintln(w, "\nPART\tNOTES\tSOUNDING\tTOTAL\tBARS")
		var totals []uint64
		for _, s := range summaries {
			fmt.Fprintf(w, "%v\t%v\t%v\t%v\t%.2f\n", s.Name, s.Notes, s.SoundingTicks, s.TotalTicks, s.Bars)
			totals = append(totals, s.TotalTicks)
		}
		fmt.Fprintf(w, "\nall parts, back to back: %v ticks\n", util.Sum(totals))

		if sc.Drums != nil && sc.Drums.Sections > 0 {
			fmt.Fprintf(w, "\nDRUM\tNOTE\tOFFSETS\t(x%v sections)\n", sc.Drums.Sections)
			for _, voice := range percussion.BasicPattern(constants.BeatTicks) {
				fmt.Fprintf(w, "%v\t%v\t%v\n", voice.Name, voice.Note, voice.Offsets)
			}
		}
		return w.Flush()
	},
}
