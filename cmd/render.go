package cmd

import (
	"log/slog"

	"github.com/jsphweid/jianpu/constants"
	"github.com/jsphweid/jianpu/midi"
	"github.com/jsphweid/jianpu/score"
	"github.com/spf13/cobra"
)

var (
	renderScorePath string
	renderOutPath   string
)

func init() {
	rootCmd.AddCommand(renderCmd)
	renderCmd.Flags().StringVar(&renderScorePath, "score", constants.GetScorePath(), "YAML score file (env SCORE_PATH)")
	renderCmd.Flags().StringVarP(&renderOutPath, "out", "o", constants.GetOutputPath(), "output MIDI file (env OUTPUT_PATH)")
}

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Renders the score to a MIDI file",
	Long:  `Renders every part of the score plus the drum loop into one MIDI file.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return Render(renderScorePath, renderOutPath)
	},
}

func Render(scorePath, outPath string) error {
	sc, err := score.LoadOrDefault(scorePath)
	if err != nil {
		return err
	}

	s, err := score.Render(sc, slog.Default())
	if err != nil {
		return err
	}

	if err := midi.WriteMidiFile(outPath, s); err != nil {
		return err
	}
	slog.Info("wrote midi file", "path", outPath, "title", sc.Title, "tracks", len(s.Tracks))
	return nil
}
