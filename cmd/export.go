package cmd

import (
	"github.com/jsphweid/jianpu/constants"
	"github.com/jsphweid/jianpu/score"
	"github.com/spf13/cobra"
)

var exportScorePath string

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVar(&exportScorePath, "score", constants.GetScorePath(), "YAML score file (env SCORE_PATH)")
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Prints the score as YAML",
	Long:  `Prints the score as YAML. The output of the built-in song is a starting point for new scores.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		sc, err := score.LoadOrDefault(exportScorePath)
		if err != nil {
			return err
		}
		data, err := score.Marshal(sc)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}
