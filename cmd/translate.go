package cmd

import (
	"fmt"
	"strings"

	"github.com/jsphweid/jianpu/constants"
	"github.com/jsphweid/jianpu/notation"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(translateCmd)
}

var translateCmd = &cobra.Command{
	Use:   "translate <notation>...",
	Short: "Prints the events of a notation string",
	Long:  `Prints the events of a notation string, one note per line. Arguments are joined with spaces.`,
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		phrase := notation.Fold(strings.Join(args, " "), constants.BeatTicks)
		out := cmd.OutOrStdout()
		for _, e := range phrase.Events {
			fmt.Fprintf(out, "pitch=%d duration=%d silence=%d\n", e.Pitch, e.Duration, e.Silence)
		}
		fmt.Fprintf(out, "tail=%d\n", phrase.Tail)
	},
}
