package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

const version = "0.3.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  `Display the current version of the crossvote CLI.`,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "crossvote version %s\n", version)
		fmt.Fprintln(out, "Moving-average crossover voting backtester")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
