package cmd

import (
	"github.com/jsphweid/midisolo/logger"
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "midisolo",
	Short: "Per-track practice files from a MIDI file",
	Long: `midisolo creates a file for each MIDI track in which every other
track has its note velocities reduced, and bundles them into a zip.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Setup(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log every generated variant")
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
