package cmd

import (
	"os"

	"github.com/jsphweid/midisolo/midi"
	"github.com/jsphweid/midisolo/sample"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(demoCmd)
}

var demoCmd = &cobra.Command{
	Use:   "demo [path]",
	Short: "Writes a small three track midi file",
	Long:  `Writes a three track midi file (Drums, an unnamed track, Lead) to try split on`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "demo.mid"
		if len(args) == 1 {
			path = args[0]
		}
		return writeDemo(path)
	},
}

func writeDemo(path string) error {
	data, err := midi.Encode(sample.Demo())
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrap(err, "Write failed for demo file")
	}
	log.Info().Str("path", path).Msg("wrote demo file")
	return nil
}
