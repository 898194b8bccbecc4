package cmd

import (
	"fmt"
	"io"

	"github.com/jsphweid/midisolo/midi"
	"github.com/jsphweid/midisolo/track"
	"github.com/jsphweid/midisolo/util"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <file.mid>",
	Short: "Lists the tracks of a midi file",
	Long:  `Lists each track with the name its solo file would get`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return inspect(cmd.OutOrStdout(), args[0])
	},
}

func inspect(out io.Writer, path string) error {
	parsed, err := midi.ReadMidiFile(path)
	if err != nil {
		return err
	}

	counts := make([]int, len(parsed.Tracks))
	for i, t := range parsed.Tracks {
		counts[i] = track.CountNoteOns(t)
		fmt.Fprintf(out, "%d\t%s\t%d note ons\n", i, track.Name(t, i), counts[i])
	}
	fmt.Fprintf(out, "%d tracks, %d note ons\n", len(parsed.Tracks), util.Sum(counts))
	return nil
}
