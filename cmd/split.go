package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/jsphweid/midisolo/constants"
	"github.com/jsphweid/midisolo/model"
	"github.com/jsphweid/midisolo/pipeline"
	"github.com/jsphweid/midisolo/store"
	"github.com/jsphweid/midisolo/track"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

type splitOptions struct {
	reduction string
	outDir    string
	bucket    string
}

var splitOpts splitOptions

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	entryStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).PaddingLeft(2)
	pathStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
)

func init() {
	splitCmd.Flags().StringVarP(&splitOpts.reduction, "reduction", "r", strconv.Itoa(constants.DefaultReduction), "how much to lower note velocities of the other tracks (0-127)")
	splitCmd.Flags().StringVarP(&splitOpts.outDir, "out", "o", constants.GetOutDir(), "directory the zip is written to")
	splitCmd.Flags().StringVar(&splitOpts.bucket, "s3-bucket", constants.GetS3Bucket(), "also upload the zip to this S3 bucket")
	rootCmd.AddCommand(splitCmd)
}

var splitCmd = &cobra.Command{
	Use:   "split <file.mid>",
	Short: "Creates a zip with one solo file per track",
	Long: `Creates a zip with one file per track. In each file the named track
plays as written and all other tracks are quieter. The zip also holds
an unmodified copy named {name}_All.{ext}.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := split(cmd.Context(), cmd.OutOrStdout(), args[0], splitOpts)
		return err
	},
}

// split runs the pipeline on the file at path and writes {base}.zip into
// opts.outDir. It returns the path of the written zip.
func split(ctx context.Context, out io.Writer, path string, opts splitOptions) (string, error) {
	amount, err := track.ParseAmount(opts.reduction)
	if err != nil {
		return "", err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrap(err, "Could not read midi file")
	}

	res, err := pipeline.Process(model.InputFile{Name: filepath.Base(path), Data: data}, amount)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(opts.outDir, 0755); err != nil {
		return "", errors.Wrap(err, "Could not create output dir")
	}
	zipPath := filepath.Join(opts.outDir, res.ZipName())
	if err := os.WriteFile(zipPath, res.Zip, 0644); err != nil {
		return "", errors.Wrap(err, "Write failed for zip file")
	}

	if opts.bucket != "" {
		publisher, err := store.NewS3Publisher(opts.bucket)
		if err != nil {
			return "", err
		}
		location, err := publisher.Publish(ctx, res)
		if err != nil {
			return "", err
		}
		log.Info().Str("location", location).Msg("published zip")
	}

	printManifest(out, zipPath, res.FileNames)
	return zipPath, nil
}

func printManifest(out io.Writer, zipPath string, fileNames []string) {
	fmt.Fprintln(out, headerStyle.Render("The following files have been created:"))
	for _, name := range fileNames {
		fmt.Fprintln(out, entryStyle.Render(name))
	}
	fmt.Fprintf(out, "Saved to %s\n", pathStyle.Render(zipPath))
}
