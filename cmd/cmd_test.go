package cmd

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/jsphweid/midisolo/errs"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func init() {
	zerolog.SetGlobalLevel(zerolog.Disabled)
}

func demoPath(t *testing.T) string {
	path := filepath.Join(t.TempDir(), "demo.mid")
	if err := writeDemo(path); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestSplitWritesZip(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "out")
	var out bytes.Buffer

	zipPath, err := split(context.Background(), &out, demoPath(t), splitOptions{reduction: "20", outDir: outDir})

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal(filepath.Join(outDir, "demo.zip"), zipPath)

	data, err := os.ReadFile(zipPath)
	assert.NoError(err)
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	assert.NoError(err)

	var names []string
	for _, f := range zr.File {
		names = append(names, f.Name)
		assert.Contains(out.String(), f.Name)
	}
	assert.Equal([]string{"demo_Drums.mid", "demo_track-1.mid", "demo_Lead.mid", "demo_All.mid"}, names)
}

func TestSplitRejectsBadReduction(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "out")

	_, err := split(context.Background(), &bytes.Buffer{}, demoPath(t), splitOptions{reduction: "128", outDir: outDir})

	assert := assert.New(t)
	assert.True(errors.Is(err, errs.ErrInvalidAmount))
	// nothing is written when the run fails
	_, statErr := os.Stat(outDir)
	assert.True(os.IsNotExist(statErr))
}

func TestSplitMissingExtension(t *testing.T) {
	src := demoPath(t)
	noExt := filepath.Join(filepath.Dir(src), "song")
	if err := os.Rename(src, noExt); err != nil {
		t.Fatal(err)
	}

	_, err := split(context.Background(), &bytes.Buffer{}, noExt, splitOptions{reduction: "30", outDir: t.TempDir()})
	assert.True(t, errors.Is(err, errs.ErrMissingExtension))
}

func TestInspect(t *testing.T) {
	var out bytes.Buffer
	err := inspect(&out, demoPath(t))

	assert := assert.New(t)
	assert.NoError(err)
	assert.Contains(out.String(), "0\tDrums\t4 note ons")
	assert.Contains(out.String(), "1\ttrack-1\t3 note ons")
	assert.Contains(out.String(), "2\tLead\t4 note ons")
	assert.Contains(out.String(), "3 tracks, 11 note ons")
}
