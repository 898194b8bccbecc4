package pipeline

import (
	"github.com/jsphweid/midisolo/archive"
	"github.com/jsphweid/midisolo/model"
	"github.com/jsphweid/midisolo/variant"
	"github.com/rs/zerolog/log"
)

// Process turns one midi file into a zip holding a solo variant per track
// plus the original. Nothing is returned unless every step succeeds.
func Process(file model.InputFile, amount uint8) (*model.Result, error) {
	variants, err := variant.Generate(file, amount)
	if err != nil {
		return nil, err
	}

	stem, _, err := variant.SplitName(file.Name)
	if err != nil {
		return nil, err
	}

	res, err := archive.Build(variants, stem)
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("file", file.Name).
		Uint8("reduction", amount).
		Int("entries", len(res.FileNames)).
		Int("bytes", len(res.Zip)).
		Msg("processed midi file")
	return res, nil
}
