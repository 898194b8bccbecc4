package variant

import (
	"fmt"
	"strings"

	"github.com/jsphweid/midisolo/errs"
	"github.com/jsphweid/midisolo/midi"
	"github.com/jsphweid/midisolo/model"
	"github.com/jsphweid/midisolo/track"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"gitlab.com/gomidi/midi/v2/smf"
)

// SplitName splits a file name at its last "." into stem and extension.
func SplitName(name string) (stem string, ext string, err error) {
	i := strings.LastIndex(name, ".")
	if i < 0 {
		return "", "", errors.Wrapf(errs.ErrMissingExtension, "%q", name)
	}
	return name[:i], name[i+1:], nil
}

// solo returns a copy of s where every track except keep has its note on
// velocities lowered by amount.
func solo(s *smf.SMF, keep int, amount uint8) *smf.SMF {
	res := midi.Clone(s)
	for i, t := range s.Tracks {
		if i == keep {
			continue
		}
		res.Tracks[i] = track.Attenuate(t, amount)
	}
	return res
}

// Generate produces one variant per track, in track order, where that track
// plays at full velocity and all others are attenuated, followed by the
// untouched document as "{stem}_All.{ext}".
func Generate(file model.InputFile, amount uint8) ([]model.Variant, error) {
	stem, ext, err := SplitName(file.Name)
	if err != nil {
		return nil, err
	}

	parsed, err := midi.Decode(file.Data)
	if err != nil {
		return nil, err
	}

	res := make([]model.Variant, 0, len(parsed.Tracks)+1)
	for i, t := range parsed.Tracks {
		name := fmt.Sprintf("%s_%s.%s", stem, track.Name(t, i), ext)

		data, err := midi.Encode(solo(parsed, i, amount))
		if err != nil {
			return nil, errors.Wrapf(err, "track %d", i)
		}

		log.Debug().Int("track", i).Str("entry", name).Int("bytes", len(data)).Msg("built variant")
		res = append(res, model.Variant{Name: name, Data: data})
	}

	// gomidi refuses to write a file without tracks; the input already is that file
	data := append([]byte(nil), file.Data...)
	if len(parsed.Tracks) > 0 {
		data, err = midi.Encode(parsed)
		if err != nil {
			return nil, err
		}
	}
	res = append(res, model.Variant{Name: fmt.Sprintf("%s_All.%s", stem, ext), Data: data})

	return res, nil
}
