package midi

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"

	"github.com/jsphweid/midisolo/errs"
	"github.com/pkg/errors"
	"gitlab.com/gomidi/midi/v2/smf"
)

// asFormatError converts a panic from the smf package into an ErrFormat.
// https://github.com/gomidi/midi/issues/20
func asFormatError(op string, e *error) {
	if r := recover(); r != nil {
		*e = errors.Wrapf(errs.ErrFormat, "%s: %v", op, r)
	}
}

// Decode parses a complete Standard MIDI File held in memory.
func Decode(data []byte) (s *smf.SMF, e error) {
	defer asFormatError("decode", &e)

	res, err := smf.ReadFrom(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrapf(errs.ErrFormat, "Error parsing midi file... %s", err.Error())
	}
	if err := checkChunks(data); err != nil {
		return nil, err
	}
	return res, nil
}

// checkChunks walks the MThd chunk and as many MTrk chunks as the header
// declares, failing when a chunk runs past the end of data. smf.ReadFrom
// accepts a last track that is cut short.
func checkChunks(data []byte) error {
	if len(data) < 14 || string(data[0:4]) != "MThd" {
		return errors.Wrap(errs.ErrFormat, "missing MThd header")
	}
	numTracks := int(binary.BigEndian.Uint16(data[10:12]))

	pos := 0
	for seen := -1; seen < numTracks; {
		if len(data)-pos < 8 {
			return errors.Wrapf(errs.ErrFormat, "truncated chunk header at byte %d", pos)
		}
		id := string(data[pos : pos+4])
		length := uint64(binary.BigEndian.Uint32(data[pos+4 : pos+8]))
		if 8+length > uint64(len(data)-pos) {
			return errors.Wrapf(errs.ErrFormat, "%s chunk at byte %d declares %d bytes, %d left", id, pos, length, len(data)-pos-8)
		}
		pos += 8 + int(length)

		switch {
		case seen < 0:
			seen = 0
		case id == "MTrk":
			seen++
		}
	}
	return nil
}

// Encode serializes s. Documents that came out of Decode unchanged encode
// back to the same bytes.
func Encode(s *smf.SMF) (b []byte, e error) {
	defer asFormatError("encode", &e)

	var buf bytes.Buffer
	if _, err := s.WriteTo(&buf); err != nil {
		return nil, errors.Wrapf(errs.ErrFormat, "Error writing midi file... %s", err.Error())
	}
	return buf.Bytes(), nil
}

func ReadMidiFile(filepath string) (*smf.SMF, error) {
	dat, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("Error reading midi file... %w", err)
	}
	return Decode(dat)
}

// Clone returns a copy of s that shares no track or message memory with it.
// The header (format, time format) is carried over as is.
func Clone(s *smf.SMF) *smf.SMF {
	res := *s
	res.Tracks = make([]smf.Track, len(s.Tracks))
	for i, track := range s.Tracks {
		res.Tracks[i] = CloneTrack(track)
	}
	return &res
}

func CloneTrack(track smf.Track) smf.Track {
	res := make(smf.Track, len(track))
	for i, evt := range track {
		res[i] = smf.Event{
			Delta:   evt.Delta,
			Message: append(smf.Message(nil), evt.Message...),
		}
	}
	return res
}
