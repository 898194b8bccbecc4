package track

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/jsphweid/midisolo/constants"
	"github.com/jsphweid/midisolo/errs"
	"github.com/jsphweid/midisolo/util"
	"github.com/pkg/errors"
	"gitlab.com/gomidi/midi/v2/smf"
)

// Name returns the text of the first track name event in t, or "track-{index}"
// when there is none. A first track name that is not valid UTF-8 also falls
// back; later track name events are never consulted.
func Name(t smf.Track, index int) string {
	for _, evt := range t {
		var name string
		if evt.Message.GetMetaTrackName(&name) {
			if utf8.ValidString(name) {
				return name
			}
			break
		}
	}
	return fmt.Sprintf("track-%d", index)
}

// Attenuate returns a copy of t where every note on velocity is lowered by
// amount, floored at 0. Everything else, including deltas, is copied as is.
func Attenuate(t smf.Track, amount uint8) smf.Track {
	res := make(smf.Track, len(t))
	for i, evt := range t {
		msg := append(smf.Message(nil), evt.Message...)
		var channel, key, velocity uint8
		if msg.GetNoteOn(&channel, &key, &velocity) {
			// status, key, velocity
			msg[2] = util.SaturatingSub(velocity, amount)
		}
		res[i] = smf.Event{Delta: evt.Delta, Message: msg}
	}
	return res
}

// ParseAmount validates user input for the velocity reduction.
func ParseAmount(s string) (uint8, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(s), 10, 8)
	if err != nil {
		if numErr, ok := err.(*strconv.NumError); ok && numErr.Err == strconv.ErrRange {
			return 0, errors.Wrap(errs.ErrInvalidAmount, "The number entered is too large. Must be between 0 and 127")
		}
		return 0, errors.Wrap(errs.ErrInvalidAmount, "Invalid number entered for note velocity reduction")
	}
	if n > constants.MaxVelocity {
		return 0, errors.Wrap(errs.ErrInvalidAmount, "The number entered is too large. Must be between 0 and 127")
	}
	return uint8(n), nil
}

func CountNoteOns(t smf.Track) int {
	var count int
	for _, evt := range t {
		var channel, key, velocity uint8
		if evt.Message.GetNoteOn(&channel, &key, &velocity) {
			count++
		}
	}
	return count
}
