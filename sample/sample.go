package sample

import (
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

const ticksPerQuarter = 960

type Note struct {
	Key      uint8
	Velocity uint8
}

// Part describes one track of a generated file. An empty Name produces a
// track without a track name event.
type Part struct {
	Name    string
	Channel uint8
	Notes   []Note
}

func createTrack(p Part, withTempo bool) smf.Track {
	var track smf.Track
	if p.Name != "" {
		track.Add(0, smf.MetaTrackSequenceName(p.Name))
	}
	if withTempo {
		track.Add(0, smf.MetaTempo(120))
	}
	track.Add(0, midi.ControlChange(p.Channel, 7, 100))
	for _, n := range p.Notes {
		track.Add(0, midi.NoteOn(p.Channel, n.Key, n.Velocity))
		track.Add(ticksPerQuarter/2, midi.NoteOff(p.Channel, n.Key))
	}
	track.Close(0)
	return track
}

// Create builds a format 1 file with one track per part. The first track
// also carries the tempo.
func Create(parts ...Part) *smf.SMF {
	res := smf.New()
	res.TimeFormat = smf.MetricTicks(ticksPerQuarter)
	for i, p := range parts {
		res.Add(createTrack(p, i == 0))
	}
	return res
}

// Demo is a three track song: "Drums", an unnamed bass part and "Lead".
func Demo() *smf.SMF {
	return Create(
		Part{
			Name:    "Drums",
			Channel: 9,
			Notes:   []Note{{36, 100}, {38, 90}, {42, 10}, {36, 127}},
		},
		Part{
			Channel: 1,
			Notes:   []Note{{40, 80}, {43, 15}, {45, 64}},
		},
		Part{
			Name:    "Lead",
			Channel: 2,
			Notes:   []Note{{72, 110}, {74, 20}, {76, 5}, {79, 127}},
		},
	)
}
