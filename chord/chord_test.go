package chord

import (
	"testing"

	"github.com/jsphweid/jianpu/notation"
	"github.com/jsphweid/jianpu/track"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/gomidi/midi/v2/smf"
)

func TestCreateChordKey(t *testing.T) {
	assert.Equal(t, "60-64-67", CreateChordKey([]uint8{67, 60, 64}))
	assert.Equal(t, "60", CreateChordKey([]uint8{60}))
	assert.Equal(t, "", CreateChordKey(nil))
}

func render(t *testing.T, lines ...string) *smf.SMF {
	s := smf.New()
	s.TimeFormat = smf.MetricTicks(480)
	for i, line := range lines {
		setup := track.Setup{Instrument: "music_box", Channel: uint8(i), Volume: 80}
		require.NoError(t, track.AppendTo(s, notation.Fold(line, 480), setup))
	}
	return s
}

func TestGetChordsAcrossTracks(t *testing.T) {
	s := render(t, "1 3 5", "5̨ 0 3̨")
	chords := GetChords(s)

	assert.Equal(t, []Chord{
		{Tick: 0, Notes: []uint8{55, 60}},
		{Tick: 480, Notes: []uint8{64}},
		{Tick: 960, Notes: []uint8{52, 67}},
	}, chords)
}

func TestGetChordsLeavesOutSilence(t *testing.T) {
	s := render(t, "1 0 2")
	chords := GetChords(s)
	assert.Equal(t, []Chord{
		{Tick: 0, Notes: []uint8{60}},
		{Tick: 960, Notes: []uint8{62}},
	}, chords)
}

func TestGetChordsSameNoteTwice(t *testing.T) {
	// unison on two channels, one ends earlier
	s := render(t, "1--", "1")
	chords := GetChords(s)
	assert.Equal(t, []Chord{
		{Tick: 0, Notes: []uint8{60}},
	}, chords)
}

func TestCountByKey(t *testing.T) {
	chords := []Chord{
		{Notes: []uint8{60, 64}},
		{Notes: []uint8{64, 60}},
		{Notes: []uint8{62}},
	}
	assert.Equal(t, map[string]int{"60-64": 2}, CountByKey(chords, 2))
	assert.Equal(t, map[string]int{"60-64": 2, "62": 1}, CountByKey(chords, 1))
}

func TestGetChordsEmpty(t *testing.T) {
	assert.Empty(t, GetChords(&smf.SMF{}))
}
