// Package percussion builds the fixed drum loop that runs under the score.
package percussion

import (
	"github.com/jsphweid/jianpu/constants"
	"github.com/jsphweid/jianpu/model"
	"github.com/jsphweid/jianpu/track"
	"gitlab.com/gomidi/midi/v2/smf"
)

// BasicPattern is one 4/4 measure: kick on the downbeat, snare on beat
// three, closed hi-hat on two and four.
func BasicPattern(beatTicks uint32) []model.DrumVoice {
	return []model.DrumVoice{
		{Name: "bass_drum", Note: 35, Offsets: []uint32{0}},
		{Name: "snare", Note: 38, Offsets: []uint32{beatTicks * 2}},
		{Name: "closed_hihat", Note: 42, Offsets: []uint32{beatTicks, beatTicks * 3}},
	}
}

// Generate replicates the pattern over the given number of sections. Every
// hit is half a beat long and starts right after the previous one, except
// the downbeat of each section after the first, which waits half a beat.
func Generate(pattern []model.DrumVoice, sections int, beatTicks uint32) model.Phrase {
	half := beatTicks / 2

	var phrase model.Phrase
	for section := 0; section < sections; section++ {
		for _, voice := range pattern {
			for _, offset := range voice.Offsets {
				var gap uint32
				if section > 0 && offset == 0 {
					gap = half
				}
				phrase.Events = append(phrase.Events, model.Event{
					Pitch:    voice.Note,
					Duration: half,
					Silence:  gap,
				})
			}
		}
	}
	return phrase
}

func Setup() track.Setup {
	return track.Setup{
		Name:     "drums",
		Channel:  constants.DrumChannel,
		Velocity: constants.DrumVelocity,
	}
}

func AppendTo(s *smf.SMF, sections int, beatTicks uint32) error {
	phrase := Generate(BasicPattern(beatTicks), sections, beatTicks)
	return track.AppendTo(s, phrase, Setup())
}
