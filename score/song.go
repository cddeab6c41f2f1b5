package score

import (
	"github.com/jsphweid/jianpu/constants"
	"github.com/jsphweid/jianpu/model"
)

const DefaultID = "hou_lai_de_wo_men"

// Default is the built-in arrangement: intro, verse, pre-chorus, chorus,
// interlude and outro parts, each on its own channel, plus the drum loop.
func Default() model.Score {
	return model.Score{
		Title: DefaultID,
		Sections: map[string]model.Section{
			"intro_sax": {
				Notation: "3 5 6 5 3 2 1 1|2 3 5 5 3 2 2 2|1 1 2 3 5 3|2 2 1 2 3 2|",
				Repeat:   2,
			},
			"intro_strings": {
				Notation: "3̨ 3̨ 5̨ 5̨|6̨ 6̨ 5̨ 5̨|3̨ 3̨ 2̨ 2̨|1̨ 1̨ 2̨ 2̨|",
				Repeat:   2,
			},
			"verse_guitar": {
				Notation: "3 5 6 5 3 2 1 1|2 3 5 5 3 2 2 2|1 1 2 3 5 3|2 1 1 0 0 0|",
				Repeat:   4,
			},
			"verse_bass": {
				Notation: "1̨ 1̨ 1̨ 1̨|2̨ 2̨ 2̨ 2̨|3̨ 3̨ 3̨ 3̨|5̨ 5̨ 5̨ 5̨|",
				Repeat:   4,
			},
			"pre_chorus": {
				Notation: "5 3 2 1 2 3 5 5|3 2 1 1 2 3 5 3|5 3 2 1 2 3 5 5|3 2 1 1 2 1 1 0|",
				Repeat:   2,
			},
			"chorus_flute": {
				Notation: "5̇ 3̇ 2̇ 1̇ 2̇ 3̇ 5̇ 5̇|3̇ 2̇ 1̇ 1̇ 2̇ 3̇ 5̇ 3̇|",
				Repeat:   4,
			},
			"chorus_strings": {
				Notation: "3 3 5 5 6 6 5 5|3 3 2 2 1 1 2 2|",
				Repeat:   8,
			},
			"interlude_box": {
				Notation: "5 3 2 1 2 3 5 5|3 2 1 1 2 3 5 3|5 3 2 1 2 3 5 5|3 2 1 1 2 1 1 0|",
				Repeat:   2,
			},
			"outro": {
				Notation: "3 5 6 5 3 2 1 1|2 3 5 5 3 2 2 2|1 1 2 3 5 3|2 1 1 - - -|0 0 0 0|",
				Repeat:   2,
			},
		},
		Parts: []model.Part{
			{Name: "intro sax", Sections: []string{"intro_sax"}, Instrument: "soprano_sax", Channel: 0, Volume: 90},
			// own channel: on the sax's channel 0 its program change would
			// replace the sax sound for the rest of the song
			{Name: "intro strings", Sections: []string{"intro_strings"}, Instrument: "string_ensemble_2", Channel: 10, Volume: 60},
			{Name: "verse guitar", Sections: []string{"verse_guitar"}, Instrument: "steel_guitar", Channel: 1, Volume: 70},
			{Name: "verse bass", Sections: []string{"verse_bass"}, Instrument: "finger_bass", Channel: 2, Volume: 80},
			{Name: "pre-chorus pad", Sections: []string{"pre_chorus"}, Instrument: "warm_pad", Channel: 3, Volume: 75},
			{Name: "chorus flute", Sections: []string{"chorus_flute"}, Instrument: "pan_flute", Channel: 4, Volume: 95},
			{Name: "chorus strings", Sections: []string{"chorus_strings"}, Instrument: "string_ensemble_2", Channel: 5, Volume: 85},
			{Name: "interlude music box", Sections: []string{"interlude_box"}, Instrument: "music_box", Channel: 6, Volume: 88},
			{Name: "outro glockenspiel", Sections: []string{"outro"}, Instrument: "glockenspiel", Channel: 7, Volume: 70},
			{
				Name:       "outro rain",
				Sections:   []string{"outro"},
				Instrument: "synth_fx_rain",
				Channel:    8,
				Volume:     60,
				// harmony: every 3 raised to the upper 5
				Substitute: &model.Substitution{From: "3", To: "5̇"},
			},
		},
		Drums: &model.Drums{Sections: constants.DrumSections},
	}
}
