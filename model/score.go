package model

type Section struct {
	Notation string `json:"notation" yaml:"notation"`
	Repeat   int    `json:"repeat,omitempty" yaml:"repeat,omitempty"`
}

// Substitution is a plain text replacement applied to a part's notation
// before translation, e.g. doubling a line an octave up.
type Substitution struct {
	From string `json:"from" yaml:"from"`
	To   string `json:"to" yaml:"to"`
}

type Part struct {
	Name       string        `json:"name" yaml:"name"`
	Sections   []string      `json:"sections" yaml:"sections"`
	Instrument string        `json:"instrument" yaml:"instrument"`
	Channel    uint8         `json:"channel" yaml:"channel"`
	Volume     uint8         `json:"volume" yaml:"volume"`
	Substitute *Substitution `json:"substitute,omitempty" yaml:"substitute,omitempty"`
}

type Drums struct {
	Sections int `json:"sections" yaml:"sections"`
}

type Score struct {
	Title    string             `json:"title" yaml:"title"`
	Sections map[string]Section `json:"sections" yaml:"sections"`
	Parts    []Part             `json:"parts" yaml:"parts"`

	// nil means no percussion track
	Drums *Drums `json:"drums,omitempty" yaml:"drums,omitempty"`
}

// DrumVoice is one percussion instrument of the per-measure pattern.
type DrumVoice struct {
	Name    string
	Note    uint8
	Offsets []uint32
}
