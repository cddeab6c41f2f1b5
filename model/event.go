package model

// Event is one sounding note produced by the translator. Silence is the gap
// in ticks between the end of the previous note (or the start of the track)
// and the start of this one; rests never appear as events of their own.
type Event struct {
	Pitch    uint8  `json:"pitch"`
	Duration uint32 `json:"duration"`
	Silence  uint32 `json:"silence"`
}

// Phrase is a translated notation string.
type Phrase struct {
	Events []Event `json:"events"`

	// NOTE: silence left over after the last note, nothing claims it
	Tail uint32 `json:"tail"`
}

func (p Phrase) TotalTicks() uint64 {
	total := uint64(p.Tail)
	for _, e := range p.Events {
		total += uint64(e.Silence) + uint64(e.Duration)
	}
	return total
}
