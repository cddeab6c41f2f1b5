// Package notation translates cipher (jianpu) notation strings into timed
// note events.
package notation

import (
	"unicode"

	"github.com/jsphweid/jianpu/model"
	"github.com/jsphweid/jianpu/pitch"
)

type Kind int

const (
	Skip Kind = iota
	Note
	Silence
)

// Token is what a single Step read from the stream.
type Token struct {
	Kind     Kind
	Pitch    uint8
	Duration uint32
}

// Step reads one token starting at i and returns it along with the position
// of the next unread character. The returned position is always past i.
func Step(stream []rune, i int, beatTicks uint32) (Token, int) {
	r := stream[i]
	switch {
	case unicode.IsSpace(r) || r == Bar:
		return Token{}, i + 1
	case r == Sustain:
		// a dash nothing claimed: silence of its own
		dur, consumed := Resolve(stream, i, beatTicks)
		return Token{Kind: Silence, Duration: dur}, i + consumed + 1
	}

	symbol, pos := readSymbol(stream, i)
	v, ok := pitch.Lookup(symbol)
	if !ok {
		return Token{}, i + 1
	}

	dur, consumed := Resolve(stream, pos, beatTicks)
	next := pos + consumed + 1
	if v.Rest {
		return Token{Kind: Silence, Duration: dur}, next
	}
	return Token{Kind: Note, Pitch: v.Note, Duration: dur}, next
}

func readSymbol(stream []rune, i int) (string, int) {
	if i+1 < len(stream) && pitch.IsDiacritic(stream[i+1]) {
		return pitch.Symbol(stream[i], stream[i+1]), i + 1
	}
	return pitch.Symbol(stream[i], 0), i
}

// Fold translates the whole string. Rests and stray dashes accumulate into
// the Silence of the next note; whatever is left at the end goes to Tail.
func Fold(notation string, beatTicks uint32) model.Phrase {
	stream := []rune(notation)

	var phrase model.Phrase
	var silence uint32
	for i := 0; i < len(stream); {
		tok, next := Step(stream, i, beatTicks)
		switch tok.Kind {
		case Note:
			phrase.Events = append(phrase.Events, model.Event{
				Pitch:    tok.Pitch,
				Duration: tok.Duration,
				Silence:  silence,
			})
			silence = 0
		case Silence:
			silence += tok.Duration
		}
		i = next
	}
	phrase.Tail = silence
	return phrase
}

func Translate(notation string, beatTicks uint32) []model.Event {
	return Fold(notation, beatTicks).Events
}
