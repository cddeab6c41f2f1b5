// Package pitch maps cipher notation symbols to MIDI note numbers.
package pitch

// Octave diacritics are combining marks written right after the digit.
const (
	OctaveUp   = '\u0307' // combining dot above
	OctaveDown = '\u0328' // combining ogonek, used as the under-mark
)

const Rest = '0'

const octave = 12

// middle octave, 1 = C4
var basePitches = map[rune]uint8{
	'1': 60, '2': 62, '3': 64, '4': 65, '5': 67, '6': 69, '7': 71,
}

type Value struct {
	Note uint8
	Rest bool
}

var table = buildTable()

func buildTable() map[string]Value {
	t := map[string]Value{string(Rest): {Rest: true}}
	for digit, note := range basePitches {
		t[Symbol(digit, 0)] = Value{Note: note}
		t[Symbol(digit, OctaveUp)] = Value{Note: note + octave}
		t[Symbol(digit, OctaveDown)] = Value{Note: note - octave}
	}
	return t
}

// Symbol builds the table key for a digit and an optional diacritic (0 for none).
func Symbol(digit rune, diacritic rune) string {
	if diacritic == 0 {
		return string(digit)
	}
	return string([]rune{digit, diacritic})
}

// Lookup reports false for anything that is not a valid digit/diacritic
// combination, including a rest carrying a diacritic.
func Lookup(symbol string) (Value, bool) {
	v, ok := table[symbol]
	return v, ok
}

func IsDiacritic(r rune) bool {
	return r == OctaveUp || r == OctaveDown
}

// Size is the number of valid symbols.
func Size() int {
	return len(table)
}
