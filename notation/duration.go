package notation

const (
	Dot     = '.'
	Sustain = '-'
	Bar     = '|'
)

// Resolve returns the length in ticks of the symbol whose last character
// sits at pos, and how many characters after pos were consumed to decide it.
// A following '.' makes it one and a half beats; a run of '-' adds one beat
// per dash.
func Resolve(stream []rune, pos int, beatTicks uint32) (uint32, int) {
	if pos+1 >= len(stream) {
		return beatTicks, 0
	}

	switch stream[pos+1] {
	case Dot:
		return beatTicks * 3 / 2, 1
	case Sustain:
		consumed := 1
		for pos+1+consumed < len(stream) && stream[pos+1+consumed] == Sustain {
			consumed++
		}
		return beatTicks * uint32(consumed+1), consumed
	}
	return beatTicks, 0
}
