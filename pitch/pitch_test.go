package pitch

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlainDigits(t *testing.T) {
	cases := map[string]uint8{
		"1": 60, "2": 62, "3": 64, "4": 65, "5": 67, "6": 69, "7": 71,
	}
	for symbol, want := range cases {
		v, ok := Lookup(symbol)
		assert.True(t, ok, symbol)
		assert.False(t, v.Rest, symbol)
		assert.Equal(t, want, v.Note, symbol)
	}
}

func TestOctaveDiacriticsShiftByTwelve(t *testing.T) {
	for _, digit := range "1234567" {
		name := fmt.Sprintf("digit %c", digit)
		t.Run(name, func(t *testing.T) {
			plain, ok := Lookup(Symbol(digit, 0))
			assert.True(t, ok)
			up, ok := Lookup(Symbol(digit, OctaveUp))
			assert.True(t, ok)
			down, ok := Lookup(Symbol(digit, OctaveDown))
			assert.True(t, ok)

			assert.Equal(t, plain.Note+12, up.Note)
			assert.Equal(t, plain.Note-12, down.Note)
		})
	}
}

func TestLiteralDiacriticStrings(t *testing.T) {
	up, _ := Lookup("1̇")
	down, _ := Lookup("1̨")
	assert.Equal(t, uint8(72), up.Note)
	assert.Equal(t, uint8(48), down.Note)
}

func TestRest(t *testing.T) {
	v, ok := Lookup("0")
	assert.True(t, ok)
	assert.True(t, v.Rest)
}

func TestInvalidSymbols(t *testing.T) {
	for _, symbol := range []string{
		Symbol('0', OctaveUp), Symbol('0', OctaveDown), "8", "9", "a", "", "12",
	} {
		_, ok := Lookup(symbol)
		assert.False(t, ok, symbol)
	}
}

func TestSize(t *testing.T) {
	// 7 digits in three octaves plus the rest
	assert.Equal(t, 22, Size())
}

func TestIsDiacritic(t *testing.T) {
	assert.True(t, IsDiacritic(OctaveUp))
	assert.True(t, IsDiacritic(OctaveDown))
	assert.False(t, IsDiacritic('.'))
	assert.False(t, IsDiacritic('1'))
}
