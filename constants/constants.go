package constants

import "os"

// BeatTicks is the tick resolution of one beat (quarter note).
const BeatTicks = 480

// BPM is the fixed tempo written at the start of every track.
const BPM = 72

const (
	MeterNumerator   = 4
	MeterDenominator = 4
)

// DrumChannel is the GM percussion channel (channel 10, zero-based 9).
const DrumChannel = 9

const DrumVelocity = 100

// DrumSections is how many times the percussion pattern is replicated.
const DrumSections = 8

// Limits on score input; a section repeat or drum section count above
// these is rejected before anything is expanded.
const (
	MaxRepeat       = 1024
	MaxDrumSections = 1024

	// bytes of notation per part, after repeats and substitution
	MaxPartLength = 1 << 20
)

const MaxChannel = 15

const MaxVolume = 127

const DefaultOutputPath = "hou_lai_de_wo_men_final.mid"

const DefaultListenAddr = ":8080"

func GetOutputPath() string {
	path := os.Getenv("OUTPUT_PATH")
	if path != "" {
		return path
	}
	return DefaultOutputPath
}

// GetScorePath returns the YAML score to use instead of the built-in song,
// or "" when none is configured.
func GetScorePath() string {
	return os.Getenv("SCORE_PATH")
}

func GetListenAddr() string {
	addr := os.Getenv("LISTEN_ADDR")
	if addr != "" {
		return addr
	}
	return DefaultListenAddr
}
