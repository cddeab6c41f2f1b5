package instrument

import (
	"errors"
	"fmt"
	"sort"
)

var ErrUnknown = errors.New("unknown instrument")

// GM program numbers, zero-based
var programs = map[string]uint8{
	"soprano_sax":         64,
	"music_box":           10,
	"synth_fx_brightness": 100,
	"string_ensemble_2":   49,
	"pan_flute":           75,
	"glockenspiel":        9,
	"synth_fx_rain":       96,
	"warm_pad":            89,
	"steel_guitar":        25,
	"finger_bass":         33,
}

func Program(name string) (uint8, error) {
	p, ok := programs[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknown, name)
	}
	return p, nil
}

func Names() []string {
	names := make([]string, 0, len(programs))
	for name := range programs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
