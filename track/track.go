package track

import (
	"errors"
	"fmt"

	"github.com/jsphweid/jianpu/constants"
	"github.com/jsphweid/jianpu/instrument"
	"github.com/jsphweid/jianpu/model"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

var (
	ErrChannel = errors.New("channel out of range")
	ErrVolume  = errors.New("volume out of range")
)

const ccVolume = 7

type Setup struct {
	Name string

	// empty for percussion: no program change, no volume control
	Instrument string
	Channel    uint8
	Volume     uint8

	// note velocity, Volume is used when zero
	Velocity uint8
}

func (s Setup) velocity() uint8 {
	if s.Velocity != 0 {
		return s.Velocity
	}
	return s.Volume
}

// AddGlobalSettings writes tempo and meter. Every track carries its own copy
// so each one reads correctly on its own.
func AddGlobalSettings(t *smf.Track) {
	t.Add(0, smf.MetaTempo(constants.BPM))
	t.Add(0, smf.MetaMeter(constants.MeterNumerator, constants.MeterDenominator))
}

// Assemble turns a phrase into a closed track: settings first, then one
// note on/off pair per event. The phrase's trailing silence becomes the
// end-of-track delta.
func Assemble(phrase model.Phrase, setup Setup) (smf.Track, error) {
	if setup.Channel > constants.MaxChannel {
		return nil, fmt.Errorf("%w: %d", ErrChannel, setup.Channel)
	}
	// a zero velocity note on reads as a note off, so it is refused too
	if setup.Volume > constants.MaxVolume || setup.Velocity > constants.MaxVolume || setup.velocity() == 0 {
		return nil, fmt.Errorf("%w: volume %d velocity %d", ErrVolume, setup.Volume, setup.Velocity)
	}

	var t smf.Track
	AddGlobalSettings(&t)
	if setup.Name != "" {
		t.Add(0, smf.MetaTrackSequenceName(setup.Name))
	}

	ch := setup.Channel
	if setup.Instrument != "" {
		program, err := instrument.Program(setup.Instrument)
		if err != nil {
			return nil, err
		}
		t.Add(0, midi.ProgramChange(ch, program))
		t.Add(0, midi.ControlChange(ch, ccVolume, setup.Volume))
	}

	vel := setup.velocity()
	for _, e := range phrase.Events {
		t.Add(e.Silence, midi.NoteOn(ch, e.Pitch, vel))
		t.Add(e.Duration, midi.NoteOffVelocity(ch, e.Pitch, vel))
	}
	t.Close(phrase.Tail)
	return t, nil
}

// AppendTo assembles the phrase and adds the track to s.
func AppendTo(s *smf.SMF, phrase model.Phrase, setup Setup) error {
	t, err := Assemble(phrase, setup)
	if err != nil {
		return err
	}
	return s.Add(t)
}
