// Package score turns a score (named notation sections and the parts that
// play them) into a multi-track standard MIDI file.
package score

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jsphweid/jianpu/constants"
	"github.com/jsphweid/jianpu/instrument"
	"github.com/jsphweid/jianpu/model"
	"github.com/jsphweid/jianpu/notation"
	"github.com/jsphweid/jianpu/percussion"
	"github.com/jsphweid/jianpu/track"
	"github.com/jsphweid/jianpu/util"
	"gitlab.com/gomidi/midi/v2/smf"
)

var (
	ErrNoParts         = errors.New("score has no parts")
	ErrUnknownSection  = errors.New("unknown section")
	ErrReservedChannel = errors.New("channel is reserved for drums")
	ErrTooLong         = errors.New("score too long")
)

func repeatCount(s model.Section) int {
	return min(max(s.Repeat, 1), constants.MaxRepeat)
}

// SectionNotation is the section's notation repeated Repeat times (at least
// once, at most constants.MaxRepeat).
func SectionNotation(s model.Section) string {
	return strings.Repeat(s.Notation, repeatCount(s))
}

// PartNotation concatenates the part's sections and applies its substitution.
// The expanded length is checked before anything is built.
func PartNotation(sc model.Score, part model.Part) (string, error) {
	var length int
	for _, name := range part.Sections {
		section, ok := sc.Sections[name]
		if !ok {
			return "", fmt.Errorf("%w %q in part %q", ErrUnknownSection, name, part.Name)
		}
		if section.Repeat > constants.MaxRepeat {
			return "", fmt.Errorf("%w: section %q repeats %d times, limit %d", ErrTooLong, name, section.Repeat, constants.MaxRepeat)
		}
		length += len(section.Notation) * repeatCount(section)
		if length > constants.MaxPartLength {
			return "", fmt.Errorf("%w: part %q is over %d bytes", ErrTooLong, part.Name, constants.MaxPartLength)
		}
	}

	var b strings.Builder
	b.Grow(length)
	for _, name := range part.Sections {
		b.WriteString(SectionNotation(sc.Sections[name]))
	}

	text := b.String()
	if part.Substitute != nil && part.Substitute.From != "" {
		from, to := part.Substitute.From, part.Substitute.To
		if grow := len(to) - len(from); grow > 0 {
			length += strings.Count(text, from) * grow
			if length > constants.MaxPartLength {
				return "", fmt.Errorf("%w: part %q is over %d bytes after substitution", ErrTooLong, part.Name, constants.MaxPartLength)
			}
		}
		text = strings.ReplaceAll(text, from, to)
	}
	return text, nil
}

func Validate(sc model.Score) error {
	if len(sc.Parts) == 0 {
		return ErrNoParts
	}
	drums := sc.Drums != nil && sc.Drums.Sections > 0
	if drums && sc.Drums.Sections > constants.MaxDrumSections {
		return fmt.Errorf("%w: %d drum sections, limit %d", ErrTooLong, sc.Drums.Sections, constants.MaxDrumSections)
	}
	for _, name := range util.GetKeys(sc.Sections) {
		if sc.Sections[name].Repeat > constants.MaxRepeat {
			return fmt.Errorf("%w: section %q repeats %d times, limit %d", ErrTooLong, name, sc.Sections[name].Repeat, constants.MaxRepeat)
		}
	}
	for _, part := range sc.Parts {
		if _, err := PartNotation(sc, part); err != nil {
			return err
		}
		if _, err := instrument.Program(part.Instrument); err != nil {
			return fmt.Errorf("part %q: %w", part.Name, err)
		}
		if part.Channel > constants.MaxChannel {
			return fmt.Errorf("part %q: %w: %d", part.Name, track.ErrChannel, part.Channel)
		}
		// a zero velocity note on reads as a note off
		if part.Volume == 0 || part.Volume > constants.MaxVolume {
			return fmt.Errorf("part %q: %w: %d", part.Name, track.ErrVolume, part.Volume)
		}
		if drums && part.Channel == constants.DrumChannel {
			return fmt.Errorf("part %q: %w", part.Name, ErrReservedChannel)
		}
	}
	return nil
}

func setupFor(part model.Part) track.Setup {
	return track.Setup{
		Name:       part.Name,
		Instrument: part.Instrument,
		Channel:    part.Channel,
		Volume:     part.Volume,
	}
}

// Render translates every part in order, then appends the drum track.
func Render(sc model.Score, logger *slog.Logger) (*smf.SMF, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if err := Validate(sc); err != nil {
		return nil, err
	}

	s := smf.New()
	s.TimeFormat = smf.MetricTicks(constants.BeatTicks)

	for _, part := range sc.Parts {
		text, err := PartNotation(sc, part)
		if err != nil {
			return nil, err
		}
		phrase := notation.Fold(text, constants.BeatTicks)
		if err := track.AppendTo(s, phrase, setupFor(part)); err != nil {
			return nil, fmt.Errorf("part %q: %w", part.Name, err)
		}
		logger.Debug("rendered part",
			"part", part.Name,
			"instrument", part.Instrument,
			"channel", part.Channel,
			"notes", len(phrase.Events),
			"ticks", phrase.TotalTicks())
	}

	if sc.Drums != nil && sc.Drums.Sections > 0 {
		if err := percussion.AppendTo(s, sc.Drums.Sections, constants.BeatTicks); err != nil {
			return nil, fmt.Errorf("drums: %w", err)
		}
		logger.Debug("rendered drums", "sections", sc.Drums.Sections)
	}

	return s, nil
}

// Summarize reports, per part, what the translator makes of it.
func Summarize(sc model.Score) ([]model.PartSummary, error) {
	if err := Validate(sc); err != nil {
		return nil, err
	}

	ticksPerBar := float64(constants.BeatTicks * constants.MeterNumerator)
	res := make([]model.PartSummary, 0, len(sc.Parts))
	for _, part := range sc.Parts {
		text, _ := PartNotation(sc, part)
		phrase := notation.Fold(text, constants.BeatTicks)

		durations := make([]uint32, 0, len(phrase.Events))
		for _, e := range phrase.Events {
			durations = append(durations, e.Duration)
		}
		total := phrase.TotalTicks()
		res = append(res, model.PartSummary{
			Name:          part.Name,
			Notes:         len(phrase.Events),
			SoundingTicks: util.Sum(durations),
			TotalTicks:    total,
			Bars:          float64(total) / ticksPerBar,
		})
	}
	return res, nil
}
