// Package chord finds which notes sound together in a rendered file.
package chord

import (
	"fmt"
	"sort"
	"strings"

	"gitlab.com/gomidi/midi/v2/smf"
)

type Chord struct {
	Tick  uint64
	Notes []uint8
}

type reducedEvent struct {
	tick      uint64
	isNoteOff bool
	note      uint8
}

// CreateChordKey sorts notes in place and joins them, e.g. "48-64-67".
func CreateChordKey(notes []uint8) string {
	sort.Slice(notes, func(i, j int) bool {
		return notes[i] < notes[j]
	})
	parts := make([]string, 0, len(notes))
	for _, note := range notes {
		parts = append(parts, fmt.Sprintf("%v", note))
	}
	return strings.Join(parts, "-")
}

func pressedNotes(pressed map[uint8]int) []uint8 {
	notes := make([]uint8, 0, len(pressed))
	for note, n := range pressed {
		if n > 0 {
			notes = append(notes, note)
		}
	}
	sort.Slice(notes, func(i, j int) bool {
		return notes[i] < notes[j]
	})
	return notes
}

// GetChords merges all tracks and returns, for every tick where the set of
// sounding notes changes, the notes sounding right after it. Ticks where
// nothing sounds are left out.
func GetChords(s *smf.SMF) []Chord {
	var reducedEvents []reducedEvent
	for _, events := range s.Tracks {
		var absTicks uint64
		for _, event := range events {
			absTicks += uint64(event.Delta)
			var channel, key, velocity uint8
			switch {
			case event.Message.GetNoteOn(&channel, &key, &velocity) && velocity > 0:
				reducedEvents = append(reducedEvents, reducedEvent{tick: absTicks, note: key})
			case event.Message.GetNoteOff(&channel, &key, &velocity),
				event.Message.GetNoteOn(&channel, &key, &velocity):
				reducedEvents = append(reducedEvents, reducedEvent{tick: absTicks, note: key, isNoteOff: true})
			}
		}
	}

	// earlier first, note offs before note ons on the same tick
	sort.SliceStable(reducedEvents, func(i, j int) bool {
		if reducedEvents[i].tick != reducedEvents[j].tick {
			return reducedEvents[i].tick < reducedEvents[j].tick
		}
		return reducedEvents[i].isNoteOff && !reducedEvents[j].isNoteOff
	})

	var chords []Chord
	var prevKey string
	pressed := make(map[uint8]int)
	for i, evt := range reducedEvents {
		if evt.isNoteOff {
			if pressed[evt.note] > 0 {
				pressed[evt.note]--
			}
		} else {
			pressed[evt.note]++
		}

		lastOnTick := i == len(reducedEvents)-1 || reducedEvents[i+1].tick != evt.tick
		if !lastOnTick {
			continue
		}
		notes := pressedNotes(pressed)
		key := CreateChordKey(notes)
		if key == prevKey {
			continue
		}
		prevKey = key
		if len(notes) > 0 {
			chords = append(chords, Chord{Tick: evt.tick, Notes: notes})
		}
	}
	return chords
}

// CountByKey tallies chords with at least minNotes notes by their key.
func CountByKey(chords []Chord, minNotes int) map[string]int {
	res := make(map[string]int)
	for _, c := range chords {
		if len(c.Notes) < minNotes {
			continue
		}
		res[CreateChordKey(c.Notes)]++
	}
	return res
}
