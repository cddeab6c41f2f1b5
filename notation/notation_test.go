package notation

import (
	"fmt"
	"strings"
	"testing"

	"github.com/jsphweid/jianpu/model"
	"github.com/stretchr/testify/assert"
)

func TestSeparatorsOnlyYieldNothing(t *testing.T) {
	for _, s := range []string{"", " ", "|", " | | ", "||||", "\t\n"} {
		phrase := Fold(s, beat)
		assert.Empty(t, phrase.Events, "%q", s)
		assert.Equal(t, uint32(0), phrase.Tail, "%q", s)
	}
}

func TestSingleDigit(t *testing.T) {
	for _, d := range "1234567" {
		events := Translate(string(d), beat)
		assert.Len(t, events, 1)
		assert.Equal(t, uint32(beat), events[0].Duration)
		assert.Equal(t, uint32(0), events[0].Silence)
	}
}

func TestDottedNoteConsumesTwoCharacters(t *testing.T) {
	for _, d := range "1234567" {
		tok, next := Step([]rune(string(d)+"."), 0, beat)
		assert.Equal(t, Note, tok.Kind)
		assert.Equal(t, uint32(720), tok.Duration)
		assert.Equal(t, 2, next)
	}
}

func TestSustainRunExtendsNote(t *testing.T) {
	for k := 1; k <= 5; k++ {
		name := fmt.Sprintf("%d dashes", k)
		t.Run(name, func(t *testing.T) {
			stream := []rune("5" + strings.Repeat("-", k))
			tok, next := Step(stream, 0, beat)
			assert.Equal(t, Note, tok.Kind)
			assert.Equal(t, uint32(beat*(k+1)), tok.Duration)
			assert.Equal(t, len(stream), next)

			events := Translate(string(stream), beat)
			assert.Len(t, events, 1)
		})
	}
}

func TestRestFoldsIntoNextNote(t *testing.T) {
	phrase := Fold("0", beat)
	assert.Empty(t, phrase.Events)
	assert.Equal(t, uint32(beat), phrase.Tail)

	events := Translate("0 1", beat)
	assert.Equal(t, []model.Event{{Pitch: 60, Duration: 480, Silence: 480}}, events)
}

func TestOctaveDiacritics(t *testing.T) {
	plain := Translate("1", beat)
	up := Translate("1̇", beat)
	down := Translate("1̨", beat)

	assert.Equal(t, plain[0].Pitch+12, up[0].Pitch)
	assert.Equal(t, plain[0].Pitch-12, down[0].Pitch)
	assert.Equal(t, uint32(beat), up[0].Duration)
}

func TestDiacriticThenDuration(t *testing.T) {
	events := Translate("5̇. 3̨--", beat)
	assert.Equal(t, []model.Event{
		{Pitch: 79, Duration: 720},
		{Pitch: 52, Duration: 1440},
	}, events)
}

func TestSeparatedNotes(t *testing.T) {
	events := Translate("1 2 3", beat)
	assert.Equal(t, []model.Event{
		{Pitch: 60, Duration: 480},
		{Pitch: 62, Duration: 480},
		{Pitch: 64, Duration: 480},
	}, events)
}

func TestRestBetweenNotes(t *testing.T) {
	events := Translate("1 0 2", beat)
	assert.Equal(t, []model.Event{
		{Pitch: 60, Duration: 480, Silence: 0},
		{Pitch: 62, Duration: 480, Silence: 480},
	}, events)
}

func TestRestConsumesItsOwnDashes(t *testing.T) {
	events := Translate("0-- 1", beat)
	assert.Equal(t, []model.Event{{Pitch: 60, Duration: 480, Silence: 1440}}, events)
}

func TestStandaloneDashesAreSilence(t *testing.T) {
	phrase := Fold("2 1 1 - - -|", beat)
	assert.Len(t, phrase.Events, 3)
	assert.Equal(t, uint32(beat), phrase.Events[2].Duration)
	assert.Equal(t, uint32(3*beat), phrase.Tail)

	events := Translate("1 -- 2", beat)
	assert.Equal(t, uint32(960), events[1].Silence)
}

func TestUnknownCharactersAreSkipped(t *testing.T) {
	events := Translate("1x8 9a2", beat)
	assert.Equal(t, []model.Event{
		{Pitch: 60, Duration: 480},
		{Pitch: 62, Duration: 480},
	}, events)
}

func TestUnknownCharacterDoesNotTakeDuration(t *testing.T) {
	// the dot belongs to nobody once 'x' is skipped
	events := Translate("x.1", beat)
	assert.Equal(t, []model.Event{{Pitch: 60, Duration: 480}}, events)
}

func TestRestWithDiacriticIsSkipped(t *testing.T) {
	events := Translate("0̇ 1", beat)
	assert.Equal(t, []model.Event{{Pitch: 60, Duration: 480}}, events)
}

func TestStepAlwaysAdvances(t *testing.T) {
	stream := []rune("1̇.-0--|x 3̨ . - ̇")
	for i := range stream {
		_, next := Step(stream, i, beat)
		assert.Greater(t, next, i)
	}
}

func TestTranslateIsRepeatable(t *testing.T) {
	s := "3 5 6 5 3 2 1 1|2 3 5 5 3 2 2 2|1 1 2 3 5 3|2 1 1 - - -|0 0 0 0|"
	first := Fold(s, beat)
	for i := 0; i < 3; i++ {
		assert.Equal(t, first, Fold(s, beat))
	}
}

func TestPhraseTotalTicks(t *testing.T) {
	phrase := Fold("1. 0 2-- 0", beat)
	assert.Equal(t, uint64(720+480+1440+480), phrase.TotalTicks())
}
