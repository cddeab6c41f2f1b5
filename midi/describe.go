package midi

import (
	"fmt"

	"github.com/jsphweid/jianpu/util"
	"gitlab.com/gomidi/midi/v2/smf"
)

type TrackInfo struct {
	Name     string
	Events   int
	Notes    int
	Channels []uint8
	Programs []uint8
	Tempo    float64
	Meter    string
	Ticks    uint64
}

// Describe walks every track and collects what a reader usually wants to
// check: notes, channels, programs, tempo, meter and length.
func Describe(s *smf.SMF) []TrackInfo {
	res := make([]TrackInfo, 0, len(s.Tracks))
	for _, tr := range s.Tracks {
		var info TrackInfo
		channels := make(map[uint8]bool)
		programs := make(map[uint8]bool)
		info.Events = len(tr)

		for _, ev := range tr {
			info.Ticks += uint64(ev.Delta)
			msg := ev.Message

			var ch, key, vel, program uint8
			var num, denom uint8
			var name string
			switch {
			case msg.GetNoteOn(&ch, &key, &vel):
				info.Notes++
				channels[ch] = true
			case msg.GetNoteOff(&ch, &key, &vel):
				channels[ch] = true
			case msg.GetProgramChange(&ch, &program):
				programs[program] = true
				channels[ch] = true
			case msg.GetMetaTempo(&info.Tempo):
			case msg.GetMetaMeter(&num, &denom):
				info.Meter = fmt.Sprintf("%d/%d", num, denom)
			case msg.GetMetaTrackName(&name):
				info.Name = name
			}
		}
		info.Channels = util.GetKeys(channels)
		info.Programs = util.GetKeys(programs)
		res = append(res, info)
	}
	return res
}
