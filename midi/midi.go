package midi

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"gitlab.com/gomidi/midi/v2/smf"
)

func ReadMidiFile(filepath string) (*smf.SMF, error) {
	dat, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("error reading midi file... %w", err)
	}
	return Parse(dat)
}

// Parse decodes an SMF. Malformed data can make the decoder panic, that is
// reported as an error.
func Parse(dat []byte) (s *smf.SMF, e error) {
	defer func() {
		if r := recover(); r != nil {
			s = nil
			e = fmt.Errorf("error parsing midi file... %v", r)
		}
	}()

	res, err := smf.ReadFrom(bytes.NewReader(dat))
	if err != nil {
		return nil, fmt.Errorf("error parsing midi file... %w", err)
	}
	return res, nil
}

func Bytes(s *smf.SMF) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := s.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteMidiFile writes s next to path under a temporary name and renames it
// into place, so readers never see a half written file.
func WriteMidiFile(path string, s *smf.SMF) error {
	dat, err := Bytes(s)
	if err != nil {
		return fmt.Errorf("could not encode midi file: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("could not create output dir: %w", err)
	}

	tmp := filepath.Join(dir, "."+uuid.New().String()+".mid.tmp")
	if err := os.WriteFile(tmp, dat, 0644); err != nil {
		return fmt.Errorf("write failed for %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return errors.Join(fmt.Errorf("could not move %s into place: %w", tmp, err), os.Remove(tmp))
	}
	return nil
}
