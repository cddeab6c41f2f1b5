package score

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/jsphweid/jianpu/model"
)

// Parse reads a YAML score and validates it.
func Parse(data []byte) (model.Score, error) {
	var sc model.Score
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return model.Score{}, fmt.Errorf("parse score: %w", err)
	}
	if err := Validate(sc); err != nil {
		return model.Score{}, err
	}
	return sc, nil
}

func Load(path string) (model.Score, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Score{}, fmt.Errorf("read %s: %w", path, err)
	}
	sc, err := Parse(data)
	if err != nil {
		return model.Score{}, fmt.Errorf("%s: %w", path, err)
	}
	return sc, nil
}

// LoadOrDefault loads path, or returns the built-in song when path is empty.
func LoadOrDefault(path string) (model.Score, error) {
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

func Marshal(sc model.Score) ([]byte, error) {
	return yaml.Marshal(sc)
}
