//go:build e2e
// +build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/jsphweid/jianpu/cmd"
	"github.com/jsphweid/jianpu/midi"
	"github.com/jsphweid/jianpu/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var outPath string

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "jianpu-e2e")
	if err != nil {
		panic(err.Error())
	}
	outPath = filepath.Join(dir, "song.mid")
	if err := cmd.Render("", outPath); err != nil {
		panic(err.Error())
	}

	exitVal := m.Run()

	os.RemoveAll(dir)
	os.Exit(exitVal)
}

func createTranslateReqBody(notation string) io.Reader {
	data, err := json.Marshal(model.TranslateRequestBody{Notation: notation})
	if err != nil {
		panic(err.Error())
	}
	return bytes.NewReader(data)
}

func TestRenderedFileE2E(t *testing.T) {
	s, err := midi.ReadMidiFile(outPath)
	require.NoError(t, err)

	infos := midi.Describe(s)
	require.Len(t, infos, 11)

	assert := assert.New(t)
	for i, info := range infos {
		assert.InDelta(72, info.Tempo, 0.01, "track %d", i)
		assert.Equal("4/4", info.Meter, "track %d", i)
		assert.Greater(info.Notes, 0, "track %d", i)
	}

	drums := infos[10]
	assert.Equal("drums", drums.Name)
	assert.Equal([]uint8{9}, drums.Channels)
	assert.Empty(drums.Programs)
	assert.Equal(32, drums.Notes)

	assert.Equal("chorus flute", infos[5].Name)
	assert.Equal([]uint8{75}, infos[5].Programs)
}

func TestServedMidiMatchesRenderedFileE2E(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/scores/default/midi", nil)
	w := httptest.NewRecorder()
	cmd.NewRouter().ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	onDisk, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, onDisk, w.Body.Bytes())
}

func TestTranslateE2E(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/translate", createTranslateReqBody("1 2 3"))
	w := httptest.NewRecorder()
	cmd.NewRouter().ServeHTTP(w, req)

	resp := w.Result()
	respBody, _ := io.ReadAll(resp.Body)

	assert := assert.New(t)
	assert.Equal(200, resp.StatusCode)

	var res model.TranslateResponse
	err := json.Unmarshal(respBody, &res)
	if err != nil {
		panic(err.Error())
	}

	assert.Equal(model.TranslateResponse{
		Events: []model.Event{
			{Pitch: 60, Duration: 480},
			{Pitch: 62, Duration: 480},
			{Pitch: 64, Duration: 480},
		},
	}, res)
}
