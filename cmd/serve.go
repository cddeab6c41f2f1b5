package cmd

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/jsphweid/jianpu/constants"
	"github.com/jsphweid/jianpu/midi"
	"github.com/jsphweid/jianpu/model"
	"github.com/jsphweid/jianpu/notation"
	"github.com/jsphweid/jianpu/score"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
)

const maxBodyBytes = 1 << 20

var serveAddr string

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", constants.GetListenAddr(), "listen address (env LISTEN_ADDR)")
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serves",
	Long:  `Serves translation and rendering over HTTP.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve(serveAddr)
	},
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("could not encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, model.ErrorResponse{Error: err.Error()})
}

func writeMidi(w http.ResponseWriter, sc model.Score) {
	s, err := score.Render(sc, slog.Default())
	if errors.Is(err, score.ErrNoParts) {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err)
		return
	}
	dat, err := midi.Bytes(s)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	w.Header().Set("Content-Type", "audio/midi")
	w.WriteHeader(http.StatusOK)
	w.Write(dat)
}

func HandleTranslate(w http.ResponseWriter, r *http.Request) {
	var input model.TranslateRequestBody
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	phrase := notation.Fold(input.Notation, constants.BeatTicks)
	res := model.TranslateResponse{Events: phrase.Events, Tail: phrase.Tail}
	if res.Events == nil {
		res.Events = make([]model.Event, 0)
	}
	writeJSON(w, http.StatusOK, res)
}

func HandleRender(w http.ResponseWriter, r *http.Request) {
	var sc model.Score
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&sc); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeMidi(w, sc)
}

func handleDefaultScore(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, score.Default())
}

func handleDefaultMidi(w http.ResponseWriter, r *http.Request) {
	writeMidi(w, score.Default())
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		slog.Debug("request", "method", r.Method, "path", r.URL.Path, "elapsed", time.Since(start))
	})
}

func NewRouter() http.Handler {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/translate", HandleTranslate).Methods("POST")
	router.HandleFunc("/render", HandleRender).Methods("POST")
	router.HandleFunc("/scores/default", handleDefaultScore).Methods("GET")
	router.HandleFunc("/scores/default/midi", handleDefaultMidi).Methods("GET")
	router.Use(logRequests)
	return cors.Default().Handler(router)
}

func serve(addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           NewRouter(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	slog.Info("listening", "addr", addr)
	return srv.ListenAndServe()
}
