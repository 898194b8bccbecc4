package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/jsphweid/midisolo/constants"
	"github.com/jsphweid/midisolo/errs"
	"github.com/jsphweid/midisolo/model"
	"github.com/jsphweid/midisolo/pipeline"
	"github.com/jsphweid/midisolo/store"
	"github.com/jsphweid/midisolo/track"
	"github.com/rs/cors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var port int

func init() {
	serveCmd.Flags().IntVarP(&port, "port", "p", constants.GetPort(), "port to listen on")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the upload API",
	Long: `Serves the upload API.

  POST /process        multipart form with "file" and optional "reduction"
  GET  /download/{id}  the zip created by /process`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve(port)
	},
}

type server struct {
	results   *store.Results
	publisher *store.Publisher
}

// NewRouter wires the HTTP API. publisher may be nil.
func NewRouter(results *store.Results, publisher *store.Publisher) http.Handler {
	s := &server{results: results, publisher: publisher}

	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/health", handleHealth).Methods("GET")
	router.HandleFunc("/process", s.handleProcess).Methods("POST")
	router.HandleFunc("/download/{id}", s.handleDownload).Methods("GET")
	return cors.Default().Handler(router)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Warn().Err(err).Msg("could not write response")
	}
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, model.ErrorResponse{Error: detail})
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *server) handleProcess(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, constants.MaxUploadSize)
	if err := r.ParseMultipartForm(constants.MaxUploadSize); err != nil {
		writeError(w, http.StatusBadRequest, "Could not read upload: "+err.Error())
		return
	}

	amount := uint8(constants.DefaultReduction)
	if value := r.FormValue("reduction"); value != "" {
		parsed, err := track.ParseAmount(value)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		amount = parsed
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Please upload a midi file")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Could not read upload: "+err.Error())
		return
	}

	res, err := pipeline.Process(model.InputFile{Name: header.Filename, Data: data}, amount)
	if err != nil {
		status := http.StatusInternalServerError
		if errs.IsInputError(err) {
			status = http.StatusBadRequest
		}
		log.Warn().Err(err).Str("file", header.Filename).Msg("could not process upload")
		writeError(w, status, err.Error())
		return
	}

	id := s.results.Put(res)

	if s.publisher != nil {
		location, err := s.publisher.Publish(r.Context(), res)
		if err != nil {
			log.Error().Err(err).Str("file", header.Filename).Msg("could not publish zip")
		} else {
			log.Info().Str("location", location).Msg("published zip")
		}
	}

	writeJSON(w, http.StatusOK, model.ProcessResponse{
		ID:          id,
		ZipName:     res.ZipName(),
		FileNames:   res.FileNames,
		DownloadURL: "/download/" + id,
	})
}

func (s *server) handleDownload(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	res, ok := s.results.Get(id)
	if !ok {
		writeError(w, http.StatusNotFound, "No zip found for "+id)
		return
	}

	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", res.ZipName()))
	if _, err := w.Write(res.Zip); err != nil {
		log.Warn().Err(err).Str("id", id).Str("zip", res.ZipName()).Msg("could not write download")
	}
}

func serve(port int) error {
	var publisher *store.Publisher
	if bucket := constants.GetS3Bucket(); bucket != "" {
		p, err := store.NewS3Publisher(bucket)
		if err != nil {
			return err
		}
		publisher = p
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      NewRouter(store.NewResults(constants.GetResultTTL()), publisher),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: time.Minute,
		IdleTimeout:  60 * time.Second,
	}

	done := make(chan struct{})
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
		<-sigCh

		log.Info().Msg("shutting down server...")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Error().Err(err).Msg("shutdown error")
		}
		close(done)
	}()

	log.Info().Int("port", port).Msg("server starting")
	if err := srv.ListenAndServe(); err != http.ErrServerClosed {
		return err
	}

	<-done
	return nil
}
