package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/screenlog/screenlog/pkg/identity"
	"github.com/screenlog/screenlog/pkg/logger"
	"github.com/screenlog/screenlog/pkg/manager"
	"github.com/screenlog/screenlog/pkg/storage"
	"go.uber.org/zap"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
)

// ErrorResponse is the JSON body sent for every failed request
type ErrorResponse struct {
	Error string `json:"error"`
}

// Server houses all dependencies for the tracking service to work such as
// loggers, clients and configuration
type Server struct {
	baseLogger  *zap.SugaredLogger
	manager     manager.MediaManager
	verifier    identity.Verifier
	frontendDir string
}

// New creates a new media tracking server
func New(logger *zap.SugaredLogger, manager manager.MediaManager, verifier identity.Verifier, frontendDir string) Server {
	return Server{
		baseLogger:  logger,
		manager:     manager,
		verifier:    verifier,
		frontendDir: frontendDir,
	}
}

func writeResponse(w http.ResponseWriter, status int, body any) error {
	b, err := json.Marshal(body)
	if err != nil {
		return err
	}

	w.Header().Set("content-type", "application/json")
	if status != http.StatusOK {
		w.WriteHeader(status)
	}

	w.Write(b)
	return nil
}

func writeError(w http.ResponseWriter, status int, msg string) error {
	return writeResponse(w, status, ErrorResponse{Error: msg})
}

// writeManagerError maps a manager failure onto the API error contract. The
// fallback message is used for failures the caller should not see verbatim.
func writeManagerError(w http.ResponseWriter, err error, fallback string) error {
	switch {
	case errors.Is(err, manager.ErrQueryRequired),
		errors.Is(err, manager.ErrInvalidInteraction),
		errors.Is(err, manager.ErrRatingRange),
		errors.Is(err, manager.ErrInvalidRequest):
		return writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, storage.ErrNotFound):
		return writeError(w, http.StatusNotFound, "media item not found")
	default:
		return writeError(w, http.StatusInternalServerError, fallback)
	}
}

// Serve starts the http server and is a blocking call
func (s Server) Serve(port int) error {
	rtr := mux.NewRouter()
	rtr.Use(s.LogMiddleware())
	rtr.HandleFunc("/healthz", s.Healthz()).Methods(http.MethodGet)

	api := rtr.PathPrefix("/api").Subrouter()
	api.Use(s.AuthMiddleware())

	api.HandleFunc("/search", s.SearchMedia()).Methods(http.MethodGet)

	api.HandleFunc("/library", s.ListLibrary()).Methods(http.MethodGet)
	api.HandleFunc("/library", s.AddToLibrary()).Methods(http.MethodPost)
	api.HandleFunc("/library/{id}", s.UpdateLibraryItem()).Methods(http.MethodPut)
	api.HandleFunc("/library/{id}", s.DeleteLibraryItem()).Methods(http.MethodDelete)

	api.HandleFunc("/movies/{movieId}/interactions", s.GetInteractions()).Methods(http.MethodGet)
	api.HandleFunc("/movies/{movieId}/interactions", s.UpdateInteraction()).Methods(http.MethodPost)

	rtr.PathPrefix("/").Handler(s.Frontend())

	corsHandler := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedHeaders([]string{"Authorization", "Content-Type"}),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete}),
	)(rtr)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: corsHandler,
	}

	go func() {
		s.baseLogger.Info("serving...", zap.Int("port", port))
		if err := srv.ListenAndServe(); err != nil {
			s.baseLogger.Error(err.Error())
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	<-c

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*3)
	defer cancel()

	return srv.Shutdown(ctx)
}

// Healthz is an endpoint that can be used for probes
func (s Server) Healthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeResponse(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

// SearchMedia proxies a search across the movie and tv catalogs
func (s Server) SearchMedia() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())

		query := r.URL.Query().Get("query")

		results, err := s.manager.SearchMedia(r.Context(), query)
		if err != nil {
			log.Error("search failed", zap.Error(err))
			writeManagerError(w, err, "failed to search media")
			return
		}

		if err := writeResponse(w, http.StatusOK, results); err != nil {
			log.Error("failed to write response", zap.Error(err))
		}
	}
}
