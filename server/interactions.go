package server

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/screenlog/screenlog/pkg/logger"
	"github.com/screenlog/screenlog/pkg/manager"
	"go.uber.org/zap"
)

// GetInteractions returns the caller's interactions with a movie, defaulted
// when the movie was never interacted with
func (s Server) GetInteractions() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())
		user := UserFromCtx(r.Context())

		movieID := mux.Vars(r)["movieId"]

		interaction, err := s.manager.GetInteractions(r.Context(), user.ID, movieID)
		if err != nil {
			log.Error("failed to get interactions", zap.String("movie_id", movieID), zap.Error(err))
			writeManagerError(w, err, "failed to get movie interactions")
			return
		}

		if err := writeResponse(w, http.StatusOK, interaction); err != nil {
			log.Error("failed to write response", zap.Error(err))
		}
	}
}

// UpdateInteraction toggles or rates a single interaction field for a movie
func (s Server) UpdateInteraction() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())
		user := UserFromCtx(r.Context())

		movieID := mux.Vars(r)["movieId"]

		b, err := io.ReadAll(r.Body)
		if err != nil {
			log.Debug("invalid request body", zap.Error(err))
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		var request manager.InteractionUpdateRequest
		if err := json.Unmarshal(b, &request); err != nil {
			log.Debug("invalid request body", zap.ByteString("body", b))
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		interaction, err := s.manager.UpdateInteraction(r.Context(), user.ID, movieID, request)
		if err != nil {
			log.Error("failed to update interaction", zap.String("movie_id", movieID), zap.Error(err))
			writeManagerError(w, err, "failed to update movie interaction")
			return
		}

		if err := writeResponse(w, http.StatusOK, interaction); err != nil {
			log.Error("failed to write response", zap.Error(err))
		}
	}
}
