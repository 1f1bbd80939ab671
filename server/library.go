package server

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/screenlog/screenlog/pkg/logger"
	"github.com/screenlog/screenlog/pkg/manager"
	"github.com/screenlog/screenlog/pkg/storage"
	"go.uber.org/zap"
)

// ListLibrary lists the caller's saved titles
func (s Server) ListLibrary() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())
		user := UserFromCtx(r.Context())

		items, err := s.manager.ListMediaItems(r.Context(), user.ID)
		if err != nil {
			log.Error("failed to list media items", zap.Error(err))
			writeManagerError(w, err, "failed to fetch library")
			return
		}

		if err := writeResponse(w, http.StatusOK, items); err != nil {
			log.Error("failed to write response", zap.Error(err))
		}
	}
}

// AddToLibrary saves a catalog entry into the caller's library
func (s Server) AddToLibrary() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())
		user := UserFromCtx(r.Context())

		b, err := io.ReadAll(r.Body)
		if err != nil {
			log.Debug("invalid request body", zap.Error(err))
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		var request manager.AddMediaItemRequest
		if err := json.Unmarshal(b, &request); err != nil {
			log.Debug("invalid request body", zap.ByteString("body", b))
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		item, err := s.manager.AddMediaItem(r.Context(), user.ID, request)
		if err != nil {
			log.Error("failed to add media item", zap.Error(err))
			writeManagerError(w, err, "failed to add to library")
			return
		}

		if err := writeResponse(w, http.StatusCreated, item); err != nil {
			log.Error("failed to write response", zap.Error(err))
		}
	}
}

// UpdateLibraryItem applies a partial status/rating edit to a saved title
func (s Server) UpdateLibraryItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())
		user := UserFromCtx(r.Context())

		id, err := parseItemID(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid media item id")
			return
		}

		b, err := io.ReadAll(r.Body)
		if err != nil {
			log.Debug("invalid request body", zap.Error(err))
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		var update storage.MediaItemUpdate
		if err := json.Unmarshal(b, &update); err != nil {
			log.Debug("invalid request body", zap.ByteString("body", b))
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		item, err := s.manager.UpdateMediaItem(r.Context(), user.ID, id, update)
		if err != nil {
			log.Error("failed to update media item", zap.Int64("id", id), zap.Error(err))
			writeManagerError(w, err, "failed to update media item")
			return
		}

		if err := writeResponse(w, http.StatusOK, item); err != nil {
			log.Error("failed to write response", zap.Error(err))
		}
	}
}

// DeleteLibraryItem removes a saved title. The response is the same whether or
// not the item still existed.
func (s Server) DeleteLibraryItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())
		user := UserFromCtx(r.Context())

		id, err := parseItemID(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid media item id")
			return
		}

		if err := s.manager.DeleteMediaItem(r.Context(), user.ID, id); err != nil {
			log.Error("failed to delete media item", zap.Int64("id", id), zap.Error(err))
			writeManagerError(w, err, "failed to delete media item")
			return
		}

		writeResponse(w, http.StatusOK, map[string]string{"message": "Media item deleted successfully"})
	}
}

func parseItemID(r *http.Request) (int64, error) {
	return strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
}
