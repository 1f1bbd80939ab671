package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/screenlog/screenlog/pkg/manager"
	"github.com/screenlog/screenlog/pkg/storage"
	storageMocks "github.com/screenlog/screenlog/pkg/storage/mocks"
	"github.com/screenlog/screenlog/pkg/storage/sqlite/schema/gen/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestServer_GetInteractions(t *testing.T) {
	t.Run("returns the stored record", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := storageMocks.NewMockStorage(ctrl)
		store.EXPECT().GetMovieInteraction(gomock.Any(), "user-1", "603").Return(&model.MovieInteraction{
			ID:      1,
			UserID:  "user-1",
			MovieID: "603",
			Watched: true,
			Rating:  4,
		}, nil)

		s := Server{baseLogger: zap.NewNop().Sugar(), manager: manager.New(nil, store)}

		req := mux.SetURLVars(authedRequest(t, "GET", "/api/movies/603/interactions", nil), map[string]string{"movieId": "603"})

		rr := httptest.NewRecorder()
		s.GetInteractions().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var interaction model.MovieInteraction
		err := json.Unmarshal(rr.Body.Bytes(), &interaction)
		require.NoError(t, err)
		assert.True(t, interaction.Watched)
		assert.EqualValues(t, 4, interaction.Rating)
	})

	t.Run("never interacted yields defaults rather than an error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := storageMocks.NewMockStorage(ctrl)
		store.EXPECT().GetMovieInteraction(gomock.Any(), "user-1", "999").Return(nil, storage.ErrNotFound)

		s := Server{baseLogger: zap.NewNop().Sugar(), manager: manager.New(nil, store)}

		req := mux.SetURLVars(authedRequest(t, "GET", "/api/movies/999/interactions", nil), map[string]string{"movieId": "999"})

		rr := httptest.NewRecorder()
		s.GetInteractions().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var interaction model.MovieInteraction
		err := json.Unmarshal(rr.Body.Bytes(), &interaction)
		require.NoError(t, err)
		assert.Equal(t, "999", interaction.MovieID)
		assert.False(t, interaction.Watched)
		assert.False(t, interaction.InWatchlist)
		assert.False(t, interaction.Liked)
		assert.EqualValues(t, 0, interaction.Rating)
	})
}

func TestServer_UpdateInteraction(t *testing.T) {
	t.Run("toggles a field and returns the stored record", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := storageMocks.NewMockStorage(ctrl)
		store.EXPECT().GetMovieInteraction(gomock.Any(), "user-1", "603").Return(nil, storage.ErrNotFound)
		store.EXPECT().UpsertMovieInteraction(gomock.Any(), model.MovieInteraction{
			UserID:  "user-1",
			MovieID: "603",
			Watched: true,
		}).Return(nil)
		store.EXPECT().GetMovieInteraction(gomock.Any(), "user-1", "603").Return(&model.MovieInteraction{
			ID:      1,
			UserID:  "user-1",
			MovieID: "603",
			Watched: true,
		}, nil)

		s := Server{baseLogger: zap.NewNop().Sugar(), manager: manager.New(nil, store)}

		body := []byte(`{"type":"watched","value":true}`)
		req := mux.SetURLVars(authedRequest(t, "POST", "/api/movies/603/interactions", body), map[string]string{"movieId": "603"})

		rr := httptest.NewRecorder()
		s.UpdateInteraction().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var interaction model.MovieInteraction
		err := json.Unmarshal(rr.Body.Bytes(), &interaction)
		require.NoError(t, err)
		assert.True(t, interaction.Watched)
	})

	t.Run("rejects an unknown interaction type", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := storageMocks.NewMockStorage(ctrl)

		s := Server{baseLogger: zap.NewNop().Sugar(), manager: manager.New(nil, store)}

		body := []byte(`{"type":"favorited","value":true}`)
		req := mux.SetURLVars(authedRequest(t, "POST", "/api/movies/603/interactions", body), map[string]string{"movieId": "603"})

		rr := httptest.NewRecorder()
		s.UpdateInteraction().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)

		var response ErrorResponse
		err := json.Unmarshal(rr.Body.Bytes(), &response)
		assert.NoError(t, err)
		assert.Equal(t, "invalid interaction type", response.Error)
	})

	t.Run("rejects a rating outside the scale", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := storageMocks.NewMockStorage(ctrl)

		s := Server{baseLogger: zap.NewNop().Sugar(), manager: manager.New(nil, store)}

		body := []byte(`{"type":"rating","value":9}`)
		req := mux.SetURLVars(authedRequest(t, "POST", "/api/movies/603/interactions", body), map[string]string{"movieId": "603"})

		rr := httptest.NewRecorder()
		s.UpdateInteraction().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)

		var response ErrorResponse
		err := json.Unmarshal(rr.Body.Bytes(), &response)
		assert.NoError(t, err)
		assert.Equal(t, "rating must be between 0 and 5", response.Error)
	})

	t.Run("rejects a body that is not json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := storageMocks.NewMockStorage(ctrl)

		s := Server{baseLogger: zap.NewNop().Sugar(), manager: manager.New(nil, store)}

		req := mux.SetURLVars(authedRequest(t, "POST", "/api/movies/603/interactions", []byte("not json")), map[string]string{"movieId": "603"})

		rr := httptest.NewRecorder()
		s.UpdateInteraction().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}
