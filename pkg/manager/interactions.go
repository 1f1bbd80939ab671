package manager

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/screenlog/screenlog/pkg/logger"
	"github.com/screenlog/screenlog/pkg/storage"
	"github.com/screenlog/screenlog/pkg/storage/sqlite/schema/gen/model"
	"go.uber.org/zap"
)

// Interaction types a movie record accepts
const (
	InteractionWatched   = "watched"
	InteractionWatchlist = "watchlist"
	InteractionLiked     = "liked"
	InteractionRating    = "rating"
)

// InteractionUpdateRequest addresses a single field of an interaction record.
// Value is a boolean for watched/watchlist/liked and a number for rating.
type InteractionUpdateRequest struct {
	Type  string          `json:"type"`
	Value json.RawMessage `json:"value"`
}

// GetInteractions returns the stored interaction record for a (user, movie)
// pair. A pair that was never interacted with yields an all-default record
// rather than an error.
func (m MediaManager) GetInteractions(ctx context.Context, userID, movieID string) (*model.MovieInteraction, error) {
	interaction, err := m.storage.GetMovieInteraction(ctx, userID, movieID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return &model.MovieInteraction{
				UserID:  userID,
				MovieID: movieID,
			}, nil
		}
		return nil, err
	}

	return interaction, nil
}

// UpdateInteraction applies a single-field update to the interaction record
// for a (user, movie) pair, creating the record on first interaction. Only the
// addressed field changes; the rest keep their stored values. The canonical
// stored record is re-read after the write and returned.
func (m MediaManager) UpdateInteraction(ctx context.Context, userID, movieID string, req InteractionUpdateRequest) (*model.MovieInteraction, error) {
	log := logger.FromCtx(ctx)

	apply, err := parseInteraction(req)
	if err != nil {
		log.Debug("rejecting interaction update", zap.String("type", req.Type), zap.Error(err))
		return nil, err
	}

	existing, err := m.storage.GetMovieInteraction(ctx, userID, movieID)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			return nil, err
		}
		// first interaction with this title; all other fields start at defaults
		existing = &model.MovieInteraction{
			UserID:  userID,
			MovieID: movieID,
		}
	}

	apply(existing)

	if err := m.storage.UpsertMovieInteraction(ctx, *existing); err != nil {
		log.Error("failed to persist interaction", zap.Error(err))
		return nil, err
	}

	return m.storage.GetMovieInteraction(ctx, userID, movieID)
}

// parseInteraction validates the requested update and returns a function that
// applies it to a record. Nothing is written until validation has passed.
func parseInteraction(req InteractionUpdateRequest) (func(*model.MovieInteraction), error) {
	switch req.Type {
	case InteractionWatched, InteractionWatchlist, InteractionLiked:
		var value bool
		if err := json.Unmarshal(req.Value, &value); err != nil {
			return nil, fmt.Errorf("%w: %s value must be a boolean", ErrInvalidRequest, req.Type)
		}

		return func(i *model.MovieInteraction) {
			switch req.Type {
			case InteractionWatched:
				i.Watched = value
			case InteractionWatchlist:
				i.InWatchlist = value
			case InteractionLiked:
				i.Liked = value
			}
		}, nil
	case InteractionRating:
		var value int32
		if err := json.Unmarshal(req.Value, &value); err != nil {
			return nil, fmt.Errorf("%w: rating value must be a whole number", ErrInvalidRequest)
		}
		if value < 0 || value > 5 {
			return nil, ErrRatingRange
		}

		return func(i *model.MovieInteraction) {
			i.Rating = value
		}, nil
	default:
		return nil, ErrInvalidInteraction
	}
}
