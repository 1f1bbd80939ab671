package manager

import (
	"context"
	"fmt"
	"slices"

	"github.com/screenlog/screenlog/pkg/storage"
	"github.com/screenlog/screenlog/pkg/storage/sqlite/schema/gen/model"
)

// AddMediaItemRequest is the payload for adding a catalog entry to a library
type AddMediaItemRequest struct {
	ApiID      string  `json:"api_id" validate:"required"`
	MediaType  string  `json:"media_type" validate:"required,oneof=movie tv"`
	Title      string  `json:"title" validate:"required"`
	PosterPath *string `json:"poster_path"`
}

// AddMediaItem saves a catalog entry into the caller's library with the
// default watch status
func (m MediaManager) AddMediaItem(ctx context.Context, userID string, req AddMediaItemRequest) (*model.MediaItem, error) {
	if err := m.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidRequest, err)
	}

	item := model.MediaItem{
		UserID:     userID,
		APIID:      req.ApiID,
		MediaType:  req.MediaType,
		Title:      req.Title,
		PosterPath: req.PosterPath,
		Status:     StatusPlanToWatch,
	}

	return m.storage.CreateMediaItem(ctx, item)
}

// ListMediaItems lists the caller's library
func (m MediaManager) ListMediaItems(ctx context.Context, userID string) ([]*model.MediaItem, error) {
	return m.storage.ListMediaItems(ctx, userID)
}

// UpdateMediaItem applies a partial {status, user_rating} update to one of the
// caller's library items. Fields absent from the payload are left untouched.
func (m MediaManager) UpdateMediaItem(ctx context.Context, userID string, id int64, update storage.MediaItemUpdate) (*model.MediaItem, error) {
	if update.Status.IsSpecified() {
		if update.Status.IsNull() {
			return nil, fmt.Errorf("%w: status cannot be null", ErrInvalidRequest)
		}

		status, err := update.Status.Get()
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrInvalidRequest, err)
		}
		if !slices.Contains(WatchStatuses, status) {
			return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidRequest, status)
		}
	}

	if update.UserRating.IsSpecified() && !update.UserRating.IsNull() {
		rating, err := update.UserRating.Get()
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrInvalidRequest, err)
		}
		if rating < 0 || rating > 5 {
			return nil, ErrRatingRange
		}
	}

	return m.storage.UpdateMediaItem(ctx, id, userID, update)
}

// DeleteMediaItem removes one of the caller's library items. Deleting an item
// that is already gone is not an error.
func (m MediaManager) DeleteMediaItem(ctx context.Context, userID string, id int64) error {
	return m.storage.DeleteMediaItem(ctx, id, userID)
}
