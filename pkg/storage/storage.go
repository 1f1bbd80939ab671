package storage

import (
	"context"
	"errors"

	"github.com/oapi-codegen/nullable"
	"github.com/screenlog/screenlog/pkg/storage/sqlite/schema/gen/model"
)

var ErrNotFound = errors.New("not found in storage")

type Storage interface {
	Init(ctx context.Context) error
	MediaItemStorage
	InteractionStorage
}

// MediaItemUpdate is a partial update of a library item. Fields left
// unspecified are not touched; an explicit null clears the rating.
type MediaItemUpdate struct {
	Status     nullable.Nullable[string] `json:"status,omitempty"`
	UserRating nullable.Nullable[int32]  `json:"user_rating,omitempty"`
}

// MediaItemStorage persists a user's library. Every read and write is scoped
// by the owning user's id; a row belonging to another user is indistinguishable
// from an absent one.
type MediaItemStorage interface {
	CreateMediaItem(ctx context.Context, item model.MediaItem) (*model.MediaItem, error)
	GetMediaItem(ctx context.Context, id int64, userID string) (*model.MediaItem, error)
	ListMediaItems(ctx context.Context, userID string) ([]*model.MediaItem, error)
	UpdateMediaItem(ctx context.Context, id int64, userID string, update MediaItemUpdate) (*model.MediaItem, error)
	DeleteMediaItem(ctx context.Context, id int64, userID string) error
}

// InteractionStorage persists per-user per-title interaction records.
type InteractionStorage interface {
	GetMovieInteraction(ctx context.Context, userID, movieID string) (*model.MovieInteraction, error)
	UpsertMovieInteraction(ctx context.Context, interaction model.MovieInteraction) error
}
