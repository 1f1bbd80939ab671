package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/oapi-codegen/nullable"
	"github.com/screenlog/screenlog/pkg/storage"
	"github.com/screenlog/screenlog/pkg/storage/sqlite/schema/gen/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit(t *testing.T) {
	store := initSqlite(t, context.Background())
	assert.NotNil(t, store)
}

func TestInitIdempotent(t *testing.T) {
	ctx := context.Background()
	store := initSqlite(t, ctx)

	err := store.Init(ctx)
	assert.Nil(t, err)
}

func TestMediaItemStorage(t *testing.T) {
	ctx := context.Background()
	store := initSqlite(t, ctx)

	items, err := store.ListMediaItems(ctx, "user-1")
	assert.Nil(t, err)
	assert.Empty(t, items)

	poster := "/matrix.jpg"
	created, err := store.CreateMediaItem(ctx, model.MediaItem{
		UserID:     "user-1",
		APIID:      "603",
		MediaType:  "movie",
		Title:      "The Matrix",
		PosterPath: &poster,
		Status:     "Plan to Watch",
	})
	require.Nil(t, err)
	assert.NotZero(t, created.ID)
	assert.NotEmpty(t, created.CreatedAt)
	assert.Equal(t, "Plan to Watch", created.Status)
	assert.Nil(t, created.UserRating)

	got, err := store.GetMediaItem(ctx, int64(created.ID), "user-1")
	assert.Nil(t, err)
	assert.Equal(t, created, got)

	items, err = store.ListMediaItems(ctx, "user-1")
	assert.Nil(t, err)
	assert.Len(t, items, 1)

	err = store.DeleteMediaItem(ctx, int64(created.ID), "user-1")
	assert.Nil(t, err)

	items, err = store.ListMediaItems(ctx, "user-1")
	assert.Nil(t, err)
	assert.Empty(t, items)
}

func TestMediaItemStorage_Update(t *testing.T) {
	ctx := context.Background()
	store := initSqlite(t, ctx)

	created, err := store.CreateMediaItem(ctx, model.MediaItem{
		UserID:    "user-1",
		APIID:     "1396",
		MediaType: "tv",
		Title:     "Breaking Bad",
		Status:    "Plan to Watch",
	})
	require.Nil(t, err)

	// status only; the rating keeps its stored value
	updated, err := store.UpdateMediaItem(ctx, int64(created.ID), "user-1", storage.MediaItemUpdate{
		Status: nullable.NewNullableWithValue("Watching"),
	})
	require.Nil(t, err)
	assert.Equal(t, "Watching", updated.Status)
	assert.Nil(t, updated.UserRating)

	rating := int32(5)
	updated, err = store.UpdateMediaItem(ctx, int64(created.ID), "user-1", storage.MediaItemUpdate{
		UserRating: nullable.NewNullableWithValue(rating),
	})
	require.Nil(t, err)
	assert.Equal(t, "Watching", updated.Status)
	require.NotNil(t, updated.UserRating)
	assert.Equal(t, rating, *updated.UserRating)

	// explicit null clears the rating
	updated, err = store.UpdateMediaItem(ctx, int64(created.ID), "user-1", storage.MediaItemUpdate{
		UserRating: nullable.NewNullNullable[int32](),
	})
	require.Nil(t, err)
	assert.Nil(t, updated.UserRating)

	_, err = store.UpdateMediaItem(ctx, 999, "user-1", storage.MediaItemUpdate{
		Status: nullable.NewNullableWithValue("Completed"),
	})
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestMediaItemStorage_UserScoping(t *testing.T) {
	ctx := context.Background()
	store := initSqlite(t, ctx)

	mine, err := store.CreateMediaItem(ctx, model.MediaItem{
		UserID:    "user-1",
		APIID:     "603",
		MediaType: "movie",
		Title:     "The Matrix",
		Status:    "Plan to Watch",
	})
	require.Nil(t, err)

	// another user's reads never see the row
	_, err = store.GetMediaItem(ctx, int64(mine.ID), "user-2")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	items, err := store.ListMediaItems(ctx, "user-2")
	assert.Nil(t, err)
	assert.Empty(t, items)

	// another user's update does not land
	_, err = store.UpdateMediaItem(ctx, int64(mine.ID), "user-2", storage.MediaItemUpdate{
		Status: nullable.NewNullableWithValue("Dropped"),
	})
	assert.ErrorIs(t, err, storage.ErrNotFound)

	// another user's delete does not remove it
	err = store.DeleteMediaItem(ctx, int64(mine.ID), "user-2")
	assert.Nil(t, err)

	got, err := store.GetMediaItem(ctx, int64(mine.ID), "user-1")
	assert.Nil(t, err)
	assert.Equal(t, "Plan to Watch", got.Status)
}

func TestMediaItemStorage_DeleteMissing(t *testing.T) {
	ctx := context.Background()
	store := initSqlite(t, ctx)

	err := store.DeleteMediaItem(ctx, 42, "user-1")
	assert.Nil(t, err)
}

func TestMovieInteractionStorage(t *testing.T) {
	ctx := context.Background()
	store := initSqlite(t, ctx)

	_, err := store.GetMovieInteraction(ctx, "user-1", "603")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	err = store.UpsertMovieInteraction(ctx, model.MovieInteraction{
		UserID:  "user-1",
		MovieID: "603",
		Watched: true,
	})
	require.Nil(t, err)

	got, err := store.GetMovieInteraction(ctx, "user-1", "603")
	require.Nil(t, err)
	assert.True(t, got.Watched)
	assert.False(t, got.InWatchlist)
	assert.False(t, got.Liked)
	assert.EqualValues(t, 0, got.Rating)
	assert.NotEmpty(t, got.CreatedAt)

	// a second write for the same pair updates the row in place
	err = store.UpsertMovieInteraction(ctx, model.MovieInteraction{
		UserID:  "user-1",
		MovieID: "603",
		Watched: true,
		Liked:   true,
		Rating:  4,
	})
	require.Nil(t, err)

	updated, err := store.GetMovieInteraction(ctx, "user-1", "603")
	require.Nil(t, err)
	assert.Equal(t, got.ID, updated.ID)
	assert.True(t, updated.Liked)
	assert.EqualValues(t, 4, updated.Rating)
}

func TestMovieInteractionStorage_UserScoping(t *testing.T) {
	ctx := context.Background()
	store := initSqlite(t, ctx)

	err := store.UpsertMovieInteraction(ctx, model.MovieInteraction{
		UserID:  "user-1",
		MovieID: "603",
		Liked:   true,
	})
	require.Nil(t, err)

	_, err = store.GetMovieInteraction(ctx, "user-2", "603")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	// the same movie for another user is a distinct row
	err = store.UpsertMovieInteraction(ctx, model.MovieInteraction{
		UserID:  "user-2",
		MovieID: "603",
		Rating:  2,
	})
	require.Nil(t, err)

	mine, err := store.GetMovieInteraction(ctx, "user-1", "603")
	require.Nil(t, err)
	assert.True(t, mine.Liked)
	assert.EqualValues(t, 0, mine.Rating)
}

func TestMediaItemStorage_UpdateTouchesTimestamp(t *testing.T) {
	ctx := context.Background()
	store := initSqlite(t, ctx)

	created, err := store.CreateMediaItem(ctx, model.MediaItem{
		UserID:    "user-1",
		APIID:     "603",
		MediaType: "movie",
		Title:     "The Matrix",
		Status:    "Plan to Watch",
	})
	require.Nil(t, err)

	time.Sleep(10 * time.Millisecond)

	updated, err := store.UpdateMediaItem(ctx, int64(created.ID), "user-1", storage.MediaItemUpdate{
		Status: nullable.NewNullableWithValue("Completed"),
	})
	require.Nil(t, err)
	assert.False(t, updated.UpdatedAt.Before(created.UpdatedAt))
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
}

func initSqlite(t *testing.T, ctx context.Context) storage.Storage {
	store, err := New(":memory:")
	assert.Nil(t, err)

	err = store.Init(ctx)
	assert.Nil(t, err)
	return store
}
