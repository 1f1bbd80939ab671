package sqlite

import (
	"context"
	"errors"
	"time"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/go-jet/jet/v2/sqlite"
	"github.com/screenlog/screenlog/pkg/logger"
	"github.com/screenlog/screenlog/pkg/storage"
	"github.com/screenlog/screenlog/pkg/storage/sqlite/schema/gen/model"
	"github.com/screenlog/screenlog/pkg/storage/sqlite/schema/gen/table"
)

// CreateMediaItem stores a new library item and returns the stored row
func (s *SQLite) CreateMediaItem(ctx context.Context, item model.MediaItem) (*model.MediaItem, error) {
	stmt := table.MediaItem.
		INSERT(
			table.MediaItem.UserID,
			table.MediaItem.APIID,
			table.MediaItem.MediaType,
			table.MediaItem.Title,
			table.MediaItem.PosterPath,
			table.MediaItem.Status,
			table.MediaItem.UserRating).
		MODEL(item)

	result, err := stmt.ExecContext(ctx, s.db)
	if err != nil {
		return nil, err
	}

	inserted, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	return s.GetMediaItem(ctx, inserted, item.UserID)
}

// GetMediaItem fetches a single library item owned by the given user
func (s *SQLite) GetMediaItem(ctx context.Context, id int64, userID string) (*model.MediaItem, error) {
	stmt := table.MediaItem.
		SELECT(table.MediaItem.AllColumns).
		WHERE(
			table.MediaItem.ID.EQ(sqlite.Int(id)).
				AND(table.MediaItem.UserID.EQ(sqlite.String(userID))),
		)

	item := new(model.MediaItem)
	err := stmt.QueryContext(ctx, s.db, item)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, err
	}

	return item, nil
}

// ListMediaItems lists the library items owned by the given user
func (s *SQLite) ListMediaItems(ctx context.Context, userID string) ([]*model.MediaItem, error) {
	log := logger.FromCtx(ctx)

	items := make([]*model.MediaItem, 0)

	stmt := table.MediaItem.
		SELECT(table.MediaItem.AllColumns).
		WHERE(table.MediaItem.UserID.EQ(sqlite.String(userID))).
		ORDER_BY(table.MediaItem.ID.ASC())

	err := stmt.QueryContext(ctx, s.db, &items)
	if err != nil {
		log.Errorf("failed to list media items: %v", err)
		return nil, err
	}

	return items, nil
}

// UpdateMediaItem applies a partial update to a library item owned by the
// given user. Unspecified fields keep their stored values.
func (s *SQLite) UpdateMediaItem(ctx context.Context, id int64, userID string, update storage.MediaItemUpdate) (*model.MediaItem, error) {
	existing, err := s.GetMediaItem(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if update.Status.IsSpecified() {
		status, err := update.Status.Get()
		if err != nil {
			return nil, err
		}
		existing.Status = status
	}

	if update.UserRating.IsSpecified() {
		if update.UserRating.IsNull() {
			existing.UserRating = nil
		} else {
			rating, err := update.UserRating.Get()
			if err != nil {
				return nil, err
			}
			existing.UserRating = &rating
		}
	}

	existing.UpdatedAt = time.Now().UTC()

	stmt := table.MediaItem.
		UPDATE(table.MediaItem.MutableColumns).
		MODEL(existing).
		WHERE(
			table.MediaItem.ID.EQ(sqlite.Int(id)).
				AND(table.MediaItem.UserID.EQ(sqlite.String(userID))),
		)

	_, err = stmt.ExecContext(ctx, s.db)
	if err != nil {
		return nil, err
	}

	return s.GetMediaItem(ctx, id, userID)
}

// DeleteMediaItem hard deletes a library item owned by the given user.
// Deleting a row that does not exist, or that belongs to someone else, is not
// an error.
func (s *SQLite) DeleteMediaItem(ctx context.Context, id int64, userID string) error {
	stmt := table.MediaItem.
		DELETE().
		WHERE(
			table.MediaItem.ID.EQ(sqlite.Int(id)).
				AND(table.MediaItem.UserID.EQ(sqlite.String(userID))),
		)

	_, err := stmt.ExecContext(ctx, s.db)
	return err
}
