package sqlite

import (
	"context"
	"errors"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/go-jet/jet/v2/sqlite"
	"github.com/screenlog/screenlog/pkg/storage"
	"github.com/screenlog/screenlog/pkg/storage/sqlite/schema/gen/model"
	"github.com/screenlog/screenlog/pkg/storage/sqlite/schema/gen/table"
)

// GetMovieInteraction fetches the interaction record for a (user, movie) pair
func (s *SQLite) GetMovieInteraction(ctx context.Context, userID, movieID string) (*model.MovieInteraction, error) {
	stmt := table.MovieInteraction.
		SELECT(table.MovieInteraction.AllColumns).
		WHERE(
			table.MovieInteraction.UserID.EQ(sqlite.String(userID)).
				AND(table.MovieInteraction.MovieID.EQ(sqlite.String(movieID))),
		)

	interaction := new(model.MovieInteraction)
	err := stmt.QueryContext(ctx, s.db, interaction)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, err
	}

	return interaction, nil
}

// UpsertMovieInteraction writes an interaction record, keyed on the unique
// (user_id, movie_id) pair, so a concurrent first write cannot produce two rows.
func (s *SQLite) UpsertMovieInteraction(ctx context.Context, interaction model.MovieInteraction) error {
	stmt := table.MovieInteraction.
		INSERT(
			table.MovieInteraction.UserID,
			table.MovieInteraction.MovieID,
			table.MovieInteraction.Watched,
			table.MovieInteraction.InWatchlist,
			table.MovieInteraction.Liked,
			table.MovieInteraction.Rating).
		MODEL(interaction).
		ON_CONFLICT(table.MovieInteraction.UserID, table.MovieInteraction.MovieID).
		DO_UPDATE(sqlite.SET(
			table.MovieInteraction.Watched.SET(table.MovieInteraction.EXCLUDED.Watched),
			table.MovieInteraction.InWatchlist.SET(table.MovieInteraction.EXCLUDED.InWatchlist),
			table.MovieInteraction.Liked.SET(table.MovieInteraction.EXCLUDED.Liked),
			table.MovieInteraction.Rating.SET(table.MovieInteraction.EXCLUDED.Rating),
			table.MovieInteraction.UpdatedAt.SET(sqlite.CURRENT_TIMESTAMP()),
		))

	_, err := stmt.ExecContext(ctx, s.db)
	return err
}
