package manager

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/screenlog/screenlog/pkg/logger"
	"github.com/screenlog/screenlog/pkg/tmdb"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const searchResultLimit = 20

// SearchResult is a catalog entry normalized across the movie and tv catalogs
type SearchResult struct {
	ID         string  `json:"id"`
	MediaType  string  `json:"media_type"`
	Title      string  `json:"title"`
	PosterPath *string `json:"poster_path"`
	Popularity float32 `json:"popularity"`
}

// SearchMedia queries the movie and tv catalogs for the given title and merges
// the results into a single list ranked by popularity. Both lookups must
// succeed; partial results are never returned. A title present in both
// catalogs shows up twice.
func (m MediaManager) SearchMedia(ctx context.Context, query string) ([]SearchResult, error) {
	log := logger.FromCtx(ctx)

	if strings.TrimSpace(query) == "" {
		log.Debug("rejecting empty search query")
		return nil, ErrQueryRequired
	}

	var movies *tmdb.SearchMovieResponse
	var shows *tmdb.SearchTVResponse

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		res, err := m.tmdb.SearchMovie(gctx, &tmdb.SearchMovieParams{Query: query})
		if err != nil {
			return fmt.Errorf("%w: %s", ErrUpstream, err)
		}
		defer res.Body.Close()

		movies, err = parseSearchPage[tmdb.SearchMovieResponse](res)
		return err
	})
	g.Go(func() error {
		res, err := m.tmdb.SearchTV(gctx, &tmdb.SearchTVParams{Query: query})
		if err != nil {
			return fmt.Errorf("%w: %s", ErrUpstream, err)
		}
		defer res.Body.Close()

		shows, err = parseSearchPage[tmdb.SearchTVResponse](res)
		return err
	})

	if err := g.Wait(); err != nil {
		log.Error("catalog search failed", zap.Error(err))
		return nil, err
	}

	results := make([]SearchResult, 0, len(movies.Results)+len(shows.Results))

	for _, movie := range movies.Results {
		if movie == nil || movie.ID == nil {
			continue
		}
		if movie.Popularity == nil {
			return nil, fmt.Errorf("%w: movie result %d missing popularity", ErrUpstream, *movie.ID)
		}

		var title string
		if movie.Title != nil {
			title = *movie.Title
		}

		results = append(results, SearchResult{
			ID:         strconv.Itoa(*movie.ID),
			MediaType:  "movie",
			Title:      title,
			PosterPath: movie.PosterPath,
			Popularity: *movie.Popularity,
		})
	}

	for _, show := range shows.Results {
		if show == nil || show.ID == nil {
			continue
		}
		if show.Popularity == nil {
			return nil, fmt.Errorf("%w: tv result %d missing popularity", ErrUpstream, *show.ID)
		}

		// the tv catalog uses name where the movie catalog uses title
		var title string
		if show.Name != nil {
			title = *show.Name
		}

		results = append(results, SearchResult{
			ID:         strconv.Itoa(*show.ID),
			MediaType:  "tv",
			Title:      title,
			PosterPath: show.PosterPath,
			Popularity: *show.Popularity,
		})
	}

	// stable so equally popular entries keep movie-before-tv merge order
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Popularity > results[j].Popularity
	})

	if len(results) > searchResultLimit {
		results = results[:searchResultLimit]
	}

	return results, nil
}

func parseSearchPage[T any](res *http.Response) (*T, error) {
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: catalog returned status %d", ErrUpstream, res.StatusCode)
	}

	b, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUpstream, err)
	}

	page := new(T)
	if err := json.Unmarshal(b, page); err != nil {
		return nil, fmt.Errorf("%w: failed to parse catalog response: %s", ErrUpstream, err)
	}

	return page, nil
}
