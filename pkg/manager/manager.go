package manager

import (
	"github.com/go-playground/validator/v10"
	"github.com/screenlog/screenlog/pkg/storage"
	"github.com/screenlog/screenlog/pkg/tmdb"
)

type TMDBClientInterface tmdb.ClientInterface

// MediaManager coordinates the catalog client and the store. All handles are
// passed in so tests can substitute fakes.
type MediaManager struct {
	tmdb     TMDBClientInterface
	storage  storage.Storage
	validate *validator.Validate
}

// New creates a new media manager
func New(tmdbClient TMDBClientInterface, store storage.Storage) MediaManager {
	return MediaManager{
		tmdb:     tmdbClient,
		storage:  store,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Watch statuses a library item can be in
const (
	StatusPlanToWatch = "Plan to Watch"
	StatusWatching    = "Watching"
	StatusCompleted   = "Completed"
	StatusOnHold      = "On Hold"
	StatusDropped     = "Dropped"
)

// WatchStatuses lists every valid library item status
var WatchStatuses = []string{
	StatusPlanToWatch,
	StatusWatching,
	StatusCompleted,
	StatusOnHold,
	StatusDropped,
}
