package tmdb

// SearchMovieResponse is a page of movie search results
type SearchMovieResponse struct {
	Page         *int           `json:"page,omitempty"`
	TotalPages   *int           `json:"total_pages,omitempty"`
	TotalResults *int           `json:"total_results,omitempty"`
	Results      []*MovieResult `json:"results,omitempty"`
}

// SearchTVResponse is a page of tv search results
type SearchTVResponse struct {
	Page         *int        `json:"page,omitempty"`
	TotalPages   *int        `json:"total_pages,omitempty"`
	TotalResults *int        `json:"total_results,omitempty"`
	Results      []*TVResult `json:"results,omitempty"`
}

// MovieResult is a single movie as returned by the search endpoint
type MovieResult struct {
	Adult            *bool    `json:"adult,omitempty"`
	BackdropPath     *string  `json:"backdrop_path,omitempty"`
	GenreIds         *[]int   `json:"genre_ids,omitempty"`
	ID               *int     `json:"id,omitempty"`
	OriginalLanguage *string  `json:"original_language,omitempty"`
	OriginalTitle    *string  `json:"original_title,omitempty"`
	Overview         *string  `json:"overview,omitempty"`
	Popularity       *float32 `json:"popularity,omitempty"`
	PosterPath       *string  `json:"poster_path,omitempty"`
	ReleaseDate      *string  `json:"release_date,omitempty"`
	Title            *string  `json:"title,omitempty"`
	VoteAverage      *float32 `json:"vote_average,omitempty"`
	VoteCount        *int     `json:"vote_count,omitempty"`
}

// TVResult is a single series as returned by the search endpoint.
// TMDB uses name rather than title for series.
type TVResult struct {
	Adult            *bool    `json:"adult,omitempty"`
	BackdropPath     *string  `json:"backdrop_path,omitempty"`
	FirstAirDate     *string  `json:"first_air_date,omitempty"`
	GenreIds         *[]int   `json:"genre_ids,omitempty"`
	ID               *int     `json:"id,omitempty"`
	Name             *string  `json:"name,omitempty"`
	OriginalLanguage *string  `json:"original_language,omitempty"`
	OriginalName     *string  `json:"original_name,omitempty"`
	Overview         *string  `json:"overview,omitempty"`
	Popularity       *float32 `json:"popularity,omitempty"`
	PosterPath       *string  `json:"poster_path,omitempty"`
	VoteAverage      *float32 `json:"vote_average,omitempty"`
	VoteCount        *int     `json:"vote_count,omitempty"`
}
