package tmdb_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/screenlog/screenlog/pkg/tmdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_SearchMovie(t *testing.T) {
	var gotPath, gotQuery, gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		gotPath = req.URL.Path
		gotQuery = req.URL.Query().Get("query")
		gotAuth = req.Header.Get("Authorization")
		rw.Write([]byte(`{"page":1,"results":[{"id":603,"title":"The Matrix","popularity":83.2}]}`))
	}))
	defer server.Close()

	c, err := tmdb.New(server.URL, "test-key", tmdb.WithHTTPClient(server.Client()))
	require.NoError(t, err)

	res, err := c.SearchMovie(context.Background(), &tmdb.SearchMovieParams{Query: "matrix"})
	require.NoError(t, err)
	defer res.Body.Close()

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "/3/search/movie", gotPath)
	assert.Equal(t, "matrix", gotQuery)
	assert.Equal(t, "Bearer test-key", gotAuth)

	var page tmdb.SearchMovieResponse
	err = json.NewDecoder(res.Body).Decode(&page)
	require.NoError(t, err)
	require.Len(t, page.Results, 1)
	assert.Equal(t, "The Matrix", *page.Results[0].Title)
}

func TestClient_SearchTV(t *testing.T) {
	var gotPath, gotPage string
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		gotPath = req.URL.Path
		gotPage = req.URL.Query().Get("page")
		rw.Write([]byte(`{"page":2,"results":[{"id":1396,"name":"Breaking Bad","popularity":450.1}]}`))
	}))
	defer server.Close()

	c, err := tmdb.New(server.URL, "test-key", tmdb.WithHTTPClient(server.Client()))
	require.NoError(t, err)

	page := 2
	res, err := c.SearchTV(context.Background(), &tmdb.SearchTVParams{Query: "breaking", Page: &page})
	require.NoError(t, err)
	defer res.Body.Close()

	assert.Equal(t, "/3/search/tv", gotPath)
	assert.Equal(t, "2", gotPage)

	var body tmdb.SearchTVResponse
	err = json.NewDecoder(res.Body).Decode(&body)
	require.NoError(t, err)
	require.Len(t, body.Results, 1)
	assert.Equal(t, "Breaking Bad", *body.Results[0].Name)
}

func TestNew_BadURL(t *testing.T) {
	_, err := tmdb.New("://not-a-url", "key")
	assert.Error(t, err)
}
