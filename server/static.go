package server

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// Frontend serves the static frontend. The dashboard is the landing page and
// any path that is not a known asset falls back to index.html so the login
// flow can take over client-side.
func (s Server) Frontend() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/api") {
			writeError(w, http.StatusNotFound, "not found")
			return
		}

		if r.URL.Path == "/" {
			http.ServeFile(w, r, filepath.Join(s.frontendDir, "dashboard.html"))
			return
		}

		// keep requests inside the frontend directory
		rel := filepath.Clean(strings.TrimPrefix(r.URL.Path, "/"))
		if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			writeError(w, http.StatusNotFound, "not found")
			return
		}

		path := filepath.Join(s.frontendDir, rel)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			http.ServeFile(w, r, path)
			return
		}

		http.ServeFile(w, r, filepath.Join(s.frontendDir, "index.html"))
	}
}
