package api

import (
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"aeromart/internal/logging"
)

// ServeMediaHandler handles GET /api/media/{id}, streaming a stored
// file out of the media bucket.
func ServeMediaHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		file, err := deps.Services.Media.Open(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			respondServiceError(w, err, "File not found")
			return
		}
		defer file.Close()

		w.Header().Set("Content-Type", file.ContentType)
		w.Header().Set("Content-Length", strconv.FormatInt(file.Length, 10))
		w.Header().Set("Cache-Control", "public, max-age=86400")

		if _, err := io.Copy(w, file); err != nil {
			logging.Warn("media stream interrupted", "error", err.Error())
		}
	}
}
