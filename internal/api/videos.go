package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"aeromart/internal/common"
	"aeromart/internal/constants"
	"aeromart/internal/models/dtos"
	"aeromart/internal/models/entities"
)

// GetVideosHandler handles GET /api/videos/lists.
func GetVideosHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		videos, err := deps.Repo.Video.FindAll(r.Context())
		if err != nil {
			respondServiceError(w, err, "Failed to fetch videos")
			return
		}
		message := "Videos found"
		if len(videos) == 0 {
			message = "No videos found"
		}
		common.RespondSuccess(w, message, videos)
	}
}

// CreateVideoHandler handles POST /api/videos. The video file is the
// whole payload.
func CreateVideoHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(multipartMemoryLimit); err != nil {
			common.RespondError(w, err, constants.MsgInvalidPayload, http.StatusBadRequest)
			return
		}

		src, err := uploadSingleFile(r, "video", deps.Services.Media)
		if err != nil {
			respondServiceError(w, err, "Video upload failed")
			return
		}
		if src == "" {
			common.RespondError(w, nil, "No file uploaded", http.StatusBadRequest)
			return
		}

		video := &entities.Video{Src: src}
		if err := deps.Repo.Video.Insert(r.Context(), video); err != nil {
			respondServiceError(w, err, "Failed to create video")
			return
		}
		common.RespondSuccess(w, "Video created", video, http.StatusCreated)
	}
}

// DeleteVideoHandler handles DELETE /api/videos/delete/{id}.
func DeleteVideoHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		video, err := deps.Repo.Video.Delete(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			respondServiceError(w, err, "Video not found")
			return
		}
		common.RespondSuccess(w, "Video deleted", video)
	}
}

// BulkDeleteVideosHandler handles DELETE /api/videos/bulkDelete.
func BulkDeleteVideosHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dtos.BulkDeleteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || len(req.IDs) == 0 {
			common.RespondError(w, err, "ids array is required", http.StatusBadRequest)
			return
		}

		deleted, err := deps.Repo.Video.BulkDelete(r.Context(), req.IDs)
		if err != nil {
			respondServiceError(w, err, "Bulk delete failed")
			return
		}
		common.RespondSuccess(w, "Videos deleted", map[string]int64{"deletedCount": deleted})
	}
}
