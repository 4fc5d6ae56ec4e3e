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

type reviewRequest struct {
	Name     string `json:"name"`
	Review   string `json:"review"`
	Location string `json:"location"`
}

// GetReviewsHandler handles GET /api/reviews/lists.
func GetReviewsHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reviews, err := deps.Repo.Review.FindAll(r.Context())
		if err != nil {
			respondServiceError(w, err, "Failed to fetch reviews")
			return
		}
		message := "Reviews found"
		if len(reviews) == 0 {
			message = "No reviews found"
		}
		common.RespondSuccess(w, message, reviews)
	}
}

// GetReviewByIdHandler handles GET /api/reviews/lists/{id}.
func GetReviewByIdHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		review, err := deps.Repo.Review.FindByID(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			respondServiceError(w, err, "Review not found")
			return
		}
		common.RespondSuccess(w, "Review found", review)
	}
}

// CreateReviewHandler handles POST /api/reviews.
func CreateReviewHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req reviewRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, err, constants.MsgInvalidPayload, http.StatusBadRequest)
			return
		}
		if req.Name == "" || req.Review == "" || req.Location == "" {
			common.RespondError(w, nil, constants.MsgMissingFields, http.StatusBadRequest)
			return
		}

		review := &entities.Review{Name: req.Name, Review: req.Review, Location: req.Location}
		if err := deps.Repo.Review.Insert(r.Context(), review); err != nil {
			respondServiceError(w, err, "Failed to create review")
			return
		}
		common.RespondSuccess(w, "Review created", review, http.StatusCreated)
	}
}

// UpdateReviewHandler handles PUT /api/reviews/update/{id}.
func UpdateReviewHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req reviewRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, err, constants.MsgInvalidPayload, http.StatusBadRequest)
			return
		}

		review, err := deps.Repo.Review.Update(r.Context(), chi.URLParam(r, "id"), req.Name, req.Review, req.Location)
		if err != nil {
			respondServiceError(w, err, "Review not found")
			return
		}
		common.RespondSuccess(w, "Review updated", review)
	}
}

// DeleteReviewHandler handles DELETE /api/reviews/delete/{id}.
func DeleteReviewHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		review, err := deps.Repo.Review.Delete(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			respondServiceError(w, err, "Review not found")
			return
		}
		common.RespondSuccess(w, "Review deleted", review)
	}
}

// BulkDeleteReviewsHandler handles DELETE /api/reviews/bulkDelete.
func BulkDeleteReviewsHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dtos.BulkDeleteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || len(req.IDs) == 0 {
			common.RespondError(w, err, constants.MsgInvalidPayload, http.StatusBadRequest)
			return
		}

		deleted, err := deps.Repo.Review.BulkDelete(r.Context(), req.IDs)
		if err != nil {
			respondServiceError(w, err, "Bulk delete failed")
			return
		}
		common.RespondSuccess(w, "All reviews deleted", map[string]int64{"deletedCount": deleted})
	}
}
