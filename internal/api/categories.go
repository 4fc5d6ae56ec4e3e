package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"aeromart/internal/common"
	"aeromart/internal/constants"
)

type categoryRequest struct {
	Name string `json:"name"`
}

// GetCategoriesHandler handles GET /api/categories/lists.
func GetCategoriesHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cats, err := deps.Services.Category.List(r.Context())
		if err != nil {
			respondServiceError(w, err, "Failed to fetch categories")
			return
		}
		message := "Categories found"
		if len(cats) == 0 {
			message = "No categories found"
		}
		common.RespondSuccess(w, message, cats)
	}
}

// GetCategoryByIdHandler handles GET /api/categories/lists/{id}.
func GetCategoryByIdHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cat, err := deps.Services.Category.Get(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			respondServiceError(w, err, "Category not found")
			return
		}
		common.RespondSuccess(w, "Category found", cat)
	}
}

// CreateCategoryHandler handles POST /api/categories. The slug is
// derived from the name.
func CreateCategoryHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req categoryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, err, constants.MsgInvalidPayload, http.StatusBadRequest)
			return
		}

		cat, err := deps.Services.Category.Create(r.Context(), req.Name)
		if err != nil {
			respondServiceError(w, err, constants.MsgMissingFields)
			return
		}
		common.RespondSuccess(w, "Category created", cat, http.StatusCreated)
	}
}

// UpdateCategoryHandler handles PUT /api/categories/update/{id}.
func UpdateCategoryHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req categoryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, err, constants.MsgInvalidPayload, http.StatusBadRequest)
			return
		}

		cat, err := deps.Services.Category.Update(r.Context(), chi.URLParam(r, "id"), req.Name)
		if err != nil {
			respondServiceError(w, err, "Category not found")
			return
		}
		common.RespondSuccess(w, "Category updated", cat)
	}
}

// DeleteCategoryHandler handles DELETE /api/categories/delete/{id}.
func DeleteCategoryHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cat, err := deps.Services.Category.Delete(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			respondServiceError(w, err, "Category not found")
			return
		}
		common.RespondSuccess(w, "Category deleted", cat)
	}
}
