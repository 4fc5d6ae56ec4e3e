package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson"

	"aeromart/internal/common"
	"aeromart/internal/constants"
	"aeromart/internal/models/dtos"
	"aeromart/internal/models/entities"
)

// GetBrandsHandler handles GET /api/brands/lists.
func GetBrandsHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		brands, err := deps.Repo.Brand.FindAll(r.Context())
		if err != nil {
			respondServiceError(w, err, "Failed to fetch brands")
			return
		}
		message := "Brands found"
		if len(brands) == 0 {
			message = "No brands found"
		}
		common.RespondSuccess(w, message, brands)
	}
}

// GetBrandByIdHandler handles GET /api/brands/lists/{id}.
func GetBrandByIdHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		brand, err := deps.Repo.Brand.FindByID(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			respondServiceError(w, err, "Brand not found")
			return
		}
		common.RespondSuccess(w, "Brand found", brand)
	}
}

// CreateBrandHandler handles POST /api/brands. The logo file is the
// whole payload.
func CreateBrandHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(multipartMemoryLimit); err != nil {
			common.RespondError(w, err, constants.MsgInvalidPayload, http.StatusBadRequest)
			return
		}

		logo, err := uploadSingleFile(r, "logo", deps.Services.Media)
		if err != nil {
			respondServiceError(w, err, "Image upload failed")
			return
		}
		if logo == "" {
			common.RespondError(w, nil, "No file uploaded", http.StatusBadRequest)
			return
		}

		brand := &entities.Brand{Logo: logo}
		if err := deps.Repo.Brand.Insert(r.Context(), brand); err != nil {
			respondServiceError(w, err, "Failed to create brand")
			return
		}
		common.RespondSuccess(w, "Brand created", brand, http.StatusCreated)
	}
}

// UpdateBrandHandler handles PUT /api/brands/update/{id}. The logo is
// only replaced when a new file was uploaded.
func UpdateBrandHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(multipartMemoryLimit); err != nil {
			common.RespondError(w, err, constants.MsgInvalidPayload, http.StatusBadRequest)
			return
		}

		logo, err := uploadSingleFile(r, "logo", deps.Services.Media)
		if err != nil {
			respondServiceError(w, err, "Image upload failed")
			return
		}

		set := bson.M{}
		if logo != "" {
			set["logo"] = logo
		}

		brand, err := deps.Repo.Brand.Update(r.Context(), chi.URLParam(r, "id"), set)
		if err != nil {
			respondServiceError(w, err, "Brand not found")
			return
		}
		common.RespondSuccess(w, "Brand updated", brand)
	}
}

// DeleteBrandHandler handles DELETE /api/brands/delete/{id}.
func DeleteBrandHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		brand, err := deps.Repo.Brand.Delete(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			respondServiceError(w, err, "Brand not found")
			return
		}
		common.RespondSuccess(w, "Brand deleted", brand)
	}
}

// BulkDeleteBrandsHandler handles DELETE /api/brands/bulkDelete.
func BulkDeleteBrandsHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dtos.BulkDeleteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || len(req.IDs) == 0 {
			common.RespondError(w, err, constants.MsgInvalidPayload, http.StatusBadRequest)
			return
		}

		deleted, err := deps.Repo.Brand.BulkDelete(r.Context(), req.IDs)
		if err != nil {
			respondServiceError(w, err, "Bulk delete failed")
			return
		}
		common.RespondSuccess(w, "Brands deleted", map[string]int64{"deletedCount": deleted})
	}
}
