package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"aeromart/internal/common"
	"aeromart/internal/constants"
	"aeromart/internal/models/dtos"
)

// GetAircraftsListsHandler handles GET /api/aircrafts/lists, the
// public filtered page query.
func GetAircraftsListsHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp, err := deps.Services.Aircraft.List(r.Context(), parseListParams(r, false))
		if err != nil {
			respondServiceError(w, err, "Failed to fetch aircrafts")
			return
		}
		common.WriteJSON(w, http.StatusOK, resp)
	}
}

// GetAircraftListsByAdminHandler handles GET /api/aircrafts/lists/admin.
// Same query shape, but without the default sold/acquired exclusion.
func GetAircraftListsByAdminHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp, err := deps.Services.Aircraft.List(r.Context(), parseListParams(r, true))
		if err != nil {
			respondServiceError(w, err, "Failed to fetch aircrafts")
			return
		}
		common.WriteJSON(w, http.StatusOK, resp)
	}
}

// GetAircraftsBySearchHandler handles GET /api/aircrafts/lists/search.
func GetAircraftsBySearchHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query().Get("q")
		page := queryInt(r, "page", 1)
		limit := queryInt(r, "limit", 0)

		resp, err := deps.Services.Search.Search(r.Context(), q, page, limit)
		if err != nil {
			respondServiceError(w, err, "Search failed")
			return
		}
		common.WriteJSON(w, http.StatusOK, resp)
	}
}

// GetAircraftsByFiltersHandler handles GET /api/aircrafts/lists/filters,
// the admin filter lookup with exact-value predicates and a title search.
func GetAircraftsByFiltersHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp, err := deps.Services.Aircraft.Filters(r.Context(), parseFilterParams(r))
		if err != nil {
			respondServiceError(w, err, "Failed to fetch aircrafts")
			return
		}
		common.WriteJSON(w, http.StatusOK, resp)
	}
}

// GetJetRangesHandler handles GET /api/aircrafts/lists/ranges.
func GetJetRangesHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ranges, err := deps.Services.Aircraft.Ranges(r.Context())
		if err != nil {
			respondServiceError(w, err, constants.MsgNoAircraftsFound)
			return
		}
		common.RespondSuccess(w, constants.MsgAircraftsFound, ranges)
	}
}

// GetLatestAircraftsHandler handles GET /api/aircrafts/lists/latest.
func GetLatestAircraftsHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		latest, err := deps.Services.Aircraft.Latest(r.Context())
		if err != nil {
			respondServiceError(w, err, "Failed to fetch aircrafts")
			return
		}
		message := constants.MsgAircraftsFound
		if len(latest) == 0 {
			message = constants.MsgNoAircraftsFound
		}
		common.RespondSuccess(w, message, latest)
	}
}

// GetAircraftByIdHandler handles GET /api/aircrafts/lists/{id}.
func GetAircraftByIdHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		aircraft, err := deps.Services.Aircraft.Get(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			respondServiceError(w, err, constants.MsgAircraftNotFound)
			return
		}
		common.RespondSuccess(w, constants.MsgAircraftFound, aircraft)
	}
}

// CreateAircraftHandler handles POST /api/aircrafts. Multipart body:
// scalar fields plus up to 20 gallery images and one featured image.
func CreateAircraftHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		form, err := parseAircraftForm(r)
		if err != nil {
			respondServiceError(w, err, constants.MsgInvalidPayload)
			return
		}

		images, featured, err := uploadGallery(r, deps.Services.Media)
		if err != nil {
			respondServiceError(w, err, "Image upload failed")
			return
		}

		aircraft, err := deps.Services.Aircraft.Create(r.Context(), form, images, featured)
		if err != nil {
			respondServiceError(w, err, constants.MsgInvalidPayload)
			return
		}
		common.RespondSuccess(w, constants.MsgAircraftCreated, aircraft, http.StatusCreated)
	}
}

// UpdateAircraftHandler handles PUT /api/aircrafts/update/{id}. All
// fields are optional; keepImages decides which existing gallery URLs
// survive alongside new uploads.
func UpdateAircraftHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		form, err := parseAircraftForm(r)
		if err != nil {
			respondServiceError(w, err, constants.MsgInvalidPayload)
			return
		}

		images, featured, err := uploadGallery(r, deps.Services.Media)
		if err != nil {
			respondServiceError(w, err, "Image upload failed")
			return
		}
		var featuredPtr *string
		if featured != "" {
			featuredPtr = &featured
		}

		aircraft, err := deps.Services.Aircraft.Update(r.Context(), chi.URLParam(r, "id"), form, images, featuredPtr)
		if err != nil {
			respondServiceError(w, err, constants.MsgAircraftNotFound)
			return
		}
		common.RespondSuccess(w, constants.MsgAircraftUpdated, aircraft)
	}
}

// DeleteAircraftHandler handles DELETE /api/aircrafts/delete/{id}.
func DeleteAircraftHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		deleted, err := deps.Services.Aircraft.Delete(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			respondServiceError(w, err, constants.MsgAircraftNotFound)
			return
		}
		common.RespondSuccess(w, constants.MsgAircraftDeleted, deleted)
	}
}

// BulkDeleteAircraftHandler handles DELETE /api/aircrafts/bulkDelete.
func BulkDeleteAircraftHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dtos.BulkDeleteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || len(req.IDs) == 0 {
			common.RespondError(w, err, constants.MsgInvalidPayload, http.StatusBadRequest)
			return
		}

		deleted, err := deps.Services.Aircraft.BulkDelete(r.Context(), req.IDs)
		if err != nil {
			respondServiceError(w, err, "Bulk delete failed")
			return
		}
		common.RespondSuccess(w, constants.MsgAircraftsDeleted, map[string]int64{"deletedCount": deleted})
	}
}
