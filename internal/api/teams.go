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

// GetTeamsHandler handles GET /api/teams/lists.
func GetTeamsHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		teams, err := deps.Repo.Team.FindAll(r.Context())
		if err != nil {
			respondServiceError(w, err, "Failed to fetch teams")
			return
		}
		message := "Teams found"
		if len(teams) == 0 {
			message = "No teams found"
		}
		common.RespondSuccess(w, message, teams)
	}
}

// GetTeamByIdHandler handles GET /api/teams/lists/{id}.
func GetTeamByIdHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		team, err := deps.Repo.Team.FindByID(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			respondServiceError(w, err, "Team not found")
			return
		}
		common.RespondSuccess(w, "Team found", team)
	}
}

// CreateTeamHandler handles POST /api/teams. Multipart body with
// profile_picture and team_member_picture file fields; the rich-text
// description is sanitized.
func CreateTeamHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(multipartMemoryLimit); err != nil {
			common.RespondError(w, err, constants.MsgInvalidPayload, http.StatusBadRequest)
			return
		}
		value := func(name string) string { return r.FormValue(name) }

		member := &entities.TeamMember{
			Name:        value("name"),
			Description: common.SanitizeRichText(value("description")),
			Designation: value("designation"),
			Phone:       value("phone"),
			Email:       value("email"),
			Address:     value("address"),
			Facebook:    value("facebook"),
			Instagram:   value("instagram"),
			LinkedIn:    value("linkedin"),
			YouTube:     value("youtube"),
		}
		if member.Name == "" || member.Description == "" || member.Designation == "" ||
			member.Phone == "" || member.Email == "" {
			common.RespondError(w, nil, constants.MsgMissingFields, http.StatusBadRequest)
			return
		}

		profile, err := uploadSingleFile(r, "profile_picture", deps.Services.Media)
		if err != nil {
			respondServiceError(w, err, "Image upload failed")
			return
		}
		detail, err := uploadSingleFile(r, "team_member_picture", deps.Services.Media)
		if err != nil {
			respondServiceError(w, err, "Image upload failed")
			return
		}
		member.ProfilePicture = profile
		member.DetailPicture = detail

		if err := deps.Repo.Team.Insert(r.Context(), member); err != nil {
			respondServiceError(w, err, "Failed to create team")
			return
		}
		common.RespondSuccess(w, "Team created", member, http.StatusCreated)
	}
}

// UpdateTeamHandler handles PUT /api/teams/update/{id}. Picture URLs
// only change when a new file is uploaded.
func UpdateTeamHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(multipartMemoryLimit); err != nil {
			common.RespondError(w, err, constants.MsgInvalidPayload, http.StatusBadRequest)
			return
		}

		set := bson.M{}
		for _, field := range []string{"name", "designation", "phone", "email", "address", "facebook", "instagram", "linkedin", "youtube"} {
			if values, ok := r.MultipartForm.Value[field]; ok && len(values) > 0 {
				set[field] = values[0]
			}
		}
		if values, ok := r.MultipartForm.Value["description"]; ok && len(values) > 0 {
			set["description"] = common.SanitizeRichText(values[0])
		}

		profile, err := uploadSingleFile(r, "profile_picture", deps.Services.Media)
		if err != nil {
			respondServiceError(w, err, "Image upload failed")
			return
		}
		if profile != "" {
			set["profile_picture"] = profile
		}
		detail, err := uploadSingleFile(r, "team_member_picture", deps.Services.Media)
		if err != nil {
			respondServiceError(w, err, "Image upload failed")
			return
		}
		if detail != "" {
			set["team_member_picture"] = detail
		}

		member, err := deps.Repo.Team.Update(r.Context(), chi.URLParam(r, "id"), set)
		if err != nil {
			respondServiceError(w, err, "Team not found")
			return
		}
		common.RespondSuccess(w, "Team updated", member)
	}
}

// DeleteTeamHandler handles DELETE /api/teams/delete/{id}.
func DeleteTeamHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		member, err := deps.Repo.Team.Delete(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			respondServiceError(w, err, "Team not found")
			return
		}
		common.RespondSuccess(w, "Team deleted", member)
	}
}

// BulkDeleteTeamsHandler handles DELETE /api/teams/bulkDelete.
func BulkDeleteTeamsHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dtos.BulkDeleteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || len(req.IDs) == 0 {
			common.RespondError(w, err, constants.MsgInvalidPayload, http.StatusBadRequest)
			return
		}

		deleted, err := deps.Repo.Team.BulkDelete(r.Context(), req.IDs)
		if err != nil {
			respondServiceError(w, err, "Bulk delete failed")
			return
		}
		common.RespondSuccess(w, "Teams deleted", map[string]int64{"deletedCount": deleted})
	}
}
