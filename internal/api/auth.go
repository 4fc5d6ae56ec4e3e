package api

import (
	"encoding/json"
	"net/http"

	"aeromart/internal/common"
	"aeromart/internal/constants"
	"aeromart/internal/models/dtos"
)

// RegisterHandler handles POST /api/auth/register.
func RegisterHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dtos.RegisterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, err, constants.MsgInvalidPayload, http.StatusBadRequest)
			return
		}

		user, err := deps.Services.Auth.Register(r.Context(), req)
		if err != nil {
			respondServiceError(w, err, "Registration failed")
			return
		}
		common.RespondSuccess(w, "Successfully registered", user, http.StatusCreated)
	}
}

// LoginHandler handles POST /api/auth/login. Accepts email or username
// plus password, answers with a bearer token and the user.
func LoginHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dtos.LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, err, constants.MsgInvalidPayload, http.StatusBadRequest)
			return
		}

		token, user, err := deps.Services.Auth.Login(r.Context(), req)
		if err != nil {
			respondServiceError(w, err, "Login failed")
			return
		}
		common.RespondSuccess(w, "Successfully logged in", map[string]any{
			"token": token,
			"user":  user,
		})
	}
}
