package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson"

	"aeromart/internal/common"
	"aeromart/internal/constants"
	"aeromart/internal/models/entities"
)

type contactRequest struct {
	Email     *string `json:"email"`
	Address   *string `json:"address"`
	Phone     *string `json:"phone"`
	Facebook  *string `json:"facebook"`
	Instagram *string `json:"instagram"`
	LinkedIn  *string `json:"linkedin"`
	YouTube   *string `json:"youtube"`
}

// GetContactsHandler handles GET /api/contacts/lists.
func GetContactsHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		contacts, err := deps.Repo.Contact.FindAll(r.Context())
		if err != nil {
			respondServiceError(w, err, "Failed to fetch contacts")
			return
		}
		message := "Contacts found"
		if len(contacts) == 0 {
			message = "No contacts found"
		}
		common.RespondSuccess(w, message, contacts)
	}
}

// GetContactByIdHandler handles GET /api/contacts/lists/{id}.
func GetContactByIdHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		contact, err := deps.Repo.Contact.FindByID(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			respondServiceError(w, err, "Contact not found")
			return
		}
		common.RespondSuccess(w, "Contact found", contact)
	}
}

// CreateContactHandler handles POST /api/contacts.
func CreateContactHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req contactRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, err, constants.MsgInvalidPayload, http.StatusBadRequest)
			return
		}
		if req.Email == nil || req.Address == nil || req.Phone == nil {
			common.RespondError(w, nil, constants.MsgMissingFields, http.StatusBadRequest)
			return
		}

		str := func(p *string) string {
			if p == nil {
				return ""
			}
			return *p
		}
		contact := &entities.Contact{
			Email:     *req.Email,
			Address:   *req.Address,
			Phone:     *req.Phone,
			Facebook:  str(req.Facebook),
			Instagram: str(req.Instagram),
			LinkedIn:  str(req.LinkedIn),
			YouTube:   str(req.YouTube),
		}
		if err := deps.Repo.Contact.Insert(r.Context(), contact); err != nil {
			respondServiceError(w, err, "Failed to create contact")
			return
		}
		common.RespondSuccess(w, "Contact created", contact, http.StatusCreated)
	}
}

// UpdateContactHandler handles PUT /api/contacts/update/{id}.
func UpdateContactHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req contactRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, err, constants.MsgInvalidPayload, http.StatusBadRequest)
			return
		}

		set := bson.M{}
		put := func(key string, p *string) {
			if p != nil {
				set[key] = *p
			}
		}
		put("email", req.Email)
		put("address", req.Address)
		put("phone", req.Phone)
		put("facebook", req.Facebook)
		put("instagram", req.Instagram)
		put("linkedin", req.LinkedIn)
		put("youtube", req.YouTube)

		contact, err := deps.Repo.Contact.Update(r.Context(), chi.URLParam(r, "id"), set)
		if err != nil {
			respondServiceError(w, err, "Contact not found")
			return
		}
		common.RespondSuccess(w, "Contact updated", contact)
	}
}

// DeleteContactHandler handles DELETE /api/contacts/delete/{id}.
func DeleteContactHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		contact, err := deps.Repo.Contact.Delete(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			respondServiceError(w, err, "Contact not found")
			return
		}
		common.RespondSuccess(w, "Contact deleted", contact)
	}
}
