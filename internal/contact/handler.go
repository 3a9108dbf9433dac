package contact

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/rentdesk/api-agreements/internal/utils"
	"gorm.io/gorm"
)

type Handler struct {
	Repo *Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{Repo: NewRepository(db)}
}

// Create stores a public contact form submission as-is.
// POST /api/contacts
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var fields map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid JSON", err)
		return
	}
	// The record's own columns are not form fields.
	delete(fields, "id")
	delete(fields, "status")
	delete(fields, "isDraft")
	delete(fields, "createdAt")

	c := Contact{Fields: fields, Status: "new"}
	if err := h.Repo.Create(&c); err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Failed to submit form", err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Form submitted successfully",
	})
}

// List returns all requests, newest first, flattened for the admin UI.
// GET /api/contacts
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repo.ListAll()
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Failed to load requests", err)
		return
	}
	contacts := make([]map[string]interface{}, 0, len(list))
	for i := range list {
		contacts = append(contacts, list[i].Flatten())
	}
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"contacts": contacts})
}

// PatchDraft toggles the isDraft flag, nothing else.
// PATCH /api/contacts/{id}
func (h *Handler) PatchDraft(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Missing ID", nil)
		return
	}

	var body struct {
		IsDraft bool `json:"isDraft"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid JSON", err)
		return
	}

	if err := h.Repo.SetDraft(uint(id), body.IsDraft); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondError(w, http.StatusNotFound, "Request not found", nil)
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, "Update failed", err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}

// Delete removes a request.
// DELETE /api/contacts/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Missing ID", nil)
		return
	}

	if err := h.Repo.Delete(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondError(w, http.StatusNotFound, "Request not found", nil)
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, "Delete failed", err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}
