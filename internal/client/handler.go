package client

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/rentdesk/api-agreements/internal/utils"
	"gorm.io/gorm"
)

type Handler struct {
	Repo *Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{Repo: NewRepository(db)}
}

// List returns all clients, newest first.
// GET /api/clients
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	clients, err := h.Repo.ListAll()
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Internal server error", err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"clients": clients})
}

// Create stores a manually entered client record.
// POST /api/clients
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var c Client
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid JSON", err)
		return
	}
	if c.Name == "" || c.Region == "" || c.Building == "" {
		utils.RespondError(w, http.StatusBadRequest, "Missing required fields: name, region, building", nil)
		return
	}

	applyDefaults(&c)
	c.ID = 0

	if err := h.Repo.Create(&c); err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Internal server error", err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"success": true, "id": c.ID})
}

// Update replaces a client record whole, keyed by the id in the body.
// PUT /api/clients
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var c Client
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid JSON", err)
		return
	}
	if c.ID == 0 {
		utils.RespondError(w, http.StatusBadRequest, "Missing required field: id", nil)
		return
	}

	existing, err := h.Repo.FindByID(c.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondError(w, http.StatusNotFound, "Client not found", nil)
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, "Internal server error", err)
		return
	}
	c.CreatedAt = existing.CreatedAt

	if err := h.Repo.Replace(&c); err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Internal server error", err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"success": true, "id": c.ID})
}

// Expiring classifies clients into the <=7 / <=15 / <=30 day buckets.
// GET /api/clients/expiring
func (h *Handler) Expiring(w http.ResponseWriter, r *http.Request) {
	clients, err := h.Repo.ListAll()
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Internal server error", err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, ClassifyExpiring(clients, time.Now()))
}

func applyDefaults(c *Client) {
	if c.ClientType == "" {
		c.ClientType = "tenant"
	}
	if c.ModeOfAgreement == "" {
		c.ModeOfAgreement = "Self Executed"
	}
	if c.AgreementStatus == "" {
		c.AgreementStatus = "active"
	}
	if c.Documents == nil {
		c.Documents = []string{}
	}
}
