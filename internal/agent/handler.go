package agent

import (
	"encoding/json"
	"net/http"

	"github.com/rentdesk/api-agreements/internal/utils"
	"gorm.io/gorm"
)

type Handler struct {
	Repo *Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{Repo: NewRepository(db)}
}

type createAgentRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// List returns all agents.
// GET /api/agents
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	agents, err := h.Repo.ListAll()
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Internal server error", err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"agents": agents})
}

// Create is idempotent on name: an existing agent is returned instead of a
// duplicate being created.
// POST /api/agents
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req createAgentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid JSON", err)
		return
	}
	if req.Name == "" {
		utils.RespondError(w, http.StatusBadRequest, "Agent Name is required", nil)
		return
	}

	a, created, err := h.Repo.CreateOrGet(req.Name, req.Phone, req.Email)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Internal server error", err)
		return
	}

	msg := "Agent already exists"
	if created {
		msg = "Agent created successfully"
	}
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"message": msg, "agent": a})
}
