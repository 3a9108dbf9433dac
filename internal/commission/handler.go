package commission

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rentdesk/api-agreements/internal/agent"
	"github.com/rentdesk/api-agreements/internal/agreement"
	"github.com/rentdesk/api-agreements/internal/utils"
	"gorm.io/gorm"
)

type Handler struct {
	Agents     *agent.Repository
	Agreements *agreement.Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		Agents:     agent.NewRepository(db),
		Agreements: agreement.NewRepository(db),
	}
}

// Earnings returns every agent's total owner-side commission.
// GET /api/agents/earnings
func (h *Handler) Earnings(w http.ResponseWriter, r *http.Request) {
	agents, err := h.Agents.ListAll()
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Internal server error", err)
		return
	}
	agreements, err := h.Agreements.ListAll()
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Internal server error", err)
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"earnings": TotalEarnings(agents, agreements),
	})
}

// AgentHistory returns the agreements where the named agent appears on
// either side, annotated with amount and role.
// GET /api/agents/{name}/history
func (h *Handler) AgentHistory(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	agreements, err := h.Agreements.ListAll()
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Internal server error", err)
		return
	}

	entries := History(name, agreements)
	if entries == nil {
		entries = []Entry{}
	}
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"history": entries})
}
