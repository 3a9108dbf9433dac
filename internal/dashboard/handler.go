package dashboard

import (
	"net/http"
	"time"

	"github.com/rentdesk/api-agreements/internal/agreement"
	"github.com/rentdesk/api-agreements/internal/utils"
	"gorm.io/gorm"
)

// recentActivityLimit caps the recent-activity feed.
const recentActivityLimit = 20

type Handler struct {
	Agreements *agreement.Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{Agreements: agreement.NewRepository(db)}
}

// Stats returns the headline numbers plus the six-month chart.
// GET /api/dashboard/stats
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	list, err := h.Agreements.ListAll()
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Internal server error", err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, ComputeStats(list, time.Now()))
}

// RecentActivity returns the latest completed agreements.
// GET /api/dashboard/recent-activity
func (h *Handler) RecentActivity(w http.ResponseWriter, r *http.Request) {
	list, err := h.Agreements.ListAll()
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Internal server error", err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"activities": RecentActivity(list, recentActivityLimit),
	})
}
