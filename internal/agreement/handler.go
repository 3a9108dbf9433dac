package agreement

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/rentdesk/api-agreements/internal/agent"
	"github.com/rentdesk/api-agreements/internal/client"
	"github.com/rentdesk/api-agreements/internal/utils"
	"gorm.io/gorm"
)

type Handler struct {
	Repo    *Repository
	Clients *client.Repository
	Agents  *agent.Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		Repo:    NewRepository(db),
		Clients: client.NewRepository(db),
		Agents:  agent.NewRepository(db),
	}
}

// List returns all agreements, newest first.
// GET /api/agreements
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repo.ListAll()
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Internal server error", err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"agreements": list})
}

// Create accepts a single intake form or a bulk array of them.
// A single submission without flatNo is rejected; bulk elements without
// flatNo are skipped, matching the intake form's behavior.
// POST /api/agreements
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var payload createPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid JSON", err)
		return
	}

	if !payload.Bulk && payload.Items[0].FlatNo == "" {
		utils.RespondError(w, http.StatusBadRequest, "Missing required field: flatNo", nil)
		return
	}

	var records []*Agreement
	for _, dto := range payload.Items {
		if dto.FlatNo == "" {
			continue
		}
		records = append(records, fromDTO(dto))
	}

	if err := h.Repo.CreateBatch(records); err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Internal server error", err)
		return
	}

	h.registerAgents(records)

	if payload.Bulk {
		utils.RespondJSON(w, http.StatusOK, records)
		return
	}
	utils.RespondJSON(w, http.StatusOK, records[0])
}

// Patch merges the named fields only.
// PATCH /api/agreements/{id}
func (h *Handler) Patch(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Agreement ID missing", nil)
		return
	}

	var dto PatchAgreementDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid JSON", err)
		return
	}

	a, err := h.Repo.FindByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondError(w, http.StatusNotFound, "Agreement not found", nil)
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, "Internal server error", err)
		return
	}

	var cols []string

	if dto.Amount != nil && (dto.ClientType == "owner" || dto.ClientType == "tenant") {
		if dto.ClientType == "owner" {
			if a.Owner == nil {
				a.Owner = &Party{}
			}
			a.Owner.Amount = *dto.Amount
			cols = append(cols, "owner")
		} else {
			if a.Tenant == nil {
				a.Tenant = &Party{}
			}
			a.Tenant.Amount = *dto.Amount
			cols = append(cols, "tenant")
		}
	}
	if dto.Profit != nil {
		a.Profit = *dto.Profit
		cols = append(cols, "profit")
	}
	if dto.OwnerAgentCommission != nil {
		a.OwnerAgentCommission = *dto.OwnerAgentCommission
		cols = append(cols, "owner_agent_commission")
	}
	if dto.Status != "" {
		a.Status = dto.Status
		if dto.Status == StatusCompleted {
			now := time.Now()
			a.CompletedAt = &now
		} else {
			a.CompletedAt = nil
		}
		cols = append(cols, "status", "completed_at")
	}

	if len(cols) == 0 {
		utils.RespondError(w, http.StatusBadRequest, "No fields to update", nil)
		return
	}

	if err := h.Repo.UpdateColumns(a, cols); err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Internal server error", err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"success": true, "id": a.ID})
}

// Folders returns the aggregated ongoing-folder view, searchable via ?q= and
// filterable via ?region=.
// GET /api/agreements/folders
func (h *Handler) Folders(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repo.ListAll()
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Internal server error", err)
		return
	}

	folders := BuildFolders(list)

	region := r.URL.Query().Get("region")
	query := r.URL.Query().Get("q")
	if region != "" || query != "" {
		filtered := make(map[string]Folder, len(folders))
		for name, f := range folders {
			if region != "" && f.Region != region {
				continue
			}
			if !f.MatchesSearch(name, query) {
				continue
			}
			filtered[name] = f
		}
		folders = filtered
	}

	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"folders": folders})
}

// Complete flips an ongoing agreement to completed and spawns the derived
// client record. Both writes run in one transaction so a failure on either
// side leaves the agreement untouched. The authoritative record is re-read
// inside the transaction; locally cached copies are never trusted.
// POST /api/agreements/{id}/complete
func (h *Handler) Complete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Agreement ID missing", nil)
		return
	}

	var created client.Client
	txErr := h.Repo.DB.Transaction(func(tx *gorm.DB) error {
		var a Agreement
		if err := tx.First(&a, uint(id)).Error; err != nil {
			return err
		}
		if a.Status == StatusCompleted {
			return gorm.ErrRecordNotFound
		}

		now := time.Now()
		a.Status = StatusCompleted
		a.CompletedAt = &now
		if err := tx.Model(&Agreement{ID: a.ID}).
			Select("status", "completed_at").Updates(&a).Error; err != nil {
			return err
		}

		created = buildClientRecord(&a)
		return client.NewRepository(tx).Create(&created)
	})

	if txErr != nil {
		if errors.Is(txErr, gorm.ErrRecordNotFound) {
			utils.RespondError(w, http.StatusNotFound, "Agreement not found. It may have already been completed.", nil)
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, "Failed to complete agreement", txErr)
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"success": true, "client": created})
}

// registerAgents create-or-reuses every agent named on the intake form.
// Best effort: failures are logged and never block the intake.
func (h *Handler) registerAgents(records []*Agreement) {
	seen := make(map[string]bool)
	for _, a := range records {
		for _, p := range []*Party{a.Owner, a.Tenant} {
			if p == nil || p.AgentName == "" || seen[p.AgentName] {
				continue
			}
			seen[p.AgentName] = true
			if _, _, err := h.Agents.CreateOrGet(p.AgentName, "", ""); err != nil {
				log.Printf("error creating agent %q: %v", p.AgentName, err)
			}
		}
	}
}

func fromDTO(dto CreateAgreementDTO) *Agreement {
	a := &Agreement{
		FlatNo:    dto.FlatNo,
		Building:  dto.Building,
		Region:    dto.Region,
		StartDate: dto.StartDate,
		EndDate:   dto.EndDate,
		Status:    StatusOngoing,
	}
	// A side is kept only when it names a client.
	if dto.Owner != nil && dto.Owner.ClientName != "" {
		a.Owner = partyFromDTO(dto.Owner)
	}
	if dto.Tenant != nil && dto.Tenant.ClientName != "" {
		a.Tenant = partyFromDTO(dto.Tenant)
	}
	return a
}

func partyFromDTO(p *PartyDTO) *Party {
	return &Party{
		ClientName: p.ClientName,
		ContactNo:  p.ContactNo,
		Amount:     p.Amount,
		AgentName:  p.AgentName,
		TokenNo:    p.TokenNo,
	}
}

// buildClientRecord flattens a completed agreement folder into the durable
// client snapshot: names joined with " & ", owner-side contact and token
// preferred, identical agents collapsed, amounts summed.
func buildClientRecord(a *Agreement) client.Client {
	var owner, tenant Party
	if a.Owner != nil {
		owner = *a.Owner
	}
	if a.Tenant != nil {
		tenant = *a.Tenant
	}

	return client.Client{
		Name:     CombineClientNames(owner.ClientName, tenant.ClientName),
		Phone:    firstNonEmpty(owner.ContactNo, tenant.ContactNo),
		Region:   a.Region,
		Building: a.Building,
		FlatNo:   a.FlatNo,

		TokenNo:   firstNonEmpty(owner.TokenNo, tenant.TokenNo),
		AgentName: CombineAgentNames(owner.AgentName, tenant.AgentName),
		Amount:    owner.Amount + tenant.Amount,

		OwnerName:    owner.ClientName,
		OwnerPhone:   owner.ContactNo,
		OwnerTokenNo: owner.TokenNo,
		OwnerAmount:  owner.Amount,
		OwnerAgent:   owner.AgentName,

		TenantName:    tenant.ClientName,
		TenantPhone:   tenant.ContactNo,
		TenantTokenNo: tenant.TokenNo,
		TenantAmount:  tenant.Amount,
		TenantAgent:   tenant.AgentName,

		AgreementStartDate: a.StartDate,
		AgreementEndDate:   a.EndDate,

		AgreementStatus: "active",
		ModeOfAgreement: "Self Executed",
		Documents:       []string{},
	}
}
