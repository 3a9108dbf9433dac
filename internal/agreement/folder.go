package agreement

import (
	"log"
	"strconv"
	"strings"
)

// Folder is the aggregated view of all agreement data for one property
// (keyed by flatNo), merging the owner- and tenant-side sub-agreements.
type Folder struct {
	Owner                *Party  `json:"owner"`
	Tenant               *Party  `json:"tenant"`
	StartDate            string  `json:"startDate"`
	EndDate              string  `json:"endDate"`
	Building             string  `json:"building"`
	Region               string  `json:"region"`
	AgreementID          string  `json:"agreementId"`
	Profit               float64 `json:"profit"`
	OwnerAgentCommission float64 `json:"ownerAgentCommission"`
}

// BuildFolders groups a flat agreement snapshot into per-property folders.
// Completed agreements are excluded. For nested-format records the first
// record seen for a flatNo wins; later duplicates are dropped. Legacy
// one-row-per-side records merge into the owner/tenant slot named by their
// clientType. Records without a store-assigned id cannot be patched later,
// so they are skipped with a warning.
//
// Pure function over its input: calling it twice on the same snapshot yields
// identical output.
func BuildFolders(list []Agreement) map[string]Folder {
	folders := make(map[string]Folder)

	for _, a := range list {
		if a.Status == StatusCompleted {
			continue
		}
		if a.ID == 0 {
			log.Printf("agreement for flat %q has no id, skipping", a.FlatNo)
			continue
		}

		if a.Owner != nil || a.Tenant != nil {
			if _, ok := folders[a.FlatNo]; ok {
				// Duplicate flatNo, first-seen wins.
				continue
			}
			folders[a.FlatNo] = Folder{
				Owner:                a.Owner,
				Tenant:               a.Tenant,
				StartDate:            a.StartDate,
				EndDate:              a.EndDate,
				Building:             a.Building,
				Region:               a.Region,
				AgreementID:          strconv.FormatUint(uint64(a.ID), 10),
				Profit:               a.Profit,
				OwnerAgentCommission: a.OwnerAgentCommission,
			}
			continue
		}

		// Legacy flat format: merge into the existing or new entry.
		f, ok := folders[a.FlatNo]
		if !ok {
			f = Folder{
				StartDate:            a.StartDate,
				EndDate:              a.EndDate,
				Building:             a.Building,
				Region:               a.Region,
				AgreementID:          strconv.FormatUint(uint64(a.ID), 10),
				Profit:               a.Profit,
				OwnerAgentCommission: a.OwnerAgentCommission,
			}
		}
		switch a.ClientType {
		case "owner":
			f.Owner = a.legacyParty()
		case "tenant":
			f.Tenant = a.legacyParty()
		default:
			// Neither nested parties nor a clientType: contributes no slot.
		}
		if f.AgreementID == "" {
			f.AgreementID = strconv.FormatUint(uint64(a.ID), 10)
		}
		folders[a.FlatNo] = f
	}

	return folders
}

// MatchesSearch reports whether the folder matches a free-text query over
// folder name, client names, building and agent names.
func (f Folder) MatchesSearch(folderName, query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	fields := []string{folderName, f.Building}
	if f.Owner != nil {
		fields = append(fields, f.Owner.ClientName, f.Owner.AgentName)
	}
	if f.Tenant != nil {
		fields = append(fields, f.Tenant.ClientName, f.Tenant.AgentName)
	}
	for _, s := range fields {
		if strings.Contains(strings.ToLower(s), q) {
			return true
		}
	}
	return false
}
