package commission

import (
	"github.com/rentdesk/api-agreements/internal/agent"
	"github.com/rentdesk/api-agreements/internal/agreement"
)

// Role labels shown in an agent's commission history.
const (
	RoleOwnerAgent  = "Owner Agent"
	RoleTenantAgent = "Tenant Agent"
)

// TotalEarnings maps each agent id to the sum of ownerAgentCommission over
// every agreement whose owner side names that agent. Matching is exact and
// case-sensitive. Tenant-side commission is not a tracked field and
// contributes nothing. An agent with no matches earns 0.
func TotalEarnings(agents []agent.Agent, agreements []agreement.Agreement) map[uint]float64 {
	totals := make(map[uint]float64, len(agents))
	for _, ag := range agents {
		var total float64
		for _, a := range agreements {
			if a.Owner != nil && a.Owner.AgentName == ag.Name {
				total += a.OwnerAgentCommission
			}
			// Tenant commission tracking was removed; the tenant side
			// deliberately adds nothing here.
		}
		totals[ag.ID] = total
	}
	return totals
}

// Entry is one agreement in an agent's commission history, annotated with
// the amount attributable to that agent and the role(s) played.
type Entry struct {
	agreement.Agreement
	CommissionAmount float64 `json:"commissionAmount"`
	Roles            string  `json:"roles"`
}

// History returns, in the order given, every agreement where agentName
// appears on either side. Only the owner side carries an amount.
func History(agentName string, agreements []agreement.Agreement) []Entry {
	var entries []Entry
	for _, a := range agreements {
		var amount float64
		var roles []string

		if a.Owner != nil && a.Owner.AgentName == agentName {
			amount += a.OwnerAgentCommission
			roles = append(roles, RoleOwnerAgent)
		}
		if a.Tenant != nil && a.Tenant.AgentName == agentName {
			roles = append(roles, RoleTenantAgent)
		}
		if len(roles) == 0 {
			continue
		}

		entries = append(entries, Entry{
			Agreement:        a,
			CommissionAmount: amount,
			Roles:            joinRoles(roles),
		})
	}
	return entries
}

func joinRoles(roles []string) string {
	out := roles[0]
	for _, r := range roles[1:] {
		out += " & " + r
	}
	return out
}
