package dashboard

import (
	"sort"
	"time"

	"github.com/rentdesk/api-agreements/internal/agreement"
)

// MonthPoint is one month of the trailing six-month chart.
type MonthPoint struct {
	Month      string  `json:"month"`
	Agreements int     `json:"agreements"`
	Revenue    float64 `json:"revenue"`
}

// Stats are the headline dashboard numbers.
type Stats struct {
	TotalAgreements   int          `json:"totalAgreements"`
	MonthlyAgreements int          `json:"monthlyAgreements"`
	TotalRevenue      float64      `json:"totalRevenue"`
	ActiveClients     int          `json:"activeClients"`
	MonthlyChartData  []MonthPoint `json:"monthlyChartData"`
}

// ComputeStats summarizes an agreement snapshot. Revenue is the sum of
// profit over ALL agreements, completed included. Active clients are the
// distinct owner/tenant client names on non-completed agreements. The chart
// covers the six months ending at now; a month's revenue is attributed by
// completedAt when set, else createdAt.
func ComputeStats(list []agreement.Agreement, now time.Time) Stats {
	stats := Stats{TotalAgreements: len(list)}

	active := make(map[string]bool)
	for _, a := range list {
		stats.TotalRevenue += a.Profit

		if sameMonth(a.CreatedAt, now) {
			stats.MonthlyAgreements++
		}

		if a.Status == agreement.StatusCompleted {
			continue
		}
		if a.Owner != nil && a.Owner.ClientName != "" {
			active[a.Owner.ClientName] = true
		}
		if a.Tenant != nil && a.Tenant.ClientName != "" {
			active[a.Tenant.ClientName] = true
		}
	}
	stats.ActiveClients = len(active)

	for i := 5; i >= 0; i-- {
		anchor := time.Date(now.Year(), now.Month()-time.Month(i), 1, 0, 0, 0, 0, now.Location())
		point := MonthPoint{Month: anchor.Format("Jan")}

		for _, a := range list {
			if sameMonth(a.CreatedAt, anchor) {
				point.Agreements++
			}
			ref := a.CreatedAt
			if a.CompletedAt != nil {
				ref = *a.CompletedAt
			}
			if sameMonth(ref, anchor) {
				point.Revenue += a.Profit
			}
		}
		stats.MonthlyChartData = append(stats.MonthlyChartData, point)
	}

	return stats
}

// Activity is one completed agreement flattened for the recent-activity feed.
type Activity struct {
	ID          uint    `json:"id"`
	Client      string  `json:"client"`
	Action      string  `json:"action"`
	Building    string  `json:"building"`
	Region      string  `json:"region"`
	FlatNo      string  `json:"flatNo"`
	ContactNo   string  `json:"contactNo"`
	AgentName   string  `json:"agentName"`
	TotalAmount float64 `json:"totalAmount"`
	StartDate   string  `json:"startDate"`
	EndDate     string  `json:"endDate"`
	CompletedAt string  `json:"completedAt"`
}

// RecentActivity returns the most recently completed agreements, newest
// completion first, flattened with the same combining rules completion uses.
func RecentActivity(list []agreement.Agreement, limit int) []Activity {
	var completed []agreement.Agreement
	for _, a := range list {
		if a.Status == agreement.StatusCompleted {
			completed = append(completed, a)
		}
	}
	sort.SliceStable(completed, func(i, j int) bool {
		return completedAt(completed[i]).After(completedAt(completed[j]))
	})
	if len(completed) > limit {
		completed = completed[:limit]
	}

	activities := make([]Activity, 0, len(completed))
	for _, a := range completed {
		var owner, tenant agreement.Party
		if a.Owner != nil {
			owner = *a.Owner
		}
		if a.Tenant != nil {
			tenant = *a.Tenant
		}

		contact := owner.ContactNo
		if contact == "" {
			contact = tenant.ContactNo
		}
		building := a.Building
		if building == "" {
			building = "Unknown Building"
		}

		var completedStr string
		if a.CompletedAt != nil {
			completedStr = a.CompletedAt.Format(time.RFC3339)
		}

		activities = append(activities, Activity{
			ID:          a.ID,
			Client:      agreement.CombineClientNames(owner.ClientName, tenant.ClientName),
			Action:      "Agreement Completed",
			Building:    building,
			Region:      a.Region,
			FlatNo:      a.FlatNo,
			ContactNo:   contact,
			AgentName:   agreement.CombineAgentNames(owner.AgentName, tenant.AgentName),
			TotalAmount: owner.Amount + tenant.Amount,
			StartDate:   a.StartDate,
			EndDate:     a.EndDate,
			CompletedAt: completedStr,
		})
	}
	return activities
}

func completedAt(a agreement.Agreement) time.Time {
	if a.CompletedAt != nil {
		return *a.CompletedAt
	}
	return time.Time{}
}

func sameMonth(t, ref time.Time) bool {
	return t.Year() == ref.Year() && t.Month() == ref.Month()
}
