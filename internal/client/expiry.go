package client

import (
	"math"
	"sort"
	"time"
)

// ExpiringClient is one client whose agreement ends within the next 30 days.
type ExpiringClient struct {
	ID          uint   `json:"id"`
	ClientName  string `json:"clientName"`
	Phone       string `json:"phone"`
	Building    string `json:"building"`
	Region      string `json:"region"`
	EndDate     string `json:"endDate"`
	DaysLeft    int    `json:"daysLeft"`
	OwnerName   string `json:"ownerName,omitempty"`
	OwnerPhone  string `json:"ownerPhone,omitempty"`
	TenantName  string `json:"tenantName,omitempty"`
	TenantPhone string `json:"tenantPhone,omitempty"`
	TokenNo     string `json:"tokenNo,omitempty"`
	OwnerAgent  string `json:"ownerAgent,omitempty"`
	TenantAgent string `json:"tenantAgent,omitempty"`
}

// ExpirySummary buckets expiring clients by urgency: critical <= 7 days,
// warning <= 15, normal <= 30. Each bucket is sorted ascending by days left.
type ExpirySummary struct {
	Critical []ExpiringClient `json:"critical"`
	Warning  []ExpiringClient `json:"warning"`
	Normal   []ExpiringClient `json:"normal"`
}

// Total is the number of clients across all three buckets.
func (s ExpirySummary) Total() int {
	return len(s.Critical) + len(s.Warning) + len(s.Normal)
}

// ClassifyExpiring buckets clients by days until their agreement end date.
// Both dates are truncated to midnight before subtracting so partial days
// never shift a client across a bucket boundary. Already-expired clients and
// clients more than 30 days out are excluded. now is injectable for tests.
func ClassifyExpiring(clients []Client, now time.Time) ExpirySummary {
	today := atMidnight(now)

	var summary ExpirySummary
	for _, c := range clients {
		if c.AgreementEndDate == "" {
			continue
		}
		end, ok := parseDate(c.AgreementEndDate, now.Location())
		if !ok {
			continue
		}
		end = atMidnight(end)
		if end.Before(today) {
			continue
		}
		daysLeft := int(math.Ceil(end.Sub(today).Hours() / 24))
		if daysLeft > 30 {
			continue
		}

		entry := buildEntry(c, daysLeft)
		switch {
		case daysLeft <= 7:
			summary.Critical = append(summary.Critical, entry)
		case daysLeft <= 15:
			summary.Warning = append(summary.Warning, entry)
		default:
			summary.Normal = append(summary.Normal, entry)
		}
	}

	byDaysLeft := func(list []ExpiringClient) {
		sort.SliceStable(list, func(i, j int) bool { return list[i].DaysLeft < list[j].DaysLeft })
	}
	byDaysLeft(summary.Critical)
	byDaysLeft(summary.Warning)
	byDaysLeft(summary.Normal)

	return summary
}

// buildEntry picks the display name and phone, favoring the per-side columns
// over the generic ones, with a combined "Owner / Tenant" label when both
// sides exist.
func buildEntry(c Client, daysLeft int) ExpiringClient {
	name := c.Name
	phone := c.Phone
	switch {
	case c.OwnerName != "" && c.TenantName != "":
		name = c.OwnerName + " / " + c.TenantName
	case c.OwnerName != "":
		name = c.OwnerName
		if c.OwnerPhone != "" {
			phone = c.OwnerPhone
		}
	case c.TenantName != "":
		name = c.TenantName
		if c.TenantPhone != "" {
			phone = c.TenantPhone
		}
	}

	token := c.TokenNo
	switch {
	case c.OwnerTokenNo != "" && c.TenantTokenNo != "":
		token = "Owner: " + c.OwnerTokenNo + " | Tenant: " + c.TenantTokenNo
	case c.OwnerTokenNo != "":
		token = c.OwnerTokenNo
	case c.TenantTokenNo != "":
		token = c.TenantTokenNo
	}

	building := c.Building
	if building == "" {
		building = "Unknown Building"
	}
	region := c.Region
	if region == "" {
		region = "Unknown Region"
	}

	return ExpiringClient{
		ID:          c.ID,
		ClientName:  name,
		Phone:       phone,
		Building:    building,
		Region:      region,
		EndDate:     c.AgreementEndDate,
		DaysLeft:    daysLeft,
		OwnerName:   c.OwnerName,
		OwnerPhone:  c.OwnerPhone,
		TenantName:  c.TenantName,
		TenantPhone: c.TenantPhone,
		TokenNo:     token,
		OwnerAgent:  c.OwnerAgent,
		TenantAgent: c.TenantAgent,
	}
}

func atMidnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func parseDate(s string, loc *time.Location) (time.Time, bool) {
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
