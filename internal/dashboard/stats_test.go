package dashboard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rentdesk/api-agreements/internal/agreement"
)

var statsNow = time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

func monthsAgo(n int) time.Time {
	return statsNow.AddDate(0, -n, 0)
}

func TestComputeStatsHeadlineNumbers(t *testing.T) {
	done := monthsAgo(1)
	list := []agreement.Agreement{
		{
			CreatedAt: statsNow,
			Profit:    1000,
			Owner:     &agreement.Party{ClientName: "Asha"},
			Tenant:    &agreement.Party{ClientName: "Vikram"},
			Status:    agreement.StatusOngoing,
		},
		{
			CreatedAt: monthsAgo(2),
			Profit:    500,
			Owner:     &agreement.Party{ClientName: "Asha"},
			Status:    agreement.StatusOngoing,
		},
		{
			CreatedAt:   monthsAgo(3),
			CompletedAt: &done,
			Profit:      2000,
			Owner:       &agreement.Party{ClientName: "Done Owner"},
			Status:      agreement.StatusCompleted,
		},
	}

	stats := ComputeStats(list, statsNow)

	assert.Equal(t, 3, stats.TotalAgreements)
	assert.Equal(t, 1, stats.MonthlyAgreements)
	// Revenue counts every agreement, completed included.
	assert.Equal(t, 3500.0, stats.TotalRevenue)
	// "Asha" appears on two ongoing agreements but counts once; the
	// completed agreement's owner does not count.
	assert.Equal(t, 2, stats.ActiveClients)
}

func TestComputeStatsChartAttributesRevenueByCompletion(t *testing.T) {
	completed := monthsAgo(1)
	list := []agreement.Agreement{
		{
			// Created 4 months ago, completed last month: revenue lands on
			// last month, the agreement count on the creation month.
			CreatedAt:   monthsAgo(4),
			CompletedAt: &completed,
			Profit:      900,
			Status:      agreement.StatusCompleted,
		},
		{
			CreatedAt: statsNow,
			Profit:    300,
			Status:    agreement.StatusOngoing,
		},
	}

	stats := ComputeStats(list, statsNow)
	require.Len(t, stats.MonthlyChartData, 6)

	creationMonth := stats.MonthlyChartData[1] // 4 months back
	assert.Equal(t, 1, creationMonth.Agreements)
	assert.Equal(t, 0.0, creationMonth.Revenue)

	completionMonth := stats.MonthlyChartData[4] // 1 month back
	assert.Equal(t, 0, completionMonth.Agreements)
	assert.Equal(t, 900.0, completionMonth.Revenue)

	current := stats.MonthlyChartData[5]
	assert.Equal(t, 1, current.Agreements)
	assert.Equal(t, 300.0, current.Revenue)
	assert.Equal(t, "Jun", current.Month)
}

func TestRecentActivityNewestCompletionFirst(t *testing.T) {
	older := monthsAgo(2)
	newer := monthsAgo(1)
	list := []agreement.Agreement{
		{ID: 1, Status: agreement.StatusOngoing},
		{
			ID: 2, Status: agreement.StatusCompleted, CompletedAt: &older,
			Owner:  &agreement.Party{ClientName: "Asha", ContactNo: "+91-111", AgentName: "Raj", Amount: 5000},
			Tenant: &agreement.Party{ClientName: "Vikram", ContactNo: "+91-222", AgentName: "Raj", Amount: 3000},
		},
		{
			ID: 3, Status: agreement.StatusCompleted, CompletedAt: &newer,
			Tenant: &agreement.Party{ClientName: "Solo", ContactNo: "+91-333", AgentName: "Meera"},
		},
	}

	activities := RecentActivity(list, 20)
	require.Len(t, activities, 2)

	assert.Equal(t, uint(3), activities[0].ID)
	assert.Equal(t, "Solo", activities[0].Client)
	assert.Equal(t, "+91-333", activities[0].ContactNo)
	assert.Equal(t, "Unknown Building", activities[0].Building)

	both := activities[1]
	assert.Equal(t, uint(2), both.ID)
	assert.Equal(t, "Asha & Vikram", both.Client)
	assert.Equal(t, "Agreement Completed", both.Action)
	assert.Equal(t, "+91-111", both.ContactNo)
	assert.Equal(t, "Raj", both.AgentName)
	assert.Equal(t, 8000.0, both.TotalAmount)
	assert.Equal(t, newer.Format(time.RFC3339), activities[0].CompletedAt)
}

func TestRecentActivityHonorsLimit(t *testing.T) {
	done := statsNow
	var list []agreement.Agreement
	for i := 1; i <= 5; i++ {
		ts := done.Add(time.Duration(i) * time.Hour)
		list = append(list, agreement.Agreement{
			ID: uint(i), Status: agreement.StatusCompleted, CompletedAt: &ts,
		})
	}

	activities := RecentActivity(list, 3)
	require.Len(t, activities, 3)
	assert.Equal(t, uint(5), activities[0].ID)
}
