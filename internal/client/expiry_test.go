package client

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Mid-afternoon "now" so the midnight truncation is actually exercised.
var testNow = time.Date(2026, 3, 10, 15, 42, 0, 0, time.UTC)

func endingIn(days int) string {
	return testNow.AddDate(0, 0, days).Format("2006-01-02")
}

func TestClassifyExpiringBuckets(t *testing.T) {
	clients := []Client{
		{ID: 1, Name: "Critical", AgreementEndDate: endingIn(5)},
		{ID: 2, Name: "Warning", AgreementEndDate: endingIn(10)},
		{ID: 3, Name: "Normal", AgreementEndDate: endingIn(25)},
		{ID: 4, Name: "Expired", AgreementEndDate: endingIn(-1)},
		{ID: 5, Name: "Far away", AgreementEndDate: endingIn(40)},
		{ID: 6, Name: "No date"},
	}

	summary := ClassifyExpiring(clients, testNow)

	require.Len(t, summary.Critical, 1)
	require.Len(t, summary.Warning, 1)
	require.Len(t, summary.Normal, 1)
	assert.Equal(t, 3, summary.Total())

	assert.Equal(t, "Critical", summary.Critical[0].ClientName)
	assert.Equal(t, 5, summary.Critical[0].DaysLeft)
	assert.Equal(t, "Warning", summary.Warning[0].ClientName)
	assert.Equal(t, 10, summary.Warning[0].DaysLeft)
	assert.Equal(t, "Normal", summary.Normal[0].ClientName)
	assert.Equal(t, 25, summary.Normal[0].DaysLeft)
}

func TestClassifyExpiringBoundaries(t *testing.T) {
	clients := []Client{
		{ID: 1, AgreementEndDate: endingIn(0)},  // expires today: still shown
		{ID: 2, AgreementEndDate: endingIn(7)},  // last day of critical
		{ID: 3, AgreementEndDate: endingIn(8)},  // first day of warning
		{ID: 4, AgreementEndDate: endingIn(15)}, // last day of warning
		{ID: 5, AgreementEndDate: endingIn(16)}, // first day of normal
		{ID: 6, AgreementEndDate: endingIn(30)}, // last day shown
		{ID: 7, AgreementEndDate: endingIn(31)}, // excluded
	}

	summary := ClassifyExpiring(clients, testNow)

	assert.Len(t, summary.Critical, 2)
	assert.Len(t, summary.Warning, 2)
	assert.Len(t, summary.Normal, 2)
}

func TestClassifyExpiringSortsAscending(t *testing.T) {
	clients := []Client{
		{ID: 1, AgreementEndDate: endingIn(6)},
		{ID: 2, AgreementEndDate: endingIn(2)},
		{ID: 3, AgreementEndDate: endingIn(4)},
	}

	summary := ClassifyExpiring(clients, testNow)

	require.Len(t, summary.Critical, 3)
	assert.Equal(t, 2, summary.Critical[0].DaysLeft)
	assert.Equal(t, 4, summary.Critical[1].DaysLeft)
	assert.Equal(t, 6, summary.Critical[2].DaysLeft)
}

func TestClassifyExpiringDisplayFields(t *testing.T) {
	clients := []Client{
		{
			ID:               1,
			Name:             "Fallback",
			Phone:            "+91-000",
			OwnerName:        "Asha",
			OwnerPhone:       "+91-111",
			TenantName:       "Vikram",
			TenantPhone:      "+91-222",
			OwnerTokenNo:     "T-1",
			TenantTokenNo:    "T-2",
			AgreementEndDate: endingIn(3),
		},
		{
			ID:               2,
			Name:             "Fallback",
			Phone:            "+91-000",
			TenantName:       "Solo Tenant",
			TenantPhone:      "+91-333",
			AgreementEndDate: endingIn(4),
		},
		{
			ID:               3,
			Name:             "Just Name",
			Phone:            "+91-444",
			AgreementEndDate: endingIn(5),
		},
	}

	summary := ClassifyExpiring(clients, testNow)
	require.Len(t, summary.Critical, 3)

	both := summary.Critical[0]
	assert.Equal(t, "Asha / Vikram", both.ClientName)
	assert.Equal(t, "+91-000", both.Phone) // both sides present keeps the generic phone
	assert.Equal(t, "Owner: T-1 | Tenant: T-2", both.TokenNo)
	assert.Equal(t, "Unknown Building", both.Building)
	assert.Equal(t, "Unknown Region", both.Region)

	tenantOnly := summary.Critical[1]
	assert.Equal(t, "Solo Tenant", tenantOnly.ClientName)
	assert.Equal(t, "+91-333", tenantOnly.Phone)

	generic := summary.Critical[2]
	assert.Equal(t, "Just Name", generic.ClientName)
	assert.Equal(t, "+91-444", generic.Phone)
}
