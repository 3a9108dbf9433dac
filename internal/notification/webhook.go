package notification

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/rentdesk/api-agreements/internal/client"
)

// SendExpiryAlert posts one critical-expiry alert to the configured webhook.
// Best effort: errors are logged and swallowed.
func SendExpiryAlert(webhookURL string, c client.ExpiringClient) {
	payload := map[string]interface{}{
		"message":  "Alert: agreement expiring soon",
		"client":   c.ClientName,
		"building": c.Building,
		"endDate":  c.EndDate,
		"daysLeft": c.DaysLeft,
	}
	body, _ := json.Marshal(payload)

	resp, err := http.Post(webhookURL, "application/json", bytes.NewBuffer(body))
	if err != nil {
		log.Printf("error sending expiry webhook: %v", err)
		return
	}
	defer resp.Body.Close()
}

// WatchExpiries periodically loads the client list and alerts on every
// client in the critical (<=7 days) bucket. Runs until stop is closed.
func WatchExpiries(webhookURL string, interval time.Duration, load func() ([]client.Client, error), stop <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			clients, err := load()
			if err != nil {
				log.Printf("expiry watcher: failed to load clients: %v", err)
				continue
			}
			summary := client.ClassifyExpiring(clients, time.Now())
			for _, c := range summary.Critical {
				SendExpiryAlert(webhookURL, c)
			}
		case <-stop:
			return
		}
	}
}
