package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"github.com/rentdesk/api-agreements/internal/agent"
	"github.com/rentdesk/api-agreements/internal/agreement"
	"github.com/rentdesk/api-agreements/internal/auth"
	"github.com/rentdesk/api-agreements/internal/client"
	"github.com/rentdesk/api-agreements/internal/commission"
	"github.com/rentdesk/api-agreements/internal/contact"
	"github.com/rentdesk/api-agreements/internal/dashboard"
	"github.com/rentdesk/api-agreements/internal/notification"
	"github.com/rentdesk/api-agreements/internal/utils"
	"github.com/rentdesk/api-agreements/internal/utils/db"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	database, err := db.Connect()
	if err != nil {
		log.Fatal("Error connecting to database:", err)
	}

	if err := database.AutoMigrate(
		&agreement.Agreement{},
		&client.Client{},
		&agent.Agent{},
		&contact.Contact{},
	); err != nil {
		log.Fatal("AutoMigrate error:", err)
	}

	// Handlers
	authHandler := auth.NewHandler(auth.CredentialsFromEnv())
	agreementHandler := agreement.NewHandler(database)
	clientHandler := client.NewHandler(database)
	agentHandler := agent.NewHandler(database)
	commissionHandler := commission.NewHandler(database)
	contactHandler := contact.NewHandler(database)
	dashboardHandler := dashboard.NewHandler(database)

	// Router
	r := mux.NewRouter()

	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		utils.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods("GET")

	// Public routes: admin login and the website contact form.
	r.HandleFunc("/api/admin/login", authHandler.Login).Methods("POST")
	r.HandleFunc("/api/contacts", contactHandler.Create).Methods("POST")

	// Everything else sits behind the session token.
	api := r.PathPrefix("/api").Subrouter()
	api.Use(auth.RequireAdmin)

	// Agreement routes
	api.HandleFunc("/agreements", agreementHandler.Create).Methods("POST")
	api.HandleFunc("/agreements", agreementHandler.List).Methods("GET")
	api.HandleFunc("/agreements/folders", agreementHandler.Folders).Methods("GET")
	api.HandleFunc("/agreements/{id}", agreementHandler.Patch).Methods("PATCH")
	api.HandleFunc("/agreements/{id}/complete", agreementHandler.Complete).Methods("POST")

	// Client routes
	api.HandleFunc("/clients", clientHandler.List).Methods("GET")
	api.HandleFunc("/clients", clientHandler.Create).Methods("POST")
	api.HandleFunc("/clients", clientHandler.Update).Methods("PUT")
	api.HandleFunc("/clients/expiring", clientHandler.Expiring).Methods("GET")

	// Agent routes
	api.HandleFunc("/agents", agentHandler.List).Methods("GET")
	api.HandleFunc("/agents", agentHandler.Create).Methods("POST")
	api.HandleFunc("/agents/earnings", commissionHandler.Earnings).Methods("GET")
	api.HandleFunc("/agents/{name}/history", commissionHandler.AgentHistory).Methods("GET")

	// Contact request routes (admin side)
	api.HandleFunc("/contacts", contactHandler.List).Methods("GET")
	api.HandleFunc("/contacts/{id}", contactHandler.PatchDraft).Methods("PATCH")
	api.HandleFunc("/contacts/{id}", contactHandler.Delete).Methods("DELETE")

	// Dashboard routes
	api.HandleFunc("/dashboard/stats", dashboardHandler.Stats).Methods("GET")
	api.HandleFunc("/dashboard/recent-activity", dashboardHandler.RecentActivity).Methods("GET")

	// Optional expiry webhook watcher
	if webhookURL := os.Getenv("EXPIRY_WEBHOOK_URL"); webhookURL != "" {
		clientRepo := client.NewRepository(database)
		go notification.WatchExpiries(webhookURL, 24*time.Hour, clientRepo.ListAll, nil)
		log.Println("Expiry webhook watcher started")
	}

	handler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}).Handler(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	fmt.Println("Server running on http://localhost:" + port)
	log.Fatal(http.ListenAndServe(":"+port, handler))
}
