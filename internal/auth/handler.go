package auth

import (
	"encoding/json"
	"net/http"
	"os"
	"time"

	"github.com/rentdesk/api-agreements/internal/utils"
)

// Credentials is the single shared admin identity. Password and PasswordHash
// are alternatives: when PasswordHash is set it wins and Password is ignored.
type Credentials struct {
	UserID       string
	Password     string
	PasswordHash string
}

// CredentialsFromEnv reads ADMIN_USERID plus either ADMIN_PASSWORD_HASH
// (bcrypt) or ADMIN_PASSWORD (plain).
func CredentialsFromEnv() Credentials {
	return Credentials{
		UserID:       os.Getenv("ADMIN_USERID"),
		Password:     os.Getenv("ADMIN_PASSWORD"),
		PasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
	}
}

type Handler struct {
	Creds Credentials
}

func NewHandler(creds Credentials) *Handler {
	return &Handler{Creds: creds}
}

type loginRequest struct {
	UserID   string `json:"userid"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token     string `json:"token"`
	ExpiresAt string `json:"expiresAt"`
}

// Login checks the shared admin credential and issues a 24h session token.
// POST /api/admin/login
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid JSON", err)
		return
	}
	if req.UserID == "" || req.Password == "" {
		utils.RespondError(w, http.StatusBadRequest, "User ID and password are required", nil)
		return
	}

	if req.UserID != h.Creds.UserID || !h.passwordMatches(req.Password) {
		utils.RespondError(w, http.StatusUnauthorized, "Invalid user ID or password", nil)
		return
	}

	token, expiresAt, err := GenerateToken(req.UserID)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Failed to generate token", err)
		return
	}

	utils.RespondJSON(w, http.StatusOK, loginResponse{
		Token:     token,
		ExpiresAt: expiresAt.Format(time.RFC3339),
	})
}

func (h *Handler) passwordMatches(password string) bool {
	if h.Creds.PasswordHash != "" {
		return utils.CheckPassword(h.Creds.PasswordHash, password)
	}
	return h.Creds.Password != "" && h.Creds.Password == password
}
