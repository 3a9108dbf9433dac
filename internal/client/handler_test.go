package client

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&Client{}))
	return db
}

func newTestRouter(db *gorm.DB) *mux.Router {
	h := NewHandler(db)
	r := mux.NewRouter()
	r.HandleFunc("/api/clients", h.List).Methods(http.MethodGet)
	r.HandleFunc("/api/clients", h.Create).Methods(http.MethodPost)
	r.HandleFunc("/api/clients", h.Update).Methods(http.MethodPut)
	r.HandleFunc("/api/clients/expiring", h.Expiring).Methods(http.MethodGet)
	return r
}

func doJSON(t *testing.T, r *mux.Router, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestCreateClientRequiresNameRegionBuilding(t *testing.T) {
	r := newTestRouter(setupTestDB(t))

	rec := doJSON(t, r, http.MethodPost, "/api/clients", map[string]interface{}{
		"name": "Asha",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateClientAppliesDefaults(t *testing.T) {
	db := setupTestDB(t)
	r := newTestRouter(db)

	rec := doJSON(t, r, http.MethodPost, "/api/clients", map[string]interface{}{
		"name":     "Asha",
		"region":   "Andheri",
		"building": "Sunrise Tower",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var saved Client
	require.NoError(t, db.First(&saved).Error)
	assert.Equal(t, "tenant", saved.ClientType)
	assert.Equal(t, "Self Executed", saved.ModeOfAgreement)
	assert.Equal(t, "active", saved.AgreementStatus)
	assert.NotNil(t, saved.Documents)
}

func TestUpdateClientReplacesRecord(t *testing.T) {
	db := setupTestDB(t)
	r := newTestRouter(db)

	seed := Client{Name: "Asha", Region: "Andheri", Building: "Sunrise Tower", Phone: "+91-111"}
	require.NoError(t, db.Create(&seed).Error)
	created := seed.CreatedAt

	rec := doJSON(t, r, http.MethodPut, "/api/clients", map[string]interface{}{
		"id":       seed.ID,
		"name":     "Asha Mehta",
		"region":   "Bandra",
		"building": "Sea View",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var saved Client
	require.NoError(t, db.First(&saved, seed.ID).Error)
	assert.Equal(t, "Asha Mehta", saved.Name)
	assert.Equal(t, "Bandra", saved.Region)
	assert.Empty(t, saved.Phone) // whole-record replace, omitted fields reset
	assert.WithinDuration(t, created, saved.CreatedAt, time.Second)
}

func TestUpdateClientMissingID(t *testing.T) {
	r := newTestRouter(setupTestDB(t))

	rec := doJSON(t, r, http.MethodPut, "/api/clients", map[string]interface{}{
		"name": "Nobody",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateClientNotFound(t *testing.T) {
	r := newTestRouter(setupTestDB(t))

	rec := doJSON(t, r, http.MethodPut, "/api/clients", map[string]interface{}{
		"id":       999,
		"name":     "Ghost",
		"region":   "Nowhere",
		"building": "None",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestExpiringEndpoint(t *testing.T) {
	db := setupTestDB(t)
	r := newTestRouter(db)

	soon := time.Now().AddDate(0, 0, 3).Format("2006-01-02")
	require.NoError(t, db.Create(&Client{
		Name: "Asha", Region: "Andheri", Building: "Sunrise Tower",
		AgreementEndDate: soon,
	}).Error)

	rec := doJSON(t, r, http.MethodGet, "/api/clients/expiring", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var summary ExpirySummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summary))
	require.Len(t, summary.Critical, 1)
	assert.Equal(t, "Asha", summary.Critical[0].ClientName)
}
