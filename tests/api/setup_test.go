package apitest

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	breakerAPI "multirex.GO/api/breaker"
	needsAPI "multirex.GO/api/needs"
	realtimeAPI "multirex.GO/api/realtime"
	statsAPI "multirex.GO/api/stats"
	stockAPI "multirex.GO/api/stock"
	"multirex.GO/database"
	inventoryEntity "multirex.GO/model/entity/inventory"
	partyEntity "multirex.GO/model/entity/party"
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

// newServer wires every API module onto a fresh echo instance and an
// in-memory base. Routes are registered directly so tests do not depend
// on the locked global module registry.
func newServer(t *testing.T) (*echo.Echo, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:?_pragma=foreign_keys(1)"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(database.AllModels()...); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if err := database.EnsureViews(db); err != nil {
		t.Fatalf("create views: %v", err)
	}

	e := echo.New()
	g := e.Group("/api")
	stockAPI.RegisterStockRoutes(g, db)
	statsAPI.RegisterStatsRoutes(g, db)
	breakerAPI.RegisterBreakerRoutes(g, db)
	needsAPI.RegisterNeedsRoutes(g, db)
	realtimeAPI.RegisterRealtimeRoutes(g, db)
	return e, db
}

func seedEngines(t *testing.T, db *gorm.DB) {
	t.Helper()
	if err := db.Create(&partyEntity.Supplier{ID: 1, Name: strPtr("CASSE AUTO 93")}).Error; err != nil {
		t.Fatalf("seed supplier: %v", err)
	}
	if err := db.Create(&inventoryEntity.Reception{ID: 100, SupplierID: 1}).Error; err != nil {
		t.Fatalf("seed reception: %v", err)
	}
	engines := []inventoryEntity.Engine{
		{ID: 1, ReceptionID: 100, Code: strPtr("K9K702")},
		{ID: 2, ReceptionID: 100, Code: strPtr("OM651"), Archived: boolPtr(true)},
	}
	if err := db.Create(&engines).Error; err != nil {
		t.Fatalf("seed engines: %v", err)
	}
}

func request(t *testing.T, e *echo.Echo, method, target string, body io.Reader, contentType string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, body)
	if contentType != "" {
		req.Header.Set(echo.HeaderContentType, contentType)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func getJSON(t *testing.T, e *echo.Echo, target string, out interface{}) *httptest.ResponseRecorder {
	t.Helper()
	rec := request(t, e, http.MethodGet, target, nil, "")
	if out != nil && rec.Code == http.StatusOK {
		if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
			t.Fatalf("decode %s: %v", target, err)
		}
	}
	return rec
}

func postJSON(t *testing.T, e *echo.Echo, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	return request(t, e, http.MethodPost, target, strings.NewReader(body), echo.MIMEApplicationJSON)
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}
