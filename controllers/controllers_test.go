package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/quentinhas/quentinhas-api/config"
	"github.com/quentinhas/quentinhas-api/middleware"
	"github.com/quentinhas/quentinhas-api/models"
	"github.com/quentinhas/quentinhas-api/services"
)

// setupTestEnvironment prepares an in-memory database and wires the package
// services against it. Every test starts from a clean schema.
func setupTestEnvironment(t *testing.T) *gorm.DB {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	if err := db.AutoMigrate(&models.Tenant{}, &models.Category{}, &models.Product{}, &models.Order{}); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
	config.SetDB(db)
	config.SetConfig(&config.Config{
		GoEnv:          "test",
		BaseDomain:     "quentinhas.com",
		TenantCacheTTL: 5 * time.Minute,
	})

	store := services.NewGormTenantStore()
	SetTenantStore(store)
	Init(services.NewTenantResolver(store, services.NewTenantCache(5*time.Minute)), nil)

	return db
}

// testTenant returns a normalized tenant that is open around the clock, so
// checkout tests do not depend on the wall clock.
func testTenant() *models.Tenant {
	tenant := services.NormalizeTenant(&models.Tenant{
		ID:           "tenant-1",
		Slug:         "acme",
		Name:         "Acme Quentinhas",
		Email:        "acme@example.com",
		Status:       models.TenantStatusActive,
		Plan:         models.PlanStarter,
		AdminSubject: "auth0|admin",
	})
	for day, schedule := range tenant.Settings.WorkingHours {
		schedule.IsOpen = true
		schedule.Open = "00:00"
		schedule.Close = "23:59"
		tenant.Settings.WorkingHours[day] = schedule
	}
	return tenant
}

// withTenant injects a resolved tenant the way the resolution middleware
// would on a subdomain request.
func withTenant(tenant *models.Tenant) gin.HandlerFunc {
	return func(c *gin.Context) {
		middleware.SetCurrentTenant(c, tenant)
		c.Next()
	}
}

// withUser injects an authenticated subject the way the JWT middleware would
func withUser(subject string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", subject)
		c.Next()
	}
}

func performJSON(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			panic(err)
		}
	}
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

type apiResponse struct {
	Success bool                   `json:"success"`
	Data    map[string]interface{} `json:"data"`
	Error   struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) apiResponse {
	var resp apiResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response body: %v\n%s", err, w.Body.String())
	}
	return resp
}
