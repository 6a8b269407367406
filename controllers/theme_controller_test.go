package controllers

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/quentinhas/quentinhas-api/models"
	"github.com/quentinhas/quentinhas-api/services"
)

func setupThemeRouter(tenant *models.Tenant) *gin.Engine {
	router := gin.New()
	router.GET("/api/v1/theme.css", withTenant(tenant), GetThemeCSS)
	router.POST("/api/v1/admin/theme/logo", withTenant(tenant), withUser(tenant.AdminSubject), UploadLogo)
	return router
}

func multipartLogoRequest(t *testing.T, path, filename string, content []byte) *http.Request {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("logo", filename)
	if err != nil {
		t.Fatalf("Failed to build multipart body: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("Failed to write file content: %v", err)
	}
	writer.Close()

	req, _ := http.NewRequest("POST", path, &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestGetThemeCSSEndpoint(t *testing.T) {
	setupTestEnvironment(t)
	tenant := testTenant()
	router := setupThemeRouter(tenant)

	req, _ := http.NewRequest("GET", "/api/v1/theme.css", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/css; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Equal(t, "public, max-age=300", w.Header().Get("Cache-Control"))
	assert.Contains(t, w.Body.String(), "--color-primary: #FF6B35;")
	assert.True(t, strings.HasPrefix(w.Body.String(), ":root {"))
}

func TestUploadLogoEndpoint(t *testing.T) {
	db := setupTestEnvironment(t)
	tenant := testTenant()
	db.Create(tenant)
	router := setupThemeRouter(tenant)

	mockS3 := services.NewMockS3Service()
	mockS3.SetAsMockForTesting()
	defer services.SetS3Service(nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, multipartLogoRequest(t, "/api/v1/admin/theme/logo", "logo.png", []byte("png-bytes")))

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	logoKey := resp.Data["logo_key"].(string)
	assert.True(t, strings.HasPrefix(logoKey, "tenants/"+tenant.ID+"/"))
	assert.True(t, mockS3.FileExists(logoKey))
	assert.Contains(t, resp.Data["logo_url"], logoKey)

	// The key is recorded on the stored theme
	var stored models.Tenant
	assert.NoError(t, db.Where("id = ?", tenant.ID).First(&stored).Error)
	assert.Equal(t, logoKey, stored.Theme.Logo)
}

func TestUploadLogoEndpointReplacesPrevious(t *testing.T) {
	db := setupTestEnvironment(t)
	tenant := testTenant()
	db.Create(tenant)
	router := setupThemeRouter(tenant)

	mockS3 := services.NewMockS3Service()
	mockS3.SetAsMockForTesting()
	defer services.SetS3Service(nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, multipartLogoRequest(t, "/api/v1/admin/theme/logo", "first.png", []byte("v1")))
	firstKey := decodeResponse(t, w).Data["logo_key"].(string)

	// The handler reads the previous key off the resolved tenant
	tenant.Theme.Logo = firstKey

	w = httptest.NewRecorder()
	router.ServeHTTP(w, multipartLogoRequest(t, "/api/v1/admin/theme/logo", "second.png", []byte("v2")))
	secondKey := decodeResponse(t, w).Data["logo_key"].(string)

	assert.NotEqual(t, firstKey, secondKey)
	assert.False(t, mockS3.FileExists(firstKey), "previous logo is deleted")
	assert.True(t, mockS3.FileExists(secondKey))
}

func TestUploadLogoEndpointRejectsBadUploads(t *testing.T) {
	setupTestEnvironment(t)
	tenant := testTenant()
	router := setupThemeRouter(tenant)

	mockS3 := services.NewMockS3Service()
	mockS3.SetAsMockForTesting()
	defer services.SetS3Service(nil)

	// Wrong extension
	w := httptest.NewRecorder()
	router.ServeHTTP(w, multipartLogoRequest(t, "/api/v1/admin/theme/logo", "logo.gif", []byte("gif")))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_FILE_FORMAT", decodeResponse(t, w).Error.Code)

	// Missing file field entirely
	req, _ := http.NewRequest("POST", "/api/v1/admin/theme/logo", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VALIDATION_ERROR", decodeResponse(t, w).Error.Code)
}

func TestUploadLogoEndpointStorageUnavailable(t *testing.T) {
	setupTestEnvironment(t)
	tenant := testTenant()
	router := setupThemeRouter(tenant)

	services.SetS3Service(nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, multipartLogoRequest(t, "/api/v1/admin/theme/logo", "logo.png", []byte("png")))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "STORAGE_UNAVAILABLE", decodeResponse(t, w).Error.Code)
}
