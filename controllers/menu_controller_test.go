package controllers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/quentinhas/quentinhas-api/models"
)

func TestGetMenuEndpoint(t *testing.T) {
	db := setupTestEnvironment(t)
	tenant := testTenant()

	db.Create(&models.Category{ID: "c2", TenantID: tenant.ID, Name: "Bebidas", SortOrder: 2, Active: true})
	db.Create(&models.Category{ID: "c1", TenantID: tenant.ID, Name: "Quentinhas", SortOrder: 1, Active: true})
	db.Create(&models.Category{ID: "c3", TenantID: tenant.ID, Name: "Antiga", SortOrder: 3, Active: false})
	db.Create(&models.Category{ID: "cx", TenantID: "other", Name: "Alheia", SortOrder: 1, Active: true})

	db.Create(&models.Product{ID: "p1", TenantID: tenant.ID, CategoryID: "c1", Name: "Quentinha Média", Price: 18, Active: true})
	db.Create(&models.Product{ID: "p2", TenantID: tenant.ID, CategoryID: "c1", Name: "Quentinha Grande", Price: 22, Active: true})
	db.Create(&models.Product{ID: "p3", TenantID: tenant.ID, CategoryID: "c1", Name: "Fora do Menu", Price: 10, Active: false})
	db.Create(&models.Product{ID: "p4", TenantID: tenant.ID, CategoryID: "c2", Name: "Suco", Price: 8, Active: true})

	router := gin.New()
	router.GET("/api/v1/menu", withTenant(tenant), GetMenu)

	w := performJSON(router, "GET", "/api/v1/menu", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	menu := resp.Data["menu"].([]interface{})

	// Only this tenant's active categories, in sort order
	assert.Len(t, menu, 2)
	first := menu[0].(map[string]interface{})
	assert.Equal(t, "Quentinhas", first["category"].(map[string]interface{})["name"])
	second := menu[1].(map[string]interface{})
	assert.Equal(t, "Bebidas", second["category"].(map[string]interface{})["name"])

	// Inactive products are excluded; active ones sort by name
	products := first["products"].([]interface{})
	assert.Len(t, products, 2)
	assert.Equal(t, "Quentinha Grande", products[0].(map[string]interface{})["name"])
	assert.Equal(t, "Quentinha Média", products[1].(map[string]interface{})["name"])
}
