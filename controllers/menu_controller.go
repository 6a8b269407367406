package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/quentinhas/quentinhas-api/config"
	"github.com/quentinhas/quentinhas-api/middleware"
	"github.com/quentinhas/quentinhas-api/models"
)

// GetMenu handles GET /api/v1/menu - the tenant's active categories and
// products, ordered for the storefront.
func GetMenu(c *gin.Context) {
	tenant := middleware.CurrentTenant(c)
	db := config.GetDB()

	var categories []models.Category
	if err := db.WithContext(c.Request.Context()).
		Where("tenant_id = ? AND active = ?", tenant.ID, true).
		Order("sort_order ASC").
		Find(&categories).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to load menu",
			},
		})
		return
	}

	var products []models.Product
	if err := db.WithContext(c.Request.Context()).
		Where("tenant_id = ? AND active = ?", tenant.ID, true).
		Order("name ASC").
		Find(&products).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to load menu",
			},
		})
		return
	}

	// Group products under their categories
	byCategory := make(map[string][]models.Product, len(categories))
	for _, product := range products {
		byCategory[product.CategoryID] = append(byCategory[product.CategoryID], product)
	}

	menu := make([]gin.H, 0, len(categories))
	for _, category := range categories {
		menu = append(menu, gin.H{
			"category": category,
			"products": byCategory[category.ID],
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    gin.H{"menu": menu},
	})
}
