package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/quentinhas/quentinhas-api/config"
	"github.com/quentinhas/quentinhas-api/middleware"
	"github.com/quentinhas/quentinhas-api/models"
	"github.com/quentinhas/quentinhas-api/services"
	"github.com/quentinhas/quentinhas-api/utils"
)

// GetCurrentTenant handles GET /api/v1/tenant - public tenant profile of
// the current subdomain, with defaults applied and open/closed computed.
func GetCurrentTenant(c *gin.Context) {
	tenant := middleware.CurrentTenant(c)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"tenant":  tenant,
			"is_open": services.IsTenantOpen(tenant, time.Now()),
		},
	})
}

// UpdateSettingsRequest is the body for PUT /api/v1/admin/settings
type UpdateSettingsRequest struct {
	Settings models.TenantSettings `json:"settings" binding:"required"`
}

// UpdateSettings handles PUT /api/v1/admin/settings - replaces the tenant
// settings and refreshes the resolution cache so the change is visible on
// the very next request.
func UpdateSettings(c *gin.Context) {
	tenant := middleware.CurrentTenant(c)

	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Invalid request data",
				"details": err.Error(),
			},
		})
		return
	}

	if err := tenantStore.UpdateSettings(c.Request.Context(), tenant.ID, &req.Settings); err != nil {
		logrus.WithFields(logrus.Fields{"tenant": tenant.ID}).WithError(err).Error("settings update failed")
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to update settings",
			},
		})
		return
	}

	// Drop the cached entry and re-resolve so the response carries the
	// normalized post-update tenant.
	tenantResolver.Invalidate(tenant.Slug)
	refreshed, err := tenantResolver.ResolveBySlug(c.Request.Context(), tenant.Slug)
	if err != nil || refreshed == nil {
		c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"settings": req.Settings}})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    gin.H{"tenant": refreshed},
	})
}

// UpdateThemeRequest is the body for PUT /api/v1/admin/theme. All fields
// are optional; omitted ones keep their current value.
type UpdateThemeRequest struct {
	Theme models.TenantTheme `json:"theme" binding:"required"`
}

// UpdateTheme handles PUT /api/v1/admin/theme
func UpdateTheme(c *gin.Context) {
	tenant := middleware.CurrentTenant(c)

	var req UpdateThemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Invalid request data",
				"details": err.Error(),
			},
		})
		return
	}

	merged := services.MergeTheme(tenant.Theme, &req.Theme)
	if err := tenantStore.UpdateTheme(c.Request.Context(), tenant.ID, merged); err != nil {
		logrus.WithFields(logrus.Fields{"tenant": tenant.ID}).WithError(err).Error("theme update failed")
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to update theme",
			},
		})
		return
	}

	tenantResolver.Invalidate(tenant.Slug)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    gin.H{"theme": merged},
	})
}

// CheckSlugAvailability handles GET /api/v1/platform/slug-check?slug=
func CheckSlugAvailability(c *gin.Context) {
	slug := utils.NormalizeSlug(c.Query("slug"))

	if err := utils.ValidateSlug(slug); err != nil {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data": gin.H{
				"slug":      slug,
				"available": false,
				"reason":    err.Error(),
			},
		})
		return
	}

	exists, err := tenantStore.SlugExists(c.Request.Context(), slug)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to check slug availability",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"slug":      slug,
			"available": !exists,
		},
	})
}

// SuggestSlugs handles GET /api/v1/platform/slug-suggestions?name=
func SuggestSlugs(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Query parameter 'name' is required",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    gin.H{"suggestions": utils.SuggestSlugs(name)},
	})
}

// RegisterTenantRequest is the body for POST /api/v1/platform/tenants
type RegisterTenantRequest struct {
	Slug  string  `json:"slug" binding:"required"`
	Name  string  `json:"name" binding:"required"`
	Email string  `json:"email" binding:"required,email"`
	Phone *string `json:"phone"`
	Plan  string  `json:"plan"`
}

// RegisterTenant handles POST /api/v1/platform/tenants - reserves a
// subdomain and creates the tenant, owned by the authenticated caller.
// Settings and theme start empty; the resolver fills defaults on read.
func RegisterTenant(c *gin.Context) {
	adminSubject, err := middleware.GetUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "UNAUTHORIZED",
				"message": "Could not extract user information",
			},
		})
		return
	}

	var req RegisterTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Invalid request data",
				"details": err.Error(),
			},
		})
		return
	}

	slug := utils.NormalizeSlug(req.Slug)
	if err := utils.ValidateSlug(slug); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_SLUG",
				"message": err.Error(),
			},
		})
		return
	}

	exists, err := tenantStore.SlugExists(c.Request.Context(), slug)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to check slug availability",
			},
		})
		return
	}
	if exists {
		c.JSON(http.StatusConflict, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "SLUG_TAKEN",
				"message": "This name is already in use",
			},
		})
		return
	}

	plan := req.Plan
	switch plan {
	case models.PlanStarter, models.PlanProfessional, models.PlanEnterprise:
	case "":
		plan = models.PlanStarter
	default:
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_PLAN",
				"message": "Unknown plan",
			},
		})
		return
	}

	tenant := models.Tenant{
		ID:           uuid.NewString(),
		Slug:         slug,
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Status:       models.TenantStatusActive,
		Plan:         plan,
		AdminSubject: adminSubject,
	}

	if err := tenantStore.Create(c.Request.Context(), &tenant); err != nil {
		logrus.WithFields(logrus.Fields{"slug": slug}).WithError(err).Error("tenant registration failed")
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to register tenant",
			},
		})
		return
	}

	logrus.WithFields(logrus.Fields{"slug": slug, "tenant": tenant.ID}).Info("tenant registered")

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data": gin.H{
			"tenant": tenant,
			"url":    "https://" + slug + "." + config.GetConfig().BaseDomain,
		},
	})
}
