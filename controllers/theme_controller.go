package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/quentinhas/quentinhas-api/middleware"
	"github.com/quentinhas/quentinhas-api/services"
	"github.com/quentinhas/quentinhas-api/utils"
)

// GetThemeCSS handles GET /api/v1/theme.css - the tenant's branding as a
// stylesheet of CSS custom properties for the storefront to link.
func GetThemeCSS(c *gin.Context) {
	tenant := middleware.CurrentTenant(c)

	css := services.RenderThemeCSS(tenant.Theme)
	c.Header("Cache-Control", "public, max-age=300")
	c.Data(http.StatusOK, "text/css; charset=utf-8", []byte(css))
}

// UploadLogo handles POST /api/v1/admin/theme/logo - stores the uploaded
// logo in S3 under the tenant's namespace, replaces the previous one, and
// records the new key on the theme.
func UploadLogo(c *gin.Context) {
	tenant := middleware.CurrentTenant(c)

	fileHeader, err := c.FormFile("logo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "A 'logo' file is required",
			},
		})
		return
	}

	if err := utils.ValidateLogoFile(fileHeader); err != nil {
		uploadErr := err.(*utils.FileUploadError)
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    uploadErr.Code,
				"message": uploadErr.Message,
			},
		})
		return
	}

	s3Service := services.GetS3Service()
	if s3Service == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "STORAGE_UNAVAILABLE",
				"message": "Logo storage is not configured",
			},
		})
		return
	}

	s3Key, err := s3Service.UploadLogo(tenant.ID, fileHeader)
	if err != nil {
		logrus.WithFields(logrus.Fields{"tenant": tenant.ID}).WithError(err).Error("logo upload failed")
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "UPLOAD_ERROR",
				"message": "Failed to upload logo",
			},
		})
		return
	}

	// Replace the previous logo; a dangling delete is logged, not fatal
	previousKey := ""
	if tenant.Theme != nil {
		previousKey = tenant.Theme.Logo
	}
	if previousKey != "" && previousKey != s3Key {
		if err := s3Service.DeleteFile(previousKey); err != nil {
			logrus.WithFields(logrus.Fields{"tenant": tenant.ID, "key": previousKey}).
				WithError(err).Warn("failed to delete previous logo")
		}
	}

	theme := services.MergeTheme(tenant.Theme, nil)
	theme.Logo = s3Key
	if err := tenantStore.UpdateTheme(c.Request.Context(), tenant.ID, theme); err != nil {
		logrus.WithFields(logrus.Fields{"tenant": tenant.ID}).WithError(err).Error("failed to record logo key")
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to save logo",
			},
		})
		return
	}
	tenantResolver.Invalidate(tenant.Slug)

	logoURL, err := s3Service.GetPresignedURL(s3Key)
	if err != nil {
		logoURL = ""
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"logo_key": s3Key,
			"logo_url": logoURL,
		},
	})
}
