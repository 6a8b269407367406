package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/quentinhas/quentinhas-api/models"
	"github.com/quentinhas/quentinhas-api/services"
)

const (
	tenantContextKey = "current_tenant"
	tenantDomainKey  = "is_tenant_domain"
	tenantSlugKey    = "tenant_slug"
)

// TenantResolution resolves the request hostname to a tenant and stores it
// in the Gin context. Requests to the main domain pass through without a
// tenant so the marketing/registration routes can serve them. An unknown
// subdomain is answered with a branded not-found; a backend failure with a
// generic lookup-failure that leaks no internals.
func TenantResolution(resolver *services.TenantResolver, baseDomain string) gin.HandlerFunc {
	return func(c *gin.Context) {
		slug, ok := services.ExtractSubdomain(c.Request.Host, baseDomain)
		if !ok {
			c.Set(tenantDomainKey, false)
			c.Next()
			return
		}

		c.Set(tenantDomainKey, true)
		c.Set(tenantSlugKey, slug)

		tenant, err := resolver.ResolveBySlug(c.Request.Context(), slug)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadGateway, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "TENANT_LOOKUP_FAILED",
					"message": "Tenant lookup failed. Please try again.",
				},
			})
			return
		}
		if tenant == nil {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{
				"success": false,
				"error": gin.H{
					"code":     "TENANT_NOT_FOUND",
					"message":  "Restaurant not found",
					"main_url": "https://" + baseDomain,
				},
			})
			return
		}

		c.Set(tenantContextKey, tenant)
		c.Next()
	}
}

// RequireTenant guards routes that only make sense on a tenant subdomain
func RequireTenant() gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentTenant(c) == nil {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "TENANT_REQUIRED",
					"message": "This endpoint is only available on a restaurant subdomain",
				},
			})
			return
		}
		c.Next()
	}
}

// RequireMainDomain guards platform routes that must not be served from a
// tenant subdomain (registration, slug availability).
func RequireMainDomain() gin.HandlerFunc {
	return func(c *gin.Context) {
		if IsTenantDomain(c) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "NOT_AVAILABLE",
					"message": "This endpoint is only available on the main domain",
				},
			})
			return
		}
		c.Next()
	}
}

// CurrentTenant returns the resolved tenant of this request, or nil on the
// main domain.
func CurrentTenant(c *gin.Context) *models.Tenant {
	value, exists := c.Get(tenantContextKey)
	if !exists {
		return nil
	}
	tenant, ok := value.(*models.Tenant)
	if !ok {
		return nil
	}
	return tenant
}

// IsTenantDomain reports whether the request host carried a tenant slug,
// even if that slug did not resolve.
func IsTenantDomain(c *gin.Context) bool {
	value, exists := c.Get(tenantDomainKey)
	if !exists {
		return false
	}
	isTenant, _ := value.(bool)
	return isTenant
}

// SetCurrentTenant stores a tenant in the context (primarily for testing)
func SetCurrentTenant(c *gin.Context, tenant *models.Tenant) {
	c.Set(tenantDomainKey, tenant != nil)
	if tenant != nil {
		c.Set(tenantContextKey, tenant)
		c.Set(tenantSlugKey, tenant.Slug)
	}
}
