package middleware

import (
	"github.com/gin-gonic/gin"
)

// defaultTenant is used when no tenant header is present (single-tenant
// deployments).
const defaultTenant = "primary"

// TenantMiddleware resolves the tenant from the X-Tenant-ID header and stores
// it on the request context for handlers and services.
func TenantMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tenantID := c.GetHeader("X-Tenant-ID")
		if tenantID == "" {
			tenantID = defaultTenant
		}
		c.Set("tenantID", tenantID)
		c.Next()
	}
}
