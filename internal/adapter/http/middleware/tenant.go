package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	TenantHeader = "X-Tenant-ID"
	TenantKey    = "tenant_id"
)

// Tenant resolves the caller's tenant from the X-Tenant-ID header, falling
// back to defaultTenant, and stores it under TenantKey.
func Tenant(defaultTenant string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tenant := strings.TrimSpace(c.GetHeader(TenantHeader))
		if tenant == "" {
			tenant = defaultTenant
		}
		c.Set(TenantKey, tenant)
		c.Next()
	}
}

func TenantID(c *gin.Context) string {
	return c.GetString(TenantKey)
}
