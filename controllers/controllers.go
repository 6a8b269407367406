package controllers

import (
	"github.com/quentinhas/quentinhas-api/services"
)

// Shared service instances used by the handlers. main wires the real ones
// at startup; tests swap them for mocks.
var (
	tenantStore    services.TenantStore = services.NewGormTenantStore()
	orderService                        = services.NewOrderService()
	tenantResolver *services.TenantResolver
	orderWatcher   *services.OrderWatcher
)

// Init wires the resolver and watcher created at startup
func Init(resolver *services.TenantResolver, watcher *services.OrderWatcher) {
	tenantResolver = resolver
	orderWatcher = watcher
}

// SetTenantStore replaces the tenant store (primarily for testing)
func SetTenantStore(store services.TenantStore) {
	tenantStore = store
}
