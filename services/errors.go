package services

import "errors"

// Sentinel errors returned by the tenant and order services. Controllers
// match on these with errors.Is and translate them into API error codes.
var (
	// ErrTenantResolution indicates a backend/transport failure while
	// looking up a tenant. "No such tenant" is not an error; resolution
	// returns a nil tenant for that case.
	ErrTenantResolution = errors.New("tenant lookup failed")

	// ErrOrderNotFound indicates the order id does not exist for the
	// requesting tenant. Cross-tenant ids deliberately look identical to
	// missing ids.
	ErrOrderNotFound = errors.New("order not found")

	// ErrInvalidTransition indicates a requested order status change that
	// the state machine does not allow.
	ErrInvalidTransition = errors.New("invalid order status transition")

	// ErrTenantRequired indicates an order operation attempted without a
	// tenant scope.
	ErrTenantRequired = errors.New("tenant id is required")
)
