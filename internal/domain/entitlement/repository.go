package entitlement

import "context"

// Repository loads the entitlement snapshot for a user. Used by the HTTP
// boundary to resolve the caller's entitlements once per request; the access
// gate itself only consumes the snapshot it is handed.
type Repository interface {
	GetForUser(ctx context.Context, userSID string) (*UserEntitlements, error)
}
