package access

import (
	"github.com/darasa-app/darasa/internal/domain/entitlement"
	"github.com/darasa-app/darasa/internal/domain/lesson"
)

// Resolve evaluates a user's entitlements against one lesson's access
// metadata. It is a pure function, safe to call concurrently, and
// deterministic for identical inputs.
//
// The rules apply in order, first match wins:
//  1. nil user (unauthenticated) is denied.
//  2. An active subscription grants full access.
//  3. An individual purchase of this lesson grants full access.
//  4. A free-preview lesson grants preview access.
//  5. Everything else is denied as not entitled.
//
// IsPublished is deliberately not consulted here. Publication gating happens
// one layer up, before entitlement is evaluated at all, so that an
// unpublished lesson denies with NOT_PUBLISHED even for unauthenticated
// callers.
func Resolve(user *entitlement.UserEntitlements, meta lesson.AccessMeta) Decision {
	switch {
	case user == nil:
		return Denied(ReasonNotAuthenticated)
	case user.SubscriptionActive():
		return AllowFull()
	case user.HasPurchased(meta.LessonSID()):
		return AllowFull()
	case meta.IsFreePreview():
		return AllowPreview()
	default:
		return Denied(ReasonNotEntitled)
	}
}
