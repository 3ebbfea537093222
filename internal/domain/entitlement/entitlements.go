// Package entitlement provides the per-user entitlement snapshot the access
// gate evaluates. A nil *UserEntitlements means the caller is unauthenticated,
// which is distinct from an authenticated user holding no entitlements.
package entitlement

import (
	"fmt"
	"sort"
)

// UserEntitlements is a read-only snapshot of one user's access-granting
// facts at evaluation time: an active subscription and individually purchased
// lessons.
type UserEntitlements struct {
	userSID            string
	subscriptionActive bool
	purchasedLessons   map[string]struct{}
}

// NewUserEntitlements creates an entitlement snapshot for a user.
func NewUserEntitlements(userSID string, subscriptionActive bool, purchasedLessonSIDs []string) (*UserEntitlements, error) {
	if userSID == "" {
		return nil, fmt.Errorf("user SID is required")
	}

	purchased := make(map[string]struct{}, len(purchasedLessonSIDs))
	for _, sid := range purchasedLessonSIDs {
		if sid == "" {
			continue
		}
		purchased[sid] = struct{}{}
	}

	return &UserEntitlements{
		userSID:            userSID,
		subscriptionActive: subscriptionActive,
		purchasedLessons:   purchased,
	}, nil
}

// UserSID returns the user identifier.
func (u *UserEntitlements) UserSID() string {
	return u.userSID
}

// SubscriptionActive reports whether the user's subscription or trial has not
// expired at evaluation time.
func (u *UserEntitlements) SubscriptionActive() bool {
	return u.subscriptionActive
}

// HasPurchased reports whether the user individually bought the lesson.
func (u *UserEntitlements) HasPurchased(lessonSID string) bool {
	_, ok := u.purchasedLessons[lessonSID]
	return ok
}

// PurchasedLessons returns the purchased lesson SIDs in stable order.
func (u *UserEntitlements) PurchasedLessons() []string {
	sids := make([]string, 0, len(u.purchasedLessons))
	for sid := range u.purchasedLessons {
		sids = append(sids, sid)
	}
	sort.Strings(sids)
	return sids
}
