package entitlement

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUserEntitlements(t *testing.T) {
	u, err := NewUserEntitlements("usr_aB3xY9kQ2mNp", true, []string{"les_one", "les_two", ""})
	require.NoError(t, err)

	assert.Equal(t, "usr_aB3xY9kQ2mNp", u.UserSID())
	assert.True(t, u.SubscriptionActive())
	assert.True(t, u.HasPurchased("les_one"))
	assert.False(t, u.HasPurchased("les_three"))

	// Empty SIDs are dropped, output is sorted.
	assert.Equal(t, []string{"les_one", "les_two"}, u.PurchasedLessons())
}

func TestNewUserEntitlementsRequiresUserSID(t *testing.T) {
	_, err := NewUserEntitlements("", false, nil)
	assert.Error(t, err)
}

func TestNoPurchases(t *testing.T) {
	u, err := NewUserEntitlements("usr_aB3xY9kQ2mNp", false, nil)
	require.NoError(t, err)
	assert.Empty(t, u.PurchasedLessons())
	assert.False(t, u.HasPurchased("les_one"))
}
