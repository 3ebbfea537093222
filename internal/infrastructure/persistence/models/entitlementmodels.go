package models

import (
	"time"

	"github.com/darasa-app/darasa/internal/shared/constants"
)

// SubscriptionModel stores a platform-wide subscription for a user.
// A subscription with Status "active" and a future ExpiresAt grants
// full access to all published lessons.
type SubscriptionModel struct {
	ID        uint   `gorm:"primarykey"`
	SID       string `gorm:"uniqueIndex;not null;size:50;comment:Stripe-style ID: sub_xxx"`
	UserSID   string `gorm:"not null;size:50;index:idx_sub_user"`
	Status    string `gorm:"not null;size:20;index:idx_sub_status"`
	ExpiresAt *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (SubscriptionModel) TableName() string {
	return constants.TableSubscriptions
}

// PurchaseModel stores a single-lesson purchase.
type PurchaseModel struct {
	ID         uint   `gorm:"primarykey"`
	UserSID    string `gorm:"not null;size:50;index:idx_purchase_user,priority:1"`
	LessonSID  string `gorm:"not null;size:50;index:idx_purchase_user,priority:2"`
	PriceCoins int    `gorm:"not null;default:0"`
	CreatedAt  time.Time
}

func (PurchaseModel) TableName() string {
	return constants.TablePurchases
}
