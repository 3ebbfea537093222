package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/darasa-app/darasa/internal/domain/entitlement"
	"github.com/darasa-app/darasa/internal/infrastructure/persistence/models"
	"github.com/darasa-app/darasa/internal/shared/logger"
)

// UserEntitlementRepositoryImpl implements the entitlement.Repository interface
type UserEntitlementRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

// NewUserEntitlementRepository creates a new user entitlement repository instance
func NewUserEntitlementRepository(db *gorm.DB, logger logger.Interface) entitlement.Repository {
	return &UserEntitlementRepositoryImpl{
		db:     db,
		logger: logger,
	}
}

// GetForUser builds the entitlement snapshot for a user: whether an active,
// unexpired subscription exists and which lessons were individually purchased.
func (r *UserEntitlementRepositoryImpl) GetForUser(ctx context.Context, userSID string) (*entitlement.UserEntitlements, error) {
	var subCount int64
	err := r.db.WithContext(ctx).
		Model(&models.SubscriptionModel{}).
		Where("user_sid = ? AND status = ?", userSID, "active").
		Where("expires_at IS NULL OR expires_at > ?", time.Now()).
		Count(&subCount).Error
	if err != nil {
		r.logger.Errorw("failed to query subscriptions", "user_sid", userSID, "error", err)
		return nil, fmt.Errorf("failed to query subscriptions: %w", err)
	}

	var purchasedSIDs []string
	err = r.db.WithContext(ctx).
		Model(&models.PurchaseModel{}).
		Where("user_sid = ?", userSID).
		Pluck("lesson_sid", &purchasedSIDs).Error
	if err != nil {
		r.logger.Errorw("failed to query purchases", "user_sid", userSID, "error", err)
		return nil, fmt.Errorf("failed to query purchases: %w", err)
	}

	return entitlement.NewUserEntitlements(userSID, subCount > 0, purchasedSIDs)
}
