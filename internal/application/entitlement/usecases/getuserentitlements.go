// Package usecases contains the entitlement application use cases.
package usecases

import (
	"context"
	"fmt"

	"github.com/darasa-app/darasa/internal/application/entitlement/dto"
	"github.com/darasa-app/darasa/internal/domain/entitlement"
	"github.com/darasa-app/darasa/internal/shared/errors"
	"github.com/darasa-app/darasa/internal/shared/logger"
)

// GetUserEntitlementsUseCase loads the entitlement snapshot for a user. The
// HTTP boundary uses it both to answer the self-query endpoint and to resolve
// the caller's entitlements before invoking the content gate.
type GetUserEntitlementsUseCase struct {
	entitlementRepo entitlement.Repository
	logger          logger.Interface
}

// NewGetUserEntitlementsUseCase creates a new get user entitlements use case.
func NewGetUserEntitlementsUseCase(
	entitlementRepo entitlement.Repository,
	logger logger.Interface,
) *GetUserEntitlementsUseCase {
	return &GetUserEntitlementsUseCase{
		entitlementRepo: entitlementRepo,
		logger:          logger,
	}
}

// Execute returns the entitlement snapshot for the given user.
func (uc *GetUserEntitlementsUseCase) Execute(ctx context.Context, userSID string) (*entitlement.UserEntitlements, error) {
	if userSID == "" {
		return nil, errors.NewValidationError("user SID is required")
	}

	ents, err := uc.entitlementRepo.GetForUser(ctx, userSID)
	if err != nil {
		uc.logger.Errorw("failed to load user entitlements", "error", err, "user_sid", userSID)
		return nil, fmt.Errorf("failed to load user entitlements: %w", err)
	}

	return ents, nil
}

// ExecuteResponse returns the entitlement snapshot mapped to the response DTO.
func (uc *GetUserEntitlementsUseCase) ExecuteResponse(ctx context.Context, userSID string) (*dto.EntitlementsResponse, error) {
	ents, err := uc.Execute(ctx, userSID)
	if err != nil {
		return nil, err
	}

	return &dto.EntitlementsResponse{
		UserSID:            ents.UserSID(),
		SubscriptionActive: ents.SubscriptionActive(),
		PurchasedLessons:   ents.PurchasedLessons(),
	}, nil
}
