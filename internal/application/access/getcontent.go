// Package access orchestrates the content entitlement gate: metadata load,
// publication gating, entitlement resolution, payload load and shaping.
package access

import (
	"context"
	"fmt"

	"github.com/darasa-app/darasa/internal/domain/access"
	"github.com/darasa-app/darasa/internal/domain/content"
	"github.com/darasa-app/darasa/internal/domain/entitlement"
	"github.com/darasa-app/darasa/internal/domain/lesson"
	"github.com/darasa-app/darasa/internal/shared/errors"
	"github.com/darasa-app/darasa/internal/shared/logger"
)

// ContentResult is the uniform outcome every content adapter consumes.
// Denials are ordinary values, not errors: callers check Allowed and Reason
// without any error handling. The error return of Execute is reserved for
// validation and infrastructure failures.
type ContentResult struct {
	Allowed bool
	Reason  access.DenyReason
	Payload *content.Payload
	Mode    access.Mode
}

// GetContentUseCase decides access for one (user, lesson) pair and returns
// the shaped payload. The two repositories are the seams to storage; the use
// case itself performs no I/O of its own and holds no state across requests.
type GetContentUseCase struct {
	metaRepo    lesson.AccessMetaRepository
	payloadRepo content.PayloadRepository
	logger      logger.Interface
}

// NewGetContentUseCase creates a new get content use case.
func NewGetContentUseCase(
	metaRepo lesson.AccessMetaRepository,
	payloadRepo content.PayloadRepository,
	logger logger.Interface,
) *GetContentUseCase {
	return &GetContentUseCase{
		metaRepo:    metaRepo,
		payloadRepo: payloadRepo,
		logger:      logger,
	}
}

// Execute runs the gate for one request. user is nil for unauthenticated
// callers. The payload is only loaded after access is confirmed, so denied
// requests never cause a content fetch.
func (uc *GetContentUseCase) Execute(
	ctx context.Context,
	contentType content.Type,
	lessonSID string,
	user *entitlement.UserEntitlements,
) (*ContentResult, error) {
	if lessonSID == "" {
		return nil, errors.NewValidationError("lesson ID is required")
	}
	if !contentType.IsValid() {
		return nil, errors.NewValidationError(fmt.Sprintf("unknown content type: %s", contentType))
	}

	// Metadata is loaded fresh on every request so publish/unpublish takes
	// effect immediately.
	meta, err := uc.metaRepo.GetAccessMeta(ctx, lessonSID)
	if err != nil {
		uc.logger.Errorw("failed to load lesson access metadata", "error", err, "lesson_sid", lessonSID)
		return nil, fmt.Errorf("failed to load lesson access metadata: %w", err)
	}
	if meta == nil {
		return nil, errors.NewNotFoundError("lesson not found")
	}

	// Publication gating dominates: an unpublished lesson denies with
	// NOT_PUBLISHED before entitlement is evaluated, even for unauthenticated
	// callers.
	if !meta.IsPublished() {
		return &ContentResult{Allowed: false, Reason: access.ReasonNotPublished}, nil
	}

	decision := access.Resolve(user, *meta)
	if !decision.Allowed() {
		return &ContentResult{Allowed: false, Reason: decision.Reason()}, nil
	}

	payload, err := uc.payloadRepo.GetPayload(ctx, contentType, lessonSID)
	if err != nil {
		uc.logger.Errorw("failed to load content payload",
			"error", err, "lesson_sid", lessonSID, "content_type", contentType)
		return nil, fmt.Errorf("failed to load content payload: %w", err)
	}
	if payload == nil {
		return nil, errors.NewNotFoundError("content not found")
	}

	return &ContentResult{
		Allowed: true,
		Payload: content.Shape(payload, decision.Mode()),
		Mode:    decision.Mode(),
	}, nil
}
