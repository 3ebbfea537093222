package usecases

import (
	"context"
	"fmt"

	"github.com/darasa-app/darasa/internal/domain/lesson"
	"github.com/darasa-app/darasa/internal/shared/errors"
	"github.com/darasa-app/darasa/internal/shared/logger"
)

// UnpublishLessonUseCase takes a lesson offline. Entitlements are untouched;
// the access gate denies the lesson with NOT_PUBLISHED until it is published
// again.
type UnpublishLessonUseCase struct {
	lessonRepo lesson.Repository
	logger     logger.Interface
}

// NewUnpublishLessonUseCase creates a new unpublish lesson use case.
func NewUnpublishLessonUseCase(lessonRepo lesson.Repository, logger logger.Interface) *UnpublishLessonUseCase {
	return &UnpublishLessonUseCase{
		lessonRepo: lessonRepo,
		logger:     logger,
	}
}

// Execute unpublishes the lesson identified by sid.
func (uc *UnpublishLessonUseCase) Execute(ctx context.Context, sid string) error {
	if sid == "" {
		return errors.NewValidationError("lesson ID is required")
	}

	lessonEntity, err := uc.lessonRepo.GetBySID(ctx, sid)
	if err != nil {
		uc.logger.Errorw("failed to load lesson", "error", err, "lesson_sid", sid)
		return fmt.Errorf("failed to load lesson: %w", err)
	}
	if lessonEntity == nil {
		return errors.NewNotFoundError("lesson not found")
	}

	lessonEntity.Unpublish()

	if err := uc.lessonRepo.Save(ctx, lessonEntity); err != nil {
		uc.logger.Errorw("failed to unpublish lesson", "error", err, "lesson_sid", sid)
		return fmt.Errorf("failed to unpublish lesson: %w", err)
	}

	uc.logger.Infow("lesson unpublished", "lesson_sid", sid)
	return nil
}
