package usecases

import (
	"context"
	"fmt"

	"github.com/darasa-app/darasa/internal/domain/lesson"
	"github.com/darasa-app/darasa/internal/shared/errors"
	"github.com/darasa-app/darasa/internal/shared/logger"
)

// PublishLessonUseCase makes a lesson live. Once published, the access gate
// starts evaluating entitlements for it instead of denying with NOT_PUBLISHED.
type PublishLessonUseCase struct {
	lessonRepo lesson.Repository
	logger     logger.Interface
}

// NewPublishLessonUseCase creates a new publish lesson use case.
func NewPublishLessonUseCase(lessonRepo lesson.Repository, logger logger.Interface) *PublishLessonUseCase {
	return &PublishLessonUseCase{
		lessonRepo: lessonRepo,
		logger:     logger,
	}
}

// Execute publishes the lesson identified by sid.
func (uc *PublishLessonUseCase) Execute(ctx context.Context, sid string) error {
	lessonEntity, err := uc.loadLesson(ctx, sid)
	if err != nil {
		return err
	}

	lessonEntity.Publish()

	if err := uc.lessonRepo.Save(ctx, lessonEntity); err != nil {
		uc.logger.Errorw("failed to publish lesson", "error", err, "lesson_sid", sid)
		return fmt.Errorf("failed to publish lesson: %w", err)
	}

	uc.logger.Infow("lesson published", "lesson_sid", sid)
	return nil
}

func (uc *PublishLessonUseCase) loadLesson(ctx context.Context, sid string) (*lesson.Lesson, error) {
	if sid == "" {
		return nil, errors.NewValidationError("lesson ID is required")
	}

	lessonEntity, err := uc.lessonRepo.GetBySID(ctx, sid)
	if err != nil {
		uc.logger.Errorw("failed to load lesson", "error", err, "lesson_sid", sid)
		return nil, fmt.Errorf("failed to load lesson: %w", err)
	}
	if lessonEntity == nil {
		return nil, errors.NewNotFoundError("lesson not found")
	}
	return lessonEntity, nil
}
