package usecases

import (
	"context"
	"fmt"

	"github.com/darasa-app/darasa/internal/application/lesson/dto"
	"github.com/darasa-app/darasa/internal/domain/lesson"
	"github.com/darasa-app/darasa/internal/shared/logger"
)

// ListPublishedLessonsUseCase returns the public lesson catalog.
type ListPublishedLessonsUseCase struct {
	lessonRepo lesson.Repository
	logger     logger.Interface
}

// NewListPublishedLessonsUseCase creates a new list published lessons use case.
func NewListPublishedLessonsUseCase(lessonRepo lesson.Repository, logger logger.Interface) *ListPublishedLessonsUseCase {
	return &ListPublishedLessonsUseCase{
		lessonRepo: lessonRepo,
		logger:     logger,
	}
}

// Execute lists all published lessons.
func (uc *ListPublishedLessonsUseCase) Execute(ctx context.Context) ([]*dto.LessonDTO, error) {
	lessons, err := uc.lessonRepo.ListPublished(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list published lessons", "error", err)
		return nil, fmt.Errorf("failed to list published lessons: %w", err)
	}

	return dto.ToLessonDTOs(lessons), nil
}
