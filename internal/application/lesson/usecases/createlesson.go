// Package usecases contains the lesson catalog application use cases.
package usecases

import (
	"context"
	"fmt"

	"github.com/darasa-app/darasa/internal/application/lesson/dto"
	"github.com/darasa-app/darasa/internal/domain/lesson"
	"github.com/darasa-app/darasa/internal/shared/errors"
	"github.com/darasa-app/darasa/internal/shared/logger"
	"github.com/darasa-app/darasa/internal/shared/utils"
)

// CreateLessonCommand carries the input for creating a draft lesson.
type CreateLessonCommand struct {
	Title         string `json:"title" validate:"required,min=1,max=200"`
	Description   string `json:"description" validate:"max=2000"`
	PriceCoins    uint   `json:"price_coins"`
	IsFreePreview bool   `json:"is_free_preview"`
}

// CreateLessonUseCase creates a new draft lesson.
type CreateLessonUseCase struct {
	lessonRepo lesson.Repository
	logger     logger.Interface
}

// NewCreateLessonUseCase creates a new create lesson use case.
func NewCreateLessonUseCase(lessonRepo lesson.Repository, logger logger.Interface) *CreateLessonUseCase {
	return &CreateLessonUseCase{
		lessonRepo: lessonRepo,
		logger:     logger,
	}
}

// Execute creates the lesson as an unpublished draft.
func (uc *CreateLessonUseCase) Execute(ctx context.Context, cmd CreateLessonCommand) (*dto.LessonDTO, error) {
	if err := utils.ValidateStruct(cmd); err != nil {
		return nil, err
	}

	lessonEntity, err := lesson.NewLesson(cmd.Title, cmd.Description, cmd.PriceCoins, cmd.IsFreePreview)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.lessonRepo.Create(ctx, lessonEntity); err != nil {
		uc.logger.Errorw("failed to create lesson", "error", err, "title", cmd.Title)
		return nil, fmt.Errorf("failed to create lesson: %w", err)
	}

	uc.logger.Infow("lesson created", "lesson_sid", lessonEntity.SID(), "title", lessonEntity.Title())

	return dto.ToLessonDTO(lessonEntity), nil
}
