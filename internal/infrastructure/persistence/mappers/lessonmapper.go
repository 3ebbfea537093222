package mappers

import (
	"github.com/darasa-app/darasa/internal/domain/lesson"
	"github.com/darasa-app/darasa/internal/infrastructure/persistence/models"
)

// LessonMapper handles conversion between Lesson domain and model.
type LessonMapper interface {
	// ToModel converts domain entity to GORM model.
	ToModel(l *lesson.Lesson) *models.LessonModel

	// ToDomain converts GORM model to domain entity.
	ToDomain(model *models.LessonModel) (*lesson.Lesson, error)
}

// LessonMapperImpl is the concrete implementation of LessonMapper.
type LessonMapperImpl struct{}

// NewLessonMapper creates a new LessonMapper.
func NewLessonMapper() LessonMapper {
	return &LessonMapperImpl{}
}

// ToModel converts domain entity to GORM model
func (m *LessonMapperImpl) ToModel(l *lesson.Lesson) *models.LessonModel {
	return &models.LessonModel{
		ID:            l.ID(),
		SID:           l.SID(),
		Title:         l.Title(),
		Description:   l.Description(),
		PriceCoins:    l.PriceCoins(),
		IsPublished:   l.IsPublished(),
		IsFreePreview: l.IsFreePreview(),
		CreatedAt:     l.CreatedAt(),
		UpdatedAt:     l.UpdatedAt(),
	}
}

// ToDomain converts GORM model to domain entity
func (m *LessonMapperImpl) ToDomain(model *models.LessonModel) (*lesson.Lesson, error) {
	return lesson.ReconstructLesson(
		model.ID,
		model.SID,
		model.Title,
		model.Description,
		model.PriceCoins,
		model.IsPublished,
		model.IsFreePreview,
		model.CreatedAt,
		model.UpdatedAt,
	)
}
