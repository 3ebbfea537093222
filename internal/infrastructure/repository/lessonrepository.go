package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/darasa-app/darasa/internal/domain/lesson"
	"github.com/darasa-app/darasa/internal/infrastructure/persistence/mappers"
	"github.com/darasa-app/darasa/internal/infrastructure/persistence/models"
	"github.com/darasa-app/darasa/internal/shared/logger"
)

// LessonRepositoryImpl implements the lesson.Repository and
// lesson.AccessMetaRepository interfaces
type LessonRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.LessonMapper
	logger logger.Interface
}

// NewLessonRepository creates a new lesson repository instance
func NewLessonRepository(db *gorm.DB, logger logger.Interface) *LessonRepositoryImpl {
	return &LessonRepositoryImpl{
		db:     db,
		mapper: mappers.NewLessonMapper(),
		logger: logger,
	}
}

// Create persists a new lesson
func (r *LessonRepositoryImpl) Create(ctx context.Context, l *lesson.Lesson) error {
	model := r.mapper.ToModel(l)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create lesson", "sid", l.SID(), "error", err)
		return fmt.Errorf("failed to create lesson: %w", err)
	}

	if err := l.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set lesson ID: %w", err)
	}

	r.logger.Infow("lesson created", "id", model.ID, "sid", model.SID)
	return nil
}

// GetBySID retrieves a lesson by its public identifier.
// Returns (nil, nil) when the lesson does not exist.
func (r *LessonRepositoryImpl) GetBySID(ctx context.Context, sid string) (*lesson.Lesson, error) {
	var model models.LessonModel
	err := r.db.WithContext(ctx).Where("sid = ?", sid).First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get lesson", "sid", sid, "error", err)
		return nil, fmt.Errorf("failed to get lesson: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

// Save updates an existing lesson
func (r *LessonRepositoryImpl) Save(ctx context.Context, l *lesson.Lesson) error {
	model := r.mapper.ToModel(l)

	result := r.db.WithContext(ctx).
		Model(&models.LessonModel{}).
		Where("sid = ?", l.SID()).
		Updates(map[string]interface{}{
			"title":           model.Title,
			"description":     model.Description,
			"price_coins":     model.PriceCoins,
			"is_published":    model.IsPublished,
			"is_free_preview": model.IsFreePreview,
			"updated_at":      model.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to save lesson", "sid", l.SID(), "error", result.Error)
		return fmt.Errorf("failed to save lesson: %w", result.Error)
	}

	return nil
}

// ListPublished returns all published lessons ordered by creation time
func (r *LessonRepositoryImpl) ListPublished(ctx context.Context) ([]*lesson.Lesson, error) {
	var modelList []models.LessonModel
	err := r.db.WithContext(ctx).
		Where("is_published = ?", true).
		Order("created_at DESC").
		Find(&modelList).Error
	if err != nil {
		r.logger.Errorw("failed to list published lessons", "error", err)
		return nil, fmt.Errorf("failed to list published lessons: %w", err)
	}

	lessons := make([]*lesson.Lesson, 0, len(modelList))
	for i := range modelList {
		l, err := r.mapper.ToDomain(&modelList[i])
		if err != nil {
			return nil, fmt.Errorf("failed to map lesson %s: %w", modelList[i].SID, err)
		}
		lessons = append(lessons, l)
	}

	return lessons, nil
}

// GetAccessMeta loads only the gating flags for a lesson.
// Returns (nil, nil) when the lesson does not exist.
func (r *LessonRepositoryImpl) GetAccessMeta(ctx context.Context, sid string) (*lesson.AccessMeta, error) {
	var model models.LessonModel
	err := r.db.WithContext(ctx).
		Select("sid", "is_published", "is_free_preview").
		Where("sid = ?", sid).
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get lesson access meta", "sid", sid, "error", err)
		return nil, fmt.Errorf("failed to get lesson access meta: %w", err)
	}

	meta := lesson.NewAccessMeta(model.SID, model.IsPublished, model.IsFreePreview)
	return &meta, nil
}
