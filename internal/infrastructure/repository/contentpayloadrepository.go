package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"gorm.io/gorm"

	"github.com/darasa-app/darasa/internal/domain/content"
	"github.com/darasa-app/darasa/internal/infrastructure/persistence/models"
	"github.com/darasa-app/darasa/internal/shared/logger"
	"github.com/darasa-app/darasa/internal/shared/services/markdown"
)

// ContentPayloadRepositoryImpl implements the content.PayloadRepository
// interface. Each content type is assembled from its own table into the
// generic payload shape.
type ContentPayloadRepositoryImpl struct {
	db       *gorm.DB
	markdown markdown.MarkdownService
	logger   logger.Interface
}

// NewContentPayloadRepository creates a new content payload repository instance
func NewContentPayloadRepository(db *gorm.DB, md markdown.MarkdownService, logger logger.Interface) content.PayloadRepository {
	return &ContentPayloadRepositoryImpl{
		db:       db,
		markdown: md,
		logger:   logger,
	}
}

// GetPayload assembles the payload of one content type for a lesson.
// Lesson existence is the caller's concern; an existing lesson with no rows
// yields a payload with empty items.
func (r *ContentPayloadRepositoryImpl) GetPayload(ctx context.Context, contentType content.Type, lessonSID string) (*content.Payload, error) {
	switch contentType {
	case content.TypeLesson:
		return r.lessonPayload(ctx, lessonSID)
	case content.TypeQuiz:
		return r.quizPayload(ctx, lessonSID)
	case content.TypeFlashcard:
		return r.flashcardPayload(ctx, lessonSID)
	case content.TypeExam:
		return r.examPayload(ctx, lessonSID)
	case content.TypeProgress:
		return r.progressPayload(ctx, lessonSID)
	default:
		return nil, fmt.Errorf("unknown content type: %s", contentType)
	}
}

func (r *ContentPayloadRepositoryImpl) lessonPayload(ctx context.Context, lessonSID string) (*content.Payload, error) {
	var slots []models.LessonSlotModel
	err := r.db.WithContext(ctx).
		Where("lesson_sid = ?", lessonSID).
		Order("position ASC").
		Find(&slots).Error
	if err != nil {
		r.logger.Errorw("failed to load lesson slots", "lesson_sid", lessonSID, "error", err)
		return nil, fmt.Errorf("failed to load lesson slots: %w", err)
	}

	items := make([]content.Item, 0, len(slots))
	for _, slot := range slots {
		body, err := r.markdown.ToHTMLSanitized(slot.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to render slot %s: %w", slot.SID, err)
		}
		items = append(items, content.Item{
			SID:      slot.SID,
			Kind:     slot.Kind,
			Title:    slot.Title,
			Content:  body,
			Position: slot.Position,
		})
	}

	return &content.Payload{
		Items: items,
		Metadata: map[string]any{
			"type":      content.TypeLesson.String(),
			"lessonSid": lessonSID,
			"itemCount": len(items),
		},
	}, nil
}

func (r *ContentPayloadRepositoryImpl) quizPayload(ctx context.Context, lessonSID string) (*content.Payload, error) {
	var questions []models.QuizQuestionModel
	err := r.db.WithContext(ctx).
		Where("lesson_sid = ?", lessonSID).
		Order("position ASC").
		Find(&questions).Error
	if err != nil {
		r.logger.Errorw("failed to load quiz questions", "lesson_sid", lessonSID, "error", err)
		return nil, fmt.Errorf("failed to load quiz questions: %w", err)
	}

	items := make([]content.Item, 0, len(questions))
	assessmentItems := make([]content.AssessmentItem, 0, len(questions))
	for _, q := range questions {
		items = append(items, content.Item{
			SID:      q.SID,
			Kind:     q.Kind,
			Prompt:   q.Prompt,
			Position: q.Position,
		})
		choices, err := decodeChoices(q.Choices)
		if err != nil {
			return nil, fmt.Errorf("failed to decode choices for question %s: %w", q.SID, err)
		}
		assessmentItems = append(assessmentItems, content.AssessmentItem{
			SID:     q.SID,
			Kind:    q.Kind,
			Prompt:  q.Prompt,
			Choices: choices,
		})
	}

	return &content.Payload{
		Items: items,
		Assessment: &content.Assessment{
			SID:   "quiz_" + lessonSID,
			Items: assessmentItems,
		},
		Metadata: map[string]any{
			"type":      content.TypeQuiz.String(),
			"lessonSid": lessonSID,
			"itemCount": len(items),
		},
	}, nil
}

func (r *ContentPayloadRepositoryImpl) flashcardPayload(ctx context.Context, lessonSID string) (*content.Payload, error) {
	var cards []models.FlashcardModel
	err := r.db.WithContext(ctx).
		Where("lesson_sid = ?", lessonSID).
		Order("position ASC").
		Find(&cards).Error
	if err != nil {
		r.logger.Errorw("failed to load flashcards", "lesson_sid", lessonSID, "error", err)
		return nil, fmt.Errorf("failed to load flashcards: %w", err)
	}

	items := make([]content.Item, 0, len(cards))
	for _, card := range cards {
		items = append(items, content.Item{
			SID:      card.SID,
			Kind:     "flashcard",
			Prompt:   card.Front,
			Content:  card.Back,
			Position: card.Position,
		})
	}

	return &content.Payload{
		Items: items,
		Metadata: map[string]any{
			"type":      content.TypeFlashcard.String(),
			"lessonSid": lessonSID,
			"itemCount": len(items),
		},
	}, nil
}

func (r *ContentPayloadRepositoryImpl) examPayload(ctx context.Context, lessonSID string) (*content.Payload, error) {
	var tasks []models.ExamTaskModel
	err := r.db.WithContext(ctx).
		Where("lesson_sid = ?", lessonSID).
		Order("position ASC").
		Find(&tasks).Error
	if err != nil {
		r.logger.Errorw("failed to load exam tasks", "lesson_sid", lessonSID, "error", err)
		return nil, fmt.Errorf("failed to load exam tasks: %w", err)
	}

	items := make([]content.Item, 0, len(tasks))
	assessmentItems := make([]content.AssessmentItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, content.Item{
			SID:      task.SID,
			Kind:     task.Kind,
			Title:    task.Title,
			Prompt:   task.Prompt,
			Position: task.Position,
		})
		choices, err := decodeChoices(task.Choices)
		if err != nil {
			return nil, fmt.Errorf("failed to decode choices for task %s: %w", task.SID, err)
		}
		assessmentItems = append(assessmentItems, content.AssessmentItem{
			SID:     task.SID,
			Kind:    task.Kind,
			Prompt:  task.Prompt,
			Choices: choices,
		})
	}

	return &content.Payload{
		Items: items,
		Assessment: &content.Assessment{
			SID:   "exam_" + lessonSID,
			Items: assessmentItems,
		},
		Metadata: map[string]any{
			"type":      content.TypeExam.String(),
			"lessonSid": lessonSID,
			"itemCount": len(items),
		},
	}, nil
}

// progressPayload builds the slot checklist skeleton for a lesson. Per-user
// completion state is merged in by the client from its own progress records;
// the gate only serves the lesson-shaped checklist.
func (r *ContentPayloadRepositoryImpl) progressPayload(ctx context.Context, lessonSID string) (*content.Payload, error) {
	var slots []models.LessonSlotModel
	err := r.db.WithContext(ctx).
		Select("sid", "kind", "title", "position").
		Where("lesson_sid = ?", lessonSID).
		Order("position ASC").
		Find(&slots).Error
	if err != nil {
		r.logger.Errorw("failed to load progress checklist", "lesson_sid", lessonSID, "error", err)
		return nil, fmt.Errorf("failed to load progress checklist: %w", err)
	}

	items := make([]content.Item, 0, len(slots))
	for _, slot := range slots {
		items = append(items, content.Item{
			SID:      slot.SID,
			Kind:     slot.Kind,
			Title:    slot.Title,
			Position: slot.Position,
		})
	}

	return &content.Payload{
		Items: items,
		Metadata: map[string]any{
			"type":      content.TypeProgress.String(),
			"lessonSid": lessonSID,
			"itemCount": len(items),
		},
	}, nil
}

func decodeChoices(raw []byte) ([]string, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var choices []string
	if err := json.Unmarshal(raw, &choices); err != nil {
		return nil, err
	}
	return choices, nil
}
