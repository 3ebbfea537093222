package dto

import (
	"time"

	"github.com/darasa-app/darasa/internal/domain/lesson"
)

// LessonDTO is the API representation of a lesson.
type LessonDTO struct {
	SID           string    `json:"sid"`
	Title         string    `json:"title"`
	Description   string    `json:"description,omitempty"`
	PriceCoins    uint      `json:"price_coins"`
	IsPublished   bool      `json:"is_published"`
	IsFreePreview bool      `json:"is_free_preview"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ToLessonDTO maps a lesson aggregate to its DTO.
func ToLessonDTO(l *lesson.Lesson) *LessonDTO {
	if l == nil {
		return nil
	}
	return &LessonDTO{
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

// ToLessonDTOs maps a slice of lesson aggregates.
func ToLessonDTOs(lessons []*lesson.Lesson) []*LessonDTO {
	out := make([]*LessonDTO, 0, len(lessons))
	for _, l := range lessons {
		out = append(out, ToLessonDTO(l))
	}
	return out
}
