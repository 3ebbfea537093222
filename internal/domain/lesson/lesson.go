// Package lesson provides the lesson aggregate and its access metadata.
package lesson

import (
	"fmt"
	"strings"
	"time"

	"github.com/darasa-app/darasa/internal/shared/id"
)

// Lesson represents the lesson aggregate root. Content bodies (slots, quiz
// questions, flashcards, exam tasks) live in the content payload store; the
// aggregate carries catalog and gating state.
type Lesson struct {
	dbID          uint
	sid           string
	title         string
	description   string
	priceCoins    uint
	isPublished   bool
	isFreePreview bool
	createdAt     time.Time
	updatedAt     time.Time
}

// NewLesson creates a new unpublished lesson.
func NewLesson(title, description string, priceCoins uint, isFreePreview bool) (*Lesson, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("lesson title is required")
	}

	now := time.Now()
	return &Lesson{
		sid:           id.NewLessonSID(),
		title:         title,
		description:   description,
		priceCoins:    priceCoins,
		isPublished:   false,
		isFreePreview: isFreePreview,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

// ReconstructLesson reconstructs a lesson from persistence.
func ReconstructLesson(
	dbID uint,
	sid string,
	title string,
	description string,
	priceCoins uint,
	isPublished bool,
	isFreePreview bool,
	createdAt, updatedAt time.Time,
) (*Lesson, error) {
	if dbID == 0 {
		return nil, fmt.Errorf("lesson ID cannot be zero")
	}
	if sid == "" {
		return nil, fmt.Errorf("lesson SID is required")
	}
	if strings.TrimSpace(title) == "" {
		return nil, fmt.Errorf("lesson title is required")
	}

	return &Lesson{
		dbID:          dbID,
		sid:           sid,
		title:         title,
		description:   description,
		priceCoins:    priceCoins,
		isPublished:   isPublished,
		isFreePreview: isFreePreview,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}, nil
}

// ID returns the database ID.
func (l *Lesson) ID() uint {
	return l.dbID
}

// SID returns the public lesson identifier (les_xxx).
func (l *Lesson) SID() string {
	return l.sid
}

// Title returns the lesson title.
func (l *Lesson) Title() string {
	return l.title
}

// Description returns the lesson description.
func (l *Lesson) Description() string {
	return l.description
}

// PriceCoins returns the individual purchase price in coins.
func (l *Lesson) PriceCoins() uint {
	return l.priceCoins
}

// IsPublished reports whether the lesson is live.
func (l *Lesson) IsPublished() bool {
	return l.isPublished
}

// IsFreePreview reports whether unentitled users get preview access.
func (l *Lesson) IsFreePreview() bool {
	return l.isFreePreview
}

// CreatedAt returns when the lesson was created.
func (l *Lesson) CreatedAt() time.Time {
	return l.createdAt
}

// UpdatedAt returns when the lesson was last updated.
func (l *Lesson) UpdatedAt() time.Time {
	return l.updatedAt
}

// SetID sets the database ID (only for persistence layer use).
func (l *Lesson) SetID(dbID uint) error {
	if l.dbID != 0 {
		return fmt.Errorf("lesson ID is already set")
	}
	if dbID == 0 {
		return fmt.Errorf("lesson ID cannot be zero")
	}
	l.dbID = dbID
	return nil
}

// Publish makes the lesson live.
func (l *Lesson) Publish() {
	if l.isPublished {
		return
	}
	l.isPublished = true
	l.updatedAt = time.Now()
}

// Unpublish takes the lesson offline. Entitlements are untouched; the access
// gate denies the lesson with NOT_PUBLISHED until it is published again.
func (l *Lesson) Unpublish() {
	if !l.isPublished {
		return
	}
	l.isPublished = false
	l.updatedAt = time.Now()
}

// SetFreePreview toggles the free preview flag.
func (l *Lesson) SetFreePreview(enabled bool) {
	if l.isFreePreview == enabled {
		return
	}
	l.isFreePreview = enabled
	l.updatedAt = time.Now()
}

// AccessMeta projects the gating flags of this lesson.
func (l *Lesson) AccessMeta() AccessMeta {
	return NewAccessMeta(l.sid, l.isPublished, l.isFreePreview)
}
