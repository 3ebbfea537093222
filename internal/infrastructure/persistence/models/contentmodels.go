package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/darasa-app/darasa/internal/shared/constants"
)

// LessonSlotModel stores an ordered block of lesson body content.
type LessonSlotModel struct {
	ID        uint   `gorm:"primarykey"`
	SID       string `gorm:"uniqueIndex;not null;size:50;comment:Stripe-style ID: slt_xxx"`
	LessonSID string `gorm:"not null;size:50;index:idx_slot_lesson"`
	Kind      string `gorm:"not null;size:30"`
	Title     string `gorm:"size:200"`
	Body      string `gorm:"type:text"`
	Position  int    `gorm:"not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (LessonSlotModel) TableName() string {
	return constants.TableLessonSlots
}

// QuizQuestionModel stores one quiz question for a lesson.
type QuizQuestionModel struct {
	ID        uint   `gorm:"primarykey"`
	SID       string `gorm:"uniqueIndex;not null;size:50;comment:Stripe-style ID: qz_xxx"`
	LessonSID string `gorm:"not null;size:50;index:idx_quiz_lesson"`
	Kind      string `gorm:"not null;size:30"`
	Prompt    string `gorm:"type:text"`
	Choices   datatypes.JSON
	Position  int `gorm:"not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (QuizQuestionModel) TableName() string {
	return constants.TableQuizQuestions
}

// FlashcardModel stores one flashcard for a lesson.
type FlashcardModel struct {
	ID        uint   `gorm:"primarykey"`
	SID       string `gorm:"uniqueIndex;not null;size:50;comment:Stripe-style ID: fc_xxx"`
	LessonSID string `gorm:"not null;size:50;index:idx_card_lesson"`
	Front     string `gorm:"type:text"`
	Back      string `gorm:"type:text"`
	Position  int    `gorm:"not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (FlashcardModel) TableName() string {
	return constants.TableFlashcards
}

// ExamTaskModel stores one exam task for a lesson.
type ExamTaskModel struct {
	ID        uint   `gorm:"primarykey"`
	SID       string `gorm:"uniqueIndex;not null;size:50;comment:Stripe-style ID: ex_xxx"`
	LessonSID string `gorm:"not null;size:50;index:idx_exam_lesson"`
	Kind      string `gorm:"not null;size:30"`
	Title     string `gorm:"size:200"`
	Prompt    string `gorm:"type:text"`
	Choices   datatypes.JSON
	Position  int `gorm:"not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (ExamTaskModel) TableName() string {
	return constants.TableExamTasks
}
