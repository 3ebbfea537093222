package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/darasa-app/darasa/internal/shared/constants"
)

// LessonModel represents the database persistence model for lessons
// This is the anti-corruption layer between domain and database
type LessonModel struct {
	ID            uint   `gorm:"primarykey"`
	SID           string `gorm:"uniqueIndex;not null;size:50;comment:Stripe-style ID: les_xxx"`
	Title         string `gorm:"not null;size:200"`
	Description   string `gorm:"size:2000"`
	PriceCoins    uint   `gorm:"not null;default:0"`
	IsPublished   bool   `gorm:"not null;default:false;index:idx_published"`
	IsFreePreview bool   `gorm:"not null;default:false"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM
func (LessonModel) TableName() string {
	return constants.TableLessons
}
