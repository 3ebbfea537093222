package models

import (
	"time"

	"github.com/darasa-app/darasa/internal/shared/constants"
)

// ProgressModel stores per-user completion of a lesson slot.
type ProgressModel struct {
	ID          uint   `gorm:"primarykey"`
	UserSID     string `gorm:"not null;size:50;index:idx_progress_user,priority:1"`
	LessonSID   string `gorm:"not null;size:50;index:idx_progress_user,priority:2"`
	SlotSID     string `gorm:"not null;size:50"`
	CompletedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (ProgressModel) TableName() string {
	return constants.TableProgress
}
