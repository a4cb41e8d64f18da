package database

import (
	"time"

	"github.com/KasumiMercury/primind-visit-reminder/internal/domain"
)

// recordModel mirrors the CRM contact table. Only the display fields are read here.
type recordModel struct {
	ID          uint   `gorm:"primaryKey"`
	CallerID    *uint  `gorm:"index"`
	PhoneNumber string `gorm:"size:20;not null"`
	Name        string `gorm:"size:100"`
	Response    string `gorm:"type:text"`
	Notes       string `gorm:"type:text"`
	Visit       string `gorm:"size:16;default:pending"`
	UpdatedAt   time.Time
}

func (recordModel) TableName() string { return "records" }

type reminderModel struct {
	ID                uint        `gorm:"primaryKey"`
	RecordID          uint        `gorm:"not null;index"`
	Record            recordModel `gorm:"foreignKey:RecordID;constraint:OnDelete:CASCADE"`
	CallerID          uint        `gorm:"not null;index:idx_reminders_caller_active,priority:1"`
	ScheduledDatetime time.Time   `gorm:"not null;index"`
	IsActive          bool        `gorm:"not null;default:true;index:idx_reminders_caller_active,priority:2"`
	CreatedAt         time.Time   `gorm:"autoCreateTime"`
}

func (reminderModel) TableName() string { return "reminders" }

func (m *reminderModel) toDomain() domain.Reminder {
	return domain.Reminder{
		ID:                m.ID,
		CallerID:          m.CallerID,
		RecordID:          m.RecordID,
		ScheduledDatetime: m.ScheduledDatetime.UTC(),
		Active:            m.IsActive,
		CreatedAt:         m.CreatedAt.UTC(),
		Record:            m.Record.toSnapshot(),
	}
}

func (m *recordModel) toSnapshot() domain.RecordSnapshot {
	return domain.RecordSnapshot{
		Name:        m.Name,
		PhoneNumber: m.PhoneNumber,
		Response:    m.Response,
		Notes:       m.Notes,
		Visit:       m.Visit,
		UpdatedAt:   m.UpdatedAt.UTC(),
	}
}
