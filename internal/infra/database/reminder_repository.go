package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/KasumiMercury/primind-visit-reminder/internal/domain"
)

type reminderRepository struct {
	db *gorm.DB
}

func NewReminderRepository(db *gorm.DB) domain.ReminderRepository {
	return &reminderRepository{
		db: db,
	}
}

func (r *reminderRepository) CreateReminder(ctx context.Context, callerID, recordID uint, scheduled time.Time) (*domain.Reminder, error) {
	model := reminderModel{
		RecordID:          recordID,
		CallerID:          callerID,
		ScheduledDatetime: scheduled.UTC(),
		IsActive:          true,
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var record recordModel
		if err := tx.Where("id = ? AND caller_id = ?", recordID, callerID).First(&record).Error; err != nil {
			return err
		}

		if err := tx.Omit("Record").Create(&model).Error; err != nil {
			return err
		}

		model.Record = record
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Records of other callers are reported as missing.
			return nil, domain.ErrRecordNotFound
		}
		return nil, transient(err)
	}

	reminder := model.toDomain()
	return &reminder, nil
}

func (r *reminderRepository) DeactivateReminder(ctx context.Context, reminderID uint) error {
	db := r.db.WithContext(ctx)

	res := db.Model(&reminderModel{}).
		Where("id = ? AND is_active = ?", reminderID, true).
		Update("is_active", false)
	if res.Error != nil {
		return transient(res.Error)
	}
	if res.RowsAffected > 0 {
		return nil
	}

	var count int64
	if err := db.Model(&reminderModel{}).Where("id = ?", reminderID).Count(&count).Error; err != nil {
		return transient(err)
	}
	if count == 0 {
		return domain.ErrReminderNotFound
	}

	// Already inactive.
	return nil
}

func (r *reminderRepository) GetReminder(ctx context.Context, reminderID uint) (*domain.Reminder, error) {
	var model reminderModel
	if err := r.db.WithContext(ctx).Preload("Record").First(&model, reminderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrReminderNotFound
		}
		return nil, transient(err)
	}

	reminder := model.toDomain()
	return &reminder, nil
}

func (r *reminderRepository) ListActiveReminders(ctx context.Context, callerID uint) ([]domain.Reminder, error) {
	var models []reminderModel
	err := r.db.WithContext(ctx).
		Preload("Record").
		Where("caller_id = ? AND is_active = ?", callerID, true).
		Order("scheduled_datetime asc, id asc").
		Find(&models).Error
	if err != nil {
		return nil, transient(err)
	}

	reminders := make([]domain.Reminder, 0, len(models))
	for i := range models {
		reminders = append(reminders, models[i].toDomain())
	}
	return reminders, nil
}

func (r *reminderRepository) ListCallersWithActiveReminders(ctx context.Context) ([]uint, error) {
	var callerIDs []uint
	err := r.db.WithContext(ctx).
		Model(&reminderModel{}).
		Where("is_active = ?", true).
		Distinct().
		Order("caller_id").
		Pluck("caller_id", &callerIDs).Error
	if err != nil {
		return nil, transient(err)
	}
	return callerIDs, nil
}

func (r *reminderRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func transient(err error) error {
	return fmt.Errorf("%w: %w", domain.ErrTransient, err)
}
