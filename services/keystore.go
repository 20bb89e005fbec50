package services

import (
	"context"
	"errors"

	"github.com/lifeguidancewithjesper/pound-drop-sub001/models"

	"gorm.io/gorm"
)

// GormReminderKeyStore keeps the per-kind reminder identifiers in the
// reminder_keys table, one row per (user, key).
type GormReminderKeyStore struct {
	db *gorm.DB
}

func NewGormReminderKeyStore(db *gorm.DB) *GormReminderKeyStore {
	return &GormReminderKeyStore{db: db}
}

func (s *GormReminderKeyStore) Get(ctx context.Context, userID uint, key string) (string, bool, error) {
	var row models.ReminderKey
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND key = ?", userID, key).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return row.Value, true, nil
}

func (s *GormReminderKeyStore) Put(ctx context.Context, userID uint, key, value string) error {
	row := models.ReminderKey{UserID: userID, Key: key, Value: value}
	return s.db.WithContext(ctx).
		Where("user_id = ? AND key = ?", userID, key).
		Assign(models.ReminderKey{Value: value}).
		FirstOrCreate(&row).Error
}

func (s *GormReminderKeyStore) Delete(ctx context.Context, userID uint, key string) error {
	return s.db.WithContext(ctx).
		Where("user_id = ? AND key = ?", userID, key).
		Delete(&models.ReminderKey{}).Error
}
