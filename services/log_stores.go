package services

import (
	"context"
	"errors"
	"time"

	"github.com/lifeguidancewithjesper/pound-drop-sub001/models"

	"gorm.io/gorm"
)

// DayStart truncates t to local midnight. All per-day rows key on this.
func DayStart(t time.Time) time.Time {
	loc := time.Local
	tt := t.In(loc)
	return time.Date(tt.Year(), tt.Month(), tt.Day(), 0, 0, 0, 0, loc)
}

func rangeScope(q *gorm.DB, from, to *time.Time) *gorm.DB {
	if from != nil {
		q = q.Where("date >= ?", DayStart(*from))
	}
	if to != nil {
		q = q.Where("date < ?", DayStart(*to).Add(24*time.Hour))
	}
	return q
}

// WeightStore owns weight_entries.
type WeightStore struct {
	db *gorm.DB
}

func NewWeightStore(db *gorm.DB) *WeightStore { return &WeightStore{db: db} }

func (s *WeightStore) Create(ctx context.Context, e *models.WeightEntry) error {
	e.Date = DayStart(e.Date)
	return s.db.WithContext(ctx).Create(e).Error
}

func (s *WeightStore) ListRange(ctx context.Context, userID uint, from, to *time.Time) ([]models.WeightEntry, error) {
	var rows []models.WeightEntry
	q := s.db.WithContext(ctx).Where("user_id = ?", userID)
	err := rangeScope(q, from, to).Order("date ASC").Find(&rows).Error
	return rows, err
}

// StepStore owns step_entries. One row per (user, date), overwritten on
// repeat posts.
type StepStore struct {
	db *gorm.DB
}

func NewStepStore(db *gorm.DB) *StepStore { return &StepStore{db: db} }

func (s *StepStore) Upsert(ctx context.Context, userID uint, date time.Time, steps int) (*models.StepEntry, error) {
	day := DayStart(date)
	row := models.StepEntry{UserID: userID, Date: day, Steps: steps}
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, day).
		Assign(models.StepEntry{Steps: steps}).
		FirstOrCreate(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (s *StepStore) GetByDate(ctx context.Context, userID uint, date time.Time) (*models.StepEntry, error) {
	var row models.StepEntry
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, DayStart(date)).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (s *StepStore) ListRange(ctx context.Context, userID uint, from, to *time.Time) ([]models.StepEntry, error) {
	var rows []models.StepEntry
	q := s.db.WithContext(ctx).Where("user_id = ?", userID)
	err := rangeScope(q, from, to).Order("date ASC").Find(&rows).Error
	return rows, err
}

// WaterStore owns water_entries.
type WaterStore struct {
	db *gorm.DB
}

func NewWaterStore(db *gorm.DB) *WaterStore { return &WaterStore{db: db} }

func (s *WaterStore) Create(ctx context.Context, e *models.WaterEntry) error {
	e.Date = DayStart(e.Date)
	return s.db.WithContext(ctx).Create(e).Error
}

func (s *WaterStore) ListRange(ctx context.Context, userID uint, from, to *time.Time) ([]models.WaterEntry, error) {
	var rows []models.WaterEntry
	q := s.db.WithContext(ctx).Where("user_id = ?", userID)
	err := rangeScope(q, from, to).Order("date ASC").Find(&rows).Error
	return rows, err
}

// MoodStore owns daily_moods. One row per (user, date), upserted.
type MoodStore struct {
	db *gorm.DB
}

func NewMoodStore(db *gorm.DB) *MoodStore { return &MoodStore{db: db} }

func (s *MoodStore) Upsert(ctx context.Context, userID uint, date time.Time, mood, note string) (*models.DailyMood, error) {
	day := DayStart(date)
	row := models.DailyMood{UserID: userID, Date: day, Mood: mood, Note: note}
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, day).
		Assign(models.DailyMood{Mood: mood, Note: note}).
		FirstOrCreate(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (s *MoodStore) ListRange(ctx context.Context, userID uint, from, to *time.Time) ([]models.DailyMood, error) {
	var rows []models.DailyMood
	q := s.db.WithContext(ctx).Where("user_id = ?", userID)
	err := rangeScope(q, from, to).Order("date ASC").Find(&rows).Error
	return rows, err
}
