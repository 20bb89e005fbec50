package services

import (
	"context"
	"time"

	"github.com/lifeguidancewithjesper/pound-drop-sub001/models"

	"gorm.io/gorm"
)

// MealStore owns meals. Meals are the one mutable, deletable category.
type MealStore struct {
	db *gorm.DB
}

func NewMealStore(db *gorm.DB) *MealStore { return &MealStore{db: db} }

func (s *MealStore) Create(ctx context.Context, m *models.Meal) error {
	m.Date = DayStart(m.Date)
	return s.db.WithContext(ctx).Create(m).Error
}

// List returns the user's meals, optionally limited to a single day.
func (s *MealStore) List(ctx context.Context, userID uint, date *time.Time) ([]models.Meal, error) {
	var rows []models.Meal
	q := s.db.WithContext(ctx).Where("user_id = ?", userID)
	if date != nil {
		q = q.Where("date = ?", DayStart(*date))
	}
	err := q.Order("date DESC, id DESC").Find(&rows).Error
	return rows, err
}

func (s *MealStore) Get(ctx context.Context, userID, id uint) (*models.Meal, error) {
	var m models.Meal
	err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&m).Error
	if err != nil {
		return nil, err // gorm.ErrRecordNotFound surfaces as 404
	}
	return &m, nil
}

// MealPatch carries the mutable fields of a meal; nil means "leave as is".
type MealPatch struct {
	Type     *string
	Name     *string
	Date     *time.Time
	Calories *int
	Protein  *int
	Carbs    *int
	Fat      *int
	Notes    *string
}

func (s *MealStore) Update(ctx context.Context, userID, id uint, patch MealPatch) (*models.Meal, error) {
	m, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if patch.Type != nil {
		m.Type = *patch.Type
	}
	if patch.Name != nil {
		m.Name = *patch.Name
	}
	if patch.Date != nil {
		m.Date = DayStart(*patch.Date)
	}
	if patch.Calories != nil {
		m.Calories = *patch.Calories
	}
	if patch.Protein != nil {
		m.Protein = *patch.Protein
	}
	if patch.Carbs != nil {
		m.Carbs = *patch.Carbs
	}
	if patch.Fat != nil {
		m.Fat = *patch.Fat
	}
	if patch.Notes != nil {
		m.Notes = *patch.Notes
	}

	if err := s.db.WithContext(ctx).Save(m).Error; err != nil {
		return nil, err
	}
	return m, nil
}

func (s *MealStore) Delete(ctx context.Context, userID, id uint) error {
	if _, err := s.Get(ctx, userID, id); err != nil {
		return err
	}
	return s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.Meal{}).Error
}

func (s *MealStore) ListRange(ctx context.Context, userID uint, from, to *time.Time) ([]models.Meal, error) {
	var rows []models.Meal
	q := s.db.WithContext(ctx).Where("user_id = ?", userID)
	err := rangeScope(q, from, to).Order("date ASC, id ASC").Find(&rows).Error
	return rows, err
}
