package services

import (
	"context"
	"fmt"
	"time"

	"github.com/lifeguidancewithjesper/pound-drop-sub001/models"

	"golang.org/x/sync/errgroup"
)

// Narrow read views over the five category stores so tests can substitute
// doubles without a database.
type weightReader interface {
	ListRange(ctx context.Context, userID uint, from, to *time.Time) ([]models.WeightEntry, error)
}
type stepReader interface {
	ListRange(ctx context.Context, userID uint, from, to *time.Time) ([]models.StepEntry, error)
}
type waterReader interface {
	ListRange(ctx context.Context, userID uint, from, to *time.Time) ([]models.WaterEntry, error)
}
type mealReader interface {
	ListRange(ctx context.Context, userID uint, from, to *time.Time) ([]models.Meal, error)
}
type moodReader interface {
	ListRange(ctx context.Context, userID uint, from, to *time.Time) ([]models.DailyMood, error)
}

// HistorySnapshot is the merged read-only view over the five categories.
// Empty categories marshal as empty arrays, never null.
type HistorySnapshot struct {
	Weights []models.WeightEntry `json:"weights"`
	Steps   []models.StepEntry   `json:"steps"`
	Water   []models.WaterEntry  `json:"water"`
	Meals   []models.Meal        `json:"meals"`
	Moods   []models.DailyMood   `json:"moods"`
}

// HistoryService fans a history request out to the five stores and merges
// the results. It only reads; each store stays the sole owner of its rows.
type HistoryService struct {
	weights weightReader
	steps   stepReader
	water   waterReader
	meals   mealReader
	moods   moodReader
}

func NewHistoryService(weights weightReader, steps stepReader, water waterReader, meals mealReader, moods moodReader) *HistoryService {
	return &HistoryService{weights: weights, steps: steps, water: water, meals: meals, moods: moods}
}

// GetHistory issues the five reads concurrently and joins them. The date
// range is handed through to each store untouched. If any read fails the
// whole snapshot fails; no partial result is returned.
func (s *HistoryService) GetHistory(ctx context.Context, userID uint, from, to *time.Time) (*HistorySnapshot, error) {
	snap := &HistorySnapshot{}
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		rows, err := s.weights.ListRange(ctx, userID, from, to)
		if err != nil {
			return fmt.Errorf("weight entries: %w", err)
		}
		snap.Weights = rows
		return nil
	})
	g.Go(func() error {
		rows, err := s.steps.ListRange(ctx, userID, from, to)
		if err != nil {
			return fmt.Errorf("step entries: %w", err)
		}
		snap.Steps = rows
		return nil
	})
	g.Go(func() error {
		rows, err := s.water.ListRange(ctx, userID, from, to)
		if err != nil {
			return fmt.Errorf("water entries: %w", err)
		}
		snap.Water = rows
		return nil
	})
	g.Go(func() error {
		rows, err := s.meals.ListRange(ctx, userID, from, to)
		if err != nil {
			return fmt.Errorf("meals: %w", err)
		}
		snap.Meals = rows
		return nil
	})
	g.Go(func() error {
		rows, err := s.moods.ListRange(ctx, userID, from, to)
		if err != nil {
			return fmt.Errorf("moods: %w", err)
		}
		snap.Moods = rows
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if snap.Weights == nil {
		snap.Weights = []models.WeightEntry{}
	}
	if snap.Steps == nil {
		snap.Steps = []models.StepEntry{}
	}
	if snap.Water == nil {
		snap.Water = []models.WaterEntry{}
	}
	if snap.Meals == nil {
		snap.Meals = []models.Meal{}
	}
	if snap.Moods == nil {
		snap.Moods = []models.DailyMood{}
	}
	return snap, nil
}
