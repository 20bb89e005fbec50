package models

import (
	"time"

	"gorm.io/gorm"
)

// WeightEntry is one weigh-in. Multiple entries per day are allowed; the
// client charts whatever is there.
type WeightEntry struct {
	gorm.Model
	UserID uint      `gorm:"index;not null" json:"user_id"`
	Date   time.Time `gorm:"index;not null" json:"date"` // local midnight
	Weight float64   `json:"weight"`
	Note   string    `json:"note,omitempty"`
}

// StepEntry holds the step count for one day. One row per (user, date);
// posting again for the same day overwrites the count.
type StepEntry struct {
	gorm.Model
	UserID uint      `gorm:"uniqueIndex:uidx_steps_user_date;not null" json:"user_id"`
	Date   time.Time `gorm:"uniqueIndex:uidx_steps_user_date;not null" json:"date"`
	Steps  int       `json:"steps"`
}

// WaterEntry is one logged glass count for a day.
type WaterEntry struct {
	gorm.Model
	UserID  uint      `gorm:"index;not null" json:"user_id"`
	Date    time.Time `gorm:"index;not null" json:"date"`
	Glasses int       `json:"glasses"`
}

// DailyMood is the mood check-in for one day. One row per (user, date),
// upserted.
type DailyMood struct {
	gorm.Model
	UserID uint      `gorm:"uniqueIndex:uidx_mood_user_date;not null" json:"user_id"`
	Date   time.Time `gorm:"uniqueIndex:uidx_mood_user_date;not null" json:"date"`
	Mood   string    `gorm:"size:24;not null" json:"mood"` // "great" | "good" | "okay" | "low" | "rough"
	Note   string    `json:"note,omitempty"`
}
