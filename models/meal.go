package models

import (
	"time"

	"gorm.io/gorm"
)

// Meal is one logged meal with its (possibly estimated) macro snapshot.
type Meal struct {
	gorm.Model
	UserID uint      `gorm:"index;not null" json:"user_id"`
	Date   time.Time `gorm:"index;not null" json:"date"`
	Type   string    `gorm:"size:16" json:"type"` // "breakfast" | "lunch" | "dinner" | "snack"
	Name   string    `gorm:"not null" json:"name"`

	Calories int    `json:"calories"`
	Protein  int    `json:"protein"` // grams
	Carbs    int    `json:"carbs"`   // grams
	Fat      int    `json:"fat"`     // grams
	Notes    string `json:"notes,omitempty"`
}
