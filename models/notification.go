package models

import "time"

// ScheduledNotification is one recurring notification owned by the gateway.
// Its ID is the opaque identifier handed back to callers; nothing outside
// the gateway interprets the trigger columns.
type ScheduledNotification struct {
	ID     string `gorm:"primaryKey;size:36" json:"id"` // uuid
	UserID uint   `gorm:"index" json:"user_id"`

	Title string `json:"title"`
	Body  string `json:"body"`
	Sound string `gorm:"size:32" json:"sound"`

	Hour       int  `json:"hour"`
	Minute     int  `json:"minute"`
	DayOfMonth int  `json:"day_of_month"` // monthly trigger when > 0
	Weekday    int  `json:"weekday"`      // weekly trigger when >= 0 (time.Weekday), -1 otherwise
	Repeats    bool `json:"repeats"`

	NextFireAt time.Time `gorm:"index" json:"next_fire_at"`
	CreatedAt  time.Time `json:"created_at"`
}

// ReminderKey persists which notification identifier a reminder kind is
// currently holding, one row per (user, key).
type ReminderKey struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"uniqueIndex:uidx_reminder_user_key;not null"`
	Key       string    `gorm:"uniqueIndex:uidx_reminder_user_key;size:64;not null"`
	Value     string    `gorm:"size:64"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
