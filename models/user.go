package models

import (
	"gorm.io/gorm"
)

// Notification permission states mirrored from the device platform.
const (
	PermissionUndetermined = "undetermined"
	PermissionGranted      = "granted"
	PermissionDenied       = "denied"
)

// DemoUserID is the identity every request falls back to when no
// X-User-ID header is present. The app ships with a single demo account.
const DemoUserID uint = 1

type User struct {
	gorm.Model
	Name       string  `json:"name"`
	GoalWeight float64 `json:"goal_weight"` // lbs
	HeightCm   float64 `json:"height_cm"`
	Unit       string  `gorm:"size:8;default:lb" json:"unit"` // "lb" | "kg"

	// Last answer of the platform permission prompt. Resolved once on the
	// first RequestPermission call, cached afterwards.
	NotificationPermission string `gorm:"size:16;default:undetermined" json:"notification_permission"`
}
