package services

import (
	"context"
	"time"
)

// ReminderKind names one of the three recurring reminders the app offers.
type ReminderKind string

const (
	ReminderDailyMeal      ReminderKind = "daily_meal"
	ReminderMonthlyWeight  ReminderKind = "monthly_weight"
	ReminderWeeklyProgress ReminderKind = "weekly_progress"
)

// AllReminderKinds in display order.
var AllReminderKinds = []ReminderKind{ReminderDailyMeal, ReminderMonthlyWeight, ReminderWeeklyProgress}

// StorageKey is the fixed key the kind's active notification identifier is
// persisted under.
func (k ReminderKind) StorageKey() string {
	return "reminder:" + string(k)
}

func (k ReminderKind) Valid() bool {
	switch k {
	case ReminderDailyMeal, ReminderMonthlyWeight, ReminderWeeklyProgress:
		return true
	}
	return false
}

// Content returns the fixed notification payload for the kind.
func (k ReminderKind) Content() NotificationContent {
	switch k {
	case ReminderMonthlyWeight:
		return NotificationContent{
			Title: "Monthly weigh-in",
			Body:  "A new month started. Step on the scale and log your weight.",
			Sound: "default",
		}
	case ReminderWeeklyProgress:
		return NotificationContent{
			Title: "Weekly review",
			Body:  "Take a minute to look back at your week of progress.",
			Sound: "default",
		}
	default:
		return NotificationContent{
			Title: "Log your meals",
			Body:  "Don't forget to log what you ate today.",
			Sound: "default",
		}
	}
}

// Trigger returns the fixed recurrence template for the kind: meals daily at
// 18:00, weight on the 1st at 09:00, progress review Sundays at 10:00.
func (k ReminderKind) Trigger() Trigger {
	switch k {
	case ReminderMonthlyWeight:
		return Trigger{Hour: 9, Minute: 0, DayOfMonth: 1, Repeats: true}
	case ReminderWeeklyProgress:
		wd := time.Sunday
		return Trigger{Hour: 10, Minute: 0, Weekday: &wd, Repeats: true}
	default:
		return Trigger{Hour: 18, Minute: 0, Repeats: true}
	}
}

// PermissionStatus mirrors the platform notification permission.
type PermissionStatus string

const (
	PermissionStatusUndetermined PermissionStatus = "undetermined"
	PermissionStatusGranted      PermissionStatus = "granted"
	PermissionStatusDenied       PermissionStatus = "denied"
)

// NotificationContent is the visible part of a scheduled notification.
type NotificationContent struct {
	Title string
	Body  string
	Sound string
}

// Trigger describes when a notification fires. Exactly one shape applies:
// daily (neither DayOfMonth nor Weekday set), monthly (DayOfMonth > 0) or
// weekly (Weekday set).
type Trigger struct {
	Hour       int
	Minute     int
	DayOfMonth int           // 1-31, 0 when unused
	Weekday    *time.Weekday // nil when unused
	Repeats    bool
}

// NotificationService is the platform notification collaborator. Identifiers
// it returns are opaque; callers hold them only to cancel later.
type NotificationService interface {
	PermissionStatus(ctx context.Context, userID uint) (PermissionStatus, error)
	RequestPermission(ctx context.Context, userID uint) (PermissionStatus, error)
	Schedule(ctx context.Context, userID uint, content NotificationContent, trig Trigger) (string, error)
	Cancel(ctx context.Context, id string) error
	CancelAll(ctx context.Context, userID uint) error
}

// ReminderKeyStore persists the per-kind identifier keys.
type ReminderKeyStore interface {
	Get(ctx context.Context, userID uint, key string) (string, bool, error)
	Put(ctx context.Context, userID uint, key, value string) error
	Delete(ctx context.Context, userID uint, key string) error
}
