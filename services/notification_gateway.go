package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lifeguidancewithjesper/pound-drop-sub001/models"

	"github.com/google/uuid"
	"github.com/jmhodges/clock"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const dispatchTick = 30 * time.Second

// NotificationGateway is the server-side notification platform: it hands out
// opaque schedule identifiers, keeps the recurrence state, and has a run loop
// that delivers due notifications over push and the realtime hub.
type NotificationGateway struct {
	db   *gorm.DB
	push *PushService
	hub  *RealtimeHub
	clk  clock.Clock
	log  *zap.SugaredLogger
}

func NewNotificationGateway(db *gorm.DB, push *PushService, hub *RealtimeHub, clk clock.Clock, log *zap.SugaredLogger) *NotificationGateway {
	return &NotificationGateway{db: db, push: push, hub: hub, clk: clk, log: log}
}

func (g *NotificationGateway) PermissionStatus(ctx context.Context, userID uint) (PermissionStatus, error) {
	var u models.User
	if err := g.db.WithContext(ctx).First(&u, userID).Error; err != nil {
		return PermissionStatusUndetermined, err
	}
	switch u.NotificationPermission {
	case models.PermissionGranted:
		return PermissionStatusGranted, nil
	case models.PermissionDenied:
		return PermissionStatusDenied, nil
	default:
		return PermissionStatusUndetermined, nil
	}
}

// RequestPermission resolves an undetermined permission once: granted when
// the user has at least one enabled device to deliver to, denied otherwise.
// A previously resolved status is returned unchanged.
func (g *NotificationGateway) RequestPermission(ctx context.Context, userID uint) (PermissionStatus, error) {
	status, err := g.PermissionStatus(ctx, userID)
	if err != nil {
		return PermissionStatusUndetermined, err
	}
	if status != PermissionStatusUndetermined {
		return status, nil
	}

	var devices int64
	if err := g.db.WithContext(ctx).
		Model(&models.UserDevice{}).
		Where("user_id = ? AND enabled = ?", userID, true).
		Count(&devices).Error; err != nil {
		return PermissionStatusUndetermined, err
	}

	resolved := models.PermissionDenied
	if devices > 0 {
		resolved = models.PermissionGranted
	}
	if err := g.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", userID).
		Update("notification_permission", resolved).Error; err != nil {
		return PermissionStatusUndetermined, err
	}
	if resolved == models.PermissionGranted {
		return PermissionStatusGranted, nil
	}
	return PermissionStatusDenied, nil
}

func (g *NotificationGateway) Schedule(ctx context.Context, userID uint, content NotificationContent, trig Trigger) (string, error) {
	if err := validateTrigger(trig); err != nil {
		return "", err
	}

	row := models.ScheduledNotification{
		ID:         uuid.NewString(),
		UserID:     userID,
		Title:      content.Title,
		Body:       content.Body,
		Sound:      content.Sound,
		Hour:       trig.Hour,
		Minute:     trig.Minute,
		DayOfMonth: trig.DayOfMonth,
		Weekday:    -1,
		Repeats:    trig.Repeats,
		NextFireAt: nextFire(trig, g.clk.Now()),
	}
	if trig.Weekday != nil {
		row.Weekday = int(*trig.Weekday)
	}

	if err := g.db.WithContext(ctx).Create(&row).Error; err != nil {
		return "", err
	}
	return row.ID, nil
}

// Cancel removes the schedule behind the identifier. Unknown identifiers are
// benign: the delete simply matches nothing.
func (g *NotificationGateway) Cancel(ctx context.Context, id string) error {
	return g.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.ScheduledNotification{}).Error
}

func (g *NotificationGateway) CancelAll(ctx context.Context, userID uint) error {
	return g.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&models.ScheduledNotification{}).Error
}

// Run drives the delivery loop until the context ends.
func (g *NotificationGateway) Run(ctx context.Context) {
	ticker := time.NewTicker(dispatchTick)
	defer ticker.Stop()

	g.log.Infow("notification dispatch loop started", "tick", dispatchTick)
	for {
		select {
		case <-ctx.Done():
			g.log.Info("notification dispatch loop stopped")
			return
		case <-ticker.C:
			g.deliverDue(ctx)
		}
	}
}

func (g *NotificationGateway) deliverDue(ctx context.Context) {
	now := g.clk.Now()

	var due []models.ScheduledNotification
	if err := g.db.WithContext(ctx).
		Where("next_fire_at <= ?", now).
		Find(&due).Error; err != nil {
		g.log.Errorw("failed loading due notifications", "err", err)
		return
	}

	for _, n := range due {
		g.push.PushToUser(n.UserID, n.Title, n.Body, map[string]string{"notificationId": n.ID})
		g.hub.BroadcastToUser(n.UserID, map[string]any{
			"kind":  "notification.delivered",
			"id":    n.ID,
			"title": n.Title,
			"body":  n.Body,
		})

		if !n.Repeats {
			if err := g.db.WithContext(ctx).Delete(&n).Error; err != nil {
				g.log.Errorw("failed removing one-shot notification", "id", n.ID, "err", err)
			}
			continue
		}

		next := nextFire(rowTrigger(n), now)
		if err := g.db.WithContext(ctx).
			Model(&models.ScheduledNotification{}).
			Where("id = ?", n.ID).
			Update("next_fire_at", next).Error; err != nil {
			g.log.Errorw("failed rolling notification forward", "id", n.ID, "err", err)
		}
	}
}

func rowTrigger(n models.ScheduledNotification) Trigger {
	t := Trigger{Hour: n.Hour, Minute: n.Minute, DayOfMonth: n.DayOfMonth, Repeats: n.Repeats}
	if n.Weekday >= 0 {
		wd := time.Weekday(n.Weekday)
		t.Weekday = &wd
	}
	return t
}

func validateTrigger(t Trigger) error {
	if t.Hour < 0 || t.Hour > 23 || t.Minute < 0 || t.Minute > 59 {
		return fmt.Errorf("trigger time %02d:%02d out of range", t.Hour, t.Minute)
	}
	if t.DayOfMonth < 0 || t.DayOfMonth > 31 {
		return fmt.Errorf("trigger day-of-month %d out of range", t.DayOfMonth)
	}
	if t.DayOfMonth > 0 && t.Weekday != nil {
		return errors.New("trigger cannot be both monthly and weekly")
	}
	if t.Weekday != nil && (*t.Weekday < time.Sunday || *t.Weekday > time.Saturday) {
		return fmt.Errorf("trigger weekday %d out of range", *t.Weekday)
	}
	return nil
}

// nextFire computes the first instant strictly after now at which the
// trigger fires, in now's location.
func nextFire(t Trigger, now time.Time) time.Time {
	loc := now.Location()

	switch {
	case t.DayOfMonth > 0:
		y, m := now.Year(), now.Month()
		// Months missing the day (e.g. the 31st) are skipped; time.Date
		// normalization would otherwise roll into the next month.
		for i := 0; i < 13; i++ {
			fire := time.Date(y, m, t.DayOfMonth, t.Hour, t.Minute, 0, 0, loc)
			if fire.Day() == t.DayOfMonth && fire.After(now) {
				return fire
			}
			m++
		}
		return time.Date(y, m, t.DayOfMonth, t.Hour, t.Minute, 0, 0, loc)
	case t.Weekday != nil:
		fire := time.Date(now.Year(), now.Month(), now.Day(), t.Hour, t.Minute, 0, 0, loc)
		for fire.Weekday() != *t.Weekday || !fire.After(now) {
			fire = fire.AddDate(0, 0, 1)
		}
		return fire
	default:
		fire := time.Date(now.Year(), now.Month(), now.Day(), t.Hour, t.Minute, 0, 0, loc)
		if !fire.After(now) {
			fire = fire.AddDate(0, 0, 1)
		}
		return fire
	}
}
