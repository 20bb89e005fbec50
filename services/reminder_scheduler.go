package services

import (
	"context"

	"go.uber.org/zap"
)

// ReminderScheduler manages the lifecycle of the three recurring reminders.
// It never raises: every operation reports success as a boolean and logs the
// underlying error, so a flaky platform call can't crash a caller.
//
// Two concurrent Schedule calls for the same (user, kind) race on the
// persisted key: last writer wins and the loser's platform-side schedule is
// orphaned. Call sites serialize per user, so no lock is taken here.
type ReminderScheduler struct {
	notifier NotificationService
	keys     ReminderKeyStore
	log      *zap.SugaredLogger
}

func NewReminderScheduler(notifier NotificationService, keys ReminderKeyStore, log *zap.SugaredLogger) *ReminderScheduler {
	return &ReminderScheduler{notifier: notifier, keys: keys, log: log}
}

// RequestPermission reports whether notification permission is granted,
// prompting the platform once if the status is still undetermined.
func (s *ReminderScheduler) RequestPermission(ctx context.Context, userID uint) bool {
	status, err := s.notifier.PermissionStatus(ctx, userID)
	if err != nil {
		s.log.Errorw("failed reading notification permission", "user", userID, "err", err)
		return false
	}
	if status == PermissionStatusGranted {
		return true
	}
	status, err = s.notifier.RequestPermission(ctx, userID)
	if err != nil {
		s.log.Errorw("notification permission request failed", "user", userID, "err", err)
		return false
	}
	return status == PermissionStatusGranted
}

// Schedule turns on the reminder of the given kind. Any previously active
// schedule for the kind is cancelled first, so at most one identifier is ever
// live per (user, kind). Returns false without partial state on permission
// denial or platform failure.
func (s *ReminderScheduler) Schedule(ctx context.Context, userID uint, kind ReminderKind) bool {
	if !s.RequestPermission(ctx, userID) {
		return false
	}

	s.Cancel(ctx, userID, kind)

	id, err := s.notifier.Schedule(ctx, userID, kind.Content(), kind.Trigger())
	if err != nil {
		s.log.Errorw("platform refused to schedule reminder", "user", userID, "kind", kind, "err", err)
		return false
	}
	if err := s.keys.Put(ctx, userID, kind.StorageKey(), id); err != nil {
		s.log.Errorw("failed persisting reminder identifier", "user", userID, "kind", kind, "err", err)
		return false
	}
	return true
}

// Cancel turns off the reminder of the given kind. A kind with no stored
// identifier is a no-op; calling Cancel twice is the same as calling it once.
func (s *ReminderScheduler) Cancel(ctx context.Context, userID uint, kind ReminderKind) {
	id, ok, err := s.keys.Get(ctx, userID, kind.StorageKey())
	if err != nil {
		s.log.Errorw("failed reading reminder identifier", "user", userID, "kind", kind, "err", err)
		return
	}
	if !ok {
		return
	}
	// Cancelling an identifier the platform no longer knows is benign.
	if err := s.notifier.Cancel(ctx, id); err != nil {
		s.log.Warnw("platform cancel failed", "user", userID, "kind", kind, "id", id, "err", err)
	}
	if err := s.keys.Delete(ctx, userID, kind.StorageKey()); err != nil {
		s.log.Errorw("failed clearing reminder identifier", "user", userID, "kind", kind, "err", err)
	}
}

// CancelAll wipes every outstanding notification for the user in one
// platform call. The per-kind keys are left as-is; Cancel tolerates the
// stale identifiers they now hold.
func (s *ReminderScheduler) CancelAll(ctx context.Context, userID uint) {
	if err := s.notifier.CancelAll(ctx, userID); err != nil {
		s.log.Errorw("platform cancel-all failed", "user", userID, "err", err)
	}
}

// ReminderStatus is the per-kind view returned to the settings screen.
type ReminderStatus struct {
	Kind    ReminderKind `json:"kind"`
	Enabled bool         `json:"enabled"`
}

// Status reports which kinds currently hold a persisted identifier.
func (s *ReminderScheduler) Status(ctx context.Context, userID uint) []ReminderStatus {
	out := make([]ReminderStatus, 0, len(AllReminderKinds))
	for _, kind := range AllReminderKinds {
		_, ok, err := s.keys.Get(ctx, userID, kind.StorageKey())
		if err != nil {
			s.log.Errorw("failed reading reminder identifier", "user", userID, "kind", kind, "err", err)
			ok = false
		}
		out = append(out, ReminderStatus{Kind: kind, Enabled: ok})
	}
	return out
}
