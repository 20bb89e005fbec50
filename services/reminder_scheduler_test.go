package services

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeNotifier struct {
	status        PermissionStatus
	requestResult PermissionStatus

	scheduleErr error
	cancelErr   error

	nextID    int
	active    map[string]Trigger
	calls     []string
	lastTrig  Trigger
	lastTitle string
}

func newFakeNotifier(status PermissionStatus) *fakeNotifier {
	return &fakeNotifier{status: status, requestResult: status, active: map[string]Trigger{}}
}

func (f *fakeNotifier) PermissionStatus(ctx context.Context, userID uint) (PermissionStatus, error) {
	return f.status, nil
}

func (f *fakeNotifier) RequestPermission(ctx context.Context, userID uint) (PermissionStatus, error) {
	f.calls = append(f.calls, "request-permission")
	f.status = f.requestResult
	return f.requestResult, nil
}

func (f *fakeNotifier) Schedule(ctx context.Context, userID uint, content NotificationContent, trig Trigger) (string, error) {
	f.calls = append(f.calls, "schedule")
	if f.scheduleErr != nil {
		return "", f.scheduleErr
	}
	f.nextID++
	id := fmt.Sprintf("n-%d", f.nextID)
	f.active[id] = trig
	f.lastTrig = trig
	f.lastTitle = content.Title
	return id, nil
}

func (f *fakeNotifier) Cancel(ctx context.Context, id string) error {
	f.calls = append(f.calls, "cancel:"+id)
	if f.cancelErr != nil {
		return f.cancelErr
	}
	delete(f.active, id)
	return nil
}

func (f *fakeNotifier) CancelAll(ctx context.Context, userID uint) error {
	f.calls = append(f.calls, "cancel-all")
	f.active = map[string]Trigger{}
	return nil
}

type fakeKeyStore struct {
	values map[string]string
	getErr error
	putErr error
}

func newFakeKeyStore() *fakeKeyStore {
	return &fakeKeyStore{values: map[string]string{}}
}

func (f *fakeKeyStore) Get(ctx context.Context, userID uint, key string) (string, bool, error) {
	if f.getErr != nil {
		return "", false, f.getErr
	}
	v, ok := f.values[key]
	return v, ok, nil
}

func (f *fakeKeyStore) Put(ctx context.Context, userID uint, key, value string) error {
	if f.putErr != nil {
		return f.putErr
	}
	f.values[key] = value
	return nil
}

func (f *fakeKeyStore) Delete(ctx context.Context, userID uint, key string) error {
	delete(f.values, key)
	return nil
}

func newTestScheduler(n *fakeNotifier, k *fakeKeyStore) *ReminderScheduler {
	return NewReminderScheduler(n, k, zap.NewNop().Sugar())
}

func TestScheduleStoresExactlyOneIdentifier(t *testing.T) {
	notifier := newFakeNotifier(PermissionStatusGranted)
	keys := newFakeKeyStore()
	sched := newTestScheduler(notifier, keys)

	ok := sched.Schedule(context.Background(), 1, ReminderDailyMeal)
	require.True(t, ok)

	id := keys.values[ReminderDailyMeal.StorageKey()]
	assert.Equal(t, "n-1", id)
	assert.Len(t, notifier.active, 1)
}

func TestScheduleReplacesPreviousIdentifier(t *testing.T) {
	notifier := newFakeNotifier(PermissionStatusGranted)
	keys := newFakeKeyStore()
	sched := newTestScheduler(notifier, keys)

	require.True(t, sched.Schedule(context.Background(), 1, ReminderDailyMeal))
	first := keys.values[ReminderDailyMeal.StorageKey()]

	require.True(t, sched.Schedule(context.Background(), 1, ReminderDailyMeal))
	second := keys.values[ReminderDailyMeal.StorageKey()]

	assert.NotEqual(t, first, second)
	// the old identifier was cancelled before the new schedule call
	assert.Equal(t, []string{"schedule", "cancel:" + first, "schedule"}, notifier.calls)
	assert.Len(t, notifier.active, 1)
}

func TestCancelIsIdempotent(t *testing.T) {
	notifier := newFakeNotifier(PermissionStatusGranted)
	keys := newFakeKeyStore()
	sched := newTestScheduler(notifier, keys)

	require.True(t, sched.Schedule(context.Background(), 1, ReminderWeeklyProgress))
	id := keys.values[ReminderWeeklyProgress.StorageKey()]

	sched.Cancel(context.Background(), 1, ReminderWeeklyProgress)
	sched.Cancel(context.Background(), 1, ReminderWeeklyProgress)

	_, stored := keys.values[ReminderWeeklyProgress.StorageKey()]
	assert.False(t, stored)
	// only one platform cancel; the second call found no stored id
	assert.Equal(t, []string{"schedule", "cancel:" + id}, notifier.calls)
}

func TestSchedulePermissionDeniedLeavesStateUntouched(t *testing.T) {
	notifier := newFakeNotifier(PermissionStatusUndetermined)
	notifier.requestResult = PermissionStatusDenied
	keys := newFakeKeyStore()
	keys.values[ReminderDailyMeal.StorageKey()] = "old-id"
	sched := newTestScheduler(notifier, keys)

	ok := sched.Schedule(context.Background(), 1, ReminderDailyMeal)

	assert.False(t, ok)
	assert.Equal(t, "old-id", keys.values[ReminderDailyMeal.StorageKey()])
	assert.NotContains(t, notifier.calls, "schedule")
}

func TestSchedulePlatformFailureReturnsFalse(t *testing.T) {
	notifier := newFakeNotifier(PermissionStatusGranted)
	notifier.scheduleErr = errors.New("platform said no")
	keys := newFakeKeyStore()
	sched := newTestScheduler(notifier, keys)

	ok := sched.Schedule(context.Background(), 1, ReminderMonthlyWeight)

	assert.False(t, ok)
	_, stored := keys.values[ReminderMonthlyWeight.StorageKey()]
	assert.False(t, stored)
}

func TestSchedulePersistFailureReturnsFalse(t *testing.T) {
	notifier := newFakeNotifier(PermissionStatusGranted)
	keys := newFakeKeyStore()
	keys.putErr = errors.New("disk full")
	sched := newTestScheduler(notifier, keys)

	assert.False(t, sched.Schedule(context.Background(), 1, ReminderDailyMeal))
}

func TestCancelAllLeavesKeysButCancelStaysSafe(t *testing.T) {
	notifier := newFakeNotifier(PermissionStatusGranted)
	keys := newFakeKeyStore()
	sched := newTestScheduler(notifier, keys)

	require.True(t, sched.Schedule(context.Background(), 1, ReminderDailyMeal))

	sched.CancelAll(context.Background(), 1)

	// cancel-all does not clear the per-kind keys
	_, stored := keys.values[ReminderDailyMeal.StorageKey()]
	assert.True(t, stored)

	// cancelling the now-stale identifier must not blow up and clears the key
	assert.NotPanics(t, func() {
		sched.Cancel(context.Background(), 1, ReminderDailyMeal)
		sched.Cancel(context.Background(), 1, ReminderMonthlyWeight)
	})
	_, stored = keys.values[ReminderDailyMeal.StorageKey()]
	assert.False(t, stored)
}

func TestReminderTriggerTemplates(t *testing.T) {
	sunday := time.Sunday
	cases := []struct {
		kind ReminderKind
		want Trigger
	}{
		{ReminderDailyMeal, Trigger{Hour: 18, Minute: 0, Repeats: true}},
		{ReminderMonthlyWeight, Trigger{Hour: 9, Minute: 0, DayOfMonth: 1, Repeats: true}},
		{ReminderWeeklyProgress, Trigger{Hour: 10, Minute: 0, Weekday: &sunday, Repeats: true}},
	}

	for _, tc := range cases {
		t.Run(string(tc.kind), func(t *testing.T) {
			notifier := newFakeNotifier(PermissionStatusGranted)
			keys := newFakeKeyStore()
			sched := newTestScheduler(notifier, keys)

			require.True(t, sched.Schedule(context.Background(), 1, tc.kind))

			got := notifier.lastTrig
			assert.Equal(t, tc.want.Hour, got.Hour)
			assert.Equal(t, tc.want.Minute, got.Minute)
			assert.Equal(t, tc.want.DayOfMonth, got.DayOfMonth)
			assert.True(t, got.Repeats)
			if tc.want.Weekday == nil {
				assert.Nil(t, got.Weekday)
			} else {
				require.NotNil(t, got.Weekday)
				assert.Equal(t, *tc.want.Weekday, *got.Weekday)
			}
			assert.NotEmpty(t, notifier.lastTitle)
		})
	}
}

func TestStatusReflectsStoredKeys(t *testing.T) {
	notifier := newFakeNotifier(PermissionStatusGranted)
	keys := newFakeKeyStore()
	sched := newTestScheduler(notifier, keys)

	require.True(t, sched.Schedule(context.Background(), 1, ReminderDailyMeal))

	statuses := sched.Status(context.Background(), 1)
	require.Len(t, statuses, 3)
	byKind := map[ReminderKind]bool{}
	for _, st := range statuses {
		byKind[st.Kind] = st.Enabled
	}
	assert.True(t, byKind[ReminderDailyMeal])
	assert.False(t, byKind[ReminderMonthlyWeight])
	assert.False(t, byKind[ReminderWeeklyProgress])
}
