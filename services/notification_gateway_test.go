package services

import (
	"testing"
	"time"

	"github.com/lifeguidancewithjesper/pound-drop-sub001/models"

	"github.com/stretchr/testify/assert"
)

func rowTriggerFixture(t Trigger) models.ScheduledNotification {
	row := models.ScheduledNotification{
		Hour:       t.Hour,
		Minute:     t.Minute,
		DayOfMonth: t.DayOfMonth,
		Weekday:    -1,
		Repeats:    t.Repeats,
	}
	if t.Weekday != nil {
		row.Weekday = int(*t.Weekday)
	}
	return row
}

func TestNextFireDaily(t *testing.T) {
	trig := Trigger{Hour: 18, Minute: 0, Repeats: true}

	morning := time.Date(2024, 3, 12, 8, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 3, 12, 18, 0, 0, 0, time.UTC), nextFire(trig, morning))

	// exactly at the trigger instant rolls to tomorrow (strictly after)
	atTrigger := time.Date(2024, 3, 12, 18, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 3, 13, 18, 0, 0, 0, time.UTC), nextFire(trig, atTrigger))

	evening := time.Date(2024, 3, 12, 22, 30, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 3, 13, 18, 0, 0, 0, time.UTC), nextFire(trig, evening))
}

func TestNextFireWeekly(t *testing.T) {
	sunday := time.Sunday
	trig := Trigger{Hour: 10, Minute: 0, Weekday: &sunday, Repeats: true}

	// 2024-03-12 is a Tuesday; next Sunday is the 17th
	tuesday := time.Date(2024, 3, 12, 8, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 3, 17, 10, 0, 0, 0, time.UTC), nextFire(trig, tuesday))

	// Sunday morning before 10:00 fires the same day
	sundayEarly := time.Date(2024, 3, 17, 9, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 3, 17, 10, 0, 0, 0, time.UTC), nextFire(trig, sundayEarly))

	// Sunday after 10:00 waits a full week
	sundayLate := time.Date(2024, 3, 17, 11, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 3, 24, 10, 0, 0, 0, time.UTC), nextFire(trig, sundayLate))
}

func TestNextFireMonthly(t *testing.T) {
	trig := Trigger{Hour: 9, Minute: 0, DayOfMonth: 1, Repeats: true}

	midMonth := time.Date(2024, 3, 12, 8, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 4, 1, 9, 0, 0, 0, time.UTC), nextFire(trig, midMonth))

	firstEarly := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC), nextFire(trig, firstEarly))

	firstLate := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 4, 1, 9, 0, 0, 0, time.UTC), nextFire(trig, firstLate))
}

func TestNextFireMonthlySkipsShortMonths(t *testing.T) {
	trig := Trigger{Hour: 9, Minute: 0, DayOfMonth: 31, Repeats: true}

	// after Jan 31 the next month with a 31st is March
	feb := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 3, 31, 9, 0, 0, 0, time.UTC), nextFire(trig, feb))
}

func TestValidateTrigger(t *testing.T) {
	sunday := time.Sunday

	assert.NoError(t, validateTrigger(Trigger{Hour: 18, Minute: 0}))
	assert.NoError(t, validateTrigger(Trigger{Hour: 9, Minute: 0, DayOfMonth: 1}))
	assert.NoError(t, validateTrigger(Trigger{Hour: 10, Minute: 0, Weekday: &sunday}))

	assert.Error(t, validateTrigger(Trigger{Hour: 24, Minute: 0}))
	assert.Error(t, validateTrigger(Trigger{Hour: 10, Minute: 60}))
	assert.Error(t, validateTrigger(Trigger{Hour: 10, Minute: 0, DayOfMonth: 32}))
	assert.Error(t, validateTrigger(Trigger{Hour: 10, Minute: 0, DayOfMonth: 1, Weekday: &sunday}))
}

func TestRowTriggerRoundTrip(t *testing.T) {
	sunday := time.Sunday
	trig := Trigger{Hour: 10, Minute: 30, Weekday: &sunday, Repeats: true}

	row := rowTriggerFixture(trig)
	got := rowTrigger(row)

	assert.Equal(t, trig.Hour, got.Hour)
	assert.Equal(t, trig.Minute, got.Minute)
	assert.Equal(t, trig.DayOfMonth, got.DayOfMonth)
	if assert.NotNil(t, got.Weekday) {
		assert.Equal(t, *trig.Weekday, *got.Weekday)
	}
	assert.True(t, got.Repeats)
}
