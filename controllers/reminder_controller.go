package controllers

import (
	"net/http"

	"github.com/lifeguidancewithjesper/pound-drop-sub001/services"

	"github.com/gin-gonic/gin"
)

type ReminderController struct {
	sched *services.ReminderScheduler
}

func NewReminderController(sched *services.ReminderScheduler) *ReminderController {
	return &ReminderController{sched: sched}
}

// Route segment -> reminder kind.
var reminderKindParams = map[string]services.ReminderKind{
	"meal":     services.ReminderDailyMeal,
	"weight":   services.ReminderMonthlyWeight,
	"progress": services.ReminderWeeklyProgress,
}

func kindFromParam(c *gin.Context) (services.ReminderKind, bool) {
	kind, ok := reminderKindParams[c.Param("kind")]
	return kind, ok
}

// GET /api/reminders
func (rc *ReminderController) Status(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"reminders": rc.sched.Status(c.Request.Context(), currentUserID(c)),
	})
}

// POST /api/reminders/:kind
func (rc *ReminderController) Enable(c *gin.Context) {
	kind, ok := kindFromParam(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown reminder"})
		return
	}

	if !rc.sched.Schedule(c.Request.Context(), currentUserID(c), kind) {
		// Denied permission and platform failure both surface here; the
		// scheduler has already logged the specifics.
		c.JSON(http.StatusForbidden, gin.H{"enabled": false, "error": "could not enable reminder"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"enabled": true, "kind": kind})
}

// DELETE /api/reminders/:kind
func (rc *ReminderController) Disable(c *gin.Context) {
	kind, ok := kindFromParam(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown reminder"})
		return
	}

	rc.sched.Cancel(c.Request.Context(), currentUserID(c), kind)
	c.Status(http.StatusNoContent)
}

// DELETE /api/reminders
func (rc *ReminderController) DisableAll(c *gin.Context) {
	rc.sched.CancelAll(c.Request.Context(), currentUserID(c))
	c.Status(http.StatusNoContent)
}
