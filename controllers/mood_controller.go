package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/lifeguidancewithjesper/pound-drop-sub001/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type moodStore interface {
	Upsert(ctx context.Context, userID uint, date time.Time, mood, note string) (*models.DailyMood, error)
	ListRange(ctx context.Context, userID uint, from, to *time.Time) ([]models.DailyMood, error)
}

type MoodController struct {
	store moodStore
	log   *zap.SugaredLogger
}

func NewMoodController(store moodStore, log *zap.SugaredLogger) *MoodController {
	return &MoodController{store: store, log: log}
}

type upsertMoodReq struct {
	Mood string `json:"mood" binding:"required,oneof=great good okay low rough"`
	Note string `json:"note"`
	Date string `json:"date"`
}

// POST /api/daily-moods — one mood per day, overwritten on repeat posts.
func (mc *MoodController) Upsert(c *gin.Context) {
	var req upsertMoodReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}
	date, err := parseBodyDate(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "details": []gin.H{{"field": "date", "rule": "format"}}})
		return
	}

	entry, err := mc.store.Upsert(c.Request.Context(), currentUserID(c), date, req.Mood, req.Note)
	if err != nil {
		mc.log.Errorw("failed upserting mood", "err", err)
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// GET /api/daily-moods
func (mc *MoodController) List(c *gin.Context) {
	from, ok := parseDateQuery(c, "startDate")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid startDate"})
		return
	}
	to, ok := parseDateQuery(c, "endDate")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid endDate"})
		return
	}

	rows, err := mc.store.ListRange(c.Request.Context(), currentUserID(c), from, to)
	if err != nil {
		mc.log.Errorw("failed listing moods", "err", err)
		respondStoreError(c, err)
		return
	}
	if rows == nil {
		rows = []models.DailyMood{}
	}
	c.JSON(http.StatusOK, rows)
}
