package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/lifeguidancewithjesper/pound-drop-sub001/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type stepStore interface {
	Upsert(ctx context.Context, userID uint, date time.Time, steps int) (*models.StepEntry, error)
	GetByDate(ctx context.Context, userID uint, date time.Time) (*models.StepEntry, error)
	ListRange(ctx context.Context, userID uint, from, to *time.Time) ([]models.StepEntry, error)
}

type StepsController struct {
	store stepStore
	log   *zap.SugaredLogger
}

func NewStepsController(store stepStore, log *zap.SugaredLogger) *StepsController {
	return &StepsController{store: store, log: log}
}

type upsertStepsReq struct {
	Steps *int   `json:"steps" binding:"required,gte=0"`
	Date  string `json:"date"`
}

// POST /api/steps — upserts the count for the day.
func (sc *StepsController) Upsert(c *gin.Context) {
	var req upsertStepsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}
	date, err := parseBodyDate(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "details": []gin.H{{"field": "date", "rule": "format"}}})
		return
	}

	entry, err := sc.store.Upsert(c.Request.Context(), currentUserID(c), date, *req.Steps)
	if err != nil {
		sc.log.Errorw("failed upserting steps", "err", err)
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// GET /api/steps — `date` selects a single day, otherwise a range listing.
func (sc *StepsController) Get(c *gin.Context) {
	if v := c.Query("date"); v != "" {
		date, err := time.ParseInLocation(dateLayout, v, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date"})
			return
		}
		entry, err := sc.store.GetByDate(c.Request.Context(), currentUserID(c), date)
		if err != nil {
			sc.log.Errorw("failed reading steps", "err", err)
			respondStoreError(c, err)
			return
		}
		if entry == nil {
			c.JSON(http.StatusOK, gin.H{"date": v, "steps": 0})
			return
		}
		c.JSON(http.StatusOK, entry)
		return
	}

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
	rows, err := sc.store.ListRange(c.Request.Context(), currentUserID(c), from, to)
	if err != nil {
		sc.log.Errorw("failed listing steps", "err", err)
		respondStoreError(c, err)
		return
	}
	if rows == nil {
		rows = []models.StepEntry{}
	}
	c.JSON(http.StatusOK, rows)
}
