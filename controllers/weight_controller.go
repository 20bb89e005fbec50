package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/lifeguidancewithjesper/pound-drop-sub001/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type weightStore interface {
	Create(ctx context.Context, e *models.WeightEntry) error
	ListRange(ctx context.Context, userID uint, from, to *time.Time) ([]models.WeightEntry, error)
}

type WeightController struct {
	store weightStore
	log   *zap.SugaredLogger
}

func NewWeightController(store weightStore, log *zap.SugaredLogger) *WeightController {
	return &WeightController{store: store, log: log}
}

type createWeightReq struct {
	Weight *float64 `json:"weight" binding:"required,gt=0"`
	Date   string   `json:"date"`
	Note   string   `json:"note"`
}

// POST /api/weight-entries
func (wc *WeightController) Create(c *gin.Context) {
	var req createWeightReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}
	date, err := parseBodyDate(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "details": []gin.H{{"field": "date", "rule": "format"}}})
		return
	}

	entry := models.WeightEntry{
		UserID: currentUserID(c),
		Date:   date,
		Weight: *req.Weight,
		Note:   req.Note,
	}
	if err := wc.store.Create(c.Request.Context(), &entry); err != nil {
		wc.log.Errorw("failed creating weight entry", "user", entry.UserID, "err", err)
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// GET /api/weight-entries
func (wc *WeightController) List(c *gin.Context) {
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

	rows, err := wc.store.ListRange(c.Request.Context(), currentUserID(c), from, to)
	if err != nil {
		wc.log.Errorw("failed listing weight entries", "err", err)
		respondStoreError(c, err)
		return
	}
	if rows == nil {
		rows = []models.WeightEntry{}
	}
	c.JSON(http.StatusOK, rows)
}
