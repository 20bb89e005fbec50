package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/lifeguidancewithjesper/pound-drop-sub001/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type waterStore interface {
	Create(ctx context.Context, e *models.WaterEntry) error
	ListRange(ctx context.Context, userID uint, from, to *time.Time) ([]models.WaterEntry, error)
}

type WaterController struct {
	store waterStore
	log   *zap.SugaredLogger
}

func NewWaterController(store waterStore, log *zap.SugaredLogger) *WaterController {
	return &WaterController{store: store, log: log}
}

type createWaterReq struct {
	Glasses *int   `json:"glasses" binding:"required,gte=0"`
	Date    string `json:"date"`
}

// POST /api/water-entries
func (wc *WaterController) Create(c *gin.Context) {
	var req createWaterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}
	date, err := parseBodyDate(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "details": []gin.H{{"field": "date", "rule": "format"}}})
		return
	}

	entry := models.WaterEntry{
		UserID:  currentUserID(c),
		Date:    date,
		Glasses: *req.Glasses,
	}
	if err := wc.store.Create(c.Request.Context(), &entry); err != nil {
		wc.log.Errorw("failed creating water entry", "err", err)
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// GET /api/water-entries
func (wc *WaterController) List(c *gin.Context) {
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
		wc.log.Errorw("failed listing water entries", "err", err)
		respondStoreError(c, err)
		return
	}
	if rows == nil {
		rows = []models.WaterEntry{}
	}
	c.JSON(http.StatusOK, rows)
}
