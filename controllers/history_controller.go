package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/lifeguidancewithjesper/pound-drop-sub001/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type historyProvider interface {
	GetHistory(ctx context.Context, userID uint, from, to *time.Time) (*services.HistorySnapshot, error)
}

type HistoryController struct {
	svc historyProvider
	log *zap.SugaredLogger
}

func NewHistoryController(svc historyProvider, log *zap.SugaredLogger) *HistoryController {
	return &HistoryController{svc: svc, log: log}
}

// GET /api/history?startDate&endDate
func (hc *HistoryController) Get(c *gin.Context) {
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

	snap, err := hc.svc.GetHistory(c.Request.Context(), currentUserID(c), from, to)
	if err != nil {
		hc.log.Errorw("history aggregation failed", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, snap)
}
