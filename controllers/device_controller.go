package controllers

import (
	"net/http"

	"github.com/lifeguidancewithjesper/pound-drop-sub001/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type DeviceController struct {
	push *services.PushService
	log  *zap.SugaredLogger
}

func NewDeviceController(push *services.PushService, log *zap.SugaredLogger) *DeviceController {
	return &DeviceController{push: push, log: log}
}

// POST /api/devices
func (dc *DeviceController) Register(c *gin.Context) {
	var req services.RegisterDeviceReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	dev, err := dc.push.RegisterDevice(c.Request.Context(), currentUserID(c), req.Platform, req.Token)
	if err != nil {
		dc.log.Errorw("device registration failed", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusCreated, dev)
}

type toggleReq struct {
	Enabled *bool `json:"enabled" binding:"required"`
}

// POST /api/notifications/toggle
func (dc *DeviceController) ToggleNotifications(c *gin.Context) {
	var req toggleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	if err := dc.push.SetEnabled(c.Request.Context(), currentUserID(c), *req.Enabled); err != nil {
		dc.log.Errorw("failed toggling notifications", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"enabled": *req.Enabled})
}
