package controllers

import (
	"context"
	"net/http"

	"github.com/lifeguidancewithjesper/pound-drop-sub001/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type nutritionEstimator interface {
	Estimate(ctx context.Context, foodName, portion string) (*services.NutritionEstimate, error)
}

type NutritionController struct {
	estimator nutritionEstimator
	log       *zap.SugaredLogger
}

func NewNutritionController(estimator nutritionEstimator, log *zap.SugaredLogger) *NutritionController {
	return &NutritionController{estimator: estimator, log: log}
}

type estimateReq struct {
	FoodName string `json:"foodName" binding:"required"`
	Portion  string `json:"portion"`
}

// POST /api/estimate-nutrition
func (nc *NutritionController) Estimate(c *gin.Context) {
	var req estimateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	est, err := nc.estimator.Estimate(c.Request.Context(), req.FoodName, req.Portion)
	if err != nil {
		nc.log.Errorw("nutrition estimation failed", "food", req.FoodName, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "estimation failed"})
		return
	}
	c.JSON(http.StatusOK, est)
}
