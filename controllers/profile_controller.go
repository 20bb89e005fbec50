package controllers

import (
	"net/http"

	"github.com/lifeguidancewithjesper/pound-drop-sub001/models"
	"github.com/lifeguidancewithjesper/pound-drop-sub001/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ProfileController struct {
	db  *gorm.DB
	log *zap.SugaredLogger
}

func NewProfileController(db *gorm.DB, log *zap.SugaredLogger) *ProfileController {
	return &ProfileController{db: db, log: log}
}

// GET /api/profile
func (pc *ProfileController) Get(c *gin.Context) {
	var u models.User
	if err := pc.db.First(&u, currentUserID(c)).Error; err != nil {
		respondStoreError(c, err)
		return
	}

	resp := gin.H{"profile": u}

	// BMI from height plus the latest weigh-in, when both exist.
	var latest models.WeightEntry
	err := pc.db.Where("user_id = ?", u.ID).Order("date DESC").First(&latest).Error
	if err == nil && u.HeightCm > 0 {
		if bmi, err := utils.CalculateBMI(u.HeightCm, utils.LbsToKg(latest.Weight)); err == nil {
			resp["bmi"] = bmi
			resp["bmi_category"] = utils.BMICategory(bmi)
		}
	}

	c.JSON(http.StatusOK, resp)
}

type updateProfileReq struct {
	Name       *string  `json:"name"`
	GoalWeight *float64 `json:"goal_weight" binding:"omitempty,gt=0"`
	HeightCm   *float64 `json:"height_cm" binding:"omitempty,gt=0"`
	Unit       *string  `json:"unit" binding:"omitempty,oneof=lb kg"`
}

// PUT /api/profile
func (pc *ProfileController) Update(c *gin.Context) {
	var req updateProfileReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	var u models.User
	if err := pc.db.First(&u, currentUserID(c)).Error; err != nil {
		respondStoreError(c, err)
		return
	}

	if req.Name != nil {
		u.Name = *req.Name
	}
	if req.GoalWeight != nil {
		u.GoalWeight = *req.GoalWeight
	}
	if req.HeightCm != nil {
		u.HeightCm = *req.HeightCm
	}
	if req.Unit != nil {
		u.Unit = *req.Unit
	}

	if err := pc.db.Save(&u).Error; err != nil {
		pc.log.Errorw("failed saving profile", "user", u.ID, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"profile": u})
}
