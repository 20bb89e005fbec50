package controllers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/lifeguidancewithjesper/pound-drop-sub001/models"
	"github.com/lifeguidancewithjesper/pound-drop-sub001/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type mealStore interface {
	Create(ctx context.Context, m *models.Meal) error
	List(ctx context.Context, userID uint, date *time.Time) ([]models.Meal, error)
	Update(ctx context.Context, userID, id uint, patch services.MealPatch) (*models.Meal, error)
	Delete(ctx context.Context, userID, id uint) error
}

type MealController struct {
	store mealStore
	log   *zap.SugaredLogger
}

func NewMealController(store mealStore, log *zap.SugaredLogger) *MealController {
	return &MealController{store: store, log: log}
}

type createMealReq struct {
	Name     string `json:"name" binding:"required"`
	Type     string `json:"type" binding:"required,oneof=breakfast lunch dinner snack"`
	Date     string `json:"date"`
	Calories int    `json:"calories" binding:"gte=0"`
	Protein  int    `json:"protein" binding:"gte=0"`
	Carbs    int    `json:"carbs" binding:"gte=0"`
	Fat      int    `json:"fat" binding:"gte=0"`
	Notes    string `json:"notes"`
}

// POST /api/meals
func (mc *MealController) Create(c *gin.Context) {
	var req createMealReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}
	date, err := parseBodyDate(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "details": []gin.H{{"field": "date", "rule": "format"}}})
		return
	}

	meal := models.Meal{
		UserID:   currentUserID(c),
		Date:     date,
		Type:     req.Type,
		Name:     req.Name,
		Calories: req.Calories,
		Protein:  req.Protein,
		Carbs:    req.Carbs,
		Fat:      req.Fat,
		Notes:    req.Notes,
	}
	if err := mc.store.Create(c.Request.Context(), &meal); err != nil {
		mc.log.Errorw("failed creating meal", "user", meal.UserID, "err", err)
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusCreated, meal)
}

// GET /api/meals — optional `date` filter.
func (mc *MealController) List(c *gin.Context) {
	var date *time.Time
	if v := c.Query("date"); v != "" {
		t, err := time.ParseInLocation(dateLayout, v, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date"})
			return
		}
		date = &t
	}

	rows, err := mc.store.List(c.Request.Context(), currentUserID(c), date)
	if err != nil {
		mc.log.Errorw("failed listing meals", "err", err)
		respondStoreError(c, err)
		return
	}
	if rows == nil {
		rows = []models.Meal{}
	}
	c.JSON(http.StatusOK, rows)
}

type patchMealReq struct {
	Name     *string `json:"name"`
	Type     *string `json:"type" binding:"omitempty,oneof=breakfast lunch dinner snack"`
	Date     *string `json:"date"`
	Calories *int    `json:"calories" binding:"omitempty,gte=0"`
	Protein  *int    `json:"protein" binding:"omitempty,gte=0"`
	Carbs    *int    `json:"carbs" binding:"omitempty,gte=0"`
	Fat      *int    `json:"fat" binding:"omitempty,gte=0"`
	Notes    *string `json:"notes"`
}

// PATCH /api/meals/:id
func (mc *MealController) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid meal id"})
		return
	}

	var req patchMealReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}
	if req.Name != nil && *req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "details": []gin.H{{"field": "name", "rule": "required"}}})
		return
	}

	patch := services.MealPatch{
		Name:     req.Name,
		Type:     req.Type,
		Calories: req.Calories,
		Protein:  req.Protein,
		Carbs:    req.Carbs,
		Fat:      req.Fat,
		Notes:    req.Notes,
	}
	if req.Date != nil {
		t, err := time.ParseInLocation(dateLayout, *req.Date, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "details": []gin.H{{"field": "date", "rule": "format"}}})
			return
		}
		patch.Date = &t
	}

	meal, err := mc.store.Update(c.Request.Context(), currentUserID(c), uint(id), patch)
	if err != nil {
		mc.log.Errorw("failed updating meal", "meal", id, "err", err)
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, meal)
}

// DELETE /api/meals/:id
func (mc *MealController) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid meal id"})
		return
	}

	if err := mc.store.Delete(c.Request.Context(), currentUserID(c), uint(id)); err != nil {
		mc.log.Errorw("failed deleting meal", "meal", id, "err", err)
		respondStoreError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
