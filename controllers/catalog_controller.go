package controllers

import (
	"net/http"

	"github.com/lifeguidancewithjesper/pound-drop-sub001/services"

	"github.com/gin-gonic/gin"
)

// Static catalog endpoints. The tables are compiled in; there is nothing to
// inject.
type CatalogController struct{}

func NewCatalogController() *CatalogController { return &CatalogController{} }

// GET /api/catalog/workouts
func (cc *CatalogController) Workouts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"workouts": services.WorkoutCatalog})
}

// GET /api/catalog/restaurant-tips
func (cc *CatalogController) RestaurantTips(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"tips": services.RestaurantCatalog})
}
