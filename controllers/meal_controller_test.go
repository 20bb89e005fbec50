package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/lifeguidancewithjesper/pound-drop-sub001/models"
	"github.com/lifeguidancewithjesper/pound-drop-sub001/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type fakeMealStore struct {
	createCalls int
	meals       []models.Meal
	updateErr   error
	deleteErr   error
}

func (f *fakeMealStore) Create(ctx context.Context, m *models.Meal) error {
	f.createCalls++
	m.ID = 42
	return nil
}

func (f *fakeMealStore) List(ctx context.Context, userID uint, date *time.Time) ([]models.Meal, error) {
	return f.meals, nil
}

func (f *fakeMealStore) Update(ctx context.Context, userID, id uint, patch services.MealPatch) (*models.Meal, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return &models.Meal{Name: "updated"}, nil
}

func (f *fakeMealStore) Delete(ctx context.Context, userID, id uint) error {
	return f.deleteErr
}

func setupMealRouter(store *fakeMealStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	mc := NewMealController(store, zap.NewNop().Sugar())

	api := r.Group("/api")
	api.Use(func(c *gin.Context) { c.Set("userID", models.DemoUserID) })
	api.POST("/meals", mc.Create)
	api.GET("/meals", mc.List)
	api.PATCH("/meals/:id", mc.Update)
	api.DELETE("/meals/:id", mc.Delete)
	return r
}

func TestCreateMealMissingNameIsRejectedBeforeStore(t *testing.T) {
	store := &fakeMealStore{}
	r := setupMealRouter(store)

	body := `{"type": "lunch", "calories": 500}`
	req := httptest.NewRequest(http.MethodPost, "/api/meals", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)

	var resp struct {
		Error   string           `json:"error"`
		Details []map[string]any `json:"details"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Details)

	found := false
	for _, d := range resp.Details {
		if d["field"] == "Name" {
			found = true
		}
	}
	assert.True(t, found, "details should name the missing field: %v", resp.Details)
	assert.Zero(t, store.createCalls, "store must not be called on validation failure")
}

func TestCreateMealSucceeds(t *testing.T) {
	store := &fakeMealStore{}
	r := setupMealRouter(store)

	body := `{"name": "Chicken salad", "type": "lunch", "date": "2024-01-15", "calories": 430, "protein": 38}`
	req := httptest.NewRequest(http.MethodPost, "/api/meals", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, 1, store.createCalls)

	var meal models.Meal
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &meal))
	assert.Equal(t, "Chicken salad", meal.Name)
	assert.Equal(t, uint(42), meal.ID)
}

func TestCreateMealRejectsUnknownType(t *testing.T) {
	store := &fakeMealStore{}
	r := setupMealRouter(store)

	body := `{"name": "Cake", "type": "midnight-feast"}`
	req := httptest.NewRequest(http.MethodPost, "/api/meals", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Zero(t, store.createCalls)
}

func TestUpdateMissingMealIs404(t *testing.T) {
	store := &fakeMealStore{updateErr: gorm.ErrRecordNotFound}
	r := setupMealRouter(store)

	req := httptest.NewRequest(http.MethodPatch, "/api/meals/99", strings.NewReader(`{"name": "new name"}`))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestDeleteMissingMealIs404(t *testing.T) {
	store := &fakeMealStore{deleteErr: gorm.ErrRecordNotFound}
	r := setupMealRouter(store)

	req := httptest.NewRequest(http.MethodDelete, "/api/meals/99", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}
