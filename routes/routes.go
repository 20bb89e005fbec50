package routes

import (
	"github.com/lifeguidancewithjesper/pound-drop-sub001/controllers"
	"github.com/lifeguidancewithjesper/pound-drop-sub001/middlewares"

	"github.com/gin-gonic/gin"
)

// Controllers bundles everything the router mounts.
type Controllers struct {
	Weight    *controllers.WeightController
	Steps     *controllers.StepsController
	Water     *controllers.WaterController
	Mood      *controllers.MoodController
	Meal      *controllers.MealController
	History   *controllers.HistoryController
	Nutrition *controllers.NutritionController
	Reminder  *controllers.ReminderController
	Device    *controllers.DeviceController
	Catalog   *controllers.CatalogController
	Profile   *controllers.ProfileController
	Realtime  *controllers.RealtimeController
}

func SetupRouter(ctrl Controllers) *gin.Engine {
	r := gin.Default()

	api := r.Group("/api")
	api.Use(middlewares.IdentityMiddleware())
	{
		api.GET("/weight-entries", ctrl.Weight.List)
		api.POST("/weight-entries", ctrl.Weight.Create)

		api.GET("/steps", ctrl.Steps.Get)
		api.POST("/steps", ctrl.Steps.Upsert)

		api.GET("/water-entries", ctrl.Water.List)
		api.POST("/water-entries", ctrl.Water.Create)

		api.GET("/meals", ctrl.Meal.List)
		api.POST("/meals", ctrl.Meal.Create)
		api.PATCH("/meals/:id", ctrl.Meal.Update)
		api.DELETE("/meals/:id", ctrl.Meal.Delete)

		api.GET("/daily-moods", ctrl.Mood.List)
		api.POST("/daily-moods", ctrl.Mood.Upsert)

		api.GET("/history", ctrl.History.Get)

		api.POST("/estimate-nutrition", ctrl.Nutrition.Estimate)

		api.GET("/reminders", ctrl.Reminder.Status)
		api.POST("/reminders/:kind", ctrl.Reminder.Enable)
		api.DELETE("/reminders/:kind", ctrl.Reminder.Disable)
		api.DELETE("/reminders", ctrl.Reminder.DisableAll)

		api.POST("/devices", ctrl.Device.Register)
		api.POST("/notifications/toggle", ctrl.Device.ToggleNotifications)

		api.GET("/catalog/workouts", ctrl.Catalog.Workouts)
		api.GET("/catalog/restaurant-tips", ctrl.Catalog.RestaurantTips)

		api.GET("/profile", ctrl.Profile.Get)
		api.PUT("/profile", ctrl.Profile.Update)
	}

	ws := r.Group("/ws")
	ws.Use(middlewares.IdentityMiddleware())
	{
		ws.GET("", ctrl.Realtime.Connect)
	}

	return r
}
