package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/lifeguidancewithjesper/pound-drop-sub001/config"
	"github.com/lifeguidancewithjesper/pound-drop-sub001/controllers"
	"github.com/lifeguidancewithjesper/pound-drop-sub001/routes"
	"github.com/lifeguidancewithjesper/pound-drop-sub001/services"

	"github.com/jmhodges/clock"
	"go.uber.org/zap"
)

func main() {
	config.InitDB()

	zl, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer zl.Sync()
	logger := zl.Sugar()

	db := config.DB

	push, err := services.NewPushService(db, logger)
	if err != nil {
		log.Fatalf("failed to init push service: %v", err)
	}
	hub := services.NewRealtimeHub()

	gateway := services.NewNotificationGateway(db, push, hub, clock.New(), logger)
	scheduler := services.NewReminderScheduler(gateway, services.NewGormReminderKeyStore(db), logger)

	weights := services.NewWeightStore(db)
	steps := services.NewStepStore(db)
	water := services.NewWaterStore(db)
	meals := services.NewMealStore(db)
	moods := services.NewMoodStore(db)
	history := services.NewHistoryService(weights, steps, water, meals, moods)
	nutrition := services.NewNutritionService()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go gateway.Run(ctx)

	r := routes.SetupRouter(routes.Controllers{
		Weight:    controllers.NewWeightController(weights, logger),
		Steps:     controllers.NewStepsController(steps, logger),
		Water:     controllers.NewWaterController(water, logger),
		Mood:      controllers.NewMoodController(moods, logger),
		Meal:      controllers.NewMealController(meals, logger),
		History:   controllers.NewHistoryController(history, logger),
		Nutrition: controllers.NewNutritionController(nutrition, logger),
		Reminder:  controllers.NewReminderController(scheduler),
		Device:    controllers.NewDeviceController(push, logger),
		Catalog:   controllers.NewCatalogController(),
		Profile:   controllers.NewProfileController(db, logger),
		Realtime:  controllers.NewRealtimeController(hub, logger),
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
