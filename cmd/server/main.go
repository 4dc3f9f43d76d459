package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/Tanzimhossain222/chrono-boost/internal/config"
	"github.com/Tanzimhossain222/chrono-boost/internal/db"
	"github.com/Tanzimhossain222/chrono-boost/internal/events"
	"github.com/Tanzimhossain222/chrono-boost/internal/handler"
	"github.com/Tanzimhossain222/chrono-boost/internal/repository"
	"github.com/Tanzimhossain222/chrono-boost/internal/router"
	"github.com/Tanzimhossain222/chrono-boost/internal/service"
	"github.com/Tanzimhossain222/chrono-boost/internal/ticker"
	"github.com/Tanzimhossain222/chrono-boost/migrations"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg := config.Load()

	database, err := db.OpenSQLite(cfg.DBPath)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer database.Close()

	if err := db.RunMigrations(database, migrations.Files); err != nil {
		log.Fatalf("run migrations: %v", err)
	}

	userRepo := repository.NewUserRepository(database)
	snapshotRepo := repository.NewSnapshotRepository(database)
	hub := events.NewHub()

	authService := service.NewAuthService(userRepo, snapshotRepo, cfg.JWTSecret, cfg.TokenTTL)
	timerService := service.NewTimerService(snapshotRepo, hub)
	taskService := service.NewTaskService(snapshotRepo, hub)
	statsService := service.NewStatsService(snapshotRepo)

	authHandler := handler.NewAuthHandler(authService)
	timerHandler := handler.NewTimerHandler(timerService)
	taskHandler := handler.NewTaskHandler(taskService)
	statsHandler := handler.NewStatsHandler(statsService)
	eventsHandler := handler.NewEventsHandler(hub)

	// One server-side clock drives every running countdown.
	clock := ticker.New(snapshotRepo, timerService)
	clock.Start()
	defer clock.Stop()

	engine := router.New(authService, authHandler, timerHandler, taskHandler, statsHandler, eventsHandler, cfg.CORSOrigins)
	log.Printf("chrono-boost listening on :%s", cfg.Port)
	if err := engine.Run(":" + cfg.Port); err != nil {
		log.Fatalf("run server: %v", err)
	}
}
