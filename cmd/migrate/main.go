package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/Tanzimhossain222/chrono-boost/internal/config"
	"github.com/Tanzimhossain222/chrono-boost/internal/db"
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

	log.Println("migrations applied successfully")
}
