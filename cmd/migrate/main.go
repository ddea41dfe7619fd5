package main

import (
	"context"
	"log"
	"os"

	"github.com/attendly/attendance-backend-go/internal/config"
	"github.com/attendly/attendance-backend-go/internal/pkg/database"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}
	defer db.Close()

	migration, err := os.ReadFile("migrations/001_initial_schema.sql")
	if err != nil {
		log.Fatal("Error reading migration file: ", err)
	}

	if _, err := db.Exec(context.Background(), string(migration)); err != nil {
		log.Fatal("Error executing migration: ", err)
	}

	log.Println("Migration completed successfully")
}
