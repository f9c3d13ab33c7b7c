// Package db opens the application database and runs startup migrations and seeding.
package db

import (
	"fmt"
	"log"
	"os"
	"time"

	gpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	authentity "movie_backend/internal/feature/auth/domain/entity"
	moviesentity "movie_backend/internal/feature/movies/domain/entity"
)

// OpenDB connects to PostgreSQL with a retry loop and optionally runs
// migrations and seeding. It exits the process if the database never
// becomes reachable.
func OpenDB() *gorm.DB {
	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	user := os.Getenv("DB_USER")
	pass := os.Getenv("DB_PASSWORD")
	name := os.Getenv("DB_NAME")

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable TimeZone=UTC",
		host, port, user, pass, name)

	var (
		db  *gorm.DB
		err error
	)

	deadline := time.Now().Add(60 * time.Second)
	for {
		db, err = gorm.Open(gpostgres.Open(dsn), &gorm.Config{})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			log.Fatalf("DB connect failed after 60s: %v", err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}

	if os.Getenv("RUN_MIGRATIONS") == "true" {
		// マイグレーション（User, Movie）
		if err := db.AutoMigrate(
			&authentity.User{},
			&moviesentity.Movie{},
		); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	if os.Getenv("SEED_DATA") == "true" {
		if err := Seed(db); err != nil {
			log.Fatalf("failed to seed: %v", err)
		}
	}

	return db
}
