package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/hoangdieu/wedding-invitation/db"
	"github.com/hoangdieu/wedding-invitation/internal/auth"
	"github.com/hoangdieu/wedding-invitation/internal/router"
	"github.com/hoangdieu/wedding-invitation/internal/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Warn("No .env file found, relying on environment")
	}

	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	if err := auth.InitJWTSecret(); err != nil {
		logrus.Fatalf("Failed to initialize JWT secret: %v", err)
	}

	dsn := os.Getenv("DATABASE_URL")

	if dsn == "" {
		logrus.Fatal("DATABASE_URL environment variable is not set")
	}

	if err := db.ConnectDatabase(dsn); err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.MigrateDatabase(); err != nil {
		logrus.Fatalf("Failed to migrate database: %v", err)
	}

	err := services.EnsureRootUser(db.DB, os.Getenv("ROOT_USERNAME"), os.Getenv("ROOT_PASSWORD"))

	if err != nil {
		logrus.Fatalf("Failed to ensure root user: %v", err)
	}

	r := router.NewRouter()

	port := os.Getenv("PORT")

	if port == "" {
		port = "8000"
		logrus.Info("PORT not set, defaulting to 8000")
	}

	if err := r.Run(":" + port); err != nil {
		logrus.Fatalf("Failed to start server: %v", err)
	}
}
