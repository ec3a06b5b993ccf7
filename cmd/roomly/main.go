package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/roomly-dev/roomly/db"
	"github.com/roomly-dev/roomly/internal/auth"
	"github.com/roomly-dev/roomly/internal/router"
	"github.com/sirupsen/logrus"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Warn("No .env file found, relying on process environment")
	}

	if err := auth.InitKeys(); err != nil {
		logrus.WithError(err).Fatal("Failed to load signing keys")
	}

	dsn := os.Getenv("DATABASE_URL")

	if dsn == "" {
		logrus.Fatal("DATABASE_URL environment variable is not set")
	}

	if err := db.ConnectDatabase(dsn); err != nil {
		logrus.WithError(err).Fatal("Failed to connect to database")
	}

	if err := db.MigrateDatabase(); err != nil {
		logrus.WithError(err).Fatal("Failed to migrate database")
	}

	r := router.NewRouter()

	var port string

	if port = os.Getenv("PORT"); port == "" {
		port = "3000"
		logrus.Info("PORT not set, defaulting to 3000")
	}

	if err := r.Run(":" + port); err != nil {
		logrus.WithError(err).Fatal("Failed to start server")
	}
}
