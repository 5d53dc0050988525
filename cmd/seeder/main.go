package main

import (
	"context"
	"os"

	"go-vms/internal/database"
	"go-vms/internal/shared/connection"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	db, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		logger.Fatal("database connection failed", zap.Error(err))
	}

	ctx := context.Background()

	if err := database.Migrate(db); err != nil {
		logger.Fatal("migration failed", zap.Error(err))
	}
	logger.Info("schema migrated")

	if err := database.SeedAll(ctx, db); err != nil {
		logger.Fatal("seeding failed", zap.Error(err))
	}
	logger.Info("seed data loaded")

	if err := database.HashLegacyPasswords(ctx, db); err != nil {
		logger.Fatal("password upgrade failed", zap.Error(err))
	}
	logger.Info("legacy passwords upgraded")
}
