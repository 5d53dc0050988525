package app

import (
	"os"
	"strconv"

	"go-vms/internal/notification"
	"go-vms/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func BuildApp(router *gin.Engine) error {
	// 1. Setup Infrastructure
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
		return err
	}
	zap.L().Info("Database connection established")

	redisClient, err := connection.ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		return err
	}
	zap.L().Info("Redis connection established")

	smtpPort, _ := strconv.Atoi(os.Getenv("SMTP_PORT"))
	mailer := notification.NewSMTPMailer(notification.SMTPConfig{
		Host: os.Getenv("SMTP_HOST"),
		Port: smtpPort,
		User: os.Getenv("SMTP_USER"),
		Pass: os.Getenv("SMTP_PASS"),
		From: os.Getenv("SMTP_FROM"),
	})

	// Register Modules & Routes
	return registerModules(router, db, redisClient, mailer)
}
