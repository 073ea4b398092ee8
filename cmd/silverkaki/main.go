package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/silverkaki/silverkaki/internal/api"
	"github.com/silverkaki/silverkaki/internal/cli"
	"github.com/silverkaki/silverkaki/internal/db"
)

func main() {
	dbPath := getEnv("DB_PATH", filepath.Join("data", "silverkaki.db"))
	timezone := getEnv("TZ", "Asia/Singapore")

	if len(os.Args) > 1 && os.Args[1] == "reset-demo-data" {
		if err := cli.RunResetDemoDataCommand(dbPath, timezone); err != nil {
			log.Fatalf("reset demo data failed: %v", err)
		}
		return
	}

	location := mustLoadLocation(timezone)
	time.Local = location

	secretKey, err := resolveSecretKey()
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}
	port, err := resolvePort()
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}
	cookieSecure := getEnv("COOKIE_SECURE", "false") == "true"

	database, err := db.OpenSQLite(dbPath)
	if err != nil {
		log.Fatalf("database init failed: %v", err)
	}

	if getEnv("SEED_DEMO_DATA", "true") == "true" {
		if err := db.SeedDemoData(database, time.Now().In(location), location); err != nil {
			log.Fatalf("demo data seed failed: %v", err)
		}
	}

	handler := api.NewHandler(database, secretKey, location, cookieSecure)

	app := fiber.New(fiber.Config{
		AppName:               "SilverKaki",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())

	api.RegisterRoutes(app, handler)

	metricsAddr := getEnv("METRICS_ADDR", ":9091")
	metricsServer := &http.Server{Addr: metricsAddr, Handler: promhttp.Handler()}
	go func() {
		if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("metrics server exited: %v", err)
		}
	}()

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = metricsServer.Shutdown(shutdownCtx)
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Printf("server shutdown failed: %v", err)
		}
	}()

	log.Printf("SilverKaki listening on http://0.0.0.0:%s (db: %s, tz: %s, metrics: %s)", port, dbPath, location.String(), metricsAddr)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}

func resolveSecretKey() (string, error) {
	secret := os.Getenv("SECRET_KEY")
	if secret == "" {
		return "", errors.New("SECRET_KEY is required")
	}
	switch secret {
	case "change_me_in_production", "replace_with_at_least_32_random_characters":
		return "", errors.New("SECRET_KEY uses a placeholder value")
	}
	if len(secret) < 32 {
		return "", errors.New("SECRET_KEY must be at least 32 characters")
	}
	return secret, nil
}

func resolvePort() (string, error) {
	port := getEnv("PORT", "8080")
	value, err := strconv.Atoi(port)
	if err != nil {
		return "", fmt.Errorf("invalid PORT %q: %w", port, err)
	}
	if value < 1 || value > 65535 {
		return "", fmt.Errorf("PORT %d out of range", value)
	}
	return port, nil
}

func mustLoadLocation(name string) *time.Location {
	location, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("invalid TZ %q, falling back to UTC", name)
		return time.UTC
	}
	return location
}

func getEnv(key string, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
