package main

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	_ "github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"veggo/cmd"
	httpin "veggo/internal/adapters/in/http"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB, err := openDB(configs)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err = cmd.AutoMigrate(gormDB); err != nil {
		log.Fatalf("failed to migrate schema: %v", err)
	}

	root, err := cmd.NewCompositionRoot(configs, gormDB, logger)
	if err != nil {
		log.Fatalf("failed to build composition root: %v", err)
	}

	jobManager := root.JobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(root, configs, logger)
}

func openDB(configs cmd.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	sqlDB, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}

	return gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
}

func startWebServer(root *cmd.CompositionRoot, configs cmd.Config, logger *slog.Logger) {
	server := httpin.NewServer(
		root.HTTPHandlers(),
		root.TokenIssuer(),
		httpin.AdminCredentials{
			Email:    configs.AdminEmail,
			Password: configs.AdminPassword,
		},
		logger,
	)

	e := echo.New()
	e.Use(middleware.Recover())
	httpin.RegisterRoutes(e, server, httpin.NewAuthenticator(root.TokenIssuer()))

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)))
}

func getConfigs() cmd.Config {
	// Missing .env is fine in containers, where everything arrives via
	// real environment variables.
	_ = godotenv.Load(".env")

	return cmd.Config{
		HTTPPort:   envOr("HTTP_PORT", "8080"),
		DBHost:     envOr("DB_HOST", "localhost"),
		DBPort:     envOr("DB_PORT", "5432"),
		DBUser:     envOr("DB_USER", "postgres"),
		DBPassword: envOr("DB_PASSWORD", "postgres"),
		DBName:     envOr("DB_NAME", "veggo"),
		DBSslMode:  envOr("DB_SSLMODE", "disable"),

		TokenSecret:   os.Getenv("TOKEN_SECRET"),
		AdminEmail:    envOr("ADMIN_EMAIL", "admin@veggo.local"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),

		CancelWindowMinutes: envInt("CANCEL_WINDOW_MINUTES", 5),
		StoreLat:            envFloat("STORE_LAT", 28.6139),
		StoreLng:            envFloat("STORE_LNG", 77.2090),
		RoutingBaseURL:      os.Getenv("ROUTING_BASE_URL"),

		SMTPHost:     envOr("SMTP_HOST", "localhost"),
		SMTPPort:     envInt("SMTP_PORT", 587),
		SMTPFrom:     envOr("SMTP_FROM", "orders@veggo.local"),
		SMTPUsername: os.Getenv("SMTP_USERNAME"),
		SMTPPassword: os.Getenv("SMTP_PASSWORD"),

		PublicBaseURL: envOr("PUBLIC_BASE_URL", "http://localhost:8080"),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Fatalf("invalid value for %s: %v", key, err)
	}
	return n
}

func envFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Fatalf("invalid value for %s: %v", key, err)
	}
	return f
}
