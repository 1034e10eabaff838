package main

import (
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"airport-nav-service/internal/adapters/cache"
	"airport-nav-service/internal/adapters/email"
	"airport-nav-service/internal/adapters/maps"
	"airport-nav-service/internal/adapters/repositories"
	"airport-nav-service/internal/api"
	"airport-nav-service/internal/config"
	"airport-nav-service/internal/platform/db"
	"airport-nav-service/internal/platform/logger"
	"airport-nav-service/internal/ports"
)

// main is the application composition root.
// It wires concrete adapters (Postgres, Redis, ORS, SMTP) behind ports
// and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	zlog, err := logger.New(
		config.Get("LOG_LEVEL", "info"),
		config.Get("LOG_FORMAT", "json"),
		"airport-nav-service",
	)
	if err != nil {
		log.Fatal(err)
	}
	defer zlog.Sync()

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		zlog.Fatal("DATABASE_URL is required")
	}
	orsKey := os.Getenv("ORS_API_KEY")
	if strings.TrimSpace(orsKey) == "" {
		zlog.Fatal("ORS_API_KEY is required")
	}

	database, err := db.Open(databaseURL)
	if err != nil {
		zlog.Fatal("database open failed", zap.Error(err))
	}
	defer database.Close()

	if err := repositories.InitSchema(database); err != nil {
		zlog.Fatal("schema initialization failed", zap.Error(err))
	}

	// The Redis geocode cache is optional: without REDIS_ADDR every
	// geocode lookup goes straight to the provider.
	var geocodeCache *cache.RedisGeocodeCache
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: os.Getenv("REDIS_PASSWORD"),
		})
		ttl, err := time.ParseDuration(config.Get("GEOCODE_CACHE_TTL", "24h"))
		if err != nil {
			zlog.Fatal("invalid GEOCODE_CACHE_TTL", zap.Error(err))
		}
		geocodeCache = cache.NewRedisGeocodeCache(client, ttl)
		defer client.Close()
	}

	distanceCache := cache.NewSQLDistanceCache(database)
	provider, err := maps.NewORSProvider(orsKey, geocodeCache, distanceCache)
	if err != nil {
		zlog.Fatal("maps provider setup failed", zap.Error(err))
	}

	notifier, err := buildNotifier()
	if err != nil {
		zlog.Fatal("smtp notifier setup failed", zap.Error(err))
	}
	if notifier == nil {
		zlog.Warn("SMTP_HOST not set, email notifications disabled")
	}

	repo := repositories.NewPostgresFacilityRepository(database)
	router := api.NewRouter(repo, provider, notifier)

	port := config.Get("PORT", "8080")
	zlog.Info("server listening", zap.String("addr", ":"+port))

	// Timeouts are tuned for cold-cache mapping calls (external API latency).
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	zlog.Fatal("server stopped", zap.Error(srv.ListenAndServe()))
}

// buildNotifier assembles the SMTP notifier from the environment. An
// unset SMTP_HOST disables notifications entirely.
func buildNotifier() (ports.Notifier, error) {
	host := os.Getenv("SMTP_HOST")
	if host == "" {
		return nil, nil
	}

	port, err := strconv.Atoi(config.Get("SMTP_PORT", "587"))
	if err != nil {
		return nil, err
	}

	notifier, err := email.NewSMTPNotifier(email.SMTPConfig{
		Host:       host,
		Port:       port,
		Username:   os.Getenv("SMTP_USERNAME"),
		Password:   os.Getenv("SMTP_PASSWORD"),
		Sender:     os.Getenv("SMTP_SENDER"),
		Receivers:  splitEmails(os.Getenv("RECEIVER_EMAILS")),
		ErrorGroup: splitEmails(os.Getenv("ERROR_GROUP_EMAILS")),
	})
	if err != nil {
		return nil, err
	}
	return notifier, nil
}

func splitEmails(raw string) []string {
	var out []string
	for _, addr := range strings.Split(raw, ",") {
		if addr = strings.TrimSpace(addr); addr != "" {
			out = append(out, addr)
		}
	}
	return out
}
