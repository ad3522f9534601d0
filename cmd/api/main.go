package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/rusuraluca/apple-health-wrapped/internal/api"
	"github.com/rusuraluca/apple-health-wrapped/internal/auth"
	"github.com/rusuraluca/apple-health-wrapped/internal/config"
	"github.com/rusuraluca/apple-health-wrapped/internal/domain"
	"github.com/rusuraluca/apple-health-wrapped/internal/events"
	"github.com/rusuraluca/apple-health-wrapped/internal/export"
	httptransport "github.com/rusuraluca/apple-health-wrapped/internal/transport/http"
)

func main() {
	cfg := config.Load()

	var announcer events.Announcer = events.NoopAnnouncer{}
	if len(cfg.KafkaBrokers) > 0 {
		kafkaAnnouncer := events.NewKafkaAnnouncer(cfg.KafkaBrokers, cfg.KafkaTopic)
		defer kafkaAnnouncer.Close()
		announcer = kafkaAnnouncer
		log.Printf("summary announcer enabled -> %s", strings.Join(cfg.KafkaBrokers, ","))
	}

	service := domain.NewService(export.NewOpener(), domain.WithAnnouncer(announcer))

	handler := api.NewHandler(service, cfg.MaxUploadBytes)
	mux := http.NewServeMux()
	handler.RegisterRoutes(mux)
	mux.Handle("/metrics", promhttp.Handler())

	// Simple CORS middleware for local dev
	cors := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", "http://localhost:5173")
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}

	// Basic request logger
	logger := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log.Printf("%s %s", r.Method, r.URL.Path)
			next.ServeHTTP(w, r)
		})
	}

	authMiddleware := auth.NewMiddleware(auth.Config{Secret: cfg.JWTSecret, Issuer: cfg.JWTIssuer}, func(r *http.Request) bool {
		return r.URL.Path == "/healthz"
	})

	server := httptransport.NewServer(httptransport.ServerConfig{
		Address:      cfg.HTTPAddress,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}, authMiddleware.Wrap(logger(cors(mux))))

	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("wrapped-service listening on %s", cfg.HTTPAddress)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	<-shutdownCh

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}
}
