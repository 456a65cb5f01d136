package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/dogshit1234/whatsapp-glass-bot-v2/internal/config"
	"github.com/dogshit1234/whatsapp-glass-bot-v2/internal/handler"
	"github.com/dogshit1234/whatsapp-glass-bot-v2/internal/ledger"
	"github.com/dogshit1234/whatsapp-glass-bot-v2/internal/service"
	"github.com/dogshit1234/whatsapp-glass-bot-v2/internal/worker"
)

func main() {
	cfg := config.New()

	if cfg.AppsScriptURL == "" {
		slog.Error("APPS_SCRIPT_URL is not set")
		os.Exit(1)
	}

	ledgerClient := ledger.NewClient(cfg.AppsScriptURL, cfg.LedgerTimeout)
	orderSvc := service.NewOrderService(ledgerClient)
	prober := worker.NewProber(ledgerClient)

	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/api/health", handler.HealthHandler(prober.Healthy))
	r.Get("/api/text_health", handler.TextHealthHandler())
	r.Post("/api/whatsapp_in", handler.WhatsAppInHandler(orderSvc))
	r.Get("/api/orders", handler.OrdersHandler(orderSvc))

	srv := &http.Server{
		Addr:         cfg.RunAddress,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 60 * time.Second,
	}

	ctx, cancel := context.WithCancel(context.Background())
	go prober.Start(ctx)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	slog.Info("starting server", "addr", cfg.RunAddress, "sheet", cfg.SheetName)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed", "error", err)
		}
	}()

	<-quit
	slog.Info("shutting down...")

	cancel() // stop prober
	ctxShut, cancelShut := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShut()

	if err := srv.Shutdown(ctxShut); err != nil {
		slog.Error("server shutdown failed", "error", err)
	}

	slog.Info("server stopped")
}
