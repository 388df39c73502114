// Package main is the entry point for the API server.
package main

import (
	"context"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kolecko-ai/travel-assistant/internal/catalog"
	"github.com/kolecko-ai/travel-assistant/internal/config"
	"github.com/kolecko-ai/travel-assistant/internal/engine"
	"github.com/kolecko-ai/travel-assistant/internal/handler"
	"github.com/kolecko-ai/travel-assistant/internal/middleware"
	"github.com/kolecko-ai/travel-assistant/internal/service"
	"github.com/kolecko-ai/travel-assistant/pkg/logger"
	"github.com/kolecko-ai/travel-assistant/pkg/tracing"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize logger
	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()
	logger.SetGlobal(log)

	log.Info("starting API server")

	// Initialize tracing if enabled
	ctx := context.Background()
	if cfg.TracingEnabled {
		tp, err := tracing.InitTracer(ctx, "travel-assistant", cfg.TracingEndpoint)
		if err != nil {
			log.Warn("failed to initialize tracing", zap.Error(err))
		} else {
			defer tracing.Shutdown(ctx, tp)
		}
	}

	// Offer catalog
	deals := catalog.NewDealStore(rand.New(rand.NewSource(time.Now().UnixNano())))
	activities := catalog.NewActivityStore()

	// Initialize services. Each conversation gets its own engine so reply
	// variation state never bleeds between sessions.
	newEngine := func() *engine.Engine {
		return engine.New(deals, activities, cfg.DealsPerReply, rand.New(rand.NewSource(time.Now().UnixNano())))
	}
	conversationSvc := service.NewConversationService(newEngine, log)
	chatSvc := service.NewChatService(conversationSvc, service.TypingDelays{
		SearchBase:  cfg.TypingDelaySearch,
		DefaultBase: cfg.TypingDelayDefault,
		Jitter:      cfg.TypingDelayJitter,
	}, rand.New(rand.NewSource(time.Now().UnixNano())), log)

	// Initialize handlers
	healthHandler := handler.NewHealthHandler(deals)
	conversationHandler := handler.NewConversationHandler(conversationSvc, log)
	chatHandler := handler.NewChatHandler(chatSvc, log)
	streamHandler := handler.NewStreamHandler(chatSvc, conversationSvc, log)

	// Create router
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logging(log))
	r.Use(middleware.SecurityHeaders)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.CORS())

	// Health endpoints (no auth required)
	r.Get("/health", healthHandler.Health)
	r.Get("/ready", healthHandler.Ready)

	// Metrics endpoint
	r.Handle("/metrics", promhttp.Handler())

	// API routes with authentication
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWTSecret))
		r.Use(middleware.RateLimit(cfg.RateLimitRequests, cfg.RateLimitWindow))

		// Conversations
		r.Route("/conversations", func(r chi.Router) {
			r.Post("/", conversationHandler.Create)
			r.Get("/", conversationHandler.List)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", conversationHandler.Get)
				r.Put("/", conversationHandler.Update)
				r.Delete("/", conversationHandler.Delete)

				// Dialogue
				r.Get("/messages", chatHandler.List)
				r.Post("/messages", chatHandler.Send)
				r.Get("/state", chatHandler.State)
				r.Post("/feedback", chatHandler.Feedback)
				r.Post("/disclaimer", chatHandler.Disclaimer)

				// Streaming
				r.Get("/stream", streamHandler.Stream)
			})
		})
	})

	// Create HTTP server. WriteTimeout stays zero: SSE connections must
	// outlive any fixed write deadline.
	server := &http.Server{
		Addr:        ":" + cfg.ServerPort,
		Handler:     r,
		ReadTimeout: cfg.ServerReadTimeout,
		IdleTimeout: 120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info("server listening", zap.String("port", cfg.ServerPort))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", zap.Error(err))
			os.Exit(1)
		}
	}()

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("server forced to shutdown", zap.Error(err))
	}

	log.Info("server stopped")
}
