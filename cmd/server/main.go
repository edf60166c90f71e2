package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"portfolio-backend/internal/config"
	"portfolio-backend/internal/handlers"
	"portfolio-backend/internal/router"
	"portfolio-backend/internal/services"
	"portfolio-backend/internal/upstream"
)

func main() {
	log.Println("🚀 Starting Portfolio Backend...")

	// ──── Step 1: Load Environment Variables ────
	cfg := config.Load()
	log.Println("✓ Environment variables loaded")

	// ──── Step 2: Initialize Chat Upstream ────
	responder, closeUpstream, err := newResponder(cfg)
	if err != nil {
		log.Fatalf("✗ Chat upstream initialization failed: %v", err)
	}
	defer closeUpstream()
	log.Printf("✓ Chat upstream ready (%s)", cfg.ChatProvider)

	// ──── Initialize Services ────
	emailService := services.NewEmailService(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPFrom, cfg.ContactTo)

	// ──── Initialize Handlers ────
	chatHandler := handlers.NewChatHandler(responder, cfg.DialogflowLanguage)
	contactHandler := handlers.NewContactHandler(emailService)

	// ──── Step 3: Start HTTP Server ────
	r := router.New(chatHandler, contactHandler, cfg.FrontendURL)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.UpstreamTimeout + 10*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}()

	log.Printf("✓ Portfolio Backend ready on http://localhost:%s", cfg.Port)
	log.Printf("  Chat:    POST http://localhost:%s/api/chat", cfg.Port)
	log.Printf("  Contact: POST http://localhost:%s/api/contact", cfg.Port)

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}
}

// newResponder builds the one upstream implementation the config
// selects. The returned close func releases upstream connections on
// shutdown; for client-less upstreams it is a no-op.
func newResponder(cfg *config.Config) (upstream.Responder, func(), error) {
	noop := func() {}

	switch cfg.ChatProvider {
	case config.ProviderOpenAI:
		return upstream.NewOpenAIResponder(cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.UpstreamTimeout), noop, nil

	case config.ProviderHuggingFace:
		return upstream.NewHuggingFaceResponder(cfg.HuggingFaceModelURL, cfg.HuggingFaceToken, cfg.UpstreamTimeout), noop, nil

	case config.ProviderDialogflow:
		responder, err := upstream.NewDialogflowResponder(
			context.Background(),
			cfg.DialogflowProjectID,
			cfg.DialogflowCredentialsFile,
			cfg.DialogflowLanguage,
			cfg.UpstreamTimeout,
		)
		if err != nil {
			return nil, nil, err
		}
		return responder, func() { responder.Close() }, nil

	default:
		return nil, nil, fmt.Errorf("unknown chat provider %q", cfg.ChatProvider)
	}
}
