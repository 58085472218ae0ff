package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"biometric-core-api/internal/audit"
	auditrepo "biometric-core-api/internal/audit/repository"
	"biometric-core-api/internal/config"
	"biometric-core-api/internal/db"
	identityhandler "biometric-core-api/internal/identity/handler"
	identityrepo "biometric-core-api/internal/identity/repository"
	identityservice "biometric-core-api/internal/identity/service"
	"biometric-core-api/internal/server"
	otelsetup "biometric-core-api/internal/telemetry/otel"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx := context.Background()
	providers, err := otelsetup.NewProviders(ctx, cfg.OTLPEndpoint, "biometric-core-api", cfg.OTLPInsecure)
	if err != nil {
		log.Fatalf("telemetry: %v", err)
	}
	providers.SetGlobal()

	deps := server.Deps{CORSAllowOrigins: cfg.CORSAllowedOrigins}
	if cfg.DatabaseURL != "" {
		conn, err := db.Open(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("db: %v", err)
		}
		defer conn.Close()

		repo := identityrepo.NewPostgresRepository(conn)
		auditor := audit.NewLogger(auditrepo.NewPostgresRepository(conn))
		deps.Identity = identityhandler.NewServer(
			identityservice.NewEnrollmentService(repo, auditor),
			identityservice.NewVerificationService(repo, auditor),
			repo,
			cfg.MatchThreshold,
		)
		deps.HealthPinger = conn
	} else {
		log.Println("DATABASE_URL not set; serving /health only")
	}

	app := server.New(deps)

	go func() {
		log.Printf("HTTP server listening on %s", cfg.HTTPAddr)
		if err := app.Listen(cfg.HTTPAddr); err != nil {
			log.Fatalf("serve: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("shutting down HTTP server...")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Printf("shutdown: %v", err)
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := providers.Shutdown(shutdownCtx); err != nil {
		log.Printf("telemetry shutdown: %v", err)
	}
	log.Println("HTTP server stopped")
}
