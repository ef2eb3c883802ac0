package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"clinicdesk/docs"
	"clinicdesk/internal/auth"
	"clinicdesk/internal/cache"
	"clinicdesk/internal/config"
	"clinicdesk/internal/db"
	"clinicdesk/internal/handler"
	"clinicdesk/internal/logger"
	"clinicdesk/internal/middleware"
	"clinicdesk/internal/repository"
	"clinicdesk/internal/router"
	"clinicdesk/internal/service"
)

// @title Clinic Desk API
// @version 1.0
// @description Doctor login, patient listings and appointment scheduling for a small clinic.
// @host localhost:5001
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := logger.New(cfg.LogLevel, cfg.IsDev())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gormDB, err := db.NewMySQL(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Error().Err(err).Msg("database init failed")
		return err
	}
	if cfg.ResetDB {
		log.Warn().Msg("RESET_DB=true detected, dropping all tables")
	}
	if err := db.Migrate(gormDB, cfg.ResetDB); err != nil {
		log.Error().Err(err).Msg("auto-migrate failed")
		return err
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB, log)
	defer cacheClient.Close()
	if err := cacheClient.Ping(ctx); err != nil {
		log.Warn().Err(err).Msg("redis unavailable, token revocation disabled")
	}

	// Initialize repositories
	doctorRepo := repository.NewDoctorRepository(gormDB)
	patientRepo := repository.NewPatientRepository(gormDB)
	appointmentRepo := repository.NewAppointmentRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)

	// Initialize services
	authService := service.NewAuthService(doctorRepo, jwtService, tokenStore)
	patientService := service.NewPatientService(patientRepo)
	appointmentService := service.NewAppointmentService(appointmentRepo, time.Local)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	router.Register(e, cfg, log, middleware.NewMetrics("clinicdesk"), jwtService, tokenStore, router.Handlers{
		Auth:        handler.NewAuthHandler(authService),
		Patient:     handler.NewPatientHandler(patientService),
		Appointment: handler.NewAppointmentHandler(appointmentService),
		Health: handler.NewHealthHandler(func(ctx context.Context) error {
			return db.Ping(ctx, gormDB)
		}, log),
	})

	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = strings.TrimPrefix(strings.TrimPrefix(cfg.SwaggerHost, "https://"), "http://")
	}
	log.Info().Str("url", swaggerURL(cfg)).Msg("swagger documentation available")
	if !cfg.AuthRequired {
		log.Warn().Msg("AUTH_REQUIRED is off, clinic routes accept requests without a token")
	}

	return serve(ctx, e, ":"+cfg.ServerPort, gormDB, log)
}

func serve(ctx context.Context, e *echo.Echo, addr string, gormDB *gorm.DB, log zerolog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", addr).Msg("server listening")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			log.Error().Err(err).Msg("server start failed")
		}
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	if sqlDB, err := gormDB.DB(); err == nil {
		_ = sqlDB.Close()
	}
	return nil
}

func swaggerURL(cfg *config.Config) string {
	host := cfg.SwaggerHost
	if host == "" {
		host = "localhost:" + cfg.ServerPort
	}
	if !strings.HasPrefix(host, "http://") && !strings.HasPrefix(host, "https://") {
		host = "http://" + host
	}
	return host + "/swagger/index.html"
}
