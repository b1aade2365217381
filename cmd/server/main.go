package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"lifeplan/config"
	"lifeplan/database"
	"lifeplan/pkg/clock"
	"lifeplan/pkg/generator"
	"lifeplan/pkg/logger"
	"lifeplan/pkg/middleware"
	"lifeplan/pkg/provider"
	"lifeplan/router"

	// KV store
	kvRepoImp "lifeplan/pkg/kv/repositoryImp"

	// Plan
	planCtrlImp "lifeplan/pkg/plan/controllerImp"
	planRepoImp "lifeplan/pkg/plan/repositoryImp"
	planSvc "lifeplan/pkg/plan/serviceImp"

	// Health
	healthCtrlImp "lifeplan/pkg/health/controllerImp"
)

func main() {
	started := time.Now()

	// 1) Config
	cfg, dotenv, err := config.Load()
	log := logger.New("lifeplan", "info")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	log = logger.New(cfg.ServiceName, cfg.LogLevel)
	log.Info().
		Str("port", cfg.Port).
		Str("db_path", cfg.DBPath).
		Str("environment", cfg.Environment).
		Bool("dotenv", dotenv).
		Msg("configuration loaded")

	// 2) DB (sqlite) + automigrate
	db, err := database.OpenSQLite(cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}

	// 3) Repos/Services/Controllers
	clk := clock.System()
	kv := kvRepoImp.NewSQLite(db)
	pRepo := planRepoImp.New(kv, clk, log.With().Str("component", "plan_store").Logger())
	gen := generator.New(provider.NewMock(), clk)
	pSvc := planSvc.NewPlanService(gen, pRepo, clk, log.With().Str("component", "plan_service").Logger())
	plCtrl := planCtrlImp.NewPlanCtrl(pSvc)
	hCtrl := healthCtrlImp.NewHealthCtrl(started, map[string]healthCtrlImp.Check{
		"database": healthCtrlImp.DBCheck(db),
	})

	// 4) Echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.RequestID())
	e.Use(middleware.RequestLogger(log))
	e.Use(middleware.Context(log))
	if _, err := os.Stat(cfg.StaticDir); err == nil {
		e.Static("/static", cfg.StaticDir)
	}

	// 5) Router
	r := router.New(e, plCtrl, hCtrl)

	// 6) Start, stop on SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info().Str("addr", cfg.Addr()).Msg("listening")
		if err := r.Start(cfg.Addr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := r.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	log.Info().Msg("server stopped")
}
