package main

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	httpadp "aidbridge-backend/internal/adapter/http"
	"aidbridge-backend/internal/adapter/middleware"
	"aidbridge-backend/internal/adapter/repository/mysql"
	"aidbridge-backend/internal/config"
	"aidbridge-backend/internal/infrastructure/cache"
	"aidbridge-backend/internal/infrastructure/db"
	"aidbridge-backend/internal/infrastructure/metrics"
	appuc "aidbridge-backend/internal/usecase/application"
	wfuc "aidbridge-backend/internal/usecase/workflow"
	"aidbridge-backend/internal/workflow"
)

func main() {
	_ = godotenv.Load()

	log := zerolog.New(os.Stdout).With().Timestamp().Str("service", "aidbridge-api").Logger()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid config")
	}
	// the transition and permission tables are fixed data; refuse to boot on
	// an inconsistent edit
	if err := workflow.Validate(); err != nil {
		log.Fatal().Err(err).Msg("workflow tables inconsistent")
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatal().Err(err).Msg("mysql connect failed")
	}
	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatal().Err(err).Msg("redis connect failed")
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	wfMetrics := metrics.NewWorkflow(reg)

	appRepo := mysql.NewApplicationRepository(gdb)
	auditRepo := mysql.NewAuditRepository(gdb)
	txm := mysql.NewGormUoW(gdb)

	appUsecase := appuc.NewUsecase(appRepo, auditRepo, log)
	wfUsecase := wfuc.NewUsecase(txm, wfMetrics, log)

	h := httpadp.NewHandler()
	appHandler := httpadp.NewApplicationHandler(appUsecase)
	wfHandler := httpadp.NewWorkflowHandler(wfUsecase)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())

	e.GET("/health", h.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	api := e.Group("/api/v1", middleware.ActorAuth([]byte(cfg.JWTSecret)))
	idem := middleware.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second)

	api.POST("/applications", appHandler.Create, idem)
	api.GET("/applications", appHandler.List)
	api.GET("/applications/:id", appHandler.Get)
	api.DELETE("/applications/:id", appHandler.Delete)
	api.GET("/applications/:id/audit", appHandler.AuditTrail)
	api.POST("/applications/:id/actions", wfHandler.SubmitAction, idem)

	addr := ":" + cfg.AppPort
	log.Info().Str("addr", addr).Msg("listening")
	if err := e.Start(addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
