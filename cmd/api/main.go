package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"github.com/hvacdr/service-api/internal/config"
	appointmentHandler "github.com/hvacdr/service-api/internal/handler/appointment"
	customerHandler "github.com/hvacdr/service-api/internal/handler/customer"
	dashboardHandler "github.com/hvacdr/service-api/internal/handler/dashboard"
	"github.com/hvacdr/service-api/internal/handler/health"
	importerHandler "github.com/hvacdr/service-api/internal/handler/importer"
	servicerecordHandler "github.com/hvacdr/service-api/internal/handler/servicerecord"
	"github.com/hvacdr/service-api/internal/middleware"
	"github.com/hvacdr/service-api/internal/repository/postgres"
	"github.com/hvacdr/service-api/internal/router"
	appointmentService "github.com/hvacdr/service-api/internal/service/appointment"
	customerService "github.com/hvacdr/service-api/internal/service/customer"
	dashboardService "github.com/hvacdr/service-api/internal/service/dashboard"
	importerService "github.com/hvacdr/service-api/internal/service/importer"
	servicerecordService "github.com/hvacdr/service-api/internal/service/servicerecord"
	"github.com/hvacdr/service-api/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	db, err := postgres.NewDB(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	appLogger := logger.NewLogger(nil)

	// Repositories
	customerRepo := postgres.NewCustomerRepository(db)
	serviceRecordRepo := postgres.NewServiceRecordRepository(db)
	appointmentRepo := postgres.NewAppointmentRepository(db)
	dashboardRepo := postgres.NewDashboardRepository(db)

	// Services
	customerSvc := customerService.NewService(customerRepo)
	serviceRecordSvc := servicerecordService.NewService(serviceRecordRepo)
	appointmentSvc := appointmentService.NewService(appointmentRepo)
	dashboardSvc := dashboardService.NewService(dashboardRepo)
	importerSvc := importerService.NewService(customerRepo, appLogger)

	// Router
	routerCfg := router.DefaultRouterConfig()
	routerCfg.RateLimitRPS = cfg.RateLimit.RPS
	routerCfg.RateLimitBurst = cfg.RateLimit.Burst
	routerCfg.RequestTimeout = cfg.Server.RequestTimeout
	routerCfg.CORSConfig = middleware.DefaultCORSConfig()

	r := router.NewRouter(routerCfg,
		customerHandler.NewHandler(customerSvc),
		servicerecordHandler.NewHandler(serviceRecordSvc),
		appointmentHandler.NewHandler(appointmentSvc),
		dashboardHandler.NewHandler(dashboardSvc),
		importerHandler.NewHandler(importerSvc, cfg.Import.SampleDataPath),
		health.NewHandler(db),
	)
	r.Setup()

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: r.Engine(),
	}

	go func() {
		log.Info().Int("port", cfg.Server.Port).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited properly")
}
