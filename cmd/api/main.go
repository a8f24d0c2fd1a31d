package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/workpulse-hq/attendance-board-go/internal/config"
	appHTTP "github.com/workpulse-hq/attendance-board-go/internal/handler/http"
	"github.com/workpulse-hq/attendance-board-go/internal/pkg/cache"
	"github.com/workpulse-hq/attendance-board-go/internal/pkg/cron"
	"github.com/workpulse-hq/attendance-board-go/internal/pkg/database"
	"github.com/workpulse-hq/attendance-board-go/internal/pkg/jwt"
	"github.com/workpulse-hq/attendance-board-go/internal/pkg/sse"
	"github.com/workpulse-hq/attendance-board-go/internal/repository/postgresql"
	editRequestService "github.com/workpulse-hq/attendance-board-go/internal/service/editrequest"
	liveService "github.com/workpulse-hq/attendance-board-go/internal/service/live"
	reportService "github.com/workpulse-hq/attendance-board-go/internal/service/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL(), cfg.Database.MaxConns, cfg.Database.MinConns)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		os.Exit(1)
	}
	defer db.Close()

	var reportCache cache.Cache
	if cfg.Redis.Addr != "" {
		reportCache, err = cache.NewRedisCache(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			fmt.Println("Error connecting to redis:", err)
			os.Exit(1)
		}
	} else {
		slog.Warn("REDIS_ADDR not set, using in-process cache")
		reportCache = cache.NewMemoryCache()
	}
	defer reportCache.Close()

	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	editRequestRepo := postgresql.NewEditRequestRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret)
	reportSvc := reportService.NewReportService(attendanceRepo, leaveRequestRepo, reportCache)
	editRequestSvc := editRequestService.NewEditRequestService(db, editRequestRepo, attendanceRepo, reportSvc)

	hub := sse.NewHub()
	reconciler := liveService.NewReconciler(attendanceRepo, employeeRepo, cfg.Live.PollInterval)
	reconciler.Start()

	scheduler := cron.NewScheduler()
	cron.NewAttendanceJobs(attendanceRepo, employeeRepo, leaveRequestRepo).RegisterJobs(scheduler)
	scheduler.Start()

	router := appHTTP.NewRouter(appHTTP.RouterConfig{
		Config:             cfg,
		TokenAuth:          jwtService.JWTAuth(),
		LiveHandler:        appHTTP.NewLiveHandler(reconciler, hub, jwtService),
		ReportHandler:      appHTTP.NewReportHandler(reportSvc),
		EditRequestHandler: appHTTP.NewEditRequestHandler(editRequestSvc),
	})

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.App.Port),
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("server starting", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	// Teardown order matters: stop accepting requests first, then the
	// background loops, then close shared resources via defers.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown failed", "error", err)
	}

	scheduler.Stop()
	reconciler.Stop()

	slog.Info("shutdown complete")
}
