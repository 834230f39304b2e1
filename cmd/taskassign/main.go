package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"taskassign/internal/config"
	"taskassign/internal/notify"
	"taskassign/internal/repository"
	"taskassign/internal/service"
	"taskassign/internal/web"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := repository.NewDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	sqlDB, err := db.DB()
	if err == nil {
		defer sqlDB.Close()
	}

	contributorRepo := repository.NewContributorRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	attendanceRepo := repository.NewAttendanceRepository(db)

	contributorSvc := service.NewContributorService(contributorRepo, taskRepo)
	taskSvc := service.NewTaskService(taskRepo, contributorRepo)
	attendanceSvc := service.NewAttendanceService(attendanceRepo, contributorRepo)
	dashboardSvc := service.NewDashboardService(taskRepo, contributorRepo)

	server, err := web.NewServer(contributorSvc, taskSvc, attendanceSvc, dashboardSvc)
	if err != nil {
		log.Fatalf("server: %v", err)
	}

	if cfg.DigestTime != "" {
		digestSvc := service.NewDigestService(taskRepo)

		var telegram *notify.Telegram
		if cfg.TelegramToken != "" {
			telegram, err = notify.NewTelegram(cfg.TelegramToken, cfg.TelegramChatID)
			if err != nil {
				log.Fatalf("telegram: %v", err)
			}
		}

		scheduler := service.NewSchedulerService(time.Local)
		if _, err := scheduler.ScheduleDaily(cfg.DigestTime, func() {
			jobCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			sendDigest(jobCtx, digestSvc, telegram)
		}); err != nil {
			log.Fatalf("schedule digest: %v", err)
		}
		scheduler.Start()
		defer scheduler.Stop()
	}

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           server.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("[error] shutdown: %v", err)
		}
	}()

	log.Printf("[info] listening on %s", cfg.HTTPAddr)
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("server stopped with error: %v", err)
	}
	log.Println("Shutdown complete.")
}

func sendDigest(ctx context.Context, digestSvc *service.DigestService, telegram *notify.Telegram) {
	summary, err := digestSvc.Summary(ctx, time.Now())
	if err != nil {
		log.Printf("[error] digest: %v", err)
		return
	}
	if summary == "" {
		return
	}
	if telegram == nil {
		log.Printf("[info] digest:\n%s", summary)
		return
	}
	if err := telegram.Send(summary); err != nil {
		log.Printf("[error] digest: %v", err)
	}
}
