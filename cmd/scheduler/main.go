package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/clockwisehq/workforce-go/config"
	"github.com/clockwisehq/workforce-go/db"
	"github.com/clockwisehq/workforce-go/repositories"
	"github.com/clockwisehq/workforce-go/services"
	"github.com/clockwisehq/workforce-go/workflow"
	"go.uber.org/zap"
)

// The scheduler runs the periodic jobs that do not belong in the API
// process: timesheet reminders for the previous week and the overdue
// invoice sweep.
func main() {
	config.LoadConfig()
	db.Init()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	repos := repositories.New()
	reminders := services.NewReminderService(repos, services.NewHTTPNotifier(), logger)
	invoices := services.NewInvoiceService(repos, services.NewAuditService(repos))

	run := func() {
		lastWeek := workflow.WeekStart(time.Now().AddDate(0, 0, -7))
		result, err := reminders.DispatchMissingTimesheets(lastWeek)
		if err != nil {
			logger.Error("reminder dispatch failed", zap.Error(err))
		} else {
			logger.Info("reminder dispatch done",
				zap.Int("sent", result.SentCount),
				zap.Int("failed", result.FailedCount))
		}

		flipped, err := invoices.MarkOverdueSweep(time.Now())
		if err != nil {
			logger.Error("overdue invoice sweep failed", zap.Error(err))
		} else if flipped > 0 {
			logger.Info("invoices marked overdue", zap.Int("count", flipped))
		}
	}

	run()
	ticker := time.NewTicker(24 * time.Hour)
	defer ticker.Stop()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	for {
		select {
		case <-ticker.C:
			run()
		case <-sigChan:
			logger.Info("Shutdown signal")
			return
		}
	}
}
