package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"filing_tracker_go/config"
	"filing_tracker_go/db"
	"filing_tracker_go/models"
	"filing_tracker_go/services"
	"filing_tracker_go/services/jobs"
)

func main() {
	checkNow := flag.Bool("check-now", false, "run a reminder check immediately after startup")
	flag.Parse()

	// Load configuration
	cfg := config.Load()

	// Initialize database
	gdb, err := db.Open(cfg.DBPath, cfg.Environment)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close(gdb)

	// Run migrations
	if err := db.AutoMigrate(gdb, &models.Filing{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	filings := services.NewFilingService(gdb)
	notifier := services.DetectNotifier()

	scheduler, err := jobs.NewScheduler(filings, notifier, cfg.NotificationTime, cfg.ReminderDaysAhead)
	if err != nil {
		log.Fatalf("Invalid reminder configuration: %v", err)
	}

	if err := scheduler.Start(); err != nil {
		log.Fatalf("Failed to start reminder scheduler: %v", err)
	}
	defer scheduler.Stop()

	if *checkNow {
		scheduler.RunNow()
	}

	// Block until the process is asked to stop
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down")
}
