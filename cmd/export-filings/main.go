package main

import (
	"flag"
	"log"
	"os"

	"filing_tracker_go/config"
	"filing_tracker_go/db"
	"filing_tracker_go/models"
	"filing_tracker_go/services"
)

func main() {
	out := flag.String("out", "filings.xlsx", "path of the Excel file to write")
	flag.Parse()

	cfg := config.Load()

	gdb, err := db.Open(cfg.DBPath, cfg.Environment)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close(gdb)

	if err := db.AutoMigrate(gdb, &models.Filing{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	buf, err := services.ExportFilingsExcel(services.NewFilingService(gdb))
	if err != nil {
		log.Fatalf("Export failed: %v", err)
	}

	if err := os.WriteFile(*out, buf.Bytes(), 0o644); err != nil {
		log.Fatalf("Failed to write %s: %v", *out, err)
	}

	log.Printf("Exported filings to %s", *out)
}
