package main

import (
	"flag"
	"log"

	"filing_tracker_go/config"
	"filing_tracker_go/db"
	"filing_tracker_go/services"
)

func main() {
	dest := flag.String("dest", "", "explicit backup destination (default: generated name in BACKUP_DIR)")
	flag.Parse()

	cfg := config.Load()

	gdb, err := db.Open(cfg.DBPath, cfg.Environment)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close(gdb)

	written, err := services.Backup(gdb, cfg.DBPath, cfg.BackupDir, *dest)
	if err != nil {
		log.Fatalf("Backup failed: %v", err)
	}

	log.Printf("Database backed up to %s", written)
}
