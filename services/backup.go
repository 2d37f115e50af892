package services

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Backup copies the store's underlying database file to destPath. When
// destPath is empty a collision-proof name is generated inside backupDir.
// The WAL is checkpointed first so the copy is self-contained. Returns the
// path of the written backup.
func Backup(gdb *gorm.DB, dbPath, backupDir, destPath string) (string, error) {
	if gdb != nil {
		// Fold pending WAL frames into the main database file
		if err := gdb.Exec("PRAGMA wal_checkpoint(TRUNCATE)").Error; err != nil {
			return "", fmt.Errorf("%w: wal checkpoint failed: %v", ErrStorage, err)
		}
	}

	if destPath == "" {
		if err := os.MkdirAll(backupDir, 0o755); err != nil {
			return "", fmt.Errorf("failed to create backup directory: %w", err)
		}
		stem := strings.TrimSuffix(filepath.Base(dbPath), filepath.Ext(dbPath))
		suffix := uuid.New().String()[:8]
		name := fmt.Sprintf("%s_backup_%s_%s.db", stem, time.Now().Format("20060102_150405"), suffix)
		destPath = filepath.Join(backupDir, name)
	}

	source, err := os.Open(dbPath)
	if err != nil {
		return "", fmt.Errorf("%w: cannot open database file: %v", ErrStorage, err)
	}
	defer source.Close()

	dest, err := os.Create(destPath)
	if err != nil {
		return "", fmt.Errorf("failed to create backup file: %w", err)
	}
	defer dest.Close()

	if _, err := io.Copy(dest, source); err != nil {
		return "", fmt.Errorf("failed to write backup: %w", err)
	}

	return destPath, nil
}
