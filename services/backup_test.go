package services

import (
	"path/filepath"
	"strings"
	"testing"

	"filing_tracker_go/db"
	"filing_tracker_go/models"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestBackup_GeneratedName(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "filings.db")

	gdb, err := db.Open(dbPath, "development")
	assert.NoError(t, err)
	defer db.Close(gdb)
	assert.NoError(t, db.AutoMigrate(gdb, &models.Filing{}))

	svc := NewFilingService(gdb)
	_, err = svc.Add("BAK-1", "2025-05-01", "keep me")
	assert.NoError(t, err)

	backupDir := filepath.Join(dir, "backups")
	written, err := Backup(gdb, dbPath, backupDir, "")
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(filepath.Base(written), "filings_backup_"))
	assert.Equal(t, backupDir, filepath.Dir(written))

	// The copy is a usable database containing the record
	restored, err := gorm.Open(sqlite.Open(written), &gorm.Config{})
	assert.NoError(t, err)
	var count int64
	assert.NoError(t, restored.Model(&models.Filing{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestBackup_ExplicitDestination(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "filings.db")

	gdb, err := db.Open(dbPath, "development")
	assert.NoError(t, err)
	defer db.Close(gdb)
	assert.NoError(t, db.AutoMigrate(gdb, &models.Filing{}))

	dest := filepath.Join(dir, "copy.db")
	written, err := Backup(gdb, dbPath, "", dest)
	assert.NoError(t, err)
	assert.Equal(t, dest, written)
}

func TestBackup_MissingSource(t *testing.T) {
	dir := t.TempDir()

	_, err := Backup(nil, filepath.Join(dir, "absent.db"), dir, "")
	assert.Error(t, err)
}
