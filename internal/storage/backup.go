package storage

import (
	"fmt"
	"os"
)

const (
	// BackupSuffix is the file extension for backup files
	BackupSuffix = ".bak"
	// MaxBackupCount is the maximum number of backup files to keep
	MaxBackupCount = 3
)

// BackupPath returns the path to a backup of the given snapshot file with
// the given rotation number. Backups are named <snapshot>.bak.N; lower
// numbers are more recent (.bak.1 is the most recent backup).
func BackupPath(storagePath string, n int) string {
	return fmt.Sprintf("%s%s.%d", storagePath, BackupSuffix, n)
}

// rotateBackups shifts existing backup files to make room for a new one.
// It renames .bak.1 -> .bak.2, .bak.2 -> .bak.3, deleting the oldest so
// only MaxBackupCount backups are kept. Missing files are not an error.
func rotateBackups(storagePath string) error {
	oldestPath := BackupPath(storagePath, MaxBackupCount)
	if err := os.Remove(oldestPath); err != nil && !os.IsNotExist(err) {
		return err
	}

	for i := MaxBackupCount - 1; i >= 1; i-- {
		currentPath := BackupPath(storagePath, i)
		nextPath := BackupPath(storagePath, i+1)
		if err := os.Rename(currentPath, nextPath); err != nil && !os.IsNotExist(err) {
			return err
		}
	}

	return nil
}

// CreateBackup copies the current snapshot to .bak.1 after rotating the
// existing backups. If the snapshot doesn't exist yet, no backup is
// created and no error is returned.
func CreateBackup(storagePath string) error {
	if _, err := os.Stat(storagePath); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if err := rotateBackups(storagePath); err != nil {
		return err
	}

	sourceFile, err := os.Open(storagePath)
	if err != nil {
		return err
	}
	defer func() { _ = sourceFile.Close() }()

	destFile, err := os.Create(BackupPath(storagePath, 1))
	if err != nil {
		return err
	}
	defer func() { _ = destFile.Close() }()

	if _, err := destFile.ReadFrom(sourceFile); err != nil {
		return err
	}

	return nil
}

// BackupInfo contains information about a backup file
type BackupInfo struct {
	Number int    // The backup number (1 is most recent)
	Path   string // The full path to the backup file
}

// ListBackups returns available backups of the given snapshot sorted by
// recency. Returns an empty slice if no backups exist.
func ListBackups(storagePath string) []BackupInfo {
	var backups []BackupInfo
	for i := 1; i <= MaxBackupCount; i++ {
		backupPath := BackupPath(storagePath, i)
		if _, err := os.Stat(backupPath); err == nil {
			backups = append(backups, BackupInfo{Number: i, Path: backupPath})
		}
	}
	return backups
}

// RestoreBackup restores a backup to the main snapshot file. A backup of
// the current state is taken first for safety.
func RestoreBackup(storagePath string, backupNum int) error {
	if backupNum < 1 || backupNum > MaxBackupCount {
		return fmt.Errorf("invalid backup number %d, must be between 1 and %d", backupNum, MaxBackupCount)
	}

	backupPath := BackupPath(storagePath, backupNum)
	if _, err := os.Stat(backupPath); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("backup %d does not exist", backupNum)
		}
		return err
	}

	if err := CreateBackup(storagePath); err != nil {
		return err
	}

	sourceFile, err := os.Open(backupPath)
	if err != nil {
		return err
	}
	defer func() { _ = sourceFile.Close() }()

	destFile, err := os.Create(storagePath)
	if err != nil {
		return err
	}
	defer func() { _ = destFile.Close() }()

	if _, err := destFile.ReadFrom(sourceFile); err != nil {
		return err
	}

	return nil
}
