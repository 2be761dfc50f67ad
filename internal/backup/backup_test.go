package backup

import (
	"os"
	"path/filepath"
	"testing"
)

func setupStateFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "frame.json")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write state file: %v", err)
	}
	return path
}

func TestCreateBackup(t *testing.T) {
	statePath := setupStateFile(t, `{"version":1}`)
	manager := NewManager(statePath)

	backupPath, err := manager.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup() failed: %v", err)
	}

	data, err := os.ReadFile(backupPath)
	if err != nil {
		t.Fatalf("failed to read backup: %v", err)
	}
	if string(data) != `{"version":1}` {
		t.Errorf("backup content mismatch: %s", data)
	}
}

func TestCreateBackup_MissingState(t *testing.T) {
	manager := NewManager(filepath.Join(t.TempDir(), "missing.json"))
	if _, err := manager.CreateBackup(); err == nil {
		t.Error("expected error when state file is missing")
	}
}

func TestListBackups(t *testing.T) {
	statePath := setupStateFile(t, `{"version":1}`)
	manager := NewManager(statePath)

	if backups, err := manager.ListBackups(); err != nil || len(backups) != 0 {
		t.Errorf("expected no backups initially, got %d (err %v)", len(backups), err)
	}

	if _, err := manager.CreateBackup(); err != nil {
		t.Fatalf("CreateBackup() failed: %v", err)
	}

	backups, err := manager.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups() failed: %v", err)
	}
	if len(backups) != 1 {
		t.Fatalf("expected 1 backup, got %d", len(backups))
	}
	if backups[0].Size == 0 {
		t.Error("expected non-zero backup size")
	}
}

func TestRestoreBackup(t *testing.T) {
	statePath := setupStateFile(t, `{"version":1,"state":"old"}`)
	manager := NewManager(statePath)

	backupPath, err := manager.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup() failed: %v", err)
	}

	// Mutate the live state, then restore
	if err := os.WriteFile(statePath, []byte(`{"version":1,"state":"new"}`), 0600); err != nil {
		t.Fatalf("failed to overwrite state: %v", err)
	}

	if err := manager.RestoreBackup(backupPath); err != nil {
		t.Fatalf("RestoreBackup() failed: %v", err)
	}

	data, err := os.ReadFile(statePath)
	if err != nil {
		t.Fatalf("failed to read restored state: %v", err)
	}
	if string(data) != `{"version":1,"state":"old"}` {
		t.Errorf("restore did not bring back old state: %s", data)
	}
}

func TestRestoreBackup_MissingBackup(t *testing.T) {
	statePath := setupStateFile(t, `{}`)
	manager := NewManager(statePath)

	if err := manager.RestoreBackup(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("expected error restoring a missing backup")
	}
}
