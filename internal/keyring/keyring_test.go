package keyring

import (
	"testing"

	gokeyring "github.com/zalando/go-keyring"
)

func TestSetAndGetAPIKey(t *testing.T) {
	// Use mock keyring for testing
	gokeyring.MockInit()

	testKey := "sk-test-1234567890"

	if err := SetAPIKey(testKey); err != nil {
		t.Fatalf("SetAPIKey() failed: %v", err)
	}

	retrieved, err := GetAPIKey()
	if err != nil {
		t.Fatalf("GetAPIKey() failed: %v", err)
	}

	if retrieved != testKey {
		t.Errorf("GetAPIKey() = %q, want %q", retrieved, testKey)
	}
}

func TestSetAPIKeyEmpty(t *testing.T) {
	gokeyring.MockInit()

	if err := SetAPIKey(""); err == nil {
		t.Error("SetAPIKey(\"\") should return an error")
	}
}

func TestGetAPIKeyNotFound(t *testing.T) {
	gokeyring.MockInit()

	// Ensure nothing is stored
	_ = DeleteAPIKey()

	if _, err := GetAPIKey(); err != ErrNotFound {
		t.Errorf("GetAPIKey() error = %v, want %v", err, ErrNotFound)
	}
}

func TestIsAvailable(t *testing.T) {
	gokeyring.MockInit()

	// The mock keyring answers Get calls, so it counts as available
	if !IsAvailable() {
		t.Error("IsAvailable() = false with a working keyring")
	}
}

func TestDeleteAPIKey(t *testing.T) {
	gokeyring.MockInit()

	if err := SetAPIKey("sk-test-delete"); err != nil {
		t.Fatalf("SetAPIKey() failed: %v", err)
	}

	if err := DeleteAPIKey(); err != nil {
		t.Fatalf("DeleteAPIKey() failed: %v", err)
	}

	if _, err := GetAPIKey(); err != ErrNotFound {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}
