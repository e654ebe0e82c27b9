package blob

import (
	"strings"
	"testing"
)

func TestNewStorageKey_Shape(t *testing.T) {
	userID := "4e1f2a6c-0000-0000-0000-000000000020"

	key := NewStorageKey(userID)

	if !strings.HasPrefix(key, "documents/"+userID+"/") {
		t.Errorf("expected key under documents/%s/, got %q", userID, key)
	}
	if parts := strings.Split(key, "/"); len(parts) != 6 {
		t.Errorf("expected 6 path segments, got %d in %q", len(parts), key)
	}
}

func TestNewStorageKey_Unique(t *testing.T) {
	a := NewStorageKey("u-1")
	b := NewStorageKey("u-1")
	if a == b {
		t.Error("expected distinct keys for consecutive uploads")
	}
}
