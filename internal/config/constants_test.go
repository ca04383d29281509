package config

import "testing"

func TestConstants(t *testing.T) {
	if AppName == "" {
		t.Fatalf("AppName should not be empty")
	}
	if DBFileName == "" {
		t.Fatalf("DBFileName should not be empty")
	}
	if MaxPassphraseAttempts <= 0 {
		t.Fatalf("MaxPassphraseAttempts must be positive")
	}
	if len(TabTitles) != TabCount {
		t.Fatalf("expected a title per tab, got %d", len(TabTitles))
	}
	if TabProgram != 0 || TabFleet != 4 {
		t.Fatalf("unexpected tab constants")
	}
}
