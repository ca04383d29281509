package util

import (
	"path/filepath"
	"testing"
)

func TestDataDirHonoursXDG(t *testing.T) {
	base := t.TempDir()
	t.Setenv("XDG_DATA_HOME", base)
	if got := DataDir("cantieri"); got != filepath.Join(base, "cantieri") {
		t.Fatalf("DataDir = %q", got)
	}
}

func TestReportsDir(t *testing.T) {
	docs := t.TempDir()
	t.Setenv("XDG_DOCUMENTS_DIR", docs)
	if got := ReportsDir("cantieri"); got != filepath.Join(docs, "CANTIERI") {
		t.Fatalf("ReportsDir = %q", got)
	}
}

func TestParseUserDir(t *testing.T) {
	data := "# comment\nXDG_DESKTOP_DIR=\"$HOME/Desktop\"\nXDG_DOCUMENTS_DIR=\"$HOME/Documenti\"\n"
	if got := parseUserDir(data, "XDG_DOCUMENTS_DIR"); got != "$HOME/Documenti" {
		t.Fatalf("parseUserDir = %q", got)
	}
	if got := parseUserDir(data, "XDG_MUSIC_DIR"); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
}

func TestExpandUser(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	if got := ExpandUser(" ~/file.xlsx "); got != filepath.Join(home, "file.xlsx") {
		t.Fatalf("ExpandUser = %q", got)
	}
	if got := ExpandUser("/abs/file.xlsx"); got != "/abs/file.xlsx" {
		t.Fatalf("ExpandUser changed absolute path: %q", got)
	}
}
