package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// isolate points HOME and the working directory at empty temp dirs so the
// search path only finds what the test writes.
func isolate(t *testing.T) (home, wd string) {
	t.Helper()
	home = t.TempDir()
	wd = t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(wd)
	return home, wd
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("MkdirAll() failed: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
}

func TestLoadSolitaireEmbeddedDefault(t *testing.T) {
	isolate(t)

	cfg, err := LoadSolitaire("")
	if err != nil {
		t.Fatalf("LoadSolitaire() failed: %v", err)
	}
	if cfg != DefaultSolitaireConfig() {
		t.Errorf("LoadSolitaire() = %+v, want %+v", cfg, DefaultSolitaireConfig())
	}
}

func TestLoadSolitaireCustomPath(t *testing.T) {
	_, wd := isolate(t)
	path := filepath.Join(wd, "custom.yaml")
	writeFile(t, path, "draw_count: 3\nscoring:\n  reveal: 0\n")

	cfg, err := LoadSolitaire(path)
	if err != nil {
		t.Fatalf("LoadSolitaire() failed: %v", err)
	}
	if cfg.DrawCount != 3 {
		t.Errorf("DrawCount = %d, want 3", cfg.DrawCount)
	}
	if cfg.Scoring.Reveal != 0 {
		t.Errorf("Scoring.Reveal = %d, want 0", cfg.Scoring.Reveal)
	}
	// Omitted keys keep defaults
	if cfg.Scoring.Foundation != 10 {
		t.Errorf("Scoring.Foundation = %d, want 10", cfg.Scoring.Foundation)
	}
}

func TestLoadSolitaireCustomPathErrors(t *testing.T) {
	_, wd := isolate(t)

	if _, err := LoadSolitaire(filepath.Join(wd, "missing.yaml")); err == nil {
		t.Error("LoadSolitaire() with missing file should fail")
	}

	bad := filepath.Join(wd, "bad.yaml")
	writeFile(t, bad, "draw_count: 2\n")
	_, err := LoadSolitaire(bad)
	if !errors.Is(err, ErrInvalidDrawMode) {
		t.Errorf("LoadSolitaire() error = %v, want ErrInvalidDrawMode", err)
	}
}

func TestLoadSolitaireSearchOrder(t *testing.T) {
	home, wd := isolate(t)

	writeFile(t, filepath.Join(wd, "configs", "solitaire.yaml"), "draw_count: 3\n")
	cfg, err := LoadSolitaire("")
	if err != nil {
		t.Fatalf("LoadSolitaire() failed: %v", err)
	}
	if cfg.DrawCount != 3 {
		t.Errorf("local config: DrawCount = %d, want 3", cfg.DrawCount)
	}

	// User config wins over local config
	writeFile(t, filepath.Join(home, ".solitaire", "configs", "solitaire.yaml"), "draw_count: 1\nscoring:\n  foundation: 15\n")
	cfg, err = LoadSolitaire("")
	if err != nil {
		t.Fatalf("LoadSolitaire() failed: %v", err)
	}
	if cfg.DrawCount != 1 || cfg.Scoring.Foundation != 15 {
		t.Errorf("user config: got %+v, want draw 1 and foundation 15", cfg)
	}
}

func TestLoadSolitaireSkipsInvalidSearchPathFile(t *testing.T) {
	_, wd := isolate(t)
	writeFile(t, filepath.Join(wd, "configs", "solitaire.yaml"), "scoring:\n  foundation: -1\n")

	cfg, err := LoadSolitaire("")
	if err != nil {
		t.Fatalf("LoadSolitaire() failed: %v", err)
	}
	if cfg != DefaultSolitaireConfig() {
		t.Errorf("LoadSolitaire() = %+v, want defaults", cfg)
	}
}

func TestParseDrawMode(t *testing.T) {
	tests := []struct {
		n       int
		want    DrawMode
		wantErr bool
	}{
		{1, DrawOne, false},
		{3, DrawThree, false},
		{0, 0, true},
		{2, 0, true},
		{-3, 0, true},
	}

	for _, tc := range tests {
		got, err := ParseDrawMode(tc.n)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseDrawMode(%d) error = %v, wantErr %v", tc.n, err, tc.wantErr)
		}
		if got != tc.want {
			t.Errorf("ParseDrawMode(%d) = %d, want %d", tc.n, got, tc.want)
		}
	}
}

func TestApplyDrawMode(t *testing.T) {
	cfg := DefaultSolitaireConfig()
	ApplyDrawMode(&cfg, DrawThree)
	if cfg.DrawCount != 3 {
		t.Errorf("DrawCount = %d, want 3", cfg.DrawCount)
	}
}
