package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/miajio/abbrev/pkg/participle"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadMissingReturnsDefault(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Mode != participle.ModePath {
		t.Errorf("Mode = %q, want %q", cfg.Mode, participle.ModePath)
	}
	if cfg.Separator != string(filepath.Separator) {
		t.Errorf("Separator = %q", cfg.Separator)
	}
	if cfg.DB.GCInterval != time.Minute*5 {
		t.Errorf("GCInterval = %v", cfg.DB.GCInterval)
	}
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
mode: rune
separator: ":"
words:
  - content: 前缀树
    frequency: 100
    pos: n
db:
  dir: /tmp/keys
  gc_interval: 30s
log:
  level: debug
  format: json
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Mode != participle.ModeRune || cfg.Separator != ":" {
		t.Errorf("Mode/Separator = %q/%q", cfg.Mode, cfg.Separator)
	}
	if len(cfg.Words) != 1 || cfg.Words[0].Content != "前缀树" || cfg.Words[0].Frequency != 100 {
		t.Errorf("Words = %+v", cfg.Words)
	}
	if cfg.DB.Dir != "/tmp/keys" || cfg.DB.GCInterval != 30*time.Second {
		t.Errorf("DB = %+v", cfg.DB)
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "json" {
		t.Errorf("Log = %+v", cfg.Log)
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "separator: \"|\"\n"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Mode != participle.ModePath || cfg.Separator != "|" || cfg.Log.Level != "info" {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad yaml", "mode: [unclosed"},
		{"unknown mode", "mode: bytes\n"},
		{"empty separator", "separator: \"\"\n"},
		{"bad level", "log:\n  level: loud\n"},
		{"bad format", "log:\n  format: xml\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(writeConfig(t, tt.content)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestTokenizer(t *testing.T) {
	cfg := Default()
	cfg.Separator = "/"
	tok, err := cfg.Tokenizer()
	if err != nil {
		t.Fatalf("Tokenizer() error = %v", err)
	}
	if got := tok.Tokenize("a/b"); len(got) != 2 {
		t.Errorf("Tokenize() = %q", got)
	}
}
