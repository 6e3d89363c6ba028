package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// clearEnv blanks the variables Load reads; viper ignores empty values.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"PORT", "GIN_MODE", "CONTACT_DELAY", "SCROLL_OFFSET", "RESUME_FILE"} {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.GinMode != "debug" {
		t.Errorf("GinMode = %q, want debug", cfg.GinMode)
	}
	if cfg.ContactDelay != time.Second {
		t.Errorf("ContactDelay = %v, want 1s", cfg.ContactDelay)
	}
	if cfg.ScrollOffset != 100 {
		t.Errorf("ScrollOffset = %v, want 100", cfg.ScrollOffset)
	}
	if cfg.ResumeFile != "" {
		t.Errorf("ResumeFile = %q, want empty", cfg.ResumeFile)
	}
	if cfg.Addr() != ":8080" {
		t.Errorf("Addr = %q", cfg.Addr())
	}
}

func TestLoadFromFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "portfolio.yaml")
	yaml := "port: \"9000\"\ngin_mode: release\ncontact_delay: 250ms\n"
	if err := os.WriteFile(path, []byte(yaml), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "9000" {
		t.Errorf("Port = %q, want 9000", cfg.Port)
	}
	if cfg.GinMode != "release" {
		t.Errorf("GinMode = %q, want release", cfg.GinMode)
	}
	if cfg.ContactDelay != 250*time.Millisecond {
		t.Errorf("ContactDelay = %v, want 250ms", cfg.ContactDelay)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "3000")
	t.Setenv("CONTACT_DELAY", "2s")
	t.Setenv("SCROLL_OFFSET", "80")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "3000" {
		t.Errorf("Port = %q, want 3000", cfg.Port)
	}
	if cfg.ContactDelay != 2*time.Second {
		t.Errorf("ContactDelay = %v, want 2s", cfg.ContactDelay)
	}
	if cfg.ScrollOffset != 80 {
		t.Errorf("ScrollOffset = %v, want 80", cfg.ScrollOffset)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"valid", Config{Port: "8080", GinMode: "release"}, false},
		{"missing port", Config{GinMode: "debug"}, true},
		{"bad mode", Config{Port: "8080", GinMode: "verbose"}, true},
		{"negative delay", Config{Port: "8080", GinMode: "test", ContactDelay: -time.Second}, true},
		{"negative offset", Config{Port: "8080", GinMode: "test", ScrollOffset: -1}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
