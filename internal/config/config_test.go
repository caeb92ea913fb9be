package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultValidates(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("Default() should validate, got %v", err)
	}
}

func TestValidateRejectsOutOfRange(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative staleness", func(c *Config) { c.StalenessHours = -1 }},
		{"negative weight", func(c *Config) { c.Weights.Like = -0.5 }},
		{"decay zero", func(c *Config) { c.DiversityDecay = 0 }},
		{"decay one", func(c *Config) { c.DiversityDecay = 1 }},
		{"decay above one", func(c *Config) { c.DiversityDecay = 1.3 }},
		{"inverted bonus window", func(c *Config) { c.VideoBonus.MaxSeconds = 5 }},
		{"negative peak", func(c *Config) { c.VideoBonus.Peak = -0.1 }},
		{"zero falloff", func(c *Config) { c.VideoBonus.FalloffSeconds = 0 }},
		{"negative pool cap", func(c *Config) { c.PoolCap = -1 }},
		{"negative workers", func(c *Config) { c.ScorerWorkers = -2 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Errorf("Validate() = %v, want ValidationError", err)
			}
		})
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("Load of missing file should default, got %v", err)
	}
	if cfg.DiversityDecay != 0.7 {
		t.Errorf("DiversityDecay = %g, want default 0.7", cfg.DiversityDecay)
	}
}

func TestLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	cfg := Default()
	cfg.StalenessHours = 12
	cfg.MutedKeywords = []string{"crypto"}
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if loaded.StalenessHours != 12 {
		t.Errorf("StalenessHours = %g, want 12", loaded.StalenessHours)
	}
	if len(loaded.MutedKeywords) != 1 || loaded.MutedKeywords[0] != "crypto" {
		t.Errorf("MutedKeywords = %v, want [crypto]", loaded.MutedKeywords)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"staleness_hours": -5}`), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Errorf("Load of invalid config = %v, want ValidationError", err)
	}
}

func TestLoadRejectsMalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{not json`), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load of malformed JSON should fail, not fall back to defaults")
	}
}

func TestPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"pool_cap": 100}`), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.PoolCap != 100 {
		t.Errorf("PoolCap = %d, want 100", cfg.PoolCap)
	}
	if cfg.Weights.Reply != 2.0 {
		t.Errorf("unset weights should keep defaults, Reply = %g", cfg.Weights.Reply)
	}
}
