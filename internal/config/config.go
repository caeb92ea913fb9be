// Package config holds the ranking configuration: the per-action weight
// table, the staleness window, the video bonus curve, the diversity decay,
// muted keywords, and the pool cap.
//
// Invalid values fail at load time, before any candidate is processed.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/abelbrown/foryou/internal/scoring"
)

// ValidationError reports an out-of-range configuration value.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config: %s %s", e.Field, e.Reason)
}

// VideoBonusConfig configures the duration bonus curve.
type VideoBonusConfig struct {
	MinSeconds     float64 `json:"min_seconds"`
	MaxSeconds     float64 `json:"max_seconds"`
	Peak           float64 `json:"peak"`
	FalloffSeconds float64 `json:"falloff_seconds"`
}

// Config is the full ranking configuration.
type Config struct {
	// Weights is the per-action weight table.
	Weights scoring.Weights `json:"weights"`

	// StalenessHours is the maximum candidate age. 0 disables the check.
	StalenessHours float64 `json:"staleness_hours"`

	// VideoBonus is the duration bonus curve.
	VideoBonus VideoBonusConfig `json:"video_bonus"`

	// DiversityDecay is the per-repeat author multiplier, in (0,1).
	DiversityDecay float64 `json:"diversity_decay"`

	// MutedKeywords are merged into the viewer's own muted keywords.
	MutedKeywords []string `json:"muted_keywords,omitempty"`

	// PoolCap truncates the merged candidate pool. 0 means no cap.
	PoolCap int `json:"pool_cap"`

	// ScorerWorkers is the scoring fan-out. 0 or 1 scores sequentially.
	ScorerWorkers int `json:"scorer_workers"`
}

// Default returns the documented defaults.
func Default() *Config {
	return &Config{
		Weights:        scoring.DefaultWeights(),
		StalenessHours: 48,
		VideoBonus: VideoBonusConfig{
			MinSeconds:     15,
			MaxSeconds:     60,
			Peak:           0.5,
			FalloffSeconds: 45,
		},
		DiversityDecay: 0.7,
		PoolCap:        0,
		ScorerWorkers:  0,
	}
}

// Validate fails fast on out-of-range values.
func (c *Config) Validate() error {
	if err := c.Weights.Validate(); err != nil {
		return &ValidationError{Field: "weights", Reason: err.Error()}
	}
	if c.StalenessHours < 0 {
		return &ValidationError{Field: "staleness_hours", Reason: "must not be negative"}
	}
	if c.VideoBonus.MinSeconds < 0 {
		return &ValidationError{Field: "video_bonus.min_seconds", Reason: "must not be negative"}
	}
	if c.VideoBonus.MaxSeconds < c.VideoBonus.MinSeconds {
		return &ValidationError{Field: "video_bonus.max_seconds", Reason: "must not be below min_seconds"}
	}
	if c.VideoBonus.Peak < 0 {
		return &ValidationError{Field: "video_bonus.peak", Reason: "must not be negative"}
	}
	if c.VideoBonus.FalloffSeconds <= 0 {
		return &ValidationError{Field: "video_bonus.falloff_seconds", Reason: "must be positive"}
	}
	if c.DiversityDecay <= 0 || c.DiversityDecay >= 1 {
		return &ValidationError{Field: "diversity_decay", Reason: "must be in (0,1)"}
	}
	if c.PoolCap < 0 {
		return &ValidationError{Field: "pool_cap", Reason: "must not be negative"}
	}
	if c.ScorerWorkers < 0 {
		return &ValidationError{Field: "scorer_workers", Reason: "must not be negative"}
	}
	return nil
}

// Path returns the default config file location.
func Path() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".foryou", "config.json")
}

// Load reads and validates the config at path. A missing file yields the
// defaults; a malformed or out-of-range file is an error, never silently
// replaced.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the config as indented JSON.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
