package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/rmatrix/internal/glyph"
	"github.com/san-kum/rmatrix/internal/rain"
	"github.com/san-kum/rmatrix/internal/theme"
)

const (
	DefaultDelayMs = 45
	DefaultBackend = "tcell"
	DefaultMode    = "kana"
)

var ErrInvalid = errors.New("config: invalid value")

type Config struct {
	Mode    string     `yaml:"mode"`
	Bold    bool       `yaml:"bold"`
	DelayMs int        `yaml:"delay_ms"`
	Seed    uint64     `yaml:"seed"`
	Backend string     `yaml:"backend"`
	Theme   string     `yaml:"theme"`
	LogFile string     `yaml:"log_file"`
	Rain    RainConfig `yaml:"rain"`
}

type RainConfig struct {
	SpawnDivisor    int     `yaml:"spawn_divisor"`
	TrailMin        int     `yaml:"trail_min"`
	TrailMax        int     `yaml:"trail_max"`
	TrailFromHeight bool    `yaml:"trail_from_height"`
	BoldChance      float64 `yaml:"bold_chance"`
}

func DefaultConfig() *Config {
	return &Config{
		Mode:    DefaultMode,
		Bold:    true,
		DelayMs: DefaultDelayMs,
		Backend: DefaultBackend,
		Theme:   theme.Default.Name,
		Rain: RainConfig{
			SpawnDivisor: rain.DefaultSpawnDivisor,
			TrailMin:     rain.DefaultTrailMin,
			TrailMax:     rain.DefaultTrailMax,
			BoldChance:   rain.DefaultBoldChance,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate rejects values the renderer cannot run with.
func (c *Config) Validate() error {
	if _, err := glyph.ParseMode(c.Mode); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if c.DelayMs <= 0 {
		return fmt.Errorf("%w: delay_ms must be positive, got %d", ErrInvalid, c.DelayMs)
	}
	if c.Backend != "tcell" && c.Backend != "tea" {
		return fmt.Errorf("%w: unknown backend %q", ErrInvalid, c.Backend)
	}
	if !theme.Exists(c.Theme) {
		return fmt.Errorf("%w: unknown theme %q (available: %v)", ErrInvalid, c.Theme, theme.Names())
	}
	if c.Rain.SpawnDivisor <= 0 {
		return fmt.Errorf("%w: spawn_divisor must be positive, got %d", ErrInvalid, c.Rain.SpawnDivisor)
	}
	if !c.Rain.TrailFromHeight && (c.Rain.TrailMin < 0 || c.Rain.TrailMax <= c.Rain.TrailMin) {
		return fmt.Errorf("%w: trail range [%d,%d) is empty", ErrInvalid, c.Rain.TrailMin, c.Rain.TrailMax)
	}
	if c.Rain.BoldChance < 0 || c.Rain.BoldChance > 1 {
		return fmt.Errorf("%w: bold_chance must be in [0,1], got %g", ErrInvalid, c.Rain.BoldChance)
	}
	return nil
}

func (c *Config) GlyphMode() glyph.Mode {
	m, _ := glyph.ParseMode(c.Mode)
	return m
}

func (c *Config) Delay() time.Duration {
	return time.Duration(c.DelayMs) * time.Millisecond
}

func (c *Config) Params() rain.Params {
	return rain.Params{
		SpawnDivisor:    c.Rain.SpawnDivisor,
		TrailMin:        c.Rain.TrailMin,
		TrailMax:        c.Rain.TrailMax,
		TrailFromHeight: c.Rain.TrailFromHeight,
		BoldChance:      c.Rain.BoldChance,
		Bold:            c.Bold,
	}
}

// ParseDelay reads a millisecond delay, falling back to the default when
// the value is not a positive integer.
func ParseDelay(s string) int {
	ms, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || ms <= 0 {
		return DefaultDelayMs
	}
	return ms
}
