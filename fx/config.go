package fx

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// Config controls the post-processing pipeline. The yaml-tagged fields are
// user configuration; the rest are runtime wiring filled in by the host.
type Config struct {
	// Enabled is the user toggle. A render-target allocation failure
	// forces it off for the rest of the session.
	Enabled bool `yaml:"enabled"`

	// ShaderDir optionally overrides the built-in shader programs with
	// .kage files on disk. Programs not present there fall back to the
	// embedded ones.
	ShaderDir string `yaml:"shader_dir"`

	// BoostAmount is the blur strength applied by GiveBoost.
	BoostAmount float64 `yaml:"boost_amount"`

	// BoostDecay is how fast the boost fades, in units per second.
	BoostDecay float64 `yaml:"boost_decay"`

	// RenderScale scales the capture target relative to the screen.
	// Values below 1 trade sharpness for fill rate. Zero means 1.
	RenderScale float64 `yaml:"render_scale"`

	// Logger receives capability and allocation warnings. Defaults to
	// slog.Default().
	Logger *slog.Logger `yaml:"-"`

	// Blitter overrides the quad compositor. Headless tools and tests
	// substitute one that records instead of drawing.
	Blitter Blitter `yaml:"-"`

	// Allocator overrides render-target allocation.
	Allocator Allocator `yaml:"-"`

	// Capabilities overrides backend detection, to force fallback paths.
	Capabilities *Capabilities `yaml:"-"`
}

// DefaultConfig returns the tuning the effect ships with.
func DefaultConfig() Config {
	return Config{
		Enabled:     true,
		BoostAmount: DefaultBoostAmount,
		BoostDecay:  DefaultBoostDecay,
		RenderScale: 1,
	}
}

// LoadConfig reads a YAML config file. Environment references like ${HOME}
// are expanded before parsing, and absent keys keep their defaults.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("fx: load config: %w", err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), &cfg); err != nil {
		return Config{}, fmt.Errorf("fx: parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the user-facing fields.
func (c Config) Validate() error {
	if c.BoostAmount < 0 {
		return fmt.Errorf("fx: config: boost_amount %v must not be negative", c.BoostAmount)
	}
	if c.BoostDecay < 0 {
		return fmt.Errorf("fx: config: boost_decay %v must not be negative", c.BoostDecay)
	}
	if c.RenderScale < 0 || c.RenderScale > 1 {
		return fmt.Errorf("fx: config: render_scale %v must be between 0 and 1", c.RenderScale)
	}
	if c.ShaderDir != "" {
		info, err := os.Stat(c.ShaderDir)
		if err != nil {
			return fmt.Errorf("fx: config: shader_dir: %w", err)
		}
		if !info.IsDir() {
			return fmt.Errorf("fx: config: shader_dir %s is not a directory", c.ShaderDir)
		}
	}
	return nil
}
