package fx_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/postfx/fx"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "postfx.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := fx.DefaultConfig()
	assert.True(t, cfg.Enabled)
	assert.InDelta(t, 2.5, cfg.BoostAmount, 1e-9)
	assert.InDelta(t, 3.5, cfg.BoostDecay, 1e-9)
	assert.InDelta(t, 1, cfg.RenderScale, 1e-9)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
enabled: false
boost_amount: 1.25
boost_decay: 2
render_scale: 0.5
`)
	cfg, err := fx.LoadConfig(path)
	require.NoError(t, err)
	assert.False(t, cfg.Enabled)
	assert.InDelta(t, 1.25, cfg.BoostAmount, 1e-9)
	assert.InDelta(t, 2, cfg.BoostDecay, 1e-9)
	assert.InDelta(t, 0.5, cfg.RenderScale, 1e-9)
}

func TestLoadConfigKeepsDefaultsForAbsentKeys(t *testing.T) {
	path := writeConfig(t, "boost_amount: 4\n")
	cfg, err := fx.LoadConfig(path)
	require.NoError(t, err)
	assert.True(t, cfg.Enabled, "absent keys keep their defaults")
	assert.InDelta(t, 4, cfg.BoostAmount, 1e-9)
	assert.InDelta(t, 3.5, cfg.BoostDecay, 1e-9)
}

func TestLoadConfigExpandsEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("POSTFX_TEST_SHADERS", dir)

	path := writeConfig(t, "shader_dir: ${POSTFX_TEST_SHADERS}\n")
	cfg, err := fx.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, dir, cfg.ShaderDir)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := fx.LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadConfigBadYAML(t *testing.T) {
	path := writeConfig(t, "enabled: [\n")
	_, err := fx.LoadConfig(path)
	assert.Error(t, err)
}

func TestConfigValidate(t *testing.T) {
	file := writeConfig(t, "enabled: true\n")

	tests := []struct {
		name    string
		mut     func(*fx.Config)
		wantErr bool
	}{
		{"defaults", func(c *fx.Config) {}, false},
		{"zero scale", func(c *fx.Config) { c.RenderScale = 0 }, false},
		{"negative amount", func(c *fx.Config) { c.BoostAmount = -0.1 }, true},
		{"negative decay", func(c *fx.Config) { c.BoostDecay = -0.1 }, true},
		{"negative scale", func(c *fx.Config) { c.RenderScale = -0.5 }, true},
		{"scale above one", func(c *fx.Config) { c.RenderScale = 2 }, true},
		{"shader dir missing", func(c *fx.Config) { c.ShaderDir = "does/not/exist" }, true},
		{"shader dir is a file", func(c *fx.Config) { c.ShaderDir = file }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := fx.DefaultConfig()
			tt.mut(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
