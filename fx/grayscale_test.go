package fx_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/plus3/postfx/fx"
)

func TestGrayscaleIntensityClamped(t *testing.T) {
	g := fx.NewGrayscalePass()
	assert.Equal(t, "grayscale", g.Name())

	g.SetIntensity(2)
	assert.InDelta(t, 1, g.Intensity(), 1e-9)

	g.SetIntensity(-1)
	assert.Zero(t, g.Intensity())
}

func TestGrayscaleActiveOnlyWithIntensity(t *testing.T) {
	g := fx.NewGrayscalePass()
	assert.False(t, g.Active())

	g.SetIntensity(0.3)
	assert.True(t, g.Active())

	// Intensity is host-driven; time passing does not change it.
	g.Update(100)
	assert.InDelta(t, 0.3, g.Intensity(), 1e-9)

	g.SetIntensity(0)
	assert.False(t, g.Active())
}

func TestGrayscaleUniforms(t *testing.T) {
	g := fx.NewGrayscalePass()
	g.SetIntensity(0.25)

	u := map[string]any{}
	g.SetUniforms(u)
	assert.Contains(t, u, "Intensity")
	assert.InDelta(t, 0.25, u["Intensity"], 1e-6)
}
