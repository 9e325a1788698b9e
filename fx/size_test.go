package fx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSizeKeyEncoding(t *testing.T) {
	tests := []struct {
		name string
		w, h int
	}{
		{"minimal", 1, 1},
		{"hd", 1920, 1080},
		{"square", 4096, 4096},
		{"max width", maxTargetSide, 1},
		{"max height", 1, maxTargetSide},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := newSizeKey(tt.w, tt.h)
			assert.Equal(t, tt.w, key.Width())
			assert.Equal(t, tt.h, key.Height())
		})
	}
}

func TestSizeKeyAsymmetry(t *testing.T) {
	// Transposed sizes must not collide.
	assert.NotEqual(t, newSizeKey(640, 480), newSizeKey(480, 640))
}

func TestSizeKeyString(t *testing.T) {
	assert.Equal(t, "1920x1080", newSizeKey(1920, 1080).String())
}

func TestOptimalTargetSize(t *testing.T) {
	full := Capabilities{
		Shaders:           true,
		RenderToTexture:   true,
		NPOTTextures:      true,
		NonSquareTextures: true,
	}
	pow2Only := full
	pow2Only.NPOTTextures = false
	squareOnly := full
	squareOnly.NonSquareTextures = false
	legacy := full
	legacy.NPOTTextures = false
	legacy.NonSquareTextures = false

	tests := []struct {
		name         string
		w, h         int
		caps         Capabilities
		scale        float64
		wantW, wantH int
	}{
		{"passthrough", 800, 600, full, 1, 800, 600},
		{"zero scale means full", 800, 600, full, 0, 800, 600},
		{"half scale", 800, 600, full, 0.5, 400, 300},
		{"half scale rounds", 801, 601, full, 0.5, 401, 301},
		{"pow2 rounds up", 800, 600, pow2Only, 1, 1024, 1024},
		{"pow2 keeps exact", 512, 256, pow2Only, 1, 512, 256},
		{"square takes max side", 800, 600, squareOnly, 1, 800, 800},
		{"square tall", 600, 800, squareOnly, 1, 800, 800},
		{"legacy", 800, 600, legacy, 1, 1024, 1024},
		{"never below one", 3, 2, full, 0.1, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := optimalTargetSize(tt.w, tt.h, tt.caps, tt.scale)
			assert.Equal(t, tt.wantW, w)
			assert.Equal(t, tt.wantH, h)
		})
	}
}

func TestNextPowerOfTwo(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{1, 1},
		{2, 2},
		{3, 4},
		{600, 1024},
		{1024, 1024},
		{1025, 2048},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, nextPowerOfTwo(tt.in), "nextPowerOfTwo(%d)", tt.in)
	}
}
