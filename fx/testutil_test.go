package fx_test

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/require"

	"github.com/plus3/postfx/fx"
)

// blitCall records one composite draw without touching the GPU.
type blitCall struct {
	dst      *ebiten.Image
	src      *ebiten.Image
	shader   *ebiten.Shader
	uniforms map[string]any
}

type recordingBlitter struct {
	calls []blitCall
}

func (b *recordingBlitter) Blit(dst, src *ebiten.Image, shader *ebiten.Shader, uniforms map[string]any) {
	cp := make(map[string]any, len(uniforms))
	for k, v := range uniforms {
		cp[k] = v
	}
	b.calls = append(b.calls, blitCall{dst: dst, src: src, shader: shader, uniforms: cp})
}

type nopBlitter struct{}

func (nopBlitter) Blit(dst, src *ebiten.Image, shader *ebiten.Shader, uniforms map[string]any) {}

var errNoMemory = errors.New("out of video memory")

func failingAllocator(w, h int) (*ebiten.Image, error) {
	return nil, errNoMemory
}

// testCaps reports a fully capable backend without probing one.
func testCaps() *fx.Capabilities {
	return &fx.Capabilities{
		Shaders:           true,
		RenderToTexture:   true,
		NPOTTextures:      true,
		NonSquareTextures: true,
		Backend:           "test",
	}
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestPipeline builds a pipeline with a recording blitter and forced
// capabilities so tests run headless. mut tweaks the config before New.
func newTestPipeline(t *testing.T, mut func(*fx.Config)) (*fx.Pipeline, *recordingBlitter) {
	t.Helper()
	rec := &recordingBlitter{}
	cfg := fx.DefaultConfig()
	cfg.Logger = quietLogger()
	cfg.Blitter = rec
	cfg.Capabilities = testCaps()
	if mut != nil {
		mut(&cfg)
	}
	p, err := fx.New(cfg)
	require.NoError(t, err)
	t.Cleanup(p.Dispose)
	return p, rec
}
