package fx

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Blitter draws one full-screen shader pass from src into dst. The default
// implementation rasterizes a screen-sized quad; headless tools and tests
// substitute their own. The uniforms map is reused between calls and must
// not be retained.
type Blitter interface {
	Blit(dst, src *ebiten.Image, shader *ebiten.Shader, uniforms map[string]any)
}

// quadBlitter composites with a single quad: four corner vertices and two
// triangles sharing the 0-2 diagonal. Ebitengine's image space has a
// top-left origin for both source and destination, so no V flip is needed.
type quadBlitter struct{}

func (quadBlitter) Blit(dst, src *ebiten.Image, shader *ebiten.Shader, uniforms map[string]any) {
	db := dst.Bounds()
	sb := src.Bounds()

	dx0, dy0 := float32(db.Min.X), float32(db.Min.Y)
	dx1, dy1 := float32(db.Max.X), float32(db.Max.Y)
	sx0, sy0 := float32(sb.Min.X), float32(sb.Min.Y)
	sx1, sy1 := float32(sb.Max.X), float32(sb.Max.Y)

	vertices := []ebiten.Vertex{
		{DstX: dx0, DstY: dy1, SrcX: sx0, SrcY: sy1, ColorR: 1, ColorG: 1, ColorB: 1, ColorA: 1},
		{DstX: dx0, DstY: dy0, SrcX: sx0, SrcY: sy0, ColorR: 1, ColorG: 1, ColorB: 1, ColorA: 1},
		{DstX: dx1, DstY: dy0, SrcX: sx1, SrcY: sy0, ColorR: 1, ColorG: 1, ColorB: 1, ColorA: 1},
		{DstX: dx1, DstY: dy1, SrcX: sx1, SrcY: sy1, ColorR: 1, ColorG: 1, ColorB: 1, ColorA: 1},
	}
	indices := []uint16{0, 1, 2, 3, 0, 2}

	op := &ebiten.DrawTrianglesShaderOptions{
		Blend:    ebiten.BlendCopy,
		Images:   [4]*ebiten.Image{src},
		Uniforms: uniforms,
	}
	dst.DrawTrianglesShader(vertices, indices, shader, op)
}
