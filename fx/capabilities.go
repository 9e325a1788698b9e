package fx

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/postfx/fx/shaders"
)

// Capabilities reports what the active graphics backend can do. Post
// processing needs programmable shaders and render-to-texture; the texture
// shape fields only affect how render targets are sized.
type Capabilities struct {
	Shaders           bool
	RenderToTexture   bool
	NPOTTextures      bool
	NonSquareTextures bool
	Backend           string
}

// Supported reports whether post-processing can run at all.
func (c Capabilities) Supported() bool {
	return c.Shaders && c.RenderToTexture
}

// DetectCapabilities probes the running backend. Shader support is checked
// by compiling a trivial program rather than trusted from version strings.
func DetectCapabilities() Capabilities {
	caps := Capabilities{
		// Every ebiten.Image is a valid render target, with no
		// power-of-two or squareness restrictions.
		RenderToTexture:   true,
		NPOTTextures:      true,
		NonSquareTextures: true,
		Backend:           backendName(),
	}
	if s, err := ebiten.NewShader(shaders.Copy); err == nil {
		caps.Shaders = true
		s.Deallocate()
	}
	return caps
}

func backendName() string {
	var info ebiten.DebugInfo
	ebiten.ReadDebugInfo(&info)
	switch info.GraphicsLibrary {
	case ebiten.GraphicsLibraryOpenGL:
		return "opengl"
	case ebiten.GraphicsLibraryDirectX:
		return "directx"
	case ebiten.GraphicsLibraryMetal:
		return "metal"
	default:
		return "unknown"
	}
}

// optimalTargetSize maps a screen size to the backing render-target size:
// scaled by the configured render scale, then rounded up to satisfy
// power-of-two or squareness restrictions when the backend has them.
func optimalTargetSize(w, h int, caps Capabilities, scale float64) (int, int) {
	if scale > 0 && scale != 1 {
		w = int(float64(w)*scale + 0.5)
		h = int(float64(h)*scale + 0.5)
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	if !caps.NPOTTextures {
		w = nextPowerOfTwo(w)
		h = nextPowerOfTwo(h)
	}
	if !caps.NonSquareTextures {
		if w > h {
			h = w
		} else {
			w = h
		}
	}
	return w, h
}

func nextPowerOfTwo(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
