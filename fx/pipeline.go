// Package fx implements full-screen post-processing for Ebitengine games.
// The pipeline captures the scene into an off-screen render target, runs a
// chain of shader passes over it, and composites the result back onto the
// frame with a single textured quad.
//
// The shipped effect is a boost motion blur: GiveBoost kicks it to full
// strength and it decays back to zero over a fraction of a second. Hosts
// can register further passes through AddPass.
package fx

import (
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/postfx/fx/shaders"
)

// Pipeline owns the capture target, the pass chain and the shader library.
// It is not safe for concurrent use; call it from the game loop only.
type Pipeline struct {
	cfg  Config
	log  *slog.Logger
	caps Capabilities
	lib  *shaders.Library
	pool *TargetPool
	blit Blitter

	passes []Pass
	times  []*passTimes
	motion *MotionBlurPass

	supported bool
	players   int

	scene          *ebiten.Image
	sceneW, sceneH int

	capturing     bool
	usedThisFrame bool

	frames   int64
	captured int64

	uniforms map[string]any
	steps    []renderStep
}

type renderStep struct {
	idx    int
	shader *ebiten.Shader
}

// New builds a pipeline from cfg. Missing backend capabilities do not make
// New fail; they leave the pipeline in a state where capture and render
// are no-ops, with a warning logged once. The only error returned is an
// invalid configuration.
func New(cfg Config) (*Pipeline, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	caps := DetectCapabilities()
	if cfg.Capabilities != nil {
		caps = *cfg.Capabilities
	}
	blit := cfg.Blitter
	if blit == nil {
		blit = quadBlitter{}
	}

	p := &Pipeline{
		cfg:       cfg,
		log:       logger,
		caps:      caps,
		lib:       shaders.NewLibrary(cfg.ShaderDir),
		pool:      NewTargetPool(cfg.Allocator),
		blit:      blit,
		supported: caps.Supported(),
		players:   1,
		uniforms:  make(map[string]any, 4),
	}

	if !p.supported {
		logger.Warn("fx: post-processing not supported by this backend",
			"backend", caps.Backend, "shaders", caps.Shaders, "render_to_texture", caps.RenderToTexture)
	} else {
		if !caps.NPOTTextures {
			logger.Warn("fx: no NPOT texture support, rounding render targets up to powers of two")
		}
		if !caps.NonSquareTextures {
			logger.Warn("fx: no non-square texture support, rendering to square targets")
		}
	}

	// The motion blur pass always exists so that boost bookkeeping works
	// even when rendering is off. Its shader only matters when supported.
	motion := NewMotionBlurPass(cfg.BoostAmount, cfg.BoostDecay)
	p.motion = motion
	p.passes = append(p.passes, motion)
	p.times = append(p.times, newPassTimes(motion.Name()))
	if p.supported {
		if _, err := p.lib.Load(motion.Name()); err != nil {
			logger.Warn("fx: motion blur shader unavailable, disabling post-processing", "err", err)
			p.supported = false
		}
	}
	return p, nil
}

// AddPass appends a pass to the chain and resolves its shader. Passes run
// in registration order, motion blur first.
func (p *Pipeline) AddPass(pass Pass) error {
	if p.supported {
		if _, err := p.lib.Load(pass.Name()); err != nil {
			return fmt.Errorf("fx: pass %s: %w", pass.Name(), err)
		}
	}
	p.passes = append(p.passes, pass)
	p.times = append(p.times, newPassTimes(pass.Name()))
	return nil
}

// Passes returns the registered passes in execution order.
func (p *Pipeline) Passes() []Pass {
	return slices.Clone(p.passes)
}

// Supported reports whether the backend can run the pipeline at all.
func (p *Pipeline) Supported() bool { return p.supported }

// Capabilities returns the backend capabilities the pipeline was built
// against.
func (p *Pipeline) Capabilities() Capabilities { return p.caps }

// Enabled reports the user toggle.
func (p *Pipeline) Enabled() bool { return p.cfg.Enabled }

// SetEnabled flips the user toggle at runtime.
func (p *Pipeline) SetEnabled(v bool) { p.cfg.Enabled = v }

// SetPlayerCount tells the pipeline how many local players share the
// screen. Post-processing only runs for a single player; split screen
// renders each viewport separately and skips the effect. Values below 1
// count as 1.
func (p *Pipeline) SetPlayerCount(n int) {
	if n < 1 {
		n = 1
	}
	p.players = n
}

// PlayerCount returns the current local player count.
func (p *Pipeline) PlayerCount() int { return p.players }

// active reports whether capture and render should run this frame.
func (p *Pipeline) active() bool {
	return p.supported && p.cfg.Enabled && p.players == 1
}

func (p *Pipeline) anyPassActive() bool {
	for _, pass := range p.passes {
		if pass.Active() {
			return true
		}
	}
	return false
}

// BeginCapture returns the image the frame's scene should be drawn into.
// When post-processing is unsupported, disabled, in split screen, or no
// pass currently contributes, it returns screen unchanged so the scene
// keeps the back buffer's anti-aliasing. Callers must draw using the
// returned image's bounds, which can differ from the screen's.
func (p *Pipeline) BeginCapture(screen *ebiten.Image) *ebiten.Image {
	p.frames++
	p.usedThisFrame = false
	if !p.active() || !p.anyPassActive() {
		return screen
	}
	b := screen.Bounds()
	target := p.ensureSceneTarget(b.Dx(), b.Dy())
	if target == nil {
		return screen
	}
	p.usedThisFrame = true
	p.capturing = true
	target.Clear()
	return target
}

// EndCapture marks the scene capture complete. Anything drawn after it
// (HUD, UI) is not part of the composite.
func (p *Pipeline) EndCapture() {
	p.capturing = false
}

// Render runs the active passes over the captured scene and composites the
// result onto screen. It does nothing for frames whose capture was skipped.
func (p *Pipeline) Render(screen *ebiten.Image) {
	if !p.active() || !p.usedThisFrame {
		return
	}
	if p.capturing {
		p.log.Warn("fx: capture scope left open, missing EndCapture")
		p.capturing = false
	}

	p.steps = p.steps[:0]
	for i, pass := range p.passes {
		if !pass.Active() {
			continue
		}
		shader, err := p.lib.Load(pass.Name())
		if err != nil {
			p.log.Warn("fx: skipping pass", "pass", pass.Name(), "err", err)
			continue
		}
		p.steps = append(p.steps, renderStep{idx: i, shader: shader})
	}

	src := p.scene
	if len(p.steps) == 0 {
		// Every pass dropped out between capture and composite. Put the
		// scene on screen unchanged rather than losing the frame.
		shader, err := p.lib.Load("copy")
		if err != nil {
			p.log.Warn("fx: copy shader unavailable, dropping captured frame", "err", err)
			return
		}
		clear(p.uniforms)
		p.blit.Blit(screen, src, shader, p.uniforms)
		p.captured++
		return
	}

	for n, st := range p.steps {
		dst := screen
		if n < len(p.steps)-1 {
			b := src.Bounds()
			tmp, err := p.pool.Acquire(b.Dx(), b.Dy())
			if err != nil {
				p.log.Warn("fx: no intermediate render target, compositing early", "err", err)
			} else {
				dst = tmp
			}
		}

		clear(p.uniforms)
		p.passes[st.idx].SetUniforms(p.uniforms)

		start := time.Now()
		p.blit.Blit(dst, src, st.shader, p.uniforms)
		p.times[st.idx].record(time.Since(start))

		if src != p.scene {
			p.pool.Release(src)
		}
		src = dst
		if dst == screen {
			break
		}
	}
	p.captured++
}

// Update advances time-based pass state by dt seconds. Non-positive dt is
// ignored; boost never rises on its own.
func (p *Pipeline) Update(dt float64) {
	if dt <= 0 {
		return
	}
	for _, pass := range p.passes {
		pass.Update(dt)
	}
}

// GiveBoost kicks the motion blur to full strength, typically when the
// kart fires a zipper or nitro. Repeated calls restart the decay, they do
// not stack.
func (p *Pipeline) GiveBoost() {
	p.motion.GiveBoost()
}

// Boost returns the motion blur's current boost amount.
func (p *Pipeline) Boost() float64 {
	return p.motion.Boost()
}

// Stats returns a snapshot of pipeline activity.
func (p *Pipeline) Stats() PipelineStats {
	s := PipelineStats{
		Frames:         p.frames,
		CapturedFrames: p.captured,
		Pool:           p.pool.Stats(),
		Passes:         make([]PassStats, len(p.times)),
	}
	for i, t := range p.times {
		s.Passes[i] = t.snapshot()
	}
	return s
}

// Dispose releases the render targets and compiled shaders. The pipeline
// must not be used afterwards.
func (p *Pipeline) Dispose() {
	if p.scene != nil {
		p.pool.Release(p.scene)
		p.scene = nil
		p.sceneW, p.sceneH = 0, 0
	}
	p.pool.Dispose()
	p.lib.Dispose()
	p.capturing = false
	p.usedThisFrame = false
}

// ensureSceneTarget returns the capture target for a w by h screen,
// reallocating when the size changed. A failed allocation force-disables
// the feature for the session and returns nil.
func (p *Pipeline) ensureSceneTarget(w, h int) *ebiten.Image {
	tw, th := optimalTargetSize(w, h, p.caps, p.cfg.RenderScale)
	if p.scene != nil && p.sceneW == tw && p.sceneH == th {
		return p.scene
	}
	if p.scene != nil {
		p.pool.Release(p.scene)
		p.scene = nil
	}
	img, err := p.pool.Acquire(tw, th)
	if err != nil {
		p.log.Warn("fx: couldn't create the render target for post-processing, disabling it",
			"width", tw, "height", th, "err", err)
		p.cfg.Enabled = false
		return nil
	}
	p.scene = img
	p.sceneW, p.sceneH = tw, th
	return img
}
