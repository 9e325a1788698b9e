// Package debugui provides immediate-mode GUI panels for inspecting a
// post-processing pipeline with Dear ImGui. It renders through the
// cimgui-go bindings; the ebiten subpackage supplies the game-loop
// backend.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/postfx/fx"
)

// InputState reports whether Dear ImGui is consuming input. Games check it
// before handling mouse or keyboard presses themselves.
type InputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// ReadInputState samples ImGui's current capture flags.
func ReadInputState() InputState {
	io := imgui.CurrentIO()
	return InputState{
		WantCaptureMouse:    io.WantCaptureMouse(),
		WantCaptureKeyboard: io.WantCaptureKeyboard(),
	}
}

// Overlay bundles the pipeline panels behind one visibility toggle.
type Overlay struct {
	Visible bool

	inspector PipelineInspector
	stats     FrameStats
	timer     *FrameTimer
}

// NewOverlay creates the overlay with historyFrames samples in each graph.
func NewOverlay(historyFrames int) *Overlay {
	return &Overlay{
		inspector: NewPipelineInspector(historyFrames),
		stats:     NewFrameStats(historyFrames),
		timer:     NewFrameTimer(),
	}
}

// Render draws all panels when visible. Call it between the backend's
// BeginFrame and EndFrame. The frame timer ticks even while hidden so the
// graphs have no gap spikes after reopening.
func (o *Overlay) Render(p *fx.Pipeline) {
	dt := o.timer.GetDeltaTime()
	if !o.Visible {
		return
	}
	o.inspector.Render(p)
	o.stats.Render(p, dt)
}
