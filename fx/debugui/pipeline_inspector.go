package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/postfx/fx"
)

func NewPipelineInspector(historyFrames int) PipelineInspector {
	return PipelineInspector{
		boostHistory: make([]float32, historyFrames),
	}
}

func (pi *PipelineInspector) Render(p *fx.Pipeline) {
	if !imgui.BeginV("Post Processing", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	caps := p.Capabilities()
	imgui.Text(fmt.Sprintf("Backend: %s", caps.Backend))
	imgui.Text(fmt.Sprintf("Supported: %v", p.Supported()))
	imgui.Text(fmt.Sprintf("Local Players: %d", p.PlayerCount()))

	enabled := p.Enabled()
	if imgui.Checkbox("Enabled", &enabled) {
		p.SetEnabled(enabled)
	}

	boost := float32(p.Boost())
	pi.boostHistory[pi.boostIndex] = boost
	pi.boostIndex = (pi.boostIndex + 1) % len(pi.boostHistory)

	imgui.Separator()
	imgui.Text(fmt.Sprintf("Boost: %.2f", boost))
	imgui.PlotLinesFloatPtr("##boost", &pi.boostHistory[0], int32(len(pi.boostHistory)))

	if imgui.TreeNodeStr("Capabilities") {
		imgui.BulletText(fmt.Sprintf("Shaders: %v", caps.Shaders))
		imgui.BulletText(fmt.Sprintf("Render to texture: %v", caps.RenderToTexture))
		imgui.BulletText(fmt.Sprintf("NPOT textures: %v", caps.NPOTTextures))
		imgui.BulletText(fmt.Sprintf("Non-square textures: %v", caps.NonSquareTextures))
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Passes") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("PassTable", 2, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Pass")
			imgui.TableSetupColumn("Active")
			imgui.TableHeadersRow()

			for _, pass := range p.Passes() {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(pass.Name())
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%v", pass.Active()))
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	imgui.End()
}
