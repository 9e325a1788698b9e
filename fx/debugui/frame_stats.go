package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/postfx/fx"
)

func NewFrameStats(historyFrames int) FrameStats {
	return FrameStats{
		historyFrames: historyFrames,
		frameHistory:  make([]float32, historyFrames),
		frameIndex:    0,
	}
}

func (fs *FrameStats) Render(p *fx.Pipeline, deltaTime float32) {
	if !imgui.BeginV("Post Processing Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	fs.frameHistory[fs.frameIndex] = deltaTime * 1000.0
	fs.frameIndex = (fs.frameIndex + 1) % fs.historyFrames

	stats := p.Stats()

	imgui.Text(fmt.Sprintf("Frames: %d", stats.Frames))
	imgui.Text(fmt.Sprintf("Captured Frames: %d", stats.CapturedFrames))
	imgui.Text(fmt.Sprintf("Targets: %d live, %d idle", stats.Pool.Live, stats.Pool.Idle))
	imgui.Text(fmt.Sprintf("Pool: %d hits, %d misses", stats.Pool.Hits, stats.Pool.Misses))

	var avgFrameTime float32
	for _, ft := range fs.frameHistory {
		avgFrameTime += ft
	}
	avgFrameTime /= float32(fs.historyFrames)

	imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avgFrameTime, 1000.0/avgFrameTime))

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &fs.frameHistory[0], int32(len(fs.frameHistory)))

	if imgui.TreeNodeStr("Pass Timings") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("PassTimingsTable", 5, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Pass")
			imgui.TableSetupColumn("Draws")
			imgui.TableSetupColumn("Avg")
			imgui.TableSetupColumn("Max")
			imgui.TableSetupColumn("Last")
			imgui.TableHeadersRow()

			for _, ps := range stats.Passes {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(ps.Name)
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", ps.ExecutionCount))
				imgui.TableNextColumn()
				imgui.Text(ps.AvgDuration.Round(time.Microsecond).String())
				imgui.TableNextColumn()
				imgui.Text(ps.MaxDuration.Round(time.Microsecond).String())
				imgui.TableNextColumn()
				imgui.Text(ps.LastDuration.Round(time.Microsecond).String())
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	imgui.End()
}

type FrameTimer struct {
	lastFrameTime time.Time
}

func NewFrameTimer() *FrameTimer {
	return &FrameTimer{
		lastFrameTime: time.Now(),
	}
}

func (ft *FrameTimer) GetDeltaTime() float32 {
	now := time.Now()
	delta := float32(now.Sub(ft.lastFrameTime).Seconds())
	ft.lastFrameTime = now
	return delta
}
