// Package ebiten provides Dear ImGui backend integration for the Ebiten
// game engine, so the debug overlay can draw on top of the game loop.
package ebiten

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
)

// ImguiBackend wraps the Ebiten-specific Dear ImGui backend. Call
// BeginFrame and EndFrame around overlay rendering in Update, Draw in the
// game's Draw, and Layout in the game's Layout.
type ImguiBackend struct {
	*ebitenbackend.EbitenBackend
}

// New creates a backend with an application window and imgui.ini writing
// disabled.
func New(title string, width, height int) ImguiBackend {
	b := ebitenbackend.NewEbitenBackend()
	b.CreateWindow(title, width, height)
	imgui.CurrentIO().SetIniFilename("")
	return ImguiBackend{EbitenBackend: b}
}
