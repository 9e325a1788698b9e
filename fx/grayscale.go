package fx

// GrayscalePass desaturates the scene by a host-driven intensity. Games
// use it for pause or defeat states; at zero intensity the pass is
// inactive and costs nothing.
type GrayscalePass struct {
	intensity float64
}

func NewGrayscalePass() *GrayscalePass {
	return &GrayscalePass{}
}

func (g *GrayscalePass) Name() string { return "grayscale" }

// SetIntensity sets the desaturation strength, clamped to [0, 1].
func (g *GrayscalePass) SetIntensity(v float64) {
	if v < 0 {
		v = 0
	} else if v > 1 {
		v = 1
	}
	g.intensity = v
}

func (g *GrayscalePass) Intensity() float64 {
	return g.intensity
}

// Update is a no-op; intensity is driven by the host.
func (g *GrayscalePass) Update(dt float64) {}

func (g *GrayscalePass) Active() bool {
	return g.intensity > 0
}

func (g *GrayscalePass) SetUniforms(dst map[string]any) {
	dst["Intensity"] = float32(g.intensity)
}
