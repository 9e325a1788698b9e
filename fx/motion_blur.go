package fx

// Boost tuning used when the configuration leaves the fields zero.
const (
	DefaultBoostAmount = 2.5
	DefaultBoostDecay  = 3.5
)

// MotionBlurPass blurs the scene radially toward the screen center while
// the kart is boosting. GiveBoost kicks the blur to full strength and the
// effect decays linearly to zero from there.
type MotionBlurPass struct {
	boost  float64
	amount float64
	decay  float64 // units per second
}

// NewMotionBlurPass returns an idle motion blur pass. Non-positive amount
// or decay fall back to the defaults.
func NewMotionBlurPass(amount, decay float64) *MotionBlurPass {
	if amount <= 0 {
		amount = DefaultBoostAmount
	}
	if decay <= 0 {
		decay = DefaultBoostDecay
	}
	return &MotionBlurPass{amount: amount, decay: decay}
}

func (m *MotionBlurPass) Name() string { return "motion_blur" }

// GiveBoost restarts the effect at full strength.
func (m *MotionBlurPass) GiveBoost() {
	m.boost = m.amount
}

// Boost returns the current boost amount.
func (m *MotionBlurPass) Boost() float64 {
	return m.boost
}

// Update decays the boost toward zero. Non-positive dt is ignored, so the
// boost never goes negative and never rises on its own.
func (m *MotionBlurPass) Update(dt float64) {
	if dt <= 0 || m.boost <= 0 {
		return
	}
	m.boost -= dt * m.decay
	if m.boost < 0 {
		m.boost = 0
	}
}

func (m *MotionBlurPass) Active() bool {
	return m.boost > 0
}

// SetUniforms writes the blur strength. The shader clamps it to [0, 1], so
// the first stretch of the decay window stays at full blur.
func (m *MotionBlurPass) SetUniforms(dst map[string]any) {
	dst["Boost"] = float32(m.boost)
}
