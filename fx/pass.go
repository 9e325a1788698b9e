package fx

// UniformSource provides shader constants for a draw. Implementations
// write into dst rather than returning a map so the per-frame map can be
// reused.
type UniformSource interface {
	SetUniforms(dst map[string]any)
}

// Pass is one full-screen effect in the pipeline. Its Name doubles as the
// shader program name resolved through the shader library.
type Pass interface {
	UniformSource

	// Name identifies the pass and its shader program.
	Name() string

	// Update advances time-based state by dt seconds.
	Update(dt float64)

	// Active reports whether the pass has any visible contribution this
	// frame. While no pass is active the pipeline skips the capture and
	// the scene keeps the back buffer's anti-aliasing.
	Active() bool
}
