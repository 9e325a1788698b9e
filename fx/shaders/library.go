// Package shaders holds the Kage programs shipped with the post-processing
// pipeline, plus a Library that resolves programs by name from a directory
// on disk, falling back to the embedded copies.
package shaders

//go:generate go run github.com/plus3/postfx/cmd/kagegen -dir . -pkg shaders -out embed.go

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
)

// Ext is the file extension of Kage programs resolved on disk.
const Ext = ".kage"

// ErrUnknown is returned when a name resolves to neither a file in the
// library directory nor an embedded program.
var ErrUnknown = errors.New("shaders: unknown shader")

var embedded = map[string][]byte{
	"motion_blur": MotionBlur,
	"grayscale":   Grayscale,
	"copy":        Copy,
}

// Library resolves shader programs by name. A name maps to "<name>.kage"
// inside the library directory; the embedded programs serve as fallback.
// Compiled shaders are cached until Dispose.
type Library struct {
	dir      string
	compiled map[string]*ebiten.Shader
}

// NewLibrary returns a library rooted at dir. An empty dir serves only the
// embedded programs.
func NewLibrary(dir string) *Library {
	return &Library{
		dir:      dir,
		compiled: make(map[string]*ebiten.Shader),
	}
}

// Source returns the Kage source for name, preferring the on-disk copy.
func (l *Library) Source(name string) ([]byte, error) {
	if l.dir != "" {
		path := filepath.Join(l.dir, name+Ext)
		src, err := os.ReadFile(path)
		if err == nil {
			return src, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("shaders: read %s: %w", path, err)
		}
	}
	if src, ok := embedded[name]; ok {
		return src, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknown, name)
}

// Load compiles the named program, caching the result.
func (l *Library) Load(name string) (*ebiten.Shader, error) {
	if s, ok := l.compiled[name]; ok {
		return s, nil
	}
	src, err := l.Source(name)
	if err != nil {
		return nil, err
	}
	shader, err := ebiten.NewShader(src)
	if err != nil {
		return nil, fmt.Errorf("shaders: compile %s: %w", name, err)
	}
	l.compiled[name] = shader
	return shader, nil
}

// Dispose releases every compiled program. The library stays usable; the
// next Load recompiles.
func (l *Library) Dispose() {
	for name, s := range l.compiled {
		s.Deallocate()
		delete(l.compiled, name)
	}
}
