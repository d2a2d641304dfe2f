// Package builtin provides a set of named demo scenes that can be rendered
// without a scene file.
package builtin

import (
	"errors"
	"fmt"
	"sort"

	"github.com/yanky319/Ray-tracing/scene"
	"github.com/yanky319/Ray-tracing/types"
)

var ErrUnknownScene = errors.New("builtin: unknown scene")

var (
	white  = types.RGB(255, 255, 255)
	red    = types.RGB(255, 0, 0)
	green  = types.RGB(0, 255, 0)
	blue   = types.RGB(0, 0, 255)
	yellow = types.RGB(255, 255, 0)
)

// Entry describes a builtin scene together with the render settings it was
// designed for.
type Entry struct {
	Name        string
	Description string

	// Suggested frame size in pixels.
	Width  int
	Height int

	// Suggested render settings.
	SuperSampling bool
	Rays          int
	SoftShadows   bool

	// A grid is drawn over the frame when GridInterval is positive.
	GridInterval int
	GridColor    types.Color

	build func(b *builder)
}

var registry = map[string]Entry{}

func register(e Entry) {
	registry[e.Name] = e
}

// Names returns the sorted list of builtin scene names.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup a scene entry by name.
func Lookup(name string) (Entry, bool) {
	e, ok := registry[name]
	return e, ok
}

// Load builds a fresh, uncompiled instance of the named scene.
func Load(name string) (*scene.Scene, Entry, error) {
	e, ok := registry[name]
	if !ok {
		return nil, Entry{}, fmt.Errorf("%w: %q", ErrUnknownScene, name)
	}

	b := &builder{sc: scene.New(e.Name)}
	e.build(b)
	if b.err != nil {
		return nil, Entry{}, fmt.Errorf("builtin: could not build scene %q: %w", name, b.err)
	}
	return b.sc, e, nil
}

// builder collects the first error raised while populating a scene.
type builder struct {
	sc  *scene.Scene
	err error
}

func (b *builder) camera(cam *scene.Camera, err error) {
	if b.err == nil {
		b.sc.Camera, b.err = cam, err
	}
}

func (b *builder) surface(s *scene.Surface, err error) *scene.Surface {
	if b.err == nil {
		if b.err = err; err == nil {
			b.err = b.sc.AddGeometries(s)
		}
	}
	return s
}

func (b *builder) light(l scene.Light, err error) {
	if b.err == nil {
		if b.err = err; err == nil {
			b.err = b.sc.AddLights(l)
		}
	}
}
