// Package app wires the payload to scene pipeline shared by the CLI
// and the GUI.
package app

import (
	"github.com/philipparndt/qrstl/internal/config"
	"github.com/philipparndt/qrstl/pkg/mesh"
	"github.com/philipparndt/qrstl/pkg/qr"
	"github.com/philipparndt/qrstl/pkg/scene"
	"github.com/philipparndt/qrstl/pkg/stl"
)

// Generator encodes payloads and keeps the resulting solids in a
// scene. Scene readers (viewer, exporter) always see the last
// successful generation.
type Generator struct {
	Scene *scene.Scene

	options mesh.Options
	level   qr.RecoveryLevel
}

// Result describes one successful generation
type Result struct {
	Payload     string
	GridSize    int
	DarkModules int
	SolidCount  int
}

// NewGenerator creates a generator seeded from a profile
func NewGenerator(profile *config.Profile) (*Generator, error) {
	level, err := profile.RecoveryLevel()
	if err != nil {
		return nil, err
	}

	return &Generator{
		Scene:   scene.New(),
		options: profile.BuildOptions(),
		level:   level,
	}, nil
}

// Options returns the tag dimensions used for the next generation
func (g *Generator) Options() mesh.Options {
	return g.options
}

// SetOptions replaces the tag dimensions used for the next generation
func (g *Generator) SetOptions(opts mesh.Options) {
	g.options = opts
}

// Level returns the error correction level used for the next
// generation
func (g *Generator) Level() qr.RecoveryLevel {
	return g.level
}

// SetLevel replaces the error correction level used for the next
// generation
func (g *Generator) SetLevel(level qr.RecoveryLevel) {
	g.level = level
}

// Generate encodes the payload, builds the solids and replaces the
// scene in one atomic step. On any error the scene keeps its previous
// content.
func (g *Generator) Generate(payload string) (*Result, error) {
	grid, err := qr.Encode(payload, g.level)
	if err != nil {
		return nil, err
	}

	boxes, err := mesh.Build(grid, g.options)
	if err != nil {
		return nil, err
	}

	g.Scene.Replace(boxes)

	return &Result{
		Payload:     payload,
		GridSize:    grid.Size(),
		DarkModules: grid.DarkCount(),
		SolidCount:  len(boxes),
	}, nil
}

// ExportModel assembles the current scene into an STL model
func (g *Generator) ExportModel(name string) *stl.Model {
	return mesh.Export(g.Scene, name)
}

// Export serializes the current scene as binary STL
func (g *Generator) Export(name string) ([]byte, error) {
	return g.ExportModel(name).Bytes()
}
