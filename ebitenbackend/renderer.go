// Package ebitenbackend implements the engine's renderer and input
// interfaces over hajimehoshi/ebiten/v2. The host ebiten.Game hands the
// frame's screen to Renderer.SetTarget before running the render pass.
package ebitenbackend

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gantry-engine/gantry/engine"
	"github.com/gantry-engine/gantry/gmath"
	"github.com/gantry-engine/gantry/resource"
)

var _ engine.Renderer = (*Renderer)(nil)

// Renderer draws registered images onto the current frame target. Meshes
// are out of scope here: a draw uses the texture handle, with the world
// matrix reduced to its 2D affine part.
type Renderer struct {
	width, height int
	images        map[resource.Handle]*ebiten.Image
	target        *ebiten.Image
	draws         int
}

func NewRenderer() *Renderer {
	return &Renderer{images: make(map[resource.Handle]*ebiten.Image)}
}

func (r *Renderer) Initialize(width, height int) error {
	r.width, r.height = width, height
	return nil
}

// LoadImage decodes a loaded asset's bytes and registers the result under
// the asset's handle.
func (r *Renderer) LoadImage(m *resource.Manager, path string) (resource.Handle, error) {
	h, err := m.Load(path, resource.TypeTexture)
	if err != nil {
		return 0, err
	}
	data, err := m.Data(h)
	if err != nil {
		return 0, err
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return 0, fmt.Errorf("failed to decode image %s: %w", path, err)
	}
	r.images[h] = ebiten.NewImageFromImage(img)
	return h, nil
}

// RegisterImage associates an already-built image with a handle.
func (r *Renderer) RegisterImage(h resource.Handle, img *ebiten.Image) {
	r.images[h] = img
}

// SetTarget points draws at this frame's screen. Call it from the game's
// Draw before the render pass.
func (r *Renderer) SetTarget(screen *ebiten.Image) {
	r.target = screen
}

func (r *Renderer) BeginFrame() {
	r.draws = 0
}

func (r *Renderer) Draw(mesh, texture resource.Handle, world gmath.Mat4) {
	if r.target == nil {
		return
	}
	img, ok := r.images[texture]
	if !ok {
		return
	}

	// Column-major Mat4: take the XY linear block and translation.
	op := &ebiten.DrawImageOptions{}
	op.GeoM.SetElement(0, 0, float64(world[0]))
	op.GeoM.SetElement(1, 0, float64(world[1]))
	op.GeoM.SetElement(0, 1, float64(world[4]))
	op.GeoM.SetElement(1, 1, float64(world[5]))
	op.GeoM.Translate(float64(world[12]), float64(world[13]))
	r.target.DrawImage(img, op)
	r.draws++
}

func (r *Renderer) EndFrame() {
	r.target = nil
}

func (r *Renderer) Capabilities() engine.RendererCaps {
	return engine.RendererCaps{Name: "ebiten", MaxTexSize: 4096, Instancing: false}
}

func (r *Renderer) Shutdown() {
	r.images = make(map[resource.Handle]*ebiten.Image)
}
