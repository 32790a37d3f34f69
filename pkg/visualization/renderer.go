// Package visualization renders simulation frames as PNG images on an
// equirectangular world canvas.
package visualization

import (
	"fmt"
	"image/color"
	"path/filepath"

	"github.com/fogleman/gg"
	opensimplex "github.com/ojrac/opensimplex-go"
	"golang.org/x/image/colornames"

	"github.com/mwold/netplague/pkg/outbreak"
	"github.com/mwold/netplague/pkg/simgraph"
	"github.com/mwold/netplague/pkg/worldmap"
)

// Palette holds the colors used for a rendered frame.
type Palette struct {
	OceanDeep    color.RGBA
	OceanShallow color.RGBA
	Land         color.RGBA
	Coast        color.RGBA
	Secure       color.RGBA
	Infected     color.RGBA
	LinkWiFi     color.RGBA
	LinkVPN      color.RGBA
	LinkFiber    color.RGBA
}

// DefaultPalette is a dark-ocean scheme with high-contrast node states.
func DefaultPalette() Palette {
	return Palette{
		OceanDeep:    color.RGBA{R: 8, G: 24, B: 58, A: 255},
		OceanShallow: color.RGBA{R: 16, G: 42, B: 94, A: 255},
		Land:         colornames.Darkslategray,
		Coast:        colornames.Slategray,
		Secure:       colornames.Limegreen,
		Infected:     colornames.Crimson,
		LinkWiFi:     colornames.Dimgray,
		LinkVPN:      colornames.Mediumpurple,
		LinkFiber:    colornames.Darkorange,
	}
}

// Renderer draws graph snapshots. It caches the land/ocean background so
// per-frame work is only links and nodes.
type Renderer struct {
	width  int
	height int
	pal    Palette
	noise  opensimplex.Noise

	background *gg.Context
}

// RendererOption configures a Renderer.
type RendererOption func(*Renderer)

// WithPalette overrides the default colors.
func WithPalette(p Palette) RendererOption {
	return func(r *Renderer) { r.pal = p }
}

// WithNoiseSeed seeds the ocean shading noise.
func WithNoiseSeed(seed int64) RendererOption {
	return func(r *Renderer) { r.noise = opensimplex.New(seed) }
}

// NewRenderer creates a renderer for the given canvas size.
func NewRenderer(width, height int, opts ...RendererOption) *Renderer {
	r := &Renderer{
		width:  width,
		height: height,
		pal:    DefaultPalette(),
		noise:  opensimplex.New(1),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// project maps a geographic coordinate onto the canvas.
func (r *Renderer) project(c worldmap.Coord) (float64, float64) {
	x := (c.Lon + 180) / 360 * float64(r.width)
	y := (1 - (c.Lat+90)/180) * float64(r.height)
	return x, y
}

// renderBackground paints the ocean with low-frequency noise shading and
// fills the continental outlines on top. Built once, reused per frame.
func (r *Renderer) renderBackground() *gg.Context {
	ctx := gg.NewContext(r.width, r.height)

	const cell = 8
	for y := 0; y < r.height; y += cell {
		for x := 0; x < r.width; x += cell {
			n := r.noise.Eval2(float64(x)*0.01, float64(y)*0.01)
			t := (n + 1) / 2
			ctx.SetColor(lerpRGBA(r.pal.OceanDeep, r.pal.OceanShallow, t))
			ctx.DrawRectangle(float64(x), float64(y), cell, cell)
			ctx.Fill()
		}
	}

	for _, ring := range worldmap.LandPolygons() {
		if len(ring) < 3 {
			continue
		}
		x0, y0 := r.project(ring[0])
		ctx.MoveTo(x0, y0)
		for _, c := range ring[1:] {
			x, y := r.project(c)
			ctx.LineTo(x, y)
		}
		ctx.ClosePath()
		ctx.SetColor(r.pal.Land)
		ctx.FillPreserve()
		ctx.SetColor(r.pal.Coast)
		ctx.SetLineWidth(1)
		ctx.Stroke()
	}
	return ctx
}

func (r *Renderer) linkColor(t simgraph.LinkType) color.RGBA {
	switch t {
	case simgraph.LinkFiber:
		return r.pal.LinkFiber
	case simgraph.LinkVPNTunnel:
		return r.pal.LinkVPN
	default:
		return r.pal.LinkWiFi
	}
}

// RenderFrame draws one snapshot and returns the drawing context.
func (r *Renderer) RenderFrame(g *simgraph.Graph, states map[uint64]outbreak.NodeState) *gg.Context {
	if r.background == nil {
		r.background = r.renderBackground()
	}
	ctx := gg.NewContext(r.width, r.height)
	ctx.DrawImage(r.background.Image(), 0, 0)

	for _, link := range g.Links() {
		a, okA := g.Node(link.A)
		b, okB := g.Node(link.B)
		if !okA || !okB {
			continue
		}
		ax, ay := r.project(a.Coord)
		bx, by := r.project(b.Coord)
		c := r.linkColor(link.Type)
		ctx.SetRGBA255(int(c.R), int(c.G), int(c.B), 110)
		ctx.SetLineWidth(0.6 + link.Weight)
		ctx.DrawLine(ax, ay, bx, by)
		ctx.Stroke()
	}

	for _, node := range g.Nodes() {
		x, y := r.project(node.Coord)
		if states[node.ID] == outbreak.StateInfected {
			ctx.SetColor(r.pal.Infected)
			ctx.DrawCircle(x, y, 2.6)
		} else {
			ctx.SetColor(r.pal.Secure)
			ctx.DrawCircle(x, y, 2.0)
		}
		ctx.Fill()
	}
	return ctx
}

// WriteFrame renders a snapshot and saves it as frame_NNNNN.png in dir.
func (r *Renderer) WriteFrame(dir string, tick uint64, g *simgraph.Graph, states map[uint64]outbreak.NodeState) (string, error) {
	ctx := r.RenderFrame(g, states)
	path := filepath.Join(dir, fmt.Sprintf("frame_%05d.png", tick))
	if err := ctx.SavePNG(path); err != nil {
		return "", fmt.Errorf("save frame %d: %w", tick, err)
	}
	return path, nil
}

func lerpRGBA(a, b color.RGBA, t float64) color.RGBA {
	lerp := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t)
	}
	return color.RGBA{R: lerp(a.R, b.R), G: lerp(a.G, b.G), B: lerp(a.B, b.B), A: 255}
}
