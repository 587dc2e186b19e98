// Package raster is a software drawcmd.Target. It renders into an in-memory
// RGBA framebuffer so frames can be inspected without a display.
package raster

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/vector"

	"quadview/gman/drawcmd"
	"quadview/primatives"
)

type vertex struct {
	x, y  float32
	color primatives.Color
}

// Framebuffer implements drawcmd.Target. Vertices are in normalized device
// coordinates: (-1,-1) is the bottom-left corner of the image and (1,1) the
// top-right.
type Framebuffer struct {
	img  *image.RGBA
	rast *vector.Rasterizer
	// mask holds the coverage of the polygon being filled.
	mask *image.Alpha

	clear   primatives.Color
	current primatives.Color

	mode     drawcmd.Mode
	inBegin  bool
	vertices []vertex
}

var _ drawcmd.Target = &Framebuffer{}

func New(width, height int) *Framebuffer {
	return &Framebuffer{
		img:     image.NewRGBA(image.Rect(0, 0, width, height)),
		rast:    vector.NewRasterizer(width, height),
		mask:    image.NewAlpha(image.Rect(0, 0, width, height)),
		current: primatives.Color{R: 1, G: 1, B: 1, A: 1},
	}
}

// Image returns the framebuffer. It is not a copy.
func (f *Framebuffer) Image() *image.RGBA {
	return f.img
}

func (f *Framebuffer) ClearColor(c primatives.Color) {
	f.clear = c
}

func (f *Framebuffer) Clear() {
	draw.Draw(f.img, f.img.Bounds(), image.NewUniform(nrgba(f.clear)), image.Point{}, draw.Src)
}

func (f *Framebuffer) Begin(m drawcmd.Mode) {
	f.mode = m
	f.inBegin = true
	f.vertices = f.vertices[:0]
}

func (f *Framebuffer) Color(c primatives.Color) {
	f.current = c
}

// Vertex is ignored outside Begin/End, as in GL.
func (f *Framebuffer) Vertex(x, y float32) {
	if !f.inBegin {
		return
	}
	f.vertices = append(f.vertices, vertex{x: x, y: y, color: f.current})
}

// End fills the collected primitives. A trailing group with fewer than four
// vertices is dropped.
func (f *Framebuffer) End() {
	if !f.inBegin {
		return
	}
	f.inBegin = false
	if f.mode != drawcmd.Quads {
		return
	}
	for i := 0; i+4 <= len(f.vertices); i += 4 {
		f.fillPolygon(f.vertices[i : i+4])
	}
	f.vertices = f.vertices[:0]
}

func (f *Framebuffer) Flush() {}

// fillPolygon fills vs with the color of its last vertex (flat shading).
// Covered pixels are replaced, not blended: dst = src*m + dst*(1-m) for
// coverage m.
func (f *Framebuffer) fillPolygon(vs []vertex) {
	b := f.img.Bounds()
	w, h := float32(b.Dx()), float32(b.Dy())
	for i := range f.mask.Pix {
		f.mask.Pix[i] = 0
	}
	f.rast.Reset(b.Dx(), b.Dy())
	for i, v := range vs {
		px := (v.x + 1) / 2 * w
		py := (1 - v.y) / 2 * h
		if i == 0 {
			f.rast.MoveTo(px, py)
		} else {
			f.rast.LineTo(px, py)
		}
	}
	f.rast.ClosePath()
	f.rast.Draw(f.mask, b, image.Opaque, image.Point{})

	src := image.NewUniform(nrgba(vs[len(vs)-1].color))
	draw.DrawMask(f.img, b, src, image.Point{}, f.mask, image.Point{}, draw.Src)
}

func nrgba(c primatives.Color) color.NRGBA {
	r, g, b, a := c.RGBA8()
	return color.NRGBA{R: r, G: g, B: b, A: a}
}
