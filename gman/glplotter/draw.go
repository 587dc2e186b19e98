package glplotter

import (
	"fmt"
	"os"

	"github.com/go-gl/gl/v2.1/gl"

	"quadview/gman/drawcmd"
	"quadview/primatives"
)

// frameWrap is 11!, divisible by every number up to 11.
const frameWrap = 39916800

// Render draws one frame of every registered graphic onto the window's
// canvas. It does nothing before a window exists.
func (p *Plotter) Render() {
	if p.window == nil {
		return
	}
	p.nextFrame()

	t := p.window.Canvas()
	for _, g := range p.graphics {
		g.Commands().Replay(t)
	}
}

func (p *Plotter) nextFrame() {
	p.frameID++
	if p.frameID > frameWrap {
		p.frameID = 1
	}
}

// glTarget issues commands as OpenGL immediate-mode calls on the current
// context.
type glTarget struct {
	// begun is set between a Begin GL accepted and its End. Vertex and End
	// are dropped otherwise.
	begun bool
}

var _ drawcmd.Target = &glTarget{}

func (*glTarget) ClearColor(c primatives.Color) {
	gl.ClearColor(c.R, c.G, c.B, c.A)
}

func (*glTarget) Clear() {
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

func (t *glTarget) Begin(m drawcmd.Mode) {
	t.begun = false
	switch m {
	case drawcmd.Quads:
		gl.Begin(gl.QUADS)
		t.begun = true
	default:
		fmt.Fprintf(os.Stderr, "glplotter: unsupported primitive %v\n", m)
	}
}

func (*glTarget) Color(c primatives.Color) {
	gl.Color4f(c.R, c.G, c.B, c.A)
}

func (t *glTarget) Vertex(x, y float32) {
	if !t.begun {
		return
	}
	gl.Vertex2f(x, y)
}

func (t *glTarget) End() {
	if !t.begun {
		return
	}
	gl.End()
	t.begun = false
}

func (*glTarget) Flush() {
	gl.Flush()
	if e := gl.GetError(); e != gl.NO_ERROR {
		fmt.Fprintf(os.Stderr, "glplotter: post draw() glError 0x%x\n", e)
	}
}
