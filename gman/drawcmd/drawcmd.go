// Package drawcmd describes an immediate-mode frame as an ordered list of
// commands, so that geometry and colors are data rather than inline GL calls.
package drawcmd

import "quadview/primatives"

// Mode is the primitive assembled from the vertices between Begin and End.
type Mode uint

const (
	// Quads treats every four vertices as one closed convex polygon.
	Quads Mode = iota + 1
)

func (m Mode) String() string {
	switch m {
	case Quads:
		return "quads"
	}
	return "unknown"
}

// Target executes draw commands. glplotter implements it on top of OpenGL,
// raster implements it in software.
type Target interface {
	ClearColor(c primatives.Color)
	Clear()
	Begin(m Mode)
	Color(c primatives.Color)
	Vertex(x, y float32)
	End()
	Flush()
}

type Command interface {
	Apply(t Target)
}

type (
	SetClearColor struct{ primatives.Color }
	Clear         struct{}
	Begin         struct{ Mode Mode }
	SetColor      struct{ primatives.Color }
	Vertex        struct{ X, Y float32 }
	End           struct{}
	Flush         struct{}
)

func (c SetClearColor) Apply(t Target) { t.ClearColor(c.Color) }
func (Clear) Apply(t Target)           { t.Clear() }
func (c Begin) Apply(t Target)         { t.Begin(c.Mode) }
func (c SetColor) Apply(t Target)      { t.Color(c.Color) }
func (c Vertex) Apply(t Target)        { t.Vertex(c.X, c.Y) }
func (End) Apply(t Target)             { t.End() }
func (Flush) Apply(t Target)           { t.Flush() }

// List is a frame's worth of commands, executed in order.
type List []Command

// Replay applies every command in l to t.
func (l List) Replay(t Target) {
	for _, c := range l {
		c.Apply(t)
	}
}
