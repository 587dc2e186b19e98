package gman

import (
	"quadview/gman/drawcmd"
	glp "quadview/gman/glplotter"
	"quadview/primatives"
)

// Quad is a single flat-colored quadrilateral drawn over a cleared frame.
// Corners are in normalized device coordinates and must form a convex
// polygon in order.
type Quad struct {
	Corners    [4]primatives.Vector2[float32]
	Fill       primatives.Color
	Background primatives.Color
}

var _ glp.Graphic = Quad{}

// DefaultQuad covers the whole viewport in black over GL's default clear
// color.
func DefaultQuad() Quad {
	return Quad{
		Corners: [4]primatives.Vector2[float32]{
			{X: -1, Y: -1},
			{X: 1, Y: -1},
			{X: 1, Y: 1},
			{X: -1, Y: 1},
		},
		Fill:       primatives.Black,
		Background: primatives.Transparent,
	}
}

func (q Quad) Commands() drawcmd.List {
	l := make(drawcmd.List, 0, 10)
	l = append(l,
		drawcmd.SetClearColor{Color: q.Background},
		drawcmd.Clear{},
		drawcmd.Begin{Mode: drawcmd.Quads},
		drawcmd.SetColor{Color: q.Fill},
	)
	for _, c := range q.Corners {
		l = append(l, drawcmd.Vertex{X: c.X, Y: c.Y})
	}
	return append(l, drawcmd.End{}, drawcmd.Flush{})
}
