package glplotter

import "quadview/gman/drawcmd"

// Graphic is anything the plotter draws each frame.
type Graphic interface {
	Commands() drawcmd.List
}
