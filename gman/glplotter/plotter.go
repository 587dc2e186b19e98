package glplotter

import (
	"errors"
	"fmt"
)

var (
	// ErrInit means the windowing library could not be initialized.
	ErrInit = errors.New("failed to initialize window library")
	// ErrWindowCreation means no usable window could be created.
	ErrWindowCreation = errors.New("failed to create window")
	// ErrState means an operation was called out of lifecycle order.
	ErrState = errors.New("invalid plotter state")
)

// State is a step of the plotter lifecycle. It only moves forward.
type State uint

const (
	Uninitialized State = iota
	Initialized
	WindowCreated
	Looping
	Terminated
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Initialized:
		return "initialized"
	case WindowCreated:
		return "window created"
	case Looping:
		return "looping"
	case Terminated:
		return "terminated"
	}
	return fmt.Sprintf("State(%d)", uint(s))
}

func stateError(op string, s State) error {
	return fmt.Errorf("%s: %w: %v", op, ErrState, s)
}

// Plotter owns the windowing library and one window for the life of the
// process.
type Plotter struct {
	platform Platform
	window   Window
	graphics []Graphic
	state    State
	frameID  uint
}

func New(platform Platform) *Plotter {
	return &Plotter{platform: platform}
}

func (p *Plotter) State() State {
	return p.state
}

// Frame is the number of frames rendered so far, wrapping back to 1 after
// 11!.
func (p *Plotter) Frame() uint {
	return p.frameID
}

func (p *Plotter) AddGraphic(g Graphic) {
	p.graphics = append(p.graphics, g)
}

// Init initializes the windowing library. On failure the plotter is
// terminated.
func (p *Plotter) Init() error {
	if p.state != Uninitialized {
		return stateError("init", p.state)
	}
	if err := p.platform.Init(); err != nil {
		p.state = Terminated
		return fmt.Errorf("%w: %v", ErrInit, err)
	}
	p.state = Initialized
	return nil
}

// CreateWindow opens the window and makes its context current. On failure the
// library is torn down and the plotter is terminated.
func (p *Plotter) CreateWindow(width, height int, title string) error {
	if p.state != Initialized {
		return stateError("create window", p.state)
	}
	w, err := p.platform.CreateWindow(width, height, title)
	if err == nil && w == nil {
		err = errors.New("no window handle")
	}
	if err != nil {
		p.platform.Terminate()
		p.state = Terminated
		return fmt.Errorf("%w: %v", ErrWindowCreation, err)
	}
	p.window = w
	p.state = WindowCreated
	return nil
}

// Terminate destroys the window and releases the windowing library. Calls
// after the first are no-ops.
func (p *Plotter) Terminate() {
	if p.state == Terminated {
		return
	}
	if p.window != nil {
		p.window.Destroy()
		p.window = nil
	}
	if p.state != Uninitialized {
		p.platform.Terminate()
	}
	p.state = Terminated
}

// Run initializes platform, opens the window described by cfg, draws graphics
// until the window is closed and tears everything down on every path.
func Run(cfg Config, platform Platform, graphics ...Graphic) error {
	p := New(platform)
	defer p.Terminate()

	if err := p.Init(); err != nil {
		return err
	}
	if err := p.CreateWindow(cfg.Width, cfg.Height, cfg.Title); err != nil {
		return err
	}
	for _, g := range graphics {
		p.AddGraphic(g)
	}
	return p.Serve()
}
