package glplotter

import (
	"fmt"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"quadview/gman/drawcmd"
)

// Config is the window the plotter opens.
type Config struct {
	Width, Height int
	Title         string
	// SwapInterval is the number of screen refreshes to wait before a buffer
	// swap. 1 is vsync.
	SwapInterval int
}

func DefaultConfig() Config {
	return Config{
		Width:        800,
		Height:       600,
		Title:        "Chess Renderer",
		SwapInterval: 1,
	}
}

// Platform is the windowing library. All methods must be called from the
// main thread.
type Platform interface {
	Init() error
	CreateWindow(width, height int, title string) (Window, error)
	PollEvents()
	// Terminate releases the library's process-wide state.
	Terminate()
}

// Window is an on-screen surface with a current drawing context.
type Window interface {
	ShouldClose() bool
	SwapBuffers()
	Destroy()
	// Canvas is where frames for this window are drawn.
	Canvas() drawcmd.Target
}

type glfwPlatform struct {
	swapInterval int
}

// NewGLFW returns the GLFW/OpenGL platform.
func NewGLFW(swapInterval int) Platform {
	return &glfwPlatform{swapInterval: swapInterval}
}

func (p *glfwPlatform) Init() error {
	return glfw.Init()
}

func (p *glfwPlatform) CreateWindow(w, h int, title string) (Window, error) {
	window, err := glfw.CreateWindow(w, h, title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("glfw.CreateWindow failed: %w", err)
	}
	window.MakeContextCurrent()
	err = gl.Init()
	if err != nil {
		window.Destroy()
		return nil, fmt.Errorf("gl.Init failed: %w", err)
	}
	glfw.SwapInterval(p.swapInterval)

	return &glfwWindow{Window: window, target: &glTarget{}}, nil
}

func (p *glfwPlatform) PollEvents() {
	glfw.PollEvents()
}

func (p *glfwPlatform) Terminate() {
	glfw.Terminate()
}

type glfwWindow struct {
	*glfw.Window
	target *glTarget
}

func (w *glfwWindow) Canvas() drawcmd.Target {
	return w.target
}
