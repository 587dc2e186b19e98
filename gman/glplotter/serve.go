package glplotter

// Serve renders, presents and polls events until the window is asked to
// close. It returns nil when the user closes the window.
func (p *Plotter) Serve() error {
	if p.state != WindowCreated {
		return stateError("serve", p.state)
	}
	p.state = Looping

	for !p.window.ShouldClose() {
		p.Render()
		p.window.SwapBuffers()
		p.platform.PollEvents()
	}
	return nil
}
