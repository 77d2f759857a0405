package renderer

import (
	"github.com/danielhams/Levgen-Algorithm-Benchmarks/pkg/game/state"
)

// Renderer displays the result of a generation run.
// Implementations include the terminal preview and the Ebiten viewer.
type Renderer interface {
	// Init prepares colours, windows and similar resources.
	Init()

	// RenderRun shows the run. It may block until the user closes the view.
	RenderRun(r *state.Run) error
}

// Current holds the active renderer instance
var Current Renderer

// SetRenderer sets the active renderer
func SetRenderer(r Renderer) {
	Current = r
}

// Init initializes the current renderer
func Init() {
	if Current != nil {
		Current.Init()
	}
}

// RenderRun renders the run with the current renderer
func RenderRun(r *state.Run) error {
	if Current == nil {
		return nil
	}
	return Current.RenderRun(r)
}
