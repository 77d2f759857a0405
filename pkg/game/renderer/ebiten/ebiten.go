// Package ebiten provides an Ebiten window for browsing the levels of a
// generation run.
package ebiten

import (
	"fmt"
	"image/color"
	"sync"
	"time"

	"github.com/aukilabs/go-tooling/pkg/logs"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/danielhams/Levgen-Algorithm-Benchmarks/pkg/engine/world"
	"github.com/danielhams/Levgen-Algorithm-Benchmarks/pkg/game/devtools"
	"github.com/danielhams/Levgen-Algorithm-Benchmarks/pkg/game/renderer"
	"github.com/danielhams/Levgen-Algorithm-Benchmarks/pkg/game/state"
)

const (
	defaultWindowWidth  = 1024
	defaultWindowHeight = 768
	hudHeight           = 20
)

var colorBackground = color.RGBA{R: 12, G: 12, B: 16, A: 0xff}

// EbitenRenderer shows one level at a time, scaled to fill the window.
// Left and right step through the levels, Home jumps to the selected level,
// S saves a screenshot and Escape closes the window.
type EbitenRenderer struct {
	// ScreenshotDir is where S saves the shown level.
	ScreenshotDir string

	windowWidth  int
	windowHeight int
	status       string

	mu      sync.Mutex
	run     *state.Run
	current int
	images  map[int]*ebiten.Image
}

// New creates a new Ebiten renderer
func New() *EbitenRenderer {
	return &EbitenRenderer{
		ScreenshotDir: ".",
		windowWidth:   defaultWindowWidth,
		windowHeight:  defaultWindowHeight,
		images:        make(map[int]*ebiten.Image),
	}
}

// Init sets up the window
func (e *EbitenRenderer) Init() {
	ebiten.SetWindowSize(e.windowWidth, e.windowHeight)
	ebiten.SetWindowTitle("Level Generator")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
}

// RenderRun opens the viewer and blocks until it is closed.
func (e *EbitenRenderer) RenderRun(r *state.Run) error {
	e.mu.Lock()
	e.run = r
	e.current = max(r.Best, 0)
	clear(e.images)
	e.mu.Unlock()

	if len(r.Levels) == 0 {
		return nil
	}
	return ebiten.RunGame(e)
}

// Update handles keyboard input
func (e *EbitenRenderer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	n := len(e.run.Levels)
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight), inpututil.IsKeyJustPressed(ebiten.KeyN):
		e.current = (e.current + 1) % n
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft), inpututil.IsKeyJustPressed(ebiten.KeyP):
		e.current = (e.current + n - 1) % n
	case inpututil.IsKeyJustPressed(ebiten.KeyHome):
		e.current = max(e.run.Best, 0)
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		e.saveScreenshot()
	}
	return nil
}

func (e *EbitenRenderer) saveScreenshot() {
	path, err := devtools.SaveScreenshot(e.ScreenshotDir, e.run.Levels[e.current], time.Now())
	if err != nil {
		logs.Warn(err)
		e.status = "screenshot failed"
		return
	}
	logs.WithTag("run_id", e.run.ID).
		WithTag("level", e.current).
		WithTag("path", path).
		Info("screenshot saved")
	e.status = "saved " + path
}

// Draw renders the current level
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	e.mu.Lock()
	defer e.mu.Unlock()

	l := e.run.Levels[e.current]
	img := e.levelImage(e.current, l)

	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()-hudHeight
	scale := min(float64(sw)/float64(l.Width), float64(sh)/float64(l.Height))

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(
		(float64(sw)-scale*float64(l.Width))/2,
		hudHeight+(float64(sh)-scale*float64(l.Height))/2,
	)
	screen.DrawImage(img, op)

	marker := ""
	if e.current == e.run.Best {
		marker = " *"
	}
	ebitenutil.DebugPrint(screen, fmt.Sprintf("%s  level %d/%d%s  rooms %d  empty %d  %s",
		e.run.Strategy, e.current+1, len(e.run.Levels), marker, l.NumRooms(), l.EmptyTiles(), e.status))
}

// levelImage returns the cached one pixel per cell image of a level.
func (e *EbitenRenderer) levelImage(idx int, l *world.Level) *ebiten.Image {
	if img, ok := e.images[idx]; ok {
		return img
	}
	rgba := renderer.LevelImage(l)
	img := ebiten.NewImage(int(l.Width), int(l.Height))
	img.WritePixels(rgba.Pix)
	e.images[idx] = img
	return img
}

// Layout returns the logical screen size, which follows the window.
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

var _ renderer.Renderer = (*EbitenRenderer)(nil)
