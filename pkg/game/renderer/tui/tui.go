// Package tui renders a generation run to the terminal: a summary of the
// run followed by a coloured preview of the selected level.
package tui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"github.com/danielhams/Levgen-Algorithm-Benchmarks/pkg/engine/terminal"
	"github.com/danielhams/Levgen-Algorithm-Benchmarks/pkg/engine/world"
	"github.com/danielhams/Levgen-Algorithm-Benchmarks/pkg/game/renderer"
	"github.com/danielhams/Levgen-Algorithm-Benchmarks/pkg/game/state"
)

// Preview icons
const (
	IconRoom  = "█"
	IconEmpty = "·"
)

// TUIRenderer is the terminal renderer implementation
type TUIRenderer struct {
	Out io.Writer

	// Width caps the preview width in cells. Zero uses the terminal width.
	Width int

	// Plain disables colours.
	Plain bool

	colorHeading color.Style
	colorLabel   color.Style
	colorValue   color.Style
	colorEmpty   color.Style
}

// New creates a new TUI renderer writing to stdout
func New() *TUIRenderer {
	return &TUIRenderer{Out: os.Stdout}
}

// Init initializes the colour styles
func (t *TUIRenderer) Init() {
	t.colorHeading = color.Style{color.FgMagenta, color.OpBold}
	t.colorLabel = color.Style{color.FgGray}
	t.colorValue = color.Style{color.FgGreen, color.OpBold}
	t.colorEmpty = color.Style{color.FgGray}
	if t.Out == nil {
		t.Out = os.Stdout
	}
}

// RenderRun prints the run summary and a preview of the best level.
func (t *TUIRenderer) RenderRun(r *state.Run) error {
	var sb strings.Builder

	sb.WriteString(t.style(t.colorHeading, fmt.Sprintf(gotext.Get("RUN_HEADING"), r.Strategy)))
	sb.WriteString("\n")
	t.writeField(&sb, gotext.Get("RUN_ID"), r.ID)
	t.writeField(&sb, gotext.Get("LEVEL_SIZE"), fmt.Sprintf("%dx%d", r.Config.Width, r.Config.Height))
	t.writeField(&sb, gotext.Get("LEVELS_GENERATED"), fmt.Sprint(len(r.Levels)))
	t.writeField(&sb, gotext.Get("ROOMS_PLACED"), fmt.Sprint(r.Stats.Rooms))
	t.writeField(&sb, gotext.Get("PLACEMENT_ATTEMPTS"), fmt.Sprint(r.Stats.Attempts))
	t.writeField(&sb, gotext.Get("RECOMPACTIONS"), fmt.Sprint(r.Stats.Recompactions))
	for _, timing := range r.Timings {
		t.writeField(&sb, fmt.Sprintf(gotext.Get("TIMING"), timing.Name), timing.Duration.String())
	}

	if l := r.BestLevel(); l != nil {
		sb.WriteString("\n")
		sb.WriteString(t.style(t.colorHeading, fmt.Sprintf(gotext.Get("BEST_LEVEL"), r.Best, r.Metric, l.NumRooms(), l.EmptyTiles())))
		sb.WriteString("\n")
		t.writePreview(&sb, l)
	}

	_, err := io.WriteString(t.Out, sb.String())
	return err
}

func (t *TUIRenderer) writeField(sb *strings.Builder, label, value string) {
	sb.WriteString("  ")
	sb.WriteString(t.style(t.colorLabel, label+":"))
	sb.WriteString(" ")
	sb.WriteString(t.style(t.colorValue, value))
	sb.WriteString("\n")
}

// writePreview draws the level, sampling every step cells so it fits the
// available width.
func (t *TUIRenderer) writePreview(sb *strings.Builder, l *world.Level) {
	width := t.Width
	if width <= 0 {
		width = terminal.GetWidth()
	}
	step := previewStep(int(l.Width), width)

	for y := 0; y < int(l.Height); y += step {
		for x := 0; x < int(l.Width); x += step {
			room, ok := l.RoomAt(uint32(x), uint32(y))
			if !ok {
				sb.WriteString(t.style(t.colorEmpty, IconEmpty))
				continue
			}
			if t.Plain {
				sb.WriteString(IconRoom)
				continue
			}
			sb.WriteString(color.RGB(room.Color[0], room.Color[1], room.Color[2]).Sprint(IconRoom))
		}
		sb.WriteString("\n")
	}
}

func (t *TUIRenderer) style(s color.Style, text string) string {
	if t.Plain {
		return text
	}
	return s.Sprint(text)
}

// previewStep returns how many level cells each preview character covers.
func previewStep(levelWidth, available int) int {
	if available <= 0 || levelWidth <= available {
		return 1
	}
	return (levelWidth + available - 1) / available
}

var _ renderer.Renderer = (*TUIRenderer)(nil)
