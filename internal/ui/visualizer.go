package ui

import (
	"fmt"
	"io"
	"strings"
)

// Visualizer writes lines carrying inline {{color}} tags.
type Visualizer struct {
	writer   io.Writer
	useColor bool
}

func NewVisualizer(w io.Writer, useColor bool) *Visualizer {
	return &Visualizer{writer: w, useColor: useColor}
}

func (v *Visualizer) Printf(format string, args ...interface{}) {
	fmt.Fprintf(v.writer, format, args...)
}

func (v *Visualizer) Println(message string) {
	fmt.Fprintln(v.writer, message)
}

// PrintMarkup writes line followed by a newline. A {{name}} tag switches the
// color until the next tag; {{#rrggbb}} selects a true color. Without color
// the tags are dropped. An unterminated tag is written as text.
func (v *Visualizer) PrintMarkup(line string) {
	var b strings.Builder
	colored := false

	for {
		before, rest, found := strings.Cut(line, "{{")
		b.WriteString(before)
		if !found {
			break
		}
		name, after, closed := strings.Cut(rest, "}}")
		if !closed {
			b.WriteString("{{" + rest)
			break
		}
		line = after

		if !v.useColor {
			continue
		}
		color := markupColors[name]
		if strings.HasPrefix(name, "#") {
			color = HexColor(name)
		}
		if color == "" {
			color = ColorDefault
		}
		b.WriteString(string(color))
		colored = color != ColorDefault
	}

	if colored {
		b.WriteString(string(ColorDefault))
	}
	fmt.Fprintln(v.writer, b.String())
}
