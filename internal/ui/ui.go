// Package ui renders shell output for the MCOO editor.
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

type UI struct {
	writer   io.Writer
	useColor bool
}

func NewUI(w io.Writer, useColor bool) *UI {
	return &UI{writer: w, useColor: useColor}
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Writer returns the output writer.
func (u *UI) Writer() io.Writer {
	return u.writer
}

func (u *UI) colorize(message string, color Color) string {
	if !u.useColor || color == ColorDefault {
		return message
	}
	return fmt.Sprintf("%s%s%s", color, message, ColorDefault)
}

func (u *UI) Printf(format string, args ...interface{}) {
	fmt.Fprintf(u.writer, format, args...)
}

func (u *UI) Println(message string) {
	fmt.Fprintln(u.writer, message)
}

func (u *UI) PrintlnColored(message string, color Color) {
	fmt.Fprintln(u.writer, u.colorize(message, color))
}

func (u *UI) Error(message string) {
	u.PrintlnColored("Error: "+message, ColorLightOrange)
}

func (u *UI) Success(message string) {
	u.PrintlnColored(message, ColorLightGreen)
}

func (u *UI) Warning(message string) {
	u.PrintlnColored("Warning: "+message, ColorLightYellow)
}

func (u *UI) Info(message string) {
	u.PrintlnColored(message, ColorGray)
}

// PromptString builds the shell prompt from the project title and the
// unsaved-changes flag.
func (u *UI) PromptString(title string, dirty bool) string {
	var b strings.Builder
	if title != "" {
		b.WriteString(u.colorize(title, ColorLightBlue))
		if dirty {
			b.WriteString(u.colorize("*", ColorLightRed))
		}
		b.WriteString(" ")
	} else if dirty {
		b.WriteString(u.colorize("* ", ColorLightRed))
	}
	b.WriteString(u.colorize("> ", ColorGreen))
	return b.String()
}
