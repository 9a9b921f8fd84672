package ui

import (
	"fmt"
	"strconv"
	"strings"
)

type Color string

const (
	ColorDefault Color = "\033[0m"
	ColorGray    Color = "\033[38;2;150;150;150m"
	ColorWhite   Color = "\033[38;2;255;255;255m"

	ColorLightRed Color = "\033[38;2;255;150;150m"
	ColorRed      Color = "\033[38;2;255;0;0m"

	ColorLightGreen Color = "\033[38;2;150;255;150m"
	ColorGreen      Color = "\033[38;2;0;255;0m"

	ColorLightYellow Color = "\033[38;2;255;255;150m"
	ColorYellow      Color = "\033[38;2;255;255;0m"

	ColorLightBlue   Color = "\033[38;2;150;150;255m"
	ColorLightPurple Color = "\033[38;2;200;150;255m"
	ColorLightOrange Color = "\033[38;2;255;200;150m"
	ColorOrange      Color = "\033[38;2;255;165;0m"
)

// HexColor converts an element color such as "#d63030" into a true-color
// escape. Malformed values map to ColorDefault.
func HexColor(hex string) Color {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return ColorDefault
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return ColorDefault
	}
	return Color(fmt.Sprintf("\033[38;2;%d;%d;%dm", v>>16&0xff, v>>8&0xff, v&0xff))
}

// markupColors maps the {{name}} tags understood by Visualizer.PrintMarkup.
var markupColors = map[string]Color{
	"default": ColorDefault,
	"gray":    ColorGray,
	"yellow":  ColorYellow,
	"orange":  ColorOrange,
	"red":     ColorLightRed,
	"green":   ColorLightGreen,
	"blue":    ColorLightBlue,
	"purple":  ColorLightPurple,
}
