package ui

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"mcoo/local-app/internal/model"
)

func TestHexColor(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{in: "#d63030", want: "\033[38;2;214;48;48m"},
		{in: "14284a", want: "\033[38;2;20;40;74m"},
		{in: "#fff", want: "\033[38;2;255;255;255m"},
		{in: "#zzzzzz", want: ColorDefault},
		{in: "", want: ColorDefault},
	}
	for _, tt := range tests {
		if got := HexColor(tt.in); got != tt.want {
			t.Errorf("HexColor(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPrintMarkup(t *testing.T) {
	tests := []struct {
		name     string
		useColor bool
		in       string
		want     string
	}{
		{name: "plain", in: "no tags", want: "no tags\n"},
		{name: "tags dropped", in: "{{yellow}}1{{default}} node", want: "1 node\n"},
		{name: "unterminated", in: "a {{yellow b", want: "a {{yellow b\n"},
		{name: "colored", useColor: true, in: "{{#ff0000}}x", want: "\033[38;2;255;0;0mx\033[0m\n"},
		{name: "colored reset", useColor: true, in: "{{yellow}}x{{default}}y", want: string(ColorYellow) + "x" + string(ColorDefault) + "y\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			NewVisualizer(&buf, tt.useColor).PrintMarkup(tt.in)
			if buf.String() != tt.want {
				t.Errorf("PrintMarkup(%q) = %q, want %q", tt.in, buf.String(), tt.want)
			}
		})
	}
}

func TestElementList(t *testing.T) {
	var buf bytes.Buffer
	eui := NewElementUI(&buf, false)

	eui.ElementList(nil, "")
	if !strings.Contains(buf.String(), "No elements") {
		t.Errorf("empty list output = %q", buf.String())
	}

	buf.Reset()
	eui.ElementList([]model.Element{
		{ID: "el_0001", Type: "water", Label: "Water\nsecond line", X: 370, Y: 230, W: 160, H: 100, Visible: true},
		{ID: "el_0002", Type: "rail", Label: "{{red}}", W: 180, H: 30, Locked: true},
	}, "el_0001")

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("lines = %q", lines)
	}
	if !strings.Contains(lines[0], "el_0002") || !strings.Contains(lines[0], "[locked]") || !strings.Contains(lines[0], "[hidden]") {
		t.Errorf("topmost line = %q", lines[0])
	}
	if !strings.Contains(lines[0], `"{ {red}}"`) {
		t.Errorf("label markup not escaped: %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], ">") || !strings.Contains(lines[1], `"Water"`) || !strings.Contains(lines[1], "370,230 160x100") {
		t.Errorf("selected line = %q", lines[1])
	}
}

func TestPromptString(t *testing.T) {
	u := NewUI(&bytes.Buffer{}, false)
	tests := []struct {
		title string
		dirty bool
		want  string
	}{
		{want: "> "},
		{dirty: true, want: "* > "},
		{title: "OP NORTH", want: "OP NORTH > "},
		{title: "OP NORTH", dirty: true, want: "OP NORTH* > "},
	}
	for _, tt := range tests {
		if got := u.PromptString(tt.title, tt.dirty); got != tt.want {
			t.Errorf("PromptString(%q, %v) = %q, want %q", tt.title, tt.dirty, got, tt.want)
		}
	}
}

func TestJournalList(t *testing.T) {
	var buf bytes.Buffer
	NewJournalUI(&buf, false).JournalList([]model.JournalEntry{
		{ID: 1, Scope: "element", Operation: "add", Args: []string{"water"}, OK: true, Created: time.Now()},
		{ID: 2, Scope: "element", Operation: "show", Args: []string{"el_9"}, Message: "element el_9 not found", Created: time.Now()},
	})

	out := buf.String()
	if !strings.Contains(out, "element add water ok") {
		t.Errorf("ok entry missing:\n%s", out)
	}
	if !strings.Contains(out, "element show el_9 failed element el_9 not found") {
		t.Errorf("failed entry missing:\n%s", out)
	}
}
