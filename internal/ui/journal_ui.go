package ui

import (
	"fmt"
	"io"
	"strings"

	"mcoo/local-app/internal/model"
)

type JournalUI struct {
	visualizer *Visualizer
}

func NewJournalUI(w io.Writer, useColor bool) *JournalUI {
	return &JournalUI{visualizer: NewVisualizer(w, useColor)}
}

// JournalList prints journal entries oldest first.
func (jui *JournalUI) JournalList(entries []model.JournalEntry) {
	if len(entries) == 0 {
		jui.visualizer.Println("Journal is empty")
		return
	}

	for _, e := range entries {
		status := "{{green}}ok{{default}}"
		if !e.OK {
			status = "{{red}}failed{{default}}"
		}
		line := fmt.Sprintf("%5d {{gray}}%s{{default}} %s %s", e.ID, e.Created.Local().Format("2006-01-02 15:04:05"),
			escape(strings.TrimSpace(strings.Join(append([]string{e.Scope, e.Operation}, e.Args...), " "))), status)
		if e.Message != "" {
			line += " {{gray}}" + escape(e.Message) + "{{default}}"
		}
		jui.visualizer.PrintMarkup(line)
	}
}
