package console

import (
	"fmt"

	"github.com/bnema/graph-presence-cli/internal/domain"
	"github.com/jedib0t/go-pretty/v6/table"
)

// RenderPresenceOptions lists selectable options by index and marks the
// selected one. A selected index out of range marks nothing.
func RenderPresenceOptions(title string, options []domain.PresenceOption, selected int) string {
	s := newStyles()

	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetTitle(title)
	t.AppendHeader(table.Row{"#", "", "Availability", "Activity"})

	for i, option := range options {
		marker := ""
		if i == selected {
			marker = "*"
		}
		glyph := s.tone(option.Availability.Tone()).Render(option.Availability.Glyph())
		t.AppendRow(table.Row{fmt.Sprintf("%d%s", i, marker), glyph, string(option.Availability), option.Activity})
	}

	return t.Render() + "\n"
}
