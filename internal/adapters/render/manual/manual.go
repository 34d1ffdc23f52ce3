// Package manual renders manual page bodies, which are written in Markdown.
package manual

import (
	"fmt"
	"strings"

	"github.com/bnema/superuser/internal/domain"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/x/ansi"
)

const minWrap = 8

// Lines renders the body as plain text wrapped to fit inside the manual's width, one
// entry per terminal row, with no escape sequences. The title is not included.
func Lines(m domain.Manual) ([]string, error) {
	wrap := m.Size.X - 2
	if wrap < minWrap {
		wrap = minWrap
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("notty"),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		return nil, fmt.Errorf("create manual renderer: %w", err)
	}

	out, err := renderer.Render(m.Body)
	if err != nil {
		return nil, fmt.Errorf("render manual %s: %w", m.ID, err)
	}

	return tidy(ansi.Strip(out)), nil
}

// Render produces a styled page for printing to a terminal. style is a glamour
// standard style name such as "dark", "light" or "notty".
func Render(m domain.Manual, style string, width int) (string, error) {
	if style == "" {
		style = "notty"
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("create manual renderer: %w", err)
	}

	title := m.Title
	if title == "" {
		title = m.ID
	}

	out, err := renderer.Render("# " + title + "\n\n" + m.Body)
	if err != nil {
		return "", fmt.Errorf("render manual %s: %w", m.ID, err)
	}

	return strings.TrimRight(out, "\n "), nil
}

// tidy drops glamour's document margin and surrounding blank lines.
func tidy(out string) []string {
	raw := strings.Split(out, "\n")
	lines := make([]string, 0, len(raw))
	indent := -1

	for _, line := range raw {
		line = strings.TrimRight(line, " ")
		if strings.TrimSpace(line) == "" {
			lines = append(lines, "")
			continue
		}
		lead := len(line) - len(strings.TrimLeft(line, " "))
		if indent < 0 || lead < indent {
			indent = lead
		}
		lines = append(lines, line)
	}

	for i, line := range lines {
		if len(line) >= indent && indent > 0 {
			lines[i] = line[indent:]
		}
	}

	for len(lines) > 0 && lines[0] == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	return lines
}
