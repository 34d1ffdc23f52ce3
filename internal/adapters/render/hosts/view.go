package hosts

import (
	"fmt"
	"math"
	"strings"

	"github.com/bnema/superuser/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

type RenderOptions struct {
	// Entry is the address players start on; it is tagged in the listing.
	Entry    string
	BarWidth int
}

const defaultBarWidth = 24

func renderView(hosts []domain.Host, opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render("Network"),
		s.header.Render(fmt.Sprintf("hosts: %d", len(hosts))),
	}

	if len(hosts) == 0 {
		lines = append(lines, s.empty.Render("No hosts configured."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	rooted := 0
	width := 0
	for _, host := range hosts {
		if host.Hacked {
			rooted++
		}
		width = max(width, len(host.Address))
	}

	barWidth := opts.BarWidth
	if barWidth <= 0 {
		barWidth = defaultBarWidth
	}
	lines = append(lines, lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.detail.Render("rooted: "),
		renderProgressBar(rooted, len(hosts), barWidth, s),
		s.detail.Render(fmt.Sprintf(" %d/%d", rooted, len(hosts))),
	))
	lines = append(lines, "")

	for _, host := range hosts {
		lines = append(lines, hostLine(host, width, opts, s))
	}

	if rooted == len(hosts) {
		lines = append(lines, s.win.Render("All hosts rooted."))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func hostLine(host domain.Host, width int, opts RenderOptions, s styles) string {
	status := s.locked.Render("[locked]")
	if host.Hacked {
		status = s.rooted.Render("[root]  ")
	}

	address := fmt.Sprintf("%-*s", width, host.Address)
	if host.Address == opts.Entry {
		address = s.entry.Render(address)
	}

	parts := []string{status, " ", address, " ", s.detail.Render(hostDetail(host))}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func hostDetail(host domain.Host) string {
	files := fmt.Sprintf("%d files", host.Files.Len())
	if host.Files.Len() == 1 {
		files = "1 file"
	}

	if host.Hacked || host.PuzzleKind == "" {
		return files
	}
	return fmt.Sprintf("%s, exploit: %s", files, host.PuzzleKind)
}

func renderProgressBar(done, total, width int, s styles) string {
	if width <= 0 {
		return ""
	}

	filled := 0
	if total > 0 {
		filled = int(math.Round(float64(width) * float64(done) / float64(total)))
	}
	filled = min(max(filled, 0), width)

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.barBracket.Render("["),
		s.barFill.Render(strings.Repeat("=", filled)),
		s.barEmpty.Render(strings.Repeat("-", width-filled)),
		s.barBracket.Render("]"),
	)
}
