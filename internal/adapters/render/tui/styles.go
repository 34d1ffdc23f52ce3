package tui

import "github.com/charmbracelet/lipgloss"

type styles struct {
	console     brush
	caret       brush
	graph       brush
	graphTitle  brush
	hostRooted  brush
	hostLocked  brush
	hostCurrent brush
	hostTarget  brush
	win         brush
	board       brush
	manualText  lipgloss.Color
}

func newStyles() styles {
	return styles{
		console:     brush{fg: "46", bg: "0"},
		caret:       brush{fg: "0", bg: "46"},
		graph:       brush{fg: "250", bg: "234"},
		graphTitle:  brush{fg: "241", bg: "234", bold: true},
		hostRooted:  brush{fg: "46", bg: "234"},
		hostLocked:  brush{fg: "203", bg: "234"},
		hostCurrent: brush{fg: "39", bg: "234", bold: true},
		hostTarget:  brush{fg: "214", bg: "234", bold: true},
		win:         brush{fg: "0", bg: "46", bold: true},
		board:       brush{fg: "245", bg: "238"},
		manualText:  "236",
	}
}
