package tui

import (
	"fmt"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the ASCII art banner for the interactive CLI.
func PrintBanner() {
	p := termenv.ColorProfile()
	lines := []struct {
		text  string
		color string
	}{
		{"                _                        _        ", "#38bdf8"},
		{"   __ _ _   _| |_ ___  _ __ ___   __ _| |_ __ _ ", "#22d3ee"},
		{"  / _` | | | | __/ _ \\| '_ ` _ \\ / _` | __/ _` |", "#2dd4bf"},
		{" | (_| | |_| | || (_) | | | | | | (_| | || (_| |", "#34d399"},
		{"  \\__,_|\\__,_|\\__\\___/|_| |_| |_|\\__,_|\\__\\__,_|", "#4ade80"},
	}

	fmt.Println()
	for _, l := range lines {
		fmt.Println(termenv.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Println()
}
