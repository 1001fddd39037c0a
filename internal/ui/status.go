package ui

import (
	"fmt"
	"strings"
)

// Info is the scoreboard content shown under the grid.
type Info struct {
	Generation int
	Score      int
	Rule       string
	Autoplay   bool
	Status     string
}

// StatusLines formats the scoreboard text.
func StatusLines(info Info) []string {
	rule := info.Rule
	if rule == "" {
		rule = "custom"
	}
	mode := "paused"
	if info.Autoplay {
		mode = "autoplay"
	}
	lines := []string{
		fmt.Sprintf("Generation %d   Active %d", info.Generation, info.Score),
		fmt.Sprintf("Rule %s   %s   H for help", strings.ToUpper(rule[:1])+rule[1:], mode),
	}
	if info.Status != "" {
		lines = append(lines, info.Status)
	}
	return lines
}

// HelpLines lists the key bindings shown by the help overlay.
func HelpLines() []string {
	return []string{
		"Click   toggle cell",
		"Space   step once",
		"A       toggle autoplay",
		"R       restart (clear)",
		"N       random soup",
		"S       save",
		"L       load",
		"H       hide help",
		"Q/Esc   quit",
	}
}
