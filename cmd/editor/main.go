package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vuhoanglam/recipe-flow/internal/tui"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: editor <video_id>_recipe.json")
		os.Exit(1)
	}

	m, err := tui.New(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open %s: %v\n", os.Args[1], err)
		os.Exit(1)
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Editor error: %v\n", err)
		os.Exit(1)
	}
}
