package main

import (
	"flag"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"skytails/internal/tui"
)

func main() {
	serverURL := flag.String("server", "http://localhost:8080", "SkyTails API base URL")
	flag.Parse()

	client, err := tui.NewClient(*serverURL)
	if err != nil {
		log.Fatalf("client init: %v", err)
	}

	p := tea.NewProgram(tui.NewModel(client), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatalf("onboarding wizard: %v", err)
	}
}
