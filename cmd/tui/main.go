package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/TCUnion/power/internal/tui"
)

func main() {
	userID := os.Getenv("TCU_USER_ID")

	if len(os.Args) > 1 {
		userID = os.Args[1]
	}

	if userID == "" {
		fmt.Println("usage: tui <strava-athlete-id | auth-uuid>")
		fmt.Println("  (or set TCU_USER_ID)")
		os.Exit(1)
	}

	app := tui.NewApp(userID)
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())

	if _, err := p.Run(); err != nil {
		fmt.Printf("error running tui: %v\n", err)
		os.Exit(1)
	}
}
