package tui

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	colorWhite     = lipgloss.Color("#FFFFFF")
	colorLightGray = lipgloss.Color("#CCCCCC")
	colorGray      = lipgloss.Color("#888888")
	colorDarkGray  = lipgloss.Color("#444444")
	colorOrange    = lipgloss.Color("#FC4C02") // Strava orange
	colorRed       = lipgloss.Color("#FF5555")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorOrange)

	userStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorWhite)

	coachStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorOrange)

	usageStyle = lipgloss.NewStyle().
			Foreground(colorGray).
			Italic(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorRed).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(colorDarkGray).
			Italic(true)

	inputBorderStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(colorGray).
				Padding(0, 1)
)

const logo = `
  ████████╗ ██████╗██╗   ██╗    ██████╗  ██████╗ ██╗    ██╗███████╗██████╗
  ╚══██╔══╝██╔════╝██║   ██║    ██╔══██╗██╔═══██╗██║    ██║██╔════╝██╔══██╗
     ██║   ██║     ██║   ██║    ██████╔╝██║   ██║██║ █╗ ██║█████╗  ██████╔╝
     ██║   ██║     ██║   ██║    ██╔═══╝ ██║   ██║██║███╗██║██╔══╝  ██╔══██╗
     ██║   ╚██████╗╚██████╔╝    ██║     ╚██████╔╝╚███╔███╔╝███████╗██║  ██║
     ╚═╝    ╚═════╝ ╚═════╝     ╚═╝      ╚═════╝  ╚══╝╚══╝ ╚══════╝╚═╝  ╚═╝
`
