package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/glamour"
)

// represents a chat message in the conversation
type MessageModel struct {
	Role    string
	Content string
	Usage   string
}

// main TUI application model
type Model struct {
	userID string
	width  int
	height int
	err    error

	input           textinput.Model
	viewport        viewport.Model
	spinner         spinner.Model
	glamourRenderer *glamour.TermRenderer

	history    []MessageModel
	isFetching bool
	ready      bool

	client *CoachClient
}

// sent when the coach replies
type CoachResponseMsg struct {
	answer       string
	limitReached bool
	current      int
	limit        int
}

// sent when a request fails
type CoachErrorMsg struct {
	err error
}
