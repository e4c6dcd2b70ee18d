package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

const inputHeight = 3

// creates the chat application for the given user identity
func NewApp(userID string) *Model {
	ti := textinput.New()
	ti.Placeholder = "問教練任何訓練問題..."
	ti.Focus()
	ti.CharLimit = 0
	ti.Prompt = "> "
	ti.PromptStyle = lipgloss.NewStyle().Foreground(colorLightGray)
	ti.TextStyle = lipgloss.NewStyle().Foreground(colorWhite)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(colorOrange)

	return &Model{
		userID:  userID,
		input:   ti,
		spinner: sp,
		client:  NewCoachClient(),
	}
}

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "enter":
			query := strings.TrimSpace(m.input.Value())
			if query == "" || m.isFetching {
				return m, nil
			}

			m.isFetching = true
			m.input.SetValue("")
			m.history = append(m.history, MessageModel{Role: "user", Content: query})
			m.refreshViewport()

			return m, tea.Batch(m.spinner.Tick, m.client.ChatCmd(m.userID, query))

		case "ctrl+l":
			m.history = nil
			m.refreshViewport()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = msg.Width - 8

		viewportHeight := msg.Height - inputHeight - 6
		if !m.ready {
			m.viewport = viewport.New(msg.Width-2, viewportHeight)
			m.glamourRenderer, _ = glamour.NewTermRenderer(
				glamour.WithAutoStyle(),
				glamour.WithWordWrap(msg.Width-6),
			)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width - 2
			m.viewport.Height = viewportHeight
		}

		m.refreshViewport()

	case CoachResponseMsg:
		m.isFetching = false

		usage := fmt.Sprintf("今日用量 %d/%d", msg.current, msg.limit)
		if msg.limitReached {
			usage += " (已達上限)"
		}

		m.history = append(m.history, MessageModel{
			Role:    "coach",
			Content: msg.answer,
			Usage:   usage,
		})

		m.refreshViewport()
		m.input.Focus()
		return m, nil

	case CoachErrorMsg:
		m.isFetching = false
		m.err = msg.err
		m.input.Focus()
		return m, nil

	case spinner.TickMsg:
		if m.isFetching {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	var inputCmd, viewportCmd tea.Cmd
	m.input, inputCmd = m.input.Update(msg)
	m.viewport, viewportCmd = m.viewport.Update(msg)

	return m, tea.Batch(inputCmd, viewportCmd)
}

func (m *Model) View() string {
	if !m.ready {
		return "loading..."
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("TCU POWER — AI COACH"))
	b.WriteString(helpStyle.Render("  [Enter: Send] [Ctrl+L: Clear] [Ctrl+C: Quit]"))
	b.WriteString("\n\n")

	b.WriteString(m.viewport.View())
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(errorStyle.Render(fmt.Sprintf("錯誤: %v", m.err)))
		b.WriteString("\n")
	}

	if m.isFetching {
		b.WriteString(m.spinner.View())
		b.WriteString(usageStyle.Render("教練思考中..."))
		b.WriteString("\n")
	}

	b.WriteString(inputBorderStyle.Width(m.width - 4).Render(m.input.View()))

	return b.String()
}

func (m *Model) refreshViewport() {
	if !m.ready {
		return
	}

	var b strings.Builder

	if len(m.history) == 0 {
		b.WriteString(logo)
		b.WriteString("\n")
		b.WriteString(usageStyle.Render("  輸入訊息開始與 AI 教練對話"))
	}

	for _, msg := range m.history {
		switch msg.Role {
		case "user":
			b.WriteString(userStyle.Render("你"))
			b.WriteString("\n")
			b.WriteString(msg.Content)

		case "coach":
			b.WriteString(coachStyle.Render("教練"))
			b.WriteString("\n")
			b.WriteString(m.renderMarkdown(msg.Content))

			if msg.Usage != "" {
				b.WriteString(usageStyle.Render(msg.Usage))
				b.WriteString("\n")
			}
		}

		b.WriteString("\n\n")
	}

	m.viewport.SetContent(b.String())
	m.viewport.GotoBottom()
}

// coach replies come back as markdown; render them when the renderer is
// available, fall back to raw text
func (m *Model) renderMarkdown(content string) string {
	if m.glamourRenderer == nil {
		return content
	}

	rendered, err := m.glamourRenderer.Render(content)
	if err != nil {
		return content
	}

	return strings.TrimRight(rendered, "\n") + "\n"
}
