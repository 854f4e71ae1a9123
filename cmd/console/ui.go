package main

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/jwebster45206/quest-engine/internal/journal"
	"github.com/jwebster45206/quest-engine/pkg/quest"
	"github.com/jwebster45206/quest-engine/pkg/worldfile"
	"github.com/muesli/reflow/wordwrap"
)

// row is one selectable line: a requirement or a failure method of a quest.
type row struct {
	quest   *quest.Quest
	req     *quest.Requirement
	failure *quest.FailureMethod
}

// QuestUI is the BubbleTea model for inspecting a world's quests.
// https://github.com/charmbracelet/bubbletea
type QuestUI struct {
	world           *worldfile.World
	journal         *journal.Journal
	rows            []row
	cursor          int
	journalViewport viewport.Model
	ready           bool
	width           int
	height          int
	status          string

	// Quit confirmation state
	showQuitModal bool

	copyToClipboard func(string) error
}

var (
	questPanelStyle = lipgloss.NewStyle().
			PaddingTop(1).
			PaddingLeft(2).
			PaddingRight(1)

	journalPanelStyle = lipgloss.NewStyle().
				PaddingTop(1).
				PaddingRight(2)

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")). // pink
			Bold(true)

	questNameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")). // purple
			Bold(true)

	completeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")) // green

	failedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")) // red

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // dark grey

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("205")).
			Bold(true)

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(1, 2).
			Background(lipgloss.Color("235")).
			Foreground(lipgloss.Color("255"))

	modalTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Align(lipgloss.Center)
)

func NewQuestUI(w *worldfile.World, j *journal.Journal) QuestUI {
	var rows []row
	for _, key := range w.QuestKeys() {
		q := w.Quests[key]
		for _, r := range q.Requirements() {
			rows = append(rows, row{quest: q, req: r})
		}
		for _, f := range q.FailureMethods() {
			rows = append(rows, row{quest: q, failure: f})
		}
	}

	return QuestUI{
		world:           w,
		journal:         j,
		rows:            rows,
		journalViewport: viewport.New(30, 20),
		copyToClipboard: clipboard.WriteAll,
	}
}

func (m QuestUI) Init() tea.Cmd {
	return nil
}

func (m QuestUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.showQuitModal {
		return m.updateQuitModal(msg)
	}

	var vpCmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		_, journalWidth := m.panelWidths()
		m.journalViewport.Width = journalWidth - 2
		m.journalViewport.Height = m.height - 4
		m.ready = true
		m.writeJournal()

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.showQuitModal = true
			return m, nil
		case tea.KeyUp:
			m.moveCursor(-1)
			return m, nil
		case tea.KeyDown:
			m.moveCursor(1)
			return m, nil
		case tea.KeyEnter, tea.KeySpace:
			m.activate()
			return m, nil
		}

		switch msg.String() {
		case "k":
			m.moveCursor(-1)
			return m, nil
		case "j":
			m.moveCursor(1)
			return m, nil
		case "q":
			m.showQuitModal = true
			return m, nil
		case "y":
			if err := m.copyToClipboard(m.journal.String()); err != nil {
				m.status = failedStyle.Render("Copy failed: " + err.Error())
			} else {
				m.status = completeStyle.Render(fmt.Sprintf("Copied %d journal entries", m.journal.Len()))
			}
			return m, nil
		}
	}

	m.journalViewport, vpCmd = m.journalViewport.Update(msg)
	return m, vpCmd
}

func (m *QuestUI) moveCursor(delta int) {
	if len(m.rows) == 0 {
		return
	}
	m.cursor = (m.cursor + delta + len(m.rows)) % len(m.rows)
}

// activate completes the selected requirement or triggers the selected
// failure method. The quest reacts through its own notifications.
func (m *QuestUI) activate() {
	if len(m.rows) == 0 {
		return
	}
	r := m.rows[m.cursor]
	switch {
	case r.req != nil:
		r.req.MarkComplete()
	case r.failure != nil:
		r.failure.MarkFailed()
	}
	m.status = ""
	m.writeJournal()
}

func (m *QuestUI) writeJournal() {
	_, journalWidth := m.panelWidths()
	var content strings.Builder
	content.WriteString(titleStyle.Render("JOURNAL") + "\n\n")
	if m.journal.Len() == 0 {
		content.WriteString(promptStyle.Render("Nothing has happened yet.") + "\n")
	}
	for _, e := range m.journal.Entries() {
		line := wordwrap.String(e.String(), max(journalWidth-4, 10))
		switch e.Event {
		case quest.EventFailed:
			line = failedStyle.Render(line)
		case quest.EventCompleted:
			line = completeStyle.Render(line)
		}
		content.WriteString(line + "\n")
	}
	m.journalViewport.SetContent(content.String())
	m.journalViewport.GotoBottom()
}

func (m QuestUI) panelWidths() (int, int) {
	questWidth := int(float64(m.width)*0.6) - 2
	return questWidth, m.width - questWidth - 4
}

func (m QuestUI) renderQuests(width int) string {
	wrapWidth := max(width-8, 10)

	var content strings.Builder
	content.WriteString(titleStyle.Render(strings.ToUpper(m.world.Name)) + "\n")
	if m.world.Description != "" {
		content.WriteString(promptStyle.Render(wordwrap.String(m.world.Description, wrapWidth)) + "\n")
	}
	content.WriteString("\n")

	var current *quest.Quest
	for i, r := range m.rows {
		if r.quest != current {
			current = r.quest
			content.WriteString(questNameStyle.Render(current.Name) + " " + renderStatus(current) + "\n")
			if current.Description != "" {
				content.WriteString(wordwrap.String(current.Description, wrapWidth) + "\n")
			}
		}

		line := "  " + renderRow(r)
		if i == m.cursor {
			line = selectedStyle.Render("▶ " + renderRow(r))
		}
		content.WriteString(line + "\n")
	}
	if len(m.rows) == 0 {
		content.WriteString(promptStyle.Render("This world has no requirements or failure methods.") + "\n")
	}

	content.WriteString("\n")
	if m.status != "" {
		content.WriteString(m.status + "\n")
	}
	content.WriteString(promptStyle.Render("↑/↓ select • Enter complete/fail • y copy journal • Esc quit"))
	return content.String()
}

func renderRow(r row) string {
	switch {
	case r.req != nil:
		box := "[ ]"
		if r.req.IsComplete {
			box = "[✓]"
		}
		return box + " " + r.req.Description
	case r.failure != nil:
		box := "[!]"
		if r.failure.IsFailed {
			box = "[✗]"
		}
		return box + " fails if: " + r.failure.Description
	}
	return ""
}

func renderStatus(q *quest.Quest) string {
	switch q.Status() {
	case quest.StatusCompleted:
		return completeStyle.Render("(completed)")
	case quest.StatusFailed, quest.StatusCompletedFailed:
		return failedStyle.Render("(" + q.Status() + ")")
	default:
		return promptStyle.Render("(pending)")
	}
}

func (m QuestUI) updateQuitModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEnter:
			return m, tea.Quit
		case tea.KeyEsc:
			m.showQuitModal = false
			return m, nil
		default:
			switch msg.String() {
			case "y", "Y":
				return m, tea.Quit
			case "n", "N":
				m.showQuitModal = false
				return m, nil
			}
		}
	}

	return m, nil
}

func (m QuestUI) renderQuitModal() string {
	var content strings.Builder
	content.WriteString(modalTitleStyle.Render("Quit?"))
	content.WriteString("\n\n")
	content.WriteString("Leave the quest inspector?")
	content.WriteString("\n\n")
	content.WriteString(promptStyle.Render("Press Y to quit, N to continue, or Ctrl+C to force quit"))

	modal := modalStyle.Width(50).Render(content.String())

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal, lipgloss.WithWhitespaceChars(" "))
}

func (m QuestUI) View() string {
	if m.showQuitModal {
		return m.renderQuitModal()
	}

	if !m.ready {
		return "\n  Initializing..."
	}

	questWidth, journalWidth := m.panelWidths()

	questPanel := questPanelStyle.Width(questWidth).Height(m.height - 2).Render(m.renderQuests(questWidth))
	journalPanel := journalPanelStyle.Width(journalWidth).Height(m.height - 2).Render(m.journalViewport.View())

	return lipgloss.JoinHorizontal(lipgloss.Top, questPanel, journalPanel)
}
