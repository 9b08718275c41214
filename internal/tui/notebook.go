package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"jot/internal/notes/data"
	"jot/internal/notes/service"
)

// messageBuffer is the View handed to the notebook in TUI mode. It collects
// output so the model can show it in the status line.
type messageBuffer struct {
	lines []string
}

func (b *messageBuffer) DisplayNotes(notes []data.Note) {
	b.lines = append(b.lines, fmt.Sprintf("%d note(s) loaded.", len(notes)))
}

func (b *messageBuffer) DisplayMessage(message string) {
	b.lines = append(b.lines, message)
}

func (b *messageBuffer) drain() string {
	if len(b.lines) == 0 {
		return ""
	}
	s := strings.Join(b.lines, " ")
	b.lines = nil
	return s
}

// Model is the full-screen notebook front end.
type Model struct {
	notebook service.Notebook
	buf      *messageBuffer

	date   time.Time
	week   bool
	status string

	adding       bool
	onContent    bool
	inputErr     string
	dateInput    textinput.Model
	contentInput textinput.Model

	width  int
	height int
	ready  bool
}

// NewModel creates the TUI model over the given store and notes file.
func NewModel(book *data.Book, notesFile string) Model {
	buf := &messageBuffer{}

	di := textinput.New()
	di.Placeholder = "YYYY-MM-DD HH:MM"
	di.CharLimit = 16
	di.Width = 20

	ci := textinput.New()
	ci.Placeholder = "Note content"
	ci.CharLimit = 256
	ci.Width = 40

	return Model{
		notebook:     service.NewNotebook(buf, book, notesFile),
		buf:          buf,
		date:         time.Now(),
		dateInput:    di,
		contentInput: ci,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		if m.adding {
			return m.updateAdding(msg)
		}

		switch msg.String() {
		case "q":
			return m, tea.Quit
		case "h", "left":
			m.date = m.date.AddDate(0, 0, -m.step())
		case "l", "right":
			m.date = m.date.AddDate(0, 0, m.step())
		case "t":
			m.date = time.Now()
			if m.week {
				m.date = startOfWeek(m.date)
			}
		case "w":
			m.week = !m.week
			if m.week {
				m.date = startOfWeek(m.date)
			}
		case "a":
			m.adding = true
			m.onContent = false
			m.inputErr = ""
			now := time.Now()
			prefill := time.Date(m.date.Year(), m.date.Month(), m.date.Day(),
				now.Hour(), now.Minute(), 0, 0, time.Local)
			m.dateInput.SetValue(prefill.Format(data.TimeLayout))
			m.contentInput.SetValue("")
			return m, m.dateInput.Focus()
		case "r":
			if err := m.notebook.LoadNotes(); err != nil {
				m.status = err.Error()
			} else {
				m.status = m.buf.drain()
			}
		case "s":
			m.notebook.SaveNotes()
			m.status = m.buf.drain()
		}
	}

	return m, nil
}

func (m Model) updateAdding(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.adding = false
		m.dateInput.Blur()
		m.contentInput.Blur()
		return m, nil

	case "tab", "shift+tab":
		m.onContent = !m.onContent
		if m.onContent {
			m.dateInput.Blur()
			return m, m.contentInput.Focus()
		}
		m.contentInput.Blur()
		return m, m.dateInput.Focus()

	case "enter":
		if !m.onContent {
			// Validate the date before moving on to the content field
			if _, err := data.ParseTime(m.dateInput.Value()); err != nil {
				m.inputErr = "invalid date, use YYYY-MM-DD HH:MM"
				return m, nil
			}
			m.onContent = true
			m.dateInput.Blur()
			return m, m.contentInput.Focus()
		}
		if err := m.notebook.AddNote(m.dateInput.Value(), m.contentInput.Value()); err != nil {
			m.inputErr = err.Error()
			return m, nil
		}
		m.adding = false
		m.contentInput.Blur()
		m.status = m.buf.drain()
		return m, nil
	}

	var cmd tea.Cmd
	if m.onContent {
		m.contentInput, cmd = m.contentInput.Update(msg)
	} else {
		m.dateInput, cmd = m.dateInput.Update(msg)
	}

	// Clear error when the user types
	m.inputErr = ""

	return m, cmd
}

func (m Model) step() int {
	if m.week {
		return 7
	}
	return 1
}

func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	var sb strings.Builder

	var notes []data.Note
	if m.week {
		sb.WriteString(titleStyle.Render(fmt.Sprintf(" Week of %s", m.date.Format("Monday, Jan 2 2006"))))
		notes = m.notebook.NotesForWeek(m.date)
	} else {
		sb.WriteString(titleStyle.Render(fmt.Sprintf(" Notes: %s", m.date.Format("Monday, Jan 2 2006"))))
		notes = m.notebook.NotesForDay(m.date)
	}
	sb.WriteString("\n\n")

	if len(notes) == 0 {
		sb.WriteString(emptyStyle.Render("  No notes for this period."))
		sb.WriteString("\n")
	} else {
		for _, n := range notes {
			sb.WriteString("   ")
			sb.WriteString(timeStyle.Render(n.When().Format(data.TimeLayout)))
			sb.WriteString("  ")
			sb.WriteString(n.Content())
			sb.WriteString("\n")
		}
	}

	if m.adding {
		sb.WriteString("\n")
		sb.WriteString(m.renderAddBox())
		sb.WriteString("\n")
	}

	if m.status != "" {
		sb.WriteString("\n")
		sb.WriteString(statusMsgStyle.Render(" " + m.status))
		sb.WriteString("\n")
	}

	content := sb.String()
	if gap := m.height - lipgloss.Height(content) - 2; gap > 0 {
		content += strings.Repeat("\n", gap)
	}

	statusBar := statusBarStyle.Width(m.width).Render(
		helpStyle.Render("h/l:prev/next  t:today  w:day/week  a:add  r:load  s:save  q:quit"),
	)

	return lipgloss.JoinVertical(lipgloss.Left, content, statusBar)
}

func (m Model) renderAddBox() string {
	var content string
	content += inputPromptStyle.Render("Date: ") + m.dateInput.View() + "\n"
	content += inputPromptStyle.Render("Content: ") + m.contentInput.View() + "\n"
	if m.inputErr != "" {
		content += inputErrorStyle.Render("Error: "+m.inputErr) + "\n"
	}
	content += helpStyle.Render("[enter] confirm  [tab] switch  [esc] cancel")
	return inputBoxStyle.Render(content)
}

// startOfWeek returns midnight on the Monday of the week containing date.
func startOfWeek(date time.Time) time.Time {
	weekday := date.Weekday()
	if weekday == time.Sunday {
		weekday = 7
	}
	monday := date.AddDate(0, 0, -int(weekday-time.Monday))
	return time.Date(monday.Year(), monday.Month(), monday.Day(), 0, 0, 0, 0, time.Local)
}
