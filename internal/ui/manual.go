package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gubarz/pdfsplit/internal/chapter"
)

// manualModel is the Bubble Tea model for entering page ranges by hand.
// Parsing is all-or-nothing: a confirm attempt with any invalid line keeps
// the editor open and shows the line-numbered error.
type manualModel struct {
	textarea   textarea.Model
	docName    string
	totalPages int

	width  int
	height int

	parseErr  error
	ranges    []chapter.Range
	confirmed bool
	quitting  bool
}

func newManualModel(docName string, totalPages int) manualModel {
	ta := textarea.New()
	ta.Placeholder = "1-10:Introduction\n11-42\n43-60:Appendix"
	ta.Focus()
	ta.CharLimit = 0
	return manualModel{
		textarea:   ta,
		docName:    docName,
		totalPages: totalPages,
	}
}

// Init implements tea.Model
func (m manualModel) Init() tea.Cmd {
	return textarea.Blink
}

// Update implements tea.Model
func (m manualModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.textarea.SetWidth(msg.Width - 4)
		m.textarea.SetHeight(maxInt(msg.Height-8, 3))
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "ctrl+s":
			ranges, err := chapter.ParseRangeText(m.textarea.Value(), m.totalPages)
			if err != nil {
				m.parseErr = err
				return m, nil
			}
			m.parseErr = nil
			m.ranges = ranges
			m.confirmed = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.textarea, cmd = m.textarea.Update(msg)
	return m, cmd
}

// View implements tea.Model
func (m manualModel) View() string {
	if m.quitting {
		return ""
	}

	width := maxInt(m.width, 80)

	var b strings.Builder
	b.WriteString(styles.Title.Bold(true).Render("Enter page ranges for: " + m.docName))
	b.WriteString(" ")
	b.WriteString(styles.Dim.Render(fmt.Sprintf("(%d pages)", m.totalPages)))
	b.WriteString("\n")
	b.WriteString(styles.Dim.Render("One range per line: start-end[:title]"))
	b.WriteString("\n")
	b.WriteString(styles.Divider.Render(strings.Repeat("─", width)))
	b.WriteString("\n")
	b.WriteString(m.textarea.View())
	b.WriteString("\n")
	b.WriteString(styles.Divider.Render(strings.Repeat("─", width)))
	b.WriteString("\n")

	if m.parseErr != nil {
		b.WriteString(styles.Error.Render(m.parseErr.Error()))
		b.WriteString("\n")
	}

	b.WriteString(styles.Dim.Render("  Ctrl+S confirm"))
	b.WriteString(" • ")
	b.WriteString(styles.Dim.Render("ESC cancel"))

	return b.String()
}

// EditRanges runs the manual range editor and returns the parsed ranges;
// cancelled is true when the user backed out without confirming.
func EditRanges(docName string, totalPages int) (ranges []chapter.Range, cancelled bool, err error) {
	m := newManualModel(docName, totalPages)
	p := tea.NewProgram(m, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return nil, false, err
	}

	result := finalModel.(manualModel)
	if !result.confirmed {
		return nil, true, nil
	}
	return result.ranges, false, nil
}
