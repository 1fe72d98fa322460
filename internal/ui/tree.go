package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gubarz/pdfsplit/internal/chapter"
)

// visibleNode is one row of the tree view: a chapter node plus its indent depth.
// The list is rebuilt whenever disclosure state changes so that traversal
// order stays the single source of truth.
type visibleNode struct {
	node  *chapter.Node
	depth int
}

// flattenVisible returns the rows currently disclosed to the user, in
// document order. Children of a collapsed node are not listed.
func flattenVisible(roots []*chapter.Node) []visibleNode {
	var rows []visibleNode
	var walk func(nodes []*chapter.Node, depth int)
	walk = func(nodes []*chapter.Node, depth int) {
		for _, n := range nodes {
			rows = append(rows, visibleNode{node: n, depth: depth})
			if n.Expanded && len(n.Children) > 0 {
				walk(n.Children, depth+1)
			}
		}
	}
	walk(roots, 0)
	return rows
}

// treeModel is the Bubble Tea model for chapter selection
type treeModel struct {
	roots      []*chapter.Node
	visible    []visibleNode
	docName    string
	totalPages int

	width  int
	height int
	cursor int
	offset int

	confirmed bool
	quitting  bool
}

func newTreeModel(roots []*chapter.Node, docName string, totalPages int) treeModel {
	return treeModel{
		roots:      roots,
		visible:    flattenVisible(roots),
		docName:    docName,
		totalPages: totalPages,
	}
}

// Init implements tea.Model
func (m treeModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m treeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tea.KeyMsg:
		if cmd := m.handleKey(msg); cmd != nil {
			return m, cmd
		}
	}
	return m, nil
}

// handleKey processes keyboard input during chapter selection
func (m *treeModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+c", "esc", "q":
		m.quitting = true
		return tea.Quit
	case "enter":
		m.confirmed = true
		return tea.Quit
	case " ":
		if m.cursor < len(m.visible) {
			n := m.visible[m.cursor].node
			n.SetIncluded(!n.Included)
		}
	case "right", "l":
		if m.cursor < len(m.visible) {
			n := m.visible[m.cursor].node
			if len(n.Children) > 0 && !n.Expanded {
				n.Expanded = true
				m.visible = flattenVisible(m.roots)
			}
		}
	case "left", "h":
		if m.cursor < len(m.visible) {
			n := m.visible[m.cursor].node
			if n.Expanded {
				n.Expanded = false
				m.visible = flattenVisible(m.roots)
			}
		}
	case "up", "ctrl+p", "k":
		m.moveCursor(-1)
	case "down", "ctrl+n", "j":
		m.moveCursor(1)
	case "pgup":
		m.moveCursor(-10)
	case "pgdown":
		m.moveCursor(10)
	case "home":
		m.cursor = 0
	case "end":
		m.cursor = max(0, len(m.visible)-1)
	}
	return nil
}

// moveCursor moves the cursor by delta, clamping to valid range
func (m *treeModel) moveCursor(delta int) {
	m.cursor = clamp(m.cursor+delta, 0, max(0, len(m.visible)-1))
}

// View implements tea.Model
func (m treeModel) View() string {
	if m.quitting {
		return ""
	}

	width := maxInt(m.width, 80)
	height := maxInt(m.height, 24)

	var b strings.Builder

	header := m.renderHeader(width)
	b.WriteString(header)

	footer := m.renderFooter(width)
	listHeight := maxInt(height-countLines(header)-countLines(footer)-1, 3)
	list := m.renderList(listHeight)
	b.WriteString(list)

	padding := maxInt(height-countLines(header)-countLines(list)-countLines(footer), 0)
	b.WriteString(strings.Repeat("\n", padding))
	b.WriteString(footer)

	return b.String()
}

func (m treeModel) renderHeader(width int) string {
	var b strings.Builder
	b.WriteString(styles.Title.Bold(true).Render("Select chapters for: " + m.docName))
	b.WriteString(" ")
	b.WriteString(styles.Dim.Render(fmt.Sprintf("(%d pages)", m.totalPages)))
	b.WriteString("\n")
	b.WriteString(styles.Divider.Render(strings.Repeat("─", width)))
	b.WriteString("\n")
	return b.String()
}

// renderList renders the scrollable chapter rows
func (m treeModel) renderList(maxHeight int) string {
	if len(m.visible) == 0 {
		return styles.Dim.Render("  (no chapters)") + "\n"
	}

	start, end := scrollWindow(m.cursor, len(m.visible), maxHeight, &m.offset)

	var b strings.Builder
	for i := start; i < end; i++ {
		b.WriteString(m.renderRow(m.visible[i], i == m.cursor))
		b.WriteString("\n")
	}
	return b.String()
}

// renderRow renders a single chapter row with checkbox, disclosure marker,
// indent, title and page span
func (m treeModel) renderRow(row visibleNode, selected bool) string {
	n := row.node

	check := "[ ]"
	checkStyle := styles.Unchecked
	if n.Included {
		check = "[x]"
		checkStyle = styles.Checked
	}

	marker := "  "
	if len(n.Children) > 0 {
		if n.Expanded {
			marker = "▾ "
		} else {
			marker = "▸ "
		}
	}

	titleStyle := styles.Title
	pagesStyle := styles.Pages
	if !n.Included {
		titleStyle = styles.Dim
		pagesStyle = styles.Dim
	}
	if selected {
		checkStyle = styles.WithSelection(checkStyle)
		titleStyle = styles.WithSelection(titleStyle)
		pagesStyle = styles.WithSelection(pagesStyle)
	}

	indent := strings.Repeat("  ", row.depth)
	line := indent + checkStyle.Render(check) + " " + marker +
		titleStyle.Render(n.Title) + " " +
		pagesStyle.Render(fmt.Sprintf("(Pages %d-%d)", n.StartPage, n.EndPage))

	if selected {
		return styles.Cursor.Render("▶ ") + line
	}
	return "  " + line
}

func (m treeModel) renderFooter(width int) string {
	var b strings.Builder
	b.WriteString(styles.Divider.Render(strings.Repeat("─", width)))
	b.WriteString("\n")
	b.WriteString(styles.Dim.Render(fmt.Sprintf("  %d ranges selected", len(chapter.Collect(m.roots)))))
	b.WriteString(" • ")
	b.WriteString(styles.Dim.Render("Space toggle"))
	b.WriteString(" • ")
	b.WriteString(styles.Dim.Render("←/→ collapse/expand"))
	b.WriteString(" • ")
	b.WriteString(styles.Dim.Render("Enter confirm"))
	b.WriteString(" • ")
	b.WriteString(styles.Dim.Render("ESC cancel"))
	return b.String()
}

// SelectChapters runs the tree TUI over a resolved chapter tree. It mutates
// the nodes' Included/Expanded flags in place and returns the collected
// ranges; cancelled is true when the user backed out.
func SelectChapters(roots []*chapter.Node, docName string, totalPages int) (ranges []chapter.Range, cancelled bool, err error) {
	m := newTreeModel(roots, docName, totalPages)
	p := tea.NewProgram(m, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return nil, false, err
	}

	result := finalModel.(treeModel)
	if !result.confirmed {
		return nil, true, nil
	}
	return chapter.Collect(roots), false, nil
}

// ============================================================================
// Helpers
// ============================================================================

// clamp restricts v to the range [minV, maxV]
func clamp(v, minV, maxV int) int {
	if v < minV {
		return minV
	}
	if v > maxV {
		return maxV
	}
	return v
}

// maxInt returns the larger of a and b
func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// countLines counts the number of lines in a string
func countLines(s string) int {
	if s == "" {
		return 0
	}
	return strings.Count(s, "\n") + 1
}

// scrollWindow calculates the visible range for a scrollable list
func scrollWindow(cursor, total, height int, offset *int) (start, end int) {
	if cursor < *offset {
		*offset = cursor
	}
	if cursor >= *offset+height {
		*offset = cursor - height + 1
	}
	maxOffset := max(0, total-height)
	*offset = clamp(*offset, 0, maxOffset)

	start = *offset
	end = min(start+height, total)
	return
}
