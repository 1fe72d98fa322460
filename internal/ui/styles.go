package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/gubarz/pdfsplit/internal/config"
)

// StyleManager encapsulates all TUI styles and provides methods for style operations
type StyleManager struct {
	// Tree view styles
	Title     lipgloss.Style
	Pages     lipgloss.Style
	Checked   lipgloss.Style
	Unchecked lipgloss.Style
	Selected  lipgloss.Style
	Cursor    lipgloss.Style
	Dim       lipgloss.Style

	// Chrome styles
	Divider lipgloss.Style
	Error   lipgloss.Style

	// Colors for direct access
	SelectedBg lipgloss.Color
}

// DefaultStyles returns a StyleManager with default styles
func DefaultStyles() *StyleManager {
	return &StyleManager{
		Title:      lipgloss.NewStyle(),
		Pages:      lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		Checked:    lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
		Unchecked:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Selected:   lipgloss.NewStyle().Background(lipgloss.Color("236")),
		Cursor:     lipgloss.NewStyle().Foreground(lipgloss.Color("212")),
		Dim:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Divider:    lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Error:      lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		SelectedBg: lipgloss.Color("236"),
	}
}

// LoadFromConfig updates styles based on configuration
func (s *StyleManager) LoadFromConfig() {
	pagesColor := lipgloss.Color(config.GetColorPages())
	cursorColor := lipgloss.Color(config.GetColorCursor())
	selectedBg := lipgloss.Color(config.GetColorSelected())
	dimColor := lipgloss.Color(config.GetColorDim())
	borderColor := lipgloss.Color(config.GetColorBorder())
	errorColor := lipgloss.Color(config.GetColorError())

	if c := config.GetColorTitle(); c != "" {
		s.Title = lipgloss.NewStyle().Foreground(lipgloss.Color(c))
	} else {
		s.Title = lipgloss.NewStyle()
	}
	s.Pages = lipgloss.NewStyle().Foreground(pagesColor)
	s.Checked = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	s.Unchecked = lipgloss.NewStyle().Foreground(dimColor)
	s.Selected = lipgloss.NewStyle().Background(selectedBg)
	s.Cursor = lipgloss.NewStyle().Foreground(cursorColor)
	s.Dim = lipgloss.NewStyle().Foreground(dimColor)
	s.Divider = lipgloss.NewStyle().Foreground(borderColor)
	s.Error = lipgloss.NewStyle().Foreground(errorColor).Bold(true)
	s.SelectedBg = selectedBg
}

// WithSelection returns a copy of the given style with the selected background applied
func (s *StyleManager) WithSelection(style lipgloss.Style) lipgloss.Style {
	return style.Background(s.SelectedBg)
}

// Global style manager instance
var styles = DefaultStyles()

// RefreshStyles updates the global styles from config
func RefreshStyles() {
	styles.LoadFromConfig()
}
