package terminal

import "github.com/charmbracelet/lipgloss"

var (
	successStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#2E7D32", Dark: "#66BB6A"})

	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#C62828", Dark: "#EF5350"})

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#E65100", Dark: "#FFB74D"})

	pathStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#00838F", Dark: "#4DD0E1"})

	dimStyle = lipgloss.NewStyle().Faint(true)

	headerStyle = lipgloss.NewStyle().Bold(true).Underline(true)
)

var styles = map[string]lipgloss.Style{
	"Success": successStyle,
	"Error":   errorStyle,
	"Prompt":  promptStyle,
	"Path":    pathStyle,
	"Dim":     dimStyle,
	"Header":  headerStyle,
}

// GetStyle returns a named style, or an unstyled one for unknown names
func GetStyle(name string) lipgloss.Style {
	if s, ok := styles[name]; ok {
		return s
	}
	return lipgloss.NewStyle()
}
