package term

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pellucid-labs/wordlex/internal/domain"
)

var (
	correctTile = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("2")).
			Bold(true)
	presentTile = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("3")).
			Bold(true)
	absentTile = lipgloss.NewStyle().
			Foreground(lipgloss.Color("7")).
			Background(lipgloss.Color("8"))
)

// renderTiles echoes an accepted feedback line. With color enabled each
// letter becomes a Wordle-style tile; otherwise the guess is shown next to
// its g/y/x pattern.
func renderTiles(guess domain.Word, fb domain.Feedback, color bool) string {
	if !color {
		return string(guess) + "  " + fb.String()
	}

	var b strings.Builder
	for i := 0; i < domain.WordLen; i++ {
		cell := " " + strings.ToUpper(string(guess[i])) + " "
		switch fb[i] {
		case domain.Correct:
			b.WriteString(correctTile.Render(cell))
		case domain.Present:
			b.WriteString(presentTile.Render(cell))
		default:
			b.WriteString(absentTile.Render(cell))
		}
	}
	return b.String()
}
