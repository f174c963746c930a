package ui

import (
	"fmt"

	"charm.land/lipgloss/v2"
)

// Color palette — neutral, interview-room serious
var (
	Primary = lipgloss.Color("#6366F1") // Indigo
	Accent  = lipgloss.Color("#F59E0B") // Amber
	Success = lipgloss.Color("#22C55E") // Green
	Error   = lipgloss.Color("#F43F5E") // Rose
	Text    = lipgloss.Color("#F8FAFC") // White
	TextDim = lipgloss.Color("#94A3B8") // Slate
	Border  = lipgloss.Color("#334155") // Slate
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Components
var (
	QuestionCard = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(1, 2)

	ScoreGood = lipgloss.NewStyle().
			Foreground(Success).
			Bold(true)

	ScoreBad = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	ScoreMid = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true)

	Label = lipgloss.NewStyle().
		Foreground(TextDim).
		Bold(true)
)

// Score renders a 0-10 score in a color matching its band.
func Score(score int) string {
	s := lipgloss.NewStyle()
	switch {
	case score >= 8:
		s = ScoreGood
	case score <= 4:
		s = ScoreBad
	default:
		s = ScoreMid
	}
	return s.Render(fmt.Sprintf("%d/10", score))
}
