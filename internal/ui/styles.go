package ui

import "github.com/charmbracelet/lipgloss"

// Colors for the demo feed view.
var (
	colorWhite  = lipgloss.Color("255")
	colorDim    = lipgloss.Color("242")
	colorCyan   = lipgloss.Color("86")
	colorGreen  = lipgloss.Color("78")
	colorOrange = lipgloss.Color("214")
	colorRed    = lipgloss.Color("203")
)

// Styles holds all Lip Gloss style definitions for the feed view.
type Styles struct {
	Header       lipgloss.Style
	StatusBar    lipgloss.Style
	FeedItem     lipgloss.Style
	SelectedItem lipgloss.Style
	RankNumber   lipgloss.Style
	ScoreValue   lipgloss.Style
	ScoreNeg     lipgloss.Style
	Author       lipgloss.Style
	OriginIn     lipgloss.Style
	OriginOut    lipgloss.Style
	VideoTag     lipgloss.Style

	CardBorder  lipgloss.Style
	MetricLabel lipgloss.Style
	MetricValue lipgloss.Style
	BarFill     lipgloss.Style
	BarPenalty  lipgloss.Style
	BarEmpty    lipgloss.Style

	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style
}

// DefaultStyles returns the default look.
func DefaultStyles() Styles {
	s := Styles{}

	s.Header = lipgloss.NewStyle().Bold(true).Foreground(colorCyan).Padding(0, 1)
	s.StatusBar = lipgloss.NewStyle().Foreground(colorDim).Padding(0, 1)

	s.FeedItem = lipgloss.NewStyle().Padding(0, 1)
	s.SelectedItem = lipgloss.NewStyle().
		Bold(true).
		Background(lipgloss.Color("62")).
		Foreground(colorWhite)

	s.RankNumber = lipgloss.NewStyle().Foreground(colorDim).Width(4)
	s.ScoreValue = lipgloss.NewStyle().Foreground(colorGreen).Width(7).Align(lipgloss.Right)
	s.ScoreNeg = lipgloss.NewStyle().Foreground(colorRed).Width(7).Align(lipgloss.Right)
	s.Author = lipgloss.NewStyle().Foreground(colorCyan)
	s.OriginIn = lipgloss.NewStyle().Foreground(colorGreen)
	s.OriginOut = lipgloss.NewStyle().Foreground(colorOrange)
	s.VideoTag = lipgloss.NewStyle().Foreground(colorOrange)

	s.CardBorder = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("63")).
		Padding(0, 1).
		MarginTop(1)
	s.MetricLabel = lipgloss.NewStyle().Foreground(colorDim)
	s.MetricValue = lipgloss.NewStyle().Foreground(colorWhite).Bold(true)
	s.BarFill = lipgloss.NewStyle().Foreground(colorCyan)
	s.BarPenalty = lipgloss.NewStyle().Foreground(colorRed)
	s.BarEmpty = lipgloss.NewStyle().Foreground(lipgloss.Color("236"))

	s.HelpKey = lipgloss.NewStyle().Foreground(colorCyan)
	s.HelpDesc = lipgloss.NewStyle().Foreground(colorDim)

	return s
}
