package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme contains the visual styles shared by all screens.
type Theme struct {
	// Headings
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Muted    lipgloss.Style
	Error    lipgloss.Style

	// Menu
	MenuItemNormal lipgloss.Style
	MenuItemActive lipgloss.Style
	GradeNormal    lipgloss.Style
	GradeActive    lipgloss.Style

	// Question
	Question    lipgloss.Style
	PromptName  lipgloss.Style
	PromptText  lipgloss.Style
	ProgressTag lipgloss.Style

	// Choice grid
	ChoiceNormal  lipgloss.Style
	ChoiceActive  lipgloss.Style
	ChoiceCorrect lipgloss.Style
	ChoiceWrong   lipgloss.Style

	// Feedback card
	CardBorder  lipgloss.Style
	CardCorrect lipgloss.Style
	CardWrong   lipgloss.Style
	CardLabel   lipgloss.Style
	CardValue   lipgloss.Style

	// Result
	Stars lipgloss.Style
	Score lipgloss.Style

	// Help bar
	Help lipgloss.Style
}

// choiceWidth is the inner width of one grid cell.
const choiceWidth = 16

// DefaultTheme returns the default visual theme.
func DefaultTheme() Theme {
	cell := lipgloss.NewStyle().
		Width(choiceWidth).
		Align(lipgloss.Center).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240"))

	return Theme{
		Title:    lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true),
		Subtitle: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),

		MenuItemNormal: lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		MenuItemActive: lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true),
		GradeNormal:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Padding(0, 1),
		GradeActive:    lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Bold(true).Padding(0, 1),

		Question:    lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
		PromptName:  lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true).Padding(1, 4).Border(lipgloss.DoubleBorder()),
		PromptText:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Padding(0, 2).Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")),
		ProgressTag: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),

		ChoiceNormal:  cell.Foreground(lipgloss.Color("252")),
		ChoiceActive:  cell.Foreground(lipgloss.Color("229")).BorderForeground(lipgloss.Color("57")).Bold(true),
		ChoiceCorrect: cell.Foreground(lipgloss.Color("46")).BorderForeground(lipgloss.Color("46")).Bold(true),
		ChoiceWrong:   cell.Foreground(lipgloss.Color("203")).BorderForeground(lipgloss.Color("203")),

		CardBorder:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1),
		CardCorrect: lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true),
		CardWrong:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
		CardLabel:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(10),
		CardValue:   lipgloss.NewStyle().Foreground(lipgloss.Color("255")),

		Stars: lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		Score: lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),

		Help: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}
