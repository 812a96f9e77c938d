// Package theme holds the colours and lipgloss styles used to print a paper
// and to draw a sitting.
package theme

import (
	"charm.land/lipgloss/v2"
)

// Ink colours, readable on dark terminals.
var (
	Ink       = lipgloss.Color("#F8FAFC")
	Pencil    = lipgloss.Color("#94A3B8")
	Ruling    = lipgloss.Color("#334155")
	Heading   = lipgloss.Color("#8B5CF6")
	Numbering = lipgloss.Color("#14B8A6")
	Highlight = lipgloss.Color("#F97316")
	Tick      = lipgloss.Color("#22C55E")
	Cross     = lipgloss.Color("#F43F5E")
)

// Sheet furniture.
var (
	Title    = lipgloss.NewStyle().Bold(true).Foreground(Heading)
	Subtitle = lipgloss.NewStyle().Foreground(Pencil)
	Body     = lipgloss.NewStyle().Foreground(Ink)
	Hint     = lipgloss.NewStyle().Foreground(Pencil).Italic(true)
	Key      = lipgloss.NewStyle().Foreground(Ink).Bold(true)
	Rule     = lipgloss.NewStyle().Foreground(Ruling)
	Warning  = lipgloss.NewStyle().Foreground(Cross)
)

// Questions and answers.
var (
	// SlotNumber right-aligns "36." so question text lines up down the page.
	SlotNumber = lipgloss.NewStyle().Foreground(Numbering).Bold(true).Width(5).Align(lipgloss.Right)
	Prompt     = lipgloss.NewStyle().Foreground(Ink).Bold(true)
	Marks      = lipgloss.NewStyle().Foreground(Pencil)
	Answer     = lipgloss.NewStyle().Foreground(Highlight)
	Card       = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(Ruling).Padding(1, 2)
	Correct    = lipgloss.NewStyle().Foreground(Tick).Bold(true)
	Incorrect  = lipgloss.NewStyle().Foreground(Cross).Bold(true)
)

// The exam clock.
var (
	Clock    = lipgloss.NewStyle().Foreground(Highlight).Bold(true)
	ClockLow = lipgloss.NewStyle().Foreground(Cross).Bold(true).Blink(true)
)
