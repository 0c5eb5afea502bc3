package main

import "github.com/charmbracelet/lipgloss"

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")).
			Background(lipgloss.Color("235")).
			Bold(true).
			Padding(0, 2)

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("33"))
)
