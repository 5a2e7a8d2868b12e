// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package tui

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"contact-book/internal/logger"
	"contact-book/internal/store"
	"contact-book/internal/ui"
)

// RunTUI initializes and runs the Bubble Tea TUI application.
func RunTUI() {
	logger.InitLogger(true)

	file, err := store.DefaultPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to resolve contacts file path: %v\n", err)
		os.Exit(1)
	}

	m := ui.InitialModel(file)
	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
}
