// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"contact-book/internal/book"
	"contact-book/internal/store"
)

// loadBookCmd reads the contacts file off the update loop.
func loadBookCmd(file string) tea.Cmd {
	return func() tea.Msg {
		b, err := store.Load(file)
		return bookLoadedMsg{book: b, err: err}
	}
}

// saveBookCmd writes the book back to the contacts file.
func saveBookCmd(file string, b *book.Book) tea.Cmd {
	return func() tea.Msg {
		return bookSavedMsg{err: store.Save(file, b)}
	}
}
