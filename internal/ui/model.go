// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package ui implements the Bubble Tea TUI for browsing and editing the
// contact book. The model follows the Model-View-Update architecture with
// one state per view.
package ui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"contact-book/internal/book"
)

// Model is the top-level TUI model. It owns the in-memory book for the
// lifetime of the program; every mutation is written back to the contacts
// file immediately.
type Model struct {
	file string
	book *book.Book
	keys KeyMap

	currentState state
	cursor       int
	selected     *book.Contact // target of details/birthday/remove views

	inputs []textinput.Model
	focus  int

	status   string // transient one-line feedback shown above the footer
	err      error
	quitting bool

	width  int
	height int
}

// InitialModel creates the model in its loading state. file is the contacts
// file the book is read from and saved to.
func InitialModel(file string) Model {
	return Model{
		file:         file,
		keys:         DefaultKeyMap,
		currentState: stateLoading,
	}
}

func (m Model) Init() tea.Cmd {
	return loadBookCmd(m.file)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case bookLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
			m.currentState = stateContactList
			m.book = book.New()
			return m, nil
		}
		m.book = msg.book
		m.currentState = stateContactList
		return m, nil

	case bookSavedMsg:
		if msg.err != nil {
			m.err = msg.err
			m.quitting = false
			return m, nil
		}
		if m.quitting {
			return m, tea.Quit
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// handleKey routes a key press to the handler for the current state.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.currentState {
	case stateContactList:
		return m.handleListKeys(msg)
	case stateContactDetails, stateBirthdays:
		return m.handleReadOnlyViewKeys(msg)
	case stateAddForm:
		return m.handleAddFormKeys(msg)
	case stateBirthdayForm:
		return m.handleBirthdayFormKeys(msg)
	case stateRemoveConfirm:
		return m.handleRemoveConfirmKeys(msg)
	default: // stateLoading
		if msg.String() == "q" || msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
	}
	return m, nil
}

// saveAndMaybeQuit persists the book; when quit is set the program exits
// once the save is confirmed.
func (m *Model) saveAndMaybeQuit(quit bool) tea.Cmd {
	m.quitting = quit
	return saveBookCmd(m.file, m.book)
}

// cursorContact returns the contact under the cursor, or nil for an empty
// book.
func (m *Model) cursorContact() *book.Contact {
	contacts := m.book.Contacts()
	if m.cursor < 0 || m.cursor >= len(contacts) {
		return nil
	}
	return contacts[m.cursor]
}
