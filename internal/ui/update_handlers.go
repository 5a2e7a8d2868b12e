// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) handleListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, m.saveAndMaybeQuit(true)

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < m.book.Len()-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Enter):
		if c := m.cursorContact(); c != nil {
			m.selected = c
			m.currentState = stateContactDetails
		}

	case key.Matches(msg, m.keys.Add):
		m.inputs = createAddForm()
		m.focus = addFieldName
		m.currentState = stateAddForm

	case key.Matches(msg, m.keys.Remove):
		if c := m.cursorContact(); c != nil {
			m.selected = c
			m.currentState = stateRemoveConfirm
		}

	case key.Matches(msg, m.keys.Birthday):
		if c := m.cursorContact(); c != nil {
			m.selected = c
			m.inputs = createBirthdayForm(c)
			m.focus = 0
			m.currentState = stateBirthdayForm
		}

	case key.Matches(msg, m.keys.Birthdays):
		m.currentState = stateBirthdays
	}

	return m, nil
}

// handleReadOnlyViewKeys covers the details and upcoming-birthdays views,
// which only navigate back or quit.
func (m Model) handleReadOnlyViewKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, m.saveAndMaybeQuit(true)
	case key.Matches(msg, m.keys.Esc), key.Matches(msg, m.keys.Enter):
		m.selected = nil
		m.currentState = stateContactList
	}
	return m, nil
}

func (m Model) handleAddFormKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return m, m.saveAndMaybeQuit(true)

	case key.Matches(msg, m.keys.Esc):
		m.inputs = nil
		m.currentState = stateContactList
		return m, nil

	case key.Matches(msg, m.keys.Tab), key.Matches(msg, m.keys.Down):
		m.cycleFocus(1)
		return m, nil

	case key.Matches(msg, m.keys.ShiftTab), key.Matches(msg, m.keys.Up):
		m.cycleFocus(-1)
		return m, nil

	case key.Matches(msg, m.keys.Enter):
		// Enter advances until the last field, then submits.
		if m.focus < addFieldCount-1 {
			m.cycleFocus(1)
			return m, nil
		}
		name := m.inputs[addFieldName].Value()
		phone := m.inputs[addFieldPhone].Value()
		if name == "" {
			m.status = errorStyle.Render("Name is required.")
			return m, nil
		}
		reply, err := m.book.AddContact([]string{name, phone})
		if err != nil {
			m.status = errorStyle.Render(err.Error())
			return m, nil
		}
		m.status = successStyle.Render(reply)
		m.inputs = nil
		m.currentState = stateContactList
		return m, m.saveAndMaybeQuit(false)
	}

	return m, m.updateFocusedInput(msg)
}

func (m Model) handleBirthdayFormKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return m, m.saveAndMaybeQuit(true)

	case key.Matches(msg, m.keys.Esc):
		m.inputs = nil
		m.selected = nil
		m.currentState = stateContactList
		return m, nil

	case key.Matches(msg, m.keys.Enter):
		if err := m.selected.SetBirthday(m.inputs[0].Value()); err != nil {
			m.status = errorStyle.Render(err.Error())
			return m, nil
		}
		m.status = successStyle.Render(fmt.Sprintf("Birthday added for %s.", m.selected.Name))
		m.inputs = nil
		m.selected = nil
		m.currentState = stateContactList
		return m, m.saveAndMaybeQuit(false)
	}

	return m, m.updateFocusedInput(msg)
}

func (m Model) handleRemoveConfirmKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Yes):
		name := m.selected.Name
		m.book.Delete(name)
		if m.cursor >= m.book.Len() && m.cursor > 0 {
			m.cursor--
		}
		m.selected = nil
		m.status = successStyle.Render(fmt.Sprintf("Removed %s.", name))
		m.currentState = stateContactList
		return m, m.saveAndMaybeQuit(false)

	case key.Matches(msg, m.keys.No):
		m.selected = nil
		m.currentState = stateContactList
	}
	return m, nil
}

// cycleFocus moves form focus by delta, wrapping around.
func (m *Model) cycleFocus(delta int) {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + delta + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

// updateFocusedInput forwards the key press to the focused text input.
func (m *Model) updateFocusedInput(msg tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return cmd
}
