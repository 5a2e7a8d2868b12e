// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
)

func (m Model) View() string {
	var body string
	switch m.currentState {
	case stateLoading:
		body = "Loading contacts...\n"
	case stateContactList:
		body = m.viewContactList()
	case stateContactDetails:
		body = m.viewContactDetails()
	case stateAddForm:
		body = m.viewAddForm()
	case stateBirthdayForm:
		body = m.viewBirthdayForm()
	case stateBirthdays:
		body = m.viewBirthdays()
	case stateRemoveConfirm:
		body = m.viewRemoveConfirm()
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Contact Book"))
	b.WriteString("\n\n")
	b.WriteString(body)
	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
	}
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
	}
	b.WriteString("\n")
	b.WriteString(m.footerView())
	return b.String()
}

func (m Model) viewContactList() string {
	contacts := m.book.Contacts()
	if len(contacts) == 0 {
		return dimStyle.Render("No contacts saved.") + "\n"
	}

	var b strings.Builder
	for i, c := range contacts {
		cursor := "  "
		if m.cursor == i {
			cursor = cursorStyle.Render("> ")
		}
		line := nameStyle.Render(c.Name)
		if len(c.Phones) > 0 {
			line += dimStyle.Render("  " + strings.Join(c.Phones, "; "))
		}
		if c.Birthday != nil {
			line += birthdayStyle.Render("  🎂 " + c.Birthday.String())
		}
		b.WriteString(cursor + line + "\n")
	}
	return b.String()
}

func (m Model) viewContactDetails() string {
	c := m.selected
	var b strings.Builder
	b.WriteString(nameStyle.Render(c.Name) + "\n\n")
	if len(c.Phones) == 0 {
		b.WriteString(dimStyle.Render("No phone numbers.") + "\n")
	} else {
		b.WriteString("Phones:\n")
		for _, p := range c.Phones {
			b.WriteString("  " + p + "\n")
		}
	}
	if c.Birthday != nil {
		b.WriteString("\nBirthday: " + birthdayStyle.Render(c.Birthday.String()) + "\n")
	} else {
		b.WriteString("\n" + dimStyle.Render("No birthday set.") + "\n")
	}
	return b.String()
}

func (m Model) viewAddForm() string {
	var b strings.Builder
	b.WriteString("New contact:\n\n")
	for i := range m.inputs {
		b.WriteString(m.inputs[i].View() + "\n")
	}
	b.WriteString("\n" + dimStyle.Render("enter to confirm, esc to cancel") + "\n")
	return b.String()
}

func (m Model) viewBirthdayForm() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Birthday for %s:\n\n", nameStyle.Render(m.selected.Name))
	b.WriteString(m.inputs[0].View() + "\n")
	b.WriteString("\n" + dimStyle.Render("enter to confirm, esc to cancel") + "\n")
	return b.String()
}

func (m Model) viewBirthdays() string {
	greetings := m.book.UpcomingBirthdays(time.Now())
	if len(greetings) == 0 {
		return dimStyle.Render("No upcoming birthdays in the next week.") + "\n"
	}

	var b strings.Builder
	b.WriteString("Upcoming birthdays:\n\n")
	for _, g := range greetings {
		fmt.Fprintf(&b, "  %s: congratulate on %s\n",
			nameStyle.Render(g.Name), birthdayStyle.Render(g.CongratulationDate.String()))
	}
	return b.String()
}

func (m Model) viewRemoveConfirm() string {
	return fmt.Sprintf("Remove %s? %s\n",
		nameStyle.Render(m.selected.Name),
		dimStyle.Render("[y] yes  [n] no"))
}

// footerView renders the help bar for the current state.
func (m Model) footerView() string {
	var bindings []key.Binding
	switch m.currentState {
	case stateContactList:
		bindings = []key.Binding{
			m.keys.Up, m.keys.Down, m.keys.Enter, m.keys.Add,
			m.keys.Birthday, m.keys.Birthdays, m.keys.Remove, m.keys.Quit,
		}
	case stateContactDetails, stateBirthdays:
		bindings = []key.Binding{m.keys.Esc, m.keys.Quit}
	case stateAddForm:
		bindings = []key.Binding{m.keys.Tab, m.keys.Enter, m.keys.Esc}
	case stateBirthdayForm:
		bindings = []key.Binding{m.keys.Enter, m.keys.Esc}
	case stateRemoveConfirm:
		bindings = []key.Binding{m.keys.Yes, m.keys.No}
	default:
		bindings = []key.Binding{m.keys.Quit}
	}

	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, footerKeyStyle.Render(h.Key)+footerStyle.Render(" "+h.Desc))
	}
	return footerStyle.Render(strings.Join(parts, footerSeparatorStyle.Render(" | ")))
}
