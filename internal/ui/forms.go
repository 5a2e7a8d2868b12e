// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package ui

import (
	"github.com/charmbracelet/bubbles/textinput"

	"contact-book/internal/book"
)

// createAddForm builds the two-field form for a new contact.
func createAddForm() []textinput.Model {
	inputs := make([]textinput.Model, addFieldCount)
	var t textinput.Model

	t = textinput.New()
	t.Placeholder = "Name"
	t.Focus() // Initial focus
	t.CharLimit = 50
	t.Width = 40
	inputs[addFieldName] = t

	t = textinput.New()
	t.Placeholder = "Phone number"
	t.CharLimit = 20
	t.Width = 40
	inputs[addFieldPhone] = t

	return inputs
}

// createBirthdayForm builds the single-field birthday form for a contact.
// The field validates live against the strict DD.MM.YYYY format.
func createBirthdayForm(c *book.Contact) []textinput.Model {
	t := textinput.New()
	t.Placeholder = "DD.MM.YYYY"
	if c.Birthday != nil {
		t.SetValue(c.Birthday.String())
	}
	t.Focus()
	t.CharLimit = 10
	t.Width = 20
	t.Validate = func(s string) error {
		if s == "" || len(s) < 10 {
			return nil // Still typing
		}
		_, err := book.ParseDate(s)
		return err
	}
	return []textinput.Model{t}
}
