// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package book implements the contact directory: contacts with phone numbers
// and birthdays, the book that owns them, and the upcoming-birthday query.
package book

import (
	"fmt"
	"slices"
	"strings"
)

// Contact is one directory entry: a name (the book key, immutable once
// added), its phone numbers in the order they were added, and an optional
// birthday. Duplicate phone numbers are allowed.
type Contact struct {
	Name     string   `yaml:"name" json:"name"`
	Phones   []string `yaml:"phones" json:"phones"`
	Birthday *Date    `yaml:"birthday,omitempty" json:"birthday,omitempty"`
}

// NewContact creates a contact with no phones and no birthday.
func NewContact(name string) *Contact {
	return &Contact{Name: name}
}

// AddPhone appends phone to the list.
func (c *Contact) AddPhone(phone string) error {
	if phone == "" {
		return &ValidationError{Reason: "Phone is required field."}
	}
	c.Phones = append(c.Phones, phone)
	return nil
}

// RemovePhone removes the first matching entry. An absent phone is a no-op,
// not an error.
func (c *Contact) RemovePhone(phone string) {
	if i := slices.Index(c.Phones, phone); i >= 0 {
		c.Phones = slices.Delete(c.Phones, i, i+1)
	}
}

// EditPhone replaces the first occurrence of oldPhone with newPhone, keeping
// its position in the list.
func (c *Contact) EditPhone(oldPhone, newPhone string) error {
	i := slices.Index(c.Phones, oldPhone)
	if i < 0 {
		return &NotFoundError{Entity: EntityPhone, Value: oldPhone}
	}
	if newPhone == "" {
		return &ValidationError{Reason: "Phone is required field."}
	}
	c.Phones[i] = newPhone
	return nil
}

// SetBirthday parses text as DD.MM.YYYY and stores the validated date.
func (c *Contact) SetBirthday(text string) error {
	d, err := ParseDate(text)
	if err != nil {
		return err
	}
	c.Birthday = &d
	return nil
}

// String renders the contact as a single human-readable line. Display only,
// never the stored format.
func (c *Contact) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Contact name: %s, phones: %s", c.Name, strings.Join(c.Phones, "; "))
	if c.Birthday != nil {
		fmt.Fprintf(&b, ", birthday: %s", c.Birthday)
	}
	return b.String()
}
