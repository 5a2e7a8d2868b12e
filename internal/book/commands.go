// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package book

import (
	"fmt"
	"strings"
	"time"
)

// Command-level operations shared by the interactive session, the CLI verbs,
// and the web API. Each validates argument arity first, then resolves the
// contact, then delegates to the contact or the birthday query. Replies are
// the exact one-line messages shown to the user.

// AddContact creates the named contact if needed and appends the phone.
// The reply distinguishes a brand-new contact from an updated one.
func (b *Book) AddContact(args []string) (string, error) {
	if len(args) < 2 {
		return "", &UsageError{Expected: "Provide name and at least one phone number."}
	}
	name, phone := args[0], args[1]
	c := b.Find(name)
	reply := "Contact updated."
	if c == nil {
		c = NewContact(name)
		b.Add(c)
		reply = "Contact added."
	}
	if err := c.AddPhone(phone); err != nil {
		return "", err
	}
	return reply, nil
}

// ChangeContact replaces one phone number on an existing contact.
func (b *Book) ChangeContact(args []string) (string, error) {
	if len(args) != 3 {
		return "", &UsageError{Expected: "Provide name, old phone, and new phone."}
	}
	c := b.Find(args[0])
	if c == nil {
		return "", &NotFoundError{Entity: EntityContact, Value: args[0]}
	}
	if err := c.EditPhone(args[1], args[2]); err != nil {
		return "", err
	}
	return "Contact updated.", nil
}

// ShowPhone lists the phone numbers of an existing contact.
func (b *Book) ShowPhone(args []string) (string, error) {
	if len(args) != 1 {
		return "", &UsageError{Expected: "Provide name."}
	}
	c := b.Find(args[0])
	if c == nil {
		return "", &NotFoundError{Entity: EntityContact, Value: args[0]}
	}
	return fmt.Sprintf("%s: %s", c.Name, strings.Join(c.Phones, ", ")), nil
}

// ShowAll renders every contact, one per line, in insertion order. An empty
// book gets a distinguished message rather than an empty listing.
func (b *Book) ShowAll() string {
	if b.Len() == 0 {
		return "No contacts saved."
	}
	lines := make([]string, 0, b.Len())
	for _, c := range b.contacts {
		lines = append(lines, c.String())
	}
	return strings.Join(lines, "\n")
}

// AddBirthday sets the birthday of an existing contact.
func (b *Book) AddBirthday(args []string) (string, error) {
	if len(args) != 2 {
		return "", &UsageError{Expected: "Provide name and birthday in DD.MM.YYYY format."}
	}
	c := b.Find(args[0])
	if c == nil {
		return "", &NotFoundError{Entity: EntityContact, Value: args[0]}
	}
	if err := c.SetBirthday(args[1]); err != nil {
		return "", err
	}
	return "Birthday added.", nil
}

// ShowBirthday shows an existing contact's birthday, or that none is set.
func (b *Book) ShowBirthday(args []string) (string, error) {
	if len(args) != 1 {
		return "", &UsageError{Expected: "Provide name."}
	}
	c := b.Find(args[0])
	if c == nil {
		return "", &NotFoundError{Entity: EntityContact, Value: args[0]}
	}
	if c.Birthday == nil {
		return fmt.Sprintf("%s doesn't have a birthday set.", c.Name), nil
	}
	return fmt.Sprintf("%s birthday is: %s", c.Name, c.Birthday), nil
}

// Birthdays renders the upcoming-week greetings, one per line.
func (b *Book) Birthdays(today time.Time) string {
	upcoming := b.UpcomingBirthdays(today)
	if len(upcoming) == 0 {
		return "No upcoming birthdays in the next week."
	}
	lines := make([]string, 0, len(upcoming))
	for _, g := range upcoming {
		lines = append(lines, fmt.Sprintf("%s: congratulate on %s", g.Name, g.CongratulationDate))
	}
	return strings.Join(lines, "\n")
}
