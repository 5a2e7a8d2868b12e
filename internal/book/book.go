// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package book

import "slices"

// Book is the full directory of contacts, persisted as one unit. It maps
// unique names to contacts while preserving insertion order for iteration,
// so listings and the birthday query come out in the order contacts were
// added.
type Book struct {
	index    map[string]int
	contacts []*Contact
}

// New returns an empty book.
func New() *Book {
	return &Book{index: make(map[string]int)}
}

// Add inserts the contact under its name. A duplicate name overwrites the
// previous contact wholesale; there is no merge.
func (b *Book) Add(c *Contact) {
	if i, ok := b.index[c.Name]; ok {
		b.contacts[i] = c
		return
	}
	b.index[c.Name] = len(b.contacts)
	b.contacts = append(b.contacts, c)
}

// Find returns the contact for name, or nil when the name is unknown.
// Absence is not an error.
func (b *Book) Find(name string) *Contact {
	if i, ok := b.index[name]; ok {
		return b.contacts[i]
	}
	return nil
}

// Delete removes the contact for name. An unknown name is a no-op.
func (b *Book) Delete(name string) {
	i, ok := b.index[name]
	if !ok {
		return
	}
	delete(b.index, name)
	b.contacts = slices.Delete(b.contacts, i, i+1)
	for j := i; j < len(b.contacts); j++ {
		b.index[b.contacts[j].Name] = j
	}
}

// Len returns the number of contacts in the book.
func (b *Book) Len() int {
	return len(b.contacts)
}

// Contacts returns the contacts in insertion order. The slice is a copy but
// the contacts themselves are the book's own entries.
func (b *Book) Contacts() []*Contact {
	return slices.Clone(b.contacts)
}
