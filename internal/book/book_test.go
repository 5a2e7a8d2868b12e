// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package book

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBook_AddFindDelete(t *testing.T) {
	b := New()
	assert.Nil(t, b.Find("John"))

	john := NewContact("John")
	b.Add(john)
	assert.Same(t, john, b.Find("John"))
	assert.Equal(t, 1, b.Len())

	b.Delete("John")
	assert.Nil(t, b.Find("John"))
	assert.Equal(t, 0, b.Len())

	// Deleting an unknown name is a no-op.
	b.Delete("John")
	assert.Equal(t, 0, b.Len())
}

func TestBook_AddOverwritesWholesale(t *testing.T) {
	b := New()
	first := NewContact("John")
	require.NoError(t, first.AddPhone("111"))
	b.Add(first)

	second := NewContact("John")
	require.NoError(t, second.AddPhone("222"))
	b.Add(second)

	assert.Equal(t, 1, b.Len())
	assert.Same(t, second, b.Find("John"))
	assert.Equal(t, []string{"222"}, b.Find("John").Phones)
}

func TestBook_InsertionOrderPreserved(t *testing.T) {
	b := New()
	for _, name := range []string{"Zoe", "Adam", "Mia"} {
		b.Add(NewContact(name))
	}

	var names []string
	for _, c := range b.Contacts() {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{"Zoe", "Adam", "Mia"}, names)
}

func TestBook_DeleteKeepsOrderAndLookups(t *testing.T) {
	b := New()
	for _, name := range []string{"Zoe", "Adam", "Mia", "Leo"} {
		b.Add(NewContact(name))
	}

	b.Delete("Adam")

	var names []string
	for _, c := range b.Contacts() {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{"Zoe", "Mia", "Leo"}, names)

	// Lookups after the deleted slot must still resolve correctly.
	assert.Equal(t, "Mia", b.Find("Mia").Name)
	assert.Equal(t, "Leo", b.Find("Leo").Name)
}
