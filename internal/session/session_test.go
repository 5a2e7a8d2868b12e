// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package session

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contact-book/internal/book"
)

func fixedNow(t *testing.T, text string) func() time.Time {
	t.Helper()
	d, err := book.ParseDate(text)
	require.NoError(t, err)
	return func() time.Time { return d.Time }
}

func TestParseInput(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		command string
		args    []string
	}{
		{"simple", "add John 111", "add", []string{"John", "111"}},
		{"command word lower-cased", "ADD John 111", "add", []string{"John", "111"}},
		{"extra whitespace", "  phone   John  ", "phone", []string{"John"}},
		{"blank", "   ", "", nil},
		{"empty", "", "", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			command, args := ParseInput(tt.line)
			assert.Equal(t, tt.command, command)
			assert.Equal(t, tt.args, args)
		})
	}
}

func TestDispatch(t *testing.T) {
	newSession := func() *Session {
		s := New(book.New())
		s.Now = fixedNow(t, "01.01.2024")
		return s
	}

	t.Run("hello", func(t *testing.T) {
		reply, quit := newSession().Dispatch("hello", nil)
		assert.Equal(t, "How can I help you?", reply)
		assert.False(t, quit)
	})

	t.Run("close and exit quit", func(t *testing.T) {
		for _, command := range []string{"close", "exit"} {
			reply, quit := newSession().Dispatch(command, nil)
			assert.Equal(t, "Good bye!", reply)
			assert.True(t, quit)
		}
	})

	t.Run("unrecognized command changes no state", func(t *testing.T) {
		s := newSession()
		reply, quit := s.Dispatch("frobnicate", []string{"John"})
		assert.Equal(t, "Invalid command.", reply)
		assert.False(t, quit)
		assert.Equal(t, 0, s.Book.Len())
	})

	t.Run("errors come back as one-line replies", func(t *testing.T) {
		s := newSession()
		reply, _ := s.Dispatch("phone", []string{"Ghost"})
		assert.Equal(t, "Contact not found.", reply)

		reply, _ = s.Dispatch("add", []string{"John"})
		assert.Equal(t, "Provide name and at least one phone number.", reply)
	})

	t.Run("full conversation", func(t *testing.T) {
		s := newSession()

		reply, _ := s.Dispatch("add", []string{"John", "111"})
		assert.Equal(t, "Contact added.", reply)

		reply, _ = s.Dispatch("add", []string{"John", "222"})
		assert.Equal(t, "Contact updated.", reply)

		reply, _ = s.Dispatch("change", []string{"John", "111", "333"})
		assert.Equal(t, "Contact updated.", reply)

		reply, _ = s.Dispatch("phone", []string{"John"})
		assert.Equal(t, "John: 333, 222", reply)

		reply, _ = s.Dispatch("add-birthday", []string{"John", "06.01.1990"})
		assert.Equal(t, "Birthday added.", reply)

		reply, _ = s.Dispatch("show-birthday", []string{"John"})
		assert.Equal(t, "John birthday is: 06.01.1990", reply)

		reply, _ = s.Dispatch("birthdays", nil)
		assert.Equal(t, "John: congratulate on 08.01.2024", reply)

		reply, _ = s.Dispatch("all", nil)
		assert.Equal(t, "Contact name: John, phones: 333; 222, birthday: 06.01.1990", reply)
	})
}

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"usage", &book.UsageError{Expected: "Provide name."}, "Provide name."},
		{"validation", &book.ValidationError{Reason: "Phone is required field."}, "Phone is required field."},
		{"contact not found", &book.NotFoundError{Entity: book.EntityContact, Value: "Ghost"}, "Contact not found."},
		{"phone not found", &book.NotFoundError{Entity: book.EntityPhone, Value: "999"}, "Phone number not found."},
		{"missing attribute", book.ErrNoAttribute, "Contact doesn't have this attribute."},
		{"anything else", errors.New("boom"), "Invalid input. Please follow the command format."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ErrorMessage(tt.err))
		})
	}
}

func TestRun(t *testing.T) {
	t.Run("exit saves and says goodbye", func(t *testing.T) {
		input := strings.Join([]string{
			"add John 111",
			"", // blank line re-prompts without output
			"phone John",
			"exit",
		}, "\n")

		s := New(book.New())
		s.In = strings.NewReader(input)
		var out strings.Builder
		s.Out = &out
		s.Now = fixedNow(t, "01.01.2024")

		var saved *book.Book
		err := s.Run(func(b *book.Book) error {
			saved = b
			return nil
		})
		require.NoError(t, err)

		require.NotNil(t, saved)
		assert.Equal(t, []string{"111"}, saved.Find("John").Phones)

		assert.Contains(t, out.String(), "Welcome to the assistant bot!")
		assert.Contains(t, out.String(), "Contact added.")
		assert.Contains(t, out.String(), "John: 111")
		assert.Contains(t, out.String(), "Good bye!")
	})

	t.Run("EOF saves too", func(t *testing.T) {
		s := New(book.New())
		s.In = strings.NewReader("add John 111\n")
		s.Out = &strings.Builder{}

		var saved *book.Book
		err := s.Run(func(b *book.Book) error {
			saved = b
			return nil
		})
		require.NoError(t, err)
		require.NotNil(t, saved)
		assert.NotNil(t, saved.Find("John"))
	})

	t.Run("save failure on exit is reported", func(t *testing.T) {
		s := New(book.New())
		s.In = strings.NewReader("close\n")
		s.Out = &strings.Builder{}

		err := s.Run(func(b *book.Book) error {
			return errors.New("disk full")
		})
		assert.ErrorContains(t, err, "disk full")
	})
}
