// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package session implements the interactive assistant loop: it reads
// space-delimited commands, dispatches them against the book, and translates
// every command error into a one-line reply. No error terminates the loop.
package session

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"contact-book/internal/book"
	"contact-book/internal/logger"
)

// Session owns the single in-memory book for the lifetime of one interactive
// run. In and Out default to stdin/stdout; Now defaults to time.Now. All
// three are injectable for tests.
type Session struct {
	Book *book.Book
	In   io.Reader
	Out  io.Writer
	Now  func() time.Time
}

// New returns a session over b wired to stdin/stdout.
func New(b *book.Book) *Session {
	return &Session{
		Book: b,
		In:   os.Stdin,
		Out:  os.Stdout,
		Now:  time.Now,
	}
}

// ParseInput splits a raw input line into a lower-cased command word and its
// arguments. A blank line yields an empty command.
func ParseInput(line string) (string, []string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil
	}
	return strings.ToLower(fields[0]), fields[1:]
}

// Dispatch executes one command against the book and returns the reply line
// plus whether the session should shut down. Unrecognized commands get the
// invalid-command reply and change no state.
func (s *Session) Dispatch(command string, args []string) (reply string, quit bool) {
	switch command {
	case "close", "exit":
		return "Good bye!", true
	case "hello":
		return "How can I help you?", false
	case "add":
		return s.reply(s.Book.AddContact(args)), false
	case "change":
		return s.reply(s.Book.ChangeContact(args)), false
	case "phone":
		return s.reply(s.Book.ShowPhone(args)), false
	case "all":
		return s.Book.ShowAll(), false
	case "add-birthday":
		return s.reply(s.Book.AddBirthday(args)), false
	case "show-birthday":
		return s.reply(s.Book.ShowBirthday(args)), false
	case "birthdays":
		return s.Book.Birthdays(s.Now()), false
	default:
		return "Invalid command.", false
	}
}

func (s *Session) reply(msg string, err error) string {
	if err != nil {
		return ErrorMessage(err)
	}
	return msg
}

// ErrorMessage converts a command error into its user-facing one-line
// message. This is the single translation point for the whole dispatch
// layer; operations themselves never format user messages for errors.
func ErrorMessage(err error) string {
	var usage *book.UsageError
	var validation *book.ValidationError
	var notFound *book.NotFoundError
	switch {
	case errors.As(err, &usage):
		return usage.Expected
	case errors.As(err, &validation):
		return validation.Reason
	case errors.As(err, &notFound):
		if notFound.Entity == book.EntityPhone {
			return "Phone number not found."
		}
		return "Contact not found."
	case errors.Is(err, book.ErrNoAttribute):
		return "Contact doesn't have this attribute."
	default:
		return "Invalid input. Please follow the command format."
	}
}

// Run drives the read-eval-print loop until close/exit or EOF, then persists
// the book through save. Blank lines re-prompt without output.
func (s *Session) Run(save func(*book.Book) error) error {
	logger.Info("interactive session started")
	fmt.Fprintln(s.Out, "Welcome to the assistant bot!")

	scanner := bufio.NewScanner(s.In)
	for {
		fmt.Fprint(s.Out, "Enter a command: ")
		if !scanner.Scan() {
			break
		}
		command, args := ParseInput(scanner.Text())
		if command == "" {
			continue
		}
		reply, quit := s.Dispatch(command, args)
		if quit {
			if err := save(s.Book); err != nil {
				return fmt.Errorf("failed to save contacts on shutdown: %w", err)
			}
			fmt.Fprintln(s.Out, reply)
			logger.Info("interactive session closed")
			return nil
		}
		fmt.Fprintln(s.Out, reply)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	// EOF on stdin: shut down the same way an exit command would.
	return save(s.Book)
}
