// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package book

import (
	"errors"
	"fmt"
)

// Entity names used by NotFoundError to distinguish what was missing.
const (
	EntityContact = "contact"
	EntityPhone   = "phone"
)

// UsageError indicates a command was invoked with the wrong number of
// arguments. Its message states the expected arguments.
type UsageError struct {
	Expected string
}

func (e *UsageError) Error() string {
	return e.Expected
}

// ValidationError indicates a phone number or date value that failed
// validation.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// NotFoundError indicates a contact name or phone number that does not exist
// in the book.
type NotFoundError struct {
	Entity string // EntityContact or EntityPhone
	Value  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Entity, e.Value)
}

// ErrNoAttribute is returned when an operation needs an attribute the contact
// does not carry. Rarely hit in practice; kept for defensive translation at
// the dispatch layer.
var ErrNoAttribute = errors.New("contact does not have this attribute")
