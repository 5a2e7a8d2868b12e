// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Message types for the Bubble Tea Model-View-Update loop.

package ui

import "contact-book/internal/book"

// bookLoadedMsg carries the book read from disk at startup.
type bookLoadedMsg struct {
	book *book.Book
	err  error
}

// bookSavedMsg reports the result of writing the book back to disk.
type bookSavedMsg struct {
	err error
}
