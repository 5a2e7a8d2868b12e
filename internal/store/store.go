// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package store persists the contact book as a single YAML document in the
// user's config directory. Contacts are stored as an ordered list so a
// round-trip preserves names, phone order, and birthdays exactly.
package store

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"contact-book/internal/book"
	"contact-book/internal/logger"
)

// fileModel is the on-disk shape of the contacts file.
type fileModel struct {
	Contacts []*book.Contact `yaml:"contacts"`
}

// DefaultPath returns the standard location of the contacts file.
func DefaultPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}
	return filepath.Join(configDir, "contact-book", "contacts.yaml"), nil
}

// Load reads the book from path. A missing file is not an error: it yields
// an empty book, the normal state on first run.
func Load(path string) (*book.Book, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Debug("contacts file absent, starting empty", "path", path)
			return book.New(), nil
		}
		return nil, fmt.Errorf("failed to read contacts file %s: %w", path, err)
	}

	var m fileModel
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse contacts file %s: %w", path, err)
	}

	b := book.New()
	for _, c := range m.Contacts {
		b.Add(c)
	}
	logger.Debug("contacts loaded", "path", path, "count", b.Len())
	return b, nil
}

// Save writes the whole book to path, creating the directory if needed.
func Save(path string, b *book.Book) error {
	// Directory 0750, file 0640: private to the user, readable by group.
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return fmt.Errorf("failed to create contacts directory %s: %w", filepath.Dir(path), err)
	}

	data, err := yaml.Marshal(fileModel{Contacts: b.Contacts()})
	if err != nil {
		return fmt.Errorf("failed to marshal contacts to YAML: %w", err)
	}

	if err := os.WriteFile(path, data, 0640); err != nil {
		return fmt.Errorf("failed to write contacts file %s: %w", path, err)
	}
	logger.Debug("contacts saved", "path", path, "count", b.Len())
	return nil
}
