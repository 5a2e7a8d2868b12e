// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package cli implements the cobra command surface: one subcommand per
// assistant verb, the interactive repl, and the web API server.
package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"contact-book/internal/book"
	"contact-book/internal/logger"
	"contact-book/internal/session"
	"contact-book/internal/store"
)

var (
	errorColor   = color.New(color.FgRed)
	successColor = color.New(color.FgGreen)
)

// contactsFile is the resolved path of the contacts file for this run.
// Empty until PersistentPreRunE resolves the default or the --file flag.
var contactsFile string

var rootCmd = &cobra.Command{
	Use:   "cb",
	Short: "Contact Book CLI",
	Long: `A command-line contact book: names, phone numbers, and birthdays,
persisted between runs (~/.config/contact-book/contacts.yaml).

Run without arguments for the interactive TUI, 'cb repl' for the
assistant-style prompt, or use the subcommands directly.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger.InitLogger(false)
		if contactsFile == "" {
			path, err := store.DefaultPath()
			if err != nil {
				return fmt.Errorf("failed to resolve contacts file path: %w", err)
			}
			contactsFile = path
		}
		return nil
	},
}

// RunCLI executes the root command. Called by the combined cb binary when
// arguments are present.
func RunCLI() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&contactsFile, "file", "",
		"path to the contacts file (default: user config dir)")

	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(changeCmd)
	rootCmd.AddCommand(phoneCmd)
	rootCmd.AddCommand(allCmd)
	rootCmd.AddCommand(addBirthdayCmd)
	rootCmd.AddCommand(showBirthdayCmd)
	rootCmd.AddCommand(birthdaysCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(replCmd)
	rootCmd.AddCommand(serveCmd)
}

// runBookCommand loads the book, applies fn, prints its reply, and saves the
// book back when mutate is true and fn succeeded. Command errors print as
// their one-line message; I/O errors print wrapped.
func runBookCommand(mutate bool, fn func(*book.Book) (string, error)) {
	b, err := store.Load(contactsFile)
	if err != nil {
		errorColor.Fprintf(os.Stderr, "Error loading contacts: %v\n", err)
		os.Exit(1)
	}

	reply, err := fn(b)
	if err != nil {
		errorColor.Fprintln(os.Stderr, session.ErrorMessage(err))
		os.Exit(1)
	}

	if mutate {
		if err := store.Save(contactsFile, b); err != nil {
			errorColor.Fprintf(os.Stderr, "Error saving contacts: %v\n", err)
			os.Exit(1)
		}
		successColor.Println(reply)
		return
	}
	fmt.Println(reply)
}
