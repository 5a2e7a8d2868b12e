// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package cli

import (
	"os"

	"github.com/spf13/cobra"

	"contact-book/internal/book"
	"contact-book/internal/session"
	"contact-book/internal/store"
)

var replCmd = &cobra.Command{
	Use:     "repl",
	Aliases: []string{"bot"},
	Short:   "Start the interactive assistant prompt (alias: bot)",
	Long: `Starts the assistant-style read-eval-print loop. The book is loaded
once at startup and saved when you leave with 'close' or 'exit'.

Commands: hello, add, change, phone, all, add-birthday, show-birthday,
birthdays, close/exit.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		b, err := store.Load(contactsFile)
		if err != nil {
			errorColor.Fprintf(os.Stderr, "Error loading contacts: %v\n", err)
			os.Exit(1)
		}

		s := session.New(b)
		err = s.Run(func(b *book.Book) error {
			return store.Save(contactsFile, b)
		})
		if err != nil {
			errorColor.Fprintf(os.Stderr, "Session error: %v\n", err)
			os.Exit(1)
		}
	},
}
