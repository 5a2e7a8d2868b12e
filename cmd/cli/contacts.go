// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package cli

import (
	"time"

	"github.com/spf13/cobra"

	"contact-book/internal/book"
)

var addCmd = &cobra.Command{
	Use:     "add <name> <phone>",
	Short:   "Create a contact, or append a phone to an existing one",
	Example: "  cb add John 1234567890",
	Args:    cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		runBookCommand(true, func(b *book.Book) (string, error) {
			return b.AddContact(args)
		})
	},
}

var changeCmd = &cobra.Command{
	Use:               "change <name> <old-phone> <new-phone>",
	Short:             "Replace one of a contact's phone numbers",
	Example:           "  cb change John 1234567890 0987654321",
	Args:              cobra.ExactArgs(3),
	ValidArgsFunction: contactNameCompletionFunc,
	Run: func(cmd *cobra.Command, args []string) {
		runBookCommand(true, func(b *book.Book) (string, error) {
			return b.ChangeContact(args)
		})
	},
}

var phoneCmd = &cobra.Command{
	Use:               "phone <name>",
	Short:             "List a contact's phone numbers",
	Example:           "  cb phone John",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: contactNameCompletionFunc,
	Run: func(cmd *cobra.Command, args []string) {
		runBookCommand(false, func(b *book.Book) (string, error) {
			return b.ShowPhone(args)
		})
	},
}

var allCmd = &cobra.Command{
	Use:   "all",
	Short: "List every contact",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runBookCommand(false, func(b *book.Book) (string, error) {
			return b.ShowAll(), nil
		})
	},
}

var addBirthdayCmd = &cobra.Command{
	Use:               "add-birthday <name> <DD.MM.YYYY>",
	Short:             "Set a contact's birthday",
	Example:           "  cb add-birthday John 06.01.1990",
	Args:              cobra.ExactArgs(2),
	ValidArgsFunction: contactNameCompletionFunc,
	Run: func(cmd *cobra.Command, args []string) {
		runBookCommand(true, func(b *book.Book) (string, error) {
			return b.AddBirthday(args)
		})
	},
}

var showBirthdayCmd = &cobra.Command{
	Use:               "show-birthday <name>",
	Short:             "Show a contact's birthday",
	Example:           "  cb show-birthday John",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: contactNameCompletionFunc,
	Run: func(cmd *cobra.Command, args []string) {
		runBookCommand(false, func(b *book.Book) (string, error) {
			return b.ShowBirthday(args)
		})
	},
}

var birthdaysCmd = &cobra.Command{
	Use:   "birthdays",
	Short: "List birthdays coming up in the next week",
	Long: `Lists contacts whose birthday falls within the next 7 days, with the
date to congratulate them on. Birthdays landing on a weekend are
congratulated on the following Monday.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runBookCommand(false, func(b *book.Book) (string, error) {
			return b.Birthdays(time.Now()), nil
		})
	},
}

var removeCmd = &cobra.Command{
	Use:               "remove <name>",
	Aliases:           []string{"rm"},
	Short:             "Remove a contact entirely (alias: rm)",
	Example:           "  cb remove John",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: contactNameCompletionFunc,
	Run: func(cmd *cobra.Command, args []string) {
		runBookCommand(true, func(b *book.Book) (string, error) {
			b.Delete(args[0])
			return "Contact removed.", nil
		})
	},
}
