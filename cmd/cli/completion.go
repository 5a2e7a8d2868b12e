// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"contact-book/internal/store"
)

// contactNameCompletionFunc provides dynamic shell completion of contact
// names for commands whose first argument is a name.
func contactNameCompletionFunc(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	// Only the name position completes; later arguments are phone numbers
	// or dates.
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	path := contactsFile
	if path == "" {
		// Completion runs without PersistentPreRunE; resolve the default.
		defaultPath, err := store.DefaultPath()
		if err != nil {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		path = defaultPath
	}

	// Ignore load errors during completion.
	b, err := store.Load(path)
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	var suggestions []string
	for _, c := range b.Contacts() {
		if strings.HasPrefix(c.Name, toComplete) {
			suggestions = append(suggestions, c.Name)
		}
	}
	return suggestions, cobra.ShellCompDirectiveNoFileComp
}
