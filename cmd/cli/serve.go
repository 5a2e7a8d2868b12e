// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package cli

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/spf13/cobra"

	"contact-book/internal/api"
	"contact-book/internal/logger"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web API for the contact book",
	Long:  `Starts an HTTP server exposing the contact book as a JSON API.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		router := mux.NewRouter()
		api.RegisterContactRoutes(router, contactsFile)

		addr := fmt.Sprintf(":%d", servePort)
		fmt.Printf("Starting web server on %s\n", addr)
		logger.Info("web server starting", "addr", addr, "file", contactsFile)
		if err := http.ListenAndServe(addr, router); err != nil {
			logger.Error("web server stopped", "err", err)
			errorColor.Fprintf(cmd.ErrOrStderr(), "Server error: %v\n", err)
		}
	},
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 8080, "port to listen on")
}
