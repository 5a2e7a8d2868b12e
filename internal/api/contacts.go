// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package api implements the HTTP endpoints for the contact book's web
// interface. Every request loads the book from the contacts file and saves
// it back on mutation, so the file stays the single source of truth.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"contact-book/internal/book"
	"contact-book/internal/logger"
	"contact-book/internal/store"
)

type contactHandlers struct {
	file string
}

// RegisterContactRoutes attaches the contact endpoints to the router.
func RegisterContactRoutes(router *mux.Router, contactsFile string) {
	h := &contactHandlers{file: contactsFile}
	router.HandleFunc("/api/contacts", h.listContacts).Methods("GET")
	router.HandleFunc("/api/contacts", h.addContact).Methods("POST")
	router.HandleFunc("/api/contacts/{name}", h.getContact).Methods("GET")
	router.HandleFunc("/api/contacts/{name}", h.deleteContact).Methods("DELETE")
	router.HandleFunc("/api/birthdays", h.listBirthdays).Methods("GET")
}

// writeJSONResponse writes a JSON response with CORS headers.
func writeJSONResponse(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode response", "err", err)
	}
}

// writeJSONError writes an error message with the status matching the error
// kind: 400 for usage/validation errors, 404 for unknown names, 500 for
// everything else.
func writeJSONError(w http.ResponseWriter, err error) {
	var usage *book.UsageError
	var validation *book.ValidationError
	var notFound *book.NotFoundError

	status := http.StatusInternalServerError
	switch {
	case errors.As(err, &usage), errors.As(err, &validation):
		status = http.StatusBadRequest
	case errors.As(err, &notFound):
		status = http.StatusNotFound
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": err.Error()}) //nolint:errcheck
}

func (h *contactHandlers) loadBook(w http.ResponseWriter) (*book.Book, bool) {
	b, err := store.Load(h.file)
	if err != nil {
		logger.Error("failed to load contacts", "err", err)
		writeJSONError(w, err)
		return nil, false
	}
	return b, true
}

func (h *contactHandlers) listContacts(w http.ResponseWriter, r *http.Request) {
	b, ok := h.loadBook(w)
	if !ok {
		return
	}
	writeJSONResponse(w, b.Contacts())
}

func (h *contactHandlers) getContact(w http.ResponseWriter, r *http.Request) {
	b, ok := h.loadBook(w)
	if !ok {
		return
	}
	name := mux.Vars(r)["name"]
	c := b.Find(name)
	if c == nil {
		writeJSONError(w, &book.NotFoundError{Entity: book.EntityContact, Value: name})
		return
	}
	writeJSONResponse(w, c)
}

// addContactRequest is the body of POST /api/contacts.
type addContactRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

func (h *contactHandlers) addContact(w http.ResponseWriter, r *http.Request) {
	var req addContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, &book.ValidationError{Reason: "invalid request body"})
		return
	}
	if req.Name == "" {
		writeJSONError(w, &book.ValidationError{Reason: "name is required"})
		return
	}

	b, ok := h.loadBook(w)
	if !ok {
		return
	}
	reply, err := b.AddContact([]string{req.Name, req.Phone})
	if err != nil {
		writeJSONError(w, err)
		return
	}
	if err := store.Save(h.file, b); err != nil {
		logger.Error("failed to save contacts", "err", err)
		writeJSONError(w, err)
		return
	}
	writeJSONResponse(w, map[string]string{"message": reply})
}

func (h *contactHandlers) deleteContact(w http.ResponseWriter, r *http.Request) {
	b, ok := h.loadBook(w)
	if !ok {
		return
	}
	b.Delete(mux.Vars(r)["name"])
	if err := store.Save(h.file, b); err != nil {
		logger.Error("failed to save contacts", "err", err)
		writeJSONError(w, err)
		return
	}
	writeJSONResponse(w, map[string]string{"message": "Contact removed."})
}

func (h *contactHandlers) listBirthdays(w http.ResponseWriter, r *http.Request) {
	b, ok := h.loadBook(w)
	if !ok {
		return
	}
	greetings := b.UpcomingBirthdays(time.Now())
	if greetings == nil {
		greetings = []book.Greeting{}
	}
	writeJSONResponse(w, greetings)
}
