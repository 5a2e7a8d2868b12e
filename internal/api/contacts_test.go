// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contact-book/internal/book"
	"contact-book/internal/store"
)

func newTestRouter(t *testing.T) (*mux.Router, string) {
	t.Helper()
	file := filepath.Join(t.TempDir(), "contacts.yaml")
	router := mux.NewRouter()
	RegisterContactRoutes(router, file)
	return router, file
}

func doRequest(t *testing.T, router *mux.Router, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestAddAndGetContact(t *testing.T) {
	router, file := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/api/contacts",
		addContactRequest{Name: "John", Phone: "111"})
	require.Equal(t, http.StatusOK, rec.Code)

	var reply map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &reply))
	assert.Equal(t, "Contact added.", reply["message"])

	// The mutation went through to the contacts file.
	b, err := store.Load(file)
	require.NoError(t, err)
	require.NotNil(t, b.Find("John"))

	rec = doRequest(t, router, http.MethodGet, "/api/contacts/John", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var c book.Contact
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &c))
	assert.Equal(t, "John", c.Name)
	assert.Equal(t, []string{"111"}, c.Phones)
}

func TestAddContact_Validation(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/api/contacts",
		addContactRequest{Name: "", Phone: "111"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(t, router, http.MethodPost, "/api/contacts",
		addContactRequest{Name: "John", Phone: ""})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetContact_NotFound(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/contacts/Ghost", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListContacts(t *testing.T) {
	router, file := newTestRouter(t)

	b := book.New()
	for _, name := range []string{"Zoe", "Adam"} {
		c := book.NewContact(name)
		require.NoError(t, c.AddPhone("111"))
		b.Add(c)
	}
	require.NoError(t, store.Save(file, b))

	rec := doRequest(t, router, http.MethodGet, "/api/contacts", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var contacts []book.Contact
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &contacts))
	require.Len(t, contacts, 2)
	assert.Equal(t, "Zoe", contacts[0].Name)
	assert.Equal(t, "Adam", contacts[1].Name)
}

func TestDeleteContact(t *testing.T) {
	router, file := newTestRouter(t)

	b := book.New()
	b.Add(book.NewContact("John"))
	require.NoError(t, store.Save(file, b))

	rec := doRequest(t, router, http.MethodDelete, "/api/contacts/John", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	loaded, err := store.Load(file)
	require.NoError(t, err)
	assert.Nil(t, loaded.Find("John"))

	// Unknown name still succeeds; delete is a no-op then.
	rec = doRequest(t, router, http.MethodDelete, "/api/contacts/Ghost", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestListBirthdays(t *testing.T) {
	router, file := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/birthdays", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())

	b := book.New()
	c := book.NewContact("John")
	require.NoError(t, c.SetBirthday("01.01.1990"))
	b.Add(c)
	require.NoError(t, store.Save(file, b))

	// The endpoint uses the real clock; only the shape is asserted here,
	// the window logic is covered in the book package.
	rec = doRequest(t, router, http.MethodGet, "/api/birthdays", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var greetings []book.Greeting
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &greetings))
	assert.NotNil(t, greetings)
}
