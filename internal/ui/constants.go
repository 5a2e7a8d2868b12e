// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package ui

// state represents the different views or modes of the TUI.
type state int

const (
	stateLoading state = iota
	stateContactList
	stateContactDetails
	stateAddForm
	stateBirthdayForm
	stateBirthdays
	stateRemoveConfirm
)

// Add-form field indices.
const (
	addFieldName = iota
	addFieldPhone
	addFieldCount
)
