// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package book

import (
	"encoding/json"
	"fmt"
	"regexp"
	"time"

	"gopkg.in/yaml.v3"
)

// DateLayout is the only accepted textual form for birthdays.
const DateLayout = "02.01.2006"

// time.Parse alone accepts single-digit days and months, so the digit counts
// and separators are checked up front.
var datePattern = regexp.MustCompile(`^\d{2}\.\d{2}\.\d{4}$`)

// Date is a calendar date without a time-of-day component, rendered as
// DD.MM.YYYY everywhere: user input, display, and the contacts file.
type Date struct {
	time.Time
}

// ParseDate parses text strictly against DD.MM.YYYY. Wrong separators, wrong
// digit counts, and out-of-range calendar values all fail with a
// ValidationError.
func ParseDate(text string) (Date, error) {
	if !datePattern.MatchString(text) {
		return Date{}, &ValidationError{Reason: "Invalid date format. Use DD.MM.YYYY"}
	}
	t, err := time.Parse(DateLayout, text)
	if err != nil {
		return Date{}, &ValidationError{Reason: "Invalid date format. Use DD.MM.YYYY"}
	}
	return Date{t}, nil
}

func (d Date) String() string {
	return d.Format(DateLayout)
}

func (d Date) MarshalYAML() (any, error) {
	return d.String(), nil
}

func (d *Date) UnmarshalYAML(value *yaml.Node) error {
	var text string
	if err := value.Decode(&text); err != nil {
		return err
	}
	parsed, err := ParseDate(text)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", text, err)
	}
	*d = parsed
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var text string
	if err := json.Unmarshal(data, &text); err != nil {
		return err
	}
	parsed, err := ParseDate(text)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", text, err)
	}
	*d = parsed
	return nil
}
