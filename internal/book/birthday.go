// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package book

import "time"

// upcomingWindowDays is the inclusive number of days ahead of today within
// which a birthday qualifies for a greeting.
const upcomingWindowDays = 7

// Greeting pairs a contact name with the date their congratulation should be
// sent. The congratulation date is the birthday re-anchored to the current
// year and rolled forward off weekends, so it may differ from the literal
// birthday.
type Greeting struct {
	Name               string `yaml:"name" json:"name"`
	CongratulationDate Date   `yaml:"congratulation_date" json:"congratulation_date"`
}

// UpcomingBirthdays returns a greeting for every contact whose birthday,
// re-anchored onto the current year (or the next year when it has already
// passed), falls within the next 7 days counting today. Candidates landing
// on a Saturday or Sunday are rolled forward to the following Monday, which
// can push a day-7 birthday up to 2 days past the nominal cutoff. Results
// follow the book's insertion order.
func (b *Book) UpcomingBirthdays(today time.Time) []Greeting {
	// Work on bare UTC dates so day arithmetic is exact 24h multiples,
	// regardless of the caller's zone or DST transitions.
	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)

	var greetings []Greeting
	for _, c := range b.contacts {
		if c.Birthday == nil {
			continue
		}
		candidate := anchor(*c.Birthday, day.Year())
		if candidate.Before(day) {
			candidate = anchor(*c.Birthday, day.Year()+1)
		}
		delta := int(candidate.Sub(day) / (24 * time.Hour))
		if delta < 0 || delta > upcomingWindowDays {
			continue
		}
		switch candidate.Weekday() {
		case time.Saturday:
			candidate = candidate.AddDate(0, 0, 2)
		case time.Sunday:
			candidate = candidate.AddDate(0, 0, 1)
		}
		greetings = append(greetings, Greeting{
			Name:               c.Name,
			CongratulationDate: Date{candidate},
		})
	}
	return greetings
}

// anchor re-anchors a birthday's month and day onto the given year.
// A Feb 29 birthday normalizes to Mar 1 in non-leap years.
func anchor(d Date, year int) time.Time {
	return time.Date(year, d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
}
