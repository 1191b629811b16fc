package domain

import (
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	TitleMaxLength       = 100
	DescriptionMinLength = 10
	DescriptionMaxLength = 1000
)

// NormalizeTitle trims the title and upper-cases the first letter of every
// word, leaving the remaining letters as typed.
func NormalizeTitle(title string) string {
	// A Caser keeps state between calls, so each call gets its own.
	return cases.Title(language.English, cases.NoLower).String(strings.TrimSpace(title))
}

// Validate checks a creation payload against the field constraints. now is
// used for the due date lower bound.
func (in TaskInput) Validate(now time.Time) error {
	verr := &ValidationError{}
	validateTitle(verr, in.Title)
	validateDescription(verr, in.Description)
	if !in.Priority.Valid() {
		verr.Add("priority", RuleOneOf)
	}
	validateDueDate(verr, in.DueDate, now)
	if in.Status != nil && !in.Status.Valid() {
		verr.Add("status", RuleOneOf)
	}
	if in.AssignedTo != nil && *in.AssignedTo == 0 {
		verr.Add("assigned_to", RuleExists)
	}
	return verr.OrNil()
}

// Validate checks only the fields present in the change set.
func (c TaskChanges) Validate(now time.Time) error {
	verr := &ValidationError{}
	if c.Title != nil {
		validateTitle(verr, *c.Title)
	}
	if c.Description != nil {
		validateDescription(verr, *c.Description)
	}
	if c.Priority != nil && !c.Priority.Valid() {
		verr.Add("priority", RuleOneOf)
	}
	if c.DueDate != nil {
		validateDueDate(verr, *c.DueDate, now)
	}
	if c.Status != nil && !c.Status.Valid() {
		verr.Add("status", RuleOneOf)
	}
	if c.AssignedToSet && c.AssignedTo != nil && *c.AssignedTo == 0 {
		verr.Add("assigned_to", RuleExists)
	}
	return verr.OrNil()
}

func (f TaskFilter) Validate() error {
	verr := &ValidationError{}
	if f.Priority != nil && !f.Priority.Valid() {
		verr.Add("priority", RuleOneOf)
	}
	if f.Status != nil && !f.Status.Valid() {
		verr.Add("status", RuleOneOf)
	}
	return verr.OrNil()
}

func validateTitle(verr *ValidationError, title string) {
	trimmed := strings.TrimSpace(title)
	switch {
	case trimmed == "":
		verr.Add("title", RuleRequired)
	case utf8.RuneCountInString(trimmed) > TitleMaxLength:
		verr.Add("title", RuleMax)
	}
}

func validateDescription(verr *ValidationError, description string) {
	length := utf8.RuneCountInString(description)
	switch {
	case length == 0:
		verr.Add("description", RuleRequired)
	case length < DescriptionMinLength:
		verr.Add("description", RuleMin)
	case length > DescriptionMaxLength:
		verr.Add("description", RuleMax)
	}
}

func validateDueDate(verr *ValidationError, dueDate, now time.Time) {
	if dueDate.IsZero() {
		verr.Add("due_date", RuleRequired)
		return
	}
	if calendarDay(dueDate).Before(calendarDay(now)) {
		verr.Add("due_date", RuleAfterOrEqual)
	}
}

// calendarDay drops the clock part, keeping the date as seen in t's own
// location.
func calendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
