package model

import (
	"fmt"
	"sort"
	"strings"
)

// Messages for the cross-field date rules, shared by the form and persist
// boundaries so both report the same violation identically.
const (
	MsgEndBeforeStart = "End date must be after the start date."
	MsgPastStart      = "Start date and time cannot be in the past."
)

// ValidationErrors collects messages for violated validation rules, keyed by
// field, plus whole-record messages. The first message reported for a field
// wins; later ones for the same field are dropped.
type ValidationErrors struct {
	Fields map[string]string
	Record []string
}

// Add records a message for a field unless one is already present.
func (e *ValidationErrors) Add(field, msg string) {
	if e.Fields == nil {
		e.Fields = make(map[string]string)
	}
	if _, ok := e.Fields[field]; !ok {
		e.Fields[field] = msg
	}
}

// AddRecord records a whole-record message not tied to any single field.
func (e *ValidationErrors) AddRecord(msg string) {
	e.Record = append(e.Record, msg)
}

// Any reports whether at least one message has been recorded.
func (e *ValidationErrors) Any() bool {
	return e != nil && (len(e.Fields) > 0 || len(e.Record) > 0)
}

// Merge copies messages from other into e, keeping e's per-field messages
// where both have one.
func (e *ValidationErrors) Merge(other *ValidationErrors) {
	if other == nil {
		return
	}
	for field, msg := range other.Fields {
		e.Add(field, msg)
	}
	e.Record = append(e.Record, other.Record...)
}

func (e *ValidationErrors) Error() string {
	var parts []string
	fields := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	for _, field := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, e.Fields[field]))
	}
	parts = append(parts, e.Record...)
	return "validation failed: " + strings.Join(parts, "; ")
}
