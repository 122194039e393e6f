// Package core defines the domain model shared by every adapter and service.
package core

import "time"

// Document represents a Markdown note with its YAML frontmatter envelope.
// Content is the raw markdown body and is the sole source of truth for
// sections; Section values are always derived from it on demand.
type Document struct {
	ID      string
	Created time.Time
	Updated time.Time
	Tags    []string
	Status  string
	Extra   map[string]any // frontmatter keys outside the known envelope
	Content string
}

// Section is a heading-delimited block of a document. Never persisted
// independently; names need not be unique, lookups resolve to the first
// match in document order.
type Section struct {
	Name    string
	Level   int // 1-6, count of leading '#' on the heading line
	Content string
}

// ItemBounds is the inclusive line range of an informal sub-item inside a
// section's content.
type ItemBounds struct {
	Start int
	End   int
}

// EventType represents the type of change in the vault.
type EventType string

const (
	EventCreate EventType = "CREATE"
	EventModify EventType = "MODIFY"
	EventDelete EventType = "DELETE"
)

// Event represents a change in the vault.
type Event struct {
	Type      EventType
	ID        string
	Timestamp int64 // Unix timestamp
}
