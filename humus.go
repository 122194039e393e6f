package humus

import (
	"log/slog"

	"github.com/humuslab/humus/pkg/core"
	service "github.com/humuslab/humus/pkg/humus"
)

// --- Types ---

// Service is a public alias for the note-editing service.
type Service = service.Service

// UpdateMode selects how UpdateSection combines content.
type UpdateMode = service.UpdateMode

const (
	ModeAppend  = service.ModeAppend
	ModeReplace = service.ModeReplace
)

// SearchResult is a public alias for keyword search hits.
type SearchResult = service.SearchResult

// NoteSummary is a public alias for a note's structural summary.
type NoteSummary = service.NoteSummary

// --- Configuration ---

// Option defines a functional option for configuring the Service.
type Option = service.Option

// WithMustExist ensures the vault directory must already exist.
func WithMustExist(must bool) Option {
	return service.WithMustExist(must)
}

// WithSystemDir sets the hidden directory name (e.g. ".humus").
func WithSystemDir(name string) Option {
	return service.WithSystemDir(name)
}

// WithBackupKeep sets how many pre-overwrite backups are retained per
// document.
func WithBackupKeep(n int) Option {
	return service.WithBackupKeep(n)
}

// WithLogger sets the logger for the service.
func WithLogger(logger *slog.Logger) Option {
	return service.WithLogger(logger)
}

// WithRepository allows injecting a custom storage adapter.
func WithRepository(repo core.Repository) Option {
	return service.WithRepository(repo)
}

// --- Factory ---

// New creates a new humus Service rooted at the vault path.
func New(path string, opts ...Option) (*Service, error) {
	return service.New(path, opts...)
}
