package humus

import (
	"log/slog"

	"github.com/humuslab/humus/pkg/core"
)

// options holds the internal configuration for the Service.
type options struct {
	mustExist  bool
	systemDir  string
	backupKeep int
	repository core.Repository
	logger     *slog.Logger
}

// Option defines a functional option for configuring the Service.
type Option func(*options)

func defaultOptions() *options {
	return &options{}
}

// WithMustExist ensures the vault directory must already exist instead of
// being created on first use.
func WithMustExist(must bool) Option {
	return func(o *options) {
		o.mustExist = must
	}
}

// WithSystemDir sets the hidden directory name (e.g. ".humus") holding the
// index cache and backups.
func WithSystemDir(name string) Option {
	return func(o *options) {
		o.systemDir = name
	}
}

// WithBackupKeep sets how many pre-overwrite backups are retained per
// document.
func WithBackupKeep(n int) Option {
	return func(o *options) {
		o.backupKeep = n
	}
}

// WithLogger sets the logger for the service.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithRepository allows injecting a custom storage adapter (e.g. mock, s3).
// If provided, the default filesystem adapter will be skipped.
func WithRepository(repo core.Repository) Option {
	return func(o *options) {
		o.repository = repo
	}
}
