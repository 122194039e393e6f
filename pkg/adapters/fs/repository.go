// Package fs implements core.Repository on top of a local vault directory of
// Markdown files with YAML frontmatter.
package fs

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/adrg/frontmatter"
	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"

	"github.com/humuslab/humus/pkg/core"
)

// DefaultSystemDir is the hidden directory holding the index cache and
// backups.
const DefaultSystemDir = ".humus"

// DefaultBackupKeep is the number of pre-overwrite backups retained per
// document.
const DefaultBackupKeep = 10

// Config holds the configuration for the filesystem repository. The vault
// path is always passed in explicitly; nothing is resolved from ambient
// environment inside the adapter.
type Config struct {
	Path       string
	MustExist  bool
	Logger     *slog.Logger
	SystemDir  string // e.g. ".humus"
	BackupKeep int    // backups retained per document; 0 means DefaultBackupKeep
}

// Repository implements core.Repository using the filesystem.
type Repository struct {
	Path    string
	config  Config
	cache   *cache
	backups *backupStore

	mu            sync.RWMutex
	watcherActive bool
}

// NewRepository creates a new filesystem-backed repository.
func NewRepository(config Config) *Repository {
	if config.SystemDir == "" {
		config.SystemDir = DefaultSystemDir
	}
	if config.BackupKeep == 0 {
		config.BackupKeep = DefaultBackupKeep
	}
	return &Repository{
		Path:    config.Path,
		config:  config,
		cache:   newCache(config.Path, config.SystemDir),
		backups: newBackupStore(config.Path, config.SystemDir, config.BackupKeep),
	}
}

// Initialize performs the necessary setup for the repository (mkdir).
func (r *Repository) Initialize(ctx context.Context) error {
	if r.config.MustExist {
		info, err := os.Stat(r.Path)
		if os.IsNotExist(err) {
			return fmt.Errorf("vault path does not exist: %s", r.Path)
		}
		if err != nil {
			return err
		}
		if !info.IsDir() {
			return fmt.Errorf("vault path is not a directory: %s", r.Path)
		}
		return nil
	}

	if err := os.MkdirAll(r.Path, 0755); err != nil {
		return fmt.Errorf("failed to create vault directory: %w", err)
	}
	return nil
}

// envelope is the YAML frontmatter shape of every document. Unknown keys
// survive round trips through the inline map.
type envelope struct {
	Created time.Time      `yaml:"created,omitempty"`
	Updated time.Time      `yaml:"updated,omitempty"`
	Tags    []string       `yaml:"tags,omitempty"`
	Status  string         `yaml:"status,omitempty"`
	Extra   map[string]any `yaml:",inline"`
}

// Save persists a document, stamping Updated (and Created on first write)
// and storing a timestamped backup of the previous bytes before overwrite.
func (r *Repository) Save(ctx context.Context, doc core.Document) error {
	if doc.ID == "" {
		return &core.ValidationError{Field: "id", Reason: "document has no ID"}
	}

	filename := docFilename(doc.ID)
	fullPath := filepath.Join(r.Path, filename)

	now := time.Now().UTC().Truncate(time.Second)
	if doc.Created.IsZero() {
		doc.Created = now
	}
	doc.Updated = now

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return fmt.Errorf("failed to create directories: %w", err)
	}

	// Backup previous bytes before overwrite.
	if prev, err := os.ReadFile(fullPath); err == nil {
		if err := r.backups.Snapshot(doc.ID, prev); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	data, err := serialize(doc)
	if err != nil {
		return fmt.Errorf("failed to serialize document: %w", err)
	}

	if r.config.Logger != nil {
		r.config.Logger.Debug("writing document", "id", doc.ID, "path", fullPath)
	}

	if err := writeFileAtomic(fullPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	r.cache.Set(filename, &indexEntry{
		ID:           doc.ID,
		Tags:         doc.Tags,
		Status:       doc.Status,
		Created:      doc.Created,
		Updated:      doc.Updated,
		LastModified: mtimeOf(fullPath),
	})
	return nil
}

// Get retrieves a document. A missing file is reported as a document
// NotFoundError; every other I/O failure passes through unchanged.
func (r *Repository) Get(ctx context.Context, id string) (core.Document, error) {
	fullPath := filepath.Join(r.Path, docFilename(id))

	f, err := os.Open(fullPath)
	if err != nil {
		if os.IsNotExist(err) {
			return core.Document{}, &core.NotFoundError{Kind: core.KindDocument, ID: id}
		}
		return core.Document{}, err
	}
	defer f.Close()

	doc, err := parse(f)
	if err != nil {
		return core.Document{}, fmt.Errorf("failed to parse document %s: %w", id, err)
	}
	doc.ID = id
	return doc, nil
}

// List scans the vault for documents whose IDs match the glob pattern (empty
// pattern matches everything). Metadata comes from the mtime-keyed index
// cache where fresh; cache hits carry no Content, use Get for the body.
func (r *Repository) List(ctx context.Context, pattern string) ([]core.Document, error) {
	if err := r.cache.Load(); err != nil && r.config.Logger != nil {
		r.config.Logger.Debug("cache load failed, rebuilding", "error", err)
	}

	var docs []core.Document
	seen := make(map[string]bool)

	err := filepath.WalkDir(r.Path, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if d.Name() == r.config.SystemDir || d.Name() == ".git" {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(d.Name()) != ".md" || strings.HasPrefix(d.Name(), TempFilePrefix) {
			return nil
		}

		relPath, err := filepath.Rel(r.Path, path)
		if err != nil {
			return err
		}
		relPath = filepath.ToSlash(relPath)
		id := strings.TrimSuffix(relPath, ".md")

		if pattern != "" {
			ok, err := doublestar.Match(pattern, id)
			if err != nil {
				return &core.ValidationError{Field: "pattern", Reason: err.Error()}
			}
			if !ok {
				return nil
			}
		}

		info, err := d.Info()
		if err != nil {
			return nil
		}
		seen[relPath] = true

		if entry, hit := r.cache.Get(relPath, info.ModTime()); hit {
			docs = append(docs, core.Document{
				ID:      entry.ID,
				Tags:    entry.Tags,
				Status:  entry.Status,
				Created: entry.Created,
				Updated: entry.Updated,
			})
			return nil
		}

		doc, err := r.Get(ctx, id)
		if err != nil {
			return nil // Skip unparseable
		}

		r.cache.Set(relPath, &indexEntry{
			ID:           id,
			Tags:         doc.Tags,
			Status:       doc.Status,
			Created:      doc.Created,
			Updated:      doc.Updated,
			LastModified: info.ModTime(),
		})
		docs = append(docs, doc)
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Only prune on full scans; a pattern walk never sees the whole vault.
	if pattern == "" {
		r.cache.Prune(seen)
	}
	if err := r.cache.Save(); err != nil && r.config.Logger != nil {
		r.config.Logger.Debug("cache save failed", "error", err)
	}

	return docs, nil
}

// Delete removes a document.
func (r *Repository) Delete(ctx context.Context, id string) error {
	filename := docFilename(id)
	fullPath := filepath.Join(r.Path, filename)

	if _, err := os.Stat(fullPath); os.IsNotExist(err) {
		return &core.NotFoundError{Kind: core.KindDocument, ID: id}
	}

	if err := os.Remove(fullPath); err != nil {
		return fmt.Errorf("failed to remove file: %w", err)
	}

	r.cache.Delete(filename)
	return nil
}

func docFilename(id string) string {
	if filepath.Ext(id) == ".md" {
		return id
	}
	return id + ".md"
}

func mtimeOf(path string) time.Time {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}
	}
	return info.ModTime()
}

// --- Serialization Helpers (Private) ---

func parse(r io.Reader) (core.Document, error) {
	var env envelope
	body, err := frontmatter.Parse(r, &env)
	if err != nil {
		return core.Document{}, fmt.Errorf("failed to parse frontmatter: %w", err)
	}

	return core.Document{
		Created: env.Created,
		Updated: env.Updated,
		Tags:    env.Tags,
		Status:  env.Status,
		Extra:   env.Extra,
		Content: string(body),
	}, nil
}

func serialize(doc core.Document) ([]byte, error) {
	env := envelope{
		Created: doc.Created,
		Updated: doc.Updated,
		Tags:    doc.Tags,
		Status:  doc.Status,
		Extra:   doc.Extra,
	}

	var buf bytes.Buffer
	buf.WriteString("---\n")
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(env); err != nil {
		return nil, err
	}
	encoder.Close()
	buf.WriteString("---\n")
	buf.WriteString(doc.Content)
	return buf.Bytes(), nil
}
