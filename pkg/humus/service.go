// Package humus wires the markdown section/item model to a document
// repository and exposes the note-editing operations consumed by the CLI and
// by embedding callers.
package humus

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"github.com/humuslab/humus/pkg/adapters/fs"
	"github.com/humuslab/humus/pkg/core"
	"github.com/humuslab/humus/pkg/markdown"
)

// UpdateMode selects how UpdateSection combines new content with an existing
// section.
type UpdateMode string

const (
	ModeAppend  UpdateMode = "append"
	ModeReplace UpdateMode = "replace"
)

// Service handles the business logic for documents. Every operation re-reads
// the document fresh from the repository; nothing is cached across calls, so
// concurrent invocations degrade to last-writer-wins.
type Service struct {
	repo   core.Repository
	logger *slog.Logger
}

// New creates a Service rooted at the vault path. The path is explicit;
// nothing inside the service reads ambient environment.
func New(path string, opts ...Option) (*Service, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	repo := o.repository
	if repo == nil {
		repo = fs.NewRepository(fs.Config{
			Path:       path,
			MustExist:  o.mustExist,
			Logger:     o.logger,
			SystemDir:  o.systemDir,
			BackupKeep: o.backupKeep,
		})
	}

	if err := repo.Initialize(context.Background()); err != nil {
		return nil, err
	}

	return &Service{repo: repo, logger: o.logger}, nil
}

// SaveNote creates or replaces a whole note. An empty id generates one.
// Returns the effective id.
func (s *Service) SaveNote(ctx context.Context, id, content string, tags []string, status string) (string, error) {
	if id == "" {
		id = uuid.NewString()
	}

	doc := core.Document{
		ID:      id,
		Tags:    tags,
		Status:  status,
		Content: content,
	}

	// Preserve Created and any extra frontmatter across full rewrites.
	if existing, err := s.repo.Get(ctx, id); err == nil {
		doc.Created = existing.Created
		doc.Extra = existing.Extra
		if status == "" {
			doc.Status = existing.Status
		}
		if tags == nil {
			doc.Tags = existing.Tags
		}
	}

	return id, s.repo.Save(ctx, doc)
}

// GetNote retrieves a note.
func (s *Service) GetNote(ctx context.Context, id string) (core.Document, error) {
	if id == "" {
		return core.Document{}, &core.ValidationError{Field: "id", Reason: "cannot be blank"}
	}
	return s.repo.Get(ctx, id)
}

// ListNotes returns notes whose IDs match the glob pattern (empty matches
// all).
func (s *Service) ListNotes(ctx context.Context, pattern string) ([]core.Document, error) {
	return s.repo.List(ctx, pattern)
}

// DeleteNote removes a note.
func (s *Service) DeleteNote(ctx context.Context, id string) error {
	if id == "" {
		return &core.ValidationError{Field: "id", Reason: "cannot be blank"}
	}
	return s.repo.Delete(ctx, id)
}

// Watch observes changes in the repository if supported.
func (s *Service) Watch(ctx context.Context, pattern string) (<-chan core.Event, error) {
	w, ok := s.repo.(core.Watchable)
	if !ok {
		return nil, errors.New("repository does not support watching")
	}
	return w.Watch(ctx, pattern)
}

// Sections lists a note's sections in document order.
func (s *Service) Sections(ctx context.Context, id string) ([]core.Section, error) {
	doc, err := s.GetNote(ctx, id)
	if err != nil {
		return nil, err
	}
	return markdown.ParseSections(doc.Content), nil
}

// ReadSection returns the named section of a note.
func (s *Service) ReadSection(ctx context.Context, id, name string) (core.Section, error) {
	if name == "" {
		return core.Section{}, &core.ValidationError{Field: "section", Reason: "cannot be blank"}
	}

	doc, err := s.GetNote(ctx, id)
	if err != nil {
		return core.Section{}, err
	}

	section, found := markdown.FindSection(doc.Content, name)
	if !found {
		return core.Section{}, &core.NotFoundError{
			Kind:      core.KindSection,
			ID:        name,
			Available: markdown.SectionNames(doc.Content),
		}
	}
	return section, nil
}

type updateSectionRequest struct {
	DocumentID string
	Section    string
	Mode       UpdateMode
}

func (r updateSectionRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.DocumentID, validation.Required),
		validation.Field(&r.Section, validation.Required),
		validation.Field(&r.Mode, validation.Required, validation.In(ModeAppend, ModeReplace)),
	)
}

// UpdateSection appends to or replaces the named section of a note, creating
// the section when absent.
//
// When the section is absent, the new content is appended to the raw text
// under a fresh level-2 heading, leaving all pre-existing formatting
// untouched. When present, the whole document is parsed, the section's
// content swapped, and the document re-serialized, which normalizes
// inter-section spacing.
func (s *Service) UpdateSection(ctx context.Context, id, name, content string, mode UpdateMode) error {
	req := updateSectionRequest{DocumentID: id, Section: name, Mode: mode}
	if err := req.Validate(); err != nil {
		return &core.ValidationError{Field: "request", Reason: err.Error()}
	}

	doc, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}

	doc.Content = applySectionUpdate(doc.Content, name, content, mode)

	if s.logger != nil {
		s.logger.Debug("updating section", "id", id, "section", name, "mode", string(mode))
	}
	return s.repo.Save(ctx, doc)
}

func applySectionUpdate(text, name, newContent string, mode UpdateMode) string {
	sections := markdown.ParseSections(text)
	idx := markdown.FindSectionIndex(sections, name)

	if idx == -1 {
		// Raw append path: a blank line, a level-2 heading, a blank line,
		// then the content. The rest of the document keeps its exact bytes.
		lines := strings.Split(text, "\n")
		lines = append(lines, "", "## "+name, "", newContent)
		return strings.Join(lines, "\n")
	}

	if mode == ModeAppend && sections[idx].Content != "" {
		sections[idx].Content = sections[idx].Content + "\n\n" + newContent
	} else {
		sections[idx].Content = newContent
	}

	return markdown.RebuildContent(sections)
}
