package humus

import (
	"context"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/humuslab/humus/pkg/core"
	"github.com/humuslab/humus/pkg/markdown"
)

type moveItemRequest struct {
	DocumentID string
	From       string
	To         string
	Identifier string
}

func (r moveItemRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.DocumentID, validation.Required),
		validation.Field(&r.From, validation.Required),
		validation.Field(&r.To, validation.Required),
		validation.Field(&r.Identifier, validation.Required),
	)
}

// MoveItem relocates the item matching identifier from one section to
// another, annotating it with a provenance comment when reason is non-empty.
// The destination section is created when absent.
//
// This is two writes: source first, then destination, each against a fresh
// read of the document. There is no cross-write transactionality; if the
// second write fails the source is already mutated and the error is surfaced
// as-is.
func (s *Service) MoveItem(ctx context.Context, id, from, to, identifier, reason string) error {
	req := moveItemRequest{DocumentID: id, From: from, To: to, Identifier: identifier}
	if err := req.Validate(); err != nil {
		return &core.ValidationError{Field: "request", Reason: err.Error()}
	}

	doc, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}

	source, found := markdown.FindSection(doc.Content, from)
	if !found {
		return &core.NotFoundError{
			Kind:      core.KindSection,
			ID:        from,
			Available: markdown.SectionNames(doc.Content),
		}
	}

	lines := strings.Split(source.Content, "\n")
	bounds, found := markdown.FindItemBounds(lines, identifier)
	if !found {
		return &core.NotFoundError{Kind: core.KindItem, ID: identifier}
	}

	item := markdown.ExtractItemLines(lines, bounds)
	if reason != "" {
		item = markdown.AddReasonToItem(item, reason, source.Name)
	}
	remaining := markdown.RemoveItemFromLines(lines, bounds)

	if s.logger != nil {
		s.logger.Debug("moving item", "id", id, "item", identifier, "from", from, "to", to)
	}

	// First write: source section without the item.
	if err := s.UpdateSection(ctx, id, from, strings.Join(remaining, "\n"), ModeReplace); err != nil {
		return err
	}

	// Second write against a fresh read, so the destination composition sees
	// the document as it now is.
	doc, err = s.repo.Get(ctx, id)
	if err != nil {
		return err
	}

	existing := ""
	if dest, found := markdown.FindSection(doc.Content, to); found {
		existing = dest.Content
	}

	// Replace, not append: the content below is already fully composed.
	return s.UpdateSection(ctx, id, to, markdown.PrepareDestinationContent(item, existing), ModeReplace)
}

type patchItemRequest struct {
	DocumentID string
	Section    string
	Identifier string
	Patches    []markdown.FieldPatch
}

func (r patchItemRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.DocumentID, validation.Required),
		validation.Field(&r.Section, validation.Required),
		validation.Field(&r.Identifier, validation.Required),
		validation.Field(&r.Patches, validation.Required),
	)
}

// PatchItemFields rewrites "- **Field**: value" bullets of a single item in
// place, without relocating it. Missing fields get new bullets. One write,
// replace mode.
func (s *Service) PatchItemFields(ctx context.Context, id, section, identifier string, patches []markdown.FieldPatch) error {
	req := patchItemRequest{DocumentID: id, Section: section, Identifier: identifier, Patches: patches}
	if err := req.Validate(); err != nil {
		return &core.ValidationError{Field: "request", Reason: err.Error()}
	}

	doc, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}

	target, found := markdown.FindSection(doc.Content, section)
	if !found {
		return &core.NotFoundError{
			Kind:      core.KindSection,
			ID:        section,
			Available: markdown.SectionNames(doc.Content),
		}
	}

	lines := strings.Split(target.Content, "\n")
	bounds, found := markdown.FindItemBounds(lines, identifier)
	if !found {
		return &core.NotFoundError{Kind: core.KindItem, ID: identifier}
	}

	patched := markdown.ApplyFieldPatches(markdown.ExtractItemLines(lines, bounds), patches)

	// Splice the patched item back into the section's lines.
	spliced := make([]string, 0, len(lines))
	spliced = append(spliced, lines[:bounds.Start]...)
	spliced = append(spliced, patched...)
	spliced = append(spliced, lines[bounds.End+1:]...)

	if s.logger != nil {
		s.logger.Debug("patching item", "id", id, "section", section, "item", identifier, "fields", len(patches))
	}

	return s.UpdateSection(ctx, id, section, strings.Join(spliced, "\n"), ModeReplace)
}
