package humus

import (
	"bytes"
	"context"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// renderer converts note bodies to HTML for previews. Sections and items are
// never derived from this path; goldmark plays no part in the structural
// model.
var renderer = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
)

// Render returns the HTML preview of a note's body.
func (s *Service) Render(ctx context.Context, id string) (string, error) {
	doc, err := s.GetNote(ctx, id)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := renderer.Convert([]byte(doc.Content), &buf); err != nil {
		return "", fmt.Errorf("failed to render %s: %w", id, err)
	}
	return buf.String(), nil
}
