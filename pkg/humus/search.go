package humus

import (
	"context"
	"sort"
	"strings"

	"github.com/humuslab/humus/pkg/core"
	"github.com/humuslab/humus/pkg/markdown"
)

// SearchResult is a scored match for a keyword query.
type SearchResult struct {
	ID      string
	Score   int
	Snippet string // first matching line of the body, if any
}

// Search ranks notes by a case-insensitive keyword score: occurrences in the
// body, plus heavier weights for id and tag matches. Results are ordered by
// descending score, ties broken by id.
func (s *Service) Search(ctx context.Context, query string) ([]SearchResult, error) {
	if strings.TrimSpace(query) == "" {
		return nil, &core.ValidationError{Field: "query", Reason: "cannot be blank"}
	}
	needle := strings.ToLower(query)

	listed, err := s.repo.List(ctx, "")
	if err != nil {
		return nil, err
	}

	var results []SearchResult
	for _, meta := range listed {
		// List may serve metadata from the index cache without a body.
		doc, err := s.repo.Get(ctx, meta.ID)
		if err != nil {
			continue
		}

		score := 0
		if strings.Contains(strings.ToLower(doc.ID), needle) {
			score += 10
		}
		for _, tag := range doc.Tags {
			if strings.Contains(strings.ToLower(tag), needle) {
				score += 5
			}
		}

		snippet := ""
		for _, line := range strings.Split(doc.Content, "\n") {
			n := strings.Count(strings.ToLower(line), needle)
			if n > 0 && snippet == "" {
				snippet = strings.TrimSpace(line)
			}
			score += n
		}

		if score > 0 {
			results = append(results, SearchResult{ID: doc.ID, Score: score, Snippet: snippet})
		}
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].ID < results[j].ID
	})
	return results, nil
}

// SectionSummary describes one section of a note.
type SectionSummary struct {
	Name  string
	Level int
	Items int // level-3 item headings inside the section
	Lines int
}

// NoteSummary aggregates a note's structure.
type NoteSummary struct {
	ID       string
	Tags     []string
	Status   string
	Sections []SectionSummary
	Items    int
}

// Summary reports per-section item counts and totals for a note.
func (s *Service) Summary(ctx context.Context, id string) (NoteSummary, error) {
	doc, err := s.GetNote(ctx, id)
	if err != nil {
		return NoteSummary{}, err
	}

	summary := NoteSummary{
		ID:     doc.ID,
		Tags:   doc.Tags,
		Status: doc.Status,
	}

	for _, section := range markdown.ParseSections(doc.Content) {
		ss := SectionSummary{Name: section.Name, Level: section.Level}
		if section.Content != "" {
			lines := strings.Split(section.Content, "\n")
			ss.Lines = len(lines)
			for _, line := range lines {
				if strings.HasPrefix(strings.TrimSpace(line), "### ") {
					ss.Items++
				}
			}
		}
		summary.Items += ss.Items
		summary.Sections = append(summary.Sections, ss)
	}

	return summary, nil
}
