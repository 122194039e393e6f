// Package markdown implements the section/item document model: splitting raw
// markdown into heading-delimited sections, locating sections by name,
// rebuilding text from sections, and computing item line ranges inside a
// section's content.
//
// Only ATX headings ('#' through '######') are understood structurally; every
// other markdown construct is opaque content. All functions are pure and
// operate on immutable inputs.
package markdown

import (
	"regexp"
	"strings"

	"github.com/humuslab/humus/pkg/core"
)

// headingRe matches an ATX heading: 1-6 '#' characters, at least one
// whitespace character, then a non-empty remainder. Lines like "#foo" or
// "####### x" are ordinary content.
var headingRe = regexp.MustCompile(`^(#{1,6})\s+(\S.*)$`)

// ParseSections splits raw text into an ordered sequence of sections.
//
// A heading closes the current section and opens a new one when its level is
// at most the current section's level (or at most 2, whichever is larger);
// deeper headings stay inside the open section's content. That keeps the
// "### item" convention intact: item headings below a level-1 or level-2
// section are content, not section boundaries, while sibling headings of the
// same depth still split.
//
// Section content is trimmed of leading and trailing whitespace, interior
// blank lines are preserved. Text before the first heading belongs to no
// section and is dropped. Empty or whitespace-only input yields nil.
func ParseSections(text string) []core.Section {
	var sections []core.Section
	var current *core.Section
	var buf []string

	flush := func() {
		if current == nil {
			return
		}
		current.Content = strings.TrimSpace(strings.Join(buf, "\n"))
		sections = append(sections, *current)
	}

	for _, line := range strings.Split(text, "\n") {
		if m := headingRe.FindStringSubmatch(line); m != nil && closesSection(current, len(m[1])) {
			flush()
			current = &core.Section{
				Name:  strings.TrimSpace(m[2]),
				Level: len(m[1]),
			}
			buf = buf[:0]
			continue
		}
		if current != nil {
			buf = append(buf, line)
		}
	}
	flush()

	return sections
}

// closesSection reports whether a heading of the given level ends the open
// section. Levels 1 and 2 always delimit; deeper headings delimit only among
// sections at least as deep.
func closesSection(current *core.Section, level int) bool {
	if current == nil {
		return true
	}
	limit := current.Level
	if limit < 2 {
		limit = 2
	}
	return level <= limit
}

// NormalizeName lowercases a section name and replaces every character
// outside [a-z0-9] with '_'.
func NormalizeName(name string) string {
	lower := strings.ToLower(name)
	var b strings.Builder
	b.Grow(len(lower))
	for _, r := range lower {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}
	return b.String()
}

// FindSection parses text and returns the first section whose name matches
// queryName, either exactly (case-insensitive) or after normalizing the
// section's name.
//
// The query itself is only lowercased, never normalized. The asymmetry is
// deliberate: a section named "Contact_Network" does not match the query
// "Contact Network" (its normalized name still contains '_', the query
// contains a space), while a later section literally named "Contact Network"
// does. Exact matches occurring later in the document can therefore win over
// earlier normalized near-misses.
func FindSection(text, queryName string) (core.Section, bool) {
	sections := ParseSections(text)
	if i := FindSectionIndex(sections, queryName); i >= 0 {
		return sections[i], true
	}
	return core.Section{}, false
}

// FindSectionIndex returns the index of the first section matching queryName
// under FindSection's rules, or -1.
func FindSectionIndex(sections []core.Section, queryName string) int {
	query := strings.ToLower(queryName)
	for i, s := range sections {
		lower := strings.ToLower(s.Name)
		if lower == query || NormalizeName(s.Name) == query {
			return i
		}
	}
	return -1
}

// SectionNames returns the names of all sections in document order. Used to
// enrich section-not-found errors.
func SectionNames(text string) []string {
	sections := ParseSections(text)
	names := make([]string, 0, len(sections))
	for _, s := range sections {
		names = append(names, s.Name)
	}
	return names
}

// RebuildContent serializes sections back into raw text: each section emits
// its heading, a blank line, and (when non-empty) its content followed by a
// blank line. Blank-line formatting between sections is normalized; the
// (name, level, trimmed content) triples round-trip through ParseSections as
// long as the sequence respects the parse rule, which every sequence produced
// by ParseSections does.
func RebuildContent(sections []core.Section) string {
	if len(sections) == 0 {
		return ""
	}

	var lines []string
	for _, s := range sections {
		lines = append(lines, strings.Repeat("#", s.Level)+" "+s.Name, "")
		if s.Content != "" {
			lines = append(lines, s.Content, "")
		}
	}

	return strings.TrimRight(strings.Join(lines, "\n"), " \t\n")
}
