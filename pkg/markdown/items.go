package markdown

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/humuslab/humus/pkg/core"
)

// itemHeadingPrefix marks the conventional start of an item: a level-3
// heading followed by "- **Field**: value" bullets.
const itemHeadingPrefix = "### "

// FindItemBounds locates the inclusive line range of the first item matching
// identifier within a section's content lines.
//
// Start is the index of the first line whose trimmed, lowercased text contains
// the lowercased identifier as a substring. The match is deliberately
// permissive: the line may be an item heading or any ordinary content line, so
// an identifier occurring inside a field value matches too. End extends from
// Start until the line before the next "### " heading, or before a blank line
// that immediately precedes one; with no further heading it runs to the last
// line.
func FindItemBounds(lines []string, identifier string) (core.ItemBounds, bool) {
	needle := strings.ToLower(identifier)

	start := -1
	for i, line := range lines {
		if strings.Contains(strings.ToLower(strings.TrimSpace(line)), needle) {
			start = i
			break
		}
	}
	if start == -1 {
		return core.ItemBounds{}, false
	}

	end := start
	for i := start + 1; i < len(lines); i++ {
		trimmed := strings.TrimSpace(lines[i])
		if strings.HasPrefix(trimmed, itemHeadingPrefix) {
			break
		}
		if trimmed == "" && i+1 < len(lines) &&
			strings.HasPrefix(strings.TrimSpace(lines[i+1]), itemHeadingPrefix) {
			break
		}
		end = i
	}

	return core.ItemBounds{Start: start, End: end}, true
}

// ExtractItemLines returns a copy of the inclusive slice [Start, End].
func ExtractItemLines(lines []string, b core.ItemBounds) []string {
	out := make([]string, b.End-b.Start+1)
	copy(out, lines[b.Start:b.End+1])
	return out
}

// RemoveItemFromLines returns lines with the item's range deleted. Resulting
// blank-line runs are not compacted: removing an interior item can leave
// doubled blank lines, which mirrors plain deletion semantics and is an
// accepted artifact.
func RemoveItemFromLines(lines []string, b core.ItemBounds) []string {
	out := make([]string, 0, len(lines)-(b.End-b.Start+1))
	out = append(out, lines[:b.Start]...)
	out = append(out, lines[b.End+1:]...)
	return out
}

// AddReasonToItem appends a provenance comment recording the origin section
// and stated reason for a relocated item. The comment is invisible when the
// markdown is rendered.
func AddReasonToItem(itemLines []string, reason, fromSection string) []string {
	out := make([]string, 0, len(itemLines)+1)
	out = append(out, itemLines...)
	out = append(out, fmt.Sprintf("  <!-- Moved from %s: %s -->", fromSection, reason))
	return out
}

// PrepareDestinationContent composes the full content of the destination
// section for a relocated item: appended after two newlines when the section
// already has content, the item lines alone otherwise. Callers write the
// result with a replace-mode section update since it is already complete.
func PrepareDestinationContent(itemLines []string, existing string) string {
	joined := strings.Join(itemLines, "\n")
	if existing == "" {
		return joined
	}
	return existing + "\n\n" + joined
}

// FieldPatch is a single field/value rewrite applied to an item's bullet
// list.
type FieldPatch struct {
	Field string
	Value string
}

// ApplyFieldPatches rewrites "- **Field**: value" bullets inside an isolated
// item's lines. A field whose bullet exists has its value replaced in place;
// a missing field gets a new bullet inserted right after the item's heading
// line (when the first line is a heading) or appended at the end otherwise.
func ApplyFieldPatches(itemLines []string, patches []FieldPatch) []string {
	out := make([]string, len(itemLines))
	copy(out, itemLines)

	for _, p := range patches {
		re := regexp.MustCompile(`(?i)^\s*-\s*\*\*` + regexp.QuoteMeta(p.Field) + `\*\*:(.*)$`)

		matched := false
		for i, line := range out {
			m := re.FindStringSubmatch(line)
			if m == nil {
				continue
			}
			out[i] = line[:len(line)-len(m[1])] + " " + p.Value
			matched = true
			break
		}
		if matched {
			continue
		}

		bullet := fmt.Sprintf("- **%s**: %s", p.Field, p.Value)
		if len(out) > 0 && strings.HasPrefix(strings.TrimSpace(out[0]), "#") {
			rest := append([]string{bullet}, out[1:]...)
			out = append(out[:1:1], rest...)
		} else {
			out = append(out, bullet)
		}
	}

	return out
}
