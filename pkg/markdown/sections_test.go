package markdown

import (
	"strings"
	"testing"

	"github.com/humuslab/humus/pkg/core"
)

func TestParseSections(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []core.Section
	}{
		{
			name: "Empty Input",
			text: "",
			want: nil,
		},
		{
			name: "Whitespace Only",
			text: "   \n\n\t\n",
			want: nil,
		},
		{
			name: "No Headings",
			text: "just some text\nanother line",
			want: nil,
		},
		{
			name: "Single Section",
			text: "## Notes\n\nhello",
			want: []core.Section{{Name: "Notes", Level: 2, Content: "hello"}},
		},
		{
			name: "Pre Heading Text Dropped",
			text: "orphan line\n\n## Notes\n\nhello",
			want: []core.Section{{Name: "Notes", Level: 2, Content: "hello"}},
		},
		{
			name: "Item Headings Stay Inside Their Section",
			text: "# Top\n\nalpha\n\n### Deep\nbeta\n\n## Mid\n",
			want: []core.Section{
				{Name: "Top", Level: 1, Content: "alpha\n\n### Deep\nbeta"},
				{Name: "Mid", Level: 2, Content: ""},
			},
		},
		{
			name: "Sibling Deep Headings Split",
			text: "### A\n- x\n\n### B\n- y",
			want: []core.Section{
				{Name: "A", Level: 3, Content: "- x"},
				{Name: "B", Level: 3, Content: "- y"},
			},
		},
		{
			name: "Level Two Closes A Deep Section",
			text: "### A\n- x\n\n## Wide\nbody",
			want: []core.Section{
				{Name: "A", Level: 3, Content: "- x"},
				{Name: "Wide", Level: 2, Content: "body"},
			},
		},
		{
			name: "Hash Without Space Is Content",
			text: "## Real\n#fake heading\n#also#content",
			want: []core.Section{
				{Name: "Real", Level: 2, Content: "#fake heading\n#also#content"},
			},
		},
		{
			name: "Seven Hashes Is Content",
			text: "## Real\n####### too deep",
			want: []core.Section{
				{Name: "Real", Level: 2, Content: "####### too deep"},
			},
		},
		{
			name: "Hash With Only Whitespace After Is Content",
			text: "## Real\n##   \nmore",
			want: []core.Section{
				{Name: "Real", Level: 2, Content: "##   \nmore"},
			},
		},
		{
			name: "Interior Blank Lines Preserved",
			text: "## A\nline1\n\nline2\n\n\nline3\n",
			want: []core.Section{
				{Name: "A", Level: 2, Content: "line1\n\nline2\n\n\nline3"},
			},
		},
		{
			name: "Tab After Hashes",
			text: "##\tTabbed\nbody",
			want: []core.Section{{Name: "Tabbed", Level: 2, Content: "body"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseSections(tt.text)
			if len(got) != len(tt.want) {
				t.Fatalf("ParseSections() returned %d sections, want %d: %+v", len(got), len(tt.want), got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("section[%d] = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestRebuildContent(t *testing.T) {
	tests := []struct {
		name     string
		sections []core.Section
		want     string
	}{
		{
			name:     "Empty",
			sections: nil,
			want:     "",
		},
		{
			name:     "Single With Content",
			sections: []core.Section{{Name: "A", Level: 2, Content: "hello"}},
			want:     "## A\n\nhello",
		},
		{
			name:     "Empty Content Skips Body",
			sections: []core.Section{{Name: "A", Level: 2}, {Name: "B", Level: 3, Content: "x"}},
			want:     "## A\n\n### B\n\nx",
		},
		{
			name: "Levels",
			sections: []core.Section{
				{Name: "Top", Level: 1, Content: "a"},
				{Name: "Deep", Level: 6, Content: "b"},
			},
			want: "# Top\n\na\n\n###### Deep\n\nb",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RebuildContent(tt.sections); got != tt.want {
				t.Errorf("RebuildContent() = %q, want %q", got, tt.want)
			}
		})
	}
}

// Parsing a rebuilt document reproduces the same ordered (name, level,
// trimmed content) triples.
func TestRebuildParseRoundTrip(t *testing.T) {
	sections := []core.Section{
		{Name: "Active Pipeline", Level: 2, Content: "### Acme\n- **Status**: applied"},
		{Name: "Archive", Level: 2, Content: ""},
		{Name: "Contacts", Level: 2, Content: "### Jo\n- **Role**: recruiter\n\n### Sam\n- **Role**: manager"},
	}

	got := ParseSections(RebuildContent(sections))
	if len(got) != len(sections) {
		t.Fatalf("round trip returned %d sections, want %d", len(got), len(sections))
	}
	for i := range got {
		if got[i] != sections[i] {
			t.Errorf("section[%d] = %+v, want %+v", i, got[i], sections[i])
		}
	}
}

func TestFindSection(t *testing.T) {
	text := "## Active Pipeline\n\nstuff\n\n## ruled_out companies\n\nnope"

	t.Run("Exact Case Insensitive", func(t *testing.T) {
		s, ok := FindSection(text, "active pipeline")
		if !ok || s.Name != "Active Pipeline" {
			t.Fatalf("FindSection() = %+v, %v", s, ok)
		}
	})

	t.Run("Normalized Section Name", func(t *testing.T) {
		s, ok := FindSection(text, "ruled_out_companies")
		if !ok || s.Name != "ruled_out companies" {
			t.Fatalf("FindSection() = %+v, %v", s, ok)
		}
	})

	t.Run("Not Found", func(t *testing.T) {
		if _, ok := FindSection(text, "missing"); ok {
			t.Fatal("expected not found")
		}
	})

	t.Run("Deterministic", func(t *testing.T) {
		first, _ := FindSection(text, "Active Pipeline")
		for i := 0; i < 5; i++ {
			again, _ := FindSection(text, "Active Pipeline")
			if again != first {
				t.Fatalf("FindSection() varied across calls: %+v vs %+v", again, first)
			}
		}
	})

	// The query is never normalized, so the underscore-named section is a
	// near-miss that satisfies neither predicate; the later literal match
	// wins.
	t.Run("Later Exact Match Beats Earlier Near Miss", func(t *testing.T) {
		doc := "## Contact_Network\n\nfirst\n\n## Contact Network\n\nsecond"
		s, ok := FindSection(doc, "Contact Network")
		if !ok {
			t.Fatal("expected a match")
		}
		if s.Name != "Contact Network" || s.Content != "second" {
			t.Fatalf("FindSection() = %+v, want the second section", s)
		}
	})

	t.Run("First Match In Document Order", func(t *testing.T) {
		doc := "## Dup\n\none\n\n## Dup\n\ntwo"
		s, _ := FindSection(doc, "Dup")
		if s.Content != "one" {
			t.Fatalf("FindSection() picked %q, want first occurrence", s.Content)
		}
	})
}

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Active Pipeline", "active_pipeline"},
		{"ruled_out companies", "ruled_out_companies"},
		{"ABC-123", "abc_123"},
		{"déjà vu", "d_j__vu"},
	}
	for _, tt := range tests {
		if got := NormalizeName(tt.in); got != tt.want {
			t.Errorf("NormalizeName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSectionNames(t *testing.T) {
	names := SectionNames("## A\n\n## B\n\nx")
	if strings.Join(names, ",") != "A,B" {
		t.Errorf("SectionNames() = %v", names)
	}
}
