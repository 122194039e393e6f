package markdown

import (
	"reflect"
	"testing"

	"github.com/humuslab/humus/pkg/core"
)

func TestFindItemBounds(t *testing.T) {
	tests := []struct {
		name       string
		lines      []string
		identifier string
		want       core.ItemBounds
		found      bool
	}{
		{
			name:       "Blank Line Before Next Heading Excluded",
			lines:      []string{"### A", "- x", "", "### B", "- y"},
			identifier: "A",
			want:       core.ItemBounds{Start: 0, End: 1},
			found:      true,
		},
		{
			name:       "Runs To End Without Next Heading",
			lines:      []string{"### A", "- x", "", "- y"},
			identifier: "A",
			want:       core.ItemBounds{Start: 0, End: 3},
			found:      true,
		},
		{
			name:       "Adjacent Heading Ends Item",
			lines:      []string{"### A", "- x", "### B"},
			identifier: "A",
			want:       core.ItemBounds{Start: 0, End: 1},
			found:      true,
		},
		{
			name:       "Case Insensitive Substring",
			lines:      []string{"### Acme Corp", "- **Status**: applied"},
			identifier: "acme",
			want:       core.ItemBounds{Start: 0, End: 1},
			found:      true,
		},
		{
			name:       "Match On Content Line",
			lines:      []string{"### A", "- **Recruiter**: Jo Smith", "", "### B", "- z"},
			identifier: "jo smith",
			want:       core.ItemBounds{Start: 1, End: 1},
			found:      true,
		},
		{
			name:       "Second Item",
			lines:      []string{"### A", "- x", "", "### B", "- y"},
			identifier: "B",
			want:       core.ItemBounds{Start: 3, End: 4},
			found:      true,
		},
		{
			name:       "Not Found",
			lines:      []string{"### A", "- x"},
			identifier: "zzz",
			found:      false,
		},
		{
			name:       "Heading Immediately After Start",
			lines:      []string{"### A", "### B", "- y"},
			identifier: "A",
			want:       core.ItemBounds{Start: 0, End: 0},
			found:      true,
		},
		{
			name:       "Interior Blank Kept When No Heading Follows",
			lines:      []string{"### A", "- x", "", "note", "", "### B"},
			identifier: "A",
			want:       core.ItemBounds{Start: 0, End: 3},
			found:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := FindItemBounds(tt.lines, tt.identifier)
			if found != tt.found {
				t.Fatalf("FindItemBounds() found = %v, want %v", found, tt.found)
			}
			if found && got != tt.want {
				t.Errorf("FindItemBounds() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestExtractAndRemoveItemLines(t *testing.T) {
	lines := []string{"### A", "- x", "", "### B", "- y"}
	b := core.ItemBounds{Start: 0, End: 1}

	extracted := ExtractItemLines(lines, b)
	if !reflect.DeepEqual(extracted, []string{"### A", "- x"}) {
		t.Errorf("ExtractItemLines() = %v", extracted)
	}

	removed := RemoveItemFromLines(lines, b)
	if !reflect.DeepEqual(removed, []string{"", "### B", "- y"}) {
		t.Errorf("RemoveItemFromLines() = %v", removed)
	}

	// Inputs stay untouched.
	if !reflect.DeepEqual(lines, []string{"### A", "- x", "", "### B", "- y"}) {
		t.Errorf("input lines mutated: %v", lines)
	}
}

func TestRemoveItemLeavesBlankRuns(t *testing.T) {
	lines := []string{"### A", "- x", "", "### B", "- y", "", "### C", "- z"}
	b, found := FindItemBounds(lines, "B")
	if !found {
		t.Fatal("item B not found")
	}

	removed := RemoveItemFromLines(lines, b)
	// Plain deletion: the blank lines flanking B are both kept.
	want := []string{"### A", "- x", "", "", "### C", "- z"}
	if !reflect.DeepEqual(removed, want) {
		t.Errorf("RemoveItemFromLines() = %v, want %v", removed, want)
	}
}

func TestAddReasonToItem(t *testing.T) {
	got := AddReasonToItem([]string{"### A", "- x"}, "no response", "Active")
	want := []string{"### A", "- x", "  <!-- Moved from Active: no response -->"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("AddReasonToItem() = %v, want %v", got, want)
	}
}

func TestPrepareDestinationContent(t *testing.T) {
	item := []string{"### A", "- x"}

	if got := PrepareDestinationContent(item, ""); got != "### A\n- x" {
		t.Errorf("new section content = %q", got)
	}
	if got := PrepareDestinationContent(item, "### Old\n- y"); got != "### Old\n- y\n\n### A\n- x" {
		t.Errorf("existing section content = %q", got)
	}
}

func TestApplyFieldPatches(t *testing.T) {
	t.Run("Rewrite Existing Bullet", func(t *testing.T) {
		item := []string{"### Acme", "- **Status**: applied", "- **Recruiter**: Jo"}
		got := ApplyFieldPatches(item, []FieldPatch{{Field: "status", Value: "interviewing"}})
		want := []string{"### Acme", "- **Status**: interviewing", "- **Recruiter**: Jo"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("ApplyFieldPatches() = %v, want %v", got, want)
		}
	})

	t.Run("Insert After Heading When Missing", func(t *testing.T) {
		item := []string{"### Acme", "- **Status**: applied"}
		got := ApplyFieldPatches(item, []FieldPatch{{Field: "Salary", Value: "120k"}})
		want := []string{"### Acme", "- **Salary**: 120k", "- **Status**: applied"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("ApplyFieldPatches() = %v, want %v", got, want)
		}
	})

	t.Run("Append When First Line Not A Heading", func(t *testing.T) {
		item := []string{"- **Status**: applied"}
		got := ApplyFieldPatches(item, []FieldPatch{{Field: "Salary", Value: "120k"}})
		want := []string{"- **Status**: applied", "- **Salary**: 120k"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("ApplyFieldPatches() = %v, want %v", got, want)
		}
	})

	t.Run("Indented Bullet Keeps Prefix", func(t *testing.T) {
		item := []string{"### Acme", "  - **Status**: applied"}
		got := ApplyFieldPatches(item, []FieldPatch{{Field: "Status", Value: "offer"}})
		if got[1] != "  - **Status**: offer" {
			t.Errorf("patched line = %q", got[1])
		}
	})

	t.Run("Multiple Patches", func(t *testing.T) {
		item := []string{"### Acme", "- **Status**: applied"}
		got := ApplyFieldPatches(item, []FieldPatch{
			{Field: "Status", Value: "offer"},
			{Field: "Next Step", Value: "sign"},
		})
		want := []string{"### Acme", "- **Next Step**: sign", "- **Status**: offer"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("ApplyFieldPatches() = %v, want %v", got, want)
		}
	})

	t.Run("Input Not Mutated", func(t *testing.T) {
		item := []string{"### Acme", "- **Status**: applied"}
		ApplyFieldPatches(item, []FieldPatch{{Field: "Status", Value: "offer"}})
		if item[1] != "- **Status**: applied" {
			t.Errorf("input mutated: %v", item)
		}
	})
}
