package humus_test

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/humuslab/humus"
)

// Example_basic demonstrates how to initialize a vault, save a note, and edit
// one of its sections.
func Example_basic() {
	// Create a temporary directory for the example
	tmpDir, err := os.MkdirTemp("", "humus-example-*")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(tmpDir)

	// Initialize the Humus service (vault) targeting the temporary directory.
	vault, err := humus.New(tmpDir)
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()

	// 1. Save a note
	_, err = vault.SaveNote(ctx, "pipeline", "## Active\n\n### Acme\n- **Status**: applied", []string{"job-search"}, "")
	if err != nil {
		log.Fatal(err)
	}

	// 2. Append to a section
	err = vault.UpdateSection(ctx, "pipeline", "Active", "### Beta\n- **Status**: screening", humus.ModeAppend)
	if err != nil {
		log.Fatal(err)
	}

	// 3. Read the section back
	section, err := vault.ReadSection(ctx, "pipeline", "Active")
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(section.Content)
	// Output:
	// ### Acme
	// - **Status**: applied
	//
	// ### Beta
	// - **Status**: screening
}

// Example_moveItem demonstrates relocating an item between sections with a
// provenance comment.
func Example_moveItem() {
	tmpDir, err := os.MkdirTemp("", "humus-move-example-*")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(tmpDir)

	vault, err := humus.New(tmpDir)
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()

	_, err = vault.SaveNote(ctx, "pipeline", "## Active\n\n### Acme\n- **Status**: applied", nil, "")
	if err != nil {
		log.Fatal(err)
	}

	if err := vault.MoveItem(ctx, "pipeline", "Active", "Rejected", "Acme", "no response"); err != nil {
		log.Fatal(err)
	}

	section, err := vault.ReadSection(ctx, "pipeline", "Rejected")
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(section.Content)
	// Output:
	// ### Acme
	// - **Status**: applied
	//   <!-- Moved from Active: no response -->
}
