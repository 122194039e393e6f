// Package humus is the composition root for the humus library.
//
// It connects the markdown section/item document model (domain layer) with
// the filesystem persistence adapter using the hexagonal architecture
// pattern.
//
// Philosophy:
//
// Humus treats a directory of Markdown notes as a structured document store.
// Each note is a Markdown file with a YAML frontmatter envelope; its body is
// divided into heading-delimited sections, and sections hold informal items
// ("### name" plus "- **Field**: value" bullets). Humus can append to,
// replace, and create sections, relocate items between sections with a
// provenance comment, and patch item fields in place.
//
// Features:
//
//   - **Section surgery**: append/replace/create named sections with fuzzy
//     name matching.
//   - **Item relocation**: move "### item" blocks between sections, recording
//     where they came from and why.
//   - **Field patching**: rewrite "- **Field**: value" bullets in place.
//   - **Safe persistence**: atomic writes plus timestamped backups before
//     every overwrite.
//   - **Watching**: fsnotify-based change events for external edits.
//   - **Extensible**: any backend can replace the filesystem via
//     core.Repository.
//
// Usage:
//
//	svc, err := humus.New("./vault",
//		humus.WithLogger(logger),
//	)
//
//	err = svc.UpdateSection(ctx, "pipeline", "Active", "### Acme\n- **Status**: applied", humus.ModeAppend)
package humus
