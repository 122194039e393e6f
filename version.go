package humus

import _ "embed"

// Version exposes the version of the library, embedded from the VERSION file
// so the CLI and release tooling read the same source of truth.
//
//go:embed VERSION
var Version string
