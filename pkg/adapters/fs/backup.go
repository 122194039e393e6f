package fs

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// backupStamp layout sorts lexically in chronological order, which prune
// relies on.
const backupStamp = "20060102T150405.000000000"

// backupStore writes a timestamped copy of a document's previous bytes
// before every overwrite, keeping a bounded history per document.
type backupStore struct {
	dir  string // {vault}/{systemDir}/backups
	keep int
}

func newBackupStore(vaultPath, systemDir string, keep int) *backupStore {
	return &backupStore{
		dir:  filepath.Join(vaultPath, systemDir, "backups"),
		keep: keep,
	}
}

// Snapshot stores data as the latest backup for the document id and prunes
// older copies beyond the retention limit.
func (b *backupStore) Snapshot(id string, data []byte) error {
	stamp := time.Now().UTC().Format(backupStamp)
	path := filepath.Join(b.dir, id+"."+stamp+".md")

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create backup directory: %w", err)
	}
	if err := writeFileAtomic(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write backup: %w", err)
	}

	return b.prune(id)
}

// prune removes the oldest backups of id beyond the retention limit.
func (b *backupStore) prune(id string) error {
	dir := filepath.Join(b.dir, filepath.Dir(id))
	prefix := filepath.Base(id) + "."

	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if strings.HasPrefix(name, prefix) && strings.HasSuffix(name, ".md") {
			names = append(names, name)
		}
	}

	if len(names) <= b.keep {
		return nil
	}

	sort.Strings(names)
	for _, name := range names[:len(names)-b.keep] {
		if err := os.Remove(filepath.Join(dir, name)); err != nil {
			return err
		}
	}
	return nil
}
