package pathlib

import (
	"io/fs"
	"iter"
	"os"
	"path/filepath"
)

// Walk returns the directories reachable from p, including p itself,
// visited depth-first and top-down in lexical order. The sequence is
// produced lazily and each invocation performs a fresh traversal.
//
// A missing or non-directory root produces an empty sequence. Unreadable
// entries are skipped rather than terminating the traversal. Symlink
// cycles are not detected.
func (p *Path) Walk() iter.Seq[*Path] {
	return func(yield func(*Path) bool) {
		root := p.String()
		info, err := os.Stat(root)
		if err != nil || !info.IsDir() {
			return
		}
		filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil || !d.IsDir() {
				return nil
			}
			if !yield(Parse(path)) {
				return filepath.SkipAll
			}
			return nil
		})
	}
}

// IterDir returns the immediate children of p in directory order. A root
// that cannot be read produces an empty sequence.
func (p *Path) IterDir() iter.Seq[*Path] {
	return func(yield func(*Path) bool) {
		entries, err := os.ReadDir(p.String())
		if err != nil {
			return
		}
		for _, e := range entries {
			if !yield(p.Join(e.Name())) {
				return
			}
		}
	}
}
