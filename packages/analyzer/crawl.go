package analyzer

import (
	"context"

	"larpscan/types"
)

// crawlTree walks the repository depth first, one listing request per
// directory, appending files in listing order. A directory whose
// listing fails contributes nothing; sibling subtrees are unaffected.
func (a *Analyzer) crawlTree(ctx context.Context, ref types.RepoRef, dir string) []types.FileEntry {
	entries, err := a.host.ListDirectory(ctx, ref, dir)
	if err != nil {
		a.policy.Absorb("list directory", err, "dir", dir)
		return nil
	}

	var files []types.FileEntry
	for _, entry := range entries {
		switch entry.Kind {
		case types.EntryFile:
			files = append(files, entry)
		case types.EntryDir:
			files = append(files, a.crawlTree(ctx, ref, entry.Path)...)
		}
	}

	return files
}
