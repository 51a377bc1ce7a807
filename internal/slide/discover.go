package slide

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

// Discover walks root and returns a descriptor for every fragment found at
// most maxDepth directory levels below it. Entries are visited in lexical
// order, so the result is stable for an unchanged tree.
func Discover(ctx context.Context, root string, maxDepth int, ext string) ([]Descriptor, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve slides path %s: %w", root, err)
	}
	b := Builder{Root: absRoot, Extension: ext}

	var slides []Descriptor
	err = filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		if d.IsDir() {
			if path != absRoot && depth(absRoot, path) > maxDepth {
				return filepath.SkipDir
			}
			return nil
		}

		if s, ok := b.Build(Entry{Dir: filepath.Dir(path), Name: d.Name(), Path: path}); ok {
			slides = append(slides, s)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan slides in %s: %w", root, err)
	}
	return slides, nil
}

// depth counts the path segments of dir below root.
func depth(root, dir string) int {
	rel, err := filepath.Rel(root, dir)
	if err != nil || rel == "." {
		return 0
	}
	return strings.Count(rel, string(filepath.Separator)) + 1
}
