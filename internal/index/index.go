package index

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/kls-dev/kls/internal/fileutil"
	"github.com/kls-dev/kls/internal/ignore"
	"github.com/kls-dev/kls/internal/kotlin"
	"github.com/kls-dev/kls/internal/parser"
)

const ignoreFileName = ".klsignore"

// Entry is the indexed state of one source file. Err is set only for
// read or parse failures; a file whose declarations partially failed
// still carries a File, with the failures recorded in File.Warnings.
type Entry struct {
	Path    string
	Content []byte
	Hash    string
	Tree    *sitter.Tree
	File    *kotlin.File
	Err     error
}

// ProjectIndex maps file paths to their parsed models. It is populated
// once by Build and read-only afterwards, so concurrent hover queries
// need no coordination beyond the read lock.
type ProjectIndex struct {
	mu      sync.RWMutex
	entries map[string]*Entry
}

// Build walks root, parses every Kotlin source file and constructs its
// file model. Files parse in parallel, one parser per worker; a failed
// file is kept as an entry with Err set, never dropped.
func Build(ctx context.Context, root string) (*ProjectIndex, error) {
	paths, err := collectPaths(root)
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", root, err)
	}

	ix := &ProjectIndex{entries: make(map[string]*Entry, len(paths))}
	if len(paths) == 0 {
		return ix, nil
	}

	workers := runtime.NumCPU()
	if workers > len(paths) {
		workers = len(paths)
	}

	pathCh := make(chan string, len(paths))
	for _, path := range paths {
		pathCh <- path
	}
	close(pathCh)

	entryCh := make(chan *Entry, len(paths))

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			// Tree-sitter parsers are not goroutine-safe; each worker
			// owns one.
			p := parser.New()
			for path := range pathCh {
				entryCh <- buildEntry(ctx, p, path)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(entryCh)
	}()

	for entry := range entryCh {
		ix.entries[entry.Path] = entry
	}

	return ix, ctx.Err()
}

func buildEntry(ctx context.Context, p *parser.Parser, path string) *Entry {
	entry := &Entry{Path: path}

	content, err := os.ReadFile(path)
	if err != nil {
		entry.Err = fmt.Errorf("reading %s: %w", path, err)
		return entry
	}
	entry.Content = content
	entry.Hash = fileutil.HashBytes(content)

	tree, err := p.Parse(ctx, content)
	if err != nil {
		entry.Err = fmt.Errorf("parsing %s: %w", path, err)
		return entry
	}
	entry.Tree = tree
	entry.File = kotlin.NewFile(tree, content)

	return entry
}

func collectPaths(root string) ([]string, error) {
	matcher := ignore.NewMatcher(loadIgnoreRules(root))

	var paths []string
	err := filepath.Walk(root, func(path string, info os.FileInfo, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}

		relPath, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}

		if matcher.ShouldIgnore(relPath, info.IsDir()) {
			if info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if info.IsDir() {
			return nil
		}
		if filepath.Ext(path) == ".kt" {
			paths = append(paths, path)
		}
		return nil
	})
	return paths, err
}

func loadIgnoreRules(root string) []string {
	content, err := os.ReadFile(filepath.Join(root, ignoreFileName))
	if err != nil {
		return nil
	}
	return strings.Split(string(content), "\n")
}

// Entry returns the indexed entry for path.
func (ix *ProjectIndex) Entry(path string) (*Entry, bool) {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	entry, ok := ix.entries[path]
	return entry, ok
}

// Paths returns all indexed paths in lexicographic order.
func (ix *ProjectIndex) Paths() []string {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	paths := make([]string, 0, len(ix.entries))
	for path := range ix.entries {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

// Len reports the number of indexed files, including failed ones.
func (ix *ProjectIndex) Len() int {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return len(ix.entries)
}

// FindFileByStem returns the entry whose file name without extension
// equals stem, following the one-class-per-file convention. When several
// files share a stem the lexicographically first path wins.
func (ix *ProjectIndex) FindFileByStem(stem string) *Entry {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	var found *Entry
	for path, entry := range ix.entries {
		base := filepath.Base(path)
		if strings.TrimSuffix(base, filepath.Ext(base)) != stem {
			continue
		}
		if found == nil || path < found.Path {
			found = entry
		}
	}
	return found
}
