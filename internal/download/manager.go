package download

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"

	gogit "github.com/go-git/go-git/v5"

	"svcmenu/internal/desktop"
)

// Manager clones or updates the configured sources and installs the entry
// files they carry.
type Manager struct {
	catalog  *Catalog
	cacheDir string
	root     string
}

// NewManager creates a manager that caches clones under cacheDir and
// installs entries below the given registry root.
func NewManager(catalog *Catalog, cacheDir, root string) *Manager {
	if strings.TrimSpace(cacheDir) == "" {
		cacheDir = DefaultCacheDir()
	}
	return &Manager{catalog: catalog, cacheDir: cacheDir, root: root}
}

// DefaultCacheDir returns where source clones are kept.
func DefaultCacheDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".cache", "svcmenu", "sources")
}

// Result reports one source's fetch outcome.
type Result struct {
	Source    Source
	Updated   bool
	Installed []string
	Err       error
}

// Changed reports whether any fetch brought in new or updated entries, which
// means the catalog has to be rebuilt.
func Changed(results []Result) bool {
	for _, r := range results {
		if r.Err == nil && r.Updated {
			return true
		}
	}
	return false
}

// FetchAll fetches every configured source over a small worker pool and
// returns one result per source, ordered by source name.
func (m *Manager) FetchAll() ([]Result, error) {
	sources, err := m.catalog.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load sources: %w", err)
	}
	if len(sources) == 0 {
		return nil, nil
	}

	numWorkers := runtime.NumCPU()
	if numWorkers > 4 {
		numWorkers = 4 // network-bound, a few is plenty
	}

	jobs := make(chan Source, len(sources))
	results := make(chan Result, len(sources))

	var wg sync.WaitGroup
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for src := range jobs {
				results <- m.fetchOne(src)
			}
		}()
	}

	for _, src := range sources {
		jobs <- src
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(results)
	}()

	var all []Result
	for r := range results {
		all = append(all, r)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Source.Name < all[j].Source.Name })

	return all, nil
}

// fetchOne clones the source on first sight, pulls afterwards, and installs
// the entry files when anything moved.
func (m *Manager) fetchOne(src Source) Result {
	res := Result{Source: src}

	dir := filepath.Join(m.cacheDir, cacheName(src.Name))
	repo, err := gogit.PlainOpen(dir)
	if err != nil {
		repo, err = gogit.PlainClone(dir, false, &gogit.CloneOptions{URL: src.Repo})
		if err != nil {
			res.Err = fmt.Errorf("clone failed: %w", err)
			return res
		}
		res.Updated = true
	} else {
		worktree, err := repo.Worktree()
		if err != nil {
			res.Err = err
			return res
		}
		switch err := worktree.Pull(&gogit.PullOptions{}); {
		case err == nil:
			res.Updated = true
		case errors.Is(err, gogit.NoErrAlreadyUpToDate):
		default:
			res.Err = fmt.Errorf("pull failed: %w", err)
			return res
		}
	}

	if res.Updated {
		res.Installed, res.Err = m.install(dir, src.Category)
	}
	return res
}

// install copies every valid entry file from the clone into the category
// directory under the install root. Files that do not parse are skipped.
func (m *Manager) install(dir, category string) ([]string, error) {
	target := filepath.Join(m.root, category)
	if err := os.MkdirAll(target, 0755); err != nil {
		return nil, err
	}

	var installed []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if d.Name() == ".git" {
				return filepath.SkipDir
			}
			return nil
		}

		switch filepath.Ext(path) {
		case ".desktop":
			if _, err := desktop.Parse(path); err != nil {
				return nil
			}
		case ".json":
			data, err := os.ReadFile(path)
			if err != nil || !json.Valid(data) {
				return nil
			}
		default:
			return nil
		}

		dest := filepath.Join(target, filepath.Base(path))
		if err := copyFile(path, dest); err != nil {
			return err
		}
		installed = append(installed, dest)
		return nil
	})
	return installed, err
}

func copyFile(src, dest string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	return os.WriteFile(dest, data, 0644)
}

// cacheName turns a source name into a safe directory name.
func cacheName(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('-')
		}
	}
	return b.String()
}
