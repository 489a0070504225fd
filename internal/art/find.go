// ABOUTME: Resolves a logical art name to a file across the standard search path
// ABOUTME: NFC-normalizes names and attaches fuzzy suggestions to not-found errors

package art

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/mauromedda/splashfetch-go/internal/config"
	"github.com/mauromedda/splashfetch-go/pkg/tui/fuzzy"
)

// extensions tried when a logical name carries none, in order.
var extensions = []string{"", ".txt", ".art", ".gif", ".png", ".jpg", ".jpeg", ".webp"}

// Resolve maps a logical art name (or explicit path) to an absolute
// file path. Explicit paths are used as-is; bare names are searched
// across config.ArtDirs with the known extensions. Not-found errors
// carry "did you mean" suggestions from the available art names.
func Resolve(name string) (string, error) {
	name = norm.NFC.String(strings.TrimSpace(name))
	if name == "" {
		return "", fmt.Errorf("empty art name")
	}

	// Explicit path: separator present or file exists as given.
	if strings.ContainsRune(name, os.PathSeparator) || fileExists(name) {
		abs, err := filepath.Abs(name)
		if err != nil {
			return "", fmt.Errorf("resolving %s: %w", name, err)
		}
		if !fileExists(abs) {
			return "", fmt.Errorf("art file %s not found", name)
		}
		return abs, nil
	}

	for _, dir := range config.ArtDirs() {
		for _, ext := range extensions {
			candidate := filepath.Join(dir, name+ext)
			if fileExists(candidate) {
				abs, err := filepath.Abs(candidate)
				if err != nil {
					return "", fmt.Errorf("resolving %s: %w", candidate, err)
				}
				return abs, nil
			}
		}
	}

	available := List()
	if hints := fuzzy.Suggest(name, available, 3); len(hints) > 0 {
		return "", fmt.Errorf("art %q not found (did you mean %s?)", name, strings.Join(hints, ", "))
	}
	return "", fmt.Errorf("art %q not found in %s", name, strings.Join(config.ArtDirs(), ", "))
}

// List returns the logical names resolvable from the search path,
// sorted and deduplicated.
func List() []string {
	seen := make(map[string]struct{})
	for _, dir := range config.ArtDirs() {
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			base := e.Name()
			ext := strings.ToLower(filepath.Ext(base))
			if !knownExt(ext) {
				continue
			}
			seen[strings.TrimSuffix(base, filepath.Ext(base))] = struct{}{}
		}
	}
	names := make([]string, 0, len(seen))
	for n := range seen {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func knownExt(ext string) bool {
	for _, e := range extensions[1:] {
		if ext == e {
			return true
		}
	}
	return false
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
