package scan

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Tharun135/docscan"
)

// scannableExtensions lists the file extensions CollectFiles picks up when
// walking directories. Explicitly named files bypass this filter.
var scannableExtensions = map[string]bool{
	".md":       true,
	".markdown": true,
	".mdx":      true,
	".html":     true,
	".htm":      true,
	".xhtml":    true,
	".xml":      true,
	".dita":     true,
	".txt":      true,
}

// CollectFiles expands the given paths into a sorted list of scannable
// files. Directories are walked recursively; hidden directories and
// node_modules are skipped. A path that is neither a directory nor an
// existing file is an error.
func CollectFiles(paths []string) ([]string, error) {
	var files []string
	seen := make(map[string]bool)

	add := func(path string) {
		if !seen[path] {
			seen[path] = true
			files = append(files, path)
		}
	}

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, docscan.Errorf(docscan.EINVALID, "cannot access %q: %v", path, err)
		}

		if !info.IsDir() {
			add(filepath.Clean(path))
			continue
		}

		err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			name := d.Name()
			if d.IsDir() {
				if p != path && (strings.HasPrefix(name, ".") || name == "node_modules") {
					return filepath.SkipDir
				}
				return nil
			}
			if strings.HasPrefix(name, ".") {
				return nil
			}
			if scannableExtensions[strings.ToLower(filepath.Ext(name))] {
				add(p)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	sort.Strings(files)
	return files, nil
}
