// Package files locates input documents on disk for the CLI: builder
// spreadsheets and interchange files dropped into a watch directory.
package files

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// FileInfo describes one discovered input file.
type FileInfo struct {
	Path    string
	Name    string
	Size    int64
	ModTime time.Time
}

// Discovery finds input files under a base directory.
type Discovery struct {
	basePath string
}

// NewDiscovery creates a discovery rooted at basePath.
func NewDiscovery(basePath string) *Discovery {
	return &Discovery{basePath: basePath}
}

// FindSpreadsheets lists the builder spreadsheets in dir, newest first.
// Excel lock files are excluded.
func (d *Discovery) FindSpreadsheets(dir string) ([]FileInfo, error) {
	return d.find(dir, func(name string) bool {
		return strings.HasSuffix(name, ".xlsx") && !strings.HasPrefix(name, "~$")
	})
}

// FindInterchangeFiles lists REM interchange documents in dir, newest
// first.
func (d *Discovery) FindInterchangeFiles(dir string) ([]FileInfo, error) {
	return d.find(dir, func(name string) bool {
		return strings.HasSuffix(name, ".xml") || strings.HasSuffix(name, ".csv")
	})
}

// Latest returns the most recently modified spreadsheet in dir, or an
// error when the directory holds none.
func (d *Discovery) Latest(dir string) (FileInfo, error) {
	found, err := d.FindSpreadsheets(dir)
	if err != nil {
		return FileInfo{}, err
	}
	if len(found) == 0 {
		return FileInfo{}, fmt.Errorf("no spreadsheets in %s", dir)
	}
	return found[0], nil
}

// LatestInput returns the most recently modified loadable input in dir,
// spreadsheet or interchange document, or an error when the directory
// holds neither.
func (d *Discovery) LatestInput(dir string) (FileInfo, error) {
	found, err := d.find(dir, func(name string) bool {
		if strings.HasSuffix(name, ".xlsx") {
			return !strings.HasPrefix(name, "~$")
		}
		return strings.HasSuffix(name, ".xml") || strings.HasSuffix(name, ".csv")
	})
	if err != nil {
		return FileInfo{}, err
	}
	if len(found) == 0 {
		return FileInfo{}, fmt.Errorf("no input files in %s", dir)
	}
	return found[0], nil
}

func (d *Discovery) find(dir string, match func(name string) bool) ([]FileInfo, error) {
	fullPath := dir
	if !filepath.IsAbs(dir) {
		fullPath = filepath.Join(d.basePath, dir)
	}

	entries, err := os.ReadDir(fullPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", fullPath, err)
	}

	var files []FileInfo
	for _, entry := range entries {
		if entry.IsDir() || !match(strings.ToLower(entry.Name())) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		files = append(files, FileInfo{
			Path:    filepath.Join(fullPath, entry.Name()),
			Name:    entry.Name(),
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].ModTime.After(files[j].ModTime)
	})
	return files, nil
}
