package lib

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Source is an expression to compile. Filename is only used to prefix
// diagnostics and may be empty.
type Source struct {
	Filename string
	Text     []byte
}

func StringSource(s string) Source {
	return Source{Text: []byte(s)}
}

func ReadSourceFile(filePath string) (Source, error) {
	bytes, err := os.ReadFile(filePath)
	if err != nil {
		return Source{}, err
	}
	return Source{Filename: filePath, Text: bytes}, nil
}

// ReadSourcesFromDir reads every regular file in dir, sorted by name.
func ReadSourcesFromDir(dir string) ([]Source, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	names := []string{}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	sources := []Source{}
	for _, name := range names {
		src, err := ReadSourceFile(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		sources = append(sources, src)
	}
	return sources, nil
}

// Name is the file name without directory or extensions.
func (s Source) Name() string {
	if s.Filename == "" {
		return ""
	}
	_, fileName := filepath.Split(s.Filename)
	parts := strings.Split(fileName, ".")
	return parts[0]
}
