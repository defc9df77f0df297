package parser

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Default file name patterns of the two table families. MagneticPattern also
// matches scattering files; those are dropped for lacking a model-type tag.
const (
	MagneticPattern   = "Table*.txt"
	ScatteringPattern = "Table_*.txt"
)

const utf8BOM = "\uFEFF"

// ScanTables returns the regular files in dir matching pattern, sorted by path so
// that duplicate keys across files resolve the same way on every run.
// A directory that does not exist yields no files and no error.
func ScanTables(dir, pattern string) ([]string, error) {
	if _, err := filepath.Match(pattern, ""); err != nil {
		return nil, fmt.Errorf("invalid table pattern %q: %w", pattern, err)
	}

	matches, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", dir, err)
	}

	files := matches[:0]
	for _, m := range matches {
		info, err := os.Stat(m)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		files = append(files, m)
	}

	sort.Strings(files)
	return files, nil
}

// readLines splits r into lines without their terminators.
func readLines(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	var lines []string
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if len(lines) == 0 {
			line = strings.TrimPrefix(line, utf8BOM)
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// splitFields splits a tab-separated line and trims every field.
func splitFields(line string) []string {
	parts := strings.Split(line, "\t")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}
