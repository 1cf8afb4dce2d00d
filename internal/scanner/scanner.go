// Package scanner walks a directory tree and collects the source files the
// compressor will process, applying include and ignore glob patterns.
package scanner

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"

	"github.com/mvp-joe/sigpress/internal/compress"
)

// maxFileSize guards against pulling generated bundles or data dumps into
// the document. Files above it are skipped.
const maxFileSize = 4 << 20

// compiledPattern holds both the pattern string and compiled glob.
type compiledPattern struct {
	pattern string
	glob    glob.Glob
}

// Scanner discovers files under a root directory.
type Scanner struct {
	rootDir         string
	includePatterns []compiledPattern
	ignorePatterns  []compiledPattern
}

// New creates a scanner for rootDir. Patterns use '/'-separated glob syntax
// ("**/*.ts", "vendor/**").
func New(rootDir string, includePatterns, ignorePatterns []string) (*Scanner, error) {
	s := &Scanner{rootDir: rootDir}

	for _, pattern := range includePatterns {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, err
		}
		s.includePatterns = append(s.includePatterns, compiledPattern{pattern: pattern, glob: g})
	}

	for _, pattern := range ignorePatterns {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, err
		}
		s.ignorePatterns = append(s.ignorePatterns, compiledPattern{pattern: pattern, glob: g})
	}

	return s, nil
}

// Scan walks the tree and returns matching files with their contents, paths
// relative to the root with forward slashes. Walk order is lexical, so the
// sequence is deterministic for a given tree.
func (s *Scanner) Scan() ([]compress.SourceFile, error) {
	var files []compress.SourceFile

	err := filepath.Walk(s.rootDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		relPath, err := filepath.Rel(s.rootDir, path)
		if err != nil {
			return err
		}
		relPath = filepath.ToSlash(relPath)

		if info.IsDir() {
			if relPath != "." && s.shouldIgnore(relPath) {
				return filepath.SkipDir
			}
			return nil
		}

		if s.shouldIgnore(relPath) || !s.matchesAnyPattern(relPath, s.includePatterns) {
			return nil
		}
		if info.Size() > maxFileSize {
			return nil
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		if isBinary(content) {
			return nil
		}

		files = append(files, compress.SourceFile{Path: relPath, Content: string(content)})
		return nil
	})

	return files, err
}

// shouldIgnore checks a relative path against the ignore patterns. A bare
// directory path also matches patterns written with a trailing /** so that
// "node_modules/**" prunes the whole subtree.
func (s *Scanner) shouldIgnore(relPath string) bool {
	if s.matchesAnyPattern(relPath, s.ignorePatterns) {
		return true
	}
	return s.matchesAnyPattern(relPath+"/**", s.ignorePatterns)
}

// matchesAnyPattern checks if a path matches any of the given patterns.
// Root-level files additionally match patterns with a leading **/ stripped,
// so "**/*.md" covers both "README.md" and "docs/guide.md".
func (s *Scanner) matchesAnyPattern(path string, patterns []compiledPattern) bool {
	for _, cp := range patterns {
		if cp.glob.Match(path) {
			return true
		}
	}

	if !strings.Contains(path, "/") {
		for _, cp := range patterns {
			if strings.HasPrefix(cp.pattern, "**/") {
				simplified := strings.TrimPrefix(cp.pattern, "**/")
				if simplifiedGlob, err := glob.Compile(simplified, '/'); err == nil {
					if simplifiedGlob.Match(path) {
						return true
					}
				}
			}
		}
	}

	return false
}

// isBinary treats any content with a NUL byte in its first kilobyte as
// binary.
func isBinary(content []byte) bool {
	probe := content
	if len(probe) > 1024 {
		probe = probe[:1024]
	}
	return bytes.IndexByte(probe, 0) >= 0
}
