package main

import (
	"bufio"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// GitignorePattern is one line of a .gitignore file.
type GitignorePattern struct {
	Pattern  string // slash-separated, without leading "/", trailing "/" or "!"
	Negation bool   // "!pattern"
	Anchored bool   // contains a "/" before the end: matched from the root
}

// LoadGitignore parses .gitignore from the module root. A missing file yields no patterns.
func LoadGitignore(root string) []GitignorePattern {
	f, err := os.Open(filepath.Join(root, ".gitignore"))
	if err != nil {
		return nil
	}
	defer f.Close()

	var patterns []GitignorePattern
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if p, ok := parseGitignoreLine(scanner.Text()); ok {
			patterns = append(patterns, p)
		}
	}
	return patterns
}

func parseGitignoreLine(line string) (GitignorePattern, bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return GitignorePattern{}, false
	}

	var p GitignorePattern
	if strings.HasPrefix(line, "!") {
		p.Negation = true
		line = line[1:]
	}
	// Packages are directories, so "dir/" and "dir" behave the same here.
	line = strings.TrimSuffix(line, "/")
	if strings.Contains(line, "/") {
		p.Anchored = true
		line = strings.TrimPrefix(line, "/")
	}
	if line == "" {
		return GitignorePattern{}, false
	}
	p.Pattern = line
	return p, true
}

// IsGitignored reports whether a module-relative package dir is ignored.
// The last matching pattern wins, as in git.
func IsGitignored(relPath string, patterns []GitignorePattern) bool {
	relPath = filepath.ToSlash(relPath)

	ignored := false
	for _, p := range patterns {
		if p.matches(relPath) {
			ignored = !p.Negation
		}
	}
	return ignored
}

// matches reports whether p matches relPath or any of its parent directories.
func (p GitignorePattern) matches(relPath string) bool {
	segments := strings.Split(relPath, "/")

	if !p.Anchored {
		// Unanchored patterns match a single path segment at any depth.
		for _, seg := range segments {
			if ok, _ := path.Match(p.Pattern, seg); ok {
				return true
			}
		}
		return false
	}

	// Anchored patterns match the path or one of its prefixes.
	for i := len(segments); i > 0; i-- {
		if matchAnchored(p.Pattern, strings.Join(segments[:i], "/")) {
			return true
		}
	}
	return false
}

// matchAnchored matches pattern against a full relative path, with "**" spanning
// any number of segments.
func matchAnchored(pattern, relPath string) bool {
	if !strings.Contains(pattern, "**") {
		ok, _ := path.Match(pattern, relPath)
		return ok
	}
	return matchSegments(strings.Split(pattern, "/"), strings.Split(relPath, "/"))
}

func matchSegments(pattern, segments []string) bool {
	for len(pattern) > 0 {
		if pattern[0] == "**" {
			rest := pattern[1:]
			for i := 0; i <= len(segments); i++ {
				if matchSegments(rest, segments[i:]) {
					return true
				}
			}
			return false
		}
		if len(segments) == 0 {
			return false
		}
		if ok, _ := path.Match(pattern[0], segments[0]); !ok {
			return false
		}
		pattern, segments = pattern[1:], segments[1:]
	}
	return len(segments) == 0
}
