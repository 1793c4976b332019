package workflows

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/PolarWolf314/saas-template-companion/internal/audit"
	kerrors "github.com/PolarWolf314/saas-template-companion/internal/errors"

	"github.com/bmatcuk/doublestar/v4"
)

// CleanupOptions configures the cleanup workflow.
type CleanupOptions struct {
	// Patterns are doublestar globs relative to Root.
	Patterns []string

	// Root is the directory patterns are resolved against. Empty means the working directory.
	Root string

	// DryRun lists the matches without removing anything.
	DryRun bool

	// Confirm is asked before removal; returning false aborts. Nil removes without asking.
	Confirm func(matches []string) bool

	// AuditPath is the audit log to append to; empty disables it.
	AuditPath string
}

// CleanupResult contains the outcome of a cleanup operation.
type CleanupResult struct {
	// Matches are the paths, relative to Root, selected for removal.
	Matches []string

	// Removed are the paths actually removed.
	Removed []string

	// DryRun indicates whether this was a dry-run.
	DryRun bool

	// Aborted indicates the user declined the confirmation.
	Aborted bool
}

// Cleanup removes every file or folder matching one of the patterns.
//
// Matches are deduplicated and sorted. A match nested inside another matched
// directory is dropped since removing the parent covers it. Root itself is
// never removed.
//
// Returns ErrNoPatterns if no pattern was given.
func Cleanup(ctx context.Context, opts CleanupOptions) (*CleanupResult, error) {
	if len(opts.Patterns) == 0 {
		return nil, kerrors.ErrNoPatterns
	}

	root := opts.Root
	if root == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting working directory: %w", err)
		}
		root = wd
	}
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", root, err)
	}

	matches, err := resolveCleanupPatterns(root, opts.Patterns)
	if err != nil {
		return nil, err
	}

	result := &CleanupResult{DryRun: opts.DryRun}
	for _, m := range matches {
		rel, err := filepath.Rel(root, m)
		if err != nil {
			rel = m
		}
		result.Matches = append(result.Matches, rel)
	}

	if len(matches) == 0 || opts.DryRun {
		return result, nil
	}

	if opts.Confirm != nil && !opts.Confirm(result.Matches) {
		result.Aborted = true
		return result, nil
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	for i, m := range matches {
		if err := os.RemoveAll(m); err != nil {
			return result, fmt.Errorf("removing %s: %w", result.Matches[i], err)
		}
		result.Removed = append(result.Removed, result.Matches[i])
	}

	auditEntry := audit.NewEntry("cleanup")
	auditEntry.Files = result.Removed
	auditEntry.RemovedCount = len(result.Removed)
	audit.Log(opts.AuditPath, auditEntry)

	return result, nil
}

// resolveCleanupPatterns expands patterns under root into absolute paths.
func resolveCleanupPatterns(root string, patterns []string) ([]string, error) {
	seen := make(map[string]bool)
	var all []string

	for _, pattern := range patterns {
		if !doublestar.ValidatePattern(filepath.ToSlash(pattern)) {
			return nil, fmt.Errorf("invalid glob pattern %q", pattern)
		}

		absPattern := pattern
		if !filepath.IsAbs(pattern) {
			absPattern = filepath.Join(root, pattern)
		}

		found, err := doublestar.FilepathGlob(absPattern)
		if err != nil {
			return nil, fmt.Errorf("invalid glob pattern %q: %w", pattern, err)
		}

		for _, m := range found {
			m = filepath.Clean(m)
			if m == root || !isWithin(root, m) || seen[m] {
				continue
			}
			seen[m] = true
			all = append(all, m)
		}
	}

	sort.Strings(all)

	// Sorted order puts a directory before its contents.
	var matches []string
	for _, m := range all {
		if !coveredBy(matches, m) {
			matches = append(matches, m)
		}
	}

	return matches, nil
}

func coveredBy(dirs []string, path string) bool {
	for _, dir := range dirs {
		if isWithin(dir, path) {
			return true
		}
	}
	return false
}

// isWithin reports whether path is strictly inside dir.
func isWithin(dir, path string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil || rel == "." {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
