// Package loader reads documents from disk and parses them into document
// trees, either one at a time or concurrently across a set of paths.
package loader

// Options controls how documents are discovered and parsed.
type Options struct {
	// Paths are the files or directories to load. If empty, defaults to the
	// working directory.
	Paths []string

	// WorkingDir is the base directory used to resolve relative Paths.
	// If empty, the current process working directory is used.
	WorkingDir string

	// Extensions is the set of file extensions (lowercase, with leading dot)
	// considered documents. Defaults to DefaultExtensions().
	Extensions []string

	// ExcludeGlobs are glob patterns used to skip files or directories.
	ExcludeGlobs []string

	// FollowSymlinks controls whether directory symlinks are traversed.
	FollowSymlinks bool

	// Jobs controls the maximum number of concurrent parses.
	// 0 or negative means runtime.NumCPU().
	Jobs int

	// Flavor is the Markdown flavor passed to the goldmark parser.
	Flavor string

	// RedLinks marks relative Markdown links to missing files as red links.
	RedLinks bool
}

// DefaultExtensions returns the extensions of every supported format.
func DefaultExtensions() []string {
	return []string{".md", ".markdown", ".html", ".htm"}
}

func (o Options) effectiveExtensions() []string {
	if len(o.Extensions) == 0 {
		return DefaultExtensions()
	}
	return o.Extensions
}

func (o Options) effectivePaths() []string {
	if len(o.Paths) == 0 {
		return []string{"."}
	}
	return o.Paths
}
