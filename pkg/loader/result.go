package loader

import (
	"errors"
	"fmt"

	"github.com/yaklabco/docnav/pkg/doctree"
)

// Outcome is the result of loading one document.
type Outcome struct {
	// Path is the absolute path of the document.
	Path string

	// Tree is the parsed document, nil when Err is set.
	Tree *doctree.Tree

	// Err is set if the document could not be read or parsed.
	Err error
}

// Stats captures aggregate information about a load.
type Stats struct {
	// Discovered is the number of documents found.
	Discovered int

	// Loaded is the number of documents parsed successfully.
	Loaded int

	// Errored is the number of documents that failed to load.
	Errored int

	// Nodes is the total node count across loaded documents.
	Nodes int

	// Links is the total link count across loaded documents.
	Links int
}

// Result is the overall load result. Docs are ordered by path.
type Result struct {
	Docs  []Outcome
	Stats Stats
}

// Err joins the errors of all failed documents.
func (r *Result) Err() error {
	if r == nil {
		return nil
	}
	var errs []error
	for _, doc := range r.Docs {
		if doc.Err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", doc.Path, doc.Err))
		}
	}
	return errors.Join(errs...)
}

func (r *Result) accumulate(outcome Outcome) {
	if outcome.Err != nil {
		r.Stats.Errored++
		return
	}
	if outcome.Tree == nil {
		return
	}

	r.Stats.Loaded++
	r.Stats.Nodes += outcome.Tree.Len()
	for range outcome.Tree.Links() {
		r.Stats.Links++
	}
}
