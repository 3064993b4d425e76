// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldPaths      = "paths"
	FieldInput      = "input"
	FieldOutput     = "output"
	FieldWorkingDir = "working_dir"

	// Configuration fields.
	FieldFlavor = "flavor"
	FieldTheme  = "theme"
	FieldMode   = "mode"
	FieldFormat = "format"

	// Layout and navigation fields.
	FieldWidth     = "width"
	FieldHeight    = "height"
	FieldLines     = "lines"
	FieldLinks     = "links"
	FieldNode      = "node"
	FieldLine      = "line"
	FieldOffset    = "offset"
	FieldAnchor    = "anchor"
	FieldSelection = "selection"
	FieldTarget    = "target"
	FieldNodes     = "nodes"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"

	// Event fields.
	FieldName  = "name"
	FieldEvent = "event"
)
