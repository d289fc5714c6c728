// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError  = "error"
	FieldPath   = "path"
	FieldBytes  = "bytes"
	FieldLines  = "lines"
	FieldFormat = "format"

	// Cursor and decoration fields.
	FieldCursor      = "cursor"
	FieldSelections  = "selections"
	FieldDecorations = "decorations"
	FieldNodes       = "nodes"
	FieldWidth       = "width"

	// Configuration fields.
	FieldConfig = "config"
	FieldColor  = "color"
	FieldTheme  = "theme"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
