// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Document is the predicate function for document builders.
type Document func(*sql.Selector)

// ExtractionField is the predicate function for extractionfield builders.
type ExtractionField func(*sql.Selector)

// ExtractionRecord is the predicate function for extractionrecord builders.
type ExtractionRecord func(*sql.Selector)

// Project is the predicate function for project builders.
type Project func(*sql.Selector)

// ReviewEvent is the predicate function for reviewevent builders.
type ReviewEvent func(*sql.Selector)

// Run is the predicate function for run builders.
type Run func(*sql.Selector)

// RunStep is the predicate function for runstep builders.
type RunStep func(*sql.Selector)

// Template is the predicate function for template builders.
type Template func(*sql.Selector)

// Workspace is the predicate function for workspace builders.
type Workspace func(*sql.Selector)
