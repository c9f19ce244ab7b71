// Package model defines the data structures shared by the GPIF descriptor editor.
package model

// Path represents a file system path.
type Path string

// File represents a GPIF configuration file read from disk.
type File struct {
	Path    Path
	Hash    string
	Content []byte
}

// ApplySummary describes the outcome of an apply run.
type ApplySummary struct {
	Source Path
	Output Path
	// Changed counts the descriptor registers whose value changed.
	Changed int
	// Hash is the SHA-256 of the written file; empty on a dry run.
	Hash   string
	DryRun bool
}
