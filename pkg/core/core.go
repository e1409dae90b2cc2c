package core

import (
	"iter"

	"github.com/varalys/ackrc/internal/discovery"
	"github.com/varalys/ackrc/internal/rcfile"
)

// Re-export selected internal types as a stable public API surface.
type (
	Options       = discovery.Options
	FileRef       = discovery.FileRef
	Scope         = discovery.Scope
	ConflictError = discovery.ConflictError
	ReadError     = rcfile.ReadError
)

const (
	ScopeSystem   = discovery.ScopeSystem
	ScopeUser     = discovery.ScopeUser
	ScopeProject  = discovery.ScopeProject
	ScopeExplicit = discovery.ScopeExplicit
)

// Source is one rc file with its option lines.
type Source struct {
	FileRef
	Lines []string
}

// Discover returns the deduplicated rc files in precedence order.
func Discover(opts Options) ([]FileRef, error) {
	return discovery.Discover(opts)
}

// Lines returns the option lines of a single rc file.
func Lines(path string) iter.Seq2[string, error] {
	return rcfile.Lines(path)
}

// Load discovers the rc files and reads each one in order. The first
// conflict or read failure aborts the load.
func Load(opts Options) ([]Source, error) {
	refs, err := Discover(opts)
	if err != nil {
		return nil, err
	}
	out := make([]Source, 0, len(refs))
	for _, ref := range refs {
		lines, err := rcfile.ReadAll(ref.Path)
		if err != nil {
			return nil, err
		}
		out = append(out, Source{FileRef: ref, Lines: lines})
	}
	return out, nil
}

// Args flattens sources into one argument list, lowest precedence first.
func Args(sources []Source) []string {
	var args []string
	for _, s := range sources {
		args = append(args, s.Lines...)
	}
	return args
}
