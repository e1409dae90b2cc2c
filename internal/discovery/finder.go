package discovery

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/varalys/ackrc/internal/logging"
	"github.com/varalys/ackrc/internal/platform"
)

// DefaultEnvVar names the environment variable that overrides the home rc file.
const DefaultEnvVar = "ACKRC"

// Options controls discovery. Zero values select host defaults.
type Options struct {
	// Platform supplies system paths, identity keys and the home directory.
	// Defaults to platform.Detect(Name).
	Platform platform.Platform
	// Name is the rc base name (default "ackrc").
	Name string
	// EnvVar is the override variable (default "ACKRC").
	EnvVar string
	// Cwd is where the project search starts (default os.Getwd).
	Cwd string
	// LookupEnv reads the environment (default os.LookupEnv).
	LookupEnv platform.LookupFunc
	// NoEnv skips the system, user and project scopes.
	NoEnv bool
	// Explicit files are appended last, in order. Each must exist.
	Explicit []string
	// Logger receives debug output about probe decisions.
	Logger *slog.Logger
}

// Finder walks the discovery scopes for one set of Options.
type Finder struct {
	platform platform.Platform
	names    [2]string
	envVar   string
	cwd      string
	lookup   platform.LookupFunc
	noEnv    bool
	explicit []string
	log      *slog.Logger
}

// New creates a Finder, filling unset Options with host defaults.
func New(opts Options) *Finder {
	name := opts.Name
	if name == "" {
		name = platform.DefaultName
	}
	f := &Finder{
		platform: opts.Platform,
		names:    AltNames(name),
		envVar:   opts.EnvVar,
		cwd:      opts.Cwd,
		lookup:   opts.LookupEnv,
		noEnv:    opts.NoEnv,
		explicit: opts.Explicit,
		log:      opts.Logger,
	}
	if f.platform == nil {
		f.platform = platform.Detect(name)
	}
	if f.envVar == "" {
		f.envVar = DefaultEnvVar
	}
	if f.lookup == nil {
		f.lookup = os.LookupEnv
	}
	if f.log == nil {
		f.log = logging.Discard()
	}
	if f.cwd == "" {
		if wd, err := os.Getwd(); err == nil {
			f.cwd = wd
		} else {
			f.log.Warn("failed to determine working directory; skipping project rc search", "error", err)
		}
	}
	if f.cwd != "" {
		if abs, err := filepath.Abs(f.cwd); err == nil {
			f.cwd = abs
		}
	}
	return f
}

// Platform returns the platform the Finder was built with.
func (f *Finder) Platform() platform.Platform { return f.platform }

// Find returns all rc file candidates in precedence order: system, user,
// project, explicit. Duplicates are kept; see Dedupe. A ConflictError or
// MissingExplicitError aborts the search and no list is returned.
func (f *Finder) Find() ([]FileRef, error) {
	var refs []FileRef
	if f.noEnv {
		f.log.Debug("rc discovery disabled; only explicit files are used")
	} else {
		refs = f.appendSystem(refs)
		var err error
		if refs, err = f.appendUser(refs); err != nil {
			return nil, err
		}
		if refs, err = f.appendProject(refs); err != nil {
			return nil, err
		}
	}
	return f.appendExplicit(refs)
}

// Discover runs Find followed by Dedupe.
func (f *Finder) Discover() ([]FileRef, error) {
	refs, err := f.Find()
	if err != nil {
		return nil, err
	}
	out := Dedupe(f.platform, refs)
	if dropped := len(refs) - len(out); dropped > 0 {
		f.log.Debug("dropped duplicate or vanished rc files", "count", dropped)
	}
	return out, nil
}

func (f *Finder) appendSystem(refs []FileRef) []FileRef {
	for _, p := range f.platform.SystemConfigPaths() {
		if !isFile(p) {
			f.log.Debug("no system rc file", "path", p)
			continue
		}
		f.log.Debug("found system rc file", "path", p)
		refs = append(refs, FileRef{Path: p, Scope: ScopeSystem})
	}
	return refs
}

func (f *Finder) appendUser(refs []FileRef) ([]FileRef, error) {
	if p, ok := f.lookup(f.envVar); ok && p != "" {
		if isFile(p) {
			f.log.Debug("using rc file from environment", "var", f.envVar, "path", p)
			return append(refs, FileRef{Path: p, Scope: ScopeUser}), nil
		}
		f.log.Debug("override rc file does not exist", "var", f.envVar, "path", p)
	}

	home := f.platform.HomeDir(f.lookup)
	if home == "" {
		f.log.Debug("home directory not set; skipping user rc file")
		return refs, nil
	}
	p, err := Probe(home, f.names)
	if err != nil {
		return nil, err
	}
	if p != "" {
		f.log.Debug("found user rc file", "path", p)
		refs = append(refs, FileRef{Path: p, Scope: ScopeUser})
	}
	return refs, nil
}

// appendProject ascends from the working directory and stops at the first
// directory holding an rc file.
func (f *Finder) appendProject(refs []FileRef) ([]FileRef, error) {
	if f.cwd == "" {
		return refs, nil
	}
	dir := filepath.Clean(f.cwd)
	for {
		p, err := Probe(dir, f.names)
		if err != nil {
			return nil, err
		}
		if p != "" {
			f.log.Debug("found project rc file", "path", p)
			return append(refs, FileRef{Path: p, Scope: ScopeProject, Project: true}), nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return refs, nil
		}
		dir = parent
	}
}

func (f *Finder) appendExplicit(refs []FileRef) ([]FileRef, error) {
	for _, p := range f.explicit {
		info, err := os.Stat(p)
		if err != nil {
			return nil, &MissingExplicitError{Path: p, Err: err}
		}
		if info.IsDir() {
			return nil, &MissingExplicitError{Path: p, Err: errIsDir}
		}
		refs = append(refs, FileRef{Path: p, Scope: ScopeExplicit})
	}
	return refs, nil
}

// Discover is shorthand for New(opts).Discover().
func Discover(opts Options) ([]FileRef, error) {
	return New(opts).Discover()
}
