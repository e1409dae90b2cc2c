package discovery

const (
	// ScopeSystem is a machine-wide rc file.
	ScopeSystem Scope = iota
	// ScopeUser is the home-directory rc file or the override file.
	ScopeUser
	// ScopeProject is the rc file nearest to the working directory.
	ScopeProject
	// ScopeExplicit is a file requested by the caller.
	ScopeExplicit
)

type (
	// Scope is the discovery tier a file was found in.
	Scope int

	// FileRef is one rc file candidate, in precedence order.
	FileRef struct {
		// Path to the rc file.
		Path string `json:"path" yaml:"path"`
		// Scope the file was found in.
		Scope Scope `json:"scope" yaml:"scope"`
		// Project is set for the entry found by walking up from the working directory.
		Project bool `json:"project" yaml:"project"`
	}
)

// String returns a human-readable scope name
func (s Scope) String() string {
	switch s {
	case ScopeSystem:
		return "system"
	case ScopeUser:
		return "user"
	case ScopeProject:
		return "project"
	case ScopeExplicit:
		return "explicit"
	default:
		return "unknown"
	}
}

// MarshalText encodes the scope by name.
func (s Scope) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
