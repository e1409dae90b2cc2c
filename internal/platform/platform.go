package platform

import (
	"path/filepath"
	"runtime"
)

// DefaultName is the rc base name used when none is configured.
const DefaultName = "ackrc"

// LookupFunc resolves an environment variable, reporting whether it is set.
// os.LookupEnv satisfies it.
type LookupFunc func(key string) (string, bool)

// Key identifies a physical file. Inode platforms fill Dev and Ino; path
// platforms fill Path. Keys are comparable and used as map keys.
type Key struct {
	Dev  uint64
	Ino  uint64
	Path string
}

// Platform is the set of host-specific behaviours needed by discovery.
type Platform interface {
	// Name is a short label for logs and listings.
	Name() string
	// SystemConfigPaths returns system-wide rc file candidates in precedence order.
	SystemConfigPaths() []string
	// IdentityKey returns the key used to detect duplicate references.
	// An error means the file can no longer be identified.
	IdentityKey(path string) (Key, error)
	// HomeDir returns the user's home directory, or "" when it is not defined.
	HomeDir(lookup LookupFunc) string
}

// Detect returns the Platform for the running host.
func Detect(name string) Platform {
	if name == "" {
		name = DefaultName
	}
	if runtime.GOOS == "windows" {
		return Windows(KnownFolders(), name)
	}
	return Unix(filepath.Join("/etc", name))
}
