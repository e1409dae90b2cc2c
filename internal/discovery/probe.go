package discovery

import (
	"os"
	"path/filepath"
)

// AltNames returns the dot and underscore spellings of an rc base name,
// e.g. ".ackrc" and "_ackrc".
func AltNames(name string) [2]string {
	return [2]string{"." + name, "_" + name}
}

// Probe looks for exactly one of names inside dir and returns its path.
// An empty dir, or a dir holding neither file, yields "". Both files present
// is a *ConflictError.
func Probe(dir string, names [2]string) (string, error) {
	if dir == "" {
		return "", nil
	}
	var found []string
	for _, n := range names {
		p := filepath.Join(dir, n)
		if isFile(p) {
			found = append(found, p)
		}
	}
	switch len(found) {
	case 0:
		return "", nil
	case 1:
		return found[0], nil
	default:
		return "", &ConflictError{Dir: dir, Names: names}
	}
}

// isFile reports whether path names an existing regular file (following symlinks).
func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
