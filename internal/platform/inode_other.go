//go:build !unix

package platform

import "os"

// inodeKey falls back to the path on hosts without device/inode numbers.
// The stat still runs so vanished files are reported.
func inodeKey(path string) (Key, error) {
	if _, err := os.Stat(path); err != nil {
		return Key{}, err
	}
	return Key{Path: path}, nil
}
