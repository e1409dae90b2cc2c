//go:build unix

package platform

import (
	"io/fs"

	"golang.org/x/sys/unix"
)

func inodeKey(path string) (Key, error) {
	var st unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		return Key{}, &fs.PathError{Op: "stat", Path: path, Err: err}
	}
	return Key{Dev: uint64(st.Dev), Ino: uint64(st.Ino)}, nil
}
