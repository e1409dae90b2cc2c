//go:build !windows

package platform

import "os"

// KnownFolders returns the host folder resolver. Outside Windows the folders
// only exist if the environment names them.
func KnownFolders() Folders { return EnvFolders(os.LookupEnv) }
