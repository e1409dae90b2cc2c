//go:build windows

package platform

import "golang.org/x/sys/windows"

type knownFolders struct{}

// KnownFolders returns the host folder resolver backed by SHGetKnownFolderPath.
func KnownFolders() Folders { return knownFolders{} }

func (knownFolders) CommonAppData() (string, error) {
	return windows.KnownFolderPath(windows.FOLDERID_ProgramData, windows.KF_FLAG_DEFAULT)
}

func (knownFolders) AppData() (string, error) {
	return windows.KnownFolderPath(windows.FOLDERID_RoamingAppData, windows.KF_FLAG_DEFAULT)
}
