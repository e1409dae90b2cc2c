package platform

import "errors"

// ErrFolderUnknown is returned when a known folder cannot be resolved.
var ErrFolderUnknown = errors.New("known folder not available")

// Folders resolves the Windows application data folders.
type Folders interface {
	// CommonAppData is the machine-wide folder (CSIDL_COMMON_APPDATA).
	CommonAppData() (string, error)
	// AppData is the roaming per-user folder (CSIDL_APPDATA).
	AppData() (string, error)
}

type envFolders struct {
	lookup LookupFunc
}

// EnvFolders resolves known folders from the ProgramData and APPDATA
// environment variables.
func EnvFolders(lookup LookupFunc) Folders {
	return envFolders{lookup: lookup}
}

func (f envFolders) CommonAppData() (string, error) {
	return f.first("ProgramData", "ALLUSERSPROFILE")
}

func (f envFolders) AppData() (string, error) {
	return f.first("APPDATA")
}

func (f envFolders) first(keys ...string) (string, error) {
	for _, k := range keys {
		if v, ok := f.lookup(k); ok && v != "" {
			return v, nil
		}
	}
	return "", ErrFolderUnknown
}
