package platform

import "path/filepath"

type windowsPlatform struct {
	folders Folders
	name    string
}

// Windows returns a Platform that looks for the rc file in the common and
// per-user application data folders and compares files by path.
func Windows(folders Folders, name string) Platform {
	if name == "" {
		name = DefaultName
	}
	return windowsPlatform{folders: folders, name: name}
}

func (windowsPlatform) Name() string { return "windows" }

// SystemConfigPaths lists the common folder first, then the per-user one.
// Folders that cannot be resolved are skipped.
func (p windowsPlatform) SystemConfigPaths() []string {
	if p.folders == nil {
		return nil
	}
	var paths []string
	for _, resolve := range []func() (string, error){p.folders.CommonAppData, p.folders.AppData} {
		dir, err := resolve()
		if err != nil || dir == "" {
			continue
		}
		paths = append(paths, filepath.Join(dir, p.name))
	}
	return paths
}

func (windowsPlatform) IdentityKey(path string) (Key, error) {
	return Key{Path: path}, nil
}

func (windowsPlatform) HomeDir(lookup LookupFunc) string {
	if home, ok := lookup("HOME"); ok && home != "" {
		return home
	}
	home, _ := lookup("USERPROFILE")
	return home
}
