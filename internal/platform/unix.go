package platform

type unixPlatform struct {
	systemPath string
}

// Unix returns a Platform with a single fixed system rc path and
// device/inode identity keys.
func Unix(systemPath string) Platform {
	return unixPlatform{systemPath: systemPath}
}

func (unixPlatform) Name() string { return "unix" }

func (p unixPlatform) SystemConfigPaths() []string {
	if p.systemPath == "" {
		return nil
	}
	return []string{p.systemPath}
}

func (unixPlatform) IdentityKey(path string) (Key, error) {
	return inodeKey(path)
}

func (unixPlatform) HomeDir(lookup LookupFunc) string {
	home, _ := lookup("HOME")
	return home
}
