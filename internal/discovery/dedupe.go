package discovery

import "github.com/varalys/ackrc/internal/platform"

// Dedupe removes references to a physical file already seen earlier in refs.
// Identity comes from p.IdentityKey; a ref whose key cannot be computed (the
// file vanished) is dropped. Survivors keep their relative order.
func Dedupe(p platform.Platform, refs []FileRef) []FileRef {
	seen := make(map[platform.Key]bool, len(refs))
	out := make([]FileRef, 0, len(refs))
	for _, ref := range refs {
		key, err := p.IdentityKey(ref.Path)
		if err != nil {
			continue
		}
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, ref)
	}
	return out
}
