// Package core provides a small, stable facade over ackrc's internal
// discovery and rc reading packages for programs that want the same rc file
// precedence as the ackrc CLI.
//
// Example:
//
//	sources, err := core.Load(core.Options{})
//	if err != nil { /* conflict or unreadable file */ }
//	for _, s := range sources {
//		parser.Apply(s.Lines)
//	}
package core
