// Package platform describes the host capabilities rc discovery depends on:
// where system-wide rc files live, how to tell whether two paths name the same
// physical file, and which environment variable holds the home directory.
//
// A Platform value is chosen once at startup (see Detect) and passed into the
// discovery Finder, so no other package needs to branch on runtime.GOOS.
package platform
