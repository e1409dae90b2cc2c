// Package discovery locates ack-style rc files and orders them by precedence.
//
// Discovery runs in a fixed sequence:
//   - system scope: the platform's system-wide rc file(s)
//   - user scope: the file named by the override variable (ACKRC), or else
//     .ackrc/_ackrc in the home directory
//   - project scope: the nearest .ackrc/_ackrc walking up from the working
//     directory
//   - explicit files requested by the caller
//
// Find returns every candidate in that order without reading any file.
// Dedupe then drops later references to a file already listed. A directory
// that holds both .ackrc and _ackrc is a ConflictError and aborts discovery.
package discovery
