// Package ackrc provides the command-line interface for the ackrc tool.
// It wires flags and settings into rc discovery and prints the discovered
// files (files), their option lines (dump, lines) or starter files (config).
//
// Typical usage from a main package:
//
//	package main
//	import "github.com/varalys/ackrc/cmd/ackrc"
//	func main() { ackrc.Execute() }
package ackrc
