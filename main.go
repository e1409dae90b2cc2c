package main

import "github.com/varalys/ackrc/cmd/ackrc"

func main() { ackrc.Execute() }
