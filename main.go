// Package main is the entry point for the assert-outdated CLI application.
//
// assert-outdated runs "npm outdated" in the current directory and exits
// non-zero when more dependencies are outdated than allowed, so CI can gate
// on dependency freshness.
package main

import "github.com/ajxudir/assert-outdated/cmd"

// main delegates all argument parsing and execution to the cmd package.
func main() {
	cmd.Execute()
}
