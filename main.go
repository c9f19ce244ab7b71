// main package for gpifab command-line tool
// Package main is the entry point for the gpifab CLI.
package main

import "gpifab.dev/pkg/gpifab/cmd"

func main() {
	cmd.Execute()
}
