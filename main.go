// Package main is the entry point for the creatordash CLI application.
//
// It delegates to the cmd package, which handles the list, metrics,
// dashboard and config subcommands.
package main

import "github.com/ajxudir/creatordash/cmd"

func main() {
	cmd.Execute()
}
