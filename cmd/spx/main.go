// Package main is the entry point for the spx CLI.
package main

import "github.com/donaldgifford/sale-prospector/cmd/spx/cmd"

func main() {
	cmd.Execute()
}
