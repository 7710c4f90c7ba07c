// Package main is the entry point for the sale-prospector server.
package main

import (
	"os"

	"github.com/donaldgifford/sale-prospector/cmd/sale-prospector/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
