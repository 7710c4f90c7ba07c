// Package main generates the markdown CLI reference for the sale-prospector
// server and the spx client.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	server "github.com/donaldgifford/sale-prospector/cmd/sale-prospector/cmd"
	client "github.com/donaldgifford/sale-prospector/cmd/spx/cmd"
)

func main() {
	output := flag.String("output", "docs/cli", "output directory for generated markdown")
	flag.Parse()

	if err := run(*output, server.Root(), client.Root()); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("CLI docs generated in %s/\n", *output)
}

// run writes one directory per binary under out plus a README index of
// their top-level commands.
func run(out string, roots ...*cobra.Command) error {
	var index strings.Builder
	index.WriteString("# CLI reference\n")

	for _, root := range roots {
		dir := filepath.Join(out, root.Name())
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}

		root.DisableAutoGenTag = true
		if err := doc.GenMarkdownTree(root, dir); err != nil {
			return fmt.Errorf("generating %s docs: %w", root.Name(), err)
		}

		fmt.Fprintf(&index, "\n## [%s](%s/%s.md)\n\n%s\n\n", root.Name(), root.Name(), root.Name(), root.Short)
		for _, c := range root.Commands() {
			if !c.IsAvailableCommand() || c.IsAdditionalHelpTopicCommand() {
				continue
			}
			name := root.Name() + "_" + c.Name()
			fmt.Fprintf(&index, "- [`%s %s`](%s/%s.md): %s\n", root.Name(), c.Name(), root.Name(), name, c.Short)
		}
	}

	path := filepath.Join(out, "README.md")
	if err := os.WriteFile(path, []byte(index.String()), 0o600); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
