package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	server "github.com/donaldgifford/sale-prospector/cmd/sale-prospector/cmd"
	client "github.com/donaldgifford/sale-prospector/cmd/spx/cmd"
)

func testTree(name string, subs ...string) *cobra.Command {
	root := &cobra.Command{Use: name, Short: name + " root"}
	for _, s := range subs {
		root.AddCommand(&cobra.Command{Use: s, Short: s + " things", Run: func(*cobra.Command, []string) {}})
	}
	root.AddCommand(&cobra.Command{Use: "hidden", Hidden: true, Run: func(*cobra.Command, []string) {}})
	return root
}

func TestRun_WritesTreePerBinaryAndIndex(t *testing.T) {
	t.Parallel()

	out := t.TempDir()
	err := run(out,
		testTree("sale-prospector", "serve", "geocode"),
		testTree("spx", "sales", "favorites"),
	)
	require.NoError(t, err)

	for _, f := range []string{
		"sale-prospector/sale-prospector.md",
		"sale-prospector/sale-prospector_serve.md",
		"sale-prospector/sale-prospector_geocode.md",
		"spx/spx.md",
		"spx/spx_sales.md",
		"spx/spx_favorites.md",
	} {
		assert.FileExists(t, filepath.Join(out, f))
	}

	index, err := os.ReadFile(filepath.Join(out, "README.md"))
	require.NoError(t, err)
	assert.Contains(t, string(index), "## [spx](spx/spx.md)")
	assert.Contains(t, string(index), "- [`spx sales`](spx/spx_sales.md): sales things")
	assert.Contains(t, string(index), "- [`sale-prospector serve`](sale-prospector/sale-prospector_serve.md)")
	assert.NotContains(t, string(index), "hidden")
}

func TestRun_RealCommandTrees(t *testing.T) {
	t.Parallel()

	out := t.TempDir()
	require.NoError(t, run(out, server.Root(), client.Root()))
	assert.FileExists(t, filepath.Join(out, "spx", "spx_sales.md"))
	assert.FileExists(t, filepath.Join(out, "sale-prospector", "sale-prospector_migrate.md"))
}
