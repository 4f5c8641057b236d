// Package main generates CLI reference documentation for the mws and
// mws-sync command trees.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	synccmd "github.com/donaldgifford/mws-toolkit/cmd/mws-sync/cmd"
	mwscmd "github.com/donaldgifford/mws-toolkit/cmd/mws/cmd"
)

func main() {
	output := flag.String("output", "docs/cli", "output directory for generated markdown")
	flag.Parse()

	trees := map[string]*cobra.Command{
		"mws":      mwscmd.Root(),
		"mws-sync": synccmd.Root(),
	}
	for name, root := range trees {
		dir := filepath.Join(*output, name)
		if err := os.MkdirAll(dir, 0o750); err != nil {
			log.Fatalf("creating output directory: %v", err)
		}

		root.DisableAutoGenTag = true
		if err := doc.GenMarkdownTree(root, dir); err != nil {
			log.Fatalf("generating %s docs: %v", name, err)
		}
	}

	fmt.Printf("CLI docs generated in %s/\n", *output)
}
