// Package main generates CLI reference documentation from the shopstore
// command tree.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/donaldgifford/shopstore/cmd/shopstore/cmd"
)

var errUnknownFormat = errors.New("unknown format")

func main() {
	output := flag.String("output", "docs/cli", "output directory for generated docs")
	format := flag.String("format", "markdown", "output format: markdown or man")
	flag.Parse()

	if err := generate(*output, *format); err != nil {
		log.Fatalf("generating docs: %v", err)
	}

	fmt.Printf("CLI docs (%s) generated in %s/\n", *format, *output)
}

// generate writes one file per command of the shopstore CLI into dir.
func generate(dir, format string) error {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	root := cmd.Root()
	root.DisableAutoGenTag = true

	switch format {
	case "markdown", "md":
		return doc.GenMarkdownTree(root, dir)
	case "man":
		return doc.GenManTree(root, &doc.GenManHeader{
			Title:   "SHOPSTORE",
			Section: "1",
			Source:  "shopstore " + cmd.Version,
		}, dir)
	default:
		return fmt.Errorf("%w: %q", errUnknownFormat, format)
	}
}
