//go:build ignore
// +build ignore

package main

import (
	"log"

	gemchat "github.com/mithrel/gemchat/internal/cli"
	"github.com/spf13/cobra/doc"
)

func main() {
	root := gemchat.NewRootCmd()

	if err := doc.GenMarkdownTree(root, "./docs/markdown"); err != nil {
		log.Fatal(err)
	}

	header := &doc.GenManHeader{
		Title:   "GEMCHAT",
		Section: "1",
	}
	if err := doc.GenManTree(root, header, "./docs/man"); err != nil {
		log.Fatal(err)
	}
}
