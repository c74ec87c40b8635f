// Command treesearch searches YAML/JSON tree documents breadth-first.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/lvtree/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
