// SPDX-License-Identifier: MIT

// Command chemgraph builds molecules from the command line.
package main

import (
	"os"

	"github.com/katalvlaran/chemgraph/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
