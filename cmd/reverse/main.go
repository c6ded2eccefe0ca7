// Command reverse writes the byte-reversed contents of one file to another.
//
// Usage:
//
//	reverse [-fvh] <input-file> <output-file>
package main

import (
	"context"
	"os"

	"github.com/simonhull/bytereverse/internal/cli"
)

func main() {
	os.Exit(cli.Run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}
