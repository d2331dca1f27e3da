// Command datacheck validates documents against templates and merges
// word-frequency files.
package main

import (
	"context"
	"os"
)

func main() {
	root, opts := newRootCmd()

	if err := execute(context.Background(), root, opts); err != nil {
		os.Exit(1)
	}
}
