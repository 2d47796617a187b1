// The jsontransform command applies transformation documents, shape-mirroring
// JSON edit descriptions, to JSON and YAML documents. It can also express a
// transformation as an RFC 6902 patch and apply such patches directly.
package main

import (
	"os"

	"github.com/fatih/color"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		red := color.New(color.FgRed)
		_, _ = red.Fprintf(color.Error, "error: %v\n", err)
		os.Exit(1)
	}
}
