// Command palette manages page color palettes.
package main

import (
	"os"

	"github.com/wsuwp/colorpalette/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
