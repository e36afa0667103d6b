// Command cardshow validates, inspects and renders galleries of expandable
// cards without a device.
package main

import (
	"os"

	"github.com/tomortec/drift-expandable/cmd/cardshow/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
