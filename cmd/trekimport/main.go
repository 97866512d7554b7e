// Command trekimport normalizes, validates, and summarizes trek catalog
// exports from the command line.
package main

import (
	"os"

	"github.com/udayashankhii/trekadmin-sub001/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
