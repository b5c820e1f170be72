// Swatchbook - A library of named colours
//
// Swatchbook stores named colours together with the recipe that produced
// them and exchanges them as JSON documents that preserve that recipe.
package main

import (
	"github.com/jmylchreest/swatchbook/internal/cli"
)

func main() {
	cli.Execute()
}
