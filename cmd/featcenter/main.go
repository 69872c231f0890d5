// Command featcenter inspects grids and demonstrates feature-centering of
// lat/lon fields.
//
// Usage:
//
//	featcenter grid --type gaussian --nlat 64 --nlon 128
//	featcenter demo --lat 30 --lon 200 --twist 45
//	featcenter demo --log-level debug --log-format json
package main

import (
	"os"

	"github.com/cwbudde/algo-sphere/cmd/featcenter/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
