package ir

import (
	"io"

	"github.com/davecgh/go-spew/spew"
)

// dumpConfig keeps dumps deterministic across runs.
var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// Fdump writes a structural debug dump of the module to w.
func Fdump(w io.Writer, m *Module) {
	dumpConfig.Fdump(w, m)
}

// Sdump returns a structural debug dump of a single function.
func Sdump(f *Function) string {
	return dumpConfig.Sdump(f)
}
