package gcnpatch

import (
	"fmt"

	"github.com/gogpu/gcnpatch/ir"
)

// MalformedCallError reports an image call with too few operands to carry
// its metadata word. It indicates a contract violation by the upstream
// lowering stage: the module is internally inconsistent and cannot be
// compiled.
type MalformedCallError struct {
	Stage    ir.ShaderStage
	Function string
	Callee   string
	Operands int
}

// Error implements the error interface.
func (e MalformedCallError) Error() string {
	return fmt.Sprintf("%s shader, function %q: image call %q has %d operands, want at least 2",
		e.Stage, e.Function, e.Callee, e.Operands)
}

// NonConstantMetadataError reports an image call whose final operand is not
// a literal integer. Same contract-violation class as MalformedCallError.
type NonConstantMetadataError struct {
	Stage    ir.ShaderStage
	Function string
	Callee   string
}

// Error implements the error interface.
func (e NonConstantMetadataError) Error() string {
	return fmt.Sprintf("%s shader, function %q: image call %q has a non-constant metadata operand",
		e.Stage, e.Function, e.Callee)
}
