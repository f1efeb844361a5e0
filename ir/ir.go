package ir

import "fmt"

// Module represents one compilation unit of lowered shader code.
type Module struct {
	// Functions holds all function definitions
	Functions []Function

	// EntryPoints holds shader entry points
	EntryPoints []EntryPoint
}

// EntryPoint represents a shader entry point.
type EntryPoint struct {
	Name     string
	Stage    ShaderStage
	Function FunctionHandle
}

// ShaderStage represents a shader stage.
type ShaderStage uint8

const (
	StageVertex ShaderStage = iota
	StageFragment
	StageCompute

	// StageCount bounds stage iteration.
	StageCount
)

// String returns the stage name used in diagnostics.
func (s ShaderStage) String() string {
	switch s {
	case StageVertex:
		return "vertex"
	case StageFragment:
		return "fragment"
	case StageCompute:
		return "compute"
	default:
		return fmt.Sprintf("stage(%d)", uint8(s))
	}
}

// Handle types for referencing IR objects
type (
	FunctionHandle uint32
	ValueHandle    uint32
)

// EntryPointFor returns the function implementing the given stage's entry
// point. The second result is false when the stage is unused in this module.
func (m *Module) EntryPointFor(stage ShaderStage) (FunctionHandle, bool) {
	for _, ep := range m.EntryPoints {
		if ep.Stage == stage {
			return ep.Function, true
		}
	}
	return 0, false
}

// FunctionByName resolves a callee name to a function defined in this
// module. Names not defined here (intrinsics, image operations) resolve to
// false.
func (m *Module) FunctionByName(name string) (FunctionHandle, bool) {
	for i := range m.Functions {
		if m.Functions[i].Name == name {
			return FunctionHandle(i), true
		}
	}
	return 0, false
}

// Function represents a function definition. Values is the value arena;
// Body lists instruction handles in execution order. Literals and argument
// references live only in the arena and are never scheduled in the body.
type Function struct {
	Name   string
	Result Type
	Values []Value
	Body   []ValueHandle
}

// Type represents a value type in the lowered IR. Types are carried inline:
// the lowered form only ever sees a handful of scalar and vector shapes, so
// there is no type arena to deduplicate into.
type Type interface {
	irType()
}

// ScalarType represents scalar types.
type ScalarType struct {
	Kind  ScalarKind
	Width uint8 // in bytes
}

func (ScalarType) irType() {}

// ScalarKind represents scalar type kinds.
type ScalarKind uint8

const (
	ScalarSint  ScalarKind = iota // Signed integer
	ScalarUint                    // Unsigned integer
	ScalarFloat                   // Floating point
)

// VectorType represents vector types.
type VectorType struct {
	Size   uint8
	Scalar ScalarType
}

func (VectorType) irType() {}

// VoidType is the result type of calls that produce no value.
type VoidType struct{}

func (VoidType) irType() {}

// Common types used by the patching pass.
var (
	TypeU32   = ScalarType{Kind: ScalarUint, Width: 4}
	TypeU64   = ScalarType{Kind: ScalarUint, Width: 8}
	TypeU32x2 = VectorType{Size: 2, Scalar: ScalarType{Kind: ScalarUint, Width: 4}}
	TypeVoid  = VoidType{}
)
