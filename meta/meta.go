// Package meta encodes and decodes the packed metadata word carried by
// lowered image-operation calls.
//
// The front end attaches one metadata word to every image call as its final
// operand, a compile-time-constant integer. The word describes the semantic
// shape of the operation (kind, resource dimensionality, sampling
// modifiers); the gcnpatch pass decodes it to decide which hardware-specific
// rewrites apply.
package meta

import "strconv"

// Word is the packed 32-bit metadata value.
type Word uint32

// Field layout, low to high. Bits above writeOnlyBit are reserved and
// ignored by the pass.
//
//	bits  0-4   OpKind
//	bits  5-7   Dim
//	bit   8     arrayed resource
//	bit   9     multisampled resource
//	bit   10    non-uniform sampler
//	bit   11    non-uniform resource
//	bit   12    write-only access
const (
	opKindShift = 0
	opKindBits  = 5

	dimShift = 5
	dimBits  = 3

	arrayedBit            = 8
	multisampledBit       = 9
	nonUniformSamplerBit  = 10
	nonUniformResourceBit = 11
	writeOnlyBit          = 12
)

// OpKind is the operation category of an image call.
type OpKind uint8

const (
	OpSample OpKind = iota
	OpFetch
	OpGather
	OpQueryNonLod
	OpQueryLod
	OpRead
	OpWrite
	OpAtomicExchange
	OpAtomicCompareExchange
	OpAtomicIncrement
	OpAtomicDecrement
	OpAtomicAdd
	OpAtomicSub
	OpAtomicSMin
	OpAtomicUMin
	OpAtomicSMax
	OpAtomicUMax
	OpAtomicAnd
	OpAtomicOr
	OpAtomicXor
)

var opKindNames = [...]string{
	OpSample:                "sample",
	OpFetch:                 "fetch",
	OpGather:                "gather",
	OpQueryNonLod:           "querynonlod",
	OpQueryLod:              "querylod",
	OpRead:                  "read",
	OpWrite:                 "write",
	OpAtomicExchange:        "atomicexchange",
	OpAtomicCompareExchange: "atomiccompexchange",
	OpAtomicIncrement:       "atomicincrement",
	OpAtomicDecrement:       "atomicdecrement",
	OpAtomicAdd:             "atomicadd",
	OpAtomicSub:             "atomicsub",
	OpAtomicSMin:            "atomicsmin",
	OpAtomicUMin:            "atomicumin",
	OpAtomicSMax:            "atomicsmax",
	OpAtomicUMax:            "atomicumax",
	OpAtomicAnd:             "atomicand",
	OpAtomicOr:              "atomicor",
	OpAtomicXor:             "atomicxor",
}

// String returns the lowered-call spelling of the operation.
func (k OpKind) String() string {
	if int(k) < len(opKindNames) {
		return opKindNames[k]
	}
	return "opkind(" + strconv.FormatUint(uint64(k), 10) + ")"
}

// IsAtomic reports whether k is one of the image atomic operations.
func (k OpKind) IsAtomic() bool {
	return k >= OpAtomicExchange && k <= OpAtomicXor
}

// Dim is the resource dimensionality of an image call.
type Dim uint8

const (
	Dim1D Dim = iota
	Dim2D
	Dim3D
	DimCube
	DimRect
	DimBuffer
	DimSubpassData
)

var dimNames = [...]string{
	Dim1D:          "1D",
	Dim2D:          "2D",
	Dim3D:          "3D",
	DimCube:        "cube",
	DimRect:        "rect",
	DimBuffer:      "buffer",
	DimSubpassData: "subpassdata",
}

// String returns a short name for the dimensionality.
func (d Dim) String() string {
	if int(d) < len(dimNames) {
		return dimNames[d]
	}
	return "dim(" + strconv.FormatUint(uint64(d), 10) + ")"
}

// ImageCallMetadata is the decoded form of a metadata word.
type ImageCallMetadata struct {
	OpKind             OpKind
	Dim                Dim
	Arrayed            bool
	Multisampled       bool
	NonUniformSampler  bool
	NonUniformResource bool
	WriteOnly          bool
}

// Decode unpacks a metadata word. It never fails: every bit pattern decodes
// to some field combination, and combinations the pass does not recognize
// simply match no dispatch rule.
func Decode(w Word) ImageCallMetadata {
	return ImageCallMetadata{
		OpKind:             OpKind(w >> opKindShift & (1<<opKindBits - 1)),
		Dim:                Dim(w >> dimShift & (1<<dimBits - 1)),
		Arrayed:            w&(1<<arrayedBit) != 0,
		Multisampled:       w&(1<<multisampledBit) != 0,
		NonUniformSampler:  w&(1<<nonUniformSamplerBit) != 0,
		NonUniformResource: w&(1<<nonUniformResourceBit) != 0,
		WriteOnly:          w&(1<<writeOnlyBit) != 0,
	}
}

// Encode packs the metadata back into a word. Reserved bits come out zero,
// so Encode(Decode(w)) reproduces w in every interpreted field.
func (m ImageCallMetadata) Encode() Word {
	w := Word(m.OpKind) & (1<<opKindBits - 1) << opKindShift
	w |= Word(m.Dim) & (1<<dimBits - 1) << dimShift
	if m.Arrayed {
		w |= 1 << arrayedBit
	}
	if m.Multisampled {
		w |= 1 << multisampledBit
	}
	if m.NonUniformSampler {
		w |= 1 << nonUniformSamplerBit
	}
	if m.NonUniformResource {
		w |= 1 << nonUniformResourceBit
	}
	if m.WriteOnly {
		w |= 1 << writeOnlyBit
	}
	return w
}
