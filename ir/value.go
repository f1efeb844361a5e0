package ir

// Value is one node in a function's value arena. A removed value has a nil
// Kind; handles are stable for the lifetime of the function, so arena slots
// are cleared rather than compacted.
type Value struct {
	Kind ValueKind
	Type Type
}

// ValueKind represents the different kinds of values.
type ValueKind interface {
	valueKind()
}

// Literal is a compile-time constant.
type Literal struct {
	Value LiteralValue
}

func (Literal) valueKind() {}

// LiteralValue represents the value of a literal.
type LiteralValue interface {
	literalValue()
}

// LiteralU32 represents a 32-bit unsigned integer literal.
type LiteralU32 uint32

func (LiteralU32) literalValue() {}

// LiteralI32 represents a 32-bit signed integer literal.
type LiteralI32 int32

func (LiteralI32) literalValue() {}

// LiteralU64 represents a 64-bit unsigned integer literal.
type LiteralU64 uint64

func (LiteralU64) literalValue() {}

// LiteralI64 represents a 64-bit signed integer literal.
type LiteralI64 int64

func (LiteralI64) literalValue() {}

// Argument references a function parameter by its index.
type Argument struct {
	Index uint32
}

func (Argument) valueKind() {}

// Call invokes a named operation with an ordered operand list. The callee
// may be another function in the module, or a declared operation resolved by
// a later stage (image operations, hardware intrinsics).
type Call struct {
	Callee   string
	Operands []ValueHandle
}

func (Call) valueKind() {}

// Bitcast reinterprets its operand's bits as the value's type.
type Bitcast struct {
	Operand ValueHandle
}

func (Bitcast) valueKind() {}

// ExtractElement extracts a vector lane with a compile-time constant index.
type ExtractElement struct {
	Vector ValueHandle
	Index  uint32
}

func (ExtractElement) valueKind() {}

// Binary applies a binary operator to two values.
type Binary struct {
	Op    BinaryOperator
	Left  ValueHandle
	Right ValueHandle
}

func (Binary) valueKind() {}

// BinaryOperator represents binary operations.
type BinaryOperator uint8

const (
	BinaryAdd BinaryOperator = iota // Addition
	BinarySub                       // Subtraction

	BinaryAnd // Bitwise AND
	BinaryOr  // Bitwise OR
	BinaryXor // Bitwise XOR

	BinaryShiftLeft  // Left shift (<<)
	BinaryShiftRight // Logical right shift (>>)
)

// valueOperands returns the handles a value reads. The slice aliases the
// value's own operand storage for calls.
func valueOperands(k ValueKind) []ValueHandle {
	switch k := k.(type) {
	case Call:
		return k.Operands
	case Bitcast:
		return []ValueHandle{k.Operand}
	case ExtractElement:
		return []ValueHandle{k.Vector}
	case Binary:
		return []ValueHandle{k.Left, k.Right}
	default:
		// Literals and arguments read nothing; removed slots are nil.
		return nil
	}
}
