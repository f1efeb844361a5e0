package gcnpatch

import (
	"github.com/gogpu/gcnpatch/ir"
	"github.com/gogpu/gcnpatch/meta"
)

// texelOffsetOperand is the position of the texel offset in the calling
// convention for buffer loads, stores and atomics.
const texelOffsetOperand = 3

// rewrite applies the dispatch rules to one matched call. The rule guards
// are disjoint (size queries never match the buffer-access set), so at most
// one rule fires per call. Unrecognized combinations pass through untouched.
func (p *pass) rewrite(m match) {
	switch {
	case m.meta.OpKind == meta.OpQueryNonLod && m.meta.Dim == meta.DimBuffer && p.target.Major <= 8:
		p.redirectBufferSizeQuery(m)

	case m.meta.Dim == meta.DimBuffer && bufferAccessOp(m.meta.OpKind) && p.target.Major == 9:
		p.forceDynamicTexelOffset(m)
	}
}

// bufferAccessOp reports whether the operation addresses buffer texels
// directly and is therefore exposed to the GFX9 zero-offset encoding defect.
func bufferAccessOp(k meta.OpKind) bool {
	return k == meta.OpFetch || k == meta.OpRead || k == meta.OpWrite || k.IsAtomic()
}

// redirectBufferSizeQuery redirects a buffer size query to the
// generation-qualified variant: the native size-query instruction encodes
// differently on GFX8 and on GFX6/7, so one portable operation cannot serve
// both. The replacement reuses the original's operands and result type, all
// uses move to it, and the original is scheduled for deletion.
func (p *pass) redirectBufferSizeQuery(m match) {
	call, _ := m.fn.CallAt(m.call)

	suffix := ".gfx6"
	if p.target.Major == 8 {
		suffix = ".gfx8"
	}

	operands := append([]ir.ValueHandle(nil), call.Operands...)
	repl := m.fn.EmitCallBefore(m.call, call.Callee+suffix, m.fn.Values[m.call].Type, operands)
	m.fn.ReplaceAllUses(m.call, repl)
	p.pending = append(p.pending, pendingDelete{fn: m.fn, call: m.call})

	logger().Debug("redirected buffer size query",
		"function", m.fn.Name, "callee", call.Callee, "suffix", suffix)
}

// forceDynamicTexelOffset works around a GFX9 backend defect: when the texel
// offset of a buffer access is a literal zero, the backend unsets the
// index-enable flag and provides no address register, mis-encoding the
// instruction. The same numeric value computed at run time is not folded, so
// a literal-zero offset is replaced with (pc.hi >> 24); the top 8 bits of
// the program counter are architecturally zero. Only the operand changes,
// the call itself stays in place.
func (p *pass) forceDynamicTexelOffset(m match) {
	call, _ := m.fn.CallAt(m.call)
	if len(call.Operands) <= texelOffsetOperand {
		return
	}

	offset, isConst := m.fn.ConstantUint(call.Operands[texelOffsetOperand])
	if !isConst || offset != 0 {
		return
	}

	pc := m.fn.EmitCallBefore(m.call, getPCIntrinsic, ir.TypeU64, nil)
	lanes := m.fn.EmitBitcastBefore(m.call, pc, ir.TypeU32x2)
	hi := m.fn.EmitExtractElementBefore(m.call, lanes, 1, ir.TypeU32)
	shift := m.fn.EmitLiteral(ir.LiteralU32(24), ir.TypeU32)
	zero := m.fn.EmitBinaryBefore(m.call, ir.BinaryShiftRight, hi, shift, ir.TypeU32)
	m.fn.SetOperand(m.call, texelOffsetOperand, zero)

	logger().Debug("forced dynamic texel offset",
		"function", m.fn.Name, "callee", call.Callee)
}
