package ir

import "fmt"

// addValue appends kind to the arena without scheduling it in the body.
func (f *Function) addValue(kind ValueKind, typ Type) ValueHandle {
	h := ValueHandle(len(f.Values))
	f.Values = append(f.Values, Value{Kind: kind, Type: typ})
	return h
}

// insertBefore schedules h in the body immediately before anchor. When
// anchor is not scheduled, h goes at the end.
func (f *Function) insertBefore(anchor, h ValueHandle) {
	for i, b := range f.Body {
		if b == anchor {
			f.Body = append(f.Body, 0)
			copy(f.Body[i+1:], f.Body[i:])
			f.Body[i] = h
			return
		}
	}
	f.Body = append(f.Body, h)
}

// EmitLiteral materializes a literal constant in the arena.
func (f *Function) EmitLiteral(v LiteralValue, typ Type) ValueHandle {
	return f.addValue(Literal{Value: v}, typ)
}

// EmitArgument materializes a reference to the parameter at index.
func (f *Function) EmitArgument(index uint32, typ Type) ValueHandle {
	return f.addValue(Argument{Index: index}, typ)
}

// AppendCall emits a call to callee at the end of the body.
func (f *Function) AppendCall(callee string, result Type, operands []ValueHandle) ValueHandle {
	h := f.addValue(Call{Callee: callee, Operands: operands}, result)
	f.Body = append(f.Body, h)
	return h
}

// EmitCallBefore emits a call to callee scheduled immediately before anchor.
func (f *Function) EmitCallBefore(anchor ValueHandle, callee string, result Type, operands []ValueHandle) ValueHandle {
	h := f.addValue(Call{Callee: callee, Operands: operands}, result)
	f.insertBefore(anchor, h)
	return h
}

// EmitBitcastBefore reinterprets operand as typ, scheduled before anchor.
func (f *Function) EmitBitcastBefore(anchor, operand ValueHandle, typ Type) ValueHandle {
	h := f.addValue(Bitcast{Operand: operand}, typ)
	f.insertBefore(anchor, h)
	return h
}

// EmitExtractElementBefore extracts vector lane index, scheduled before
// anchor.
func (f *Function) EmitExtractElementBefore(anchor, vector ValueHandle, index uint32, typ Type) ValueHandle {
	h := f.addValue(ExtractElement{Vector: vector, Index: index}, typ)
	f.insertBefore(anchor, h)
	return h
}

// EmitBinaryBefore applies op to (left, right), scheduled before anchor.
func (f *Function) EmitBinaryBefore(anchor ValueHandle, op BinaryOperator, left, right ValueHandle, typ Type) ValueHandle {
	h := f.addValue(Binary{Op: op, Left: left, Right: right}, typ)
	f.insertBefore(anchor, h)
	return h
}

// CallAt returns the call at h. The second result is false when h does not
// hold a live call value.
func (f *Function) CallAt(h ValueHandle) (Call, bool) {
	if int(h) >= len(f.Values) {
		return Call{}, false
	}
	c, ok := f.Values[h].Kind.(Call)
	return c, ok
}

// ConstantUint returns the zero-extended value of h when it holds an integer
// literal.
func (f *Function) ConstantUint(h ValueHandle) (uint64, bool) {
	lit, ok := f.Values[h].Kind.(Literal)
	if !ok {
		return 0, false
	}
	switch v := lit.Value.(type) {
	case LiteralU32:
		return uint64(v), true
	case LiteralI32:
		return uint64(uint32(v)), true
	case LiteralU64:
		return uint64(v), true
	case LiteralI64:
		return uint64(v), true
	default:
		return 0, false
	}
}

// SetOperand replaces operand index of the call at h. The handle must hold a
// live call with at least index+1 operands.
func (f *Function) SetOperand(h ValueHandle, index int, operand ValueHandle) {
	c := f.Values[h].Kind.(Call)
	c.Operands[index] = operand
}

// ReplaceAllUses redirects every operand reference from old to repl.
func (f *Function) ReplaceAllUses(old, repl ValueHandle) {
	for i := range f.Values {
		switch k := f.Values[i].Kind.(type) {
		case Call:
			for j, op := range k.Operands {
				if op == old {
					k.Operands[j] = repl
				}
			}
		case Bitcast:
			if k.Operand == old {
				k.Operand = repl
				f.Values[i].Kind = k
			}
		case ExtractElement:
			if k.Vector == old {
				k.Vector = repl
				f.Values[i].Kind = k
			}
		case Binary:
			if k.Left == old || k.Right == old {
				if k.Left == old {
					k.Left = repl
				}
				if k.Right == old {
					k.Right = repl
				}
				f.Values[i].Kind = k
			}
		}
	}
}

// Uses returns the handles of every value that reads h as an operand.
func (f *Function) Uses(h ValueHandle) []ValueHandle {
	var uses []ValueHandle
	for i := range f.Values {
		for _, op := range valueOperands(f.Values[i].Kind) {
			if op == h {
				uses = append(uses, ValueHandle(i))
				break
			}
		}
	}
	return uses
}

// HasUses reports whether any value reads h.
func (f *Function) HasUses(h ValueHandle) bool {
	for i := range f.Values {
		for _, op := range valueOperands(f.Values[i].Kind) {
			if op == h {
				return true
			}
		}
	}
	return false
}

// RemoveValue unschedules h and clears its arena slot. It fails while any
// value still reads h; callers must redirect all uses first.
func (f *Function) RemoveValue(h ValueHandle) error {
	if int(h) >= len(f.Values) {
		return fmt.Errorf("function %q: no value %d", f.Name, h)
	}
	if f.HasUses(h) {
		return fmt.Errorf("function %q: value %d still has uses", f.Name, h)
	}
	for i, b := range f.Body {
		if b == h {
			f.Body = append(f.Body[:i], f.Body[i+1:]...)
			break
		}
	}
	f.Values[h] = Value{}
	return nil
}
