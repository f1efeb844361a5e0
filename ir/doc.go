// Package ir defines the lowered, call-based intermediate representation
// consumed by the gcnpatch pass.
//
// This representation sits below a source-level shader IR: sampling and
// resource semantics have already been lowered into calls to named
// operations, and each function body is a flat, ordered list of
// instructions.
//
// # Structure
//
// A Module contains function definitions and shader entry points. Each
// Function owns a value arena; values are referenced by ValueHandle, so one
// value may legitimately be an operand of many instructions (shared
// ownership by index, no single-owner pointers). The Body slice gives
// instruction order; literals and argument references live only in the
// arena.
//
// # Mutation
//
// Passes rewrite the representation in place through the builder helpers
// (EmitCallBefore and friends), ReplaceAllUses, SetOperand, and RemoveValue.
// RemoveValue refuses to clear a value that still has uses, which keeps
// deletion-after-redirection honest.
package ir
