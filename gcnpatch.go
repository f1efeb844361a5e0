// Package gcnpatch rewrites image-operation calls in lowered shader IR for a
// specific AMD graphics IP generation.
//
// Front-end lowering emits portable image operations as calls whose names
// carry ImageCallPrefix, each with a packed metadata word as its final
// operand (see the meta package). Two shapes cannot be lowered uniformly
// across generations:
//
//   - Buffer size queries encode differently on GFX8 and on GFX6/7, so on
//     those targets the portable call is redirected to a
//     generation-qualified variant (".gfx8" or ".gfx6").
//   - On GFX9 the backend drops the index-enable flag when a buffer access
//     carries a literal-zero texel offset; the pass substitutes a
//     run-time-computed zero so the offset never enters the defective
//     constant path.
//
// The pass runs once per module and mutates it in place:
//
//	changed, err := gcnpatch.Run(module, gfx.GFX9)
//
// Scanning and mutation are two phases: the scanner only collects matched
// calls, then the rewrite rules apply their edits, and superseded calls are
// erased last. The traversal is therefore never invalidated by the edits it
// provokes.
package gcnpatch

import (
	"fmt"

	"github.com/gogpu/gcnpatch/gfx"
	"github.com/gogpu/gcnpatch/ir"
)

// ImageCallPrefix marks calls produced by the front end's image lowering.
const ImageCallPrefix = "gcn.image."

// getPCIntrinsic reads the 64-bit program counter. The top 8 bits of a PC
// value are architecturally zero on every supported generation.
const getPCIntrinsic = "amdgcn.s.getpc"

// Run applies the image-operation patching pass to module for the given
// target generation. It reports whether the module was visited (true iff any
// shader stage had an entry point). A non-nil error means the module is
// internally inconsistent and must not be handed to later stages.
func Run(module *ir.Module, target gfx.Version) (bool, error) {
	p := &pass{
		module:  module,
		target:  target,
		visited: make(map[ir.FunctionHandle]struct{}),
	}

	changed := false
	for stage := ir.ShaderStage(0); stage < ir.StageCount; stage++ {
		entry, ok := module.EntryPointFor(stage)
		if !ok {
			continue
		}
		changed = true
		if err := p.runOnEntry(stage, entry); err != nil {
			return false, err
		}
	}

	if err := p.cleanup(); err != nil {
		return false, err
	}
	return changed, nil
}

// pass carries the state of one Run invocation.
type pass struct {
	module *ir.Module
	target gfx.Version

	// visited tracks functions already scanned during this Run, across
	// stages, so shared functions are matched exactly once.
	visited map[ir.FunctionHandle]struct{}

	// pending holds calls superseded by a rewrite, erased after all stages
	// are scanned.
	pending []pendingDelete
}

// pendingDelete identifies a superseded call by owning function and handle.
type pendingDelete struct {
	fn   *ir.Function
	call ir.ValueHandle
}

// runOnEntry patches every image call reachable from one stage's entry
// point.
func (p *pass) runOnEntry(stage ir.ShaderStage, entry ir.FunctionHandle) error {
	logger().Debug("patching image operations",
		"stage", stage.String(), "target", p.target.String())

	matches, err := p.scan(stage, entry)
	if err != nil {
		return err
	}
	for _, m := range matches {
		p.rewrite(m)
	}
	return nil
}

// cleanup erases all superseded calls and resets the pending set. The
// rewrite rules have already redirected every use to the replacement, so
// removal cannot leave dangling references.
func (p *pass) cleanup() error {
	for _, d := range p.pending {
		if err := d.fn.RemoveValue(d.call); err != nil {
			return fmt.Errorf("removing superseded image call: %w", err)
		}
	}
	p.pending = p.pending[:0]
	return nil
}
