package gcnpatch

import (
	"strings"

	"github.com/oleiade/lane"

	"github.com/gogpu/gcnpatch/ir"
	"github.com/gogpu/gcnpatch/meta"
)

// match is one image call found by the scanner, with its decoded metadata.
type match struct {
	fn   *ir.Function
	call ir.ValueHandle
	meta meta.ImageCallMetadata
}

// scan walks every call reachable from the entry function (its own body
// plus the bodies of module-defined callees, breadth-first) and collects
// image calls with their decoded metadata. The walk only reads the
// representation; all structural edits happen after it returns.
//
// The visited set lives on the pass, not the scan: a function reachable from
// two entry points must be matched once per Run, or the second stage would
// re-match calls already rewritten (their originals are still scheduled
// until cleanup) and the suffixed replacements themselves.
func (p *pass) scan(stage ir.ShaderStage, entry ir.FunctionHandle) ([]match, error) {
	var matches []match

	if _, seen := p.visited[entry]; seen {
		return nil, nil
	}
	p.visited[entry] = struct{}{}

	work := lane.NewQueue()
	work.Enqueue(entry)

	for !work.Empty() {
		fh := work.Dequeue().(ir.FunctionHandle)
		fn := &p.module.Functions[fh]

		for _, h := range fn.Body {
			call, ok := fn.CallAt(h)
			if !ok {
				continue
			}

			if callee, defined := p.module.FunctionByName(call.Callee); defined {
				if _, seen := p.visited[callee]; !seen {
					p.visited[callee] = struct{}{}
					work.Enqueue(callee)
				}
			}

			if !strings.HasPrefix(call.Callee, ImageCallPrefix) {
				continue
			}
			if len(call.Operands) < 2 {
				return nil, MalformedCallError{
					Stage:    stage,
					Function: fn.Name,
					Callee:   call.Callee,
					Operands: len(call.Operands),
				}
			}

			// The metadata word is always the last operand.
			word, isConst := fn.ConstantUint(call.Operands[len(call.Operands)-1])
			if !isConst {
				return nil, NonConstantMetadataError{
					Stage:    stage,
					Function: fn.Name,
					Callee:   call.Callee,
				}
			}

			matches = append(matches, match{
				fn:   fn,
				call: h,
				meta: meta.Decode(meta.Word(word)),
			})
		}
	}

	return matches, nil
}
