// Package saturate enforces a fleet-wide current budget on a set of
// per-thruster commands: a one-shot proportional scale for when latency
// matters more than accuracy, and an iterative bisection for when it
// doesn't, plus the per-axis envelope query built on the iterative policy.
package saturate

import (
	"cmp"

	"github.com/chewxy/math32"
	"github.com/itohio/thrustalloc/pkg/core/math/scalar"
	"github.com/itohio/thrustalloc/pkg/core/thruster/alloc"
	"github.com/itohio/thrustalloc/pkg/core/thruster/geometry"
	"github.com/itohio/thrustalloc/pkg/core/thruster/perf"
)

// Fast scales every command's signed current by a single ratio cap/Σcurrent
// and re-looks-up each thruster's record at the scaled current. O(N) with
// one table lookup per thruster. Does not preserve force ratios, since the
// current->force map is non-linear, but is cheap: one pass, no iteration.
func Fast[Id cmp.Ordered, D scalar.Number[D]](cmds alloc.Cmds[Id, D], config *geometry.Config[Id], table *perf.Table, cap float32) (alloc.Cmds[Id, D], error) {
	var total float32
	for _, c := range cmds {
		total += c.Record.Current.Re()
	}
	if total <= cap {
		return cmds, nil
	}

	ratio := cap / total
	out := make(alloc.Cmds[Id, D], len(cmds))
	for i, c := range cmds {
		th, ok := config.Thruster(c.Id)
		if !ok {
			return nil, alloc.ErrUnknownThruster
		}
		signed := math32.Copysign(c.Record.Current.Re(), c.Record.Force.Re()) * ratio
		var zero D
		rec, err := perf.BySignedCurrent(table, zero.FromF32(signed), perf.LerpDirection(th.Direction))
		if err != nil {
			return nil, err
		}
		out[i] = alloc.CmdEntry[Id, D]{Id: c.Id, Record: rec}
	}
	return out, nil
}
