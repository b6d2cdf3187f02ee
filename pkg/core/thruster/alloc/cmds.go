package alloc

import (
	"cmp"
	"fmt"

	"github.com/itohio/thrustalloc/pkg/core/math/scalar"
	"github.com/itohio/thrustalloc/pkg/core/thruster/geometry"
	"github.com/itohio/thrustalloc/pkg/core/thruster/perf"
)

// ForcesToCmds looks up a full performance record for each entry in forces,
// using that thruster's own spin direction to drive the table's CCW pwm
// reflection. Every Id in forces must be present in config; an Id that
// isn't is a programmer error (ErrUnknownThruster), since forces is
// expected to have come from ReverseSolve against the same Config.
func ForcesToCmds[Id cmp.Ordered, D scalar.Number[D]](forces Forces[Id, D], config *geometry.Config[Id], table *perf.Table) (Cmds[Id, D], error) {
	out := make(Cmds[Id, D], len(forces))
	for i, e := range forces {
		th, ok := config.Thruster(e.Id)
		if !ok {
			return nil, fmt.Errorf("%w: %v", ErrUnknownThruster, e.Id)
		}
		rec, err := perf.ByForce(table, e.Force, perf.LerpDirection(th.Direction))
		if err != nil {
			return nil, err
		}
		out[i] = CmdEntry[Id, D]{Id: e.Id, Record: rec}
	}
	return out, nil
}
