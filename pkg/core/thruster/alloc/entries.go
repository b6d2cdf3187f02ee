package alloc

import (
	"cmp"

	"github.com/itohio/thrustalloc/pkg/core/math/scalar"
	"github.com/itohio/thrustalloc/pkg/core/thruster/perf"
	"github.com/samber/lo"
)

// ForceEntry pairs a thruster Id with its signed force.
type ForceEntry[Id cmp.Ordered, D scalar.Number[D]] struct {
	Id    Id
	Force D
}

// Forces is an ordered Id->force mapping. ReverseSolve returns one so that
// downstream consumers (forces_to_cmds, the saturator) iterate it in the
// same order on every run for the same Config — the replication layer
// diffs this output and needs a reproducible order, not Go's randomized
// native map iteration.
type Forces[Id cmp.Ordered, D scalar.Number[D]] []ForceEntry[Id, D]

// Get returns the force for id, if present.
func (f Forces[Id, D]) Get(id Id) (D, bool) {
	for _, e := range f {
		if e.Id == id {
			return e.Force, true
		}
	}
	var zero D
	return zero, false
}

// ToMap converts to a plain map, for callers that only need membership
// testing or don't care about order (forward_solve).
func (f Forces[Id, D]) ToMap() map[Id]D {
	return lo.SliceToMap(f, func(e ForceEntry[Id, D]) (Id, D) { return e.Id, e.Force })
}

// CmdEntry pairs a thruster Id with the performance record its current
// force resolves to.
type CmdEntry[Id cmp.Ordered, D scalar.Number[D]] struct {
	Id     Id
	Record perf.Record[D]
}

// Cmds is the ordered Id->Record mapping forces_to_cmds and the saturator
// policies produce, preserving whatever order their input Forces carried.
type Cmds[Id cmp.Ordered, D scalar.Number[D]] []CmdEntry[Id, D]

func (c Cmds[Id, D]) Get(id Id) (perf.Record[D], bool) {
	for _, e := range c {
		if e.Id == id {
			return e.Record, true
		}
	}
	var zero perf.Record[D]
	return zero, false
}

func (c Cmds[Id, D]) ToMap() map[Id]perf.Record[D] {
	return lo.SliceToMap(c, func(e CmdEntry[Id, D]) (Id, perf.Record[D]) { return e.Id, e.Record })
}
