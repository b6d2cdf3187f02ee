package saturate

import (
	"cmp"
	"errors"

	"github.com/itohio/thrustalloc/pkg/core/math/scalar"
	"github.com/itohio/thrustalloc/pkg/core/thruster/alloc"
	"github.com/itohio/thrustalloc/pkg/core/thruster/geometry"
	"github.com/itohio/thrustalloc/pkg/core/thruster/perf"
	"github.com/itohio/thrustalloc/pkg/logger"
)

// testMagnitude is the per-axis test-wrench magnitude AxisMaximums
// reverse-solves against before saturating.
const testMagnitude = 25

// AxisMaximums reports, for each of the six unit axes, the largest
// magnitude along that axis the layout can actually deliver under cap: it
// reverse-solves a magnitude-25 test wrench on that axis alone, runs the
// iterative saturator, and scales 25 by the converged scale factor. Used
// to expose envelope information upward (e.g. to a PID's anti-windup).
func AxisMaximums[Id cmp.Ordered, D scalar.Number[D]](config *geometry.Config[Id], table *perf.Table, cap, eps float32) (map[alloc.Axis]float32, error) {
	var zero D
	magnitude := zero.FromF32(testMagnitude)

	out := make(map[alloc.Axis]float32, len(alloc.Axes))
	for _, axis := range alloc.Axes {
		movement := alloc.UnitMovement(axis, magnitude)
		forces := alloc.ReverseSolve(config, movement)
		cmds, err := alloc.ForcesToCmds(forces, config, table)
		if err != nil {
			return nil, err
		}

		scale, _, err := iterate(cmds, config, table, cap, eps)
		if err != nil && !errors.Is(err, ErrSaturatorNonConvergent) {
			return nil, err
		}
		if errors.Is(err, ErrSaturatorNonConvergent) {
			logger.Log.Warn().Str("axis", axis.String()).Msg("saturate: axis_maximums used non-convergent estimate")
		}
		out[axis] = scale * testMagnitude
	}
	return out, nil
}
