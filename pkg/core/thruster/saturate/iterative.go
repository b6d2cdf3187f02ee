package saturate

import (
	"cmp"

	"github.com/chewxy/math32"
	"github.com/itohio/thrustalloc/pkg/core/math/scalar"
	"github.com/itohio/thrustalloc/pkg/core/thruster/alloc"
	"github.com/itohio/thrustalloc/pkg/core/thruster/geometry"
	"github.com/itohio/thrustalloc/pkg/core/thruster/perf"
	"github.com/itohio/thrustalloc/pkg/logger"
)

// MaxIterations is the hard cap on bisection steps: the only timeout this
// core imposes, so a control tick can never block on a non-convergent
// current curve.
const MaxIterations = 32

// Iterative scales every thruster's requested force by a single scalar s,
// chosen by bisection so that the resulting Σcurrent lands within eps of
// cap. Preserves force direction per thruster and, unlike Fast, exactly
// preserves force ratios when every thruster sits on the same branch of
// the current curve. Commands whose Σcurrent is already within cap are
// returned unchanged.
func Iterative[Id cmp.Ordered, D scalar.Number[D]](cmds alloc.Cmds[Id, D], config *geometry.Config[Id], table *perf.Table, cap, eps float32) (alloc.Cmds[Id, D], error) {
	var total float32
	for _, c := range cmds {
		total += c.Record.Current.Re()
	}
	if total <= cap {
		return cmds, nil
	}
	_, result, err := iterate(cmds, config, table, cap, eps)
	return result, err
}

// iterate runs the bisection and additionally returns the converged scale,
// which AxisMaximums needs to report an achievable magnitude.
func iterate[Id cmp.Ordered, D scalar.Number[D]](cmds alloc.Cmds[Id, D], config *geometry.Config[Id], table *perf.Table, cap, eps float32) (float32, alloc.Cmds[Id, D], error) {
	s := float32(1)

	sum0, scaled0, err := evalAt(cmds, config, table, s)
	if err != nil {
		return 0, nil, err
	}
	if sum0 == 0 {
		return 1, scaled0, nil
	}
	if math32.Abs(sum0-cap) < eps {
		return s, scaled0, nil
	}

	lo, loCurrent := float32(0), float32(0)
	hi, hiCurrent := math32.Inf(1), math32.Inf(1)
	if sum0 >= cap {
		hi, hiCurrent = s, sum0
	} else {
		lo, loCurrent = s, sum0
	}

	best, bestDiff := scaled0, math32.Abs(sum0-cap)
	bestScale := s

	for iter := 0; iter < MaxIterations; iter++ {
		if math32.IsInf(hi, 1) {
			s = s * (cap / sum0)
		} else {
			alpha := (cap - loCurrent) / (hiCurrent - loCurrent)
			s = hi*alpha + lo*(1-alpha)
		}

		sum, scaled, err := evalAt(cmds, config, table, s)
		if err != nil {
			return 0, nil, err
		}
		if sum == 0 {
			return 1, scaled, nil
		}
		diff := math32.Abs(sum - cap)
		if diff < bestDiff {
			best, bestDiff, bestScale = scaled, diff, s
		}
		if diff < eps {
			return s, scaled, nil
		}

		if sum >= cap {
			hi, hiCurrent = s, sum
		} else {
			lo, loCurrent = s, sum
		}
		sum0 = sum
	}

	logger.Log.Warn().Float32("cap", cap).Float32("best_scale", bestScale).Msg("saturate: iteration cap reached before convergence")
	return bestScale, best, ErrSaturatorNonConvergent
}

// evalAt scales every command's requested force (Record.Force, the force
// the command was last looked up at) by s and re-looks-up the resulting
// record, returning the total current drawn.
func evalAt[Id cmp.Ordered, D scalar.Number[D]](cmds alloc.Cmds[Id, D], config *geometry.Config[Id], table *perf.Table, s float32) (float32, alloc.Cmds[Id, D], error) {
	out := make(alloc.Cmds[Id, D], len(cmds))
	var total float32
	for i, c := range cmds {
		th, ok := config.Thruster(c.Id)
		if !ok {
			return 0, nil, alloc.ErrUnknownThruster
		}
		var zero D
		scaledForce := zero.FromF32(c.Record.Force.Re() * s)
		rec, err := perf.ByForce(table, scaledForce, perf.LerpDirection(th.Direction))
		if err != nil {
			return 0, nil, err
		}
		out[i] = alloc.CmdEntry[Id, D]{Id: c.Id, Record: rec}
		total += rec.Current.Re()
	}
	return total, out, nil
}
