package saturate

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/itohio/thrustalloc/pkg/core/math/scalar"
	"github.com/itohio/thrustalloc/pkg/core/math/vec"
	"github.com/itohio/thrustalloc/pkg/core/thruster/alloc"
	"github.com/itohio/thrustalloc/pkg/core/thruster/geometry"
	"github.com/itohio/thrustalloc/pkg/core/thruster/perf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func x3dConfig(t *testing.T) *geometry.Config[geometry.X3DPosition] {
	t.Helper()
	inv := 1 / math32.Sqrt(3)
	seed, err := geometry.NewThruster(
		vec.Vector3[scalar.F32]{scalar.F32(inv), scalar.F32(inv), scalar.F32(inv)},
		vec.FromAngles(math32.Pi/3, math32.Pi*40/180),
		geometry.Clockwise,
	)
	require.NoError(t, err)
	config, err := geometry.NewX3D(seed, vec.Vector3[scalar.F32]{})
	require.NoError(t, err)
	return config
}

// wideTable spans enough force/current range that a 40A total can be
// scaled down to a 20A cap without running off either end of the table.
func wideTable(t *testing.T) *perf.Table {
	t.Helper()
	rows := make([]perf.Record[scalar.F32], 0, 21)
	for i := -10; i <= 10; i++ {
		force := float32(i) * 5
		current := math32.Abs(float32(i)) * 4
		rows = append(rows, perf.Record[scalar.F32]{
			PWM:        scalar.F32(1500 + float32(i)*40),
			RPM:        scalar.F32(float32(i) * 400),
			Current:    scalar.F32(current),
			Voltage:    16,
			Power:      scalar.F32(current * 16),
			Force:      scalar.F32(force),
			Efficiency: 0.7,
		})
	}
	table, err := perf.NewTable(rows)
	require.NoError(t, err)
	return table
}

func cmdsForWrench(t *testing.T, config *geometry.Config[geometry.X3DPosition], table *perf.Table, force vec.Vector3[scalar.F32]) alloc.Cmds[geometry.X3DPosition, scalar.F32] {
	t.Helper()
	forces := alloc.ReverseSolve(config, alloc.Movement[scalar.F32]{Force: force})
	cmds, err := alloc.ForcesToCmds(forces, config, table)
	require.NoError(t, err)
	return cmds
}

func totalCurrent(cmds alloc.Cmds[geometry.X3DPosition, scalar.F32]) float32 {
	var total float32
	for _, c := range cmds {
		total += c.Record.Current.Re()
	}
	return total
}

func TestFastLeavesUnderBudgetCmdsUntouched(t *testing.T) {
	config := x3dConfig(t)
	table := wideTable(t)
	cmds := cmdsForWrench(t, config, table, vec.Vector3[scalar.F32]{1, 0, 0})
	require.Less(t, totalCurrent(cmds), float32(1000))

	out, err := Fast(cmds, config, table, 1000)
	require.NoError(t, err)
	assert.Equal(t, cmds, out)
}

func TestFastScalesDownToCap(t *testing.T) {
	config := x3dConfig(t)
	table := wideTable(t)
	cmds := cmdsForWrench(t, config, table, vec.Vector3[scalar.F32]{30, 0, 0})
	before := totalCurrent(cmds)
	require.Greater(t, before, float32(20))

	out, err := Fast(cmds, config, table, 20)
	require.NoError(t, err)
	assert.LessOrEqual(t, totalCurrent(out), float32(20.5))
}

func TestIterativeConvergesWithinCapAndEps(t *testing.T) {
	config := x3dConfig(t)
	table := wideTable(t)
	cmds := cmdsForWrench(t, config, table, vec.Vector3[scalar.F32]{30, 0, 0})

	out, err := Iterative(cmds, config, table, 20, 0.1)
	require.NoError(t, err)
	assert.InDelta(t, 20, totalCurrent(out), 0.2)
}

func TestIterativeNoopWhenAlreadyUnderCap(t *testing.T) {
	config := x3dConfig(t)
	table := wideTable(t)
	cmds := cmdsForWrench(t, config, table, vec.Vector3[scalar.F32]{1, 0, 0})

	out, err := Iterative(cmds, config, table, 1000, 0.01)
	require.NoError(t, err)
	assert.Equal(t, cmds, out)
}

func TestAxisMaximumsAreFiniteAndBelowUnclampedEstimate(t *testing.T) {
	config := x3dConfig(t)
	table := wideTable(t)

	maxima, err := AxisMaximums[geometry.X3DPosition, scalar.F32](config, table, 20, 0.1)
	require.NoError(t, err)
	assert.Len(t, maxima, 6)

	for axis, v := range maxima {
		assert.False(t, math32.IsInf(v, 0), "axis %v maximum is not finite", axis)
		assert.LessOrEqual(t, v, float32(testMagnitude), "axis %v maximum exceeds the unclamped test magnitude", axis)
	}
}

func TestAxisMaximumsTightCapShrinksEnvelope(t *testing.T) {
	config := x3dConfig(t)
	table := wideTable(t)

	loose, err := AxisMaximums[geometry.X3DPosition, scalar.F32](config, table, 1000, 0.1)
	require.NoError(t, err)
	tight, err := AxisMaximums[geometry.X3DPosition, scalar.F32](config, table, 5, 0.1)
	require.NoError(t, err)

	for axis := range loose {
		assert.LessOrEqual(t, tight[axis], loose[axis]+1e-3, "axis %v tight-cap envelope should not exceed the loose-cap one", axis)
	}
}
