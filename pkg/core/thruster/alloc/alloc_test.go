package alloc

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/itohio/thrustalloc/pkg/core/math/scalar"
	"github.com/itohio/thrustalloc/pkg/core/math/vec"
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

func performanceTable(t *testing.T) *perf.Table {
	t.Helper()
	table, err := perf.NewTable([]perf.Record[scalar.F32]{
		{PWM: 1100, RPM: -4000, Current: -10, Voltage: 16, Power: 160, Force: -20, Efficiency: 0.7},
		{PWM: 1500, RPM: 0, Current: 0, Voltage: 16, Power: 0, Force: 0, Efficiency: 0},
		{PWM: 1900, RPM: 4000, Current: 10, Voltage: 16, Power: 160, Force: 20, Efficiency: 0.7},
	})
	require.NoError(t, err)
	return table
}

func TestUnitMovementSetsOnlyNamedAxis(t *testing.T) {
	for _, axis := range Axes {
		m := UnitMovement[scalar.F32](axis, 5)
		got := m.ToVector6()
		for i, v := range got {
			want := float32(0)
			if Axis(i) == axis {
				want = 5
			}
			assert.InDelta(t, want, v.Re(), 1e-6)
		}
	}
}

func TestMovementVector6RoundTrip(t *testing.T) {
	m := Movement[scalar.F32]{Force: vec.Vector3[scalar.F32]{1, 2, 3}, Torque: vec.Vector3[scalar.F32]{4, 5, 6}}
	got := MovementFromVector6(m.ToVector6())
	assert.Equal(t, m, got)
}

func TestMovementAddSubScale(t *testing.T) {
	a := Movement[scalar.F32]{Force: vec.Vector3[scalar.F32]{1, 1, 1}, Torque: vec.Vector3[scalar.F32]{1, 1, 1}}
	b := Movement[scalar.F32]{Force: vec.Vector3[scalar.F32]{1, 0, 0}, Torque: vec.Vector3[scalar.F32]{0, 0, 0}}

	sum := a.Add(b)
	assert.InDelta(t, 2, sum.Force[0].Re(), 1e-6)

	diff := a.Sub(b)
	assert.InDelta(t, 0, diff.Force[0].Re(), 1e-6)

	scaled := a.Scale(2)
	assert.InDelta(t, 2, scaled.Force[0].Re(), 1e-6)
}

func TestReverseThenForwardSolveRoundTrips(t *testing.T) {
	config := x3dConfig(t)
	requested := Movement[scalar.F32]{
		Force:  vec.Vector3[scalar.F32]{-0.6, 0.5, 0.3},
		Torque: vec.Vector3[scalar.F32]{0.2, 0.1, 0.4},
	}

	forces := ReverseSolve(config, requested)
	assert.Equal(t, config.NumThrusters(), len(forces))

	achieved := ForwardSolve(config, forces.ToMap())
	assert.InDelta(t, requested.Force[0].Re(), achieved.Force[0].Re(), 1e-4)
	assert.InDelta(t, requested.Force[1].Re(), achieved.Force[1].Re(), 1e-4)
	assert.InDelta(t, requested.Force[2].Re(), achieved.Force[2].Re(), 1e-4)
	assert.InDelta(t, requested.Torque[0].Re(), achieved.Torque[0].Re(), 1e-4)
	assert.InDelta(t, requested.Torque[1].Re(), achieved.Torque[1].Re(), 1e-4)
	assert.InDelta(t, requested.Torque[2].Re(), achieved.Torque[2].Re(), 1e-4)
}

func TestForwardSolveZeroForOmittedThrusters(t *testing.T) {
	config := x3dConfig(t)
	achieved := ForwardSolve(config, map[geometry.X3DPosition]scalar.F32{})
	assert.Equal(t, Movement[scalar.F32]{}, achieved)
}

func TestForcesToCmdsLooksUpEachThrusterWithItsOwnDirection(t *testing.T) {
	config := x3dConfig(t)
	table := performanceTable(t)
	forces := ReverseSolve(config, Movement[scalar.F32]{Force: vec.Vector3[scalar.F32]{1, 0, 0}})

	cmds, err := ForcesToCmds(forces, config, table)
	require.NoError(t, err)
	assert.Equal(t, len(forces), len(cmds))

	for _, c := range cmds {
		th, ok := config.Thruster(c.Id)
		require.True(t, ok)
		if th.Direction == geometry.Clockwise {
			f, _ := forces.Get(c.Id)
			want, err := perf.ByForce[scalar.F32](table, f, perf.Lerp())
			require.NoError(t, err)
			assert.InDelta(t, want.PWM.Re(), c.Record.PWM.Re(), 1e-4)
		}
	}
}

func TestForcesToCmdsUnknownIdFails(t *testing.T) {
	config := x3dConfig(t)
	table := performanceTable(t)
	bogus := Forces[geometry.X3DPosition, scalar.F32]{{Id: geometry.X3DPosition(255), Force: 1}}

	_, err := ForcesToCmds(bogus, config, table)
	assert.ErrorIs(t, err, ErrUnknownThruster)
}

func TestForcesGetMissingReturnsZero(t *testing.T) {
	forces := Forces[geometry.X3DPosition, scalar.F32]{{Id: geometry.X3DFrontRightTop, Force: 3}}
	got, ok := forces.Get(geometry.X3DBackLeftBottom)
	assert.False(t, ok)
	assert.Equal(t, scalar.F32(0), got)
}
