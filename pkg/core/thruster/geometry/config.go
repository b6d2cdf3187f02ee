// Package geometry models the thruster layout of an ROV: per-thruster
// position, orientation and spin direction, the 6xN wrench-mapping matrix
// they induce, and its damped pseudo-inverse. Config is built once (at
// startup or on a config change) and is immutable thereafter; every method
// on it is read-only so a *Config may be shared freely across goroutines.
package geometry

import (
	"cmp"
	"fmt"
	"sort"

	"github.com/itohio/thrustalloc/pkg/core/math/mat"
	"github.com/itohio/thrustalloc/pkg/core/math/scalar"
	"github.com/itohio/thrustalloc/pkg/core/math/vec"
	"github.com/itohio/thrustalloc/pkg/logger"
)

// wrenchSize is the row count of the wrench-mapping matrix: 3 force axes
// stacked over 3 torque axes.
const wrenchSize = 6

// DefaultRidge is the damping applied to the pseudo-inverse at construction
// time unless the caller overrides it via NewRawRidge.
const DefaultRidge = 1e-4

// Entry pairs a thruster with its key in a construction iterator. Id must
// be totally ordered so thrusters can be sorted and deduplicated
// deterministically.
type Entry[Id cmp.Ordered] struct {
	Id       Id
	Thruster Thruster
}

// Config is an immutable thruster layout: a sorted, deduplicated sequence
// of (Id, Thruster) pairs together with the wrench matrix they induce and
// its damped pseudo-inverse. Rebuild, never mutate in place.
type Config[Id cmp.Ordered] struct {
	entries       []Entry[Id]
	matrix        mat.Matrix
	pseudoInverse mat.Matrix
	centerOfMass  vec.Vector3[scalar.F32]
}

// NewRaw sorts pairs by Id (stable, dropping consecutive duplicates after
// sort, keeping the first occurrence), builds the 6xN wrench matrix and its
// damped Moore-Penrose pseudo-inverse with the default ridge, and returns
// the resulting Config. It fails only if fewer than one thruster survives
// dedup or the pseudo-inverse's SVD does not converge.
func NewRaw[Id cmp.Ordered](pairs []Entry[Id], centerOfMass vec.Vector3[scalar.F32]) (*Config[Id], error) {
	return NewRawRidge(pairs, centerOfMass, DefaultRidge)
}

// NewRawRidge is NewRaw with an explicit pseudo-inverse damping ridge,
// exposed for tuning per the allocator's ridge design note.
func NewRawRidge[Id cmp.Ordered](pairs []Entry[Id], centerOfMass vec.Vector3[scalar.F32], ridge float32) (*Config[Id], error) {
	entries := dedupSorted(pairs)
	if len(entries) < 1 {
		logger.Log.Error().Msg("geometry: thruster set empty after dedup")
		return nil, ErrInvalidGeometry
	}

	m := buildMatrix(entries, centerOfMass)
	pinv, err := m.PseudoInverse(ridge)
	if err != nil {
		logger.Log.Error().Err(err).Msg("geometry: pseudo-inverse did not converge")
		return nil, fmt.Errorf("%w: %v", ErrInvalidGeometry, err)
	}

	return &Config[Id]{
		entries:       entries,
		matrix:        m,
		pseudoInverse: pinv,
		centerOfMass:  centerOfMass,
	}, nil
}

func dedupSorted[Id cmp.Ordered](pairs []Entry[Id]) []Entry[Id] {
	sorted := make([]Entry[Id], len(pairs))
	copy(sorted, pairs)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Id < sorted[j].Id })

	out := sorted[:0:0]
	for i, e := range sorted {
		if i > 0 && e.Id == sorted[i-1].Id {
			continue
		}
		out = append(out, e)
	}
	return out
}

func buildMatrix[Id cmp.Ordered](entries []Entry[Id], com vec.Vector3[scalar.F32]) mat.Matrix {
	n := len(entries)
	m := mat.New(wrenchSize, n)
	for k, e := range entries {
		o := e.Thruster.Orientation
		lever := e.Thruster.Position.Sub(com)
		torque := lever.Cross(o)
		for axis := 0; axis < 3; axis++ {
			m[axis][k] = float32(o[axis])
			m[axis+3][k] = float32(torque[axis])
		}
	}
	return m
}

// NumThrusters returns N, the column count of the wrench matrix.
func (c *Config[Id]) NumThrusters() int { return len(c.entries) }

// Matrix returns the 6xN wrench-mapping matrix. The returned value must be
// treated as read-only; it is the Config's own backing storage.
func (c *Config[Id]) Matrix() mat.Matrix { return c.matrix }

// PseudoInverse returns the Nx6 damped Moore-Penrose pseudo-inverse of
// Matrix(). Read-only, as with Matrix.
func (c *Config[Id]) PseudoInverse() mat.Matrix { return c.pseudoInverse }

// CenterOfMass returns the center of mass the matrix was built against.
func (c *Config[Id]) CenterOfMass() vec.Vector3[scalar.F32] { return c.centerOfMass }

// GramDeterminant returns det(M * Mt), the Gram determinant of the wrench
// matrix: a value indistinguishable from zero means the layout cannot
// independently actuate all six degrees of freedom. Exposed for startup
// diagnostics; ReverseSolve itself never needs it, since PseudoInverse
// already damps a near-singular Gram matrix via its ridge.
func (c *Config[Id]) GramDeterminant() float32 {
	return c.matrix.Mul(c.matrix.Transpose()).Det()
}

// WellConditioned reports whether the undamped Gram matrix M * Mt is
// invertible at all. A cheap yes/no degeneracy check distinct from the
// ridge-damped PseudoInverse the allocator actually solves against, useful
// for flagging a misconfigured layout (fewer than six independent thruster
// axes) at construction time rather than a degraded solve downstream.
func (c *Config[Id]) WellConditioned() bool {
	_, err := c.matrix.Mul(c.matrix.Transpose()).Inverse()
	return err == nil
}

// Thruster looks up a thruster by Id; acceptable as an O(N) scan because
// N is at most a handful of thrusters in any real ROV layout.
func (c *Config[Id]) Thruster(id Id) (Thruster, bool) {
	for _, e := range c.entries {
		if e.Id == id {
			return e.Thruster, true
		}
	}
	return Thruster{}, false
}

// Thrusters returns an ordered snapshot of (Id, Thruster) pairs, sorted by
// Id per the Config invariant. The caller may not mutate the Config through
// it.
func (c *Config[Id]) Thrusters() []Entry[Id] {
	out := make([]Entry[Id], len(c.entries))
	copy(out, c.entries)
	return out
}

// columnIndex returns the column of Matrix/PseudoInverse that corresponds
// to id, or -1 if id is unknown. Entries are sorted, so this is the same
// order Erase assigns.
func (c *Config[Id]) columnIndex(id Id) int {
	for i, e := range c.entries {
		if e.Id == id {
			return i
		}
	}
	return -1
}
