package perf

import (
	"errors"
	"sort"

	"github.com/chewxy/math32"
	"github.com/itohio/thrustalloc/pkg/core/math/scalar"
)

// ErrInvalidTable covers every condition that aborts table construction: a
// CSV parse failure, or a row set that dedup leaves empty.
var ErrInvalidTable = errors.New("perf: invalid performance table")

// Table holds two sorted, deduplicated views of the same measured rows: one
// ordered by force, one by signed current (current*sign(force)). It is
// built once and is immutable thereafter.
type Table struct {
	byForce         []Record[scalar.F32]
	bySignedCurrent []Record[scalar.F32]
}

// NewTable builds both indices from an unordered set of rows.
func NewTable(rows []Record[scalar.F32]) (*Table, error) {
	byForce := dedupSortedBy(rows, func(r Record[scalar.F32]) float32 { return r.Force.Re() })
	if len(byForce) < 1 {
		return nil, ErrInvalidTable
	}
	bySignedCurrent := dedupSortedBy(rows, Record[scalar.F32].signedCurrent)
	if len(bySignedCurrent) < 1 {
		return nil, ErrInvalidTable
	}
	return &Table{byForce: byForce, bySignedCurrent: bySignedCurrent}, nil
}

func dedupSortedBy(rows []Record[scalar.F32], keyOf func(Record[scalar.F32]) float32) []Record[scalar.F32] {
	sorted := make([]Record[scalar.F32], len(rows))
	copy(sorted, rows)
	sort.SliceStable(sorted, func(i, j int) bool {
		return totalOrderLess(keyOf(sorted[i]), keyOf(sorted[j]))
	})
	out := sorted[:0:0]
	for i, r := range sorted {
		if i > 0 && keyOf(r) == keyOf(sorted[i-1]) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// ByForce looks up a record for the given signed force. Tables with a
// single row are clamped to that row.
func ByForce[D scalar.Number[D]](t *Table, value D, interp Interpolation) (Record[D], error) {
	return lookup(t.byForce, func(r Record[scalar.F32]) float32 { return r.Force.Re() }, value, interp)
}

// BySignedCurrent looks up a record for the given current*sign(force).
func BySignedCurrent[D scalar.Number[D]](t *Table, value D, interp Interpolation) (Record[D], error) {
	return lookup(t.bySignedCurrent, Record[scalar.F32].signedCurrent, value, interp)
}

func lookup[D scalar.Number[D]](rows []Record[scalar.F32], keyOf func(Record[scalar.F32]) float32, value D, interp Interpolation) (Record[D], error) {
	if len(rows) == 0 {
		var zero Record[D]
		return zero, ErrInvalidTable
	}

	var out Record[D]
	if len(rows) == 1 {
		out = widen[D](rows[0])
	} else {
		vr := value.Re()
		i := sort.Search(len(rows), func(k int) bool { return keyOf(rows[k]) >= vr })
		if i < 1 {
			i = 1
		}
		if i > len(rows)-1 {
			i = len(rows) - 1
		}
		a, b := rows[i-1], rows[i]

		switch interp.method {
		case methodNearest:
			if math32.Abs(keyOf(a)-vr) <= math32.Abs(keyOf(b)-vr) {
				out = widen[D](a)
			} else {
				out = widen[D](b)
			}
		default:
			out = lerpRecord[D](a, b, value, keyOf)
		}
	}

	if interp.hasDir && interp.dir.Sign() < 0 {
		var zero D
		out.PWM = zero.FromF32(3000).Sub(out.PWM)
	}
	return out, nil
}

// lerpRecord linearly interpolates every field of a and b with
// alpha = (value - a.key) / (b.key - a.key), computed in D so that a Dual
// value propagates its gradient through alpha and every interpolated field.
func lerpRecord[D scalar.Number[D]](a, b Record[scalar.F32], value D, keyOf func(Record[scalar.F32]) float32) Record[D] {
	var zero D
	aKey := zero.FromF32(keyOf(a))
	bKey := zero.FromF32(keyOf(b))
	alpha := value.Sub(aKey).Div(bKey.Sub(aKey))

	lerp := func(af, bf float32) D {
		aD := zero.FromF32(af)
		bD := zero.FromF32(bf)
		return aD.Add(bD.Sub(aD).Mul(alpha))
	}

	return Record[D]{
		PWM:        lerp(float32(a.PWM), float32(b.PWM)),
		RPM:        lerp(float32(a.RPM), float32(b.RPM)),
		Current:    lerp(float32(a.Current), float32(b.Current)),
		Voltage:    lerp(float32(a.Voltage), float32(b.Voltage)),
		Power:      lerp(float32(a.Power), float32(b.Power)),
		Force:      lerp(float32(a.Force), float32(b.Force)),
		Efficiency: lerp(float32(a.Efficiency), float32(b.Efficiency)),
	}
}
