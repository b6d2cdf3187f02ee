package geometry

import (
	"github.com/itohio/thrustalloc/pkg/core/math/scalar"
	"github.com/itohio/thrustalloc/pkg/core/math/vec"
)

// BlueROVHeavyPosition names the eight mounting points of a BlueROV-Heavy
// layout: four replicas of the lateral seed and four of the vertical seed,
// each under the same {identity, YZ, XZ, YZ+XZ} reflection set.
type BlueROVHeavyPosition int

const (
	BlueROVLateralSeed BlueROVHeavyPosition = iota
	BlueROVLateralYZ
	BlueROVLateralXZ
	BlueROVLateralYZXZ
	BlueROVVerticalSeed
	BlueROVVerticalYZ
	BlueROVVerticalXZ
	BlueROVVerticalYZXZ
)

func (p BlueROVHeavyPosition) String() string {
	switch p {
	case BlueROVLateralSeed:
		return "LateralSeed"
	case BlueROVLateralYZ:
		return "LateralYZ"
	case BlueROVLateralXZ:
		return "LateralXZ"
	case BlueROVLateralYZXZ:
		return "LateralYZXZ"
	case BlueROVVerticalSeed:
		return "VerticalSeed"
	case BlueROVVerticalYZ:
		return "VerticalYZ"
	case BlueROVVerticalXZ:
		return "VerticalXZ"
	case BlueROVVerticalYZXZ:
		return "VerticalYZXZ"
	default:
		return "Unknown"
	}
}

// blueROVReplication is the reflection set every seed is replicated through,
// identical for the lateral and vertical seeds: treat the listed transforms
// as canonical rather than guessing at an asymmetric replication.
var blueROVReplication = [4][]Plane{
	{},
	{PlaneYZ},
	{PlaneXZ},
	{PlaneYZ, PlaneXZ},
}

// NewBlueROVHeavy builds the canonical 8-thruster BlueROV-Heavy layout from
// a lateral seed (yaw/sway authority) and a vertical seed (heave/roll/pitch
// authority), each replicated across the four corners via blueROVReplication.
func NewBlueROVHeavy(lateralSeed, verticalSeed Thruster, centerOfMass vec.Vector3[scalar.F32]) (*Config[BlueROVHeavyPosition], error) {
	lateralIds := [4]BlueROVHeavyPosition{BlueROVLateralSeed, BlueROVLateralYZ, BlueROVLateralXZ, BlueROVLateralYZXZ}
	verticalIds := [4]BlueROVHeavyPosition{BlueROVVerticalSeed, BlueROVVerticalYZ, BlueROVVerticalXZ, BlueROVVerticalYZXZ}

	entries := make([]Entry[BlueROVHeavyPosition], 0, 8)
	for i, planes := range blueROVReplication {
		entries = append(entries, Entry[BlueROVHeavyPosition]{Id: lateralIds[i], Thruster: reflect(lateralSeed, planes...)})
		entries = append(entries, Entry[BlueROVHeavyPosition]{Id: verticalIds[i], Thruster: reflect(verticalSeed, planes...)})
	}
	return NewRaw(entries, centerOfMass)
}
