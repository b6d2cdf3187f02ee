package geometry

import "cmp"

// Codec recovers the typed Id a column of an erased Config used to carry,
// the inverse half of Config.Erase. It is the "type-tag outside a hot
// struct" pattern: a thin, separately-held conversion table rather than a
// field living inside the erased Config itself.
type Codec[Id cmp.Ordered] struct {
	ids []Id
}

// Unerase recovers the typed Id a u8 column index stood in for. Fails if id
// is out of range for the Config that produced this Codec.
func (c Codec[Id]) Unerase(id uint8) (Id, error) {
	var zero Id
	if int(id) >= len(c.ids) {
		return zero, ErrUnerase
	}
	return c.ids[id], nil
}

// Erase re-keys a Config by its thrusters' sorted position (0..N-1) instead
// of the typed Id, for transport layers that need a primitive key. The
// matrix and pseudo-inverse are carried over unchanged — only the keying
// changes. Fails if the Config has more thrusters than fit in a u8.
func (c *Config[Id]) Erase() (*Config[uint8], Codec[Id], error) {
	if len(c.entries) > 256 {
		return nil, Codec[Id]{}, ErrInvalidGeometry
	}

	codec := Codec[Id]{ids: make([]Id, len(c.entries))}
	erasedEntries := make([]Entry[uint8], len(c.entries))
	for i, e := range c.entries {
		codec.ids[i] = e.Id
		erasedEntries[i] = Entry[uint8]{Id: uint8(i), Thruster: e.Thruster}
	}

	erased := &Config[uint8]{
		entries:       erasedEntries,
		matrix:        c.matrix,
		pseudoInverse: c.pseudoInverse,
		centerOfMass:  c.centerOfMass,
	}
	return erased, codec, nil
}
