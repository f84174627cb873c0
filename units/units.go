// Package units converts tagged physical quantities into the plain SI values
// the element package expects. It is the validation boundary in front of
// element construction: a value that passes Convert is guaranteed to be a
// finite number in the SI base unit of its dimension, so the element core
// never has to reason about units.
package units

import (
	"fmt"
	"math"
)

// Dimension identifies the physical dimension a quantity must carry.
type Dimension uint8

const (
	Mass Dimension = iota
	Inertia
	TransStiffness
	RotStiffness
	TransDamping
	RotDamping
	Length
)

// Exact conversion constants.
const (
	poundMass  = 0.45359237      // kg per lb
	poundForce = 4.4482216152605 // N per lbf
	inch       = 0.0254          // m per in
	foot       = 0.3048          // m per ft
)

var siNames = map[Dimension]string{
	Mass:           "kg",
	Inertia:        "kg*m^2",
	TransStiffness: "N/m",
	RotStiffness:   "N*m/rad",
	TransDamping:   "N*s/m",
	RotDamping:     "N*m*s/rad",
	Length:         "m",
}

// factors maps, per dimension, each accepted unit spelling to its SI factor.
var factors = map[Dimension]map[string]float64{
	Mass: {
		"kg": 1, "g": 1e-3, "t": 1e3, "lb": poundMass,
	},
	Inertia: {
		"kg*m^2":  1,
		"g*cm^2":  1e-3 * 1e-4,
		"lb*in^2": poundMass * inch * inch,
	},
	TransStiffness: {
		"N/m": 1, "kN/m": 1e3, "MN/m": 1e6,
		"lbf/in": poundForce / inch,
	},
	RotStiffness: {
		"N*m/rad": 1, "kN*m/rad": 1e3,
		"lbf*ft/rad": poundForce * foot,
		"lbf*in/rad": poundForce * inch,
	},
	TransDamping: {
		"N*s/m": 1, "kN*s/m": 1e3,
		"lbf*s/in": poundForce / inch,
	},
	RotDamping: {
		"N*m*s/rad":    1,
		"lbf*ft*s/rad": poundForce * foot,
	},
	Length: {
		"m": 1, "cm": 1e-2, "mm": 1e-3, "in": inch, "ft": foot,
	},
}

// SI returns the base unit spelling for a dimension.
func SI(dim Dimension) string { return siNames[dim] }

// Convert returns value expressed in the SI base unit of dim. It fails for
// a unit spelling it does not know, for a unit of the wrong dimension, and
// for non-finite values.
func Convert(value float64, unit string, dim Dimension) (float64, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, fmt.Errorf("units: value %v is not a finite number", value)
	}
	table, ok := factors[dim]
	if !ok {
		return 0, fmt.Errorf("units: unknown dimension %d", dim)
	}
	f, ok := table[unit]
	if !ok {
		if knownUnit(unit) {
			return 0, fmt.Errorf("units: %q is not a %s unit", unit, siNames[dim])
		}
		return 0, fmt.Errorf("units: unknown unit %q", unit)
	}
	return value * f, nil
}

// MustConvert is Convert for values known good at compile time, typically
// literals in model-definition code.
func MustConvert(value float64, unit string, dim Dimension) float64 {
	v, err := Convert(value, unit, dim)
	if err != nil {
		panic(err)
	}
	return v
}

// knownUnit reports whether any dimension accepts the unit spelling.
func knownUnit(unit string) bool {
	for _, table := range factors {
		if _, ok := table[unit]; ok {
			return true
		}
	}
	return false
}
