// Package element implements the local matrix formulation of rotor-shaft
// elements for a finite-element rotordynamics model. Each element joins two
// adjacent nodes (stations) of the rotor and contributes localized mass,
// stiffness, damping and gyroscopic effects through its characteristic
// matrices, which a rotor assembly scatters into the global system matrices.
package element

import "gonum.org/v1/gonum/mat"

// Per-node DOF counts of the supported element variants. The local DOF
// ordering is [x, y, θx, θy] for 4-DOF elements and [x, y, z, θx, θy, θz]
// for 6-DOF elements, left station first.
const (
	FourDoF = 4
	SixDoF  = 6
)

// NodeUnset marks an element whose left node index has not been assigned yet.
const NodeUnset = -1

// Element is the contract every two-node rotor element satisfies. Callers
// select a variant through NDof, never through the concrete type.
//
// The four matrix operations are pure: they read only the element's
// immutable parameters and allocate a fresh (2*NDof)×(2*NDof) result on
// every call, so distinct elements may be evaluated concurrently without
// synchronization.
type Element interface {
	// NDof returns the number of local DOFs per node (FourDoF or SixDoF).
	NDof() int

	// SetNode assigns the left node index; the right node index is always
	// the left one plus one. Called by the assembly for elements that were
	// constructed without a node number.
	SetNode(n int)

	// Nodes returns the left and right node indices. ok is false until a
	// node number has been assigned.
	Nodes() (nl, nr int, ok bool)

	Length() float64
	Tag() string
	Color() string

	// Characteristic matrices in local coordinates.
	M() mat.Matrix // mass: symmetric, block diagonal per station
	K() mat.Matrix // stiffness: symmetric, cross-station coupling
	C() mat.Matrix // damping: symmetric, cross-station coupling
	G() mat.Matrix // gyroscopic: skew-symmetric, block diagonal per station
}

// StiffeningElement is implemented by 6-DOF elements, which additionally
// report a geometric-stiffening matrix.
type StiffeningElement interface {
	Element

	// Kst returns the stiffening matrix from axial load. For elements that
	// carry no such load it is the zero matrix of the element's dimension.
	Kst() mat.Matrix
}

// BeamGeometer is implemented by elements that can report beam geometry for
// center-of-gravity and slenderness heuristics. Elements without real beam
// geometry (couplings) return ok == false instead of sentinel magnitudes.
type BeamGeometer interface {
	BeamGeometry() (cg, slenderness float64, ok bool)
}
