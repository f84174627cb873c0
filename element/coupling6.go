package element

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Coupling6Params collects the physical parameters of a 6-DOF coupling
// element. It extends the 4-DOF set with an axial translation channel (z)
// and a torsional rotation channel (θz). All quantities are SI.
type Coupling6Params struct {
	ML, MR   float64 // point mass at the left/right station (kg), required
	IpL, IpR float64 // polar moment of inertia per station (kg·m²), required

	// Diametral moments of inertia per station (kg·m²). Zero means "not
	// supplied" and defaults to half the corresponding polar moment.
	IdL, IdR float64

	// Stiffness per channel: translational x/y, axial z (N/m); rotational
	// x/y, torsional z (N·m/rad). Zero decouples the stations in that
	// direction, e.g. kr_z = 0 models a joint transmitting no torque.
	KtX, KtY, KtZ float64
	KrX, KrY, KrZ float64

	// Damping per channel, mirroring the stiffness set.
	CtX, CtY, CtZ float64
	CrX, CrY, CrZ float64

	L     float64 // element length (m), optional
	Tag   string  // display name, optional
	Color string  // rendering hint, defaults to DefaultColor
}

// Coupling6 is a two-node coupling element with 6 DOFs per node
// [x, y, z, θx, θy, θz], local dimension 12. Beyond the planar-bending
// behavior of Coupling it carries axial and torsional inertia, stiffness
// and damping.
type Coupling6 struct {
	p    Coupling6Params
	node int
}

var (
	_ StiffeningElement = (*Coupling6)(nil)
	_ BeamGeometer      = (*Coupling6)(nil)
)

// NewCoupling6 validates the required inertial parameters, applies defaults
// and returns the element with its node index unassigned.
func NewCoupling6(p Coupling6Params) (*Coupling6, error) {
	if err := checkInertials(p.ML, p.MR, p.IpL, p.IpR); err != nil {
		return nil, err
	}
	applyStationDefaults(&p.IdL, &p.IdR, p.IpL, p.IpR, &p.Color)
	return &Coupling6{p: p, node: NodeUnset}, nil
}

func (c *Coupling6) NDof() int { return SixDoF }

// SetNode assigns the left node index, fixing the right one at n+1.
func (c *Coupling6) SetNode(n int) { c.node = n }

// Nodes returns the node pair the element joins; ok is false while the
// index is unassigned.
func (c *Coupling6) Nodes() (nl, nr int, ok bool) {
	if c.node == NodeUnset {
		return 0, 0, false
	}
	return c.node, c.node + 1, true
}

func (c *Coupling6) Length() float64 { return c.p.L }
func (c *Coupling6) Tag() string     { return c.p.Tag }
func (c *Coupling6) Color() string   { return c.p.Color }

// Mass returns the total mass of the element.
func (c *Coupling6) Mass() float64 { return c.p.ML + c.p.MR }

// Im returns the combined diametral inertia, used by assembly heuristics.
func (c *Coupling6) Im() float64 { return c.p.IdL + c.p.IdR }

// BeamGeometry reports that a coupling has no beam geometry.
func (c *Coupling6) BeamGeometry() (cg, slenderness float64, ok bool) {
	return 0, 0, false
}

// M returns the 12×12 mass matrix: block diagonal, each station carrying its
// point mass on the three translational DOFs, diametral inertia on the two
// transverse rotations and polar inertia on the torsional DOF.
func (c *Coupling6) M() mat.Matrix {
	M := mat.NewDense(12, 12, nil)
	for s, st := range [2]struct{ m, id, ip float64 }{
		{c.p.ML, c.p.IdL, c.p.IpL},
		{c.p.MR, c.p.IdR, c.p.IpR},
	} {
		o := SixDoF * s
		M.Set(o, o, st.m)
		M.Set(o+1, o+1, st.m)
		M.Set(o+2, o+2, st.m)
		M.Set(o+3, o+3, st.id)
		M.Set(o+4, o+4, st.id)
		M.Set(o+5, o+5, st.ip)
	}
	return M
}

// K returns the 12×12 stiffness matrix: one [[k, -k], [-k, k]] spring
// pattern per channel {kt_x, kt_y, kt_z, kr_x, kr_y, kr_z}.
func (c *Coupling6) K() mat.Matrix {
	return spring(c.p.KtX, c.p.KtY, c.p.KtZ, c.p.KrX, c.p.KrY, c.p.KrZ)
}

// C returns the 12×12 damping matrix, structurally identical to K.
func (c *Coupling6) C() mat.Matrix {
	return spring(c.p.CtX, c.p.CtY, c.p.CtZ, c.p.CrX, c.p.CrY, c.p.CrZ)
}

// G returns the 12×12 gyroscopic matrix: per-station skew-symmetric coupling
// of the two transverse rotational DOFs through that station's polar
// inertia, zero everywhere else.
func (c *Coupling6) G() mat.Matrix {
	G := mat.NewDense(12, 12, nil)
	for s, ip := range [2]float64{c.p.IpL, c.p.IpR} {
		o := SixDoF * s
		G.Set(o+3, o+4, -ip)
		G.Set(o+4, o+3, ip)
	}
	return G
}

// Kst returns the 12×12 zero matrix: a coupling transmits no
// centrifugal/geometric-stiffening load, unlike a loaded beam segment.
func (c *Coupling6) Kst() mat.Matrix {
	return mat.NewDense(12, 12, nil)
}

func (c *Coupling6) String() string {
	nl := "unset"
	if c.node != NodeUnset {
		nl = fmt.Sprintf("%d", c.node)
	}
	return fmt.Sprintf("Coupling6(L=%.5g, n=%s)", c.p.L, nl)
}
