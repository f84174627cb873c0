package element

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// DefaultColor is the rendering hint used when a coupling is constructed
// without an explicit color.
const DefaultColor = "#add8e6"

// CouplingParams collects the physical parameters of a 4-DOF coupling
// element. All quantities are plain SI values; unit conversion happens in
// the units package before construction.
type CouplingParams struct {
	ML, MR   float64 // point mass at the left/right station (kg), required
	IpL, IpR float64 // polar moment of inertia per station (kg·m²), required

	// Diametral moments of inertia per station (kg·m²). A zero value means
	// "not supplied" and defaults to half the corresponding polar moment,
	// so a deliberately zero diametral inertia cannot be expressed.
	IdL, IdR float64

	// Per-channel stiffness: translational in x/y (N/m), rotational about
	// x/y (N·m/rad). A zero coefficient leaves the two stations mechanically
	// decoupled in that direction.
	KtX, KtY float64
	KrX, KrY float64

	// Per-channel damping, mirroring the stiffness set (N·s/m, N·m·s/rad).
	CtX, CtY float64
	CrX, CrY float64

	L     float64 // element length (m), optional
	Tag   string  // display name, optional
	Color string  // rendering hint, defaults to DefaultColor
}

// Coupling is a two-node coupling element with 4 DOFs per node
// [x, y, θx, θy], local dimension 8. It joins two shaft segments through
// lumped masses and inertias at each station and independent per-direction
// springs and dampers between the stations. Parameters are immutable after
// construction; only the node index may be assigned later.
type Coupling struct {
	p    CouplingParams
	node int
}

var (
	_ Element      = (*Coupling)(nil)
	_ BeamGeometer = (*Coupling)(nil)
)

// NewCoupling validates the required inertial parameters, applies defaults
// and returns the element with its node index unassigned. Zero stiffness and
// damping everywhere is legal: that is a purely inertial connector.
func NewCoupling(p CouplingParams) (*Coupling, error) {
	if err := checkInertials(p.ML, p.MR, p.IpL, p.IpR); err != nil {
		return nil, err
	}
	applyStationDefaults(&p.IdL, &p.IdR, p.IpL, p.IpR, &p.Color)
	return &Coupling{p: p, node: NodeUnset}, nil
}

func (c *Coupling) NDof() int { return FourDoF }

// SetNode assigns the left node index, fixing the right one at n+1.
func (c *Coupling) SetNode(n int) { c.node = n }

// Nodes returns the node pair the element joins; ok is false while the
// index is unassigned.
func (c *Coupling) Nodes() (nl, nr int, ok bool) {
	if c.node == NodeUnset {
		return 0, 0, false
	}
	return c.node, c.node + 1, true
}

func (c *Coupling) Length() float64 { return c.p.L }
func (c *Coupling) Tag() string     { return c.p.Tag }
func (c *Coupling) Color() string   { return c.p.Color }

// Mass returns the total mass of the element.
func (c *Coupling) Mass() float64 { return c.p.ML + c.p.MR }

// Im returns the combined diametral inertia, used by assembly heuristics.
func (c *Coupling) Im() float64 { return c.p.IdL + c.p.IdR }

// BeamGeometry reports that a coupling has no beam geometry.
func (c *Coupling) BeamGeometry() (cg, slenderness float64, ok bool) {
	return 0, 0, false
}

// M returns the 8×8 mass matrix: block diagonal, each station carrying its
// own point mass on the translational DOFs and diametral inertia on the
// rotational DOFs. Inertia is never shared across stations.
func (c *Coupling) M() mat.Matrix {
	M := mat.NewDense(8, 8, nil)
	for s, st := range [2]struct{ m, id float64 }{
		{c.p.ML, c.p.IdL},
		{c.p.MR, c.p.IdR},
	} {
		o := FourDoF * s
		M.Set(o, o, st.m)
		M.Set(o+1, o+1, st.m)
		M.Set(o+2, o+2, st.id)
		M.Set(o+3, o+3, st.id)
	}
	return M
}

// K returns the 8×8 stiffness matrix: the direct sum of one
// [[k, -k], [-k, k]] spring pattern per channel {kt_x, kt_y, kr_x, kr_y},
// linking the same direction at the two stations.
func (c *Coupling) K() mat.Matrix {
	return spring(c.p.KtX, c.p.KtY, c.p.KrX, c.p.KrY)
}

// C returns the 8×8 damping matrix, structurally identical to K with each
// stiffness coefficient replaced by its damping counterpart.
func (c *Coupling) C() mat.Matrix {
	return spring(c.p.CtX, c.p.CtY, c.p.CrX, c.p.CrY)
}

// G returns the 8×8 gyroscopic matrix: skew-symmetric within each station
// block, coupling that station's two rotational DOFs through its own polar
// inertia, with no cross-station terms.
func (c *Coupling) G() mat.Matrix {
	G := mat.NewDense(8, 8, nil)
	for s, ip := range [2]float64{c.p.IpL, c.p.IpR} {
		o := FourDoF * s
		G.Set(o+2, o+3, -ip)
		G.Set(o+3, o+2, ip)
	}
	return G
}

func (c *Coupling) String() string {
	nl := "unset"
	if c.node != NodeUnset {
		nl = fmt.Sprintf("%d", c.node)
	}
	return fmt.Sprintf("Coupling(L=%.5g, n=%s)", c.p.L, nl)
}

// spring assembles the direct sum of per-channel [[k, -k], [-k, k]] blocks:
// channel i occupies local DOF i at the left station and i+n at the right
// station. Used for both stiffness and damping of both variants.
func spring(coeffs ...float64) *mat.Dense {
	n := len(coeffs)
	K := mat.NewDense(2*n, 2*n, nil)
	for i, k := range coeffs {
		K.Set(i, i, k)
		K.Set(n+i, n+i, k)
		K.Set(i, n+i, -k)
		K.Set(n+i, i, -k)
	}
	return K
}

// checkInertials enforces the required parameters: masses and polar inertias
// have no physical default, so an unset (zero) or negative value fails
// construction.
func checkInertials(mL, mR, ipL, ipR float64) error {
	for _, q := range []struct {
		name string
		v    float64
	}{
		{"m_l", mL}, {"m_r", mR}, {"Ip_l", ipL}, {"Ip_r", ipR},
	} {
		if q.v <= 0 {
			return fmt.Errorf("coupling: %s must be positive, got %v", q.name, q.v)
		}
	}
	return nil
}

// applyStationDefaults fills the optional per-station parameters: diametral
// inertias default to half the polar inertia when left at zero, the color
// defaults to DefaultColor when empty.
func applyStationDefaults(idL, idR *float64, ipL, ipR float64, color *string) {
	if *idL == 0 {
		*idL = ipL / 2
	}
	if *idR == 0 {
		*idR = ipR / 2
	}
	if *color == "" {
		*color = DefaultColor
	}
}
