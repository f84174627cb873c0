// Package rotor owns the global DOF numbering for a chain of two-node rotor
// elements and scatters each element's characteristic matrices into the
// global system matrices. It depends only on the element contract, never on
// concrete element types.
package rotor

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/jamesgarvey93/ross/element"
)

// Assembly maps a slice of elements onto a shared node numbering. Elements
// with a pre-assigned node index keep it; the rest are numbered by their
// position in the slice. All elements must declare the same per-node DOF
// count, since a single rotor model has one DOF convention.
type Assembly struct {
	elems []element.Element
	ndof  int
	nodes int
}

// NewAssembly validates the element set and fixes the node numbering.
func NewAssembly(elems []element.Element) (*Assembly, error) {
	if len(elems) == 0 {
		return nil, fmt.Errorf("rotor: assembly needs at least one element")
	}
	ndof := elems[0].NDof()
	for i, e := range elems {
		if e.NDof() != ndof {
			return nil, fmt.Errorf(
				"rotor: element %d has %d DOFs per node, assembly uses %d",
				i, e.NDof(), ndof)
		}
		if _, _, ok := e.Nodes(); !ok {
			e.SetNode(i)
		}
	}

	nodes := 0
	for _, e := range elems {
		_, nr, _ := e.Nodes()
		if nr+1 > nodes {
			nodes = nr + 1
		}
	}
	return &Assembly{elems: elems, ndof: ndof, nodes: nodes}, nil
}

// NDof returns the per-node DOF count shared by all elements.
func (a *Assembly) NDof() int { return a.ndof }

// Nodes returns the number of nodes covered by the assembly.
func (a *Assembly) Nodes() int { return a.nodes }

// Size returns the global matrix dimension.
func (a *Assembly) Size() int { return a.nodes * a.ndof }

// M returns the global mass matrix.
func (a *Assembly) M() *mat.Dense {
	return a.scatter(func(e element.Element) mat.Matrix { return e.M() })
}

// K returns the global stiffness matrix.
func (a *Assembly) K() *mat.Dense {
	return a.scatter(func(e element.Element) mat.Matrix { return e.K() })
}

// C returns the global damping matrix.
func (a *Assembly) C() *mat.Dense {
	return a.scatter(func(e element.Element) mat.Matrix { return e.C() })
}

// G returns the global gyroscopic matrix.
func (a *Assembly) G() *mat.Dense {
	return a.scatter(func(e element.Element) mat.Matrix { return e.G() })
}

// Kst returns the global stiffening matrix. Elements without a stiffening
// capability contribute nothing.
func (a *Assembly) Kst() *mat.Dense {
	return a.scatter(func(e element.Element) mat.Matrix {
		if st, ok := e.(element.StiffeningElement); ok {
			return st.Kst()
		}
		return nil
	})
}

// scatter sums each element's local matrix into a fresh global matrix.
// Local DOF i of an element whose left node is nl lands at global row
// nl*ndof + i: the element spans two consecutive nodes, so its local block
// is contiguous in the global numbering.
func (a *Assembly) scatter(local func(element.Element) mat.Matrix) *mat.Dense {
	sys := mat.NewDense(a.Size(), a.Size(), nil)
	dim := 2 * a.ndof
	for _, e := range a.elems {
		lm := local(e)
		if lm == nil {
			continue
		}
		nl, _, _ := e.Nodes()
		base := nl * a.ndof
		for i := 0; i < dim; i++ {
			for j := 0; j < dim; j++ {
				if v := lm.At(i, j); v != 0 {
					sys.Set(base+i, base+j, sys.At(base+i, base+j)+v)
				}
			}
		}
	}
	return sys
}
