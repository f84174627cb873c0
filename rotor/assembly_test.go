package rotor

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jamesgarvey93/ross/element"
)

func coupling(t *testing.T, p element.CouplingParams) *element.Coupling {
	t.Helper()
	c, err := element.NewCoupling(p)
	if err != nil {
		t.Fatalf("NewCoupling: %v", err)
	}
	return c
}

func TestAssemblyNumbering(t *testing.T) {
	a := coupling(t, element.CouplingParams{ML: 1, MR: 1, IpL: 2, IpR: 2})
	b := coupling(t, element.CouplingParams{ML: 1, MR: 1, IpL: 2, IpR: 2})

	asm, err := NewAssembly([]element.Element{a, b})
	if err != nil {
		t.Fatalf("NewAssembly: %v", err)
	}

	nl, nr, ok := a.Nodes()
	assert.True(t, ok)
	assert.Equal(t, 0, nl)
	assert.Equal(t, 1, nr)

	nl, nr, ok = b.Nodes()
	assert.True(t, ok)
	assert.Equal(t, 1, nl)
	assert.Equal(t, 2, nr)

	assert.Equal(t, 3, asm.Nodes())
	assert.Equal(t, 12, asm.Size())
}

func TestAssemblyKeepsAssignedNodes(t *testing.T) {
	a := coupling(t, element.CouplingParams{ML: 1, MR: 1, IpL: 2, IpR: 2})
	a.SetNode(4)

	asm, err := NewAssembly([]element.Element{a})
	if err != nil {
		t.Fatalf("NewAssembly: %v", err)
	}
	nl, _, _ := a.Nodes()
	assert.Equal(t, 4, nl)
	assert.Equal(t, 6, asm.Nodes(), "nodes 0..5 exist once element sits at 4-5")
}

// TestAssemblySharedNodeSum checks that two elements meeting at a node sum
// their contributions there: masses add at the shared node, and the
// stiffness coupling pattern of each element lands in its own block.
func TestAssemblySharedNodeSum(t *testing.T) {
	a := coupling(t, element.CouplingParams{ML: 1, MR: 2, IpL: 2, IpR: 2, KtX: 5})
	b := coupling(t, element.CouplingParams{ML: 3, MR: 4, IpL: 2, IpR: 2, KtX: 7})

	asm, err := NewAssembly([]element.Element{a, b})
	if err != nil {
		t.Fatalf("NewAssembly: %v", err)
	}

	M := asm.M()
	assert.InDelta(t, 1.0, M.At(0, 0), 1e-12, "node 0 x mass")
	assert.InDelta(t, 5.0, M.At(4, 4), 1e-12, "shared node sums 2+3")
	assert.InDelta(t, 4.0, M.At(8, 8), 1e-12, "node 2 x mass")

	K := asm.K()
	assert.InDelta(t, 5.0, K.At(0, 0), 1e-12)
	assert.InDelta(t, -5.0, K.At(0, 4), 1e-12)
	assert.InDelta(t, 12.0, K.At(4, 4), 1e-12, "shared node sums 5+7")
	assert.InDelta(t, -7.0, K.At(4, 8), 1e-12)
	assert.InDelta(t, 7.0, K.At(8, 8), 1e-12)
}

func TestAssemblyRejectsMixedDof(t *testing.T) {
	a := coupling(t, element.CouplingParams{ML: 1, MR: 1, IpL: 2, IpR: 2})
	b6, err := element.NewCoupling6(element.Coupling6Params{ML: 1, MR: 1, IpL: 2, IpR: 2})
	if err != nil {
		t.Fatalf("NewCoupling6: %v", err)
	}

	_, err = NewAssembly([]element.Element{a, b6})
	assert.Error(t, err)
}

func TestAssemblyRejectsEmpty(t *testing.T) {
	_, err := NewAssembly(nil)
	assert.Error(t, err)
}

func TestAssemblyStiffening(t *testing.T) {
	t.Run("4-DOF assembly has no stiffening contributions", func(t *testing.T) {
		a := coupling(t, element.CouplingParams{ML: 1, MR: 1, IpL: 2, IpR: 2})
		asm, err := NewAssembly([]element.Element{a})
		if err != nil {
			t.Fatalf("NewAssembly: %v", err)
		}
		Kst := asm.Kst()
		for i := 0; i < asm.Size(); i++ {
			for j := 0; j < asm.Size(); j++ {
				assert.Zero(t, Kst.At(i, j))
			}
		}
	})
	t.Run("6-DOF coupling contributes zero stiffening", func(t *testing.T) {
		c6, err := element.NewCoupling6(element.Coupling6Params{ML: 1, MR: 1, IpL: 2, IpR: 2})
		if err != nil {
			t.Fatalf("NewCoupling6: %v", err)
		}
		asm, err := NewAssembly([]element.Element{c6})
		if err != nil {
			t.Fatalf("NewAssembly: %v", err)
		}
		Kst := asm.Kst()
		for i := 0; i < asm.Size(); i++ {
			for j := 0; j < asm.Size(); j++ {
				assert.Zero(t, Kst.At(i, j))
			}
		}
	})
}

// TestAssemblyGyroscopic checks the skew pattern survives scattering.
func TestAssemblyGyroscopic(t *testing.T) {
	a := coupling(t, element.CouplingParams{ML: 1, MR: 1, IpL: 2, IpR: 3})
	asm, err := NewAssembly([]element.Element{a})
	if err != nil {
		t.Fatalf("NewAssembly: %v", err)
	}
	G := asm.G()
	assert.InDelta(t, -2.0, G.At(2, 3), 1e-12)
	assert.InDelta(t, 2.0, G.At(3, 2), 1e-12)
	assert.InDelta(t, -3.0, G.At(6, 7), 1e-12)
	assert.InDelta(t, 3.0, G.At(7, 6), 1e-12)
}
