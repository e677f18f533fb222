package core

import "testing"

func TestWrapToroidal(t *testing.T) {
	cases := []struct{ i, n, want int }{
		{0, 3, 0},
		{-1, 3, 2},
		{3, 3, 0},
		{-4, 3, 2},
		{7, 3, 1},
	}
	for _, c := range cases {
		if got := Wrap(c.i, c.n); got != c.want {
			t.Fatalf("Wrap(%d, %d) = %d, expected %d", c.i, c.n, got, c.want)
		}
	}

	g := NewByteGrid(9, 3)
	x, y := g.Wrap(-1, 4)
	if x != 8 || y != 1 {
		t.Fatalf("grid wrap gave (%d,%d), expected (8,1)", x, y)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	g := NewByteGrid(3, 2)
	g.Set(1, 1, 2)
	c := g.Clone()
	if !c.Equal(g) {
		t.Fatal("clone should equal source")
	}
	c.Set(0, 0, 1)
	if g.At(0, 0) != 0 {
		t.Fatal("mutating clone leaked into source")
	}
	if c.Equal(g) {
		t.Fatal("grids should differ after mutation")
	}
	if !g.CopyFrom(c) || !g.Equal(c) {
		t.Fatal("CopyFrom should restore equality")
	}
	if g.CopyFrom(NewByteGrid(2, 2)) {
		t.Fatal("CopyFrom must reject mismatched dimensions")
	}
}
