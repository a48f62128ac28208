package hallway

import "testing"

func TestClassAtStripes(t *testing.T) {
	p := DefaultFloorPattern()
	for z := 0; z < 40; z++ {
		for _, x := range []int{1, 8} {
			if got := p.ClassAt(x, z); got != TileGrey {
				t.Errorf("stripe (%d,%d) = %v, want grey", x, z, got)
			}
		}
		for _, x := range []int{0, 2, 7, 9} {
			if got := p.ClassAt(x, z); got != TileBase {
				t.Errorf("(%d,%d) = %v, want base", x, z, got)
			}
		}
	}
}

func TestClassAtBand(t *testing.T) {
	p := DefaultFloorPattern()
	// One period of columns 3..6, row by row.
	want := [8]string{
		"bbbb",
		"bbbb",
		"pppp",
		"pggp",
		"pggp",
		"pggp",
		"pggp",
		"pppp",
	}
	classes := map[byte]TileClass{'b': TileBase, 'g': TileGrey, 'p': TilePink}
	for period := 0; period < 4; period++ {
		for row, line := range want {
			z := period*8 + row
			for i := 0; i < 4; i++ {
				x := 3 + i
				if got := p.ClassAt(x, z); got != classes[line[i]] {
					t.Errorf("(%d,%d) = %v, want %v", x, z, got, classes[line[i]])
				}
			}
		}
	}
}

func TestClassAtPinkOnlyInBand(t *testing.T) {
	p := DefaultFloorPattern()
	for x := 0; x < DefaultColumns; x++ {
		for z := 0; z < 64; z++ {
			if p.ClassAt(x, z) != TilePink {
				continue
			}
			if x < 3 || x > 6 {
				t.Fatalf("pink outside band at (%d,%d)", x, z)
			}
			row := z % 8
			if row < 2 {
				t.Fatalf("pink in base rows at (%d,%d)", x, z)
			}
			if row != 2 && row != 7 && x != 3 && x != 6 {
				t.Fatalf("pink in band interior at (%d,%d)", x, z)
			}
		}
	}
}

func TestClassAtDeterministic(t *testing.T) {
	p := DefaultFloorPattern()
	for x := 0; x < DefaultColumns; x++ {
		for z := -16; z < 48; z++ {
			a := p.ClassAt(x, z)
			if b := p.ClassAt(x, z); a != b {
				t.Fatalf("(%d,%d) not deterministic: %v vs %v", x, z, a, b)
			}
			if c := p.ClassAt(x, z+p.Period); a != c {
				t.Fatalf("(%d,%d) differs one period later: %v vs %v", x, z, a, c)
			}
		}
	}
}
