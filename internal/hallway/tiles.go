package hallway

// TileClass selects one of the shared floor materials.
type TileClass int

const (
	TileBase TileClass = iota
	TileGrey
	TilePink
)

func (c TileClass) String() string {
	switch c {
	case TileBase:
		return "base"
	case TileGrey:
		return "grey"
	case TilePink:
		return "pink"
	}
	return "unknown"
}

// ClassAt returns the material class of tile (x, z). It depends only on x
// and z mod Period, so every segment and every period repeats the motif.
func (p FloorPattern) ClassAt(x, z int) TileClass {
	class := TileBase
	for _, s := range p.StripeColumns {
		if x == s {
			class = TileGrey
			break
		}
	}
	if x < p.BandStart || x > p.BandEnd {
		return class
	}

	row := z % p.Period
	if row < 0 {
		row += p.Period
	}
	if row < p.BaseRows {
		return class
	}
	if row == p.BaseRows || row == p.Period-1 || x == p.BandStart || x == p.BandEnd {
		return TilePink
	}
	return TileGrey
}
