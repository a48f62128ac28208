package player

import (
	"math"
	"testing"
)

type keys struct {
	left, right, jump bool
}

func (k *keys) Left() bool  { return k.left }
func (k *keys) Right() bool { return k.right }
func (k *keys) Jump() bool {
	j := k.jump
	k.jump = false
	return j
}

func TestRestsOnGround(t *testing.T) {
	p := New(DefaultConfig(), 14)
	in := &keys{}
	for _n := 0; _n < 120; _n++ {
		if st := p.Update(1.0/60, in); st.Jumped || st.Landed {
			t.Fatalf("idle step reported %+v", st)
		}
	}
	if p.Y != 1 || p.VelY != 0 {
		t.Errorf("y=%v vel=%v, want resting on ground", p.Y, p.VelY)
	}
	if !p.Grounded() {
		t.Error("should be grounded")
	}
}

func TestJumpArc(t *testing.T) {
	cfg := DefaultConfig()
	p := New(cfg, 14)
	in := &keys{jump: true}
	const dt = 1.0 / 120

	st := p.Update(dt, in)
	if !st.Jumped {
		t.Fatal("jump not reported")
	}

	peak := p.Y
	landed := false
	for i := 0; i < 600; i++ {
		st = p.Update(dt, in)
		peak = math.Max(peak, p.Y)
		if st.Landed {
			landed = true
			break
		}
	}
	if !landed {
		t.Fatal("never landed")
	}
	// v^2 / 2g above ground, within integration error.
	want := cfg.GroundY + cfg.JumpVelocity*cfg.JumpVelocity/(2*cfg.Gravity)
	if math.Abs(peak-want) > 0.1 {
		t.Errorf("peak %v, want about %v", peak, want)
	}
	if p.Y != cfg.GroundY || p.VelY != 0 {
		t.Errorf("after landing y=%v vel=%v", p.Y, p.VelY)
	}
}

func TestNoDoubleJump(t *testing.T) {
	p := New(DefaultConfig(), 14)
	in := &keys{jump: true}
	p.Update(0.1, in)
	vel := p.VelY
	in.jump = true
	if st := p.Update(0.1, in); st.Jumped {
		t.Fatal("jumped while airborne")
	}
	if p.VelY >= vel {
		t.Errorf("velocity should keep falling: %v -> %v", vel, p.VelY)
	}
}

func TestLateralBounds(t *testing.T) {
	p := New(DefaultConfig(), 14)
	minX, maxX := p.Bounds()
	if math.Abs(minX+5.3) > 1e-9 || math.Abs(maxX-5.3) > 1e-9 {
		t.Fatalf("bounds = %v..%v, want -5.3..5.3", minX, maxX)
	}

	in := &keys{right: true}
	for _n := 0; _n < 300; _n++ {
		p.Update(1.0/60, in)
	}
	if p.X != maxX {
		t.Errorf("x = %v, want clamped to %v", p.X, maxX)
	}

	in = &keys{left: true}
	p.Update(0.5, in)
	if math.Abs(p.X-(maxX-4)) > 1e-9 {
		t.Errorf("x = %v after moving left", p.X)
	}
	for _n := 0; _n < 300; _n++ {
		p.Update(1.0/60, in)
	}
	if p.X != minX {
		t.Errorf("x = %v, want clamped to %v", p.X, minX)
	}
	if n := p.Node().Position; n.X != p.X || n.Y != p.Y {
		t.Errorf("node at %v, player at (%v,%v)", n, p.X, p.Y)
	}
}

func TestDegenerateDT(t *testing.T) {
	p := New(DefaultConfig(), 14)
	in := &keys{right: true}
	for _, dt := range []float64{-1, math.NaN(), math.Inf(1)} {
		p.Update(dt, in)
	}
	if p.X != 0 || p.Y != 1 {
		t.Errorf("degenerate dt moved player to (%v,%v)", p.X, p.Y)
	}
}

func TestEveryJumpLandsOnce(t *testing.T) {
	// 1/120 at default tuning brings the arc to within 1e-4 of the
	// ground one frame before crossing it.
	for _, dt := range []float64{1.0 / 60, 1.0 / 120, 1.0 / 144, 0.05, 0.1} {
		p := New(DefaultConfig(), 14)
		in := &keys{}
		jumps, lands := 0, 0
		for frame := 0; frame < 3000; frame++ {
			if frame%200 == 0 {
				in.jump = true
			}
			st := p.Update(dt, in)
			if st.Jumped {
				jumps++
			}
			if st.Landed {
				lands++
				if p.Y != 1 || p.VelY != 0 || !p.Grounded() {
					t.Fatalf("dt %v: landed at y=%v vel=%v", dt, p.Y, p.VelY)
				}
			}
		}
		if jumps == 0 || lands != jumps {
			t.Errorf("dt %v: %d jumps, %d landings", dt, jumps, lands)
		}
	}
}

func TestAirborneUntilClamp(t *testing.T) {
	p := New(DefaultConfig(), 14)
	in := &keys{jump: true}
	p.Update(1.0/120, in)

	// Descending within a hair of the floor but not yet clamped.
	p.Y = 1 + 5e-5
	p.VelY = -11.75
	if p.Grounded() {
		t.Fatal("grounded before the clamp")
	}
	in.jump = true
	if st := p.Update(0, in); st.Jumped {
		t.Fatal("jumped before touching the floor")
	}
	st := p.Update(1.0/120, in)
	if !st.Landed || !p.Grounded() {
		t.Fatalf("step %+v, grounded=%v", st, p.Grounded())
	}
	if st = p.Update(1.0/120, in); st.Landed {
		t.Error("landing reported twice")
	}
}
