// Package player integrates the runner box: jump, gravity, ground clamp
// and lateral movement inside the corridor.
package player

import (
	"math"

	"corridor/internal/scene"
)

// Input is polled once per frame. Jump reports a press edge, not a held key.
type Input interface {
	Left() bool
	Right() bool
	Jump() bool
}

type Config struct {
	Gravity      float64     `yaml:"gravity"`
	JumpVelocity float64     `yaml:"jump_velocity"`
	GroundY      float64     `yaml:"ground_y"`
	MoveSpeed    float64     `yaml:"move_speed"`
	BoundsMargin float64     `yaml:"bounds_margin"` // distance kept from each wall
	Color        scene.Color `yaml:"color"`
}

func DefaultConfig() Config {
	return Config{
		Gravity:      30,
		JumpVelocity: 12,
		GroundY:      1,
		MoveSpeed:    8,
		BoundsMargin: 1.7,
		Color:        scene.Hex(0x3284bf),
	}
}

// Step reports what happened during one Update.
type Step struct {
	Jumped bool
	Landed bool
}

type Player struct {
	X, Y float64
	VelY float64

	// airborne is set by a jump or any height above the ground and
	// cleared only by the ground clamp.
	airborne bool

	cfg        Config
	minX, maxX float64
	node       *scene.Node
}

// New places the player on the ground at the corridor centre.
// hallwayWidth fixes the lateral bounds.
func New(cfg Config, hallwayWidth float64) *Player {
	half := math.Max(hallwayWidth/2-cfg.BoundsMargin, 0)
	p := &Player{
		Y:    cfg.GroundY,
		cfg:  cfg,
		minX: -half,
		maxX: half,
		node: scene.NewMesh("player", scene.NewBox(1, 2, 1), scene.NewMaterial("player", cfg.Color)),
	}
	p.sync()
	return p
}

func (p *Player) Node() *scene.Node { return p.node }

// Bounds returns the lateral clamp range.
func (p *Player) Bounds() (minX, maxX float64) { return p.minX, p.maxX }

// Grounded reports whether the player rests on the floor.
func (p *Player) Grounded() bool { return !p.airborne }

// Update advances the player by dt seconds. Negative or non-finite dt
// is treated as zero.
func (p *Player) Update(dt float64, in Input) Step {
	if !(dt > 0) || math.IsInf(dt, 0) {
		dt = 0
	}
	var st Step

	if in.Jump() && !p.airborne {
		p.VelY = p.cfg.JumpVelocity
		p.airborne = true
		st.Jumped = true
	}

	p.VelY -= p.cfg.Gravity * dt
	p.Y += p.VelY * dt

	switch {
	case p.Y < p.cfg.GroundY:
		p.Y = p.cfg.GroundY
		p.VelY = 0
		st.Landed = p.airborne && !st.Jumped
		p.airborne = false
	case p.Y > p.cfg.GroundY:
		p.airborne = true
	}

	if in.Left() {
		p.X -= p.cfg.MoveSpeed * dt
	}
	if in.Right() {
		p.X += p.cfg.MoveSpeed * dt
	}
	p.X = math.Max(p.minX, math.Min(p.maxX, p.X))

	p.sync()
	return st
}

func (p *Player) sync() {
	p.node.SetPosition(p.X, p.Y, 0)
}
