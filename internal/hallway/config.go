package hallway

import (
	"errors"
	"fmt"
	"math"

	"corridor/internal/scene"
)

var (
	ErrPoolTooSmall  = errors.New("segment pool needs at least 2 segments")
	ErrInvalidLength = errors.New("segment length must be positive")
	ErrInvalidConfig = errors.New("invalid hallway config")
)

// Corridor defaults.
const (
	DefaultSegmentLength = 40.0
	DefaultSegmentCount  = 5
	DefaultWidth         = 14.0
	DefaultSpeed         = 15.0
	DefaultColumns       = 10
	DefaultWallHeight    = 10.0
)

// Decoration placement, in segment-local units.
const (
	doorHeight  = 7.0
	doorDepth   = 4.0
	doorInset   = 0.2
	doorZ       = 10.0
	beamZ       = 18.0
	beamY       = 9.25
	beamHeight  = 1.5
	beamDepth   = 2.0
	legWidth    = 1.2
	legHeight   = 10.0
	signZOffset = 1.01
	outlineLift = 0.005
	gridOpacity = 0.15
)

// SignSegment is the creation index of the only segment carrying signage.
const SignSegment = 0

// FloorPattern describes the computed tile motif.
type FloorPattern struct {
	StripeColumns []int `yaml:"stripe_columns"`
	BandStart     int   `yaml:"band_start"`
	BandEnd       int   `yaml:"band_end"`
	Period        int   `yaml:"period"`
	BaseRows      int   `yaml:"base_rows"`
}

type Palette struct {
	FloorBase scene.Color `yaml:"floor_base"`
	FloorGrey scene.Color `yaml:"floor_grey"`
	FloorPink scene.Color `yaml:"floor_pink"`
	Grid      scene.Color `yaml:"grid"`
	Wall      scene.Color `yaml:"wall"`
	Door      scene.Color `yaml:"door"`
	BeamDark  scene.Color `yaml:"beam_dark"`
	BeamRed   scene.Color `yaml:"beam_red"`
}

// Config is fixed at construction and never mutated afterwards.
type Config struct {
	SegmentLength float64      `yaml:"segment_length"`
	SegmentCount  int          `yaml:"segment_count"`
	Width         float64      `yaml:"width"`
	Speed         float64      `yaml:"speed"`
	Columns       int          `yaml:"columns"`
	WallHeight    float64      `yaml:"wall_height"`
	GridLines     bool         `yaml:"grid_lines"`
	Floor         FloorPattern `yaml:"floor"`
	Palette       Palette      `yaml:"palette"`
	Sign          SignStyle    `yaml:"sign"`
}

func DefaultPalette() Palette {
	return Palette{
		FloorBase: scene.Hex(0xeeeeee),
		FloorGrey: scene.Hex(0x666666),
		FloorPink: scene.Hex(0xd6a8a8),
		Grid:      scene.Hex(0x555555),
		Wall:      scene.Hex(0xf5f5dc),
		Door:      scene.Hex(0xc48f28),
		BeamDark:  scene.Hex(0x5e5d5c),
		BeamRed:   scene.Hex(0x880000),
	}
}

func DefaultFloorPattern() FloorPattern {
	return FloorPattern{
		StripeColumns: []int{1, 8},
		BandStart:     3,
		BandEnd:       6,
		Period:        8,
		BaseRows:      2,
	}
}

func DefaultConfig() Config {
	return Config{
		SegmentLength: DefaultSegmentLength,
		SegmentCount:  DefaultSegmentCount,
		Width:         DefaultWidth,
		Speed:         DefaultSpeed,
		Columns:       DefaultColumns,
		WallHeight:    DefaultWallHeight,
		GridLines:     true,
		Floor:         DefaultFloorPattern(),
		Palette:       DefaultPalette(),
		Sign:          DefaultSignStyle(),
	}
}

// TileSize is the edge length of one square floor tile.
func (c Config) TileSize() float64 { return c.Width / float64(c.Columns) }

// Rows is the number of tile rows needed to cover one segment.
func (c Config) Rows() int { return int(math.Ceil(c.SegmentLength / c.TileSize())) }

// Span is the total corridor length covered by the pool.
func (c Config) Span() float64 { return float64(c.SegmentCount) * c.SegmentLength }

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// Validate reports the first construction precondition the config breaks.
func (c Config) Validate() error {
	if c.SegmentCount < 2 {
		return fmt.Errorf("segment count %d: %w", c.SegmentCount, ErrPoolTooSmall)
	}
	if !(c.SegmentLength > 0) || !finite(c.SegmentLength) {
		return fmt.Errorf("segment length %v: %w", c.SegmentLength, ErrInvalidLength)
	}
	if !(c.Width > 0) || !finite(c.Width) {
		return fmt.Errorf("width %v: %w", c.Width, ErrInvalidConfig)
	}
	if c.Speed < 0 || !finite(c.Speed) {
		return fmt.Errorf("speed %v: %w", c.Speed, ErrInvalidConfig)
	}
	if c.Columns <= 0 {
		return fmt.Errorf("columns %d: %w", c.Columns, ErrInvalidConfig)
	}
	if !(c.WallHeight > 0) {
		return fmt.Errorf("wall height %v: %w", c.WallHeight, ErrInvalidConfig)
	}
	return c.Floor.validate(c.Columns)
}

func (p FloorPattern) validate(cols int) error {
	if p.Period <= 0 {
		return fmt.Errorf("floor period %d: %w", p.Period, ErrInvalidConfig)
	}
	if p.BaseRows < 0 || p.BaseRows >= p.Period {
		return fmt.Errorf("floor base rows %d of period %d: %w", p.BaseRows, p.Period, ErrInvalidConfig)
	}
	if p.BandStart < 0 || p.BandEnd < p.BandStart || p.BandEnd >= cols {
		return fmt.Errorf("floor band %d..%d of %d columns: %w", p.BandStart, p.BandEnd, cols, ErrInvalidConfig)
	}
	for _, x := range p.StripeColumns {
		if x < 0 || x >= cols {
			return fmt.Errorf("stripe column %d of %d: %w", x, cols, ErrInvalidConfig)
		}
	}
	return nil
}
