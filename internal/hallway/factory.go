package hallway

import (
	"fmt"
	"log/slog"
	"math"

	"corridor/internal/scene"
)

// Segment is one corridor unit. Its decoration is built once; only the
// longitudinal offset of its root node changes afterwards.
type Segment struct {
	index   int
	node    *scene.Node
	hasSign bool
}

func (s *Segment) Index() int          { return s.index }
func (s *Segment) Node() *scene.Node   { return s.node }
func (s *Segment) HasSign() bool       { return s.hasSign }
func (s *Segment) Offset() float64     { return s.node.Position.Z }
func (s *Segment) setOffset(z float64) { s.node.Position.Z = z }

// Factory builds segments. Geometry and materials are allocated once and
// shared by every tile and segment referencing the same class.
type Factory struct {
	cfg Config
	log *slog.Logger

	tileGeo    *scene.Geometry
	outlineGeo *scene.Geometry
	wallGeo    *scene.Geometry
	doorGeo    *scene.Geometry
	beamGeo    *scene.Geometry
	legGeo     *scene.Geometry
	signGeo    *scene.Geometry

	floor    [3]*scene.Material // indexed by TileClass
	grid     *scene.Material
	wall     *scene.Material
	door     *scene.Material
	beamRed  *scene.Material
	beamDark *scene.Material
	signFace *scene.Material
}

// NewFactory validates cfg and prepares the shared resources. A nil signs
// renderer or a failed sign render leaves the sign face untextured.
func NewFactory(cfg Config, signs SignRenderer, log *slog.Logger) (*Factory, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = slog.Default()
	}

	ts := cfg.TileSize()
	tile := scene.NewPlane(ts, ts)
	f := &Factory{
		cfg:        cfg,
		log:        log,
		tileGeo:    tile,
		outlineGeo: scene.NewEdges(tile),
		wallGeo:    scene.NewBox(1, cfg.WallHeight, cfg.SegmentLength),
		doorGeo:    scene.NewBox(0.5, doorHeight, doorDepth),
		beamGeo:    scene.NewBox(cfg.Width+2, beamHeight, beamDepth),
		legGeo:     scene.NewBox(legWidth, legHeight, beamDepth),
		signGeo:    scene.NewPlane(cfg.Width, beamHeight),
		wall:       scene.NewMaterial("wall", cfg.Palette.Wall),
		door:       scene.NewMaterial("door", cfg.Palette.Door),
		beamRed:    scene.NewMaterial("beam-red", cfg.Palette.BeamRed),
		beamDark:   scene.NewMaterial("beam-dark", cfg.Palette.BeamDark),
	}

	for class, c := range map[TileClass]scene.Color{
		TileBase: cfg.Palette.FloorBase,
		TileGrey: cfg.Palette.FloorGrey,
		TilePink: cfg.Palette.FloorPink,
	} {
		m := scene.NewMaterial("floor-"+class.String(), c)
		m.DoubleSide = true
		f.floor[class] = m
	}

	f.grid = scene.NewMaterial("grid", cfg.Palette.Grid)
	f.grid.Opacity = gridOpacity
	f.grid.Unlit = true

	f.signFace = f.newSignMaterial(signs)
	return f, nil
}

func (f *Factory) newSignMaterial(signs SignRenderer) *scene.Material {
	m := scene.NewMaterial("sign", scene.Hex(0xffffff))
	m.Unlit = true

	if signs == nil {
		f.log.Warn("no sign renderer, using plain sign face")
		m.Color = f.cfg.Palette.BeamDark
		return m
	}
	img, err := signs.Render(f.cfg.Sign)
	if err != nil {
		f.log.Warn("sign texture failed, using plain sign face",
			slog.String("text", f.cfg.Sign.Text),
			slog.String("error", err.Error()))
		m.Color = f.cfg.Palette.BeamDark
		return m
	}
	// Drawn opaque: transparent canvas pixels come out black.
	m.Texture = &scene.Texture{Image: img}
	return m
}

// Config returns the construction-time configuration.
func (f *Factory) Config() Config { return f.cfg }

// FloorMaterial returns the shared material for a tile class.
func (f *Factory) FloorMaterial(c TileClass) *scene.Material { return f.floor[c] }

// SignTextured reports whether signage got a rendered texture.
func (f *Factory) SignTextured() bool { return f.signFace.Texture != nil }

// Build constructs segment index at startOffset.
func (f *Factory) Build(index int, startOffset float64) *Segment {
	cfg := f.cfg
	w := cfg.Width
	group := scene.NewGroup(fmt.Sprintf("segment-%d", index))
	group.Position.Z = startOffset
	group.FrustumCulled = false

	add := func(parent *scene.Node, name string, g *scene.Geometry, m *scene.Material, x, y, z float64) *scene.Node {
		n := scene.NewMesh(name, g, m)
		n.SetPosition(x, y, z)
		n.FrustumCulled = false
		parent.Add(n)
		return n
	}

	group.Add(f.buildFloor())

	add(group, "wall-left", f.wallGeo, f.wall, -w/2-0.5, 5, 0)
	add(group, "wall-right", f.wallGeo, f.wall, w/2+0.5, 5, 0)

	// Doors are deliberately not mirrored.
	add(group, "door-left", f.doorGeo, f.door, -w/2+doorInset, doorHeight/2, -doorZ)
	add(group, "door-right", f.doorGeo, f.door, w/2-doorInset, doorHeight/2, doorZ)

	seg := &Segment{index: index, node: group, hasSign: index == SignSegment}

	beamMat := f.beamRed
	if seg.hasSign {
		beamMat = f.beamDark
	}
	add(group, "beam", f.beamGeo, beamMat, 0, beamY, beamZ)
	if seg.hasSign {
		add(group, "sign", f.signGeo, f.signFace, 0, beamY, beamZ+signZOffset)
	}
	add(group, "leg-left", f.legGeo, beamMat, -w/2+legWidth/2, legHeight/2, beamZ)
	add(group, "leg-right", f.legGeo, beamMat, w/2-legWidth/2, legHeight/2, beamZ)

	return seg
}

func (f *Factory) buildFloor() *scene.Node {
	cfg := f.cfg
	ts := cfg.TileSize()
	rows := cfg.Rows()

	floor := scene.NewGroup("floor")
	floor.Rotation.X = -math.Pi / 2
	floor.FrustumCulled = false

	for x := 0; x < cfg.Columns; x++ {
		xPos := float64(x)*ts - cfg.Width/2 + ts/2
		for z := 0; z < rows; z++ {
			zPos := float64(z)*ts - cfg.SegmentLength/2 + ts/2

			tile := scene.NewMesh("tile", f.tileGeo, f.floor[cfg.Floor.ClassAt(x, z)])
			tile.SetPosition(xPos, zPos, 0)
			tile.FrustumCulled = false
			floor.Add(tile)

			if cfg.GridLines {
				outline := scene.NewMesh("tile-outline", f.outlineGeo, f.grid)
				outline.SetPosition(xPos, zPos, outlineLift)
				outline.FrustumCulled = false
				floor.Add(outline)
			}
		}
	}
	return floor
}
