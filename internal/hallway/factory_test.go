package hallway

import (
	"errors"
	"image"
	"image/color"
	"io"
	"log/slog"
	"testing"

	"corridor/internal/scene"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type failingSigns struct{}

func (failingSigns) Render(SignStyle) (*image.RGBA, error) {
	return nil, errors.New("no text backend")
}

type blankSigns struct{}

func (blankSigns) Render(s SignStyle) (*image.RGBA, error) {
	return image.NewRGBA(image.Rect(0, 0, s.Width, s.Height)), nil
}

func newTestFactory(t *testing.T, cfg Config) *Factory {
	t.Helper()
	f, err := NewFactory(cfg, blankSigns{}, quietLogger())
	if err != nil {
		t.Fatalf("NewFactory: %v", err)
	}
	return f
}

func TestBuildElements(t *testing.T) {
	cfg := DefaultConfig()
	f := newTestFactory(t, cfg)

	for _, tc := range []struct {
		index   int
		hasSign bool
	}{{0, true}, {1, false}, {4, false}} {
		seg := f.Build(tc.index, -40)
		n := seg.Node()
		if seg.Offset() != -40 {
			t.Errorf("segment %d offset = %v", tc.index, seg.Offset())
		}
		if seg.HasSign() != tc.hasSign {
			t.Errorf("segment %d HasSign = %v", tc.index, seg.HasSign())
		}
		for _, name := range []string{"floor", "wall-left", "wall-right", "door-left", "door-right", "beam", "leg-left", "leg-right"} {
			if n.Find(name) == nil {
				t.Errorf("segment %d missing %s", tc.index, name)
			}
		}
		if got := n.Find("sign") != nil; got != tc.hasSign {
			t.Errorf("segment %d sign node present = %v", tc.index, got)
		}
	}
}

func TestBuildFloorGrid(t *testing.T) {
	cfg := DefaultConfig()
	f := newTestFactory(t, cfg)
	floor := f.Build(2, 0).Node().Find("floor")

	rows := cfg.Rows()
	if rows != 29 {
		t.Fatalf("rows = %d, want 29", rows)
	}
	// One tile and one outline per cell.
	if got, want := len(floor.Children()), cfg.Columns*rows*2; got != want {
		t.Fatalf("floor children = %d, want %d", got, want)
	}

	tiles := 0
	for _, c := range floor.Children() {
		if c.Name != "tile" {
			continue
		}
		x := tiles / rows
		z := tiles % rows
		want := f.FloorMaterial(cfg.Floor.ClassAt(x, z))
		if c.Mesh.Material != want {
			t.Fatalf("tile (%d,%d) material %s, want %s", x, z, c.Mesh.Material.Name, want.Name)
		}
		if c.Mesh.Geometry != f.tileGeo {
			t.Fatal("tile geometry not shared")
		}
		tiles++
	}
}

func TestBuildSharesResourcesAcrossSegments(t *testing.T) {
	f := newTestFactory(t, DefaultConfig())
	a := f.Build(0, 0).Node()
	b := f.Build(3, -120).Node()
	if a.Find("wall-left").Mesh.Geometry != b.Find("wall-left").Mesh.Geometry {
		t.Error("wall geometry should be shared")
	}
	ta := a.Find("floor").Children()
	tb := b.Find("floor").Children()
	for i := range ta {
		if ta[i].Mesh.Material != tb[i].Mesh.Material {
			t.Fatalf("floor child %d differs between segments", i)
		}
	}
}

func TestBuildDoorsAsymmetric(t *testing.T) {
	f := newTestFactory(t, DefaultConfig())
	n := f.Build(1, 0).Node()
	l := n.Find("door-left").Position
	r := n.Find("door-right").Position
	if l.X >= 0 || r.X <= 0 {
		t.Errorf("doors on wrong walls: left %v right %v", l, r)
	}
	if l.Z == r.Z || l.Z != -r.Z {
		t.Errorf("doors should sit at opposite ends: left z %v right z %v", l.Z, r.Z)
	}
}

func TestBuildDisablesCulling(t *testing.T) {
	f := newTestFactory(t, DefaultConfig())
	root := scene.NewGroup("probe")
	root.Add(f.Build(0, 0).Node())

	var check func(n *scene.Node)
	check = func(n *scene.Node) {
		for _, c := range n.Children() {
			if c.FrustumCulled {
				t.Fatalf("%s has culling enabled", c.Name)
			}
			check(c)
		}
	}
	check(root)
}

func TestBuildBeamMaterial(t *testing.T) {
	f := newTestFactory(t, DefaultConfig())
	if got := f.Build(0, 0).Node().Find("beam").Mesh.Material; got != f.beamDark {
		t.Errorf("sign beam material = %s", got.Name)
	}
	if got := f.Build(1, 0).Node().Find("leg-left").Mesh.Material; got != f.beamRed {
		t.Errorf("plain leg material = %s", got.Name)
	}
}

func TestBuildWithoutGridLines(t *testing.T) {
	cfg := DefaultConfig()
	cfg.GridLines = false
	f := newTestFactory(t, cfg)
	floor := f.Build(1, 0).Node().Find("floor")
	if got, want := len(floor.Children()), cfg.Columns*cfg.Rows(); got != want {
		t.Errorf("floor children = %d, want %d", got, want)
	}
}

func TestSignFallback(t *testing.T) {
	for name, r := range map[string]SignRenderer{
		"failing": failingSigns{},
		"nil":     nil,
	} {
		f, err := NewFactory(DefaultConfig(), r, quietLogger())
		if err != nil {
			t.Fatalf("%s: NewFactory: %v", name, err)
		}
		if f.SignTextured() {
			t.Errorf("%s: sign should be untextured", name)
		}
		sign := f.Build(0, 0).Node().Find("sign")
		if sign == nil {
			t.Fatalf("%s: sign plane missing", name)
		}
		if sign.Mesh.Material.Texture != nil {
			t.Errorf("%s: fallback material has a texture", name)
		}
	}
}

func TestFontSignRenderer(t *testing.T) {
	style := DefaultSignStyle()
	img, err := FontSignRenderer{}.Render(style)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if img.Bounds().Dx() != style.Width || img.Bounds().Dy() != style.Height {
		t.Fatalf("canvas = %v", img.Bounds())
	}

	// Glyphs land near the middle; corners stay empty.
	var inked int
	for y := 0; y < style.Height; y++ {
		for x := 0; x < style.Width; x++ {
			if img.RGBAAt(x, y).A > 0 {
				inked++
			}
		}
	}
	if inked < 1000 {
		t.Fatalf("only %d pixels drawn", inked)
	}
	if a := img.RGBAAt(0, 0).A; a != 0 {
		t.Errorf("corner alpha = %d, want 0", a)
	}
}

func TestFontSignRendererUnknownFont(t *testing.T) {
	style := DefaultSignStyle()
	style.Font = "comic"
	if _, err := (FontSignRenderer{}).Render(style); !errors.Is(err, ErrUnknownFont) {
		t.Errorf("err = %v, want ErrUnknownFont", err)
	}
}

func TestBoxBlurSpreadsInk(t *testing.T) {
	mask := image.NewAlpha(image.Rect(0, 0, 9, 9))
	mask.SetAlpha(4, 4, color.Alpha{A: 255})
	boxBlur(mask, 1)
	if got := mask.AlphaAt(4, 4).A; got != 255/9 {
		t.Errorf("centre = %d, want %d", got, 255/9)
	}
	if got := mask.AlphaAt(3, 3).A; got == 0 {
		t.Error("neighbour untouched")
	}
	if got := mask.AlphaAt(0, 0).A; got != 0 {
		t.Errorf("far corner = %d, want 0", got)
	}
}
