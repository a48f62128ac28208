package hallway

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"corridor/internal/scene"
)

var ErrUnknownFont = errors.New("unknown sign font")

// SignStyle is the text and look of the illuminated beam sign.
type SignStyle struct {
	Text        string      `yaml:"text"`
	Font        string      `yaml:"font"`
	FontSize    float64     `yaml:"font_size"`
	Fill        scene.Color `yaml:"fill"`
	ShadowColor scene.Color `yaml:"shadow_color"`
	ShadowBlur  float64     `yaml:"shadow_blur"`
	Width       int         `yaml:"width"`
	Height      int         `yaml:"height"`
}

func DefaultSignStyle() SignStyle {
	return SignStyle{
		Text:        "Boelter Hall",
		Font:        "go-bold",
		FontSize:    120,
		Fill:        scene.Color{R: 0xb7, G: 0x9c, B: 0x15, A: 0xcd},
		ShadowColor: scene.Color{A: 128},
		ShadowBlur:  10,
		Width:       1024,
		Height:      256,
	}
}

// SignRenderer rasterises a sign style into a texture image.
type SignRenderer interface {
	Render(style SignStyle) (*image.RGBA, error)
}

// FontSignRenderer draws with the bundled Go fonts.
type FontSignRenderer struct{}

var signFonts = map[string][]byte{
	"go-bold":    gobold.TTF,
	"go-regular": goregular.TTF,
	"go-mono":    gomono.TTF,
}

func (FontSignRenderer) Render(style SignStyle) (*image.RGBA, error) {
	ttf, ok := signFonts[style.Font]
	if !ok {
		return nil, fmt.Errorf("%q: %w", style.Font, ErrUnknownFont)
	}
	if style.Width <= 0 || style.Height <= 0 {
		return nil, fmt.Errorf("sign canvas %dx%d", style.Width, style.Height)
	}
	parsed, err := opentype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", style.Font, err)
	}
	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    style.FontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("face %s: %w", style.Font, err)
	}
	defer face.Close()

	bounds := image.Rect(0, 0, style.Width, style.Height)
	img := image.NewRGBA(bounds)

	// Centre horizontally on the advance width and vertically on the
	// ascent/descent midline.
	m := face.Metrics()
	adv := font.MeasureString(face, style.Text)
	dot := fixed.Point26_6{
		X: (fixed.I(style.Width) - adv) / 2,
		Y: (fixed.I(style.Height) + m.Ascent - m.Descent) / 2,
	}

	if style.ShadowColor.A > 0 {
		mask := image.NewAlpha(bounds)
		d := font.Drawer{Dst: mask, Src: image.Opaque, Face: face, Dot: dot}
		d.DrawString(style.Text)
		// A canvas shadow blur of b is a gaussian with sigma b/2; three box
		// passes of radius sigma approximate it.
		radius := int(math.Round(style.ShadowBlur / 2))
		for _n := 0; _n < 3; _n++ {
			boxBlur(mask, radius)
		}
		draw.DrawMask(img, bounds, image.NewUniform(style.ShadowColor.NRGBA()), image.Point{}, mask, image.Point{}, draw.Over)
	}

	d := font.Drawer{Dst: img, Src: image.NewUniform(style.Fill.NRGBA()), Face: face, Dot: dot}
	d.DrawString(style.Text)
	return img, nil
}

// boxBlur blurs an alpha mask in place, horizontally then vertically.
func boxBlur(mask *image.Alpha, radius int) {
	if radius <= 0 {
		return
	}
	w, h := mask.Rect.Dx(), mask.Rect.Dy()
	tmp := make([]uint8, len(mask.Pix))
	blurLines(mask.Pix, tmp, w, h, 1, mask.Stride, radius)
	blurLines(tmp, mask.Pix, h, w, mask.Stride, 1, radius)
}

// blurLines runs a sliding-window mean along `lines` lines of length n.
// step moves along a line, lineStep moves between lines.
func blurLines(src, dst []uint8, n, lines, step, lineStep, radius int) {
	win := 2*radius + 1
	for l := 0; l < lines; l++ {
		base := l * lineStep
		sum := 0
		for i := -radius; i <= radius; i++ {
			sum += int(src[base+clampIndex(i, n)*step])
		}
		for i := 0; i < n; i++ {
			dst[base+i*step] = uint8(sum / win)
			sum += int(src[base+clampIndex(i+radius+1, n)*step])
			sum -= int(src[base+clampIndex(i-radius, n)*step])
		}
	}
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
