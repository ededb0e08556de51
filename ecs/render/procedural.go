package render

import (
	"fmt"
	"image/color"
	"math"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/milk9111/starcatcher/prefabs"
)

const (
	ShapeRect     = "rect"
	ShapeGradient = "gradient"
	ShapeStar     = "star"
	ShapeCircle   = "circle"
	ShapeSheet    = "sheet"
)

// BuildImages draws every image of spec and registers it under its key.
func BuildImages(spec *prefabs.SpritesSpec, reg *Registry) error {
	if spec == nil || reg == nil {
		return fmt.Errorf("render: nil sprites spec or registry")
	}

	keys := make([]string, 0, len(spec.Images))
	for key := range spec.Images {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		img, err := BuildImage(spec.Images[key])
		if err != nil {
			return fmt.Errorf("render: image %q: %w", key, err)
		}
		reg.Register(key, img)
	}
	return nil
}

// BuildImage draws a single procedural image.
func BuildImage(spec prefabs.ImageSpec) (*ebiten.Image, error) {
	if spec.Width <= 0 || spec.Height <= 0 {
		return nil, fmt.Errorf("invalid size %dx%d", spec.Width, spec.Height)
	}
	base, err := parseColor(spec.Color)
	if err != nil {
		return nil, err
	}
	accent := base
	if spec.Accent != "" {
		if accent, err = parseColor(spec.Accent); err != nil {
			return nil, err
		}
	}

	switch spec.Shape {
	case ShapeRect, "":
		return drawRect(spec.Width, spec.Height, base, accent), nil
	case ShapeGradient:
		return drawGradient(spec.Width, spec.Height, base, accent), nil
	case ShapeStar:
		return drawStar(spec.Width, spec.Height, base, accent), nil
	case ShapeCircle:
		return drawCircle(spec.Width, spec.Height, base, accent), nil
	case ShapeSheet:
		frames := spec.Frames
		if frames <= 0 {
			frames = 1
		}
		return drawDudeSheet(spec.Width, spec.Height, frames, base, accent), nil
	default:
		return nil, fmt.Errorf("unknown shape %q", spec.Shape)
	}
}

func parseColor(s string) (colorful.Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("color %q: %w", s, err)
	}
	return c, nil
}

// drawRect is a platform: a grass strip on top of earth.
func drawRect(w, h int, top, body colorful.Color) *ebiten.Image {
	img := ebiten.NewImage(w, h)
	img.Fill(body)
	grass := float32(h) / 4
	vector.DrawFilledRect(img, 0, 0, float32(w), grass, top, false)
	vector.StrokeRect(img, 0, 0, float32(w), float32(h), 1, body.BlendRgb(colorful.Color{}, 0.3), false)
	return img
}

func drawGradient(w, h int, from, to colorful.Color) *ebiten.Image {
	img := ebiten.NewImage(w, h)
	const bands = 32
	bandH := float32(h) / bands
	for i := 0; i < bands; i++ {
		c := from.BlendRgb(to, float64(i)/(bands-1))
		vector.DrawFilledRect(img, 0, float32(i)*bandH, float32(w), bandH+1, c, false)
	}
	return img
}

func drawStar(w, h int, fill, glow colorful.Color) *ebiten.Image {
	img := ebiten.NewImage(w, h)
	cx, cy := float32(w)/2, float32(h)/2
	r := float32(math.Min(float64(w), float64(h))) / 2
	for i := 0; i < 5; i++ {
		a := -math.Pi/2 + float64(i)*2*math.Pi/5
		x := cx + r*float32(math.Cos(a))
		y := cy + r*float32(math.Sin(a))
		vector.StrokeLine(img, cx, cy, x, y, r/2.5, fill, true)
	}
	vector.DrawFilledCircle(img, cx, cy, r/2.2, fill, true)
	vector.DrawFilledCircle(img, cx, cy, r/5, glow, true)
	return img
}

func drawCircle(w, h int, fill, shine colorful.Color) *ebiten.Image {
	img := ebiten.NewImage(w, h)
	cx, cy := float32(w)/2, float32(h)/2
	r := float32(math.Min(float64(w), float64(h))) / 2
	vector.DrawFilledCircle(img, cx, cy, r, fill, true)
	vector.DrawFilledCircle(img, cx-r/3, cy-r/3, r/4, shine, true)
	return img
}

// drawDudeSheet lays out frames horizontally. The first four face left, the
// middle one faces the camera, the last four face right.
func drawDudeSheet(w, h, frames int, body, skin colorful.Color) *ebiten.Image {
	img := ebiten.NewImage(w*frames, h)
	dark := body.BlendRgb(colorful.Color{}, 0.5)
	eye := color.White
	middle := frames / 2

	for f := 0; f < frames; f++ {
		ox := float32(f * w)
		fw, fh := float32(w), float32(h)

		facing := float32(0)
		switch {
		case f < middle:
			facing = -1
		case f > middle:
			facing = 1
		}
		step := float32(0)
		if facing != 0 {
			step = float32((f%4)-1) * fh / 16
		}

		headR := fw / 4
		headX := ox + fw/2 + facing*fw/10
		headY := headR + 1
		vector.DrawFilledCircle(img, headX, headY, headR, skin, true)
		vector.DrawFilledCircle(img, headX-headR/2.5+facing*headR/2, headY-1, 1.5, eye, false)
		if facing == 0 {
			vector.DrawFilledCircle(img, headX+headR/2.5, headY-1, 1.5, eye, false)
		}

		torsoTop := headY + headR
		torsoH := fh * 0.45
		vector.DrawFilledRect(img, ox+fw/4, torsoTop, fw/2, torsoH, body, false)

		legTop := torsoTop + torsoH
		legH := fh - legTop - 1
		vector.DrawFilledRect(img, ox+fw/4+step, legTop, fw/6, legH, dark, false)
		vector.DrawFilledRect(img, ox+3*fw/4-fw/6-step, legTop, fw/6, legH, dark, false)
	}
	return img
}
