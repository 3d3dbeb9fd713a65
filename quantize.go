package facade

import (
	"image"
	"image/color"
	"math"
)

// Quantize replaces every color in colors with the nearest color in
// palette, by squared Euclidean distance in RGB space. Ties go to the
// earliest palette color. It returns a new slice.
func Quantize(colors []Color, palette []Color) ([]Color, error) {
	if len(palette) == 0 {
		return nil, configErrorf("cannot quantize to an empty palette")
	}
	nearest := make(map[Color]Color)
	out := make([]Color, len(colors))
	for i, c := range colors {
		q, ok := nearest[c]
		if !ok {
			q = palette[nearestIndex(c, palette)]
			nearest[c] = q
		}
		out[i] = q
	}
	return out, nil
}

func nearestIndex(c Color, palette []Color) int {
	best, bestDist := 0, math.Inf(1)
	for i, p := range palette {
		var d float64
		for k := range c {
			delta := c[k] - p[k]
			d += delta * delta
		}
		if d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// QuantizeImage snaps every pixel of a segmentation mask to the nearest
// class color in p. Alpha is ignored and the result is fully opaque.
func QuantizeImage(img image.Image, p *Palette) (*image.RGBA, error) {
	if len(p.Entries) == 0 {
		return nil, configErrorf("cannot quantize to an empty palette")
	}
	palette := p.Colors()
	b := img.Bounds()
	out := image.NewRGBA(b)
	nearest := make(map[color.RGBA]color.RGBA)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			px := color.RGBA{uint8(r >> 8), uint8(g >> 8), uint8(bl >> 8), 0xff}
			q, ok := nearest[px]
			if !ok {
				c := Color{float64(px.R) / 255, float64(px.G) / 255, float64(px.B) / 255}
				e := p.Entries[nearestIndex(c, palette)]
				q = color.RGBA{uint8(e.RGB[0]), uint8(e.RGB[1]), uint8(e.RGB[2]), 0xff}
				nearest[px] = q
			}
			out.SetRGBA(x, y, q)
		}
	}
	return out, nil
}
