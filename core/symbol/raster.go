// ABOUTME: Rasterizer turns a symbol module matrix into a square NRGBA image
// ABOUTME: Scales modules to whole pixels and centers the symbol on the canvas

package symbol

import (
	"image"
	"image/color"
	"image/draw"

	"article-labels-api/core/domain"
)

// rasterize draws a module matrix onto a square canvas of the requested
// width. Each module maps to a whole number of pixels so edges stay crisp;
// when the width is not an exact multiple of the module count the symbol is
// centered and the remainder becomes background. A width smaller than one
// pixel per module is grown to the minimum that still fits the symbol.
func rasterize(modules [][]bool, opts domain.RenderOptions) *image.NRGBA {
	count := len(modules)
	total := count + 2*opts.Margin

	size := opts.Width
	if size < total {
		size = total
	}
	scale := size / total
	offset := (size - total*scale) / 2

	fg := image.NewUniform(color.NRGBA{R: opts.Foreground.R, G: opts.Foreground.G, B: opts.Foreground.B, A: 255})
	bg := image.NewUniform(color.NRGBA{R: opts.Background.R, G: opts.Background.G, B: opts.Background.B, A: 255})

	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), bg, image.Point{}, draw.Src)

	for y, row := range modules {
		for x, dark := range row {
			if !dark {
				continue
			}
			px := offset + (opts.Margin+x)*scale
			py := offset + (opts.Margin+y)*scale
			draw.Draw(img, image.Rect(px, py, px+scale, py+scale), fg, image.Point{}, draw.Src)
		}
	}

	return img
}
