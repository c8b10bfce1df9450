package render

import (
	"image"
	"image/color"
	"image/draw"
)

// DefaultBlock is the edge length, in pixels, of one cell.
const DefaultBlock = 5

// Frame rasterises a w*h binary grid into an image where each cell covers a
// block x block square. Live cells use on, dead cells off.
func Frame(cells []uint8, w, h, block int, on, off color.Color) *image.RGBA {
	if block <= 0 {
		block = DefaultBlock
	}
	img := image.NewRGBA(image.Rect(0, 0, w*block, h*block))
	if len(cells) != w*h {
		return img
	}
	draw.Draw(img, img.Bounds(), image.NewUniform(off), image.Point{}, draw.Src)
	fg := image.NewUniform(on)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if cells[y*w+x] == 0 {
				continue
			}
			r := image.Rect(x*block, y*block, (x+1)*block, (y+1)*block)
			draw.Draw(img, r, fg, image.Point{}, draw.Src)
		}
	}
	return img
}
