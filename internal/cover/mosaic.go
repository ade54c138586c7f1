package cover

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	_ "image/jpeg" // poster decode
	_ "image/png"  // poster decode

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Poster cells use the standard 2:3 poster aspect ratio.
const (
	cellWidth  = 300
	cellHeight = 450
	captionH   = 60
)

// Mosaic is the default Renderer: a poster grid with a caption bar.
type Mosaic struct{}

// NewMosaic creates the default mosaic renderer.
func NewMosaic() *Mosaic {
	return &Mosaic{}
}

// Render lays the posters out in a near-square grid, scaling each into a
// fixed cell, and draws the collection title in a bar along the bottom.
// Posters that fail to decode are skipped.
func (m *Mosaic) Render(posters [][]byte, title string) (image.Image, error) {
	images := make([]image.Image, 0, len(posters))
	for _, data := range posters {
		img, _, err := image.Decode(bytes.NewReader(data))
		if err != nil {
			continue
		}
		images = append(images, img)
	}
	if len(images) == 0 {
		return nil, fmt.Errorf("no decodable posters")
	}

	cols := int(math.Ceil(math.Sqrt(float64(len(images)))))
	rows := (len(images) + cols - 1) / cols

	canvas := image.NewRGBA(image.Rect(0, 0, cols*cellWidth, rows*cellHeight+captionH))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(color.Black), image.Point{}, draw.Src)

	for i, img := range images {
		col := i % cols
		row := i / cols
		cell := image.Rect(col*cellWidth, row*cellHeight, (col+1)*cellWidth, (row+1)*cellHeight)
		xdraw.ApproxBiLinear.Scale(canvas, cell, img, img.Bounds(), draw.Src, nil)
	}

	drawCaption(canvas, title, rows*cellHeight)
	return canvas, nil
}

// drawCaption fills the caption bar and centers the title in it.
func drawCaption(canvas *image.RGBA, title string, top int) {
	bar := image.Rect(0, top, canvas.Bounds().Dx(), top+captionH)
	draw.Draw(canvas, bar, image.NewUniform(color.RGBA{20, 20, 20, 255}), image.Point{}, draw.Src)

	face := basicfont.Face7x13
	d := &font.Drawer{
		Dst:  canvas,
		Src:  image.NewUniform(color.White),
		Face: face,
	}
	width := d.MeasureString(title)
	x := (fixed.I(canvas.Bounds().Dx()) - width) / 2
	if x < 0 {
		x = 0
	}
	d.Dot = fixed.Point26_6{
		X: x,
		Y: fixed.I(top + captionH/2 + face.Height/2),
	}
	d.DrawString(title)
}
