// seehuhn.de/go/shademap - face shading maps from guide strokes
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package shademap

import (
	"image"
	"image/color"
	"math"
)

// Buffer is a grayscale shading buffer, stored in row-major order.
// Row y covers the UV coordinate v = y/Height, so row 0 is the bottom edge
// of the texture.
type Buffer struct {
	Width, Height int
	Pix           []float64
}

// NewBuffer returns a buffer with all pixels set to 0.
func NewBuffer(width, height int) (*Buffer, error) {
	if width < 1 || height < 1 {
		return nil, ErrInvalidSize
	}
	return &Buffer{
		Width:  width,
		Height: height,
		Pix:    make([]float64, width*height),
	}, nil
}

// At returns the value of pixel (x, y).
func (b *Buffer) At(x, y int) float64 {
	return b.Pix[y*b.Width+x]
}

// Set overwrites pixel (x, y).
func (b *Buffer) Set(x, y int, value float64) {
	b.Pix[y*b.Width+x] = value
}

// Blend combines value with pixel (x, y). A pixel which is still 0 takes the
// new value; otherwise the result is the mean of the old and new value.
func (b *Buffer) Blend(x, y int, value float64) {
	i := y*b.Width + x
	if b.Pix[i] == 0 {
		b.Pix[i] = value
	} else {
		b.Pix[i] = (b.Pix[i] + value) / 2
	}
}

// uv returns the UV position sampled by pixel (x, y).
func (b *Buffer) uv(x, y int) (u, v float64) {
	return float64(x) / float64(b.Width), float64(y) / float64(b.Height)
}

// Finalize expands every scalar s into the quadruple (s, s, s, 1).
func (b *Buffer) Finalize() *Image {
	img := &Image{
		Width:  b.Width,
		Height: b.Height,
		Pix:    make([]float32, 4*len(b.Pix)),
	}
	for i, s := range b.Pix {
		f := float32(s)
		img.Pix[4*i+0] = f
		img.Pix[4*i+1] = f
		img.Pix[4*i+2] = f
		img.Pix[4*i+3] = 1
	}
	return img
}

// Image is the finished shading map: four float32 channels per pixel (RGBA),
// in the same row order as [Buffer].
//
// Image implements [image.Image]. Since image coordinates grow downwards
// while v grows upwards, At(x, y) reads row Height-1-y. Channel values are
// clamped to [0, 1] when converted to [color.Color].
type Image struct {
	Width, Height int
	Pix           []float32
}

// ColorModel implements the [image.Image] interface.
func (img *Image) ColorModel() color.Model {
	return color.RGBA64Model
}

// Bounds implements the [image.Image] interface.
func (img *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, img.Width, img.Height)
}

// At implements the [image.Image] interface.
func (img *Image) At(x, y int) color.Color {
	if x < 0 || x >= img.Width || y < 0 || y >= img.Height {
		return color.RGBA64{}
	}
	i := 4 * ((img.Height-1-y)*img.Width + x)
	return color.RGBA64{
		R: to16(img.Pix[i+0]),
		G: to16(img.Pix[i+1]),
		B: to16(img.Pix[i+2]),
		A: to16(img.Pix[i+3]),
	}
}

// Gray16 converts the red channel into a 16-bit grayscale image, using the
// same orientation as At.
func (img *Image) Gray16() *image.Gray16 {
	out := image.NewGray16(img.Bounds())
	for y := range img.Height {
		for x := range img.Width {
			i := 4 * ((img.Height-1-y)*img.Width + x)
			out.SetGray16(x, y, color.Gray16{Y: to16(img.Pix[i])})
		}
	}
	return out
}

func to16(f float32) uint16 {
	return uint16(math.Round(float64(max(0, min(1, f))) * 0xffff))
}
