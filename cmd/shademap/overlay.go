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

package main

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"

	"github.com/urfave/cli/v2"
	"golang.org/x/image/draw"
	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/shademap"
	"seehuhn.de/go/shademap/scene"
)

var cmdOverlay = cli.Command{
	Name:      "overlay",
	Usage:     "render the shading map with the projected guides drawn on top",
	ArgsUsage: "scene.yaml",
	Action:    runOverlay,
	Flags: append([]cli.Flag{
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Value:   "overlay.png",
			Usage:   "output file",
		},
		&cli.IntFlag{
			Name:  "scale",
			Value: 1,
			Usage: "enlarge each texel to scale×scale pixels",
		},
		&cli.Float64Flag{
			Name:  "line-width",
			Value: 2,
			Usage: "width of the guide lines in output pixels",
		},
	}, nameFlags()...),
}

func runOverlay(ctx *cli.Context) error {
	s, err := loadScene(ctx)
	if err != nil {
		return err
	}
	in, width, height, err := scene.Resolve(s, namesFromFlags(ctx))
	if err != nil {
		return err
	}
	scale := ctx.Int("scale")
	if scale < 1 {
		return fmt.Errorf("invalid scale %d", scale)
	}

	proj, err := shademap.Project(in)
	if err != nil {
		return err
	}
	img, err := shademap.Render(proj, width, height)
	if err != nil {
		return err
	}

	dst := drawOverlay(img, proj, scale, ctx.Float64("line-width"))

	f, err := os.Create(ctx.String("output"))
	if err != nil {
		return err
	}
	err = png.Encode(f, dst)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

var (
	lineColor = color.RGBA{R: 0xe0, G: 0x30, B: 0x30, A: 0xff}
	loopColor = color.RGBA{R: 0x30, G: 0x80, B: 0xe0, A: 0xff}
)

// drawOverlay enlarges img by scale and draws the guides on top.
func drawOverlay(img *shademap.Image, proj *shademap.Projection, scale int, lineWidth float64) *image.RGBA {
	w, h := img.Width*scale, img.Height*scale
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)

	// UV space has v pointing up, image space has y pointing down
	toPixel := func(p vec.Vec2) (float32, float32) {
		return float32(p.X * float64(w)), float32((1 - p.Y) * float64(h))
	}

	r := vector.NewRasterizer(w, h)
	for _, l := range proj.Lines {
		addPolyline(r, l, lineWidth/2, toPixel)
	}
	r.Draw(dst, dst.Bounds(), image.NewUniform(lineColor), image.Point{})

	r.Reset(w, h)
	addPolyline(r, proj.Nose, lineWidth/2, toPixel)
	addPolyline(r, proj.Rembrandt, lineWidth/2, toPixel)
	r.Draw(dst, dst.Bounds(), image.NewUniform(loopColor), image.Point{})

	return dst
}

// addPolyline adds one quadrilateral of half-width hw per segment of pts.
// All quadrilaterals have the same orientation, so that overlaps at the
// joints do not cancel out.
func addPolyline(r *vector.Rasterizer, pts []vec.Vec2, hw float64, toPixel func(vec.Vec2) (float32, float32)) {
	for i := 1; i < len(pts); i++ {
		x0, y0 := toPixel(pts[i-1])
		x1, y1 := toPixel(pts[i])

		dx, dy := float64(x1-x0), float64(y1-y0)
		l := math.Hypot(dx, dy)
		if l == 0 {
			continue
		}
		nx, ny := float32(-dy/l*hw), float32(dx/l*hw)

		r.MoveTo(x0+nx, y0+ny)
		r.LineTo(x1+nx, y1+ny)
		r.LineTo(x1-nx, y1-ny)
		r.LineTo(x0-nx, y0-ny)
		r.ClosePath()
	}
}
