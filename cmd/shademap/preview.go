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
	"github.com/urfave/cli/v2"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/shademap"
	"seehuhn.de/go/shademap/scene"
)

var cmdPreview = cli.Command{
	Name:        "preview",
	Usage:       "draw the projected guide strokes into a PDF file",
	Description: "Shows the UV square, the face lines, the closed nose and Rembrandt loops and their centres.",
	ArgsUsage:   "scene.yaml",
	Action:      runPreview,
	Flags: append([]cli.Flag{
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Value:   "preview.pdf",
			Usage:   "output file",
		},
		&cli.Float64Flag{
			Name:  "size",
			Value: 512,
			Usage: "page size in points",
		},
	}, nameFlags()...),
}

func runPreview(ctx *cli.Context) error {
	s, err := loadScene(ctx)
	if err != nil {
		return err
	}
	in, _, _, err := scene.Resolve(s, namesFromFlags(ctx))
	if err != nil {
		return err
	}
	proj, err := shademap.Project(in)
	if err != nil {
		return err
	}
	return writePreview(ctx.String("output"), proj, ctx.Float64("size"))
}

// writePreview draws proj on a single PDF page. The page shows the unit
// square, enlarged if some guide points fall outside of it.
func writePreview(fname string, proj *shademap.Projection, size float64) error {
	const margin = 16.0

	box := rect.Rect{URx: 1, URy: 1}
	for _, l := range proj.Lines {
		box = union(box, l.Bounds())
	}
	box = union(box, proj.Nose.Bounds())
	box = union(box, proj.Rembrandt.Bounds())

	scale := (size - 2*margin) / max(box.URx-box.LLx, box.URy-box.LLy)
	paper := &pdf.Rectangle{
		URx: size,
		URy: size,
	}
	page, err := document.CreateSinglePage(fname, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// PDF user space has v pointing up, like UV space
	page.Transform(matrix.Matrix{scale, 0, 0, scale, margin - scale*box.LLx, margin - scale*box.LLy})

	page.SetLineCap(graphics.LineCapRound)
	page.SetLineJoin(graphics.LineJoinRound)

	// UV square
	page.SetStrokeColor(color.DeviceGray(0.7))
	page.SetLineWidth(0.5 / scale)
	page.Rectangle(0, 0, 1, 1)
	page.Stroke()

	// face lines
	page.SetStrokeColor(color.DeviceGray(0))
	page.SetLineWidth(1.5 / scale)
	for _, l := range proj.Lines {
		drawPath(page, l.Path())
		page.Stroke()
	}

	// loops and their centres
	page.SetStrokeColor(color.DeviceGray(0.4))
	page.SetFillColor(color.DeviceGray(0.4))
	for _, s := range []shademap.Shape{proj.Nose, proj.Rembrandt} {
		drawPath(page, s.Path())
		page.Stroke()

		r, err := shademap.NewRegion(s)
		if err != nil {
			continue // degenerate loops are drawn without a centre
		}
		d := 3 / scale
		page.Rectangle(r.Center.X-d, r.Center.Y-d, 2*d, 2*d)
		page.Fill()
	}

	return page.Close()
}

func drawPath(page *document.Page, p *path.Data) {
	for cmd, pts := range p.Iter() {
		switch cmd {
		case path.CmdMoveTo:
			page.MoveTo(pts[0].X, pts[0].Y)
		case path.CmdLineTo:
			page.LineTo(pts[0].X, pts[0].Y)
		case path.CmdClose:
			page.ClosePath()
		}
	}
}

func union(a, b rect.Rect) rect.Rect {
	return rect.Rect{
		LLx: min(a.LLx, b.LLx),
		LLy: min(a.LLy, b.LLy),
		URx: max(a.URx, b.URx),
		URy: max(a.URy, b.URy),
	}
}
