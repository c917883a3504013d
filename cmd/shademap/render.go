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
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"
	"golang.org/x/image/tiff"

	"seehuhn.de/go/shademap"
	"seehuhn.de/go/shademap/scene"
)

var cmdRender = cli.Command{
	Name:      "render",
	Usage:     "compute the shading map of a scene",
	ArgsUsage: "scene.yaml",
	Action:    runRender,
	Flags: append([]cli.Flag{
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "output file (default: the image name with the format's extension)",
		},
		&cli.StringFlag{
			Name:  "format",
			Usage: "output format, png or tiff (default: from the output file name)",
		},
		&cli.IntFlag{
			Name:  "width",
			Usage: "override the image width stored in the scene",
		},
		&cli.IntFlag{
			Name:  "height",
			Usage: "override the image height stored in the scene",
		},
	}, nameFlags()...),
}

func runRender(ctx *cli.Context) error {
	s, err := loadScene(ctx)
	if err != nil {
		return err
	}
	names := namesFromFlags(ctx)

	format, output, err := outputFormat(ctx.String("format"), ctx.String("output"), names.Image)
	if err != nil {
		return err
	}

	var st scene.Store = s
	if w, h := ctx.Int("width"), ctx.Int("height"); w > 0 || h > 0 {
		st = &resized{Store: s, width: w, height: h}
	}

	return scene.Run(st, names, &fileSink{fname: output, format: format})
}

// outputFormat determines the image format and the output file name.
func outputFormat(format, output, imageName string) (string, string, error) {
	if format == "" {
		switch strings.ToLower(filepath.Ext(output)) {
		case ".tif", ".tiff":
			format = "tiff"
		default:
			format = "png"
		}
	}
	if format != "png" && format != "tiff" {
		return "", "", fmt.Errorf("unsupported format %q", format)
	}
	if output == "" {
		output = imageName + "." + format
	}
	return format, output, nil
}

// resized replaces the image dimensions of a store.
type resized struct {
	scene.Store
	width, height int
}

func (r *resized) ImageSize(name string) (int, int, error) {
	w, h, err := r.Store.ImageSize(name)
	if err != nil {
		return 0, 0, err
	}
	if r.width > 0 {
		w = r.width
	}
	if r.height > 0 {
		h = r.height
	}
	return w, h, nil
}

// fileSink writes images to a file. The file is replaced atomically, so
// that a failed run leaves any previous output untouched.
type fileSink struct {
	fname  string
	format string
}

func (s *fileSink) WriteImage(_ string, img *shademap.Image) error {
	tmp, err := os.CreateTemp(filepath.Dir(s.fname), ".shademap-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	err = encode(tmp, img.Gray16(), s.format)
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}
	return os.Rename(tmp.Name(), s.fname)
}

func encode(w io.Writer, img image.Image, format string) error {
	switch format {
	case "tiff":
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate, Predictor: true})
	default:
		return png.Encode(w, img)
	}
}
