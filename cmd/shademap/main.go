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

// Command shademap computes face shading maps from scene files.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"

	"seehuhn.de/go/shademap"
	"seehuhn.de/go/shademap/scene"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "shademap:", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "shademap",
		Usage: "compute face shading maps from guide strokes",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "log every pipeline step",
			},
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"q"},
				Usage:   "only report errors",
			},
		},
		Before: setupLogging,
		Commands: []*cli.Command{
			&cmdRender,
			&cmdPreview,
			&cmdOverlay,
		},
	}
}

func setupLogging(ctx *cli.Context) error {
	level := slog.LevelInfo
	switch {
	case ctx.Bool("verbose"):
		level = slog.LevelDebug
	case ctx.Bool("quiet"):
		return nil
	}
	shademap.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))
	return nil
}

// nameFlags returns the flags which select objects inside a scene file.
func nameFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "mesh",
			Value: scene.DefaultNames.Mesh,
			Usage: "name of the head mesh",
		},
		&cli.StringFlag{
			Name:  "face-lines",
			Value: scene.DefaultNames.FaceLines,
			Usage: "name of the face-line guide object",
		},
		&cli.StringFlag{
			Name:  "nose",
			Value: scene.DefaultNames.Nose,
			Usage: "name of the nose guide object",
		},
		&cli.StringFlag{
			Name:  "rembrandt",
			Value: scene.DefaultNames.Rembrandt,
			Usage: "name of the Rembrandt guide object",
		},
		&cli.StringFlag{
			Name:  "image",
			Value: scene.DefaultNames.Image,
			Usage: "name of the target image",
		},
	}
}

func namesFromFlags(ctx *cli.Context) scene.Names {
	return scene.Names{
		Mesh:      ctx.String("mesh"),
		FaceLines: ctx.String("face-lines"),
		Nose:      ctx.String("nose"),
		Rembrandt: ctx.String("rembrandt"),
		Image:     ctx.String("image"),
	}
}

// loadScene reads the scene file named by the single command line argument.
func loadScene(ctx *cli.Context) (*scene.Scene, error) {
	if ctx.NArg() != 1 {
		return nil, fmt.Errorf("expected one scene file, got %d arguments", ctx.NArg())
	}
	fname := ctx.Args().First()

	f, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	s, err := scene.Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return s, nil
}
