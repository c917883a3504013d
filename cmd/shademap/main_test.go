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
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/tiff"

	"seehuhn.de/go/shademap"
	"seehuhn.de/go/shademap/scene"
	"seehuhn.de/go/shademap/testcases"
)

func TestOutputFormat(t *testing.T) {
	tests := []struct {
		format, output string
		wantFormat     string
		wantOutput     string
		wantErr        bool
	}{
		{"", "", "png", "Face Shadow.png", false},
		{"tiff", "", "tiff", "Face Shadow.tiff", false},
		{"", "out.TIF", "tiff", "out.TIF", false},
		{"", "out.tiff", "tiff", "out.tiff", false},
		{"", "out.png", "png", "out.png", false},
		{"png", "out.tiff", "png", "out.tiff", false},
		{"jpeg", "", "", "", true},
	}
	for _, tc := range tests {
		format, output, err := outputFormat(tc.format, tc.output, "Face Shadow")
		if (err != nil) != tc.wantErr {
			t.Errorf("%q %q: unexpected error %v", tc.format, tc.output, err)
			continue
		}
		if format != tc.wantFormat || output != tc.wantOutput {
			t.Errorf("%q %q: expected %q %q, got %q %q",
				tc.format, tc.output, tc.wantFormat, tc.wantOutput, format, output)
		}
	}
}

// writeScene stores the single_line test case as a scene file in dir.
func writeScene(t *testing.T, dir string) string {
	t.Helper()
	var tc testcases.TestCase
	for _, c := range testcases.All["flat"] {
		if c.Name == "single_line" {
			tc = c
		}
	}

	fname := filepath.Join(dir, "scene.yaml")
	f, err := os.Create(fname)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	s, err := scene.FromInput(tc.Input, scene.DefaultNames, tc.Width, tc.Height)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Write(f); err != nil {
		t.Fatal(err)
	}
	return fname
}

func decodeFile(t *testing.T, fname string, decode func(*os.File) (image.Image, error)) image.Image {
	t.Helper()
	f, err := os.Open(fname)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := decode(f)
	if err != nil {
		t.Fatal(err)
	}
	return img
}

func TestRenderCommand(t *testing.T) {
	dir := t.TempDir()
	sceneFile := writeScene(t, dir)
	out := filepath.Join(dir, "shadow.png")

	err := newApp().Run([]string{"shademap", "-q", "render", "-o", out, sceneFile})
	if err != nil {
		t.Fatal(err)
	}

	img := decodeFile(t, out, func(f *os.File) (image.Image, error) { return png.Decode(f) })
	if b := img.Bounds(); b.Dx() != 64 || b.Dy() != 64 {
		t.Errorf("expected 64x64, got %v", b)
	}
	if _, ok := img.(*image.Gray16); !ok {
		t.Errorf("expected a 16-bit grayscale image, got %T", img)
	}
}

func TestRenderCommandResized(t *testing.T) {
	dir := t.TempDir()
	sceneFile := writeScene(t, dir)
	out := filepath.Join(dir, "shadow.tif")

	err := newApp().Run([]string{"shademap", "-q", "render", "--width", "20", "-o", out, sceneFile})
	if err != nil {
		t.Fatal(err)
	}

	img := decodeFile(t, out, func(f *os.File) (image.Image, error) { return tiff.Decode(f) })
	if b := img.Bounds(); b.Dx() != 20 || b.Dy() != 64 {
		t.Errorf("expected 20x64, got %v", b)
	}
}

func TestRenderCommandMissingObject(t *testing.T) {
	dir := t.TempDir()
	sceneFile := writeScene(t, dir)
	out := filepath.Join(dir, "shadow.png")

	err := newApp().Run([]string{"shademap", "-q", "render", "--nose", "Chin Line", "-o", out, sceneFile})
	if err == nil {
		t.Fatal("missing guide object not reported")
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Error("output written despite error")
	}
}

func TestPreviewCommand(t *testing.T) {
	dir := t.TempDir()
	sceneFile := writeScene(t, dir)
	out := filepath.Join(dir, "preview.pdf")

	err := newApp().Run([]string{"shademap", "-q", "preview", "-o", out, sceneFile})
	if err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Error("output is not a PDF file")
	}
}

func TestDrawOverlay(t *testing.T) {
	buf, err := shademap.NewBuffer(4, 4)
	if err != nil {
		t.Fatal(err)
	}
	img := buf.Finalize()
	proj := &shademap.Projection{
		Lines: []shademap.Line{{{X: 0.5, Y: 0}, {X: 0.5, Y: 1}}},
	}

	dst := drawOverlay(img, proj, 4, 2)
	if b := dst.Bounds(); b.Dx() != 16 || b.Dy() != 16 {
		t.Fatalf("expected 16x16, got %v", b)
	}

	// the line covers the two pixel columns around x=8
	if c := dst.RGBAAt(8, 5); c.R == 0 {
		t.Errorf("expected the line colour at (8, 5), got %v", c)
	}
	if c := dst.RGBAAt(2, 5); c.R != 0 || c.A != 0xff {
		t.Errorf("expected opaque black at (2, 5), got %v", c)
	}
}
