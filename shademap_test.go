package shademap_test

import (
	"bytes"
	"errors"
	"log/slog"
	"math"
	"slices"
	"strings"
	"testing"

	"github.com/ungerik/go3d/float64/vec3"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/shademap"
	"seehuhn.de/go/shademap/testcases"
)

func findCase(t *testing.T, category, name string) testcases.TestCase {
	t.Helper()
	for _, tc := range testcases.All[category] {
		if tc.Name == name {
			return tc
		}
	}
	t.Fatalf("test case %s/%s not found", category, name)
	return testcases.TestCase{}
}

// TestGenerateAll checks that every test case produces a complete image with
// channel values in [0, 1].
func TestGenerateAll(t *testing.T) {
	for category, cases := range testcases.All {
		for _, tc := range cases {
			t.Run(category+"/"+tc.Name, func(t *testing.T) {
				img, err := shademap.Generate(tc.Input, tc.Width, tc.Height)
				if err != nil {
					t.Fatal(err)
				}
				if img.Width != tc.Width || img.Height != tc.Height {
					t.Fatalf("expected %dx%d, got %dx%d", tc.Width, tc.Height, img.Width, img.Height)
				}
				if len(img.Pix) != 4*tc.Width*tc.Height {
					t.Fatalf("expected %d channel values, got %d", 4*tc.Width*tc.Height, len(img.Pix))
				}
				for i := 0; i < len(img.Pix); i += 4 {
					s := img.Pix[i]
					if !(s >= 0 && s <= 1) {
						t.Fatalf("pixel %d: value %g out of range", i/4, s)
					}
					if img.Pix[i+1] != s || img.Pix[i+2] != s || img.Pix[i+3] != 1 {
						t.Fatalf("pixel %d: expected (s, s, s, 1), got %v", i/4, img.Pix[i:i+4])
					}
				}
			})
		}
	}
}

// TestSmallImage checks every pixel of a 4×4 map. The face line runs
// horizontally through v=0.5 and the centre of the nose loop is sampled by
// pixel (1, 1).
func TestSmallImage(t *testing.T) {
	tc := findCase(t, "flat", "triangle")
	img, err := shademap.Generate(tc.Input, tc.Width, tc.Height)
	if err != nil {
		t.Fatal(err)
	}

	below := []float64{0, 0.25 / 0.3 / 2, 0.5 + 0.2/0.7/2, 0.5 + 0.45/0.7/2}
	above := []float64{0, 0.25 / 0.7 / 2, 0.5 / 0.7 / 2, 0.5 + 0.05/0.3/2}
	expected := [][]float64{below, slices.Clone(below), above, above}
	expected[1][1] /= 2 // nose centre, blended with 0

	for y := range 4 {
		for x := range 4 {
			v := float64(img.Pix[4*(y*4+x)])
			if math.Abs(v-expected[y][x]) > 1e-6 {
				t.Errorf("(%d, %d): expected %g, got %g", x, y, expected[y][x], v)
			}
		}
	}
}

// TestWorldTransform checks that moving the mesh and the strokes together
// does not change the result.
func TestWorldTransform(t *testing.T) {
	ref := findCase(t, "flat", "single_line")
	moved := findCase(t, "flat", "translated")

	p1, err := shademap.Project(ref.Input)
	if err != nil {
		t.Fatal(err)
	}
	p2, err := shademap.Project(moved.Input)
	if err != nil {
		t.Fatal(err)
	}

	compare := func(name string, a, b []vec.Vec2) {
		if len(a) != len(b) {
			t.Errorf("%s: %d != %d points", name, len(a), len(b))
			return
		}
		for i := range a {
			if math.Abs(a[i].X-b[i].X) > 1e-9 || math.Abs(a[i].Y-b[i].Y) > 1e-9 {
				t.Errorf("%s point %d: %v != %v", name, i, a[i], b[i])
			}
		}
	}
	compare("face line", p1.Lines[0], p2.Lines[0])
	compare("nose", p1.Nose, p2.Nose)
	compare("Rembrandt", p1.Rembrandt, p2.Rembrandt)

	img1, err := shademap.Render(p1, ref.Width, ref.Height)
	if err != nil {
		t.Fatal(err)
	}
	img2, err := shademap.Render(p2, moved.Width, moved.Height)
	if err != nil {
		t.Fatal(err)
	}
	for i := range img1.Pix {
		if math.Abs(float64(img1.Pix[i]-img2.Pix[i])) > 1e-6 {
			t.Fatalf("channel %d: %g != %g", i, img1.Pix[i], img2.Pix[i])
		}
	}
}

// TestCylinderProjection checks that strokes drawn just outside a closed
// cylinder land on the front, not on the back of the mesh.
func TestCylinderProjection(t *testing.T) {
	tc := findCase(t, "head", "full_cylinder")
	p, err := shademap.Project(tc.Input)
	if err != nil {
		t.Fatal(err)
	}

	center := vec.Vec2{}
	for _, q := range p.Nose[:len(p.Nose)-1] {
		center = center.Add(q)
	}
	center = center.Mul(1 / float64(len(p.Nose)-1))
	if math.Abs(center.X-0.5) > 0.01 || math.Abs(center.Y-0.4) > 0.01 {
		t.Errorf("expected the nose near (0.5, 0.4), got %v", center)
	}

	// face line 0 is drawn at angle -0.4, with a wiggle of ±0.05
	u0 := (math.Pi - 0.4) / (2 * math.Pi)
	for i, q := range p.Lines[0] {
		if math.Abs(q.X-u0) > 0.02 {
			t.Errorf("point %d: expected u≈%.3f, got %.3f", i, u0, q.X)
		}
		if q.Y < -0.01 || q.Y > 1.01 {
			t.Errorf("point %d: v=%.3f out of range", i, q.Y)
		}
	}
}

func TestErrors(t *testing.T) {
	base := findCase(t, "flat", "single_line")
	p := vec3.T{0.5, 0.5, 0}

	tests := []struct {
		name   string
		modify func(in *shademap.Input)
		width  int
		target error
	}{
		{
			name:   "empty mesh",
			modify: func(in *shademap.Input) { in.Mesh.Triangles = nil },
			width:  16,
			target: shademap.ErrEmptyMesh,
		},
		{
			name:   "empty nose",
			modify: func(in *shademap.Input) { in.Nose.Points = nil },
			width:  16,
			target: shademap.ErrEmptyStroke,
		},
		{
			name: "empty face line",
			modify: func(in *shademap.Input) {
				in.FaceLines = append(in.FaceLines, shademap.Stroke{})
			},
			width:  16,
			target: shademap.ErrEmptyStroke,
		},
		{
			name:   "one point nose",
			modify: func(in *shademap.Input) { in.Nose.Points = in.Nose.Points[:1] },
			width:  16,
			target: shademap.ErrDegenerateShape,
		},
		{
			name:   "two point Rembrandt",
			modify: func(in *shademap.Input) { in.Rembrandt.Points = in.Rembrandt.Points[:2] },
			width:  16,
			target: shademap.ErrDegenerateShape,
		},
		{
			name:   "coincident nose",
			modify: func(in *shademap.Input) { in.Nose.Points = []vec3.T{p, p, p, p} },
			width:  16,
			target: shademap.ErrDegenerateShape,
		},
		{
			name:   "zero width",
			modify: func(in *shademap.Input) {},
			width:  0,
			target: shademap.ErrInvalidSize,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in := *base.Input
			in.FaceLines = slices.Clone(in.FaceLines)
			tc.modify(&in)

			img, err := shademap.Generate(&in, tc.width, 16)
			if !errors.Is(err, tc.target) {
				t.Fatalf("expected %v, got %v", tc.target, err)
			}
			if img != nil {
				t.Error("partial image returned")
			}
		})
	}
}

func TestLogging(t *testing.T) {
	buf := &bytes.Buffer{}
	shademap.SetLogger(slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer shademap.SetLogger(nil)

	tc := findCase(t, "flat", "three_lines")
	if _, err := shademap.Generate(tc.Input, tc.Width, tc.Height); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	for _, msg := range []string{"face lines mapped", "base pixels done", "nose pixels done", "Rembrandt pixels done"} {
		if !strings.Contains(out, msg) {
			t.Errorf("log message %q missing", msg)
		}
	}
	if n := strings.Count(out, "face line mapped"); n != 3 {
		t.Errorf("expected 3 debug messages for face lines, got %d", n)
	}
}
