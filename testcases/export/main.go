// Command export writes every test case as a scene file, so that the
// fixtures can be rendered with the shademap command.
// Run from the module root directory.
package main

import (
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/shademap/scene"
	"seehuhn.de/go/shademap/testcases"
)

const outDir = "testdata/scenes"

func main() {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			s, err := scene.FromInput(tc.Input, scene.DefaultNames, tc.Width, tc.Height)
			if err != nil {
				panic(err)
			}
			if err := writeScene(filepath.Join(outDir, name+".yaml"), s); err != nil {
				panic(err)
			}
		}
	}
}

func writeScene(fname string, s *scene.Scene) (err error) {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return s.Write(f)
}
