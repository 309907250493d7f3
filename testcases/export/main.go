// Command export writes the test cases, together with their decomposed
// geometry, to testdata/decomposed.json.
package main

import (
	"encoding/json"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/curvefill"
	"seehuhn.de/go/curvefill/testcases"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	d := curvefill.NewDecomposer()
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			jtc, err := toJSON(d, category, tc)
			if err != nil {
				panic(err)
			}
			out.TestCases = append(out.TestCases, jtc)
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/decomposed.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name       string                       `json:"name"`
	Width      int                          `json:"width"`
	Height     int                          `json:"height"`
	FillRule   string                       `json:"fill_rule"`
	Path       []jsonSegment                `json:"path"`
	Primitives []jsonPrimitive              `json:"primitives"`
	Tallies    []curvefill.PrimitiveTallies `json:"tallies"`
}

type jsonSegment struct {
	Cmd string      `json:"cmd"`
	Pts [][]float64 `json:"pts"`
}

type jsonPrimitive struct {
	Verb   string      `json:"verb"`
	Pts    [][]float64 `json:"pts,omitempty"`
	Weight float64     `json:"w,omitempty"`
	Cap    bool        `json:"cusp_cap,omitempty"`
}

func toJSON(d *curvefill.Decomposer, category string, tc testcases.TestCase) (jsonTestCase, error) {
	jtc := jsonTestCase{
		Name:     category + "_" + tc.Name,
		Width:    tc.Width,
		Height:   tc.Height,
		FillRule: "nonzero",
		Path:     pathToJSON(tc.Path.Iter()),
	}
	if tc.Rule == testcases.EvenOdd {
		jtc.FillRule = "evenodd"
	}

	d.Reset()
	if _, err := d.AddPath(tc.Path, tc.CTM); err != nil {
		return jtc, err
	}
	for prim := range d.Primitives() {
		jtc.Primitives = append(jtc.Primitives, jsonPrimitive{
			Verb:   prim.Verb.String(),
			Pts:    pointsToJSON(prim.Pts),
			Weight: prim.Weight,
			Cap:    prim.CuspCap,
		})
	}
	jtc.Tallies = slices.Clone(d.ContourTallies())
	return jtc, nil
}

func pathToJSON(p path.Path) []jsonSegment {
	var segs []jsonSegment
	for cmd, pts := range p {
		seg := jsonSegment{Pts: pointsToJSON(pts)}
		switch cmd {
		case path.CmdMoveTo:
			seg.Cmd = "M"
		case path.CmdLineTo:
			seg.Cmd = "L"
		case path.CmdQuadTo:
			seg.Cmd = "Q"
		case path.CmdCubeTo:
			seg.Cmd = "C"
		case path.CmdClose:
			seg.Cmd = "Z"
		}
		segs = append(segs, seg)
	}
	return segs
}

func pointsToJSON(pts []vec.Vec2) [][]float64 {
	res := make([][]float64, len(pts))
	for i, pt := range pts {
		res[i] = []float64{pt.X, pt.Y}
	}
	return res
}
