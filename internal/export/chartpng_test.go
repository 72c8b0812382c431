/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package export

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"godeckwriter/internal/render"
	"godeckwriter/internal/script"
)

func TestChartPNG(t *testing.T) {
	g := &script.Graph{Labels: []string{"q1", "q2", "q3"}, Values: []float64{10, 12, 15}}
	data, err := ChartPNG(g, "Quarterly Review", render.Light())
	if err != nil {
		t.Fatalf("chart png: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	b := img.Bounds()
	if b.Dx() != chartPNGWidth || b.Dy() != chartPNGHeight {
		t.Fatalf("unexpected dimensions %dx%d", b.Dx(), b.Dy())
	}
}

func TestChartPNGRejectsUndrawableGraphs(t *testing.T) {
	cases := []*script.Graph{
		nil,
		{},
		{Labels: []string{"a"}},
		{Values: []float64{1}},
	}
	for _, g := range cases {
		if _, err := ChartPNG(g, "", render.Light()); err == nil {
			t.Fatalf("expected error for %+v", g)
		}
	}
}

func TestChartPNGToleratesMismatchedPairs(t *testing.T) {
	g := &script.Graph{Labels: []string{"a", "b", "c"}, Values: []float64{4}}
	if _, err := ChartPNG(g, "", render.Slate()); err != nil {
		t.Fatalf("mismatched pairs should render the overlap: %v", err)
	}
}

func TestChartPNGNonPositiveValues(t *testing.T) {
	g := &script.Graph{Labels: []string{"a", "b"}, Values: []float64{0, -3}}
	if _, err := ChartPNG(g, "flat", render.Dark()); err != nil {
		t.Fatalf("non-positive values should yield zero-height bars: %v", err)
	}
}

func TestExportChartPNGs(t *testing.T) {
	dir := t.TempDir()
	d := deckFixture(t)
	if err := ExportChartPNGs(d, render.Light(), dir); err != nil {
		t.Fatalf("export chart pngs: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(dir, "chart1.png"))
	if err != nil {
		t.Fatalf("read chart1.png: %v", err)
	}
	if _, err := png.DecodeConfig(bytes.NewReader(data)); err != nil {
		t.Fatalf("chart1.png is not a png: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "chart2.png")); !os.IsNotExist(err) {
		t.Fatalf("deck has one chart; found a second image")
	}
}
