/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package render

import (
	"strings"
	"testing"

	"godeckwriter/internal/script"
)

func TestBarChartSVGDrawsOneBarPerPair(t *testing.T) {
	g := &script.Graph{Labels: []string{"q1", "q2", "q3"}, Values: []float64{10, 12, 15}}
	svg, err := BarChartSVG(g, Light())
	if err != nil {
		t.Fatalf("BarChartSVG error: %v", err)
	}
	// background rect plus one rect per bar
	if got := strings.Count(svg, "<rect"); got != 4 {
		t.Fatalf("expected 4 rects, got %d:\n%s", got, svg)
	}
	for _, want := range []string{"q1", "q2", "q3", ">10<", ">15<"} {
		if !strings.Contains(svg, want) {
			t.Fatalf("svg missing %q:\n%s", want, svg)
		}
	}
	if !strings.HasPrefix(svg, "<svg xmlns=") {
		t.Fatalf("svg must be self-contained, got prefix %q", svg[:20])
	}
}

func TestBarChartSVGPairsUpToShorterList(t *testing.T) {
	g := &script.Graph{Labels: []string{"a", "b", "c"}, Values: []float64{5}}
	svg, err := BarChartSVG(g, Light())
	if err != nil {
		t.Fatalf("BarChartSVG error: %v", err)
	}
	if got := strings.Count(svg, "<rect"); got != 2 { // background + single pair
		t.Fatalf("expected 2 rects for one pair, got %d", got)
	}
	if strings.Contains(svg, ">b<") || strings.Contains(svg, ">c<") {
		t.Fatalf("unpaired labels must not render:\n%s", svg)
	}
}

func TestBarChartSVGEscapesLabels(t *testing.T) {
	g := &script.Graph{Labels: []string{`<b>&"x"`}, Values: []float64{1}}
	svg, err := BarChartSVG(g, Light())
	if err != nil {
		t.Fatalf("BarChartSVG error: %v", err)
	}
	if strings.Contains(svg, "<b>") {
		t.Fatalf("label markup leaked into svg:\n%s", svg)
	}
	if !strings.Contains(svg, "&lt;b&gt;") {
		t.Fatalf("label not escaped:\n%s", svg)
	}
}

func TestBarChartSVGRejectsUndrawableGraphs(t *testing.T) {
	for _, g := range []*script.Graph{
		nil,
		{Labels: []string{}, Values: []float64{}},
		{Labels: []string{"a"}, Values: []float64{}},
	} {
		if _, err := BarChartSVG(g, Light()); err == nil {
			t.Fatalf("expected error for graph %+v", g)
		}
	}
}

func TestBarChartSVGToleratesNonPositiveValues(t *testing.T) {
	g := &script.Graph{Labels: []string{"a", "b"}, Values: []float64{-3, 0}}
	svg, err := BarChartSVG(g, Light())
	if err != nil {
		t.Fatalf("BarChartSVG error: %v", err)
	}
	// All bars collapse to the baseline; the chart must still be well formed.
	if !strings.Contains(svg, "</svg>") {
		t.Fatalf("svg not closed:\n%s", svg)
	}
}
