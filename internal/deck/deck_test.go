/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package deck

import (
	"strings"
	"testing"

	"godeckwriter/internal/script"
)

const sampleScript = `Slide 1
Title: Quarterly Review
Content: revenue up; costs flat
Data: Labels: q1, q2, q3; Values: 10, 12, 15
Description: the headline numbers

Slide 2
Title: Outlook
Content: hiring; tooling
Attachment: roadmap.pdf

Slide 3
Data: Labels: a, b`

func TestBuildAssignsChartIndicesInSlideOrder(t *testing.T) {
	d := Build(script.Parse(sampleScript), Options{})
	if d.Stats.Slides != 3 {
		t.Fatalf("expected 3 slides, got %d", d.Stats.Slides)
	}
	// Slide 3 has a data line but no values, so only slide 1 charts.
	if len(d.Charts) != 1 {
		t.Fatalf("expected 1 chart, got %d", len(d.Charts))
	}
	c := d.Charts[0]
	if c.Index != 1 || c.Slide != 0 {
		t.Fatalf("unexpected chart keying: %+v", c)
	}
	if c.Graph == nil || len(c.Graph.Labels) != 3 {
		t.Fatalf("chart graph not resolved: %+v", c.Graph)
	}
	if c.Title != "Quarterly Review" {
		t.Fatalf("unexpected chart title: %q", c.Title)
	}
}

func TestBuildDerivesTitleAndSlug(t *testing.T) {
	d := Build(script.Parse(sampleScript), Options{})
	if d.Title != "Quarterly Review" {
		t.Fatalf("unexpected deck title: %q", d.Title)
	}
	if d.Slug != "quarterly-review" {
		t.Fatalf("unexpected slug: %q", d.Slug)
	}
	if !strings.HasPrefix(d.Generator, "godeckwriter ") {
		t.Fatalf("unexpected generator stamp: %q", d.Generator)
	}

	d = Build(script.Parse(sampleScript), Options{Title: "Override"})
	if d.Title != "Override" || d.Slug != "override" {
		t.Fatalf("title override not applied: %q %q", d.Title, d.Slug)
	}

	d = Build(script.Parse("Slide 1\nContent: untitled deck"), Options{})
	if d.Title != DefaultTitle || d.Slug != "presentation" {
		t.Fatalf("default title not applied: %q %q", d.Title, d.Slug)
	}
}

func TestBuildCountsStats(t *testing.T) {
	d := Build(script.Parse(sampleScript), Options{})
	if d.Stats.ContentItems != 4 {
		t.Fatalf("expected 4 content items, got %d", d.Stats.ContentItems)
	}
	if d.Stats.Attachments != 1 {
		t.Fatalf("expected 1 attachment, got %d", d.Stats.Attachments)
	}
	if d.Stats.Charts != 1 {
		t.Fatalf("expected 1 chart in stats, got %d", d.Stats.Charts)
	}
}

func TestWarningsForEmptyDeck(t *testing.T) {
	d := Build(script.Parse(""), Options{})
	if len(d.Warnings) != 1 || !strings.Contains(d.Warnings[0], "no slides detected") {
		t.Fatalf("expected the no-slides warning, got %+v", d.Warnings)
	}
}

func TestWarningsForUndrawableAndMismatchedGraphs(t *testing.T) {
	d := Build(script.Parse(sampleScript), Options{})
	found := false
	for _, w := range d.Warnings {
		if strings.Contains(w, "slide 3") && strings.Contains(w, "no drawable chart") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected an undrawable-chart warning for slide 3, got %+v", d.Warnings)
	}

	d = Build(script.Parse("Slide 1\nData: Labels: a, b, c; Values: 1"), Options{})
	found = false
	for _, w := range d.Warnings {
		if strings.Contains(w, "3 labels vs 1 values") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a mismatch warning, got %+v", d.Warnings)
	}
}
