/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package deck assembles a parsed slide sequence into the render-ready Deck:
// display title, slug, chart numbering, per-deck stats and usage warnings.
// The parser stays pure; every consumer-side policy lives here.
package deck

import (
	"fmt"
	"time"

	"godeckwriter/internal/script"
	"godeckwriter/internal/version"
)

// DefaultTitle is used when no slide carries a title.
const DefaultTitle = "Presentation"

// Deck is the assembled view over a parsed slide sequence. It is the input
// to every renderer and exporter and the payload of the deck.json manifest.
type Deck struct {
	Title       string         `json:"title"`
	Slug        string         `json:"slug"`
	GeneratedAt time.Time      `json:"generatedAt"`
	Generator   string         `json:"generator"`
	Slides      []script.Slide `json:"slides"`
	Charts      []Chart        `json:"charts,omitempty"`
	Stats       Stats          `json:"stats"`
	Warnings    []string       `json:"warnings,omitempty"`
}

// Chart keys one renderable graph to its 1-based page index. Indices are
// contiguous and assigned in slide order; slides whose graph cannot be drawn
// (missing labels or values) get no chart page and no index.
type Chart struct {
	Index int    `json:"index"`
	Slide int    `json:"slide"` // 0-based position in Slides
	Title string `json:"title"`

	Graph *script.Graph `json:"-"` // resolved from the slide; not repeated in the manifest
}

// Stats are per-deck counters surfaced by check and stamped into the README.
type Stats struct {
	Slides       int `json:"slides"`
	Charts       int `json:"charts"`
	ContentItems int `json:"contentItems"`
	Attachments  int `json:"attachments"`
}

// Options tweak deck assembly.
type Options struct {
	Title string // overrides the title derived from the slides
}

// Build assembles a Deck from parsed slides. It never fails; problems with
// the input surface as warnings, not errors.
func Build(slides []script.Slide, opts Options) Deck {
	d := Deck{
		GeneratedAt: time.Now().UTC(),
		Generator:   "godeckwriter " + version.String(),
		Slides:      slides,
	}

	d.Title = opts.Title
	if d.Title == "" {
		for _, s := range slides {
			if s.Title != "" {
				d.Title = s.Title
				break
			}
		}
	}
	if d.Title == "" {
		d.Title = DefaultTitle
	}
	d.Slug = Slugify(d.Title)

	for i, s := range slides {
		d.Stats.ContentItems += len(s.Content)
		d.Stats.Attachments += len(s.Attachments)
		if s.Graph.Renderable() {
			d.Charts = append(d.Charts, Chart{
				Index: len(d.Charts) + 1,
				Slide: i,
				Title: s.Title,
				Graph: s.Graph,
			})
		}
	}
	d.Stats.Slides = len(slides)
	d.Stats.Charts = len(d.Charts)
	d.Warnings = collectWarnings(slides)
	return d
}

// collectWarnings inspects the slides for input that parses but will not do
// what the author likely intended. Warnings are guidance, never errors.
func collectWarnings(slides []script.Slide) []string {
	var ws []string
	if len(slides) == 0 {
		ws = append(ws, "no slides detected: add a slide marker (e.g. \"Slide 1\") or content lines")
		return ws
	}
	for i, s := range slides {
		g := s.Graph
		if g == nil {
			continue
		}
		if !g.Renderable() {
			ws = append(ws, fmt.Sprintf("slide %d: data line yields no drawable chart (needs both labels and values)", i+1))
			continue
		}
		if len(g.Labels) != len(g.Values) {
			ws = append(ws, fmt.Sprintf("slide %d: %d labels vs %d values; surplus entries are ignored when charting", i+1, len(g.Labels), len(g.Values)))
		}
	}
	return ws
}
