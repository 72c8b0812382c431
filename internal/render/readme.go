/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package render

import (
	"bytes"
	"fmt"

	"godeckwriter/internal/deck"
)

// ReadmeFileName is the short summary packaged with every built deck.
const ReadmeFileName = "README.md"

// RenderReadme generates the markdown summary: what the deck contains, which
// files the build produced and anything the author should look at.
func RenderReadme(d deck.Deck) []byte {
	var b bytes.Buffer
	fmt.Fprintf(&b, "# %s\n\n", d.Title)
	fmt.Fprintf(&b, "Generated by %s on %s.\n\n", d.Generator, d.GeneratedAt.Format("2006-01-02"))

	fmt.Fprintf(&b, "- Slides: %d\n", d.Stats.Slides)
	fmt.Fprintf(&b, "- Charts: %d\n", d.Stats.Charts)
	fmt.Fprintf(&b, "- Content items: %d\n", d.Stats.ContentItems)
	fmt.Fprintf(&b, "- Attachments: %d\n", d.Stats.Attachments)

	b.WriteString("\n## Files\n\n")
	fmt.Fprintf(&b, "- %s: the full presentation\n", PresentationFileName)
	for _, c := range d.Charts {
		fmt.Fprintf(&b, "- %s: chart for slide %d\n", ChartFileName(c.Index), c.Slide+1)
	}
	fmt.Fprintf(&b, "- %s: machine-readable manifest\n", deck.ManifestFileName)

	if len(d.Slides) > 0 {
		b.WriteString("\n## Outline\n\n")
		for i, s := range d.Slides {
			title := s.Title
			if title == "" {
				title = fmt.Sprintf("Slide %d", i+1)
			}
			note := ""
			if s.Graph.Renderable() {
				note = ", chart"
			}
			fmt.Fprintf(&b, "%d. %s (%d items%s)\n", i+1, title, len(s.Content), note)
		}
	}

	attachments := collectAttachments(d)
	if len(attachments) > 0 {
		b.WriteString("\n## Attachments\n\n")
		for _, a := range attachments {
			fmt.Fprintf(&b, "- %s\n", a)
		}
	}

	if len(d.Warnings) > 0 {
		b.WriteString("\n## Warnings\n\n")
		for _, w := range d.Warnings {
			fmt.Fprintf(&b, "- %s\n", w)
		}
	}
	return b.Bytes()
}

func collectAttachments(d deck.Deck) []string {
	var out []string
	for _, s := range d.Slides {
		out = append(out, s.Attachments...)
	}
	return out
}
