/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package script

import (
	"regexp"
	"strconv"
	"strings"
)

// Keyword grammar. Matching is case-insensitive; the accented keywords accept
// both spellings as first-class, and the Spanish and English forms are
// synonyms. Patterns are anchored at the start of an already-trimmed line.
var (
	reMarker      = regexp.MustCompile(`^(?i)(?:diapositiva|slide)\s+\d+`)
	reTitle       = regexp.MustCompile(`^(?i)(?:t[ií]tulo|title)\s*:\s*(.*)$`)
	reContent     = regexp.MustCompile(`^(?i)(?:contenido|contexto|content|context)\s*:\s*(.*)$`)
	reData        = regexp.MustCompile(`^(?i)(?:datos|data|gr[aá]fico|chart)\s*:\s*(.*)$`)
	reDescription = regexp.MustCompile(`^(?i)(?:descripci[oó]n|description)\s*:\s*(.*)$`)
	reAttachment  = regexp.MustCompile(`^(?i)(?:adjuntos?|attachments?)\s*:\s*(.*)$`)

	// Sub-prefixes inside a data line's ;-separated sections.
	reLabels = regexp.MustCompile(`^(?i)(?:etiquetas?|labels?)\s*:\s*(.*)$`)
	reValues = regexp.MustCompile(`^(?i)(?:valor(?:es)?|values?)\s*:\s*(.*)$`)
)

// Parse turns a deck script into an ordered slide sequence.
// Supported syntax (one directive per line, blank lines ignored):
//
//   - Slide markers: "Slide N" / "Diapositiva N" flush the current slide and
//     start a new one. N is cosmetic; sequence order decides position.
//   - "Title:" sets the slide title (last occurrence wins).
//   - "Content:" / "Context:" append ;-separated fragments as bullet items.
//   - "Data:" (also "Chart:" / "Gráfico:") rebuilds the slide's graph from
//     ;-separated "Labels:" and "Values:" sections. Each data line replaces
//     the previous graph wholesale; value tokens that fail to parse as
//     numbers are dropped silently.
//   - "Description:" sets the caption text (last occurrence wins).
//   - "Attachment:" appends ,-separated names; multiple lines accumulate.
//   - Anything else is fallback content, split on ";" like "Content:".
//
// Lines before the first marker lazily create an implicit slide, so no input
// is ever lost. Parse never fails: malformed input degrades into fallback
// content, and blank or empty input yields an empty sequence.
func Parse(input string) []Slide {
	slides := []Slide{}
	var cur *Slide

	ensure := func() *Slide {
		if cur == nil {
			cur = &Slide{Content: []string{}}
		}
		return cur
	}
	flush := func() {
		if cur != nil {
			slides = append(slides, *cur)
			cur = nil
		}
	}
	addContent := func(rest string) {
		s := ensure()
		for _, frag := range strings.Split(rest, ";") {
			if frag = strings.TrimSpace(frag); frag != "" {
				s.Content = append(s.Content, frag)
			}
		}
	}

	// Ordered dispatch table; first match wins.
	rules := []struct {
		re    *regexp.Regexp
		apply func(rest string)
	}{
		{reTitle, func(rest string) { ensure().Title = rest }},
		{reContent, addContent},
		{reData, func(rest string) { ensure().Graph = parseGraph(rest) }},
		{reDescription, func(rest string) { ensure().Description = rest }},
		{reAttachment, func(rest string) {
			s := ensure()
			for _, frag := range strings.Split(rest, ",") {
				if frag = strings.TrimSpace(frag); frag != "" {
					s.Attachments = append(s.Attachments, frag)
				}
			}
		}},
	}

	for _, raw := range strings.Split(input, "\n") {
		line := strings.TrimSpace(raw) // also strips the \r of CRLF input
		if line == "" {
			continue
		}
		if reMarker.MatchString(line) {
			flush()
			cur = &Slide{Content: []string{}}
			continue
		}
		matched := false
		for _, r := range rules {
			if m := r.re.FindStringSubmatch(line); m != nil {
				r.apply(strings.TrimSpace(m[1]))
				matched = true
				break
			}
		}
		if !matched {
			addContent(line)
		}
	}
	flush()
	return slides
}

// parseGraph builds a fresh graph record from the remainder of a data line.
// Sections are ;-separated and classified independently; sections matching
// neither sub-prefix are ignored. The lists start empty and stay empty when
// nothing contributes, which keeps "data line with no usable sections"
// distinguishable from "no data line at all" (nil graph).
func parseGraph(rest string) *Graph {
	g := &Graph{Labels: []string{}, Values: []float64{}}
	for _, section := range strings.Split(rest, ";") {
		section = strings.TrimSpace(section)
		if m := reLabels.FindStringSubmatch(section); m != nil {
			labels := []string{}
			for _, frag := range strings.Split(m[1], ",") {
				if frag = strings.TrimSpace(frag); frag != "" {
					labels = append(labels, frag)
				}
			}
			g.Labels = labels
			continue
		}
		if m := reValues.FindStringSubmatch(section); m != nil {
			values := []float64{}
			for _, tok := range strings.Split(m[1], ",") {
				if v, err := strconv.ParseFloat(strings.TrimSpace(tok), 64); err == nil {
					values = append(values, v)
				}
			}
			g.Values = values
		}
	}
	return g
}
