/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package script

import (
	"fmt"
	"strconv"
	"strings"
)

// Serialize renders slides back to canonical script text using the English
// keyword spellings. Parsing the result yields an equivalent sequence, which
// makes Serialize usable as a "tidy" operation over hand-typed scripts.
func Serialize(slides []Slide) string {
	var b strings.Builder
	for i, s := range slides {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "Slide %d\n", i+1)
		if s.Title != "" {
			fmt.Fprintf(&b, "Title: %s\n", s.Title)
		}
		if len(s.Content) > 0 {
			fmt.Fprintf(&b, "Content: %s\n", strings.Join(s.Content, "; "))
		}
		if s.Graph != nil {
			b.WriteString(serializeGraph(s.Graph))
		}
		if s.Description != "" {
			fmt.Fprintf(&b, "Description: %s\n", s.Description)
		}
		if len(s.Attachments) > 0 {
			fmt.Fprintf(&b, "Attachment: %s\n", strings.Join(s.Attachments, ", "))
		}
	}
	return b.String()
}

func serializeGraph(g *Graph) string {
	var sections []string
	if len(g.Labels) > 0 {
		sections = append(sections, "Labels: "+strings.Join(g.Labels, ", "))
	}
	if len(g.Values) > 0 {
		toks := make([]string, 0, len(g.Values))
		for _, v := range g.Values {
			toks = append(toks, strconv.FormatFloat(v, 'g', -1, 64))
		}
		sections = append(sections, "Values: "+strings.Join(toks, ", "))
	}
	if len(sections) == 0 {
		// Bare data line round-trips to a graph with two empty lists.
		return "Data:\n"
	}
	return "Data: " + strings.Join(sections, "; ") + "\n"
}
