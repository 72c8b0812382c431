/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package script

// Slide is one structured record extracted from a deck script, corresponding
// to one presentation unit. Fields keep the order in which the script
// supplied them; a Slide is immutable once Parse returns.

type Slide struct {
	Title       string   `json:"title"`
	Content     []string `json:"content"`
	Graph       *Graph   `json:"graph,omitempty"`
	Description string   `json:"description,omitempty"`
	Attachments []string `json:"attachments,omitempty"`
}

// Graph holds the label and numeric value series backing one slide's chart.
// Labels and Values are populated independently and their lengths are not
// required to match; renderers pair them up and decide their own policy.
// A nil Graph means the slide never carried a data line; a non-nil Graph
// with two empty lists means a data line was seen but contributed nothing.

type Graph struct {
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
}

// Renderable reports whether the graph carries enough data to draw:
// at least one label and at least one value.
func (g *Graph) Renderable() bool {
	return g != nil && len(g.Labels) > 0 && len(g.Values) > 0
}
