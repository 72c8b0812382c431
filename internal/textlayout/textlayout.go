/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package textlayout measures and fits raster label text for the chart
// renderer. Everything runs on the bundled bitmap face, so measurements are
// deterministic across platforms and no font files ship with the binary.
package textlayout

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Face returns the fixed 7x13 bitmap face used for chart labels.
func Face() font.Face { return basicfont.Face7x13 }

// Advance returns the horizontal advance of s in whole pixels.
func Advance(face font.Face, s string) int {
	d := &font.Drawer{Face: face}
	return int(d.MeasureString(s) >> 6) // fixed.Int26_6 to px
}

// LineHeight returns ascent plus descent in pixels, the vertical step for
// stacked labels.
func LineHeight(face font.Face) int {
	m := face.Metrics()
	return m.Ascent.Round() + m.Descent.Round()
}

// CenterOffset returns the x offset that centers s inside a span w pixels
// wide. Text wider than the span is pinned to the left edge instead of
// running past it on both sides.
func CenterOffset(face font.Face, s string, w int) int {
	adv := Advance(face, s)
	if adv >= w {
		return 0
	}
	return (w - adv) / 2
}

// TruncateToWidth returns s unchanged when it fits within maxW pixels,
// otherwise it drops runes and appends "..." until the result fits. When
// not even the ellipsis fits, the result is empty.
func TruncateToWidth(face font.Face, s string, maxW int) string {
	if Advance(face, s) <= maxW {
		return s
	}
	const ellipsis = "..."
	runes := []rune(s)
	for len(runes) > 0 {
		runes = runes[:len(runes)-1]
		if Advance(face, string(runes)+ellipsis) <= maxW {
			return string(runes) + ellipsis
		}
	}
	return ""
}
