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
	"strconv"

	"godeckwriter/internal/script"
)

// SVG chart canvas. Pages scale the chart via CSS; the viewBox stays fixed.
const (
	chartWidth  = 640.0
	chartHeight = 360.0
)

// BarChartSVG renders one graph as a self-contained vertical bar chart.
// Labels and values are paired up to the shorter list; that is this
// renderer's policy for mismatched series. Bars scale against the largest
// positive value; non-positive values draw as zero-height bars on the
// baseline rather than being dropped, so a bar still appears per label.
func BarChartSVG(g *script.Graph, th Theme) (string, error) {
	if !g.Renderable() {
		return "", fmt.Errorf("graph is not renderable")
	}
	n := len(g.Labels)
	if len(g.Values) < n {
		n = len(g.Values)
	}

	const (
		marginTop    = 36.0
		marginBottom = 42.0
		marginSide   = 28.0
	)
	plotW := chartWidth - 2*marginSide
	plotH := chartHeight - marginTop - marginBottom
	baseline := marginTop + plotH

	maxVal := 0.0
	for _, v := range g.Values[:n] {
		if v > maxVal {
			maxVal = v
		}
	}

	slot := plotW / float64(n)
	barW := slot * 0.62

	var buf bytes.Buffer
	var werr error
	wf := func(format string, args ...any) {
		if werr != nil {
			return
		}
		_, werr = fmt.Fprintf(&buf, format, args...)
	}

	wf("<svg xmlns=\"http://www.w3.org/2000/svg\" viewBox=\"0 0 %g %g\" role=\"img\" aria-label=\"Bar chart\">\n", chartWidth, chartHeight)
	wf("  <rect x=\"0\" y=\"0\" width=\"%g\" height=\"%g\" fill=\"%s\"/>\n", chartWidth, chartHeight, escAttr(th.Surface))
	wf("  <line x1=\"%g\" y1=\"%g\" x2=\"%g\" y2=\"%g\" stroke=\"%s\" stroke-width=\"1\"/>\n",
		marginSide, baseline, chartWidth-marginSide, baseline, escAttr(th.Muted))

	for i := 0; i < n; i++ {
		v := g.Values[i]
		h := 0.0
		if maxVal > 0 && v > 0 {
			h = plotH * (v / maxVal)
		}
		x := marginSide + float64(i)*slot + (slot-barW)/2
		y := baseline - h
		wf("  <rect x=\"%s\" y=\"%s\" width=\"%s\" height=\"%s\" fill=\"%s\" stroke=\"%s\" stroke-width=\"1\"/>\n",
			f(x), f(y), f(barW), f(h), escAttr(th.BarFill), escAttr(th.BarStroke))
		// value above the bar
		wf("  <text x=\"%s\" y=\"%s\" text-anchor=\"middle\" font-family=\"%s\" font-size=\"12\" fill=\"%s\">%s</text>\n",
			f(x+barW/2), f(y-6), escAttr(th.FontFamily), escAttr(th.Text), escText(formatValue(v)))
		// label under the baseline
		wf("  <text x=\"%s\" y=\"%s\" text-anchor=\"middle\" font-family=\"%s\" font-size=\"13\" fill=\"%s\">%s</text>\n",
			f(x+barW/2), f(baseline+20), escAttr(th.FontFamily), escAttr(th.Text), escText(g.Labels[i]))
	}

	wf("</svg>\n")
	if werr != nil {
		return "", fmt.Errorf("build chart svg: %w", werr)
	}
	return buf.String(), nil
}

// f formats coordinates compactly, dropping noise digits.
func f(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func escAttr(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		ch := s[i]
		switch ch {
		case '&':
			out = append(out, '&', 'a', 'm', 'p', ';')
		case '"':
			out = append(out, '&', 'q', 'u', 'o', 't', ';')
		case '<':
			out = append(out, '&', 'l', 't', ';')
		case '\n':
			out = append(out, ' ')
		case '\r':
			// skip
		default:
			out = append(out, ch)
		}
	}
	return string(out)
}

func escText(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		ch := s[i]
		switch ch {
		case '&':
			out = append(out, '&', 'a', 'm', 'p', ';')
		case '<':
			out = append(out, '&', 'l', 't', ';')
		case '>':
			out = append(out, '&', 'g', 't', ';')
		default:
			out = append(out, ch)
		}
	}
	return string(out)
}
