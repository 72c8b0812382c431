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
	"html/template"

	"godeckwriter/internal/deck"
)

// ChartFileName names the standalone page of the index-th chart (1-based),
// matching the chartN pattern the archive and README refer to.
func ChartFileName(index int) string {
	return fmt.Sprintf("chart%d.html", index)
}

type chartPageData struct {
	Title       string
	Deck        string
	CSS         template.CSS
	SVG         template.HTML
	Description string
	SlideNumber int
}

const chartPageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}} &middot; {{.Deck}}</title>
<style>{{.CSS}}</style>
</head>
<body>
<main>
<section class="slide">
<h2>{{.Title}}</h2>
<figure class="chart">
{{.SVG}}{{if .Description}}<figcaption>{{.Description}}</figcaption>
{{end}}</figure>
<p class="back"><a href="presentation.html#slide-{{.SlideNumber}}">Back to the presentation</a></p>
</section>
</main>
</body>
</html>
`

var chartPageTmpl = template.Must(template.New("chartpage").Parse(chartPageTemplate))

// RenderChartPage renders one chart as a standalone page. The page heading
// is the owning slide's title, or "Chart N" when the slide has none.
func RenderChartPage(d deck.Deck, c deck.Chart, th Theme) ([]byte, error) {
	svg, err := BarChartSVG(c.Graph, th)
	if err != nil {
		return nil, fmt.Errorf("chart %d: %w", c.Index, err)
	}
	title := c.Title
	if title == "" {
		title = fmt.Sprintf("Chart %d", c.Index)
	}
	var description string
	if c.Slide >= 0 && c.Slide < len(d.Slides) {
		description = d.Slides[c.Slide].Description
	}
	data := chartPageData{
		Title:       title,
		Deck:        d.Title,
		CSS:         themeCSS(th),
		SVG:         template.HTML(svg),
		Description: description,
		SlideNumber: c.Slide + 1,
	}
	var buf bytes.Buffer
	if err := chartPageTmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render chart page %d: %w", c.Index, err)
	}
	return buf.Bytes(), nil
}
