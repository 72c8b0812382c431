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

// PresentationFileName is the entry page of a built deck.
const PresentationFileName = "presentation.html"

type slideView struct {
	Number      int
	Title       string
	Content     []string
	ChartSVG    template.HTML
	ChartIndex  int
	Description string
	Attachments []string
}

type presentationData struct {
	Title       string
	Generator   string
	GeneratedAt string
	CSS         template.CSS
	Slides      []slideView
}

const presentationTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<meta name="generator" content="{{.Generator}}">
<title>{{.Title}}</title>
<style>{{.CSS}}</style>
</head>
<body>
<header>
<h1>{{.Title}}</h1>
<p>{{len .Slides}} slides &middot; generated {{.GeneratedAt}}</p>
</header>
<main>
{{if not .Slides}}<p class="empty">No slides detected. Start lines with &quot;Slide 1&quot;, &quot;Title:&quot; or &quot;Content:&quot; to build a deck.</p>{{end}}
{{range .Slides}}<section class="slide" id="slide-{{.Number}}">
<h2>{{if .Title}}{{.Title}}{{else}}Slide {{.Number}}{{end}}</h2>
{{if .Content}}<ul>
{{range .Content}}<li>{{.}}</li>
{{end}}</ul>
{{end}}{{if .ChartSVG}}<figure class="chart">
{{.ChartSVG}}{{if .Description}}<figcaption>{{.Description}}</figcaption>
{{end}}</figure>
{{else if .Description}}<p class="description">{{.Description}}</p>
{{end}}{{if .Attachments}}<ul class="attachments">
{{range .Attachments}}<li>{{.}}</li>
{{end}}</ul>
{{end}}</section>
{{end}}</main>
<footer>Generated by {{.Generator}}</footer>
</body>
</html>
`

var presentationTmpl = template.Must(template.New("presentation").Parse(presentationTemplate))

// RenderPresentation renders the whole deck as one self-contained HTML page:
// inline theme CSS, one section per slide, inline SVG charts. Titles, bullets
// and captions pass through html/template, which handles the escaping the
// parser deliberately leaves to consumers.
func RenderPresentation(d deck.Deck, th Theme) ([]byte, error) {
	views, err := slideViews(d, th)
	if err != nil {
		return nil, err
	}
	data := presentationData{
		Title:       d.Title,
		Generator:   d.Generator,
		GeneratedAt: d.GeneratedAt.Format("2006-01-02 15:04 UTC"),
		CSS:         themeCSS(th),
		Slides:      views,
	}
	var buf bytes.Buffer
	if err := presentationTmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render presentation: %w", err)
	}
	return buf.Bytes(), nil
}

func slideViews(d deck.Deck, th Theme) ([]slideView, error) {
	chartBySlide := make(map[int]deck.Chart, len(d.Charts))
	for _, c := range d.Charts {
		chartBySlide[c.Slide] = c
	}
	var views []slideView
	for i, s := range d.Slides {
		v := slideView{
			Number:      i + 1,
			Title:       s.Title,
			Content:     s.Content,
			Description: s.Description,
			Attachments: s.Attachments,
		}
		if c, ok := chartBySlide[i]; ok {
			svg, err := BarChartSVG(c.Graph, th)
			if err != nil {
				return nil, fmt.Errorf("chart %d: %w", c.Index, err)
			}
			v.ChartSVG = template.HTML(svg)
			v.ChartIndex = c.Index
		}
		views = append(views, v)
	}
	return views, nil
}

func themeCSS(th Theme) template.CSS {
	return template.CSS(fmt.Sprintf(`* { box-sizing: border-box; }
body { margin: 0; background: %s; color: %s; font-family: %s; line-height: 1.5; }
a { color: %s; }
header { padding: 2.5rem 1.5rem 1rem; text-align: center; }
header h1 { margin: 0; font-size: 2rem; color: %s; }
header p { margin: .4rem 0 0; color: %s; font-size: .9rem; }
main { max-width: 880px; margin: 0 auto; padding: 1rem 1.5rem 3rem; }
section.slide { background: %s; border-radius: 10px; padding: 1.5rem 2rem; margin: 1.25rem 0; box-shadow: 0 1px 4px rgba(0,0,0,.12); }
section.slide h2 { margin: 0 0 .75rem; color: %s; }
section.slide ul { margin: .5rem 0; padding-left: 1.4rem; }
section.slide li { margin: .3rem 0; }
figure.chart { margin: 1.25rem 0 .5rem; }
figure.chart svg { width: 100%%; height: auto; border-radius: 6px; }
figure.chart figcaption { margin-top: .5rem; color: %s; font-size: .9rem; }
p.description { color: %s; font-style: italic; }
ul.attachments { list-style: square; }
footer { text-align: center; color: %s; font-size: .8rem; padding: 1rem 0 2.5rem; }
p.empty { text-align: center; padding: 3rem 1rem; color: %s; }
p.back { margin-top: 1.5rem; }`,
		th.Background, th.Text, th.FontFamily,
		th.Accent,
		th.Accent, th.Muted,
		th.Surface, th.Accent,
		th.Muted, th.Muted, th.Muted, th.Muted))
}
