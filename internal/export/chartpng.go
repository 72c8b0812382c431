/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package export

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
	"strconv"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"godeckwriter/internal/deck"
	"godeckwriter/internal/render"
	"godeckwriter/internal/script"
	"godeckwriter/internal/textlayout"
)

// Raster chart dimensions. Sized for slide embedding at 96 DPI; the 16:9
// ratio matches the slide canvas so the image scales without letterboxing.
const (
	chartPNGWidth  = 960
	chartPNGHeight = 540
)

// Plot margins leave room for the title row and the label row.
const (
	pngMarginTop    = 64
	pngMarginBottom = 56
	pngMarginLeft   = 56
	pngMarginRight  = 40
)

// ChartPNG renders a bar chart as PNG bytes. Rejects graphs with an empty
// label or value list; surplus entries on the longer side are ignored.
func ChartPNG(g *script.Graph, title string, th render.Theme) ([]byte, error) {
	if !g.Renderable() {
		return nil, fmt.Errorf("graph has no drawable series")
	}
	n := len(g.Labels)
	if len(g.Values) < n {
		n = len(g.Values)
	}

	img := image.NewRGBA(image.Rect(0, 0, chartPNGWidth, chartPNGHeight))
	bg := themeRGBA(th.Surface, color.RGBA{255, 255, 255, 255})
	txt := themeRGBA(th.Text, color.RGBA{0, 0, 0, 255})
	muted := themeRGBA(th.Muted, color.RGBA{106, 115, 125, 255})
	barFill := themeRGBA(th.BarFill, color.RGBA{78, 155, 212, 255})
	barStroke := themeRGBA(th.BarStroke, color.RGBA{11, 95, 165, 255})

	draw.Draw(img, img.Bounds(), &image.Uniform{C: bg}, image.Point{}, draw.Src)

	face := textlayout.Face()
	if title != "" {
		fit := textlayout.TruncateToWidth(face, title, chartPNGWidth-pngMarginLeft-pngMarginRight)
		drawLabel(img, pngMarginLeft, 34, fit, txt)
	}

	plotW := chartPNGWidth - pngMarginLeft - pngMarginRight
	plotH := chartPNGHeight - pngMarginTop - pngMarginBottom
	baseline := pngMarginTop + plotH

	maxVal := 0.0
	for i := 0; i < n; i++ {
		if g.Values[i] > maxVal {
			maxVal = g.Values[i]
		}
	}

	slot := float64(plotW) / float64(n)
	barW := slot * 0.62
	for i := 0; i < n; i++ {
		v := g.Values[i]
		h := 0
		if maxVal > 0 && v > 0 {
			h = int(v / maxVal * float64(plotH-24))
		}
		x0 := pngMarginLeft + int(float64(i)*slot+(slot-barW)/2)
		x1 := x0 + int(barW) - 1
		y0 := baseline - h
		if h > 0 {
			fillRect(img, x0, y0, x1, baseline-1, barFill)
			strokeRect(img, x0, y0, x1, baseline-1, barStroke)
		}

		val := strconv.FormatFloat(v, 'g', -1, 64)
		drawLabelCentered(img, x0+(x1-x0)/2, y0-6, val, txt)
		// Long category labels collide with their neighbors; trim to the slot.
		lbl := textlayout.TruncateToWidth(face, g.Labels[i], int(slot)-6)
		drawLabelCentered(img, x0+(x1-x0)/2, baseline+18, lbl, muted)
	}

	// Baseline axis.
	for x := pngMarginLeft; x < pngMarginLeft+plotW; x++ {
		img.SetRGBA(x, baseline, txt)
	}

	buf := &bytes.Buffer{}
	if err := png.Encode(buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// ChartPNGName names a standalone chart image by its 1-based chart index.
func ChartPNGName(index int) string {
	return fmt.Sprintf("chart%d.png", index)
}

// ExportChartPNGs writes one PNG per renderable chart into outDir.
func ExportChartPNGs(d deck.Deck, th render.Theme, outDir string) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("ensure out dir: %w", err)
	}
	for _, c := range d.Charts {
		data, err := ChartPNG(c.Graph, chartPNGTitle(d, c), th)
		if err != nil {
			return fmt.Errorf("chart %d: %w", c.Index, err)
		}
		name := filepath.Join(outDir, ChartPNGName(c.Index))
		if err := os.WriteFile(name, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", ChartPNGName(c.Index), err)
		}
	}
	return nil
}

func chartPNGTitle(d deck.Deck, c deck.Chart) string {
	if c.Title != "" {
		return c.Title
	}
	return fmt.Sprintf("Chart %d", c.Index)
}

func themeRGBA(hex string, fallback color.RGBA) color.RGBA {
	r, g, b, ok := render.HexRGB(hex)
	if !ok {
		return fallback
	}
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// drawLabel draws s with the bundled bitmap face, baseline at (x, y).
func drawLabel(img *image.RGBA, x, y int, s string, col color.RGBA) {
	d := &font.Drawer{
		Dst:  img,
		Src:  &image.Uniform{C: col},
		Face: textlayout.Face(),
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

func drawLabelCentered(img *image.RGBA, cx, y int, s string, col color.RGBA) {
	w := textlayout.Advance(textlayout.Face(), s)
	drawLabel(img, cx-w/2, y, s, col)
}

// strokeRect draws a 1px axis-aligned rectangle border inclusive of endpoints.
func strokeRect(img *image.RGBA, x0, y0, x1, y1 int, col color.RGBA) {
	for x := x0; x <= x1; x++ {
		img.SetRGBA(x, y0, col)
		img.SetRGBA(x, y1, col)
	}
	for y := y0; y <= y1; y++ {
		img.SetRGBA(x0, y, col)
		img.SetRGBA(x1, y, col)
	}
}

func fillRect(img *image.RGBA, x0, y0, x1, y1 int, col color.RGBA) {
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			img.SetRGBA(x, y, col)
		}
	}
}
