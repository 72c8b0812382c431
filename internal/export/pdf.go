/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"godeckwriter/internal/deck"
	"godeckwriter/internal/render"
	"godeckwriter/internal/script"
)

// PDFOptions controls PDF export behavior. Units are points; the default
// page is the 960x540 slide canvas (16:9 at 72 DPI).
type PDFOptions struct {
	Author     string
	PageWidth  float64
	PageHeight float64
}

const (
	defaultPDFPageW = 960.0
	defaultPDFPageH = 540.0
)

// WritePDF streams the deck as a landscape PDF, one page per slide. Charts
// are drawn as vector rectangles so they stay sharp at any zoom. Built-in
// Helvetica keeps text vector without embedding fonts.
func WritePDF(w io.Writer, d deck.Deck, th render.Theme, opt PDFOptions) error {
	pdf, err := buildPDF(d, th, opt)
	if err != nil {
		return err
	}
	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

// ExportPDF writes the PDF to outPath, creating parent directories and
// enforcing the .pdf extension.
func ExportPDF(d deck.Deck, th render.Theme, outPath string, opt PDFOptions) error {
	outPath = ensureExt(outPath, ".pdf")
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("ensure out dir: %w", err)
	}
	pdf, err := buildPDF(d, th, opt)
	if err != nil {
		return err
	}
	if err := pdf.OutputFileAndClose(outPath); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

func buildPDF(d deck.Deck, th render.Theme, opt PDFOptions) (*gofpdf.Fpdf, error) {
	pageW := opt.PageWidth
	pageH := opt.PageHeight
	if pageW <= 0 || pageH <= 0 {
		pageW, pageH = defaultPDFPageW, defaultPDFPageH
	}

	slides := d.Slides
	if len(slides) == 0 {
		slides = []script.Slide{{
			Title:   d.Title,
			Content: []string{"No slides detected. Start lines with \"Slide 1\" to outline the deck."},
		}}
	}
	charts := make(map[int]deck.Chart, len(d.Charts))
	for _, c := range d.Charts {
		charts[c.Slide] = c
	}

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: pageW, Ht: pageH},
		OrientationStr: "",
	})
	pdf.SetTitle(d.Title, true)
	if opt.Author != "" {
		pdf.SetAuthor(opt.Author, true)
	}
	pdf.SetCreator(d.Generator, true)
	pdf.SetAutoPageBreak(false, 0)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	margin := pageW * 0.05
	for i, s := range slides {
		pdf.AddPageFormat("", gofpdf.SizeType{Wd: pageW, Ht: pageH})

		setFillHex(pdf, th.Background, 244, 244, 242)
		pdf.Rect(0, 0, pageW, pageH, "F")

		drawPDFTitle(pdf, tr, s, i+1, th, pageW, pageH, margin)

		var chart *deck.Chart
		if c, ok := charts[i]; ok {
			chart = &c
		}
		textRight := pageW - margin
		if chart != nil {
			textRight = pageW * 0.52
		}
		drawPDFBody(pdf, tr, s, th, pageW, pageH, margin, textRight)
		if chart != nil {
			drawPDFChart(pdf, tr, chart.Graph, th, pageW, pageH)
		}

		drawPDFFooter(pdf, tr, d.Generator, i+1, len(slides), th, pageW, pageH, margin)
	}
	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("build pdf: %w", err)
	}
	return pdf, nil
}

func drawPDFTitle(pdf *gofpdf.Fpdf, tr func(string) string, s script.Slide, num int, th render.Theme, pageW, pageH, margin float64) {
	title := s.Title
	if title == "" {
		title = fmt.Sprintf("Slide %d", num)
	}
	size := pageH * 0.052
	setTextHex(pdf, th.Accent, 11, 95, 165)
	pdf.SetFont("Helvetica", "B", size)
	// Step the size down until long titles fit the text column.
	for size > 12 && pdf.GetStringWidth(tr(title)) > pageW-2*margin {
		size -= 1
		pdf.SetFontSize(size)
	}
	baseline := pageH * 0.14
	pdf.Text(margin, baseline, tr(title))

	setDrawHex(pdf, th.Accent, 11, 95, 165)
	pdf.SetLineWidth(1.5)
	pdf.Line(margin, baseline+10, pageW-margin, baseline+10)
}

func drawPDFBody(pdf *gofpdf.Fpdf, tr func(string) string, s script.Slide, th render.Theme, pageW, pageH, margin, right float64) {
	size := pageH * 0.026
	lineH := size * 1.7
	y := pageH * 0.26
	maxY := pageH * 0.84

	pdf.SetFont("Helvetica", "", size)
	setTextHex(pdf, th.Text, 31, 35, 40)
	for _, item := range s.Content {
		if y > maxY {
			pdf.Text(margin, y, "...")
			y += lineH
			break
		}
		line := clipPDFText(pdf, tr("• "+item), right-margin)
		pdf.Text(margin, y, line)
		y += lineH
	}

	if s.Description != "" && y <= maxY {
		y += lineH * 0.4
		pdf.SetFont("Helvetica", "I", size*0.9)
		setTextHex(pdf, th.Muted, 106, 115, 125)
		pdf.Text(margin, y, clipPDFText(pdf, tr(s.Description), right-margin))
		y += lineH
	}

	if len(s.Attachments) > 0 && y <= maxY {
		y += lineH * 0.4
		pdf.SetFont("Helvetica", "", size*0.8)
		setTextHex(pdf, th.Muted, 106, 115, 125)
		line := "Attachments: " + strings.Join(s.Attachments, ", ")
		pdf.Text(margin, y, clipPDFText(pdf, tr(line), right-margin))
	}
}

func drawPDFChart(pdf *gofpdf.Fpdf, tr func(string) string, g *script.Graph, th render.Theme, pageW, pageH float64) {
	if !g.Renderable() {
		return
	}
	n := len(g.Labels)
	if len(g.Values) < n {
		n = len(g.Values)
	}

	plotX := pageW * 0.56
	plotW := pageW*0.95 - plotX
	baseline := pageH * 0.78
	plotH := pageH * 0.46

	maxVal := 0.0
	for i := 0; i < n; i++ {
		if g.Values[i] > maxVal {
			maxVal = g.Values[i]
		}
	}

	setFillHex(pdf, th.BarFill, 78, 155, 212)
	setDrawHex(pdf, th.BarStroke, 11, 95, 165)
	pdf.SetLineWidth(1)

	slot := plotW / float64(n)
	barW := slot * 0.62
	labelSize := pageH * 0.018
	for i := 0; i < n; i++ {
		v := g.Values[i]
		h := 0.0
		if maxVal > 0 && v > 0 {
			h = v / maxVal * (plotH - labelSize*2)
		}
		x := plotX + float64(i)*slot + (slot-barW)/2
		if h > 0 {
			pdf.Rect(x, baseline-h, barW, h, "FD")
		}

		pdf.SetFont("Helvetica", "", labelSize)
		setTextHex(pdf, th.Text, 31, 35, 40)
		val := tr(strconv.FormatFloat(v, 'g', -1, 64))
		pdf.Text(x+barW/2-pdf.GetStringWidth(val)/2, baseline-h-4, val)

		setTextHex(pdf, th.Muted, 106, 115, 125)
		lbl := clipPDFText(pdf, tr(g.Labels[i]), slot)
		pdf.Text(x+barW/2-pdf.GetStringWidth(lbl)/2, baseline+labelSize+4, lbl)
	}

	setDrawHex(pdf, th.Text, 31, 35, 40)
	pdf.SetLineWidth(0.8)
	pdf.Line(plotX, baseline, plotX+plotW, baseline)
}

func drawPDFFooter(pdf *gofpdf.Fpdf, tr func(string) string, generator string, page, total int, th render.Theme, pageW, pageH, margin float64) {
	pdf.SetFont("Helvetica", "", 8)
	setTextHex(pdf, th.Muted, 106, 115, 125)
	y := pageH - 16
	if generator != "" {
		pdf.Text(margin, y, tr(generator))
	}
	counter := fmt.Sprintf("%d / %d", page, total)
	pdf.Text(pageW-margin-pdf.GetStringWidth(counter), y, counter)
}

// clipPDFText trims a translated string to the given width, appending an
// ellipsis when anything was cut.
func clipPDFText(pdf *gofpdf.Fpdf, s string, width float64) string {
	if pdf.GetStringWidth(s) <= width {
		return s
	}
	for len(s) > 1 && pdf.GetStringWidth(s+"...") > width {
		s = s[:len(s)-1]
	}
	return s + "..."
}

func setDrawHex(pdf *gofpdf.Fpdf, hex string, r, g, b uint8) {
	if hr, hg, hb, ok := render.HexRGB(hex); ok {
		r, g, b = hr, hg, hb
	}
	pdf.SetDrawColor(int(r), int(g), int(b))
}

func setFillHex(pdf *gofpdf.Fpdf, hex string, r, g, b uint8) {
	if hr, hg, hb, ok := render.HexRGB(hex); ok {
		r, g, b = hr, hg, hb
	}
	pdf.SetFillColor(int(r), int(g), int(b))
}

func setTextHex(pdf *gofpdf.Fpdf, hex string, r, g, b uint8) {
	if hr, hg, hb, ok := render.HexRGB(hex); ok {
		r, g, b = hr, hg, hb
	}
	pdf.SetTextColor(int(r), int(g), int(b))
}
