/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * Licensed under the Apache License, Version 2.0
 */

package export

import (
	"fmt"
	"path/filepath"
	"strings"

	"godeckwriter/internal/deck"
	"godeckwriter/internal/render"
)

// Format names an export target.
type Format string

const (
	FormatArchive Format = "archive"
	FormatPPTX    Format = "pptx"
	FormatPDF     Format = "pdf"
	FormatPNG     Format = "png"
	FormatAll     Format = "all"
)

// DefaultFormats lists every concrete export target, the expansion of "all".
func DefaultFormats() []string {
	return []string{string(FormatArchive), string(FormatPPTX), string(FormatPDF), string(FormatPNG)}
}

// BatchOptions controls export across multiple formats.
//
// Path semantics:
//   - Single-file outputs are named <slug>.zip/.pptx/.pdf inside OutDir.
//   - Chart PNGs go to a charts/ subfolder inside OutDir, one per chart.
type BatchOptions struct {
	Formats    []string // allowed: archive, pptx, pdf, png, all; empty means all
	OutDir     string
	Author     string
	Company    string
	PageWidth  float64 // pt, PDF only
	PageHeight float64
}

// BatchExport runs the selected exporters over one built deck.
func BatchExport(d deck.Deck, th render.Theme, opt BatchOptions) error {
	formats := opt.Formats
	if len(formats) == 0 {
		formats = DefaultFormats()
	}
	for i := range formats {
		formats[i] = strings.ToLower(strings.TrimSpace(formats[i]))
	}
	for _, f := range formats {
		if Format(f) == FormatAll {
			formats = DefaultFormats()
			break
		}
	}

	outDir := opt.OutDir
	if outDir == "" {
		outDir = "."
	}
	base := d.Slug
	if base == "" {
		base = "presentation"
	}

	for _, f := range formats {
		switch Format(f) {
		case FormatArchive:
			out := filepath.Join(outDir, base+".zip")
			if err := ExportArchive(d, th, out); err != nil {
				return fmt.Errorf("archive: %w", err)
			}
		case FormatPPTX:
			out := filepath.Join(outDir, base+".pptx")
			po := PPTXOptions{Author: opt.Author, Company: opt.Company}
			if err := ExportPPTX(d, th, out, po); err != nil {
				return fmt.Errorf("pptx: %w", err)
			}
		case FormatPDF:
			out := filepath.Join(outDir, base+".pdf")
			po := PDFOptions{Author: opt.Author, PageWidth: opt.PageWidth, PageHeight: opt.PageHeight}
			if err := ExportPDF(d, th, out, po); err != nil {
				return fmt.Errorf("pdf: %w", err)
			}
		case FormatPNG:
			if len(d.Charts) == 0 {
				continue
			}
			if err := ExportChartPNGs(d, th, filepath.Join(outDir, "charts")); err != nil {
				return fmt.Errorf("png: %w", err)
			}
		default:
			return fmt.Errorf("unknown format: %s", f)
		}
	}
	return nil
}
