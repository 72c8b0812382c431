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
	"io"
	"strings"
	"time"

	"godeckwriter/internal/deck"
	"godeckwriter/internal/render"
	"godeckwriter/internal/script"
)

// PPTXOptions carries the document metadata embedded in the package.
type PPTXOptions struct {
	Author  string
	Company string
}

// Slide canvas in EMUs (914400 per inch): 13.333in x 7.5in, the 16:9 format.
// Images are placed at 96 DPI, 9525 EMUs per pixel.
const (
	emuSlideW = 12192000
	emuSlideH = 6858000
)

// Placeholder geometry in EMUs. The title band sits across the top; the body
// keeps the full width unless a chart claims the right half.
const (
	emuTitleX, emuTitleY = 838200, 365125
	emuTitleW, emuTitleH = 10515600, 1325563
	emuBodyX, emuBodyY   = 838200, 1825625
	emuBodyH             = 4351338
	emuBodyW             = 10515600
	emuBodyWNarrow       = 5181600
	emuChartX, emuChartY = 6400800, 2286000
	emuChartW            = 5334000
	emuChartH            = 3000375 // emuChartW * 9 / 16
)

// WritePPTX streams the deck as an Office Open XML presentation: one slide
// per script slide, title and body placeholders, charts embedded as PNG.
// An empty deck still produces a valid single-slide package so readers have
// something to open.
func WritePPTX(w io.Writer, d deck.Deck, th render.Theme, opt PPTXOptions) error {
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

	zw := newZipWriter(w)
	add := func(name string, data []byte) error {
		if err := addZipFile(zw, name, data); err != nil {
			return fmt.Errorf("zip add %s: %w", name, err)
		}
		return nil
	}

	if err := add("[Content_Types].xml", contentTypesXML(len(slides))); err != nil {
		return err
	}
	if err := add("_rels/.rels", []byte(rootRelsXML)); err != nil {
		return err
	}
	if err := add("ppt/presentation.xml", presentationXML(len(slides))); err != nil {
		return err
	}
	if err := add("ppt/_rels/presentation.xml.rels", presentationRelsXML(len(slides))); err != nil {
		return err
	}
	if err := add("ppt/slideMasters/slideMaster1.xml", slideMasterXML(th)); err != nil {
		return err
	}
	if err := add("ppt/slideMasters/_rels/slideMaster1.xml.rels", []byte(slideMasterRelsXML)); err != nil {
		return err
	}
	if err := add("ppt/slideLayouts/slideLayout1.xml", []byte(slideLayoutXML)); err != nil {
		return err
	}
	if err := add("ppt/slideLayouts/_rels/slideLayout1.xml.rels", []byte(slideLayoutRelsXML)); err != nil {
		return err
	}
	if err := add("ppt/theme/theme1.xml", themeXML(th)); err != nil {
		return err
	}

	for i, s := range slides {
		var chart *deck.Chart
		if c, ok := charts[i]; ok {
			chart = &c
		}
		if err := add(fmt.Sprintf("ppt/slides/slide%d.xml", i+1), slideXML(i+1, s, chart, th)); err != nil {
			return err
		}
		if err := add(fmt.Sprintf("ppt/slides/_rels/slide%d.xml.rels", i+1), slideRelsXML(chart)); err != nil {
			return err
		}
		if chart != nil {
			img, err := ChartPNG(chart.Graph, chartPNGTitle(d, *chart), th)
			if err != nil {
				return fmt.Errorf("chart %d: %w", chart.Index, err)
			}
			if err := add(fmt.Sprintf("ppt/media/image%d.png", chart.Index), img); err != nil {
				return err
			}
		}
	}

	if err := add("docProps/core.xml", corePropsXML(d, opt)); err != nil {
		return err
	}
	if err := add("docProps/app.xml", appPropsXML(d, opt, len(slides))); err != nil {
		return err
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("close pptx: %w", err)
	}
	return nil
}

// ExportPPTX writes the presentation to outPath, creating parent directories
// and enforcing the .pptx extension.
func ExportPPTX(d deck.Deck, th render.Theme, outPath string, opt PPTXOptions) error {
	outPath = ensureExt(outPath, ".pptx")
	f, err := createOutput(outPath)
	if err != nil {
		return err
	}
	if err := WritePPTX(f, d, th, opt); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close pptx: %w", err)
	}
	return nil
}

const (
	nsDrawingML      = "http://schemas.openxmlformats.org/drawingml/2006/main"
	nsPresentationML = "http://schemas.openxmlformats.org/presentationml/2006/main"
	nsRelationships  = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
	nsPackageRels    = "http://schemas.openxmlformats.org/package/2006/relationships"
)

const xmlDecl = "<?xml version=\"1.0\" encoding=\"UTF-8\" standalone=\"yes\"?>\n"

func contentTypesXML(slideCount int) []byte {
	buf := &bytes.Buffer{}
	wf := latchedWriter(buf)
	wf(xmlDecl)
	wf("<Types xmlns=\"http://schemas.openxmlformats.org/package/2006/content-types\">\n")
	wf("  <Default Extension=\"rels\" ContentType=\"application/vnd.openxmlformats-package.relationships+xml\"/>\n")
	wf("  <Default Extension=\"xml\" ContentType=\"application/xml\"/>\n")
	wf("  <Default Extension=\"png\" ContentType=\"image/png\"/>\n")
	wf("  <Override PartName=\"/ppt/presentation.xml\" ContentType=\"application/vnd.openxmlformats-officedocument.presentationml.presentation.main+xml\"/>\n")
	wf("  <Override PartName=\"/ppt/slideMasters/slideMaster1.xml\" ContentType=\"application/vnd.openxmlformats-officedocument.presentationml.slideMaster+xml\"/>\n")
	wf("  <Override PartName=\"/ppt/slideLayouts/slideLayout1.xml\" ContentType=\"application/vnd.openxmlformats-officedocument.presentationml.slideLayout+xml\"/>\n")
	wf("  <Override PartName=\"/ppt/theme/theme1.xml\" ContentType=\"application/vnd.openxmlformats-officedocument.theme+xml\"/>\n")
	for i := 1; i <= slideCount; i++ {
		wf("  <Override PartName=\"/ppt/slides/slide%d.xml\" ContentType=\"application/vnd.openxmlformats-officedocument.presentationml.slide+xml\"/>\n", i)
	}
	wf("  <Override PartName=\"/docProps/core.xml\" ContentType=\"application/vnd.openxmlformats-package.core-properties+xml\"/>\n")
	wf("  <Override PartName=\"/docProps/app.xml\" ContentType=\"application/vnd.openxmlformats-officedocument.extended-properties+xml\"/>\n")
	wf("</Types>\n")
	return buf.Bytes()
}

const rootRelsXML = xmlDecl +
	"<Relationships xmlns=\"" + nsPackageRels + "\">\n" +
	"  <Relationship Id=\"rId1\" Type=\"" + nsRelationships + "/officeDocument\" Target=\"ppt/presentation.xml\"/>\n" +
	"  <Relationship Id=\"rId2\" Type=\"" + nsPackageRels + "/metadata/core-properties\" Target=\"docProps/core.xml\"/>\n" +
	"  <Relationship Id=\"rId3\" Type=\"" + nsRelationships + "/extended-properties\" Target=\"docProps/app.xml\"/>\n" +
	"</Relationships>\n"

func presentationXML(slideCount int) []byte {
	buf := &bytes.Buffer{}
	wf := latchedWriter(buf)
	wf(xmlDecl)
	wf("<p:presentation xmlns:a=\"%s\" xmlns:r=\"%s\" xmlns:p=\"%s\">\n", nsDrawingML, nsRelationships, nsPresentationML)
	wf("  <p:sldMasterIdLst><p:sldMasterId id=\"2147483648\" r:id=\"rId1\"/></p:sldMasterIdLst>\n")
	wf("  <p:sldIdLst>\n")
	for i := 0; i < slideCount; i++ {
		wf("    <p:sldId id=\"%d\" r:id=\"rId%d\"/>\n", 256+i, 2+i)
	}
	wf("  </p:sldIdLst>\n")
	wf("  <p:sldSz cx=\"%d\" cy=\"%d\"/>\n", emuSlideW, emuSlideH)
	wf("  <p:notesSz cx=\"6858000\" cy=\"9144000\"/>\n")
	wf("</p:presentation>\n")
	return buf.Bytes()
}

func presentationRelsXML(slideCount int) []byte {
	buf := &bytes.Buffer{}
	wf := latchedWriter(buf)
	wf(xmlDecl)
	wf("<Relationships xmlns=\"%s\">\n", nsPackageRels)
	wf("  <Relationship Id=\"rId1\" Type=\"%s/slideMaster\" Target=\"slideMasters/slideMaster1.xml\"/>\n", nsRelationships)
	for i := 0; i < slideCount; i++ {
		wf("  <Relationship Id=\"rId%d\" Type=\"%s/slide\" Target=\"slides/slide%d.xml\"/>\n", 2+i, nsRelationships, i+1)
	}
	wf("</Relationships>\n")
	return buf.Bytes()
}

func slideMasterXML(th render.Theme) []byte {
	buf := &bytes.Buffer{}
	wf := latchedWriter(buf)
	wf(xmlDecl)
	wf("<p:sldMaster xmlns:a=\"%s\" xmlns:r=\"%s\" xmlns:p=\"%s\">\n", nsDrawingML, nsRelationships, nsPresentationML)
	wf("  <p:cSld>\n")
	wf("    <p:bg><p:bgPr><a:solidFill><a:srgbClr val=\"%s\"/></a:solidFill><a:effectLst/></p:bgPr></p:bg>\n", pptxClr(th.Background, "F4F4F2"))
	wf("    <p:spTree>\n")
	wf("      <p:nvGrpSpPr><p:cNvPr id=\"1\" name=\"\"/><p:cNvGrpSpPr/><p:nvPr/></p:nvGrpSpPr>\n")
	wf("      <p:grpSpPr/>\n")
	wf("    </p:spTree>\n")
	wf("  </p:cSld>\n")
	wf("  <p:clrMap bg1=\"lt1\" tx1=\"dk1\" bg2=\"lt2\" tx2=\"dk2\" accent1=\"accent1\" accent2=\"accent2\" accent3=\"accent3\" accent4=\"accent4\" accent5=\"accent5\" accent6=\"accent6\" hlink=\"hlink\" folHlink=\"folHlink\"/>\n")
	wf("  <p:sldLayoutIdLst><p:sldLayoutId id=\"2147483649\" r:id=\"rId1\"/></p:sldLayoutIdLst>\n")
	wf("</p:sldMaster>\n")
	return buf.Bytes()
}

const slideMasterRelsXML = xmlDecl +
	"<Relationships xmlns=\"" + nsPackageRels + "\">\n" +
	"  <Relationship Id=\"rId1\" Type=\"" + nsRelationships + "/slideLayout\" Target=\"../slideLayouts/slideLayout1.xml\"/>\n" +
	"  <Relationship Id=\"rId2\" Type=\"" + nsRelationships + "/theme\" Target=\"../theme/theme1.xml\"/>\n" +
	"</Relationships>\n"

const slideLayoutXML = xmlDecl +
	"<p:sldLayout xmlns:a=\"" + nsDrawingML + "\" xmlns:r=\"" + nsRelationships + "\" xmlns:p=\"" + nsPresentationML + "\" type=\"blank\" preserve=\"1\">\n" +
	"  <p:cSld name=\"Blank\">\n" +
	"    <p:spTree>\n" +
	"      <p:nvGrpSpPr><p:cNvPr id=\"1\" name=\"\"/><p:cNvGrpSpPr/><p:nvPr/></p:nvGrpSpPr>\n" +
	"      <p:grpSpPr/>\n" +
	"    </p:spTree>\n" +
	"  </p:cSld>\n" +
	"  <p:clrMapOvr><a:masterClrMapping/></p:clrMapOvr>\n" +
	"</p:sldLayout>\n"

const slideLayoutRelsXML = xmlDecl +
	"<Relationships xmlns=\"" + nsPackageRels + "\">\n" +
	"  <Relationship Id=\"rId1\" Type=\"" + nsRelationships + "/slideMaster\" Target=\"../slideMasters/slideMaster1.xml\"/>\n" +
	"</Relationships>\n"

// themeXML emits the minimal DrawingML theme PowerPoint accepts, seeded with
// the deck theme's palette.
func themeXML(th render.Theme) []byte {
	text := pptxClr(th.Text, "1F2328")
	surface := pptxClr(th.Surface, "FFFFFF")
	accent := pptxClr(th.Accent, "0B5FA5")
	barFill := pptxClr(th.BarFill, "4E9BD4")

	buf := &bytes.Buffer{}
	wf := latchedWriter(buf)
	wf(xmlDecl)
	wf("<a:theme xmlns:a=\"%s\" name=\"godeckwriter\">\n", nsDrawingML)
	wf("  <a:themeElements>\n")
	wf("    <a:clrScheme name=\"godeckwriter\">\n")
	wf("      <a:dk1><a:srgbClr val=\"%s\"/></a:dk1>\n", text)
	wf("      <a:lt1><a:srgbClr val=\"%s\"/></a:lt1>\n", surface)
	wf("      <a:dk2><a:srgbClr val=\"%s\"/></a:dk2>\n", text)
	wf("      <a:lt2><a:srgbClr val=\"%s\"/></a:lt2>\n", surface)
	wf("      <a:accent1><a:srgbClr val=\"%s\"/></a:accent1>\n", accent)
	wf("      <a:accent2><a:srgbClr val=\"%s\"/></a:accent2>\n", barFill)
	wf("      <a:accent3><a:srgbClr val=\"%s\"/></a:accent3>\n", accent)
	wf("      <a:accent4><a:srgbClr val=\"%s\"/></a:accent4>\n", barFill)
	wf("      <a:accent5><a:srgbClr val=\"%s\"/></a:accent5>\n", accent)
	wf("      <a:accent6><a:srgbClr val=\"%s\"/></a:accent6>\n", barFill)
	wf("      <a:hlink><a:srgbClr val=\"%s\"/></a:hlink>\n", accent)
	wf("      <a:folHlink><a:srgbClr val=\"%s\"/></a:folHlink>\n", accent)
	wf("    </a:clrScheme>\n")
	wf("    <a:fontScheme name=\"godeckwriter\">\n")
	wf("      <a:majorFont><a:latin typeface=\"Calibri Light\"/><a:ea typeface=\"\"/><a:cs typeface=\"\"/></a:majorFont>\n")
	wf("      <a:minorFont><a:latin typeface=\"Calibri\"/><a:ea typeface=\"\"/><a:cs typeface=\"\"/></a:minorFont>\n")
	wf("    </a:fontScheme>\n")
	wf("    <a:fmtScheme name=\"godeckwriter\">\n")
	wf("      <a:fillStyleLst>\n")
	for i := 0; i < 3; i++ {
		wf("        <a:solidFill><a:schemeClr val=\"phClr\"/></a:solidFill>\n")
	}
	wf("      </a:fillStyleLst>\n")
	wf("      <a:lnStyleLst>\n")
	for _, w := range []int{6350, 12700, 19050} {
		wf("        <a:ln w=\"%d\"><a:solidFill><a:schemeClr val=\"phClr\"/></a:solidFill></a:ln>\n", w)
	}
	wf("      </a:lnStyleLst>\n")
	wf("      <a:effectStyleLst>\n")
	for i := 0; i < 3; i++ {
		wf("        <a:effectStyle><a:effectLst/></a:effectStyle>\n")
	}
	wf("      </a:effectStyleLst>\n")
	wf("      <a:bgFillStyleLst>\n")
	for i := 0; i < 3; i++ {
		wf("        <a:solidFill><a:schemeClr val=\"phClr\"/></a:solidFill>\n")
	}
	wf("      </a:bgFillStyleLst>\n")
	wf("    </a:fmtScheme>\n")
	wf("  </a:themeElements>\n")
	wf("</a:theme>\n")
	return buf.Bytes()
}

func slideXML(num int, s script.Slide, chart *deck.Chart, th render.Theme) []byte {
	text := pptxClr(th.Text, "1F2328")
	muted := pptxClr(th.Muted, "6A737D")
	accent := pptxClr(th.Accent, "0B5FA5")

	buf := &bytes.Buffer{}
	wf := latchedWriter(buf)
	wf(xmlDecl)
	wf("<p:sld xmlns:a=\"%s\" xmlns:r=\"%s\" xmlns:p=\"%s\">\n", nsDrawingML, nsRelationships, nsPresentationML)
	wf("  <p:cSld>\n")
	wf("    <p:bg><p:bgPr><a:solidFill><a:srgbClr val=\"%s\"/></a:solidFill><a:effectLst/></p:bgPr></p:bg>\n", pptxClr(th.Background, "F4F4F2"))
	wf("    <p:spTree>\n")
	wf("      <p:nvGrpSpPr><p:cNvPr id=\"1\" name=\"\"/><p:cNvGrpSpPr/><p:nvPr/></p:nvGrpSpPr>\n")
	wf("      <p:grpSpPr/>\n")

	shapeID := 2
	title := s.Title
	if title == "" {
		title = fmt.Sprintf("Slide %d", num)
	}
	wf("      <p:sp>\n")
	wf("        <p:nvSpPr><p:cNvPr id=\"%d\" name=\"Title %d\"/><p:cNvSpPr><a:spLocks noGrp=\"1\"/></p:cNvSpPr><p:nvPr><p:ph type=\"title\"/></p:nvPr></p:nvSpPr>\n", shapeID, shapeID-1)
	wf("        <p:spPr><a:xfrm><a:off x=\"%d\" y=\"%d\"/><a:ext cx=\"%d\" cy=\"%d\"/></a:xfrm><a:prstGeom prst=\"rect\"><a:avLst/></a:prstGeom></p:spPr>\n", emuTitleX, emuTitleY, emuTitleW, emuTitleH)
	wf("        <p:txBody>\n")
	wf("          <a:bodyPr/><a:lstStyle/>\n")
	wf("          <a:p><a:r><a:rPr sz=\"3600\" b=\"1\"><a:solidFill><a:srgbClr val=\"%s\"/></a:solidFill></a:rPr><a:t>%s</a:t></a:r></a:p>\n", accent, xmlEsc(title))
	wf("        </p:txBody>\n")
	wf("      </p:sp>\n")
	shapeID++

	if len(s.Content) > 0 || s.Description != "" || len(s.Attachments) > 0 {
		bodyW := emuBodyW
		if chart != nil {
			bodyW = emuBodyWNarrow
		}
		wf("      <p:sp>\n")
		wf("        <p:nvSpPr><p:cNvPr id=\"%d\" name=\"Content %d\"/><p:cNvSpPr><a:spLocks noGrp=\"1\"/></p:cNvSpPr><p:nvPr><p:ph type=\"body\" idx=\"1\"/></p:nvPr></p:nvSpPr>\n", shapeID, shapeID-1)
		wf("        <p:spPr><a:xfrm><a:off x=\"%d\" y=\"%d\"/><a:ext cx=\"%d\" cy=\"%d\"/></a:xfrm><a:prstGeom prst=\"rect\"><a:avLst/></a:prstGeom></p:spPr>\n", emuBodyX, emuBodyY, bodyW, emuBodyH)
		wf("        <p:txBody>\n")
		wf("          <a:bodyPr/><a:lstStyle/>\n")
		for _, item := range s.Content {
			wf("          <a:p><a:pPr marL=\"285750\" indent=\"-285750\"><a:buChar char=\"•\"/></a:pPr><a:r><a:rPr sz=\"1800\"><a:solidFill><a:srgbClr val=\"%s\"/></a:solidFill></a:rPr><a:t>%s</a:t></a:r></a:p>\n", text, xmlEsc(item))
		}
		if s.Description != "" {
			wf("          <a:p><a:pPr><a:buNone/></a:pPr><a:r><a:rPr sz=\"1600\" i=\"1\"><a:solidFill><a:srgbClr val=\"%s\"/></a:solidFill></a:rPr><a:t>%s</a:t></a:r></a:p>\n", muted, xmlEsc(s.Description))
		}
		if len(s.Attachments) > 0 {
			wf("          <a:p><a:pPr><a:buNone/></a:pPr><a:r><a:rPr sz=\"1400\"><a:solidFill><a:srgbClr val=\"%s\"/></a:solidFill></a:rPr><a:t>%s</a:t></a:r></a:p>\n", muted, xmlEsc("Attachments: "+strings.Join(s.Attachments, ", ")))
		}
		wf("        </p:txBody>\n")
		wf("      </p:sp>\n")
		shapeID++
	}

	if chart != nil {
		wf("      <p:pic>\n")
		wf("        <p:nvPicPr><p:cNvPr id=\"%d\" name=\"Chart %d\"/><p:cNvPicPr/><p:nvPr/></p:nvPicPr>\n", shapeID, chart.Index)
		wf("        <p:blipFill><a:blip r:embed=\"rId2\"/><a:stretch><a:fillRect/></a:stretch></p:blipFill>\n")
		wf("        <p:spPr><a:xfrm><a:off x=\"%d\" y=\"%d\"/><a:ext cx=\"%d\" cy=\"%d\"/></a:xfrm><a:prstGeom prst=\"rect\"><a:avLst/></a:prstGeom></p:spPr>\n", emuChartX, emuChartY, emuChartW, emuChartH)
		wf("      </p:pic>\n")
	}

	wf("    </p:spTree>\n")
	wf("  </p:cSld>\n")
	wf("  <p:clrMapOvr><a:masterClrMapping/></p:clrMapOvr>\n")
	wf("</p:sld>\n")
	return buf.Bytes()
}

func slideRelsXML(chart *deck.Chart) []byte {
	buf := &bytes.Buffer{}
	wf := latchedWriter(buf)
	wf(xmlDecl)
	wf("<Relationships xmlns=\"%s\">\n", nsPackageRels)
	wf("  <Relationship Id=\"rId1\" Type=\"%s/slideLayout\" Target=\"../slideLayouts/slideLayout1.xml\"/>\n", nsRelationships)
	if chart != nil {
		wf("  <Relationship Id=\"rId2\" Type=\"%s/image\" Target=\"../media/image%d.png\"/>\n", nsRelationships, chart.Index)
	}
	wf("</Relationships>\n")
	return buf.Bytes()
}

func corePropsXML(d deck.Deck, opt PPTXOptions) []byte {
	stamp := d.GeneratedAt
	if stamp.IsZero() {
		stamp = time.Now().UTC()
	}
	w3c := stamp.Format("2006-01-02T15:04:05Z")

	buf := &bytes.Buffer{}
	wf := latchedWriter(buf)
	wf(xmlDecl)
	wf("<cp:coreProperties xmlns:cp=\"http://schemas.openxmlformats.org/package/2006/metadata/core-properties\" xmlns:dc=\"http://purl.org/dc/elements/1.1/\" xmlns:dcterms=\"http://purl.org/dc/terms/\" xmlns:xsi=\"http://www.w3.org/2001/XMLSchema-instance\">\n")
	wf("  <dc:title>%s</dc:title>\n", xmlEsc(d.Title))
	if opt.Author != "" {
		wf("  <dc:creator>%s</dc:creator>\n", xmlEsc(opt.Author))
		wf("  <cp:lastModifiedBy>%s</cp:lastModifiedBy>\n", xmlEsc(opt.Author))
	}
	wf("  <dcterms:created xsi:type=\"dcterms:W3CDTF\">%s</dcterms:created>\n", w3c)
	wf("  <dcterms:modified xsi:type=\"dcterms:W3CDTF\">%s</dcterms:modified>\n", w3c)
	wf("</cp:coreProperties>\n")
	return buf.Bytes()
}

func appPropsXML(d deck.Deck, opt PPTXOptions, slideCount int) []byte {
	app := d.Generator
	if app == "" {
		app = "godeckwriter"
	}
	buf := &bytes.Buffer{}
	wf := latchedWriter(buf)
	wf(xmlDecl)
	wf("<Properties xmlns=\"http://schemas.openxmlformats.org/officeDocument/2006/extended-properties\" xmlns:vt=\"http://schemas.openxmlformats.org/officeDocument/2006/docPropsVTypes\">\n")
	wf("  <Application>%s</Application>\n", xmlEsc(app))
	wf("  <Slides>%d</Slides>\n", slideCount)
	if opt.Company != "" {
		wf("  <Company>%s</Company>\n", xmlEsc(opt.Company))
	}
	wf("</Properties>\n")
	return buf.Bytes()
}

// latchedWriter returns an fprintf that stops at the first error. Writes to
// a bytes.Buffer cannot fail, but the builders keep the same shape as the
// file-backed writers.
func latchedWriter(buf *bytes.Buffer) func(format string, args ...any) {
	var werr error
	return func(format string, args ...any) {
		if werr != nil {
			return
		}
		_, werr = fmt.Fprintf(buf, format, args...)
	}
}

// pptxClr converts a #rrggbb theme color to the uppercase hex DrawingML wants.
func pptxClr(hex, fallback string) string {
	if _, _, _, ok := render.HexRGB(hex); !ok {
		return fallback
	}
	return strings.ToUpper(strings.TrimPrefix(hex, "#"))
}

func xmlEsc(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '&':
			out = append(out, '&', 'a', 'm', 'p', ';')
		case '<':
			out = append(out, '&', 'l', 't', ';')
		case '>':
			out = append(out, '&', 'g', 't', ';')
		case '"':
			out = append(out, '&', 'q', 'u', 'o', 't', ';')
		case '\'':
			out = append(out, '&', 'a', 'p', 'o', 's', ';')
		default:
			out = append(out, s[i])
		}
	}
	return string(out)
}
