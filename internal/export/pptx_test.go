/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package export

import (
	"archive/zip"
	"bytes"
	"strings"
	"testing"

	"godeckwriter/internal/deck"
	"godeckwriter/internal/render"
	"godeckwriter/internal/script"
)

func pptxReader(t *testing.T, d deck.Deck, opt PPTXOptions) *zip.Reader {
	t.Helper()
	buf := &bytes.Buffer{}
	if err := WritePPTX(buf, d, render.Light(), opt); err != nil {
		t.Fatalf("write pptx: %v", err)
	}
	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if err != nil {
		t.Fatalf("open pptx zip: %v", err)
	}
	return zr
}

func TestWritePPTXPackageParts(t *testing.T) {
	d := deckFixture(t)
	zr := pptxReader(t, d, PPTXOptions{Author: "A. Writer", Company: "Acme"})

	names := zipEntryNames(t, zr)
	for _, want := range []string{
		"[Content_Types].xml",
		"_rels/.rels",
		"ppt/presentation.xml",
		"ppt/_rels/presentation.xml.rels",
		"ppt/slideMasters/slideMaster1.xml",
		"ppt/slideLayouts/slideLayout1.xml",
		"ppt/theme/theme1.xml",
		"ppt/slides/slide1.xml",
		"ppt/slides/slide2.xml",
		"ppt/slides/_rels/slide1.xml.rels",
		"ppt/media/image1.png",
		"docProps/core.xml",
		"docProps/app.xml",
	} {
		if !names[want] {
			t.Fatalf("part %s not found in package", want)
		}
	}
	if names["ppt/media/image2.png"] {
		t.Fatalf("slide without chart got a media part")
	}

	pres := string(readZipEntry(t, zr, "ppt/presentation.xml"))
	if !strings.Contains(pres, "cx=\"12192000\" cy=\"6858000\"") {
		t.Fatalf("presentation missing 16:9 slide size: %s", pres)
	}
	if strings.Count(pres, "<p:sldId ") != 2 {
		t.Fatalf("expected 2 slide ids: %s", pres)
	}
}

func TestWritePPTXSlideContent(t *testing.T) {
	d := deckFixture(t)
	zr := pptxReader(t, d, PPTXOptions{})

	slide1 := string(readZipEntry(t, zr, "ppt/slides/slide1.xml"))
	if !strings.Contains(slide1, "<p:ph type=\"title\"/>") {
		t.Fatalf("slide 1 missing title placeholder: %s", slide1)
	}
	if !strings.Contains(slide1, "<a:t>Quarterly Review</a:t>") {
		t.Fatalf("slide 1 missing title text")
	}
	if !strings.Contains(slide1, "<a:t>revenue up</a:t>") || !strings.Contains(slide1, "<a:t>costs flat</a:t>") {
		t.Fatalf("slide 1 missing content bullets")
	}
	if !strings.Contains(slide1, "r:embed=\"rId2\"") {
		t.Fatalf("slide 1 missing chart image reference")
	}

	rels1 := string(readZipEntry(t, zr, "ppt/slides/_rels/slide1.xml.rels"))
	if !strings.Contains(rels1, "Target=\"../media/image1.png\"") {
		t.Fatalf("slide 1 rels missing image target: %s", rels1)
	}

	slide2 := string(readZipEntry(t, zr, "ppt/slides/slide2.xml"))
	if strings.Contains(slide2, "<p:pic>") {
		t.Fatalf("slide 2 should not embed a picture")
	}
	if !strings.Contains(slide2, "<a:t>Attachments: roadmap.pdf</a:t>") {
		t.Fatalf("slide 2 missing attachments line")
	}
}

func TestWritePPTXEscapesMarkup(t *testing.T) {
	d := deck.Build(script.Parse("Slide 1\nTitle: Q&A <Round 2>\nContent: a"), deck.Options{})
	zr := pptxReader(t, d, PPTXOptions{})
	slide1 := string(readZipEntry(t, zr, "ppt/slides/slide1.xml"))
	if !strings.Contains(slide1, "<a:t>Q&amp;A &lt;Round 2&gt;</a:t>") {
		t.Fatalf("title not escaped: %s", slide1)
	}
}

func TestWritePPTXEmptyDeckStaysOpenable(t *testing.T) {
	d := deck.Build(script.Parse(""), deck.Options{})
	zr := pptxReader(t, d, PPTXOptions{})

	names := zipEntryNames(t, zr)
	if !names["ppt/slides/slide1.xml"] {
		t.Fatalf("empty deck should still produce one slide")
	}
	slide1 := string(readZipEntry(t, zr, "ppt/slides/slide1.xml"))
	if !strings.Contains(slide1, "No slides detected") {
		t.Fatalf("placeholder slide missing guidance: %s", slide1)
	}
}

func TestWritePPTXMetadata(t *testing.T) {
	d := deckFixture(t)
	zr := pptxReader(t, d, PPTXOptions{Author: "A. Writer", Company: "Acme"})

	core := string(readZipEntry(t, zr, "docProps/core.xml"))
	if !strings.Contains(core, "<dc:title>Quarterly Review</dc:title>") {
		t.Fatalf("core props missing title: %s", core)
	}
	if !strings.Contains(core, "<dc:creator>A. Writer</dc:creator>") {
		t.Fatalf("core props missing creator: %s", core)
	}

	app := string(readZipEntry(t, zr, "docProps/app.xml"))
	if !strings.Contains(app, "<Slides>2</Slides>") {
		t.Fatalf("app props missing slide count: %s", app)
	}
	if !strings.Contains(app, "<Company>Acme</Company>") {
		t.Fatalf("app props missing company: %s", app)
	}
}
