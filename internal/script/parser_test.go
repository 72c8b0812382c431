/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package script

import (
	"reflect"
	"testing"
)

func TestParseMarkersTitleAndContent(t *testing.T) {
	input := "Slide 1\nTitle: A\nContent: x; y\n\nSlide 2\nTitle: B"

	slides := Parse(input)
	if len(slides) != 2 {
		t.Fatalf("expected 2 slides, got %d", len(slides))
	}
	if slides[0].Title != "A" {
		t.Fatalf("unexpected slide 1 title: %q", slides[0].Title)
	}
	if !reflect.DeepEqual(slides[0].Content, []string{"x", "y"}) {
		t.Fatalf("unexpected slide 1 content: %+v", slides[0].Content)
	}
	if slides[1].Title != "B" {
		t.Fatalf("unexpected slide 2 title: %q", slides[1].Title)
	}
	if len(slides[1].Content) != 0 {
		t.Fatalf("expected empty content on slide 2, got %+v", slides[1].Content)
	}
}

func TestLazySlideCreation(t *testing.T) {
	slides := Parse("hello; world")
	if len(slides) != 1 {
		t.Fatalf("expected 1 implicit slide, got %d", len(slides))
	}
	if !reflect.DeepEqual(slides[0].Content, []string{"hello", "world"}) {
		t.Fatalf("unexpected fallback content: %+v", slides[0].Content)
	}
	if slides[0].Title != "" {
		t.Fatalf("implicit slide should have no title, got %q", slides[0].Title)
	}
}

func TestDataLineDropsNonNumericValues(t *testing.T) {
	slides := Parse("Slide 1\nData: Labels: a, b; Values: 1, foo, 3")
	if len(slides) != 1 {
		t.Fatalf("expected 1 slide, got %d", len(slides))
	}
	g := slides[0].Graph
	if g == nil {
		t.Fatalf("expected a graph record")
	}
	if !reflect.DeepEqual(g.Labels, []string{"a", "b"}) {
		t.Fatalf("unexpected labels: %+v", g.Labels)
	}
	if !reflect.DeepEqual(g.Values, []float64{1, 3}) {
		t.Fatalf("unexpected values: %+v", g.Values)
	}
}

func TestDataLineWithoutSectionsYieldsEmptyGraph(t *testing.T) {
	slides := Parse("Slide 1\nDatos: nothing recognizable here")
	g := slides[0].Graph
	if g == nil {
		t.Fatalf("expected a graph record, not nil")
	}
	if len(g.Labels) != 0 || len(g.Values) != 0 {
		t.Fatalf("expected two empty lists, got %+v", g)
	}
	if g.Renderable() {
		t.Fatalf("empty graph must not be renderable")
	}
}

func TestSecondDataLineReplacesGraph(t *testing.T) {
	input := `Slide 1
Data: Labels: a, b; Values: 1, 2
Data: Values: 9`
	slides := Parse(input)
	g := slides[0].Graph
	if g == nil {
		t.Fatalf("expected a graph record")
	}
	if len(g.Labels) != 0 {
		t.Fatalf("labels from the first data line must not survive: %+v", g.Labels)
	}
	if !reflect.DeepEqual(g.Values, []float64{9}) {
		t.Fatalf("unexpected values: %+v", g.Values)
	}
}

func TestBlankLinesNeverSplitSlides(t *testing.T) {
	withBlanks := "Slide 1\nTitle: A\n\n\nContent: z"
	withoutBlanks := "Slide 1\nTitle: A\nContent: z"
	if !reflect.DeepEqual(Parse(withBlanks), Parse(withoutBlanks)) {
		t.Fatalf("blank lines changed the parse result")
	}
}

func TestCaseAndAccentInsensitiveKeywords(t *testing.T) {
	for _, input := range []string{"TITULO: x", "Título: x", "titulo: x", "TÍTULO: x", "Title: x"} {
		slides := Parse(input)
		if len(slides) != 1 || slides[0].Title != "x" {
			t.Fatalf("input %q: expected title \"x\", got %+v", input, slides)
		}
	}
	for _, input := range []string{"Descripción: d", "DESCRIPCION: d", "description: d"} {
		slides := Parse(input)
		if len(slides) != 1 || slides[0].Description != "d" {
			t.Fatalf("input %q: expected description \"d\", got %+v", input, slides)
		}
	}
}

func TestSpanishAndEnglishKeywordsAreSynonyms(t *testing.T) {
	es := `Diapositiva 1
Titulo: Ventas
Contenido: uno; dos
Gráfico: Etiquetas: a, b; Valores: 1, 2
Adjunto: foto.png`
	en := `Slide 1
Title: Ventas
Content: uno; dos
Chart: Labels: a, b; Values: 1, 2
Attachment: foto.png`
	if !reflect.DeepEqual(Parse(es), Parse(en)) {
		t.Fatalf("spanish and english spellings parsed differently:\n%+v\nvs\n%+v", Parse(es), Parse(en))
	}
}

func TestAttachmentsAccumulate(t *testing.T) {
	input := `Slide 1
Adjunto: a.png
Adjunto: b.png, c.png`
	slides := Parse(input)
	want := []string{"a.png", "b.png", "c.png"}
	if !reflect.DeepEqual(slides[0].Attachments, want) {
		t.Fatalf("expected attachments %v, got %+v", want, slides[0].Attachments)
	}
}

func TestLastTitleAndDescriptionWin(t *testing.T) {
	input := `Slide 1
Title: first
Description: one
Title: second
Description: two`
	slides := Parse(input)
	if slides[0].Title != "second" {
		t.Fatalf("expected last title to win, got %q", slides[0].Title)
	}
	if slides[0].Description != "two" {
		t.Fatalf("expected last description to win, got %q", slides[0].Description)
	}
}

func TestConsecutiveMarkersProduceEmptySlides(t *testing.T) {
	slides := Parse("Slide 1\nSlide 2\nSlide 3")
	if len(slides) != 3 {
		t.Fatalf("expected 3 empty slides, got %d", len(slides))
	}
	for i, s := range slides {
		if s.Title != "" || len(s.Content) != 0 || s.Graph != nil || len(s.Attachments) != 0 {
			t.Fatalf("slide %d not empty: %+v", i+1, s)
		}
	}
}

func TestMarkerIntegerIsCosmetic(t *testing.T) {
	slides := Parse("Diapositiva 99\nTitle: first\nSlide 7 of 10\nTitle: second")
	if len(slides) != 2 {
		t.Fatalf("expected 2 slides, got %d", len(slides))
	}
	if slides[0].Title != "first" || slides[1].Title != "second" {
		t.Fatalf("sequence order not preserved: %+v", slides)
	}
}

func TestEmptyAndBlankInput(t *testing.T) {
	for _, input := range []string{"", "\n\n", "   \n\t\n  "} {
		if slides := Parse(input); len(slides) != 0 {
			t.Fatalf("input %q: expected empty sequence, got %+v", input, slides)
		}
	}
}

func TestCRLFLineEndings(t *testing.T) {
	crlf := "Slide 1\r\nTitle: A\r\nContent: x; y\r\n"
	lf := "Slide 1\nTitle: A\nContent: x; y\n"
	if !reflect.DeepEqual(Parse(crlf), Parse(lf)) {
		t.Fatalf("CRLF input parsed differently from LF input")
	}
}

func TestWhitespaceOnlyFragmentsAreDropped(t *testing.T) {
	slides := Parse("Slide 1\nContent: x; ;  ; y;")
	if !reflect.DeepEqual(slides[0].Content, []string{"x", "y"}) {
		t.Fatalf("expected empty fragments dropped, got %+v", slides[0].Content)
	}
	slides = Parse("Slide 1\nAttachment: , a.png, ,")
	if !reflect.DeepEqual(slides[0].Attachments, []string{"a.png"}) {
		t.Fatalf("expected empty attachment names dropped, got %+v", slides[0].Attachments)
	}
}

func TestFallbackLinesBecomeContent(t *testing.T) {
	input := `Slide 1
Title: A
just a loose remark; another one
Slideshow notes are not markers`
	slides := Parse(input)
	want := []string{"just a loose remark", "another one", "Slideshow notes are not markers"}
	if !reflect.DeepEqual(slides[0].Content, want) {
		t.Fatalf("unexpected fallback content: %+v", slides[0].Content)
	}
}

func TestMismatchedLabelsAndValuesAreKept(t *testing.T) {
	slides := Parse("Slide 1\nData: Labels: a, b, c; Values: 1")
	g := slides[0].Graph
	if g == nil {
		t.Fatalf("expected a graph record")
	}
	if len(g.Labels) != 3 || len(g.Values) != 1 {
		t.Fatalf("parser must not reconcile lengths, got %+v", g)
	}
}
