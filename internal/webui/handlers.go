/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package webui

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"

	"godeckwriter/internal/deck"
	"godeckwriter/internal/export"
	"godeckwriter/internal/render"
	"godeckwriter/internal/script"
)

const pptxMIME = "application/vnd.openxmlformats-officedocument.presentationml.presentation"

// deckFromRequest assembles a deck from the posted form. When the script
// field is empty and a file is being watched, the watched file wins so the
// preview always has something to show.
func (s *Server) deckFromRequest(r *http.Request) deck.Deck {
	raw := r.FormValue("script")
	if raw == "" {
		raw = s.currentRaw()
	}
	slides := script.Parse(raw)
	return deck.Build(slides, deck.Options{Title: r.FormValue("title")})
}

// requestTheme resolves the theme field against the builtin palette only.
// File-based themes are a startup concern; requests must not name paths.
func (s *Server) requestTheme(r *http.Request) render.Theme {
	if th, ok := render.Builtin(r.FormValue("theme")); ok {
		return th
	}
	return s.theme
}

func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	d := s.deckFromRequest(r)
	th := s.requestTheme(r)
	html, err := render.RenderPresentation(d, th)
	if err != nil {
		s.log.Error("render preview", "err", err)
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(html)
}

func (s *Server) handleReadme(w http.ResponseWriter, r *http.Request) {
	raw := r.FormValue("script")
	if raw == "" {
		raw = s.currentRaw()
	}
	if raw == "" && r.Method == http.MethodGet {
		// Body-less GET: document the sample deck rather than an empty one.
		raw = sampleDeckScript
	}
	d := deck.Build(script.Parse(raw), deck.Options{})
	th := s.requestTheme(r)
	var body bytes.Buffer
	if err := s.md.Convert(render.RenderReadme(d), &body); err != nil {
		s.log.Error("render readme", "err", err)
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprintf(w, readmeShell, th.Background, th.Text, th.FontFamily, th.Accent, body.String())
}

// readmeShell wraps converted markdown in a themed page. The markdown comes
// out of RenderReadme, not the user, so inlining it is safe.
const readmeShell = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>README</title>
<style>
body { margin: 0; padding: 2rem 3rem; background: %s; color: %s; font-family: %s; line-height: 1.6; }
h1, h2 { color: %s; }
code { font-family: ui-monospace, Menlo, Consolas, monospace; }
</style>
</head>
<body>
%s
</body>
</html>
`

// handleDownload streams one export format. The document is built into a
// buffer first; headers only go out once the export is known to have
// succeeded.
func (s *Server) handleDownload(format string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d := s.deckFromRequest(r)
		th := s.requestTheme(r)

		var buf bytes.Buffer
		var ext, mime string
		var err error
		switch format {
		case "archive":
			ext, mime = ".zip", "application/zip"
			err = export.WriteArchive(&buf, d, th)
		case "pptx":
			ext, mime = ".pptx", pptxMIME
			err = export.WritePPTX(&buf, d, th, export.PPTXOptions{})
		case "pdf":
			ext, mime = ".pdf", "application/pdf"
			err = export.WritePDF(&buf, d, th, export.PDFOptions{})
		default:
			http.NotFound(w, r)
			return
		}
		if err != nil {
			s.log.Error("export download", "format", format, "err", err)
			http.Error(w, "export failed", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", mime)
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", d.Slug+ext))
		w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
		w.Write(buf.Bytes())
	}
}

// handleReloadSeq reports the watcher's change counter. The editor polls it
// in watch mode and reloads when the number moves.
func (s *Server) handleReloadSeq(w http.ResponseWriter, r *http.Request) {
	var seq uint64
	if s.watcher != nil {
		seq = s.watcher.ChangeSeq()
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	fmt.Fprintf(w, `{"seq":%d}`, seq)
}
