/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package webui

import (
	"fmt"
	"html/template"
	"net/http"
	"path/filepath"

	"godeckwriter/internal/render"
	"godeckwriter/internal/version"
)

// The editor is a single form posting into a named iframe, so preview and
// downloads work without any client-side fetch code. The reload script is
// only emitted in watch mode.
const editorTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>godeckwriter</title>
<style>{{.CSS}}</style>
</head>
<body>
<header>
  <h1>godeckwriter</h1>
  <span class="version">{{.Version}}</span>
  {{if .Status}}<span class="status">{{.Status}}</span>{{end}}
</header>
<main>
  <form method="post" action="/preview" target="preview">
    <textarea name="script" spellcheck="false">{{.Script}}</textarea>
    <div class="controls">
      <label>Theme
        <select name="theme">
          {{range .Themes}}<option value="{{.}}"{{if eq . $.Theme}} selected{{end}}>{{.}}</option>{{end}}
        </select>
      </label>
      <button type="submit">Preview</button>
      <button formaction="/readme">README</button>
      <button formaction="/download/archive" formtarget="_self">.zip</button>
      <button formaction="/download/pptx" formtarget="_self">.pptx</button>
      <button formaction="/download/pdf" formtarget="_self">.pdf</button>
    </div>
  </form>
  <iframe name="preview" title="Preview"></iframe>
</main>
{{if .Watch}}<script>
(function() {
  let last = -1;
  async function poll() {
    try {
      const resp = await fetch('/reload-seq');
      const data = await resp.json();
      if (last === -1) {
        last = data.seq;
      } else if (data.seq !== last) {
        location.reload();
        return;
      }
    } catch (e) {
      // Server may be restarting; keep polling.
    }
    setTimeout(poll, 1000);
  }
  poll();
})();
</script>{{end}}
</body>
</html>
`

var editorTmpl = template.Must(template.New("editor").Parse(editorTemplate))

// sampleDeckScript pre-fills the textarea so the first preview click shows
// something. One Spanish keyword line doubles as a hint that both languages
// work.
const sampleDeckScript = `Slide 1
Title: Quarterly Review
Content: revenue up 12%; churn steady; hiring on plan
Data: Labels: Q1, Q2, Q3; Values: 10, 12, 15
Description: headline numbers for the quarter

Slide 2
Titulo: Outlook
Contenido: ship v2; expand pilot; review pricing
Attachment: roadmap.pdf`

type editorPage struct {
	CSS     template.CSS
	Version string
	Status  string
	Script  string
	Themes  []string
	Theme   string
	Watch   bool
}

func editorCSS(th render.Theme) template.CSS {
	css := fmt.Sprintf(`
* { box-sizing: border-box; }
body { margin: 0; height: 100vh; display: flex; flex-direction: column; background: %s; color: %s; font-family: %s; }
header { display: flex; align-items: baseline; gap: 0.75rem; padding: 0.6rem 1.2rem; background: %s; border-bottom: 2px solid %s; }
header h1 { margin: 0; font-size: 1.1rem; color: %s; }
header .version, header .status { font-size: 0.8rem; color: %s; }
main { flex: 1; display: grid; grid-template-columns: minmax(320px, 38%%) 1fr; gap: 0; min-height: 0; }
form { display: flex; flex-direction: column; min-height: 0; border-right: 1px solid %s; }
textarea { flex: 1; resize: none; border: 0; outline: none; padding: 1rem; font: 0.9rem/1.5 ui-monospace, "SF Mono", Menlo, Consolas, monospace; background: %s; color: %s; }
.controls { display: flex; flex-wrap: wrap; align-items: center; gap: 0.5rem; padding: 0.6rem 1rem; background: %s; border-top: 1px solid %s; }
.controls label { font-size: 0.85rem; color: %s; }
.controls select { margin-left: 0.3rem; }
.controls button { padding: 0.35rem 0.8rem; border: 1px solid %s; border-radius: 4px; background: %s; color: #ffffff; cursor: pointer; }
iframe { width: 100%%; height: 100%%; border: 0; background: %s; }
`,
		th.Background, th.Text, th.FontFamily,
		th.Surface, th.Accent,
		th.Accent,
		th.Muted,
		th.Muted,
		th.Surface, th.Text,
		th.Surface, th.Muted,
		th.Muted,
		th.Accent, th.Accent,
		th.Background,
	)
	return template.CSS(css)
}

func (s *Server) handleEditor(w http.ResponseWriter, r *http.Request) {
	page := editorPage{
		CSS:     editorCSS(s.theme),
		Version: version.String(),
		Script:  s.currentRaw(),
		Themes:  render.BuiltinNames(),
		Theme:   s.theme.Name,
		Watch:   s.watcher != nil,
	}
	if page.Script == "" {
		page.Script = sampleDeckScript
	}
	if s.watcher != nil {
		d := s.currentDeck()
		page.Status = fmt.Sprintf("watching %s: %d slides, %d charts", filepath.Base(s.scriptPath), d.Stats.Slides, d.Stats.Charts)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := editorTmpl.Execute(w, page); err != nil {
		s.log.Error("render editor", "err", err)
	}
}
