/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package render

import (
	"fmt"
	"os"
	"path/filepath"

	"godeckwriter/internal/deck"
)

// File is one generated artifact by name. Names are flat; both the build
// directory and the archive keep everything at the top level.
type File struct {
	Name string
	Data []byte
}

// BuildSite renders every artifact of a deck in packaging order: the
// presentation, each chart page, the README and the manifest.
func BuildSite(d deck.Deck, th Theme) ([]File, error) {
	files := make([]File, 0, len(d.Charts)+3)

	page, err := RenderPresentation(d, th)
	if err != nil {
		return nil, err
	}
	files = append(files, File{Name: PresentationFileName, Data: page})

	for _, c := range d.Charts {
		cp, err := RenderChartPage(d, c, th)
		if err != nil {
			return nil, err
		}
		files = append(files, File{Name: ChartFileName(c.Index), Data: cp})
	}

	files = append(files, File{Name: ReadmeFileName, Data: RenderReadme(d)})

	manifest, err := deck.MarshalManifest(d)
	if err != nil {
		return nil, err
	}
	files = append(files, File{Name: deck.ManifestFileName, Data: manifest})
	return files, nil
}

// WriteSite renders the deck and writes the artifacts into dir.
func WriteSite(d deck.Deck, th Theme, dir string) error {
	files, err := BuildSite(d, th)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("ensure output dir: %w", err)
	}
	for _, f := range files {
		if err := os.WriteFile(filepath.Join(dir, f.Name), f.Data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", f.Name, err)
		}
	}
	return nil
}
