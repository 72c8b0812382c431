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
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/flate"

	"godeckwriter/internal/deck"
	"godeckwriter/internal/render"
)

// WriteArchive streams the deck's site artifacts into a ZIP archive: the
// presentation page, one page per chart, the README and the manifest.
func WriteArchive(w io.Writer, d deck.Deck, th render.Theme) error {
	files, err := render.BuildSite(d, th)
	if err != nil {
		return fmt.Errorf("build site: %w", err)
	}
	zw := newZipWriter(w)
	for _, f := range files {
		if err := addZipFile(zw, f.Name, f.Data); err != nil {
			return fmt.Errorf("zip add %s: %w", f.Name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("close zip: %w", err)
	}
	return nil
}

// ExportArchive writes the ZIP archive to outPath, creating parent
// directories and enforcing the .zip extension.
func ExportArchive(d deck.Deck, th render.Theme, outPath string) error {
	outPath = ensureExt(outPath, ".zip")
	f, err := createOutput(outPath)
	if err != nil {
		return err
	}
	if err := WriteArchive(f, d, th); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close archive: %w", err)
	}
	return nil
}

// newZipWriter wires the klauspost deflate implementation into the archive,
// which compresses noticeably faster than the standard library's.
func newZipWriter(w io.Writer) *zip.Writer {
	zw := zip.NewWriter(w)
	zw.RegisterCompressor(zip.Deflate, func(out io.Writer) (io.WriteCloser, error) {
		return flate.NewWriter(out, flate.BestCompression)
	})
	return zw
}

func addZipFile(zw *zip.Writer, name string, data []byte) error {
	w, err := zw.Create(name)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

func ensureExt(path, ext string) string {
	if !strings.HasSuffix(strings.ToLower(path), ext) {
		return path + ext
	}
	return path
}

func createOutput(outPath string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return nil, fmt.Errorf("ensure out dir: %w", err)
	}
	f, err := os.Create(outPath)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", filepath.Base(outPath), err)
	}
	return f, nil
}
