/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package webui

import (
	"compress/gzip"
	"net/http"

	"github.com/klauspost/compress/gzhttp"
)

// gzipMinSize skips compression for responses that fit a single packet.
const gzipMinSize = 1400

// newCompressionHandler wraps an HTTP handler with gzip compression.
// Returns the original handler when compression is disabled.
func newCompressionHandler(h http.Handler, enabled bool) http.Handler {
	if !enabled {
		return h
	}
	wrapper, err := gzhttp.NewWrapper(
		gzhttp.MinSize(gzipMinSize),
		gzhttp.CompressionLevel(gzip.DefaultCompression),
	)
	if err != nil {
		// Cannot happen with valid options; serve uncompressed if it does.
		return h
	}
	return wrapper(h)
}
