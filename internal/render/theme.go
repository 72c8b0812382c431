/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package render turns an assembled deck into its artifacts: the styled
// presentation page, one standalone page per chart, the inline SVG charts
// and the generated README. Everything here is a pure function of the deck
// plus a theme; file and socket concerns stay with the callers.
package render

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Theme carries the colors and type the renderers inject into pages and
// charts. Colors are #rrggbb strings so they drop into CSS and SVG as-is.
type Theme struct {
	Name       string `yaml:"name"`
	Background string `yaml:"background"`
	Surface    string `yaml:"surface"`
	Text       string `yaml:"text"`
	Muted      string `yaml:"muted"`
	Accent     string `yaml:"accent"`
	BarFill    string `yaml:"bar_fill"`
	BarStroke  string `yaml:"bar_stroke"`
	FontFamily string `yaml:"font_family"`
}

const defaultFontFamily = `-apple-system, "Segoe UI", Roboto, Helvetica, Arial, sans-serif`

// Light is the default theme.
func Light() Theme {
	return Theme{
		Name:       "light",
		Background: "#f4f4f2",
		Surface:    "#ffffff",
		Text:       "#1f2328",
		Muted:      "#6a737d",
		Accent:     "#0b5fa5",
		BarFill:    "#4e9bd4",
		BarStroke:  "#0b5fa5",
		FontFamily: defaultFontFamily,
	}
}

func Dark() Theme {
	return Theme{
		Name:       "dark",
		Background: "#14171a",
		Surface:    "#1f2428",
		Text:       "#e6e8ea",
		Muted:      "#8b949e",
		Accent:     "#58a6ff",
		BarFill:    "#2f81f7",
		BarStroke:  "#58a6ff",
		FontFamily: defaultFontFamily,
	}
}

func Slate() Theme {
	return Theme{
		Name:       "slate",
		Background: "#e8ebee",
		Surface:    "#f7f8f9",
		Text:       "#2d3640",
		Muted:      "#5d6b7a",
		Accent:     "#37605f",
		BarFill:    "#6d9c9a",
		BarStroke:  "#37605f",
		FontFamily: `Georgia, "Times New Roman", serif`,
	}
}

// BuiltinNames lists the bundled theme names for usage messages.
func BuiltinNames() []string { return []string{"light", "dark", "slate"} }

// Builtin returns a bundled theme by name. The empty name means light.
func Builtin(name string) (Theme, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "light":
		return Light(), true
	case "dark":
		return Dark(), true
	case "slate":
		return Slate(), true
	}
	return Theme{}, false
}

// ResolveTheme interprets the configured theme value: a builtin name, or a
// path to a YAML file whose non-empty fields override the light theme.
func ResolveTheme(nameOrPath string) (Theme, error) {
	if t, ok := Builtin(nameOrPath); ok {
		return t, nil
	}
	return LoadThemeFile(nameOrPath)
}

// LoadThemeFile reads a theme YAML and overlays it onto the light defaults,
// so a file only needs to name the fields it changes.
func LoadThemeFile(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, fmt.Errorf("read theme %s: %w", path, err)
	}
	var over Theme
	if err := yaml.Unmarshal(data, &over); err != nil {
		return Theme{}, fmt.Errorf("parse theme %s: %w", path, err)
	}
	t := Light()
	mergeTheme(&t, &over)
	if over.Name == "" {
		t.Name = "custom"
	}
	return t, nil
}

func mergeTheme(dst, src *Theme) {
	if src.Name != "" {
		dst.Name = src.Name
	}
	if src.Background != "" {
		dst.Background = src.Background
	}
	if src.Surface != "" {
		dst.Surface = src.Surface
	}
	if src.Text != "" {
		dst.Text = src.Text
	}
	if src.Muted != "" {
		dst.Muted = src.Muted
	}
	if src.Accent != "" {
		dst.Accent = src.Accent
	}
	if src.BarFill != "" {
		dst.BarFill = src.BarFill
	}
	if src.BarStroke != "" {
		dst.BarStroke = src.BarStroke
	}
	if src.FontFamily != "" {
		dst.FontFamily = src.FontFamily
	}
}

// HexRGB parses a #rrggbb color into its channels. Exporters that draw with
// raster or PDF primitives use this to reuse the theme palette.
func HexRGB(s string) (r, g, b uint8, ok bool) {
	if len(s) != 7 || s[0] != '#' {
		return 0, 0, 0, false
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	return uint8(v >> 16), uint8(v >> 8), uint8(v), true
}
