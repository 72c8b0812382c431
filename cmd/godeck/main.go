/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"godeckwriter/internal/config"
	"godeckwriter/internal/crash"
	"godeckwriter/internal/deck"
	"godeckwriter/internal/export"
	applog "godeckwriter/internal/log"
	"godeckwriter/internal/render"
	"godeckwriter/internal/script"
	"godeckwriter/internal/telemetry"
	"godeckwriter/internal/version"
	"godeckwriter/internal/webui"
)

func usage() {
	fmt.Println("GoDeckWriter — slide decks from plain text scripts")
	fmt.Printf("Version: %s\n", version.String())
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  godeck version|-v|--version                 Show version")
	fmt.Println("  godeck check <script>                       Parse and report slide/chart counts and warnings")
	fmt.Println("  godeck build <script> [-out dir] [-theme name|file] [-title text]")
	fmt.Println("                                              Write presentation.html, chart pages, README.md and deck.json")
	fmt.Println("  godeck pack <script> [-out file.zip] [-theme name|file] [-title text]")
	fmt.Println("                                              Write the whole site as one zip archive")
	fmt.Println("  godeck export <script> -format pptx|pdf|png|all [-out path] [-theme name|file] [-title text]")
	fmt.Println("                                              Slideshow exports; -out is a file for pptx/pdf, a directory otherwise")
	fmt.Println("  godeck serve [-addr :8645] [-script file] [-theme name|file]")
	fmt.Println("                                              Browser editor; -script enables watch mode with live reload")
}

func main() {
	cfg, cfgErr := config.Load()
	applog.Init(applog.Options{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		AddSource: cfg.Logging.Source,
		File:      cfg.Logging.File,
	})
	l := applog.WithComponent("cli")
	if cfgErr != nil {
		l.Warn("config load incomplete, using defaults", slog.Any("err", cfgErr))
	}

	var ri *crash.RunInfo
	defer func() { crash.Recover(ri) }()

	tcfg := telemetry.FromEnv()
	if cfg.General.TelemetryOptIn {
		tcfg.OptIn = true
	}
	telemetry.NewDefault(tcfg)

	args := os.Args
	if len(args) < 2 {
		usage()
		return
	}

	switch args[1] {
	case "version", "--version", "-v":
		fmt.Println(version.String())
		return

	case "check":
		if len(args) < 3 {
			fmt.Println("check requires <script>")
			usage()
			os.Exit(2)
		}
		path := args[2]
		ri = &crash.RunInfo{Script: path}
		d, ok := loadDeck(l, path, "")
		if !ok {
			os.Exit(1)
		}
		fmt.Printf("Title: %s\n", d.Title)
		fmt.Printf("Slides: %d\n", d.Stats.Slides)
		fmt.Printf("Charts: %d\n", d.Stats.Charts)
		fmt.Printf("Content items: %d\n", d.Stats.ContentItems)
		fmt.Printf("Attachments: %d\n", d.Stats.Attachments)
		for _, w := range d.Warnings {
			fmt.Println("Warning:", w)
		}
		if d.Stats.Slides == 0 {
			os.Exit(1)
		}
		return

	case "build":
		if len(args) < 3 {
			fmt.Println("build requires <script>")
			usage()
			os.Exit(2)
		}
		path := args[2]
		fs := flag.NewFlagSet("build", flag.ExitOnError)
		out := fs.String("out", "dist", "output directory")
		themeFlag := fs.String("theme", "", "builtin theme name or theme YAML path")
		title := fs.String("title", "", "override the deck title")
		_ = fs.Parse(args[3:])

		ri = &crash.RunInfo{Script: path, OutDir: *out}
		d, ok := loadDeck(l, path, *title)
		if !ok {
			os.Exit(1)
		}
		th := resolveTheme(l, cfg, *themeFlag)
		l.Info("build site", slog.String("script", path), slog.String("out", *out), slog.String("theme", th.Name))
		if err := render.WriteSite(d, th, *out); err != nil {
			l.Error("build failed", slog.Any("err", err))
			fmt.Println("Error:", err)
			os.Exit(1)
		}
		telemetry.Event("build", map[string]any{"slides": d.Stats.Slides, "charts": d.Stats.Charts})
		printWarnings(d)
		fmt.Printf("Wrote %s (%d slides, %d charts)\n", *out, d.Stats.Slides, d.Stats.Charts)
		return

	case "pack":
		if len(args) < 3 {
			fmt.Println("pack requires <script>")
			usage()
			os.Exit(2)
		}
		path := args[2]
		fs := flag.NewFlagSet("pack", flag.ExitOnError)
		out := fs.String("out", "", "output zip path (defaults to <slug>.zip)")
		themeFlag := fs.String("theme", "", "builtin theme name or theme YAML path")
		title := fs.String("title", "", "override the deck title")
		_ = fs.Parse(args[3:])

		d, ok := loadDeck(l, path, *title)
		if !ok {
			os.Exit(1)
		}
		outPath := *out
		if outPath == "" {
			outPath = d.Slug + ".zip"
		}
		ri = &crash.RunInfo{Script: path, OutDir: filepath.Dir(outPath)}
		th := resolveTheme(l, cfg, *themeFlag)
		l.Info("pack archive", slog.String("script", path), slog.String("out", outPath))
		if err := export.ExportArchive(d, th, outPath); err != nil {
			l.Error("pack failed", slog.Any("err", err))
			fmt.Println("Error:", err)
			os.Exit(1)
		}
		telemetry.Event("pack", map[string]any{"slides": d.Stats.Slides})
		printWarnings(d)
		fmt.Println("Wrote", outPath)
		return

	case "export":
		if len(args) < 3 {
			fmt.Println("export requires <script>")
			usage()
			os.Exit(2)
		}
		path := args[2]
		fs := flag.NewFlagSet("export", flag.ExitOnError)
		format := fs.String("format", "", "pptx, pdf, png or all")
		out := fs.String("out", "", "output file (pptx/pdf) or directory (png/all)")
		themeFlag := fs.String("theme", "", "builtin theme name or theme YAML path")
		title := fs.String("title", "", "override the deck title")
		_ = fs.Parse(args[3:])

		f := strings.ToLower(strings.TrimSpace(*format))
		if f == "" {
			fmt.Println("export requires -format pptx|pdf|png|all")
			usage()
			os.Exit(2)
		}
		d, ok := loadDeck(l, path, *title)
		if !ok {
			os.Exit(1)
		}
		th := resolveTheme(l, cfg, *themeFlag)
		l.Info("export", slog.String("script", path), slog.String("format", f))

		var err error
		switch f {
		case "pptx":
			outPath := orDefault(*out, d.Slug+".pptx")
			ri = &crash.RunInfo{Script: path, OutDir: filepath.Dir(outPath)}
			err = export.ExportPPTX(d, th, outPath, export.PPTXOptions{Author: cfg.Export.Author})
			if err == nil {
				fmt.Println("Wrote", outPath)
			}
		case "pdf":
			outPath := orDefault(*out, d.Slug+".pdf")
			ri = &crash.RunInfo{Script: path, OutDir: filepath.Dir(outPath)}
			err = export.ExportPDF(d, th, outPath, export.PDFOptions{
				Author:     cfg.Export.Author,
				PageWidth:  float64(cfg.Export.PageWidth),
				PageHeight: float64(cfg.Export.PageHeight),
			})
			if err == nil {
				fmt.Println("Wrote", outPath)
			}
		case "png":
			outDir := orDefault(*out, ".")
			ri = &crash.RunInfo{Script: path, OutDir: outDir}
			err = export.ExportChartPNGs(d, th, outDir)
			if err == nil {
				fmt.Printf("Wrote %d chart PNGs to %s\n", len(d.Charts), outDir)
			}
		case "all":
			outDir := orDefault(*out, ".")
			ri = &crash.RunInfo{Script: path, OutDir: outDir}
			err = export.BatchExport(d, th, export.BatchOptions{
				OutDir:     outDir,
				Author:     cfg.Export.Author,
				PageWidth:  float64(cfg.Export.PageWidth),
				PageHeight: float64(cfg.Export.PageHeight),
			})
			if err == nil {
				fmt.Println("Wrote all formats to", outDir)
			}
		default:
			fmt.Printf("unknown format %q (want pptx, pdf, png or all)\n", f)
			os.Exit(2)
		}
		if err != nil {
			l.Error("export failed", slog.String("format", f), slog.Any("err", err))
			fmt.Println("Error:", err)
			os.Exit(1)
		}
		telemetry.Event("export", map[string]any{"format": f, "slides": d.Stats.Slides})
		printWarnings(d)
		return

	case "serve":
		fs := flag.NewFlagSet("serve", flag.ExitOnError)
		addr := fs.String("addr", "", "listen address (defaults to config)")
		scriptPath := fs.String("script", "", "script file to watch and serve")
		themeFlag := fs.String("theme", "", "builtin theme name or theme YAML path")
		_ = fs.Parse(args[2:])

		if *addr != "" {
			cfg.Server.Addr = *addr
		}
		if keys := config.OverriddenKeys(); len(keys) > 0 {
			l.Info("config keys overridden by env", slog.Any("keys", keys))
		}
		ri = &crash.RunInfo{Script: *scriptPath}
		th := resolveTheme(l, cfg, *themeFlag)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		telemetry.Event("serve", map[string]any{"watch": *scriptPath != ""})
		srv := webui.New(webui.Options{
			Config:     cfg,
			Theme:      th,
			ScriptPath: *scriptPath,
			Logger:     applog.WithComponent("webui"),
		})
		if err := srv.Run(ctx); err != nil {
			l.Error("serve failed", slog.Any("err", err))
			fmt.Println("Error:", err)
			os.Exit(1)
		}
		return
	}

	usage()
	os.Exit(2)
}

// loadDeck reads the script file and assembles the deck. Parsing never
// fails; only the read can.
func loadDeck(l *slog.Logger, path, title string) (deck.Deck, bool) {
	raw, err := os.ReadFile(path)
	if err != nil {
		l.Error("read script", slog.String("path", path), slog.Any("err", err))
		fmt.Println("Error:", err)
		return deck.Deck{}, false
	}
	return deck.Build(script.Parse(string(raw)), deck.Options{Title: title}), true
}

// resolveTheme picks the flag value over the config value and falls back to
// the light theme when neither resolves.
func resolveTheme(l *slog.Logger, cfg config.AppConfig, flagVal string) render.Theme {
	name := flagVal
	if name == "" {
		name = cfg.General.Theme
	}
	th, err := render.ResolveTheme(name)
	if err != nil {
		l.Warn("theme not resolved, using light", slog.String("theme", name), slog.Any("err", err))
		return render.Light()
	}
	return th
}

func printWarnings(d deck.Deck) {
	for _, w := range d.Warnings {
		fmt.Println("Warning:", w)
	}
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
