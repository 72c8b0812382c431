/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package webui serves the browser editor: a script textarea on the left, a
// live preview iframe on the right, and download buttons for every export
// format. With a script path it additionally watches the file and tells open
// editor pages to reload.
package webui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"godeckwriter/internal/config"
	"godeckwriter/internal/deck"
	"godeckwriter/internal/render"
	"godeckwriter/internal/script"
)

// Options configure a Server. Theme is the startup default; requests may
// switch between builtin themes per form submission.
type Options struct {
	Config     config.AppConfig
	Theme      render.Theme
	ScriptPath string // optional; non-empty enables watch mode
	Logger     *slog.Logger
}

// Server is the editor web application. All state shared between handlers
// and the watcher callback sits behind mu.
type Server struct {
	cfg        config.AppConfig
	theme      render.Theme
	scriptPath string
	log        *slog.Logger
	md         goldmark.Markdown
	watcher    *Watcher

	mu      sync.RWMutex
	raw     string
	current deck.Deck
}

// New builds a Server; it does not listen until Run.
func New(opt Options) *Server {
	logger := opt.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		cfg:        opt.Config,
		theme:      opt.Theme,
		scriptPath: opt.ScriptPath,
		log:        logger,
		md:         goldmark.New(goldmark.WithExtensions(extension.GFM)),
	}
}

func (s *Server) currentRaw() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.raw
}

func (s *Server) currentDeck() deck.Deck {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// reloadScript re-reads the watched file and rebuilds the deck. Read errors
// keep the previous state; a half-saved file should not blank the editor.
func (s *Server) reloadScript() {
	data, err := os.ReadFile(s.scriptPath)
	if err != nil {
		s.log.Error("read script", "path", s.scriptPath, "err", err)
		return
	}
	d := deck.Build(script.Parse(string(data)), deck.Options{})
	s.mu.Lock()
	s.raw = string(data)
	s.current = d
	s.mu.Unlock()
	s.log.Info("script loaded", "path", s.scriptPath, "slides", d.Stats.Slides, "charts", d.Stats.Charts)
}

func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleEditor)
	mux.HandleFunc("POST /preview", s.handlePreview)
	mux.HandleFunc("GET /readme", s.handleReadme)
	mux.HandleFunc("POST /readme", s.handleReadme)
	mux.HandleFunc("POST /download/archive", s.handleDownload("archive"))
	mux.HandleFunc("POST /download/pptx", s.handleDownload("pptx"))
	mux.HandleFunc("POST /download/pdf", s.handleDownload("pdf"))
	mux.HandleFunc("GET /reload-seq", s.handleReloadSeq)

	var h http.Handler = mux
	h = newCompressionHandler(h, s.cfg.Server.Compression)
	h = s.logRequests(h)
	return h
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r)
		s.log.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", sw.status,
			"dur", time.Since(start).Round(time.Microsecond),
		)
	})
}

// statusWriter captures the response code for the request log.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

// Run serves until ctx is cancelled or the listener fails. In watch mode the
// script is loaded once up front so the first page render already has it.
func (s *Server) Run(ctx context.Context) error {
	if s.scriptPath != "" {
		w, err := NewWatcher(s.scriptPath, s.log, s.reloadScript)
		if err != nil {
			return fmt.Errorf("watch %s: %w", s.scriptPath, err)
		}
		s.watcher = w
		defer w.Close()
		s.reloadScript()
		if err := w.Start(ctx); err != nil {
			return fmt.Errorf("watch %s: %w", s.scriptPath, err)
		}
	}

	srv := &http.Server{
		Addr:              s.cfg.Server.Addr,
		Handler:           s.routes(),
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("server listening",
			"addr", srv.Addr,
			"watch", s.scriptPath != "",
			"compression", s.cfg.Server.Compression,
		)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		s.log.Info("server stopped")
		return nil
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	}
}
