/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package webui

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherDetectsScriptChanges(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "talk.txt")
	if err := os.WriteFile(path, []byte("Slide 1\nTitle: First"), 0o644); err != nil {
		t.Fatalf("write script: %v", err)
	}

	changed := make(chan struct{}, 1)
	w, err := NewWatcher(path, testLogger(), func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	})
	if err != nil {
		t.Fatalf("new watcher: %v", err)
	}
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := w.Start(ctx); err != nil {
		t.Fatalf("start: %v", err)
	}
	if got := w.ChangeSeq(); got != 0 {
		t.Fatalf("initial seq = %d, want 0", got)
	}

	if err := os.WriteFile(path, []byte("Slide 1\nTitle: Second"), 0o644); err != nil {
		t.Fatalf("rewrite script: %v", err)
	}

	select {
	case <-changed:
	case <-time.After(5 * time.Second):
		t.Fatalf("watcher never reported the change")
	}
	if got := w.ChangeSeq(); got == 0 {
		t.Fatalf("seq still 0 after change")
	}
}

func TestWatcherIgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "talk.txt")
	if err := os.WriteFile(path, []byte("Slide 1"), 0o644); err != nil {
		t.Fatalf("write script: %v", err)
	}

	w, err := NewWatcher(path, testLogger(), func() {})
	if err != nil {
		t.Fatalf("new watcher: %v", err)
	}
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := w.Start(ctx); err != nil {
		t.Fatalf("start: %v", err)
	}

	if err := os.WriteFile(filepath.Join(dir, "other.txt"), []byte("noise"), 0o644); err != nil {
		t.Fatalf("write sibling: %v", err)
	}
	time.Sleep(300 * time.Millisecond)
	if got := w.ChangeSeq(); got != 0 {
		t.Fatalf("seq = %d after sibling write, want 0", got)
	}
}

func TestWatcherStopsOnContextCancel(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "talk.txt")
	if err := os.WriteFile(path, []byte("Slide 1"), 0o644); err != nil {
		t.Fatalf("write script: %v", err)
	}

	w, err := NewWatcher(path, testLogger(), func() {})
	if err != nil {
		t.Fatalf("new watcher: %v", err)
	}
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	if err := w.Start(ctx); err != nil {
		t.Fatalf("start: %v", err)
	}
	cancel()
	time.Sleep(100 * time.Millisecond)

	if err := os.WriteFile(path, []byte("Slide 2"), 0o644); err != nil {
		t.Fatalf("rewrite script: %v", err)
	}
	time.Sleep(300 * time.Millisecond)
	if got := w.ChangeSeq(); got != 0 {
		t.Fatalf("seq = %d after cancel, want 0", got)
	}
}
