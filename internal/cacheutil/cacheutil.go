// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package cacheutil keeps the last `brew outdated` document on disk so that
// --cached can render it again without running brew.
package cacheutil

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/staranto/brewfmt/internal/log"
)

// Store holds one outdated document per brew executable in Dir.
type Store struct {
	Dir string
}

// Open returns the store for this process. The directory is
// BREWFMT_CACHE_DIR, else os.UserCacheDir()/brewfmt. ok is false when
// BREWFMT_CACHE is "0" or "false", or no directory can be resolved.
func Open() (Store, bool) {
	if v := os.Getenv("BREWFMT_CACHE"); v == "0" || v == "false" {
		return Store{}, false
	}
	if dir := os.Getenv("BREWFMT_CACHE_DIR"); dir != "" {
		return Store{Dir: dir}, true
	}
	base, err := os.UserCacheDir()
	if err != nil || base == "" {
		return Store{}, false
	}
	return Store{Dir: filepath.Join(base, "brewfmt")}, true
}

// Read returns the document cached for brewPath and when it was written.
func (s Store) Read(brewPath string) (string, time.Time, bool) {
	p := s.path(brewPath)
	info, err := os.Stat(p)
	if err != nil {
		return "", time.Time{}, false
	}
	b, err := os.ReadFile(p)
	if err != nil {
		log.WithError(err).Warnf("unreadable cache entry %s", p)
		return "", time.Time{}, false
	}
	log.Debugf("cache hit: brew=%s", brewPath)
	return string(b), info.ModTime(), true
}

// Write replaces the document cached for brewPath. The file is renamed into
// place so a concurrent Read never sees a partial document.
func (s Store) Write(brewPath string, doc string) error {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil { //nolint:mnd
		return fmt.Errorf("failed to create cache directory: %w", err)
	}

	tmp, err := os.CreateTemp(s.Dir, "outdated-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to write to cache: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(doc); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write to cache: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write to cache: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path(brewPath)); err != nil {
		return fmt.Errorf("failed to write to cache: %w", err)
	}

	log.Debugf("cache write: brew=%s", brewPath)
	return nil
}

// Purge removes cached documents older than maxAge. A non-positive maxAge
// keeps everything.
func (s Store) Purge(maxAge time.Duration) error {
	if maxAge <= 0 {
		return nil
	}

	entries, err := os.ReadDir(s.Dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to purge cache: %w", err)
	}

	for _, e := range entries {
		if e.IsDir() || !strings.HasPrefix(e.Name(), "outdated-") {
			continue
		}
		info, err := e.Info()
		if err != nil || time.Since(info.ModTime()) <= maxAge {
			continue
		}
		p := filepath.Join(s.Dir, e.Name())
		if err := os.Remove(p); err != nil {
			log.WithError(err).Warnf("failed to remove cache file %s", p)
		} else {
			log.Debugf("removed cache file %s", p)
		}
	}
	return nil
}

// path names the entry for brewPath after a digest of the path, so that
// several brew installations keep separate documents.
func (s Store) path(brewPath string) string {
	sum := sha256.Sum256([]byte(brewPath))
	return filepath.Join(s.Dir, "outdated-"+hex.EncodeToString(sum[:8])+".json")
}
