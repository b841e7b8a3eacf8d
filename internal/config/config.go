// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/apex/log"
	"gopkg.in/yaml.v3"
)

// Type is a loaded brewfmt.yaml. Namespace, when set, is the subcommand whose
// section ("outdated.width") is preferred over the top-level key ("width").
type Type struct {
	Source    string
	Namespace string
	Data      map[string]interface{}
}

// Config is the process-wide configuration.
var Config Type

// A missing or unreadable file leaves Config empty; brewfmt runs without one.
func init() {
	_, _ = Load()
}

// GetBool returns the bool at key, or the single defaultValue when the key is
// missing.
func GetBool(key string, defaultValue ...bool) (bool, error) {
	return typed(key, defaultValue, "bool", func(v any) (bool, bool) {
		b, ok := v.(bool)
		return b, ok
	})
}

// GetInt returns the int at key. YAML integers may decode as int or int64 and
// whole floats such as 30.0 are accepted.
func GetInt(key string, defaultValue ...int) (int, error) {
	return typed(key, defaultValue, "int", func(v any) (int, bool) {
		switch n := v.(type) {
		case int:
			return n, true
		case int64:
			return int(n), true
		case float64:
			return int(n), true
		}
		return 0, false
	})
}

// GetString returns the string at key.
func GetString(key string, defaultValue ...string) (string, error) {
	return typed(key, defaultValue, "string", func(v any) (string, bool) {
		s, ok := v.(string)
		return s, ok
	})
}

// GetStringSlice returns the list of strings at key, e.g. a flag set.
func GetStringSlice(key string, defaultValue ...[]string) ([]string, error) {
	val, err := lookup(key)
	if err != nil {
		if len(defaultValue) == 1 {
			return defaultValue[0], nil
		}
		return nil, err
	}

	items, ok := val.([]interface{})
	if !ok {
		return nil, fmt.Errorf("%s: value is not a slice", key)
	}
	result := make([]string, len(items))
	for i, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("%s[%d]: slice element is not a string", key, i)
		}
		result[i] = s
	}
	return result, nil
}

// typed resolves key and converts it with convert. A missing key yields the
// single default when one is given.
func typed[T any](key string, defaultValue []T, kind string, convert func(any) (T, bool)) (T, error) {
	var zero T

	val, err := lookup(key)
	if err != nil {
		if len(defaultValue) == 1 {
			return defaultValue[0], nil
		}
		return zero, err
	}

	v, ok := convert(val)
	if !ok {
		return zero, fmt.Errorf("%s: value is not a %s", key, kind)
	}
	return v, nil
}

func lookup(key string) (any, error) {
	if len(Config.Data) == 0 {
		_, _ = Load()
	}
	return Config.get(key)
}

// Load reads the config file into Config, keeping the current Namespace.
func Load() (Type, error) {
	path, err := File()
	if err != nil {
		return Type{}, err
	}

	bytes, err := os.ReadFile(path)
	if err != nil {
		return Type{}, err
	}

	var data map[string]interface{}
	if err := yaml.Unmarshal(bytes, &data); err != nil {
		return Type{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	Config = Type{
		Source:    path,
		Namespace: Config.Namespace,
		Data:      data,
	}

	return Config, nil
}

// get walks the dotted key kspec, trying Namespace.kspec first.
func (cfg *Type) get(kspec string) (any, error) {
	candidateKeys := []string{kspec}
	if cfg.Namespace != "" {
		candidateKeys = []string{cfg.Namespace + "." + kspec, kspec}
	}

	for _, key := range candidateKeys {
		if v, ok := walk(cfg.Data, strings.Split(key, ".")); ok {
			return v, nil
		}
	}

	return nil, fmt.Errorf("no valid path found among: %v", candidateKeys)
}

func walk(node any, path []string) (any, bool) {
	for _, key := range path {
		m, ok := node.(map[string]interface{})
		if !ok {
			return nil, false
		}
		if node, ok = m[key]; !ok {
			return nil, false
		}
	}
	return node, true
}

// File locates brewfmt.yaml: BREWFMT_CFG_FILE when set, which must name an
// existing file, else brewfmt.yaml in os.UserConfigDir.
func File() (string, error) {
	if cfgPath := os.Getenv("BREWFMT_CFG_FILE"); cfgPath != "" {
		fileInfo, err := os.Stat(cfgPath)
		if err != nil {
			return "", fmt.Errorf("config file not found at BREWFMT_CFG_FILE path: %s", cfgPath)
		}
		if fileInfo.IsDir() {
			return "", fmt.Errorf("BREWFMT_CFG_FILE points to a directory: %s", cfgPath)
		}
		log.Debugf("using config file from BREWFMT_CFG_FILE: %s", cfgPath)
		return cfgPath, nil
	}

	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}

	file := filepath.Join(dir, "brewfmt.yaml")
	if fileInfo, err := os.Stat(file); err != nil || fileInfo.IsDir() {
		return "", fmt.Errorf("no config file at %s", file)
	}
	log.Debugf("using config file: %s", file)
	return file, nil
}
