// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/cam/cam16"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// LoadViewConfig returns the given base config with the values of the
// given file applied over it. The format is chosen by the file extension.
func LoadViewConfig(path string, base cam16.ViewConfig) (cam16.ViewConfig, error) {
	cfg := base
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("load view config: %w", err)
	}
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".toml":
		err = toml.Unmarshal(data, &cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	case ".json":
		err = json.Unmarshal(data, &cfg)
	default:
		return base, fmt.Errorf("load view config: unsupported config extension: %q", ext)
	}
	if err != nil {
		return base, fmt.Errorf("parse %s: %w", path, err)
	}
	for _, w := range cfg.WhitePoint {
		if !(w > 0) {
			return base, fmt.Errorf("parse %s: white point components must be positive: %v", path, cfg.WhitePoint)
		}
	}
	return cfg, nil
}
