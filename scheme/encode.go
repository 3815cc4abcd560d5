// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scheme

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format is a serialization format for schemes.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// Formats are all of the supported formats.
var Formats = []Format{FormatJSON, FormatYAML, FormatTOML}

// ErrUnknownFormat is returned for formats other than [Formats].
var ErrUnknownFormat = errors.New("unknown format")

// ParseFormat returns the format with the given name, case insensitively.
// "yml" is accepted for YAML.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case FormatJSON, FormatYAML, FormatTOML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("scheme.ParseFormat: %q: %w", name, ErrUnknownFormat)
}

// Encode writes the scheme to the given writer in the given format.
func (s *Scheme) Encode(w io.Writer, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(s); err != nil {
			return fmt.Errorf("scheme.Encode json: %w", err)
		}
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(s); err != nil {
			return fmt.Errorf("scheme.Encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("scheme.Encode yaml: %w", err)
		}
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(s); err != nil {
			return fmt.Errorf("scheme.Encode toml: %w", err)
		}
	default:
		return fmt.Errorf("scheme.Encode: %q: %w", format, ErrUnknownFormat)
	}
	return nil
}

// Marshal returns the scheme encoded in the given format.
func (s *Scheme) Marshal(format Format) ([]byte, error) {
	var b bytes.Buffer
	if err := s.Encode(&b, format); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

// Unmarshal decodes a scheme in the given format.
func Unmarshal(data []byte, format Format) (*Scheme, error) {
	s := &Scheme{}
	var err error
	switch format {
	case FormatJSON:
		err = json.Unmarshal(data, s)
	case FormatYAML:
		err = yaml.Unmarshal(data, s)
	case FormatTOML:
		err = toml.Unmarshal(data, s)
	default:
		return nil, fmt.Errorf("scheme.Unmarshal: %q: %w", format, ErrUnknownFormat)
	}
	if err != nil {
		return nil, fmt.Errorf("scheme.Unmarshal %s: %w", format, err)
	}
	return s, nil
}
