// SPDX-License-Identifier: MIT

package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"
)

// Input formats accepted by --input-format.
const (
	InputAuto = "auto"
	InputJSON = "json"
	InputYAML = "yaml"
	InputText = "text"
)

// ValidInputFormats lists the --input-format values.
var ValidInputFormats = []string{InputAuto, InputJSON, InputYAML, InputText}

// openInput returns the reader for path ("" or "-" is stdin) and the format
// implied by its extension.
func openInput(path string, stdin io.Reader) (io.ReadCloser, string, error) {
	if path == "" || path == "-" {
		return io.NopCloser(stdin), InputAuto, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, "", err
	}

	return f, formatFromExt(path), nil
}

func formatFromExt(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return InputJSON
	case ".yaml", ".yml":
		return InputYAML
	case ".txt", ".csv", ".tsv":
		return InputText
	}
	return InputAuto
}

// sniffFormat guesses the format of data: a leading '[' is JSON, a leading
// "- " sequence item is YAML, anything else is text.
func sniffFormat(data []byte) string {
	trimmed := bytes.TrimLeftFunc(data, unicode.IsSpace)
	switch {
	case bytes.HasPrefix(trimmed, []byte("[")):
		return InputJSON
	case bytes.HasPrefix(trimmed, []byte("- ")), bytes.HasPrefix(trimmed, []byte("-\n")):
		return InputYAML
	}
	return InputText
}

// decodeSeries parses one series from data.
func decodeSeries(data []byte, format string) ([]float64, error) {
	if format == InputAuto {
		format = sniffFormat(data)
	}

	var values []float64
	switch format {
	case InputJSON:
		if err := json.Unmarshal(data, &values); err != nil {
			return nil, fmt.Errorf("decode json series: %w", err)
		}
	case InputYAML:
		if err := yaml.Unmarshal(data, &values); err != nil {
			return nil, fmt.Errorf("decode yaml series: %w", err)
		}
	case InputText:
		fields := strings.FieldsFunc(string(data), func(r rune) bool {
			return r == ',' || r == ';' || unicode.IsSpace(r)
		})
		values = make([]float64, 0, len(fields))
		for i, field := range fields {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("decode text series: field %d: %w", i, err)
			}
			values = append(values, v)
		}
	default:
		return nil, fmt.Errorf("unknown input format %q", format)
	}

	return values, nil
}

// decodeBatch parses a list of series from JSON or YAML data.
func decodeBatch(data []byte, format string) ([][]float64, error) {
	if format == InputAuto || format == InputText {
		format = sniffFormat(data)
	}

	var series [][]float64
	switch format {
	case InputJSON:
		if err := json.Unmarshal(data, &series); err != nil {
			return nil, fmt.Errorf("decode json batch: %w", err)
		}
	case InputYAML:
		if err := yaml.Unmarshal(data, &series); err != nil {
			return nil, fmt.Errorf("decode yaml batch: %w", err)
		}
	default:
		return nil, fmt.Errorf("batch input must be json or yaml")
	}

	return series, nil
}

// readAll reads path (or stdin) fully and resolves the effective format.
func readAll(path, format string, stdin io.Reader) ([]byte, string, error) {
	rc, extFormat, err := openInput(path, stdin)
	if err != nil {
		return nil, "", err
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, "", err
	}
	if format == InputAuto {
		format = extFormat
	}

	return data, format, nil
}

func isValidInputFormat(format string) bool {
	for _, f := range ValidInputFormats {
		if f == format {
			return true
		}
	}
	return false
}
