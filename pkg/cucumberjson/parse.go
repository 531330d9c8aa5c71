// Package cucumberjson reads cucumber JSON reports, as written by
// `godog --format cucumber` or cucumber-jvm, and replays them as a
// lifecycle event stream.
package cucumberjson

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

// Parse decodes a cucumber JSON report. Terminal color codes and any text
// printed before the JSON document are ignored.
func Parse(data []byte) ([]Feature, error) {
	data = cleanOutput(data)
	if len(data) == 0 {
		return nil, nil
	}

	if data[0] == '{' {
		var feature Feature
		if err := json.Unmarshal(data, &feature); err != nil {
			return nil, fmt.Errorf("decode cucumber json: %w", err)
		}
		return []Feature{feature}, nil
	}

	var features []Feature
	if err := json.Unmarshal(data, &features); err != nil {
		return nil, fmt.Errorf("decode cucumber json: %w", err)
	}
	return features, nil
}

// ParseFile reads and decodes the report at path.
func ParseFile(path string) ([]Feature, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read cucumber report: %w", err)
	}

	features, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return features, nil
}

func cleanOutput(data []byte) []byte {
	stripped := bytes.TrimSpace(stripANSICodes(data))
	if len(stripped) == 0 {
		return stripped
	}
	if i := bytes.IndexAny(stripped, "[{"); i > 0 {
		return stripped[i:]
	}
	return stripped
}

func stripANSICodes(data []byte) []byte {
	out := make([]byte, 0, len(data))
	for i := 0; i < len(data); {
		if data[i] == 0x1b && i+1 < len(data) && data[i+1] == '[' {
			i += 2
			for i < len(data) {
				ch := data[i]
				i++
				if ch >= 0x40 && ch <= 0x7e {
					break
				}
			}
			continue
		}
		out = append(out, data[i])
		i++
	}
	return out
}
