/*
   Copyright 2026 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package export writes the compiled registries to YAML or JSON documents
// and checks such documents against them.
package export

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"dirpx.dev/picocodes"
	"dirpx.dev/picocodes/info"
	"dirpx.dev/picocodes/status"
)

// Format selects the document encoding.
type Format string

const (
	YAML Format = "yaml"
	JSON Format = "json"
)

// ParseFormat accepts "yaml", "yml" or "json".
func ParseFormat(s string) (Format, error) {
	switch s {
	case "yaml", "yml":
		return YAML, nil
	case "json":
		return JSON, nil
	default:
		return "", fmt.Errorf("export: unknown format %q", s)
	}
}

// Row is one table entry in a document.
type Row struct {
	Name  string `yaml:"name" json:"name"`
	Value uint32 `yaml:"value" json:"value"`
	Hex   string `yaml:"hex,omitempty" json:"hex,omitempty"`
}

// Document holds both tables.
type Document struct {
	Status []Row `yaml:"status" json:"status"`
	Info   []Row `yaml:"info" json:"info"`
}

// Snapshot builds a Document from the compiled registries.
func Snapshot() Document {
	return Document{
		Status: rows(status.Entries()),
		Info:   rows(info.Entries()),
	}
}

func rows(entries []picocodes.Entry) []Row {
	out := make([]Row, len(entries))
	for i, e := range entries {
		out[i] = Row{Name: e.Name, Value: e.Value, Hex: e.Hex()}
	}
	return out
}

// Write encodes doc to w.
func Write(w io.Writer, f Format, doc Document) error {
	switch f {
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("export: encode yaml: %w", err)
		}
		return enc.Close()
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("export: encode json: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("export: unknown format %q", f)
	}
}

// Read decodes a Document from r. Unknown fields are rejected.
func Read(r io.Reader, f Format) (Document, error) {
	var doc Document
	switch f {
	case YAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil {
			return Document{}, fmt.Errorf("export: decode yaml: %w", err)
		}
	case JSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			return Document{}, fmt.Errorf("export: decode json: %w", err)
		}
	default:
		return Document{}, fmt.Errorf("export: unknown format %q", f)
	}
	return doc, nil
}

// Problem classifies a Mismatch.
type Problem int

const (
	// ValueDiffers: the row's value is not the compiled one.
	ValueDiffers Problem = iota + 1
	// HexDiffers: the row's hex field does not spell its own value.
	HexDiffers
	// Unknown: the row names a code that is not compiled in.
	Unknown
	// Duplicate: the name already appeared earlier in the same table.
	Duplicate
	// Missing: a compiled code has no row in the document.
	Missing
)

// Mismatch describes one disagreement between a document and the compiled
// registry.
type Mismatch struct {
	Table   string
	Problem Problem
	// Row is the offending row. For Missing it carries only the name.
	Row Row
	// Want is the compiled value, set for ValueDiffers and Missing.
	Want uint32
	// Err is the lookup error for Unknown.
	Err error
}

func (m Mismatch) String() string {
	switch m.Problem {
	case ValueDiffers:
		return fmt.Sprintf("%s: %s = %s, compiled %s", m.Table, m.Row.Name, picocodes.Hex(m.Row.Value), picocodes.Hex(m.Want))
	case HexDiffers:
		return fmt.Sprintf("%s: %s hex %q does not match value %s", m.Table, m.Row.Name, m.Row.Hex, picocodes.Hex(m.Row.Value))
	case Unknown:
		return fmt.Sprintf("%s: %v", m.Table, m.Err)
	case Duplicate:
		return fmt.Sprintf("%s: %s listed more than once", m.Table, m.Row.Name)
	case Missing:
		return fmt.Sprintf("%s: %s (%s) missing", m.Table, m.Row.Name, picocodes.Hex(m.Want))
	default:
		return fmt.Sprintf("%s: %s", m.Table, m.Row.Name)
	}
}

// Verify compares doc with the compiled registries. A document passes only
// when it lists every compiled code exactly once, with the compiled value and
// either no hex field or the hex spelling of that value. Problems are
// reported in document order, followed by the compiled codes the document
// leaves out in value order.
func Verify(doc Document) []Mismatch {
	var out []Mismatch
	out = verifyTable(out, picocodes.TableStatus, doc.Status, status.Entries(), status.Value)
	out = verifyTable(out, picocodes.TableInfo, doc.Info, info.Entries(), info.Value)
	return out
}

func verifyTable(out []Mismatch, table string, rows []Row, compiled []picocodes.Entry, lookup func(string) (uint32, error)) []Mismatch {
	seen := make(map[string]bool, len(rows))
	for _, r := range rows {
		if seen[r.Name] {
			out = append(out, Mismatch{Table: table, Problem: Duplicate, Row: r})
			continue
		}
		seen[r.Name] = true

		v, err := lookup(r.Name)
		switch {
		case err != nil:
			out = append(out, Mismatch{Table: table, Problem: Unknown, Row: r, Err: err})
		case v != r.Value:
			out = append(out, Mismatch{Table: table, Problem: ValueDiffers, Row: r, Want: v})
		}
		if r.Hex != "" && r.Hex != picocodes.Hex(r.Value) {
			out = append(out, Mismatch{Table: table, Problem: HexDiffers, Row: r})
		}
	}
	for _, e := range compiled {
		if !seen[e.Name] {
			out = append(out, Mismatch{Table: table, Problem: Missing, Row: Row{Name: e.Name}, Want: e.Value})
		}
	}
	return out
}
