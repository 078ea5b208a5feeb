// SPDX-License-Identifier: MIT
// Package report is the serializable view of a built configuration: counts,
// parameters, spectrum, group data and the derived structures, encoded as
// JSON or YAML for the command line and the catalog.
package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/w33/clique"
	"github.com/katalvlaran/w33/matrix"
	"github.com/katalvlaran/w33/srg"
)

// ErrUnknownFormat reports an encoding other than json or yaml.
var ErrUnknownFormat = errors.New("report: unknown format")

// Format selects the encoding.
type Format string

// Supported formats.
const (
	JSON Format = "json"
	YAML Format = "yaml"
)

// ParseFormat accepts "json", "yaml" or "yml" in any case.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Counts are the headline numbers of a configuration.
type Counts struct {
	Points              int `json:"points" yaml:"points"`
	States              int `json:"states" yaml:"states"`
	Edges               int `json:"edges" yaml:"edges"`
	Lines               int `json:"lines" yaml:"lines"`
	Triangles           int `json:"triangles" yaml:"triangles"`
	ComplementTriangles int `json:"complement_triangles" yaml:"complement_triangles"`
	BasesPerVertex      int `json:"bases_per_vertex" yaml:"bases_per_vertex"`
	K4Components        int `json:"k4_components" yaml:"k4_components"`
}

// Group summarizes the automorphism stage. Order is a decimal string so
// that arbitrarily large orders survive both encodings. Base and OrbitSizes
// describe the stabilizer chain; the *Orbits fields are the orbit sizes on
// vertices, edges and non-edges.
type Group struct {
	Generators    int    `json:"generators" yaml:"generators"`
	Order         string `json:"order" yaml:"order"`
	Base          []int  `json:"base" yaml:"base"`
	OrbitSizes    []int  `json:"orbit_sizes" yaml:"orbit_sizes"`
	VertexOrbits  []int  `json:"vertex_orbits" yaml:"vertex_orbits"`
	EdgeOrbits    []int  `json:"edge_orbits" yaml:"edge_orbits"`
	NonEdgeOrbits []int  `json:"non_edge_orbits" yaml:"non_edge_orbits"`
}

// Report is the full serializable record.
type Report struct {
	Name        string              `json:"name" yaml:"name"`
	Params      srg.Params          `json:"params" yaml:"params"`
	Counts      Counts              `json:"counts" yaml:"counts"`
	Spectrum    []matrix.Eigenvalue `json:"spectrum" yaml:"spectrum"`
	WalkTraces  []float64           `json:"walk_traces" yaml:"walk_traces"`
	Isomorphism []int               `json:"isomorphism" yaml:"isomorphism"`
	Group       *Group              `json:"group,omitempty" yaml:"group,omitempty"`
	Lines       []clique.Line       `json:"lines,omitempty" yaml:"lines,omitempty"`
	K4          []clique.K4         `json:"k4,omitempty" yaml:"k4,omitempty"`
	Profile     []clique.Profile    `json:"profile,omitempty" yaml:"profile,omitempty"`
}

// Encode writes r to w in the given format.
func Encode(w io.Writer, r *Report, f Format) error {
	switch f {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("report: encode json: %w", err)
		}
		return nil
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("report: encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("report: encode yaml: %w", err)
		}
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
}

// Marshal returns r encoded in the given format.
func Marshal(r *Report, f Format) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, r, f); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes data in the given format.
func Unmarshal(data []byte, f Format) (*Report, error) {
	r := &Report{}
	switch f {
	case JSON:
		if err := json.Unmarshal(data, r); err != nil {
			return nil, fmt.Errorf("report: decode json: %w", err)
		}
	case YAML:
		if err := yaml.Unmarshal(data, r); err != nil {
			return nil, fmt.Errorf("report: decode yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
	return r, nil
}
