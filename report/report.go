// Package report implements the output formatting of spec.md §6: textual
// rendering of a constructed lattice or net, and a JSONL writer for
// recording every CBC search step (one JSON object per line), matching the
// teacher's sweep tooling which records one JSON object per trial rather
// than a single aggregate file.
package report

import (
	"encoding/json"
	"fmt"
	"io"

	"latbuilder-go/lattice"
	"latbuilder-go/net"
	"latbuilder-go/storage"
)

// FormatLattice renders a Lattice as a human-readable summary line.
func FormatLattice(l *lattice.Lattice) string {
	return fmt.Sprintf("lattice(n=%s, s=%d) gen=%s", l.Param.String(), l.Dimension(), l.String())
}

// FormatNet renders a Net as a human-readable summary line.
func FormatNet(n *net.Net) string {
	return fmt.Sprintf("net(m=%d, s=%d, n=%d)", n.M, n.S, n.NumPoints())
}

// Record is one JSONL line: a single CBC step or final search result.
type Record struct {
	Dimension int       `json:"dimension"`
	Generator string    `json:"generator"`
	Merit     []float64 `json:"merit"`
	Note      string    `json:"note,omitempty"`
}

// JSONLWriter appends Records to an io.Writer, one JSON object per line.
type JSONLWriter struct {
	w   io.Writer
	enc *json.Encoder
}

// NewJSONLWriter builds a JSONLWriter over w.
func NewJSONLWriter(w io.Writer) *JSONLWriter {
	return &JSONLWriter{w: w, enc: json.NewEncoder(w)}
}

// Write appends one Record as a JSON line.
func (j *JSONLWriter) Write(rec Record) error {
	return j.enc.Encode(rec)
}

// WriteMerit is a convenience wrapper building a Record from a raw
// MeritValue and generator string.
func (j *JSONLWriter) WriteMerit(dim int, gen string, m storage.MeritValue, note string) error {
	return j.Write(Record{Dimension: dim, Generator: gen, Merit: m.Levels, Note: note})
}
