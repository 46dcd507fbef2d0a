package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"latbuilder-go/coorduniform"
	"latbuilder-go/lattice"
	"latbuilder-go/net"
	"latbuilder-go/sizeparam"
	"latbuilder-go/storage"
)

func TestFormatLattice(t *testing.T) {
	p, _ := sizeparam.NewInteger(5)
	l, _ := lattice.New(p, []coorduniform.GenValue{coorduniform.Int(1), coorduniform.Int(2)})
	got := FormatLattice(l)
	if !strings.Contains(got, "n=5") || !strings.Contains(got, "s=2") {
		t.Fatalf("FormatLattice = %q, want it to mention n=5 and s=2", got)
	}
}

func TestFormatNet(t *testing.T) {
	n, _ := net.NewSobol(3, 4)
	got := FormatNet(n)
	if !strings.Contains(got, "m=4") || !strings.Contains(got, "s=3") {
		t.Fatalf("FormatNet = %q, want it to mention m=4 and s=3", got)
	}
}

func TestJSONLWriterWritesOneLinePerRecord(t *testing.T) {
	var buf bytes.Buffer
	w := NewJSONLWriter(&buf)
	if err := w.WriteMerit(0, "1", storage.Scalar(0.5), "note-a"); err != nil {
		t.Fatalf("WriteMerit: %v", err)
	}
	if err := w.WriteMerit(1, "2", storage.Scalar(0.25), ""); err != nil {
		t.Fatalf("WriteMerit: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("JSONLWriter produced %d lines, want 2", len(lines))
	}
	var rec Record
	if err := json.Unmarshal([]byte(lines[0]), &rec); err != nil {
		t.Fatalf("json.Unmarshal: %v", err)
	}
	if rec.Dimension != 0 || rec.Generator != "1" || rec.Note != "note-a" {
		t.Fatalf("decoded Record = %+v, want Dimension=0 Generator=1 Note=note-a", rec)
	}
}
