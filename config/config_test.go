package config

import (
	"strings"
	"testing"

	"latbuilder-go/sizeparam"
	"latbuilder-go/weights"
)

func TestParseSizePlainInteger(t *testing.T) {
	p, err := ParseSize("1021")
	if err != nil {
		t.Fatalf("ParseSize: %v", err)
	}
	if p.N != 1021 || p.Kind != sizeparam.Integer {
		t.Fatalf("ParseSize(1021) = %+v, want N=1021 Integer", p)
	}
}

func TestParseSizePowerOfTwo(t *testing.T) {
	p, err := ParseSize("2^10")
	if err != nil {
		t.Fatalf("ParseSize: %v", err)
	}
	if p.N != 1024 {
		t.Fatalf("ParseSize(2^10).N = %d, want 1024", p.N)
	}
}

func TestParseSizeEmbeddedPowerOfTwo(t *testing.T) {
	p, err := ParseSize("2^10:4")
	if err != nil {
		t.Fatalf("ParseSize: %v", err)
	}
	if !p.Embedded || p.MaxLevel != 4 {
		t.Fatalf("ParseSize(2^10:4) = %+v, want Embedded MaxLevel=4", p)
	}
}

func TestParseSizePolynomial(t *testing.T) {
	p, err := ParseSize("mod:19")
	if err != nil {
		t.Fatalf("ParseSize: %v", err)
	}
	if p.Kind != sizeparam.Polynomial {
		t.Fatalf("ParseSize(mod:19).Kind = %v, want Polynomial", p.Kind)
	}
}

func TestParseSizeBadSize(t *testing.T) {
	if _, err := ParseSize("not-a-number"); err == nil {
		t.Fatal("ParseSize(garbage) must return a BadSize error")
	}
}

func TestParseWeightsProduct(t *testing.T) {
	w, err := ParseWeights("product:0.1,0.5,0.5")
	if err != nil {
		t.Fatalf("ParseWeights: %v", err)
	}
	p, ok := w.(*weights.Product)
	if !ok {
		t.Fatalf("ParseWeights(product:...) returned %T, want *weights.Product", w)
	}
	if p.Default != 0.1 || len(p.Coord) != 2 {
		t.Fatalf("parsed product weights = %+v, want Default=0.1 with 2 coordinate weights", p)
	}
}

func TestParseWeightsCombined(t *testing.T) {
	w, err := ParseWeights("combined:product:0.1;order-dependent:0,1,0.5")
	if err != nil {
		t.Fatalf("ParseWeights(combined): %v", err)
	}
	if w == nil {
		t.Fatal("ParseWeights(combined) returned nil Weights")
	}
}

func TestParseWeightsInterlacedPODRequiresPOD(t *testing.T) {
	if _, err := ParseWeights("interlaced-POD:product:0.1"); err == nil {
		t.Fatal("interlaced-POD must reject a non-POD inner spec")
	}
}

func TestParseWeightsProjectionDependent(t *testing.T) {
	w, err := ParseWeights("projection-dependent:0:{1,2}=0.75")
	if err != nil {
		t.Fatalf("ParseWeights(projection-dependent): %v", err)
	}
	if w == nil {
		t.Fatal("ParseWeights returned nil")
	}
}

func TestParseWeightsUnrecognisedKind(t *testing.T) {
	if _, err := ParseWeights("bogus:1,2"); err == nil {
		t.Fatal("ParseWeights must reject an unrecognised kind")
	}
}

func TestReadDirectionNumbersParsesRows(t *testing.T) {
	input := "d s a m_i\n2 2 1 1 3\n3 3 1 1 3 7\n"
	entries, err := ReadDirectionNumbers(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadDirectionNumbers: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("ReadDirectionNumbers parsed %d entries, want 2", len(entries))
	}
	if entries[0].Degree != 2 || len(entries[0].M) != 2 {
		t.Fatalf("entries[0] = %+v, want Degree=2, 2 direction numbers", entries[0])
	}
}

func TestReadDirectionNumbersRejectsShortRow(t *testing.T) {
	input := "header\n2 3 1 1\n"
	if _, err := ReadDirectionNumbers(strings.NewReader(input)); err == nil {
		t.Fatal("ReadDirectionNumbers must reject a row with too few direction numbers")
	}
}
