package xinput

import (
	"math"
	"testing"
)

func TestDecode8(t *testing.T) {
	values := decode8([]byte{0, 1, 2, 255})
	expected := []RawValue{0, 1, 2, 255}
	if len(values) != len(expected) {
		t.Fatalf("expected %d values, got %d", len(expected), len(values))
	}
	for i, v := range values {
		if v != expected[i] {
			t.Errorf("slot %d: expected %v, got %v", i, expected[i], v)
		}
	}
}

func TestDecode16KeepsSign(t *testing.T) {
	values := decode16([]uint16{0xffff, 100})
	if values[0] != -1 {
		t.Errorf("expected -1, got %v", values[0])
	}
	if values[1] != 100 {
		t.Errorf("expected 100, got %v", values[1])
	}
}

func TestDecode32Integer(t *testing.T) {
	values := decode32([]uint32{0xffffffff, 2500}, false)
	if values[0] != -1 {
		t.Errorf("expected -1, got %v", values[0])
	}
	if values[1] != 2500 {
		t.Errorf("expected 2500, got %v", values[1])
	}
}

func TestDecode32Float(t *testing.T) {
	bits := math.Float32bits(1.75)
	values := decode32([]uint32{bits}, true)
	if values[0] != 1.75 {
		t.Errorf("expected 1.75, got %v", values[0])
	}
}

func TestFloatRoundTrip(t *testing.T) {
	for _, v := range []RawValue{0, 1, -2.5, 0.4, 1000.125} {
		items := encodeFloat32([]RawValue{v})
		got := decode32(items, true)[0]
		if math.Abs(float64(got-v)) > 1e-6 {
			t.Errorf("round trip of %v yielded %v", v, got)
		}
	}
}

func TestIntRoundTrip(t *testing.T) {
	for _, v := range []RawValue{0, 1, -1, 2500, -100000} {
		items := encodeInt32([]RawValue{v})
		got := decode32(items, false)[0]
		if got != v {
			t.Errorf("round trip of %v yielded %v", v, got)
		}
	}
}

func TestEncodeBoolNormalizes(t *testing.T) {
	items := encodeBool([]RawValue{0, 1, 2, -1})
	expected := []byte{0, 1, 1, 1}
	for i, b := range items {
		if b != expected[i] {
			t.Errorf("slot %d: expected %d, got %d", i, expected[i], b)
		}
	}
}

func TestBoolValue(t *testing.T) {
	if BoolValue(true) != 1 || BoolValue(false) != 0 {
		t.Error("BoolValue must encode to 0/1")
	}
	if !RawValue(2).Bool() || RawValue(0).Bool() {
		t.Error("Bool must treat nonzero as true")
	}
}
