package shading

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestColorSpaceRoundTrip(t *testing.T) {
	// The curved decode segment is a fitted monomial, so round trips are
	// approximate, not bit-exact.
	const tolerance = 1e-3

	for i := 0; i <= 200; i++ {
		c := float32(i) / 200

		ed := encodeChannel(decodeChannel(c))
		if math.Abs(float64(ed-c)) > tolerance {
			t.Errorf("encode(decode(%v)) = %v, want within %v", c, ed, tolerance)
		}

		de := decodeChannel(encodeChannel(c))
		if math.Abs(float64(de-c)) > tolerance {
			t.Errorf("decode(encode(%v)) = %v, want within %v", c, de, tolerance)
		}
	}
}

func TestDecodeChannel(t *testing.T) {
	tests := []struct {
		name     string
		in       float32
		expected float32
	}{
		{name: "Black", in: 0, expected: 0},
		{name: "White", in: 1, expected: 1},
		{name: "Linear segment", in: 0.02, expected: 0.02 * 0.0773993808},
		{name: "Segment boundary, linear side", in: 0.04045, expected: 0.0031308},
		{name: "Mid gray", in: 0.5, expected: 0.21404114},
	}

	const tolerance = 1e-5
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := decodeChannel(tt.in)
			if math.Abs(float64(got-tt.expected)) > tolerance {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestEncodeChannel(t *testing.T) {
	tests := []struct {
		name     string
		in       float32
		expected float32
	}{
		{name: "Black", in: 0, expected: 0},
		{name: "White", in: 1, expected: 1},
		{name: "Linear segment", in: 0.002, expected: 0.002 * 12.92},
		{name: "Segment boundary, linear side", in: 0.0031308, expected: 0.04045},
		{name: "Mid linear", in: 0.21404114, expected: 0.5},
	}

	const tolerance = 1e-5
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := encodeChannel(tt.in)
			if math.Abs(float64(got-tt.expected)) > tolerance {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestSegmentBoundaryContinuity(t *testing.T) {
	// The piecewise halves must meet without a visible step.
	const tolerance = 1e-5

	lo := decodeChannel(0.04045)
	hi := decodeChannel(0.040451)
	if math.Abs(float64(hi-lo)) > tolerance {
		t.Errorf("Decode discontinuity at segment boundary: %v vs %v", lo, hi)
	}

	lo = encodeChannel(0.0031308)
	hi = encodeChannel(0.0031309)
	if math.Abs(float64(hi-lo)) > tolerance {
		t.Errorf("Encode discontinuity at segment boundary: %v vs %v", lo, hi)
	}
}

func TestDecodeColorPerChannel(t *testing.T) {
	c := mgl32.Vec3{0.25, 0.5, 0.75}
	got := DecodeColor(c)
	want := mgl32.Vec3{decodeChannel(0.25), decodeChannel(0.5), decodeChannel(0.75)}
	if got != want {
		t.Errorf("Expected %v, got %v", want, got)
	}
}
