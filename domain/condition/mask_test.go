package condition

import "testing"

// TestMaskRoundTrip verifies every source and length survives encode/decode.
func TestMaskRoundTrip(t *testing.T) {
	for _, source := range []ContentSource{SourceAI, SourceOriginal, SourceProgrammatic} {
		idx, err := MaskSource(source)
		if err != nil {
			t.Fatalf("MaskSource(%s): %v", source, err)
		}
		back, err := UnmaskSource(idx)
		if err != nil {
			t.Fatalf("UnmaskSource(%d): %v", idx, err)
		}
		if back != source {
			t.Errorf("round trip %s -> %d -> %s", source, idx, back)
		}
	}

	for _, length := range []ContentLength{LengthLonger, LengthShorter} {
		idx, err := MaskLength(length)
		if err != nil {
			t.Fatalf("MaskLength(%s): %v", length, err)
		}
		back, err := UnmaskLength(idx)
		if err != nil {
			t.Fatalf("UnmaskLength(%d): %v", idx, err)
		}
		if back != length {
			t.Errorf("round trip %s -> %d -> %s", length, idx, back)
		}
	}
}

// TestUnmaskOutOfRange verifies indices outside the tables are rejected
// instead of wrapping or defaulting.
func TestUnmaskOutOfRange(t *testing.T) {
	for _, idx := range []int{-1, 3, 99} {
		if _, err := UnmaskSource(idx); err == nil {
			t.Errorf("UnmaskSource(%d) accepted an invalid index", idx)
		}
	}
	for _, idx := range []int{-1, 2, 99} {
		if _, err := UnmaskLength(idx); err == nil {
			t.Errorf("UnmaskLength(%d) accepted an invalid index", idx)
		}
	}
}

// TestMaskUnknownValue verifies undeclared enum values cannot be encoded.
func TestMaskUnknownValue(t *testing.T) {
	if _, err := MaskSource(ContentSource("telepathy")); err == nil {
		t.Error("MaskSource accepted an unknown source")
	}
	if _, err := MaskLength(ContentLength("medium")); err == nil {
		t.Error("MaskLength accepted an unknown length")
	}
}
