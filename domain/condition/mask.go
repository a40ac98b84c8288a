package condition

import "gotrial/domain/core"

// Source and length values cross client-visible URLs as small integer indices
// so the condition labels never appear in the address bar. The mapping is an
// explicit bidirectional table: encode and decode share the same canonical
// ordering rather than relying on enum declaration or map iteration order.

var sourceByMask = []ContentSource{SourceAI, SourceOriginal, SourceProgrammatic}

var lengthByMask = []ContentLength{LengthLonger, LengthShorter}

var maskBySource = func() map[ContentSource]int {
	m := make(map[ContentSource]int, len(sourceByMask))
	for i, s := range sourceByMask {
		m[s] = i
	}
	return m
}()

var maskByLength = func() map[ContentLength]int {
	m := make(map[ContentLength]int, len(lengthByMask))
	for i, l := range lengthByMask {
		m[l] = i
	}
	return m
}()

// MaskSource encodes a content source as its URL-safe index.
func MaskSource(s ContentSource) (int, error) {
	i, ok := maskBySource[s]
	if !ok {
		return 0, core.ErrInvalidSource
	}
	return i, nil
}

// UnmaskSource decodes a URL index back to a content source.
func UnmaskSource(index int) (ContentSource, error) {
	if index < 0 || index >= len(sourceByMask) {
		return "", core.NewInvalidMaskError("source", index)
	}
	return sourceByMask[index], nil
}

// MaskLength encodes a content length as its URL-safe index.
func MaskLength(l ContentLength) (int, error) {
	i, ok := maskByLength[l]
	if !ok {
		return 0, core.ErrInvalidLength
	}
	return i, nil
}

// UnmaskLength decodes a URL index back to a content length.
func UnmaskLength(index int) (ContentLength, error) {
	if index < 0 || index >= len(lengthByMask) {
		return "", core.NewInvalidMaskError("length", index)
	}
	return lengthByMask[index], nil
}
