// Package imaging turns image files into captures the boundary engine can
// measure.
//
// It owns everything between a file on disk and a boundary.Buffer: decoding
// and caching, cropping a capture down to a region of interest, perceptual
// fingerprints used to recognise a repeated capture, and colour sampling at a
// screen point.
//
// # Coordinate System
//
// Regions are given in pixels of the decoded image with (X1,Y1) inclusive and
// (X2,Y2) exclusive. Sampling takes screen points and goes through the
// Buffer's own clamping, so it never fails on out-of-range input.
//
// # Thread Safety
//
// ImageCache is safe for concurrent use. Captures are immutable once built.
package imaging
