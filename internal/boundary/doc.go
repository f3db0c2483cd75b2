// Package boundary finds object edges in a captured screen raster.
//
// A Buffer wraps one decoded capture together with the screen rectangle it
// covers and its scale factor. All queries take points in screen units (the
// same space as the Buffer's origin rectangle) and report distances in screen
// units, so results are independent of the display density.
//
// # Queries
//
//   - Scan walks from a point along one axis and reports the first stable
//     colour change, optionally skipping nested edges and absorbing a hairline
//     border next to the edge.
//   - QueryPoint runs Scan on all four sides and, in Smart mode, decides per
//     opposing pair whether hairline borders belong to the measured object by
//     preferring totals that land on the layout grid.
//   - SnapRect shrinks a drag rectangle onto the content it brackets.
//
// # Coordinate System
//
// Pixel (0,0) is the top-left of the raster. A screen point maps to the pixel
// floor((p - origin) * scale); indices outside the raster are clamped, never
// rejected. Reported edge positions are pixel-grid boundaries converted back
// to screen units.
//
// # Thread Safety
//
// A Buffer is immutable after construction and may be scanned from any number
// of goroutines. Session is plain state owned by the caller and is not
// synchronized.
//
// # Error Handling
//
// The package has no error returns. A scan that leaves the raster yields a nil
// *EdgeHit, a snap that cannot be constrained yields ok == false, and a
// degenerate (zero-sized) capture yields a Buffer that never finds an edge.
package boundary
