// Package raster implements the elementary per-channel transforms that make
// up the coastline estimation pipeline.
//
// The package works on two value types: Image, a rows x cols x 3 array of
// 8-bit samples as produced by the loader, and Plane, a single rows x cols
// channel. Every transform takes a Plane and returns a freshly allocated
// Plane; inputs are never mutated, so intermediate results can be shared
// freely between goroutines.
//
// # Coordinate System
//
// Rows and columns are 0-based, with (0,0) at the top-left corner. Row
// indices grow downward and column indices grow rightward, matching the
// layout of the decoded source imagery.
//
// # Value Range
//
// All samples are 8-bit unsigned. Transforms that compute in floating point
// (rank compression, luma combination) re-quantise with a saturating
// round-to-nearest conversion: values below 0 become 0 and values above 255
// become 255. The conversion policy is deliberate and covered by tests; it
// replaces the unchecked (wrapping) cast the original teaching material used.
//
// # Error Handling
//
// Transforms return errors for caller contract violations only: channel
// indices outside {0,1,2}, retention fractions outside [0,1], mismatched
// plane shapes, and crop margins that would consume an entire axis. All
// numeric behaviour inside the valid domain is total.
package raster
