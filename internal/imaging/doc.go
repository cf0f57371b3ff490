// Package imaging holds the pipeline's external collaborators: decoding
// satellite image files into raster.Image values and rendering processed
// planes back out for inspection.
//
// The core transforms in the raster package never touch the filesystem or a
// codec; everything format-shaped lives here. Decoding goes through
// disintegration/imaging so PNG, JPEG and GIF sources all arrive as the same
// 8-bit three-channel layout. Sources that decode to a single channel are
// rejected: the pipeline is defined over three colour planes.
//
// Rendering offers two shapes of output: a plain grayscale PNG with explicit
// value bounds (so binary edge planes display as full black/white), and a
// heat-map plot for eyeballing intermediate planes.
package imaging
