// Package hub75 computes the static geometry that drives a chain of
// multiplexed HUB75 RGB LED matrix panels: the pixel-address map that
// translates an image's coordinate space into the linear scan order the
// panel hardware expects, and the bit-plane schedule that implements
// grayscale via binary-code modulation, optionally with temporal dithering.
//
// Everything in this package is computed once at startup from static
// configuration and is immutable afterwards, so the resulting Geometry can
// be shared without locking between the scan-out driver and any number of
// readers.
package hub75
