// Package tga implements a Truevision TGA image decoder and encoder.
//
// It supports the five pixel formats commonly found in the wild —
// 8/16-bit grayscale, 15/16-bit RGB555, 24-bit RGB and 32-bit ARGB — and
// decodes uncompressed or run-length-encoded, true-color, grayscale or
// color-mapped files. The v2.0 footer and extension area are ignored; the
// entire image is always materialized in memory.
//
// Specification: https://en.wikipedia.org/wiki/Truevision_TGA
package tga
