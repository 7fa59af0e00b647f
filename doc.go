// Package pixbase is the shared runtime beneath a family of image decoders.
//
// # Overview
//
// pixbase provides the vocabulary every decoder and rendering consumer
// agrees on, and the one conversion primitive they all need:
//
//   - Status: the packed 32-bit status code returned by fallible operations
//   - numeric: saturating arithmetic, byte swaps and low-bits masks
//   - geom: closed ("ii") and half-open ("ie") ranges and rectangles
//   - buffer: 2-D tables and the IOBuffer with its Reader and Writer views
//   - pixel: the pixel format and subsampling algebras, and the Swizzler
//   - frame: ImageConfig and ImageBuffer, one decoded animation frame
//   - interop: conversion to and from image.Image and GPU texture formats
//
// # Data Flow
//
// A decoder fills an IOBuffer, describes the resulting pixels with an
// ImageConfig and updates an ImageBuffer per frame. A consumer whose target
// pixel format differs from the decoded one prepares a pixel.Swizzler and
// converts the frame's planes.
//
// # Safety
//
// No operation in pixbase reads or writes outside the slices it is given.
// Mismatched or adversarial lengths are clamped to the safe overlap rather
// than rejected, so conversion never fails mid-frame. Unsupported pixel
// format and blend combinations are rejected up front by Prepare.
//
// # Memory
//
// pixbase never allocates pixel memory on the caller's behalf. Tables and
// IOBuffers are views into caller-owned slices, and no view is retained past
// the call that received it, except the 1024-byte palettes that
// ImageBuffer and Swizzler copy into storage they own.
//
// # Concurrency
//
// Every operation is synchronous. Distinct IOBuffer, ImageBuffer and
// Swizzler values may be used from different goroutines; a single value must
// not be mutated concurrently.
package pixbase

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
