// Package interop connects decoded frames to the rest of the Go ecosystem:
// conversion to and from image.Image, resampling through
// golang.org/x/image/draw, PNG encoding, and the mapping from pixel formats
// to GPU texture formats.
package interop
