// Package codec provides the two image-decoding backends of image-flip.
//
// Both backends implement the Codec interface: decode a file into an
// Image handle, flip the pixel data, and write the result back to disk.
// They differ in what travels alongside the pixels:
//
//   - Meta ("pillow-equivalent") decodes through the standard image
//     registry, remembers the source format, and carries the ICC
//     profile and Exif block of JPEG inputs so Save can re-attach them
//     verbatim. The output format is always the input format.
//
//   - Raw ("opencv-equivalent") decodes into a bare RGBA buffer with no
//     metadata and derives the output format from the output file's
//     extension. Its JPEG decoder is the cgo-backed libjpeg binding, so
//     the backend is only available in cgo builds; RawAvailable reports
//     whether it was compiled in.
//
// # Flip Semantics
//
// A horizontal flip mirrors left-right (x-axis reversal), a vertical
// flip mirrors top-bottom (y-axis reversal), and "both" is a 180 degree
// rotation. Rotating 180 degrees and reversing both axes are the same
// transform, and both backends implement it as such: flipping twice
// with any mode restores the original pixel arrangement exactly.
//
// # Metadata Preservation
//
// JPEG metadata is handled at the marker-segment level. On decode the
// APP1 Exif payload and the APP2 ICC_PROFILE chunk chain are extracted;
// on save they are spliced back into the freshly encoded file after the
// JFIF header. An absent profile or Exif block is not an error, it is
// simply omitted from the output. JPEG outputs use a fixed quality of
// 95 rather than the encoder default.
//
// Decoding supports JPEG, PNG, GIF, BMP, TIFF and WebP. WebP has no
// encoder in the ecosystem, so saving to it fails with an encode error.
package codec
