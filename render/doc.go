// SPDX-License-Identifier: MIT

// Package render turns a relaxed sandpile into an image file.
//
// What:
//
//   - Color maps a cell height to the fixed palette:
//     0 black, 1 green, 2 blue, 3 red, anything else black.
//   - Image paints one pixel per interior cell.
//   - Caption stamps a short label in the top-left corner.
//   - Encode writes binary PPM (P6), PNG, BMP or TIFF; WriteFile picks the
//     format from the file extension.
//
// Rendering never touches engine state: an output failure leaves the
// relaxation result intact for the caller to retry or discard.
//
// Errors:
//
//   - ErrDimensionMismatch: len(cells) differs from width×height.
//   - ErrUnknownFormat: unrecognised format name or file extension.
package render
