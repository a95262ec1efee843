// Package imageio loads source images and writes rendered results.
//
// Decoding and encoding go through github.com/disintegration/imaging, which
// registers PNG, JPEG, GIF, BMP and TIFF; this package adds WebP decoding.
// Output format is chosen from the destination file extension.
//
// # Thread Safety
//
// ImageCache is safe for concurrent use. Save and EncodePNGBase64 are
// stateless.
package imageio
