package pipeline

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"

	"github.com/disintegration/imaging"

	// Register decoders for formats imaging does not pull in itself.
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Format is a sniffed image content type, expressed as its MIME type.
type Format string

const (
	FormatPNG     Format = "image/png"
	FormatJPEG    Format = "image/jpeg"
	FormatGIF     Format = "image/gif"
	FormatWebP    Format = "image/webp"
	FormatBMP     Format = "image/bmp"
	FormatTIFF    Format = "image/tiff"
	FormatICO     Format = "image/x-icon"
	FormatSVG     Format = "image/svg+xml"
	FormatUnknown Format = ""
)

// DetectFormat sniffs the content type from the leading bytes. File
// extensions and declared roles are never trusted.
func DetectFormat(data []byte) Format {
	switch {
	case len(data) >= 8 && bytes.Equal(data[:8], []byte("\x89PNG\r\n\x1a\n")):
		return FormatPNG
	case len(data) >= 3 && bytes.Equal(data[:3], []byte{0xFF, 0xD8, 0xFF}):
		return FormatJPEG
	case len(data) >= 6 && (bytes.Equal(data[:6], []byte("GIF87a")) || bytes.Equal(data[:6], []byte("GIF89a"))):
		return FormatGIF
	case len(data) >= 12 && bytes.Equal(data[:4], []byte("RIFF")) && bytes.Equal(data[8:12], []byte("WEBP")):
		return FormatWebP
	case len(data) >= 2 && data[0] == 'B' && data[1] == 'M':
		return FormatBMP
	case len(data) >= 4 && (bytes.Equal(data[:4], []byte("II*\x00")) || bytes.Equal(data[:4], []byte("MM\x00*"))):
		return FormatTIFF
	case len(data) >= 4 && bytes.Equal(data[:4], []byte{0x00, 0x00, 0x01, 0x00}):
		return FormatICO
	case looksLikeSVG(data):
		return FormatSVG
	default:
		return FormatUnknown
	}
}

// looksLikeSVG checks for SVG markup: an optional BOM and whitespace,
// then an XML declaration or an <svg> root.
func looksLikeSVG(data []byte) bool {
	head := data
	if len(head) > 512 {
		head = head[:512]
	}
	head = bytes.TrimPrefix(head, []byte{0xEF, 0xBB, 0xBF})
	head = bytes.TrimLeft(head, " \t\r\n")
	return bytes.HasPrefix(head, []byte("<?xml")) || bytes.HasPrefix(head, []byte("<svg"))
}

// transcode applies the resize policy to raster bytes and returns the bytes
// to embed plus their final format.
//
// Images at or under the target pass through byte-for-byte: the pipeline
// never upscales and never re-encodes an image it did not shrink. Larger
// images scale the longer edge down to targetSize (aspect preserved,
// Lanczos resampling) and re-encode as PNG. A zero targetSize disables
// resizing entirely.
func transcode(data []byte, format Format, targetSize int) ([]byte, Format, error) {
	if targetSize <= 0 {
		return data, format, nil
	}

	bounds, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, FormatUnknown, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	if bounds.Width <= targetSize && bounds.Height <= targetSize {
		return data, format, nil
	}

	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, FormatUnknown, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}

	resized := imaging.Fit(img, targetSize, targetSize, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, resized, imaging.PNG); err != nil {
		return nil, FormatUnknown, fmt.Errorf("encoding resized image: %w", err)
	}
	return buf.Bytes(), FormatPNG, nil
}

// EncodeDataURL wraps content bytes in a base64 data URL.
func EncodeDataURL(format Format, data []byte) string {
	return "data:" + string(format) + ";base64," + base64.StdEncoding.EncodeToString(data)
}
