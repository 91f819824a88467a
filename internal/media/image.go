package media

import (
	"bytes"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"
)

// maxImageWidth bounds uploaded site images; anything wider is scaled
// down preserving aspect ratio before encoding.
const maxImageWidth = 1920

// ReencodeWebP decodes an uploaded image, scales it down when needed
// and re-encodes it as lossy webp. Videos and unknown formats are not
// handled here; the caller stores those untouched.
func ReencodeWebP(r io.Reader) ([]byte, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return nil, err
	}

	bounds := src.Bounds()
	if bounds.Dx() > maxImageWidth {
		h := bounds.Dy() * maxImageWidth / bounds.Dx()
		dst := image.NewRGBA(image.Rect(0, 0, maxImageWidth, h))
		draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)
		src = dst
	}

	var buf bytes.Buffer
	if err := webp.Encode(&buf, src, &webp.Options{Quality: 80}); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
