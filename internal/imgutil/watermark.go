// Package imgutil post-processes generated portraits. Free-tier results
// get a translucent label composited into the bottom-right corner before
// they are returned to the client.
package imgutil

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"strings"

	_ "image/gif"
	_ "image/jpeg"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// WatermarkLabel is stamped on free-tier portraits.
const WatermarkLabel = "bleau.ai"

// WatermarkDataURI decodes a base64 image data URI, stamps the label, and
// re-encodes as PNG. On any failure the original URI is returned
// unchanged; a missing watermark never breaks a delivered portrait.
func WatermarkDataURI(dataURI, label string) string {
	idx := strings.Index(dataURI, ";base64,")
	if !strings.HasPrefix(dataURI, "data:") || idx < 0 {
		return dataURI
	}

	raw, err := base64.StdEncoding.DecodeString(dataURI[idx+len(";base64,"):])
	if err != nil {
		return dataURI
	}

	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return dataURI
	}

	stamped := Stamp(img, label)

	var buf bytes.Buffer
	if err := png.Encode(&buf, stamped); err != nil {
		return dataURI
	}

	return fmt.Sprintf("data:image/png;base64,%s", base64.StdEncoding.EncodeToString(buf.Bytes()))
}

// Stamp draws the label into the bottom-right corner, scaled with the
// image width so it stays legible on large portraits.
func Stamp(img image.Image, label string) image.Image {
	bounds := img.Bounds()
	out := image.NewRGBA(bounds)
	xdraw.Copy(out, bounds.Min, img, bounds, xdraw.Src, nil)

	face := basicfont.Face7x13
	textWidth := font.MeasureString(face, label).Ceil()
	textHeight := face.Metrics().Height.Ceil()
	if textWidth == 0 || textHeight == 0 {
		return out
	}

	// Render at native face size, then scale to roughly 1/30th of the
	// image width like the original overlay.
	plate := image.NewRGBA(image.Rect(0, 0, textWidth+2, textHeight+2))
	drawLabel(plate, face, label, 1, textHeight-2, color.RGBA{0, 0, 0, 77}) // shadow
	drawLabel(plate, face, label, 0, textHeight-3, color.RGBA{255, 255, 255, 115})

	fontSize := bounds.Dx() / 30
	if fontSize < 14 {
		fontSize = 14
	}
	scale := float64(fontSize) / 13.0
	scaledW := int(float64(plate.Bounds().Dx()) * scale)
	scaledH := int(float64(plate.Bounds().Dy()) * scale)
	padding := int(float64(fontSize) * 0.8)

	dst := image.Rect(
		bounds.Max.X-scaledW-padding,
		bounds.Max.Y-scaledH-padding,
		bounds.Max.X-padding,
		bounds.Max.Y-padding,
	)
	if dst.Empty() || !dst.In(bounds) {
		return out
	}

	xdraw.NearestNeighbor.Scale(out, dst, plate, plate.Bounds(), xdraw.Over, nil)
	return out
}

func drawLabel(dst *image.RGBA, face font.Face, label string, x, y int, c color.RGBA) {
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(label)
}
