package imgutil

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func solidPNGDataURI(t *testing.T, w, h int) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{30, 30, 30, 255})
		}
	}
	var buf bytes.Buffer
	assert.NoError(t, png.Encode(&buf, img))
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
}

func decodeDataURI(t *testing.T, uri string) image.Image {
	t.Helper()
	idx := strings.Index(uri, ";base64,")
	assert.GreaterOrEqual(t, idx, 0)
	raw, err := base64.StdEncoding.DecodeString(uri[idx+len(";base64,"):])
	assert.NoError(t, err)
	img, _, err := image.Decode(bytes.NewReader(raw))
	assert.NoError(t, err)
	return img
}

func TestWatermarkDataURI_StampsImage(t *testing.T) {
	original := solidPNGDataURI(t, 512, 512)

	stamped := WatermarkDataURI(original, WatermarkLabel)

	assert.NotEqual(t, original, stamped)
	assert.True(t, strings.HasPrefix(stamped, "data:image/png;base64,"))

	img := decodeDataURI(t, stamped)
	assert.Equal(t, 512, img.Bounds().Dx())
	assert.Equal(t, 512, img.Bounds().Dy())

	// The bottom-right corner must differ from the uniform input.
	changed := false
	for y := 400; y < 512 && !changed; y++ {
		for x := 300; x < 512; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			if r != 30<<8|30 || g != 30<<8|30 || b != 30<<8|30 {
				changed = true
				break
			}
		}
	}
	assert.True(t, changed)
}

func TestWatermarkDataURI_InvalidInputUnchanged(t *testing.T) {
	assert.Equal(t, "not-a-data-uri", WatermarkDataURI("not-a-data-uri", "x"))
	assert.Equal(t, "data:image/png;base64,!!!", WatermarkDataURI("data:image/png;base64,!!!", "x"))

	bogus := "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte("not an image"))
	assert.Equal(t, bogus, WatermarkDataURI(bogus, "x"))
}

func TestStamp_TinyImageLeftIntact(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))

	out := Stamp(img, WatermarkLabel)

	assert.Equal(t, img.Bounds(), out.Bounds())
}
