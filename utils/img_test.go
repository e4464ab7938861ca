package utils

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 40, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestProcessAvatar_SquareCrop(t *testing.T) {
	t.Parallel()

	out, err := ProcessAvatar(pngBytes(t, 400, 200), "image/png")
	require.NoError(t, err)

	decoded, err := png.Decode(bytes.NewReader(out))
	require.NoError(t, err)

	bounds := decoded.Bounds()
	require.Equal(t, AvatarSize, bounds.Dx())
	require.Equal(t, AvatarSize, bounds.Dy())
}

func TestProcessAvatar_UpscalesSmallImages(t *testing.T) {
	t.Parallel()

	out, err := ProcessAvatar(pngBytes(t, 32, 64), "image/png")
	require.NoError(t, err)

	decoded, err := png.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	require.Equal(t, AvatarSize, decoded.Bounds().Dx())
	require.Equal(t, AvatarSize, decoded.Bounds().Dy())
}

func TestProcessAvatar_UnsupportedFormat(t *testing.T) {
	t.Parallel()

	_, err := ProcessAvatar(pngBytes(t, 10, 10), "image/gif")
	require.Error(t, err)
}

func TestProcessAvatar_CorruptData(t *testing.T) {
	t.Parallel()

	_, err := ProcessAvatar([]byte("definitely not an image"), "image/png")
	require.Error(t, err)
}
