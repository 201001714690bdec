package imagefile_test

import (
	"bytes"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"qrgen/pkg/imagefile"
	"qrgen/pkg/qrdecoder"
	"testing"

	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/require"
)

func testImage(t *testing.T) image.Image {
	t.Helper()

	q, err := qrcode.New("https://example.com", qrcode.Highest)
	require.NoError(t, err)

	return q.Image(-8)
}

func TestFormatFromPath(t *testing.T) {
	cases := []struct {
		path string
		want imagefile.Format
		ok   bool
	}{
		{path: "qr.png", want: imagefile.FormatPNG, ok: true},
		{path: "QR.PNG", want: imagefile.FormatPNG, ok: true},
		{path: "qr.jpg", want: imagefile.FormatJPEG, ok: true},
		{path: "qr.jpeg", want: imagefile.FormatJPEG, ok: true},
		{path: "qr", want: imagefile.FormatPNG, ok: true},
		{path: "qr.gif", ok: false},
	}

	for _, tc := range cases {
		got, err := imagefile.FormatFromPath(tc.path)
		if !tc.ok {
			require.ErrorIs(t, err, imagefile.ErrUnsupportedFormat, tc.path)

			continue
		}
		require.NoError(t, err, tc.path)
		require.Equal(t, tc.want, got, tc.path)
	}
}

func TestSave_PNGAndJPEG(t *testing.T) {
	dir := t.TempDir()
	img := testImage(t)

	for _, name := range []string{"qr.png", "qr.jpg"} {
		written, err := imagefile.Save(filepath.Join(dir, name), img)
		require.NoError(t, err)
		require.Equal(t, filepath.Join(dir, name), written)

		text, err := qrdecoder.DecodeFile(written)
		require.NoError(t, err)
		require.Equal(t, "https://example.com", text)
	}
}

func TestSave_AppendsPNGExtension(t *testing.T) {
	written, err := imagefile.Save(filepath.Join(t.TempDir(), "qr"), testImage(t))
	require.NoError(t, err)
	require.Equal(t, ".png", filepath.Ext(written))

	_, err = os.Stat(written)
	require.NoError(t, err)
}

func TestSave_UnsupportedExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "qr.bmp")
	_, err := imagefile.Save(path, testImage(t))
	require.ErrorIs(t, err, imagefile.ErrUnsupportedFormat)

	_, err = os.Stat(path)
	require.True(t, os.IsNotExist(err), "no file should be left behind")
}

func TestEncode(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 4, 4))
	img.Set(0, 0, color.White)

	var buf bytes.Buffer
	require.NoError(t, imagefile.Encode(&buf, img, imagefile.FormatPNG))
	require.True(t, bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")))

	require.ErrorIs(t, imagefile.Encode(&buf, img, "tiff"), imagefile.ErrUnsupportedFormat)
	require.Equal(t, "image/jpeg", imagefile.FormatJPEG.ContentType())
	require.Equal(t, "image/png", imagefile.FormatPNG.ContentType())
}
