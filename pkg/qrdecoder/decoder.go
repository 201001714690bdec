// Package qrdecoder reads QR symbols back from rasters. It is used to verify
// generated images and by the decode command.
package qrdecoder

import (
	"errors"
	"fmt"
	"image"
	_ "image/jpeg" // register JPEG for DecodeFile
	_ "image/png"  // register PNG for DecodeFile
	"os"

	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/qrcode"
)

// ErrNoSymbol is returned when no QR symbol could be read from an image.
var ErrNoSymbol = errors.New("no QR code found in image")

// DecodeFile opens an image file and decodes a QR symbol from it.
func DecodeFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("could not open image file: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return "", fmt.Errorf("could not decode image: %w", err)
	}

	return Decode(img)
}

// Decode reads the text payload of the QR symbol in img. Symbols drawn
// without a quiet zone are retried in pure-barcode mode.
func Decode(img image.Image) (string, error) {
	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return "", fmt.Errorf("could not create bitmap: %w", err)
	}

	reader := qrcode.NewQRCodeReader()
	result, err := reader.Decode(bmp, nil)
	if err != nil {
		pure := map[gozxing.DecodeHintType]interface{}{
			gozxing.DecodeHintType_PURE_BARCODE: true,
		}
		result, err = reader.Decode(bmp, pure)
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrNoSymbol, err)
		}
	}

	return result.GetText(), nil
}
