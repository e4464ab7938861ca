package utils

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"

	"github.com/disintegration/imaging"
	"github.com/rwcarlsen/goexif/exif"
)

const (
	// Taille brute maximale acceptée pour un upload d'avatar.
	AvatarMaxUploadSize = 1000000
	// Côté du carré final.
	AvatarSize = 250
)

// ProcessAvatar décode l'image envoyée (jpeg ou png), corrige l'orientation
// EXIF, recadre en carré 250x250 et encode le résultat en PNG.
func ProcessAvatar(buf []byte, contentType string) ([]byte, error) {
	exifData, _ := exif.Decode(bytes.NewReader(buf))
	orientation := 1
	if exifData != nil {
		if tag, err := exifData.Get(exif.Orientation); err == nil {
			orientation, _ = tag.Int(0)
		}
	}

	var img image.Image
	var err error
	switch contentType {
	case "image/jpeg", "image/jpg":
		img, err = jpeg.Decode(bytes.NewReader(buf))
	case "image/png":
		img, err = png.Decode(bytes.NewReader(buf))
	default:
		return nil, fmt.Errorf("format non supporté: %s", contentType)
	}
	if err != nil {
		return nil, err
	}

	switch orientation {
	case 3:
		img = imaging.Rotate180(img)
	case 6:
		img = imaging.Rotate270(img)
	case 8:
		img = imaging.Rotate90(img)
	}

	img = imaging.Fill(img, AvatarSize, AvatarSize, imaging.Center, imaging.Lanczos)

	out := new(bytes.Buffer)
	if err := png.Encode(out, img); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}
