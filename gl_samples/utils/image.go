package utils

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// WritePNG reads back the frame currently in the back buffer and writes it
// to <baseName>.png. Call it after drawing and before Present.
func (i *SampleInfo) WritePNG(baseName string) error {
	if i.Width <= 0 || i.Height <= 0 {
		return errors.Newf("cannot save a %dx%d frame", i.Width, i.Height)
	}

	width, height := int(i.Width), int(i.Height)
	pixels := make([]byte, width*height*4)

	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, i.Width, i.Height, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))

	outImg := image.NewRGBA(image.Rect(0, 0, width, height))

	// GL rows start at the bottom of the frame.
	rowSize := width * 4
	for y := 0; y < height; y++ {
		src := pixels[(height-1-y)*rowSize : (height-y)*rowSize]
		copy(outImg.Pix[y*outImg.Stride:y*outImg.Stride+rowSize], src)
	}

	filename := fmt.Sprintf("%s.png", baseName)
	writeFile, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer writeFile.Close()

	return png.Encode(writeFile, outImg)
}
