package canvas

import (
	"bufio"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// WritePNG encodes img as PNG.
func WritePNG(w io.Writer, img *image.RGBA) error {
	return png.Encode(w, img)
}

// WritePPM encodes img as a binary P6 portable pixmap. Alpha is dropped.
func WritePPM(w io.Writer, img *image.RGBA) error {
	b := img.Bounds()
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P6\n%d %d\n255\n", b.Dx(), b.Dy()); err != nil {
		return err
	}
	row := make([]byte, 0, b.Dx()*3)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row = row[:0]
		for x := b.Min.X; x < b.Max.X; x++ {
			i := img.PixOffset(x, y)
			row = append(row, img.Pix[i], img.Pix[i+1], img.Pix[i+2])
		}
		if _, err := bw.Write(row); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ExportFrame writes img to dir using pattern formatted with index.
// The encoder is chosen from the extension: .png or .ppm.
// It returns the path of the written file.
func ExportFrame(dir, pattern string, index int, img *image.RGBA) (string, error) {
	name := fmt.Sprintf(pattern, index)
	var encode func(io.Writer, *image.RGBA) error
	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".png":
		encode = WritePNG
	case ".ppm":
		encode = WritePPM
	default:
		return "", fmt.Errorf("export frame %s: unsupported extension %q", name, ext)
	}
	p := filepath.Join(dir, name)
	f, err := os.Create(p)
	if err != nil {
		return "", fmt.Errorf("export frame: %w", err)
	}
	if err := encode(f, img); err != nil {
		f.Close()
		return "", fmt.Errorf("export frame %s: %w", p, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("export frame %s: %w", p, err)
	}
	return p, nil
}
