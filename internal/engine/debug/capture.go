// Package debug saves rendered frames for inspection outside the terminal.
package debug

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/gdamore/tcell"

	"github.com/Faultbox/dddragon/internal/engine/renderer"
)

// DotSize is the edge length in pixels of one braille dot in a capture.
const DotSize = 3

// Capture writes canvases as timestamped PNG files.
type Capture struct {
	outputDir string
	prefix    string

	// Clock for filenames
	now func() time.Time
}

// NewCapture creates a capture handler writing to outputDir.
func NewCapture(outputDir, prefix string) *Capture {
	return &Capture{
		outputDir: outputDir,
		prefix:    prefix,
		now:       time.Now,
	}
}

// Save writes the canvas to a new file and returns its path.
func (c *Capture) Save(canvas *renderer.Canvas) (string, error) {
	// Create output directory if needed
	if c.outputDir != "" {
		if err := os.MkdirAll(c.outputDir, 0755); err != nil {
			return "", fmt.Errorf("creating output dir: %w", err)
		}
	}

	filename := c.Filename()
	if err := WritePNG(filename, canvas); err != nil {
		return "", err
	}
	return filename, nil
}

// Filename generates the next capture filename without saving.
func (c *Capture) Filename() string {
	timestamp := c.now().Format("2006-01-02_15-04-05.000")
	filename := fmt.Sprintf("%s_%s.png", c.prefix, timestamp)
	if c.outputDir != "" {
		filename = filepath.Join(c.outputDir, filename)
	}
	return filename
}

// WritePNG encodes the canvas as a PNG file at path.
func WritePNG(path string, canvas *renderer.Canvas) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, Image(canvas)); err != nil {
		return fmt.Errorf("encoding PNG: %w", err)
	}
	return file.Close()
}

// Image rasterizes the canvas dots onto a black image, DotSize pixels per
// dot, in the color of each dot's cell.
func Image(canvas *renderer.Canvas) *image.RGBA {
	w, h := canvas.Dots()
	img := image.NewRGBA(image.Rect(0, 0, w*DotSize, h*DotSize))
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 0xff
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			on, c := canvas.Dot(x, y)
			if !on {
				continue
			}
			rgba := toRGBA(c)
			for py := 0; py < DotSize; py++ {
				for px := 0; px < DotSize; px++ {
					img.SetRGBA(x*DotSize+px, y*DotSize+py, rgba)
				}
			}
		}
	}
	return img
}

// toRGBA resolves a terminal color. Colors without a fixed RGB value,
// such as the default color, come out white.
func toRGBA(c tcell.Color) color.RGBA {
	r, g, b := c.RGB()
	if r < 0 || g < 0 || b < 0 {
		return color.RGBA{0xff, 0xff, 0xff, 0xff}
	}
	return color.RGBA{uint8(r), uint8(g), uint8(b), 0xff}
}
