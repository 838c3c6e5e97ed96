package services

import "math"

// CSS pixels per millimetre at the browser's 96dpi reference resolution
const cssPixelsPerMM = 96 / 25.4

// Size is a width and height in CSS pixels
type Size struct {
	Width  float64
	Height float64
}

// NaturalSize converts a physical page size to CSS pixels
func NaturalSize(page PageSize) Size {
	return Size{Width: page.Width * cssPixelsPerMM, Height: page.Height * cssPixelsPerMM}
}

// ScaleOptions tunes PreviewScale
type ScaleOptions struct {
	PaddingX float64 // horizontal space taken by surrounding chrome
	PaddingY float64
	Margin   float64 // fraction shaved off so edges are not flush with the viewport
	MinScale float64
}

// DefaultScaleOptions fit the expanded preview modal
var DefaultScaleOptions = ScaleOptions{
	PaddingX: 64,
	PaddingY: 120,
	Margin:   0.02,
	MinScale: 0.1,
}

// ThumbnailScale is the fixed scale of the inline preview
const ThumbnailScale = 0.35

// PreviewScale returns the display scale that fits natural inside viewport
// without ever enlarging it
func PreviewScale(viewport, natural Size, opts ScaleOptions) float64 {
	if natural.Width <= 0 || natural.Height <= 0 {
		return opts.MinScale
	}

	availW := math.Max(viewport.Width-opts.PaddingX, 0)
	availH := math.Max(viewport.Height-opts.PaddingY, 0)

	scale := math.Min(math.Min(availW/natural.Width, availH/natural.Height), 1)
	scale *= 1 - opts.Margin
	return math.Max(scale, opts.MinScale)
}
