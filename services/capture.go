package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/png" // DecodeConfig for captured PNGs
	"log"
	"time"
)

// Box is an element's rendered size in CSS pixels
type Box struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// RasterOptions controls how a surface is turned into a bitmap
type RasterOptions struct {
	Scale        float64    // device pixels per CSS pixel
	Background   color.RGBA // painted behind the surface
	DisableCache bool       // bypass the resource cache so repeated captures are fresh
	Clip         Box        // region to capture, taken from Bounds
}

// Surface is a rendered document that can be rasterized.
// Style methods operate on the element's inline style declarations.
type Surface interface {
	Styles(ctx context.Context, properties []string) (map[string]string, error)
	SetStyles(ctx context.Context, styles map[string]string) error
	Bounds(ctx context.Context) (Box, error)
	Rasterize(ctx context.Context, opts RasterOptions) ([]byte, error)
}

// Bitmap is a captured PNG with its pixel dimensions
type Bitmap struct {
	PNG    []byte
	Width  int
	Height int
}

// captureStyles forces an off-screen, transparent or inert surface into a
// state the browser will lay out and paint.
var captureStyles = map[string]string{
	"position":       "absolute",
	"left":           "0px",
	"top":            "0px",
	"opacity":        "1",
	"visibility":     "visible",
	"pointer-events": "auto",
	"z-index":        "2147483647",
	"transform":      "none",
}

// CaptureStyleProperties lists the properties touched during capture
func CaptureStyleProperties() []string {
	return []string{"position", "left", "top", "opacity", "visibility", "pointer-events", "z-index", "transform"}
}

var (
	// ErrSurfaceMissing is returned when there is nothing to capture
	ErrSurfaceMissing = errors.New("capture surface is not available")
	// ErrEmptyCapture is returned when the rasterized bitmap has no pixels
	ErrEmptyCapture = errors.New("captured bitmap is empty")
)

// CaptureError wraps any failure between making the surface visible and
// decoding its bitmap
type CaptureError struct {
	Err error
}

func (e *CaptureError) Error() string {
	return fmt.Sprintf("capture failed: %v", e.Err)
}

func (e *CaptureError) Unwrap() error {
	return e.Err
}

// WithCaptureVisibility overrides the surface's visibility-related inline
// styles, waits settle for layout and paint, runs fn, and restores the
// original inline values. The restore runs on every return path, including
// errors, panics in fn and context cancellation.
func WithCaptureVisibility(ctx context.Context, surface Surface, settle time.Duration, fn func(ctx context.Context) error) (err error) {
	if surface == nil {
		return ErrSurfaceMissing
	}

	original, err := surface.Styles(ctx, CaptureStyleProperties())
	if err != nil {
		return fmt.Errorf("failed to read surface styles: %w", err)
	}

	defer func() {
		// The caller's context may already be done; restoring must still happen.
		restoreCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
		defer cancel()
		if restoreErr := surface.SetStyles(restoreCtx, original); restoreErr != nil {
			log.Printf("[ERROR] Failed to restore surface styles: %v", restoreErr)
			err = errors.Join(err, fmt.Errorf("failed to restore surface styles: %w", restoreErr))
		}
	}()

	if err := surface.SetStyles(ctx, captureStyles); err != nil {
		return fmt.Errorf("failed to override surface styles: %w", err)
	}

	if settle > 0 {
		timer := time.NewTimer(settle)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}

	return fn(ctx)
}

// CaptureSurface rasterizes surface into a PNG bitmap, sizing the capture
// from the element's rendered box rather than its nominal dimensions.
func CaptureSurface(ctx context.Context, surface Surface, scale float64, settle time.Duration) (*Bitmap, error) {
	if surface == nil {
		return nil, ErrSurfaceMissing
	}

	var bitmap *Bitmap
	err := WithCaptureVisibility(ctx, surface, settle, func(ctx context.Context) error {
		box, err := surface.Bounds(ctx)
		if err != nil {
			return fmt.Errorf("failed to measure surface: %w", err)
		}
		if box.Width <= 0 || box.Height <= 0 {
			return ErrEmptyCapture
		}

		data, err := surface.Rasterize(ctx, RasterOptions{
			Scale:        scale,
			Background:   color.RGBA{R: 255, G: 255, B: 255, A: 255},
			DisableCache: true,
			Clip:         box,
		})
		if err != nil {
			return err
		}

		bitmap, err = decodeBitmap(data)
		return err
	})
	if err != nil {
		if errors.Is(err, ErrSurfaceMissing) {
			return nil, err
		}
		return nil, &CaptureError{Err: err}
	}
	return bitmap, nil
}

func decodeBitmap(data []byte) (*Bitmap, error) {
	if len(data) == 0 {
		return nil, ErrEmptyCapture
	}
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode captured image: %w", err)
	}
	if format != "png" {
		return nil, fmt.Errorf("unexpected capture format %q", format)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, ErrEmptyCapture
	}
	return &Bitmap{PNG: data, Width: cfg.Width, Height: cfg.Height}, nil
}
