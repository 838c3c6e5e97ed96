package services

import (
	"bytes"
	"fmt"
	"math"

	pdfapi "github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

const pointsPerMM = 72 / 25.4

// PDFInfo summarizes a produced PDF
type PDFInfo struct {
	Pages     int
	PageSizes []PageSize // millimetres
}

// InspectPDF parses and validates data, returning its page count and sizes
func InspectPDF(data []byte) (*PDFInfo, error) {
	conf := model.NewDefaultConfiguration()
	ctx, err := pdfapi.ReadValidateAndOptimize(bytes.NewReader(data), conf)
	if err != nil {
		return nil, fmt.Errorf("invalid pdf: %w", err)
	}
	if err := ctx.EnsurePageCount(); err != nil {
		return nil, fmt.Errorf("invalid pdf page tree: %w", err)
	}

	dims, err := ctx.PageDims()
	if err != nil {
		return nil, fmt.Errorf("failed to read page sizes: %w", err)
	}

	info := &PDFInfo{Pages: ctx.PageCount}
	for _, d := range dims {
		info.PageSizes = append(info.PageSizes, PageSize{
			Width:  d.Width / pointsPerMM,
			Height: d.Height / pointsPerMM,
		})
	}
	return info, nil
}

// VerifyPDF checks that data has pages pages, all of the given size
func VerifyPDF(data []byte, pages int, size PageSize) error {
	info, err := InspectPDF(data)
	if err != nil {
		return err
	}
	if info.Pages != pages {
		return fmt.Errorf("expected %d pages, found %d", pages, info.Pages)
	}
	for i, got := range info.PageSizes {
		// PDF stores sizes in points with two decimals
		if math.Abs(got.Width-size.Width) > 0.05 || math.Abs(got.Height-size.Height) > 0.05 {
			return fmt.Errorf("page %d is %.2fx%.2fmm, expected %.0fx%.0fmm", i+1, got.Width, got.Height, size.Width, size.Height)
		}
	}
	return nil
}
