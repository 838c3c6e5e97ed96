package services

import (
	"bytes"
	"fmt"
	"time"

	"contract_pdf_app/config"

	"github.com/go-pdf/fpdf"
)

const captureImageName = "capture"

// PDFFile is an assembled export ready for delivery
type PDFFile struct {
	Name     string
	Data     []byte
	Pages    int
	PageSize PageSize
}

// DocumentMeta is written into the PDF info dictionary
type DocumentMeta struct {
	Title     string
	Creator   string
	CreatedAt time.Time
}

// AssemblyError wraps failures while building or serializing the PDF
type AssemblyError struct {
	Err error
}

func (e *AssemblyError) Error() string {
	return fmt.Sprintf("pdf assembly failed: %v", e.Err)
}

func (e *AssemblyError) Unwrap() error {
	return e.Err
}

// PlacementsFor returns the page placements strategy uses for bitmap
func PlacementsFor(strategy string, bitmap *Bitmap, page PageSize) []Placement {
	if strategy == config.PaginationSlice {
		return SlicePages(bitmap.Width, bitmap.Height, page)
	}
	return []Placement{FitToPage(bitmap.Width, bitmap.Height, page)}
}

// AssemblePDF embeds bitmap into a PDF of page-sized pages, one per placement
func AssemblePDF(bitmap *Bitmap, page PageSize, placements []Placement, meta DocumentMeta) ([]byte, error) {
	if bitmap == nil || len(bitmap.PNG) == 0 {
		return nil, &AssemblyError{Err: ErrEmptyCapture}
	}
	if len(placements) == 0 {
		return nil, &AssemblyError{Err: fmt.Errorf("no pages to assemble")}
	}

	// fpdf swaps Wd and Ht for landscape, so the size is given portrait-first
	orientation := "P"
	size := fpdf.SizeType{Wd: page.Width, Ht: page.Height}
	if page.Width > page.Height {
		orientation = "L"
		size = fpdf.SizeType{Wd: page.Height, Ht: page.Width}
	}

	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: orientation,
		UnitStr:        "mm",
		Size:           size,
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetTitle(meta.Title, true)
	pdf.SetCreator(meta.Creator, true)
	if !meta.CreatedAt.IsZero() {
		pdf.SetCreationDate(meta.CreatedAt)
		pdf.SetModificationDate(meta.CreatedAt)
	}

	imageOptions := fpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader(captureImageName, imageOptions, bytes.NewReader(bitmap.PNG))

	for _, p := range placements {
		pdf.AddPage()
		pdf.ImageOptions(captureImageName, p.X, p.Y, p.Width, p.Height, false, imageOptions, 0, "")
	}

	if err := pdf.Error(); err != nil {
		return nil, &AssemblyError{Err: err}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, &AssemblyError{Err: err}
	}
	return buf.Bytes(), nil
}
