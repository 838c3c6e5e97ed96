package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"contract_pdf_app/config"
	"contract_pdf_app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSource serves a prepared surface and records what it was asked to open
type fakeSource struct {
	surface  Surface
	err      error
	html     string
	selector string
	released bool
}

func (s *fakeSource) Open(ctx context.Context, htmlContent, selector string) (Surface, func(), error) {
	s.html = htmlContent
	s.selector = selector
	if s.err != nil {
		return nil, func() {}, s.err
	}
	return s.surface, func() { s.released = true }, nil
}

func newTestExporter(source SurfaceSource, opts ExportOptions) *Exporter {
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	e := NewExporter(source, opts)
	e.now = func() time.Time { return time.Date(2024, 5, 20, 9, 0, 0, 0, time.UTC) }
	return e
}

func yamadaFields() models.ContractFields {
	fields := models.DefaultContractFields(time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC))
	fields.RecipientName = "山田 太郎"
	fields.CreatedDate = "2024-04-01"
	return fields
}

func TestExportToPDF(t *testing.T) {
	ctx := context.Background()

	t.Run("single A3 landscape page for the named recipient", func(t *testing.T) {
		surface := newFakeSurface()
		original := surface.snapshot()
		exporter := newTestExporter(nil, ExportOptions{Scale: 2})

		file, err := exporter.ExportToPDF(ctx, surface, yamadaFields())
		require.NoError(t, err)

		assert.Contains(t, file.Name, "山田 太郎")
		assert.Contains(t, file.Name, "2024-04-01")
		assert.Equal(t, "業務委託書_山田 太郎_2024-04-01.pdf", file.Name)
		assert.Equal(t, 1, file.Pages)
		assert.Equal(t, ContractPage, file.PageSize)
		assert.True(t, strings.HasPrefix(string(file.Data), "%PDF-"))

		require.NoError(t, VerifyPDF(file.Data, 1, ContractPage))
		assert.Equal(t, original, surface.snapshot())
	})

	t.Run("empty record still exports", func(t *testing.T) {
		surface := newFakeSurface()
		exporter := newTestExporter(nil, ExportOptions{Scale: 2})

		file, err := exporter.ExportToPDF(ctx, surface, models.ContractFields{})
		require.NoError(t, err)
		assert.Equal(t, "業務委託書_デフォルト_2024-05-20.pdf", file.Name)
		assert.NotEmpty(t, file.Data)
		assert.Equal(t, 1, surface.rasterCalls)
	})

	t.Run("slice strategy paginates a tall capture", func(t *testing.T) {
		surface := newFakeSurface()
		surface.box = Box{Width: 420, Height: 700}
		exporter := newTestExporter(nil, ExportOptions{Scale: 1, Strategy: config.PaginationSlice})

		file, err := exporter.ExportToPDF(ctx, surface, yamadaFields())
		require.NoError(t, err)
		assert.Equal(t, 3, file.Pages)
		require.NoError(t, VerifyPDF(file.Data, 3, ContractPage))
	})

	t.Run("nil surface produces no file", func(t *testing.T) {
		exporter := newTestExporter(nil, ExportOptions{})

		file, err := exporter.ExportToPDF(ctx, nil, yamadaFields())
		assert.Nil(t, file)
		assert.ErrorIs(t, err, ErrSurfaceMissing)
		assert.NotEmpty(t, UserMessage(err))
	})

	t.Run("capture failure restores styles", func(t *testing.T) {
		surface := newFakeSurface()
		original := surface.snapshot()
		surface.rasterErr = errors.New("resource failed to load")
		exporter := newTestExporter(nil, ExportOptions{})

		file, err := exporter.ExportToPDF(ctx, surface, yamadaFields())
		assert.Nil(t, file)
		var captureErr *CaptureError
		assert.ErrorAs(t, err, &captureErr)
		assert.Equal(t, original, surface.snapshot())
	})

	t.Run("timeout bounds a hung capture", func(t *testing.T) {
		surface := newFakeSurface()
		original := surface.snapshot()
		surface.block = true
		exporter := newTestExporter(nil, ExportOptions{Timeout: 20 * time.Millisecond})

		_, err := exporter.ExportToPDF(ctx, surface, yamadaFields())
		assert.ErrorIs(t, err, context.DeadlineExceeded)
		assert.Equal(t, original, surface.snapshot())
	})

	t.Run("rejects a second export while one is running", func(t *testing.T) {
		exporter := newTestExporter(nil, ExportOptions{})
		exporter.mu.Lock()
		defer exporter.mu.Unlock()

		_, err := exporter.ExportToPDF(ctx, newFakeSurface(), yamadaFields())
		assert.ErrorIs(t, err, ErrExportInProgress)
	})
}

func TestExport(t *testing.T) {
	ctx := context.Background()

	t.Run("opens the rendered capture page", func(t *testing.T) {
		source := &fakeSource{surface: newFakeSurface()}
		exporter := newTestExporter(source, ExportOptions{})

		file, err := exporter.Export(ctx, yamadaFields())
		require.NoError(t, err)
		assert.Equal(t, "業務委託書_山田 太郎_2024-04-01.pdf", file.Name)
		assert.Equal(t, CaptureSurfaceSelector, source.selector)
		assert.Contains(t, source.html, `id="contract-surface"`)
		assert.Contains(t, source.html, "capture-offscreen")
		assert.Contains(t, source.html, "山田 太郎")
		assert.True(t, source.released)
	})

	t.Run("browser start failure is a capture error", func(t *testing.T) {
		source := &fakeSource{err: errors.New("chrome not found")}
		exporter := newTestExporter(source, ExportOptions{})

		_, err := exporter.Export(ctx, yamadaFields())
		var captureErr *CaptureError
		assert.ErrorAs(t, err, &captureErr)
	})

	t.Run("missing surface in the page", func(t *testing.T) {
		source := &fakeSource{err: ErrSurfaceMissing}
		exporter := newTestExporter(source, ExportOptions{})

		_, err := exporter.Export(ctx, yamadaFields())
		assert.Equal(t, ErrSurfaceMissing, err)
	})
}

func TestUserMessage(t *testing.T) {
	assert.Empty(t, UserMessage(nil))
	assert.Contains(t, UserMessage(ErrExportInProgress), "生成中")
	assert.Contains(t, UserMessage(ErrSurfaceMissing), "プレビュー")
	assert.Contains(t, UserMessage(&CaptureError{Err: errors.New("x")}), "画像の取得")
	assert.Contains(t, UserMessage(&AssemblyError{Err: errors.New("x")}), "ファイルの作成")
	assert.Contains(t, UserMessage(&CaptureError{Err: context.DeadlineExceeded}), "タイムアウト")
	assert.Contains(t, UserMessage(errors.New("other")), "PDFの生成に失敗しました")

	// the underlying detail never reaches the user
	assert.NotContains(t, UserMessage(&CaptureError{Err: errors.New("secret stack")}), "secret stack")
}

func TestDescribeError(t *testing.T) {
	inner := errors.New("tainted canvas")
	err := &CaptureError{Err: errors.Join(inner, errors.New("restore failed"))}

	desc := DescribeError(err)
	assert.Contains(t, desc, "*services.CaptureError")
	assert.Contains(t, desc, "tainted canvas")
	assert.Contains(t, desc, "restore failed")
}
