package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"contract_pdf_app/config"
	"contract_pdf_app/models"
)

// ErrExportInProgress is returned when an export is requested while another
// one still holds the capture surface
var ErrExportInProgress = errors.New("an export is already in progress")

const (
	documentTitle   = "業務委託書"
	documentCreator = "contract_pdf_app"
)

// SurfaceSource renders HTML somewhere capturable and hands back the surface
// matching selector. release frees whatever backs the surface.
type SurfaceSource interface {
	Open(ctx context.Context, htmlContent, selector string) (surface Surface, release func(), err error)
}

// ExportOptions tunes the capture and pagination steps
type ExportOptions struct {
	Scale    float64
	Settle   time.Duration
	Timeout  time.Duration // 0 disables the bound
	Strategy string        // config.PaginationFit or config.PaginationSlice
	Page     PageSize
	Location *time.Location
}

// ExportOptionsFromConfig reads the export settings from cfg
func ExportOptionsFromConfig(cfg *config.Config) ExportOptions {
	return ExportOptions{
		Scale:    cfg.CaptureScale,
		Settle:   cfg.CaptureSettleDelay,
		Timeout:  cfg.CaptureTimeout,
		Strategy: cfg.PaginationStrategy,
		Page:     ContractPage,
		Location: cfg.Location(),
	}
}

// Exporter turns the contract surface into a PDF. Only one export runs at a
// time.
type Exporter struct {
	source SurfaceSource
	opts   ExportOptions
	now    func() time.Time

	mu sync.Mutex
}

func NewExporter(source SurfaceSource, opts ExportOptions) *Exporter {
	if opts.Scale <= 0 {
		opts.Scale = 2
	}
	if opts.Page.Width <= 0 || opts.Page.Height <= 0 {
		opts.Page = ContractPage
	}
	if opts.Location == nil {
		opts.Location = time.Local
	}
	return &Exporter{source: source, opts: opts, now: time.Now}
}

// Export renders fields into a capture page, opens it through the surface
// source and exports the hidden full-size surface
func (e *Exporter) Export(ctx context.Context, fields models.ContractFields) (*PDFFile, error) {
	if !e.mu.TryLock() {
		return nil, ErrExportInProgress
	}
	defer e.mu.Unlock()

	ctx, cancel := e.bound(ctx)
	defer cancel()

	htmlContent, err := RenderCapturePage(ctx, fields)
	if err != nil {
		return nil, e.fail(&AssemblyError{Err: err})
	}

	surface, release, err := e.source.Open(ctx, htmlContent, CaptureSurfaceSelector)
	if err != nil {
		if errors.Is(err, ErrSurfaceMissing) {
			return nil, e.fail(err)
		}
		return nil, e.fail(&CaptureError{Err: err})
	}
	defer release()

	return e.export(ctx, surface, fields)
}

// ExportToPDF captures surface and assembles the PDF for fields. The
// surface's inline styles are back to their original values when it returns.
func (e *Exporter) ExportToPDF(ctx context.Context, surface Surface, fields models.ContractFields) (*PDFFile, error) {
	if !e.mu.TryLock() {
		return nil, ErrExportInProgress
	}
	defer e.mu.Unlock()

	ctx, cancel := e.bound(ctx)
	defer cancel()

	return e.export(ctx, surface, fields)
}

func (e *Exporter) bound(ctx context.Context) (context.Context, context.CancelFunc) {
	if e.opts.Timeout > 0 {
		return context.WithTimeout(ctx, e.opts.Timeout)
	}
	return context.WithCancel(ctx)
}

func (e *Exporter) export(ctx context.Context, surface Surface, fields models.ContractFields) (*PDFFile, error) {
	start := e.now()

	bitmap, err := CaptureSurface(ctx, surface, e.opts.Scale, e.opts.Settle)
	if err != nil {
		return nil, e.fail(err)
	}

	now := e.now().In(e.opts.Location)
	placements := PlacementsFor(e.opts.Strategy, bitmap, e.opts.Page)
	data, err := AssemblePDF(bitmap, e.opts.Page, placements, DocumentMeta{
		Title:     documentTitle,
		Creator:   documentCreator,
		CreatedAt: now,
	})
	if err != nil {
		return nil, e.fail(err)
	}

	file := &PDFFile{
		Name:     ExportFileName(fields, now),
		Data:     data,
		Pages:    len(placements),
		PageSize: e.opts.Page,
	}
	log.Printf("[INFO] Exported %s: %d page(s), %d bytes, bitmap %dx%d, %s",
		file.Name, file.Pages, len(file.Data), bitmap.Width, bitmap.Height, time.Since(start).Round(time.Millisecond))
	return file, nil
}

func (e *Exporter) fail(err error) error {
	log.Printf("[ERROR] PDF export failed: %s", DescribeError(err))
	return err
}

// DescribeError lists every error in err's chain with its type
func DescribeError(err error) string {
	var parts []string
	for err != nil {
		parts = append(parts, fmt.Sprintf("%T: %v", err, err))
		if joined, ok := err.(interface{ Unwrap() []error }); ok {
			for _, inner := range joined.Unwrap() {
				parts = append(parts, DescribeError(inner))
			}
			break
		}
		err = errors.Unwrap(err)
	}
	return strings.Join(parts, " <- ")
}

// UserMessage is the short notice shown to the user for err. Full details
// only go to the log.
func UserMessage(err error) string {
	var captureErr *CaptureError
	var assemblyErr *AssemblyError

	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrExportInProgress):
		return "PDFを生成中です。完了するまでお待ちください。"
	case errors.Is(err, ErrSurfaceMissing):
		return "プレビューが見つかりません。ページを再読み込みしてから、もう一度お試しください。"
	case errors.Is(err, ErrDownloadNotFound):
		return "ダウンロードの有効期限が切れました。もう一度PDFを生成してください。"
	case errors.Is(err, context.DeadlineExceeded):
		return "PDFの生成に失敗しました: 処理がタイムアウトしました。"
	case errors.As(err, &captureErr):
		return "PDFの生成に失敗しました: 画像の取得に失敗しました。"
	case errors.As(err, &assemblyErr):
		return "PDFの生成に失敗しました: ファイルの作成に失敗しました。"
	default:
		return "PDFの生成に失敗しました。もう一度お試しください。"
	}
}

var (
	// PDFExporter is the global exporter used by the HTTP handlers
	PDFExporter *Exporter
	// Downloads holds finished exports until the browser fetches them
	Downloads *DownloadRegistry
)

// InitExportPipeline wires the exporter and download registry from cfg.
// Storage must be initialized first.
func InitExportPipeline(cfg *config.Config) {
	PDFExporter = NewExporter(ChromeSurfaceSource{Options: DefaultBrowserOptions(cfg.ChromePath)}, ExportOptionsFromConfig(cfg))
	Downloads = NewDownloadRegistry(Storage, cfg.DownloadGracePeriod)
	log.Printf("Export pipeline ready (strategy: %s, scale: %g, settle: %s, download grace: %s)",
		cfg.PaginationStrategy, cfg.CaptureScale, cfg.CaptureSettleDelay, cfg.DownloadGracePeriod)
}
