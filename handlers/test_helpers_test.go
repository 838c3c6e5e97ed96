package handlers

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"io"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"contract_pdf_app/config"
	"contract_pdf_app/models"
	"contract_pdf_app/services"

	"github.com/labstack/echo/v4"
)

func setupEcho(method, path string, body io.Reader) (*echo.Echo, echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, path, body)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	// Add config to context
	c.Set("config", &config.Config{
		Environment: "test",
		TimeZone:    "Asia/Tokyo",
	})

	return e, c, rec
}

// formBody encodes fields the way the browser posts the contract form
func formBody(fields models.ContractFields) io.Reader {
	values := url.Values{}
	for key, value := range fields.Values() {
		values.Set(string(key), value)
	}
	return strings.NewReader(values.Encode())
}

// memorySurface is a Surface whose capture is a blank PNG of the clip size
type memorySurface struct {
	styles map[string]string
	err    error
}

func (m *memorySurface) Styles(ctx context.Context, properties []string) (map[string]string, error) {
	out := map[string]string{}
	for _, p := range properties {
		out[p] = m.styles[p]
	}
	return out, nil
}

func (m *memorySurface) SetStyles(ctx context.Context, styles map[string]string) error {
	for k, v := range styles {
		if v == "" {
			delete(m.styles, k)
		} else {
			m.styles[k] = v
		}
	}
	return nil
}

func (m *memorySurface) Bounds(ctx context.Context) (services.Box, error) {
	return services.Box{Width: 420, Height: 297}, nil
}

func (m *memorySurface) Rasterize(ctx context.Context, opts services.RasterOptions) ([]byte, error) {
	if m.err != nil {
		return nil, m.err
	}
	img := image.NewGray(image.Rect(0, 0, int(opts.Clip.Width*opts.Scale), int(opts.Clip.Height*opts.Scale)))
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

type memorySource struct {
	surface services.Surface
	err     error
}

func (s memorySource) Open(ctx context.Context, htmlContent, selector string) (services.Surface, func(), error) {
	if s.err != nil {
		return nil, func() {}, s.err
	}
	return s.surface, func() {}, nil
}

// setupExportPipeline swaps the global exporter and registry for in-memory ones
func setupExportPipeline(t *testing.T, source services.SurfaceSource) {
	t.Helper()
	prevExporter, prevDownloads := services.PDFExporter, services.Downloads

	services.PDFExporter = services.NewExporter(source, services.ExportOptions{Scale: 1, Location: time.UTC})
	services.Downloads = services.NewDownloadRegistry(services.NewLocalStorage(t.TempDir()), time.Minute)

	t.Cleanup(func() {
		services.Downloads.Close()
		services.PDFExporter, services.Downloads = prevExporter, prevDownloads
	})
}
