package handlers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"

	"contract_pdf_app/services"
	"contract_pdf_app/templates/partials"

	"github.com/labstack/echo/v4"
)

// ExportHandler captures the contract for the posted form and hands back a
// short-lived download link
func ExportHandler(c echo.Context) error {
	fields := bindContractFields(c)

	// Leaving the page does not cancel an export that already started
	ctx := context.WithoutCancel(c.Request().Context())

	file, err := services.PDFExporter.Export(ctx, fields)
	if err != nil {
		return exportFailure(c, err)
	}

	download, err := services.Downloads.Register(ctx, file)
	if err != nil {
		log.Printf("[ERROR] Failed to register download for %s: %s", file.Name, services.DescribeError(err))
		return exportFailure(c, err)
	}

	if isHTMX(c) {
		component := partials.ExportStatus(partials.ExportStatusView{
			FileName:     download.FileName,
			FileSize:     download.Size,
			Pages:        download.Pages,
			DownloadURL:  download.URL(),
			AutoDownload: true,
		})
		return render(c, http.StatusOK, component)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"file_name":    download.FileName,
		"download_url": download.URL(),
		"pages":        download.Pages,
		"size":         download.Size,
		"expires_at":   download.ExpiresAt,
	})
}

func exportFailure(c echo.Context, err error) error {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, services.ErrExportInProgress):
		status = http.StatusConflict
	case errors.Is(err, services.ErrSurfaceMissing):
		status = http.StatusUnprocessableEntity
	}

	message := services.UserMessage(err)
	if isHTMX(c) {
		return render(c, status, partials.ExportStatus(partials.ExportStatusView{Error: message}))
	}
	return c.JSON(status, map[string]string{"error": message})
}

// DownloadHandler streams an exported PDF as an attachment
func DownloadHandler(c echo.Context) error {
	download, reader, err := services.Downloads.Open(c.Request().Context(), c.Param("token"))
	if err != nil {
		if errors.Is(err, services.ErrDownloadNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, services.UserMessage(err))
		}
		log.Printf("[ERROR] Failed to open download: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "ダウンロードに失敗しました")
	}
	defer reader.Close()

	c.Response().Header().Set(echo.HeaderContentDisposition, contentDisposition(download.FileName))
	c.Response().Header().Set("Cache-Control", "no-store")
	return c.Stream(http.StatusOK, "application/pdf", reader)
}

// HealthHandler reports liveness and how many downloads are held
func HealthHandler(c echo.Context) error {
	pending := 0
	if services.Downloads != nil {
		pending = services.Downloads.Pending()
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":            "ok",
		"pending_downloads": pending,
	})
}

// contentDisposition names the attachment, with the UTF-8 name for
// browsers that support RFC 6266
func contentDisposition(name string) string {
	return fmt.Sprintf(`attachment; filename="contract.pdf"; filename*=UTF-8''%s`, url.PathEscape(name))
}
