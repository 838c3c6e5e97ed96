package handlers

import (
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"contract_pdf_app/config"
	"contract_pdf_app/models"
	"contract_pdf_app/services"
	"contract_pdf_app/templates/partials"

	"github.com/labstack/echo/v4"
)

const (
	pageTitle      = "業務委託書 作成"
	maxFieldLength = 4000 // runes
)

// IndexHandler renders the contract form with a preview of the default record
func IndexHandler(c echo.Context) error {
	fields := models.DefaultContractFields(currentTime(c))

	component := partials.IndexPage(partials.PageView{
		Title:    pageTitle,
		Sections: formSections(fields),
		Preview:  previewView(fields),
	})
	return render(c, http.StatusOK, component)
}

// PreviewHandler re-renders the preview panel from the posted form
func PreviewHandler(c echo.Context) error {
	fields := bindContractFields(c)
	component := partials.PreviewPanel(previewView(fields))
	return render(c, http.StatusOK, component)
}

// ExpandedPreviewHandler renders the enlarged preview scaled to the
// viewport size sent as vw and vh
func ExpandedPreviewHandler(c echo.Context) error {
	fields := bindContractFields(c)

	vw, errW := strconv.ParseFloat(c.QueryParam("vw"), 64)
	vh, errH := strconv.ParseFloat(c.QueryParam("vh"), 64)
	if errW != nil || errH != nil || vw <= 0 || vh <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "vw and vh must be positive numbers")
	}

	natural := services.NaturalSize(services.ContractPage)
	scale := services.PreviewScale(services.Size{Width: vw, Height: vh}, natural, services.DefaultScaleOptions)

	component := partials.ExpandedPreview(partials.ExpandedPreviewView{
		Document: services.BuildContractView(fields, services.ExpandedPreviewSurfaceID, false),
		Scale:    scale,
		Width:    natural.Width * scale,
		Height:   natural.Height * scale,
	})
	return render(c, http.StatusOK, component)
}

func previewView(fields models.ContractFields) partials.PreviewView {
	return partials.PreviewView{
		Document: services.BuildContractView(fields, services.PreviewSurfaceID, false),
		Scale:    services.ThumbnailScale,
	}
}

func formSections(fields models.ContractFields) []partials.FormSectionView {
	sections := make([]partials.FormSectionView, 0, len(models.FormSections))
	for _, section := range models.FormSections {
		view := partials.FormSectionView{Title: section.Title}
		for _, def := range section.Fields {
			view.Fields = append(view.Fields, partials.FormFieldView{
				Key:         string(def.Key),
				Label:       def.Label,
				Kind:        def.Kind,
				Placeholder: def.Placeholder,
				Rows:        def.Rows,
				Value:       fields.Get(def.Key),
			})
		}
		sections = append(sections, view)
	}
	return sections
}

// bindContractFields reads every contract field from the form or query.
// Missing fields are blank. Values are kept as typed; the templates escape
// them on output.
func bindContractFields(c echo.Context) models.ContractFields {
	var fields models.ContractFields
	for _, key := range models.FieldKeys {
		value := normalizeFieldValue(c.FormValue(string(key)))
		// keys come from models.FieldKeys, so With cannot fail
		fields, _ = fields.With(key, value)
	}
	return fields
}

func normalizeFieldValue(value string) string {
	if value == "" {
		return ""
	}
	value = strings.ReplaceAll(value, "\r\n", "\n")
	if utf8.RuneCountInString(value) > maxFieldLength {
		value = string([]rune(value)[:maxFieldLength])
	}
	return value
}

// CapturePageHandler serves the offscreen page the exporter loads into
// Chrome, for inspecting layout in development
func CapturePageHandler(c echo.Context) error {
	page, err := services.RenderCapturePage(c.Request().Context(), bindContractFields(c))
	if err != nil {
		log.Printf("[ERROR] Failed to render capture page: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "プレビューの生成に失敗しました")
	}
	return c.HTML(http.StatusOK, page)
}

// currentTime is now in the configured time zone
func currentTime(c echo.Context) time.Time {
	if cfg, ok := c.Get("config").(*config.Config); ok && cfg != nil {
		return time.Now().In(cfg.Location())
	}
	return time.Now()
}
