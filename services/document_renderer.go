package services

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"contract_pdf_app/models"
	"contract_pdf_app/templates/partials"

	"github.com/a-h/templ"
)

// DOM ids of the rendered contract surfaces
const (
	CaptureSurfaceID         = "contract-surface"
	PreviewSurfaceID         = "contract-preview"
	ExpandedPreviewSurfaceID = "contract-preview-expanded"
)

// CaptureSurfaceSelector locates the hidden full-size surface in the capture page
const CaptureSurfaceSelector = "#" + CaptureSurfaceID

const (
	blankPlaceholder   = "　"
	blankDate          = "____年__月__日"
	contractPeriodTail = "までに投稿\n※数日後に投稿内容をスクリーンショットなどで提出\n※投稿後にインサイトを提出"
)

// blankInline keeps the recipient's underline visible inside the preamble
var blankInline = strings.Repeat("　", 10)

// Placeholder returns value, or a full-width space when value is blank so the
// cell keeps its height
func Placeholder(value string) string {
	if strings.TrimSpace(value) == "" {
		return blankPlaceholder
	}
	return value
}

// FormatContractDate turns an ISO date into the long Japanese form,
// e.g. 2024-04-01 -> 2024年4月1日
func FormatContractDate(iso string) string {
	d, err := time.Parse(models.DateLayout, strings.TrimSpace(iso))
	if err != nil {
		return blankDate
	}
	return fmt.Sprintf("%d年%d月%d日", d.Year(), int(d.Month()), d.Day())
}

func formatContractPeriod(period string) string {
	if strings.TrimSpace(period) == "" {
		return blankPlaceholder
	}
	return period + contractPeriodTail
}

// BuildContractView maps fields onto the display values of the document
func BuildContractView(fields models.ContractFields, surfaceID string, offscreen bool) partials.ContractView {
	recipientInline := fields.RecipientName
	if strings.TrimSpace(recipientInline) == "" {
		recipientInline = blankInline
	}

	return partials.ContractView{
		SurfaceID:          surfaceID,
		Offscreen:          offscreen,
		CreatedDate:        FormatContractDate(fields.CreatedDate),
		RecipientName:      Placeholder(fields.RecipientName),
		RecipientInline:    recipientInline,
		SignatureName:      Placeholder(fields.RecipientName),
		Purpose:            Placeholder(fields.Purpose),
		BusinessContent:    Placeholder(fields.BusinessContent),
		ContractPeriod:     formatContractPeriod(fields.ContractPeriod),
		InspectionDeadline: Placeholder(fields.InspectionDeadline),
		CommissionFee:      Placeholder(fields.CommissionFee),
		PaymentCondition:   Placeholder(fields.PaymentCondition),
		BankName:           Placeholder(fields.BankName),
		AccountNumber:      Placeholder(fields.AccountNumber),
		AccountHolder:      Placeholder(fields.AccountHolder),
		PaymentMethod:      Placeholder(fields.PaymentMethod),
		SpecialTerms:       Placeholder(fields.SpecialTerms),
		Issuer:             partials.DefaultIssuer,
		Clauses:            partials.ContractClauses,
	}
}

// RenderDocument renders the contract surface as an HTML fragment
func RenderDocument(ctx context.Context, fields models.ContractFields) (string, error) {
	return renderComponent(ctx, partials.ContractDocument(BuildContractView(fields, PreviewSurfaceID, false)))
}

// RenderCapturePage renders a full HTML page whose only content is the
// off-screen capture surface
func RenderCapturePage(ctx context.Context, fields models.ContractFields) (string, error) {
	return renderComponent(ctx, partials.CapturePage(BuildContractView(fields, CaptureSurfaceID, true)))
}

func renderComponent(ctx context.Context, component templ.Component) (string, error) {
	var buf bytes.Buffer
	if err := component.Render(ctx, &buf); err != nil {
		return "", fmt.Errorf("failed to render document: %w", err)
	}
	return buf.String(), nil
}
