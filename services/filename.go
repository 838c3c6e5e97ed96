package services

import (
	"strings"
	"time"

	"contract_pdf_app/models"
)

const (
	exportFilePrefix        = "業務委託書"
	defaultRecipientSegment = "デフォルト"
)

// unsafeFileNameChars are replaced in user-supplied name segments
var unsafeFileNameChars = strings.NewReplacer(
	"/", "_", "\\", "_", ":", "_", "*", "_", "?", "_",
	"\"", "_", "<", "_", ">", "_", "|", "_",
	"\n", " ", "\r", " ", "\t", " ",
)

// ExportFileName returns 業務委託書_{recipient}_{YYYY-MM-DD}.pdf. A blank
// recipient becomes デフォルト and a blank or invalid date becomes now's date.
func ExportFileName(fields models.ContractFields, now time.Time) string {
	recipient := strings.TrimSpace(unsafeFileNameChars.Replace(fields.RecipientName))
	if recipient == "" {
		recipient = defaultRecipientSegment
	}

	date := now.Format(models.DateLayout)
	if d, err := time.Parse(models.DateLayout, strings.TrimSpace(fields.CreatedDate)); err == nil {
		date = d.Format(models.DateLayout)
	}

	return exportFilePrefix + "_" + recipient + "_" + date + ".pdf"
}
