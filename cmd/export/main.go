package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"contract_pdf_app/config"
	"contract_pdf_app/models"
	"contract_pdf_app/services"
)

func main() {
	var (
		dataJSON  = flag.String("data", "", "Path to JSON file with contract fields (keys as in the form)")
		outDir    = flag.String("out", ".", "Directory the PDF is written to")
		recipient = flag.String("recipient", "", "Recipient name (overrides -data)")
		created   = flag.String("date", "", "Creation date YYYY-MM-DD (overrides -data)")
		htmlOnly  = flag.Bool("html", false, "Write the capture page HTML instead of exporting")
		verify    = flag.Bool("verify", false, "Read the produced PDF back and check its pages")
	)
	flag.Parse()

	cfg := config.Load()
	loc := cfg.Location()

	fields, err := loadFields(*dataJSON, time.Now().In(loc))
	if err != nil {
		log.Fatalf("Failed to read contract fields: %v", err)
	}
	if *recipient != "" {
		fields.RecipientName = *recipient
	}
	if *created != "" {
		fields.CreatedDate = *created
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if *htmlOnly {
		page, err := services.RenderCapturePage(ctx, fields)
		if err != nil {
			log.Fatalf("Failed to render document: %v", err)
		}
		fmt.Print(page)
		return
	}

	exporter := services.NewExporter(
		services.ChromeSurfaceSource{Options: services.DefaultBrowserOptions(cfg.ChromePath)},
		services.ExportOptionsFromConfig(cfg),
	)
	file, err := exporter.Export(ctx, fields)
	if err != nil {
		log.Fatalf("%s (%v)", services.UserMessage(err), err)
	}

	if *verify {
		info, err := services.InspectPDF(file.Data)
		if err != nil {
			log.Fatalf("Produced PDF is invalid: %v", err)
		}
		if err := services.VerifyPDF(file.Data, file.Pages, file.PageSize); err != nil {
			log.Fatalf("Verification failed: %v", err)
		}
		log.Printf("Verified %d page(s) of %.0fx%.0fmm", info.Pages, file.PageSize.Width, file.PageSize.Height)
	}

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		log.Fatalf("Failed to create output directory: %v", err)
	}
	path := filepath.Join(*outDir, file.Name)
	if err := os.WriteFile(path, file.Data, 0644); err != nil {
		log.Fatalf("Failed to write PDF: %v", err)
	}
	fmt.Println(path)
}

// loadFields starts from the defaults and overlays the JSON file, if any
func loadFields(path string, now time.Time) (models.ContractFields, error) {
	fields := models.DefaultContractFields(now)
	if path == "" {
		return fields, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fields, err
	}

	var values map[string]string
	if err := json.Unmarshal(data, &values); err != nil {
		return fields, fmt.Errorf("invalid JSON in %s: %w", path, err)
	}
	for key, value := range values {
		fields, err = fields.With(models.FieldKey(key), value)
		if err != nil {
			return fields, err
		}
	}
	return fields, nil
}
