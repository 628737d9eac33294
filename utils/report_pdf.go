package utils

import (
	"bytes"
	"context"
	"html/template"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"shiptrack/repository"
)

type reportView struct {
	Data        *repository.ReportData
	GeneratedAt string
	Risk        string
}

// GenerateStatusReportPDF renders a shipment status report to HTML and
// prints it with headless Chrome.
func GenerateStatusReportPDF(repo *repository.ReportRepository, referenceNo string) ([]byte, error) {
	data, err := repo.GetReportData(referenceNo)
	if err != nil {
		return nil, err
	}

	tmpl, err := template.ParseFiles("templates/status_report.html")
	if err != nil {
		return nil, err
	}

	view := reportView{
		Data:        data,
		GeneratedAt: time.Now().UTC().Format("02-Jan-2006 15:04 MST"),
		Risk:        string(data.Risk),
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, view); err != nil {
		return nil, err
	}

	finalHTML := `
		<!DOCTYPE html>
		<html>
		<head>
		<meta charset="UTF-8">
		<style>
		@page {
			size: A4;
			margin: 20px;
		}
		body {
			font-family: Arial, Helvetica, sans-serif;
			font-size: 12px;
			margin: 0;
			padding: 0;
		}
		table {
			border-collapse: collapse;
			width: 100%;
		}
		th, td {
			border: 1px solid #999;
			padding: 4px 6px;
			text-align: left;
		}
		.report-section {
			page-break-inside: avoid;
			margin-bottom: 12px;
		}
		</style>
		</head>
		<body>` + body.String() + `</body></html>`

	tmpDir := os.TempDir()
	tmpHTML := filepath.Join(tmpDir, "status_report_"+time.Now().Format("20060102150405")+".html")
	if err := os.WriteFile(tmpHTML, []byte(finalHTML), 0644); err != nil {
		return nil, err
	}
	defer os.Remove(tmpHTML)

	ctx, cancel := chromedp.NewContext(context.Background())
	defer cancel()

	var pdfBuf []byte
	fileURL := "file://" + tmpHTML

	err = chromedp.Run(ctx,
		chromedp.Navigate(fileURL),
		chromedp.Sleep(1*time.Second),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdfBuf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.27).  // A4 width
				WithPaperHeight(11.7). // A4 height
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, err
	}

	return pdfBuf, nil
}
