package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"inspection-backend/config"
	"inspection-backend/db/models"
	device_repositories "inspection-backend/devices/repositories"
	inspection_repositories "inspection-backend/inspections/repositories"
	"inspection-backend/reports/repositories"
	"inspection-backend/utils"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const reportOutputDir = "./public/reports"

// ReportService renders inspection summary PDFs in the background worker.
type ReportService struct {
	reportRepo     repositories.ReportRepository
	deviceRepo     device_repositories.DeviceRepository
	inspectionRepo inspection_repositories.InspectionRepository
}

func NewReportService(
	reportRepo repositories.ReportRepository,
	deviceRepo device_repositories.DeviceRepository,
	inspectionRepo inspection_repositories.InspectionRepository,
) *ReportService {
	return &ReportService{
		reportRepo:     reportRepo,
		deviceRepo:     deviceRepo,
		inspectionRepo: inspectionRepo,
	}
}

type reportDeviceSection struct {
	Device      models.Device
	Inspections []models.Inspection
}

type reportTemplateData struct {
	Title        string
	CustomerName string
	GeneratedAt  string
	Sections     []reportDeviceSection
	TotalDevices int
}

// GenerateReport renders the PDF for one pending report and updates its
// status. Called from the asynq worker, never from a request handler.
func (rs *ReportService) GenerateReport(ctx context.Context, reportID uint) error {
	report, err := rs.reportRepo.GetReportByID(reportID)
	if err != nil {
		return err
	}
	if report == nil {
		return fmt.Errorf("report %d not found", reportID)
	}
	if report.Status == models.CompletedReport {
		config.Logger.Info("Report already completed, skipping", zap.Uint("reportID", reportID))
		return nil
	}

	if err := rs.reportRepo.MarkProcessing(reportID); err != nil {
		return err
	}

	filePath, err := rs.renderReport(ctx, report)
	if err != nil {
		config.Logger.Error("Report generation failed",
			zap.Uint("reportID", reportID), zap.Error(err))
		if markErr := rs.reportRepo.MarkFailed(reportID, err.Error()); markErr != nil {
			config.Logger.Error("Failed to mark report as failed",
				zap.Uint("reportID", reportID), zap.Error(markErr))
		}
		return err
	}

	if err := rs.reportRepo.MarkCompleted(reportID, filePath); err != nil {
		return err
	}

	rs.notifyRequester(report, filePath)

	config.Logger.Info("Report generated",
		zap.Uint("reportID", reportID), zap.String("filePath", filePath))
	return nil
}

func (rs *ReportService) renderReport(ctx context.Context, report *models.Report) (string, error) {
	if report.Customer == nil {
		return "", fmt.Errorf("report %d has no customer loaded", report.ID)
	}

	devices, err := rs.deviceRepo.GetDevicesByCustomer(report.CustomerID)
	if err != nil {
		return "", err
	}

	sections := make([]reportDeviceSection, 0, len(devices))
	for _, device := range devices {
		inspections, err := rs.inspectionRepo.GetInspectionsByDevice(device.ID)
		if err != nil {
			return "", err
		}
		sections = append(sections, reportDeviceSection{
			Device:      device,
			Inspections: inspections,
		})
	}

	data := reportTemplateData{
		Title:        report.Title,
		CustomerName: report.Customer.CustomerName,
		GeneratedAt:  time.Now().Format("2006-01-02 15:04"),
		Sections:     sections,
		TotalDevices: len(devices),
	}

	htmlContent, err := renderReportHTML(data)
	if err != nil {
		return "", fmt.Errorf("failed to render report HTML: %w", err)
	}

	pdfBytes, err := renderPDFFromHTML(ctx, htmlContent)
	if err != nil {
		return "", fmt.Errorf("failed to render PDF: %w", err)
	}

	if err := utils.EnsureDirectoryExists(reportOutputDir); err != nil {
		return "", err
	}

	filename := fmt.Sprintf("report_%s.pdf", uuid.New().String())
	fullPath := filepath.Join(reportOutputDir, filename)
	if err := os.WriteFile(fullPath, pdfBytes, 0644); err != nil {
		return "", fmt.Errorf("failed to write PDF: %w", err)
	}

	return "public/reports/" + filename, nil
}

func (rs *ReportService) notifyRequester(report *models.Report, filePath string) {
	if report.Customer == nil || report.Customer.ContactEmail == nil {
		return
	}
	link := utils.GenerateDownloadLink(filePath)
	message := fmt.Sprintf("The inspection report %q for %s is ready.\n\nDownload: %s\n",
		report.Title, report.Customer.CustomerName, link)
	if err := utils.SendEmail(*report.Customer.ContactEmail, message, "Inspection report ready", ""); err != nil {
		config.Logger.Warn("Failed to send report notification email",
			zap.Uint("reportID", report.ID), zap.Error(err))
	}
}

var reportTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
  body { font-family: 'Helvetica Neue', Arial, sans-serif; font-size: 12px; color: #222; }
  h1 { font-size: 20px; border-bottom: 2px solid #2c3e50; padding-bottom: 6px; }
  h2 { font-size: 15px; margin-top: 24px; color: #2c3e50; }
  table { width: 100%; border-collapse: collapse; margin-top: 8px; }
  th, td { border: 1px solid #ccc; padding: 5px 8px; text-align: left; }
  th { background: #f0f3f6; }
  .meta { color: #666; margin-bottom: 16px; }
  .status-Passed { color: #1a7f37; }
  .status-Failed { color: #b42318; }
  .status-NeedsRepair { color: #b45309; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<div class="meta">
  Customer: {{.CustomerName}}<br>
  Generated: {{.GeneratedAt}}<br>
  Devices covered: {{.TotalDevices}}
</div>
{{range .Sections}}
<h2>{{.Device.DeviceName}} ({{.Device.DeviceType}} / {{.Device.HardwareType}})</h2>
{{if .Inspections}}
<table>
  <tr><th>Date</th><th>Inspector</th><th>Status</th><th>Voltage</th><th>Temperature</th><th>Notes</th></tr>
  {{range .Inspections}}
  <tr>
    <td>{{.InspectedAt.Format "2006-01-02"}}</td>
    <td>{{.InspectorName}}</td>
    <td class="status-{{.Status}}">{{.Status}}</td>
    <td>{{if .MeasuredVoltage}}{{.MeasuredVoltage}} V{{end}}</td>
    <td>{{if .MeasuredTemperature}}{{.MeasuredTemperature}} &deg;C{{end}}</td>
    <td>{{if .Notes}}{{.Notes}}{{end}}</td>
  </tr>
  {{end}}
</table>
{{else}}
<p>No inspections recorded for this device.</p>
{{end}}
{{end}}
</body>
</html>`))

func renderReportHTML(data reportTemplateData) (string, error) {
	var buf bytes.Buffer
	if err := reportTemplate.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// renderPDFFromHTML serves the HTML on a loopback listener and prints it to
// an A4 PDF through headless Chrome.
func renderPDFFromHTML(parentCtx context.Context, htmlContent string) ([]byte, error) {
	ctx, cancel := chromedp.NewContext(parentCtx)
	defer cancel()

	ctx, cancel = context.WithTimeout(ctx, 60*time.Second)
	defer cancel()

	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(htmlContent))
	})

	server := &http.Server{Handler: mux}
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return nil, err
	}
	defer listener.Close()

	go server.Serve(listener)
	defer server.Close()

	url := fmt.Sprintf("http://127.0.0.1:%d", listener.Addr().(*net.TCPAddr).Port)

	var buf []byte
	err = chromedp.Run(ctx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			buf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.27).
				WithPaperHeight(11.7).
				WithMarginTop(0.6).
				WithMarginBottom(0.6).
				WithMarginLeft(0.6).
				WithMarginRight(0.6).
				WithPreferCSSPageSize(true).
				WithDisplayHeaderFooter(false).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, err
	}

	return buf, nil
}
