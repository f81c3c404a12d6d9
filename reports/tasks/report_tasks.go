package tasks

import (
	"context"
	"encoding/json"
	"fmt"

	"inspection-backend/reports/services"

	"github.com/hibiken/asynq"
)

const TypeReportGenerate = "report:generate"

type ReportGeneratePayload struct {
	ReportID uint `json:"report_id"`
}

// NewReportGenerateTask builds the queue task for one pending report.
func NewReportGenerateTask(reportID uint) (*asynq.Task, error) {
	payload, err := json.Marshal(ReportGeneratePayload{ReportID: reportID})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal report task payload: %w", err)
	}
	return asynq.NewTask(TypeReportGenerate, payload, asynq.MaxRetry(3)), nil
}

// ReportTaskHandler consumes report generation tasks off the queue.
type ReportTaskHandler struct {
	reportService *services.ReportService
}

func NewReportTaskHandler(reportService *services.ReportService) *ReportTaskHandler {
	return &ReportTaskHandler{reportService: reportService}
}

func (h *ReportTaskHandler) HandleReportGenerateTask(ctx context.Context, t *asynq.Task) error {
	var payload ReportGeneratePayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal report task payload: %w", err)
	}
	return h.reportService.GenerateReport(ctx, payload.ReportID)
}
