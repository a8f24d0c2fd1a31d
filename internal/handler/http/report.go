package http

import (
	"net/http"
	"strconv"

	"github.com/workpulse-hq/attendance-board-go/internal/domain/report"
	"github.com/workpulse-hq/attendance-board-go/internal/handler/http/response"
)

type ReportHandler struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return ReportHandler{reportService: reportService}
}

// Monthly serves the per-employee monthly attendance report.
// Query params: employee_id, year, month.
func (h ReportHandler) Monthly(w http.ResponseWriter, r *http.Request) {
	employeeID := r.URL.Query().Get("employee_id")

	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		response.BadRequest(w, "year must be a number", nil)
		return
	}
	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil {
		response.BadRequest(w, "month must be a number", nil)
		return
	}

	result, err := h.reportService.GetMonthlyReport(r.Context(), report.MonthlyReportRequest{
		EmployeeID: employeeID,
		Year:       year,
		Month:      month,
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
