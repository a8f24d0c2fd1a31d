package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/workpulse-hq/attendance-board-go/internal/domain/report"
	"github.com/workpulse-hq/attendance-board-go/internal/pkg/validator"
)

type fakeMonthlyReportService struct {
	resp report.MonthlyReportResponse
	err  error
	got  report.MonthlyReportRequest
}

func (f *fakeMonthlyReportService) GetMonthlyReport(_ context.Context, req report.MonthlyReportRequest) (report.MonthlyReportResponse, error) {
	f.got = req
	return f.resp, f.err
}

func (f *fakeMonthlyReportService) InvalidateMonth(_ context.Context, _ string, _, _ int) error {
	return nil
}

func reportTestRouter(service report.ReportService) *chi.Mux {
	handler := NewReportHandler(service)
	r := chi.NewRouter()
	r.Get("/reports/monthly", handler.Monthly)
	return r
}

func TestReportHandler_Monthly(t *testing.T) {
	service := &fakeMonthlyReportService{resp: report.MonthlyReportResponse{
		EmployeeID: "emp-1", Year: 2026, Month: 3,
	}}
	router := reportTestRouter(service)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/reports/monthly?employee_id=emp-1&year=2026&month=3", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, report.MonthlyReportRequest{EmployeeID: "emp-1", Year: 2026, Month: 3}, service.got)
}

func TestReportHandler_Monthly_NonNumericParams(t *testing.T) {
	router := reportTestRouter(&fakeMonthlyReportService{})

	for _, target := range []string{
		"/reports/monthly?employee_id=emp-1&year=twenty&month=3",
		"/reports/monthly?employee_id=emp-1&year=2026&month=march",
		"/reports/monthly?employee_id=emp-1",
	} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
	}
}

func TestReportHandler_Monthly_ValidationErrors(t *testing.T) {
	service := &fakeMonthlyReportService{err: validator.ValidationErrors{
		{Field: "month", Message: "month must be between 1 and 12"},
	}}
	router := reportTestRouter(service)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/reports/monthly?employee_id=emp-1&year=2026&month=13", nil))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}
