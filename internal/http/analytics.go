package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/library/internal/audit"
	"github.com/mrlokans/library/internal/services"
)

const (
	csvContentType = "text/csv"
	csvDisposition = "attachment; filename=data.csv"
)

type AnalyticsController struct {
	reports      ReportGenerator
	auditService *audit.Service
}

func NewAnalyticsController(reports ReportGenerator, auditService *audit.Service) *AnalyticsController {
	return &AnalyticsController{reports: reports, auditService: auditService}
}

// Overdue exports open borrowings past their due date as CSV
// GET /analytics/overdue?startDate=2024-01-01&endDate=2024-12-31
func (ac *AnalyticsController) Overdue(c *gin.Context) {
	ac.export(c, ac.reports.OverdueReport)
}

// Borrowings exports every borrowing in a date range as CSV
// GET /analytics/borrowings?startDate=2024-01-01
func (ac *AnalyticsController) Borrowings(c *gin.Context) {
	ac.export(c, ac.reports.BorrowingsReport)
}

func (ac *AnalyticsController) export(c *gin.Context, generate func(services.ReportInput) (*services.Report, error)) {
	input, ok := parseReportRange(c)
	if !ok {
		return
	}

	report, err := generate(input)
	if err != nil {
		respondServiceError(c, err, "generate report")
		return
	}

	ac.auditService.LogReport(GetRequestID(c), report.Name, report.Rows)

	c.Header("Content-Disposition", csvDisposition)
	c.Data(http.StatusOK, csvContentType, report.Data)
}

// parseReportRange reads startDate (required) and endDate (optional).
func parseReportRange(c *gin.Context) (services.ReportInput, bool) {
	var input services.ReportInput

	raw := c.Query("startDate")
	if raw == "" {
		respondBadRequest(c, "startDate is required")
		return input, false
	}
	start, err := ParseDate(raw)
	if err != nil {
		respondBadRequest(c, "startDate: "+err.Error())
		return input, false
	}
	input.StartDate = start

	if raw := c.Query("endDate"); raw != "" {
		end, err := ParseDate(raw)
		if err != nil {
			respondBadRequest(c, "endDate: "+err.Error())
			return input, false
		}
		input.EndDate = &end
	}
	return input, true
}
