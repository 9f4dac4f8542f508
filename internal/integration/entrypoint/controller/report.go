// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pocketfin/backend/internal/application/usecase/budget"
	"github.com/pocketfin/backend/internal/application/usecase/report"
	"github.com/pocketfin/backend/internal/domain/entity"
	"github.com/pocketfin/backend/internal/integration/entrypoint/dto"
	"github.com/pocketfin/backend/internal/integration/entrypoint/middleware"
)

// ReportController handles reporting endpoints.
type ReportController struct {
	summaryUseCase       *report.GetSummaryUseCase
	trendsUseCase        *report.GetTrendsUseCase
	breakdownUseCase     *report.GetCategoryBreakdownUseCase
	exportUseCase        *report.ExportTransactionsUseCase
	budgetSummaryUseCase *budget.GetBudgetSummaryUseCase
}

// NewReportController creates a new report controller instance.
func NewReportController(
	summaryUseCase *report.GetSummaryUseCase,
	trendsUseCase *report.GetTrendsUseCase,
	breakdownUseCase *report.GetCategoryBreakdownUseCase,
	exportUseCase *report.ExportTransactionsUseCase,
	budgetSummaryUseCase *budget.GetBudgetSummaryUseCase,
) *ReportController {
	return &ReportController{
		summaryUseCase:       summaryUseCase,
		trendsUseCase:        trendsUseCase,
		breakdownUseCase:     breakdownUseCase,
		exportUseCase:        exportUseCase,
		budgetSummaryUseCase: budgetSummaryUseCase,
	}
}

// Summary handles GET /reports/summary requests.
func (c *ReportController) Summary(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	startDate, endDate, ok := parseDateRange(ctx)
	if !ok {
		return
	}

	output, err := c.summaryUseCase.Execute(ctx.Request.Context(), report.GetSummaryInput{
		UserID:    userID,
		StartDate: startDate,
		EndDate:   endDate,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to compute report summary",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToReportSummaryResponse(output))
}

// Trends handles GET /reports/trends requests.
func (c *ReportController) Trends(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	startDate, endDate, ok := parseDateRange(ctx)
	if !ok {
		return
	}

	output, err := c.trendsUseCase.Execute(ctx.Request.Context(), report.GetTrendsInput{
		UserID:    userID,
		StartDate: startDate,
		EndDate:   endDate,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to compute trends",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTrendsResponse(output))
}

// Categories handles GET /reports/categories requests.
func (c *ReportController) Categories(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	startDate, endDate, ok := parseDateRange(ctx)
	if !ok {
		return
	}

	input := report.GetCategoryBreakdownInput{
		UserID:    userID,
		StartDate: startDate,
		EndDate:   endDate,
	}
	if transactionType := ctx.Query("type"); transactionType != "" {
		input.Type = entity.TransactionType(transactionType)
	}

	output, err := c.breakdownUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to compute category breakdown",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryBreakdownResponse(output))
}

// Budgets handles GET /reports/budgets requests. It serves the budget
// summary figures together with an aggregate statistics block.
func (c *ReportController) Budgets(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.budgetSummaryUseCase.Execute(ctx.Request.Context(), budget.GetBudgetSummaryInput{
		UserID: userID,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to compute budget report",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetReportResponse(output.Summaries))
}

// Export handles POST /reports/export requests. The response is the rendered
// file, served as an attachment.
func (c *ReportController) Export(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.ExportReportRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	var startDate, endDate time.Time
	if req.StartDate != "" {
		parsed, err := time.Parse("2006-01-02", req.StartDate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid start date format, expected YYYY-MM-DD",
			})
			return
		}
		startDate = parsed
	}
	if req.EndDate != "" {
		parsed, err := time.Parse("2006-01-02", req.EndDate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid end date format, expected YYYY-MM-DD",
			})
			return
		}
		endDate = parsed
	}

	format := report.ExportFormat(req.Format)
	if format == "" {
		format = report.ExportFormatCSV
	}

	output, err := c.exportUseCase.Execute(ctx.Request.Context(), report.ExportTransactionsInput{
		UserID:    userID,
		StartDate: startDate,
		EndDate:   endDate,
		Format:    format,
	})
	if err != nil {
		if errors.Is(err, report.ErrInvalidExportFormat) {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Unsupported export format, expected csv or json",
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to export transactions",
		})
		return
	}

	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", output.Filename))
	ctx.Data(http.StatusOK, output.ContentType, output.Data)
}

// parseDateRange reads the optional start_date and end_date query parameters.
// It writes a 400 response and reports false on a malformed date.
func parseDateRange(ctx *gin.Context) (time.Time, time.Time, bool) {
	var startDate, endDate time.Time

	if startDateStr := ctx.Query("start_date"); startDateStr != "" {
		parsed, err := time.Parse("2006-01-02", startDateStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid start date format, expected YYYY-MM-DD",
			})
			return time.Time{}, time.Time{}, false
		}
		startDate = parsed
	}
	if endDateStr := ctx.Query("end_date"); endDateStr != "" {
		parsed, err := time.Parse("2006-01-02", endDateStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid end date format, expected YYYY-MM-DD",
			})
			return time.Time{}, time.Time{}, false
		}
		endDate = parsed
	}

	return startDate, endDate, true
}
