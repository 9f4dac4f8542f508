// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/shopspring/decimal"

	"github.com/pocketfin/backend/internal/application/usecase/report"
	"github.com/pocketfin/backend/internal/domain/entity"
)

// ReportPeriodResponse represents the date range a report covers.
type ReportPeriodResponse struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// ReportTotalsResponse represents aggregated money figures for a date range.
type ReportTotalsResponse struct {
	Income      string `json:"income"`
	Expenses    string `json:"expenses"`
	NetIncome   string `json:"net_income"`
	SavingsRate string `json:"savings_rate"`
}

// ReportCountsResponse splits the transaction count by type.
type ReportCountsResponse struct {
	Total   int `json:"total"`
	Income  int `json:"income"`
	Expense int `json:"expense"`
}

// ReportSummaryResponse represents the range summary report.
type ReportSummaryResponse struct {
	Period           ReportPeriodResponse `json:"period"`
	Totals           ReportTotalsResponse `json:"totals"`
	TransactionCount ReportCountsResponse `json:"transaction_count"`
}

// TrendsResponse represents the trend series, oldest transaction first.
type TrendsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// CategoryBreakdownEntryResponse represents one category's share of the total.
type CategoryBreakdownEntryResponse struct {
	CategoryID string `json:"category_id"`
	Name       string `json:"name"`
	Icon       string `json:"icon"`
	Color      string `json:"color"`
	Total      string `json:"total"`
	Percentage string `json:"percentage"`
}

// CategoryBreakdownResponse represents the response for the category breakdown.
type CategoryBreakdownResponse struct {
	Total      string                           `json:"total"`
	Categories []CategoryBreakdownEntryResponse `json:"categories"`
}

// BudgetStatisticsResponse represents aggregate figures over all budgets.
type BudgetStatisticsResponse struct {
	TotalBudgets  int    `json:"total_budgets"`
	OnTrack       int    `json:"on_track"`
	NearLimit     int    `json:"near_limit"`
	OverBudget    int    `json:"over_budget"`
	TotalBudgeted string `json:"total_budgeted"`
	TotalSpent    string `json:"total_spent"`
}

// BudgetReportResponse represents the budget report: per-budget summaries
// plus the aggregate statistics block.
type BudgetReportResponse struct {
	Statistics BudgetStatisticsResponse     `json:"statistics"`
	Budgets    []BudgetSummaryEntryResponse `json:"budgets"`
}

// ExportReportRequest represents the request body for the transaction export.
type ExportReportRequest struct {
	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"`
	Format    string `json:"format,omitempty" binding:"omitempty,oneof=csv json"`
}

// ToReportSummaryResponse converts a summary output to its response DTO.
func ToReportSummaryResponse(output *report.GetSummaryOutput) ReportSummaryResponse {
	return ReportSummaryResponse{
		Period: ReportPeriodResponse{
			StartDate: output.StartDate.Format("2006-01-02"),
			EndDate:   output.EndDate.Format("2006-01-02"),
		},
		Totals: ReportTotalsResponse{
			Income:      output.TotalIncome.StringFixed(2),
			Expenses:    output.TotalExpenses.StringFixed(2),
			NetIncome:   output.NetIncome.StringFixed(2),
			SavingsRate: output.SavingsRate.StringFixed(2),
		},
		TransactionCount: ReportCountsResponse{
			Total:   output.TransactionCount.Total,
			Income:  output.TransactionCount.Income,
			Expense: output.TransactionCount.Expense,
		},
	}
}

// ToTrendsResponse converts a trends output to its response DTO.
func ToTrendsResponse(output *report.GetTrendsOutput) TrendsResponse {
	transactions := make([]TransactionResponse, len(output.Transactions))
	for i, row := range output.Transactions {
		transactions[i] = toTrendTransactionResponse(row)
	}
	return TrendsResponse{Transactions: transactions}
}

// toTrendTransactionResponse builds a TransactionResponse from a resolved
// ledger row.
func toTrendTransactionResponse(row *entity.TransactionWithRefs) TransactionResponse {
	txn := row.Transaction
	response := TransactionResponse{
		ID:          txn.ID.String(),
		Date:        txn.Date.Format("2006-01-02"),
		Description: txn.Description,
		Amount:      txn.Amount.StringFixed(2),
		Type:        string(txn.Type),
		CategoryID:  txn.CategoryID.String(),
		PocketID:    txn.PocketID.String(),
		CreatedAt:   txn.CreatedAt,
		UpdatedAt:   txn.UpdatedAt,
	}
	if txn.RecurringID != nil {
		id := txn.RecurringID.String()
		response.RecurringID = &id
	}
	if row.Category != nil {
		response.Category = &TransactionCategoryResponse{
			ID:    row.Category.ID.String(),
			Name:  row.Category.Name,
			Icon:  row.Category.Icon,
			Color: row.Category.Color,
			Type:  string(row.Category.Type),
		}
	}
	if row.Pocket != nil {
		response.Pocket = &TransactionPocketResponse{
			ID:   row.Pocket.ID.String(),
			Name: row.Pocket.Name,
			Icon: row.Pocket.Icon,
		}
	}
	return response
}

// ToCategoryBreakdownResponse converts a breakdown output to its response DTO.
func ToCategoryBreakdownResponse(output *report.GetCategoryBreakdownOutput) CategoryBreakdownResponse {
	categories := make([]CategoryBreakdownEntryResponse, len(output.Categories))
	for i, entry := range output.Categories {
		categories[i] = CategoryBreakdownEntryResponse{
			CategoryID: entry.CategoryID.String(),
			Name:       entry.Name,
			Icon:       entry.Icon,
			Color:      entry.Color,
			Total:      entry.Total.StringFixed(2),
			Percentage: entry.Percentage.StringFixed(2),
		}
	}
	return CategoryBreakdownResponse{
		Total:      output.Total.StringFixed(2),
		Categories: categories,
	}
}

// ToBudgetReportResponse converts budget summaries to the budget report,
// aggregating the statistics block over them.
func ToBudgetReportResponse(summaries []*entity.BudgetSummary) BudgetReportResponse {
	statistics := BudgetStatisticsResponse{TotalBudgets: len(summaries)}
	totalBudgeted := decimal.Zero
	totalSpent := decimal.Zero
	for _, summary := range summaries {
		switch summary.Status {
		case entity.BudgetStatusOnTrack:
			statistics.OnTrack++
		case entity.BudgetStatusNearLimit:
			statistics.NearLimit++
		case entity.BudgetStatusOverBudget:
			statistics.OverBudget++
		}
		totalBudgeted = totalBudgeted.Add(summary.Budget.Amount)
		totalSpent = totalSpent.Add(summary.Spent)
	}
	statistics.TotalBudgeted = totalBudgeted.StringFixed(2)
	statistics.TotalSpent = totalSpent.StringFixed(2)

	return BudgetReportResponse{
		Statistics: statistics,
		Budgets:    ToBudgetSummaryResponse(summaries).Budgets,
	}
}
