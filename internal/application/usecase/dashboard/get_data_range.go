package dashboard

import (
	"context"
	"fmt"
)

// GetDataRangeOutput represents the output of getting data range.
type GetDataRangeOutput struct {
	OldestDate        *string
	NewestDate        *string
	TotalTransactions int
	HasData           bool
}

// GetDataRangeUseCase handles getting the date range of the stored transactions.
type GetDataRangeUseCase struct {
	dashboardRepo DashboardRepository
}

// NewGetDataRangeUseCase creates a new GetDataRangeUseCase instance.
func NewGetDataRangeUseCase(dashboardRepo DashboardRepository) *GetDataRangeUseCase {
	return &GetDataRangeUseCase{
		dashboardRepo: dashboardRepo,
	}
}

// Execute retrieves the date range of the stored transactions.
func (uc *GetDataRangeUseCase) Execute(ctx context.Context) (*GetDataRangeOutput, error) {
	dateRange, err := uc.dashboardRepo.GetDateRange(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get date range: %w", err)
	}

	hasData := dateRange.OldestDate != nil && dateRange.NewestDate != nil

	return &GetDataRangeOutput{
		OldestDate:        dateRange.OldestDate,
		NewestDate:        dateRange.NewestDate,
		TotalTransactions: dateRange.TotalTransactions,
		HasData:           hasData,
	}, nil
}
