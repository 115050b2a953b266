package market

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/ougirez/kisan/internal/domain"
)

var monthlyRevenue = []float64{45000, 52000, 48000, 61000, 58000, 72000}

// Analytics returns the synthesized farm-performance payload. Only the
// revenue total is derived (sum of the monthly series); everything else
// is illustrative fixture data, the same for every user.
func (s *Service) Analytics(_ context.Context, _ string) *domain.Analytics {
	total := decimal.Zero
	for _, m := range monthlyRevenue {
		total = total.Add(decimal.NewFromFloat(m))
	}

	return &domain.Analytics{
		Revenue: domain.RevenueAnalytics{
			Total:   total.InexactFloat64(),
			Monthly: monthlyRevenue,
			Growth:  60,
		},
		Crops: domain.CropAnalytics{
			Diversity: 6,
			Yields: []domain.CropYield{
				{Name: "Rice", Current: 4.2, Target: 5.0, Unit: "tons/hectare"},
				{Name: "Wheat", Current: 3.8, Target: 4.5, Unit: "tons/hectare"},
				{Name: "Cotton", Current: 2.1, Target: 2.5, Unit: "tons/hectare"},
			},
		},
		Metrics: domain.FarmMetrics{
			LandUtilization: 87,
			WaterEfficiency: 76,
			ProfitMargin:    42,
		},
	}
}
