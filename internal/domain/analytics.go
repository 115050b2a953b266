package domain

// Analytics is the synthesized farm-performance payload; the numbers are
// illustrative, not computed from stored data.
type Analytics struct {
	Revenue RevenueAnalytics `json:"revenue"`
	Crops   CropAnalytics    `json:"crops"`
	Metrics FarmMetrics      `json:"metrics"`
}

type RevenueAnalytics struct {
	Total   float64   `json:"total"`
	Monthly []float64 `json:"monthly"`
	Growth  float64   `json:"growth"`
}

type CropYield struct {
	Name    string  `json:"name"`
	Current float64 `json:"current"`
	Target  float64 `json:"target"`
	Unit    string  `json:"unit"`
}

type CropAnalytics struct {
	Diversity int         `json:"diversity"`
	Yields    []CropYield `json:"yields"`
}

type FarmMetrics struct {
	LandUtilization float64 `json:"landUtilization"`
	WaterEfficiency float64 `json:"waterEfficiency"`
	ProfitMargin    float64 `json:"profitMargin"`
}
