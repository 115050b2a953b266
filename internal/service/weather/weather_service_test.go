package weather

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ougirez/kisan/internal/domain"
	"github.com/ougirez/kisan/internal/pkg/store"
)

func TestActiveAlertsFallsBackToSample(t *testing.T) {
	st := store.NewMemoryStore()
	svc := NewService(st)
	ctx := context.Background()

	alerts, err := svc.ActiveAlerts(ctx, "Guntur")
	require.NoError(t, err)
	require.Len(t, alerts, 1)

	sample := alerts[0]
	require.Equal(t, "Guntur", sample.Location)
	require.Equal(t, domain.SeverityMedium, sample.Severity)
	require.NotNil(t, sample.MessageHindi)
	require.NotNil(t, sample.MessageTelugu)

	// The sample is synthesized per request, never written to the store.
	stored, err := st.GetActiveWeatherAlerts(ctx, "Guntur")
	require.NoError(t, err)
	require.Empty(t, stored)
}

func TestActiveAlertsPrefersStored(t *testing.T) {
	st := store.NewMemoryStore()
	svc := NewService(st)
	ctx := context.Background()

	created, err := st.CreateWeatherAlert(ctx, domain.InsertWeatherAlert{
		Location:  "Guntur",
		AlertType: "heatwave",
		Severity:  domain.SeverityHigh,
		Message:   "Temperatures above 42C expected",
	})
	require.NoError(t, err)

	alerts, err := svc.ActiveAlerts(ctx, "Guntur")
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	require.Equal(t, created.ID, alerts[0].ID)
	require.Equal(t, "heatwave", alerts[0].AlertType)
}

func TestForecastShape(t *testing.T) {
	svc := NewService(store.NewMemoryStore())

	forecast := svc.Forecast(context.Background(), "Warangal")
	require.Equal(t, "Warangal", forecast.Location)
	require.Len(t, forecast.Daily, 7)

	for _, day := range forecast.Daily {
		require.NotEmpty(t, day.Date)
		require.Greater(t, day.TempMax, day.TempMin)
		require.Contains(t, conditions, day.Condition)
	}
}
