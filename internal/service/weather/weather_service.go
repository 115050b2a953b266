package weather

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/ougirez/kisan/internal/domain"
	"github.com/ougirez/kisan/internal/pkg/store"
)

type Service struct {
	store store.Store
}

func NewService(store store.Store) *Service {
	return &Service{store: store}
}

// ActiveAlerts returns the stored active alerts for a location. When the
// store holds none, a single synthesized trilingual sample (valid 24h) is
// returned so the client always has something to render; the sample is
// not persisted.
func (svc *Service) ActiveAlerts(ctx context.Context, location string) ([]*domain.WeatherAlert, error) {
	alerts, err := svc.store.GetActiveWeatherAlerts(ctx, location)
	if err != nil {
		return nil, fmt.Errorf("store.GetActiveWeatherAlerts: %w", err)
	}

	if len(alerts) == 0 {
		alerts = []*domain.WeatherAlert{sampleAlert(location)}
	}

	return alerts, nil
}

func sampleAlert(location string) *domain.WeatherAlert {
	hindi := "अगले 24 घंटों में मध्यम वर्षा की संभावना"
	telugu := "రాబోయే 24 గంటల్లో మోస్తరు వర్షం అవకాశం"
	validUntil := time.Now().UTC().Add(24 * time.Hour)

	return &domain.WeatherAlert{
		Location:      location,
		AlertType:     "rain",
		Severity:      domain.SeverityMedium,
		Message:       "Moderate rainfall expected in the next 24 hours",
		MessageHindi:  &hindi,
		MessageTelugu: &telugu,
		ValidUntil:    &validUntil,
		CreatedAt:     time.Now().UTC(),
	}
}

var (
	conditions = []string{"Sunny", "Cloudy", "Rainy", "Partly Cloudy"}
	icons      = []string{"☀️", "☁️", "🌧️", "⛅"}
)

// Forecast synthesizes current conditions and seven daily entries. The
// values are plausible-looking noise, not meteorology.
func (svc *Service) Forecast(_ context.Context, location string) *domain.Forecast {
	daily := make([]domain.DayForecast, 0, 7)
	for i := 0; i < 7; i++ {
		pick := rand.Intn(len(conditions))
		daily = append(daily, domain.DayForecast{
			Date:          time.Now().AddDate(0, 0, i).Format("02/01/2006"),
			TempMax:       30 + rand.Float64()*5,
			TempMin:       20 + rand.Float64()*5,
			Condition:     conditions[pick],
			Precipitation: rand.Float64() * 100,
			Icon:          icons[pick],
		})
	}

	return &domain.Forecast{
		Location: location,
		Current: domain.CurrentConditions{
			Temperature: 28 + rand.Float64()*5,
			Humidity:    60 + rand.Float64()*20,
			WindSpeed:   10 + rand.Float64()*10,
			Condition:   "Partly Cloudy",
			Icon:        "⛅",
		},
		Daily: daily,
	}
}
