package store

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/ougirez/kisan/internal/domain"
	"github.com/ougirez/kisan/internal/pkg/store/xpgx"
)

var alertColumns = []string{"id", "location", "alert_type", "severity", "message", "message_hindi", "message_telugu", "valid_until", "created_at"}

func (s *pgStore) GetActiveWeatherAlerts(ctx context.Context, location string) ([]*domain.WeatherAlert, error) {
	query := builder().Select(alertColumns...).
		From(tableWeatherAlerts).
		Where(sq.And{
			sq.Eq{"location": location},
			sq.Or{
				sq.Eq{"valid_until": nil},
				sq.GtOrEq{"valid_until": time.Now().UTC()},
			},
		}).
		OrderBy("created_at desc")

	alerts, err := xpgx.Selectx[domain.WeatherAlert](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}

	return alerts, nil
}

func (s *pgStore) CreateWeatherAlert(ctx context.Context, insert domain.InsertWeatherAlert) (*domain.WeatherAlert, error) {
	alert := &domain.WeatherAlert{
		ID:            uuid.NewString(),
		Location:      insert.Location,
		AlertType:     insert.AlertType,
		Severity:      insert.Severity,
		Message:       insert.Message,
		MessageHindi:  insert.MessageHindi,
		MessageTelugu: insert.MessageTelugu,
		ValidUntil:    insert.ValidUntil,
		CreatedAt:     time.Now().UTC(),
	}

	query := builder().Insert(tableWeatherAlerts).
		Columns(alertColumns...).
		Values(alert.ID, alert.Location, alert.AlertType, alert.Severity, alert.Message,
			alert.MessageHindi, alert.MessageTelugu, alert.ValidUntil, alert.CreatedAt)

	if _, err := s.pool.Execx(ctx, query); err != nil {
		return nil, wrapErr(err)
	}

	return alert, nil
}
