package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/ougirez/kisan/internal/domain"
	"github.com/ougirez/kisan/internal/pkg/store/xpgx"
)

var cropColumns = []string{"id", "name", "name_hindi", "name_telugu", "category", "current_price", "unit"}

func (s *pgStore) GetAllCrops(ctx context.Context) ([]*domain.Crop, error) {
	query := builder().Select(cropColumns...).
		From(tableCrops).
		OrderBy("name")

	crops, err := xpgx.Selectx[domain.Crop](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}

	return crops, nil
}

func (s *pgStore) GetCrop(ctx context.Context, id string) (*domain.Crop, error) {
	query := builder().Select(cropColumns...).
		From(tableCrops).
		Where(sq.Eq{"id": id})

	crop, err := xpgx.Getx[domain.Crop](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}

	return crop, nil
}

func (s *pgStore) CreateCrop(ctx context.Context, insert domain.InsertCrop) (*domain.Crop, error) {
	crop := &domain.Crop{
		ID:           uuid.NewString(),
		Name:         insert.Name,
		NameHindi:    insert.NameHindi,
		NameTelugu:   insert.NameTelugu,
		Category:     insert.Category,
		CurrentPrice: insert.CurrentPrice,
		Unit:         insert.Unit,
	}
	if crop.Unit == "" {
		crop.Unit = domain.DefaultUnit
	}

	query := builder().Insert(tableCrops).
		Columns(cropColumns...).
		Values(crop.ID, crop.Name, crop.NameHindi, crop.NameTelugu, crop.Category, crop.CurrentPrice, crop.Unit)

	if _, err := s.pool.Execx(ctx, query); err != nil {
		return nil, wrapErr(err)
	}

	return crop, nil
}
