package store

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/ougirez/kisan/internal/domain"
	"github.com/ougirez/kisan/internal/pkg/constants"
	"github.com/ougirez/kisan/internal/pkg/store/xpgx"
)

var listingColumns = []string{"id", "user_id", "crop_id", "quantity", "price_per_unit", "location", "description", "is_active", "created_at"}

func (s *pgStore) GetAllListings(ctx context.Context) ([]*domain.Listing, error) {
	query := builder().Select(listingColumns...).
		From(tableListings).
		Where(sq.Eq{"is_active": true}).
		OrderBy("created_at desc")

	listings, err := xpgx.Selectx[domain.Listing](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}

	return listings, nil
}

func (s *pgStore) GetUserListings(ctx context.Context, userID string) ([]*domain.Listing, error) {
	query := builder().Select(listingColumns...).
		From(tableListings).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at desc")

	listings, err := xpgx.Selectx[domain.Listing](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}

	return listings, nil
}

func (s *pgStore) CreateListing(ctx context.Context, insert domain.InsertListing) (*domain.Listing, error) {
	listing := &domain.Listing{
		ID:           uuid.NewString(),
		UserID:       insert.UserID,
		CropID:       insert.CropID,
		Quantity:     insert.Quantity,
		PricePerUnit: insert.PricePerUnit,
		Location:     insert.Location,
		Description:  insert.Description,
		IsActive:     true,
		CreatedAt:    time.Now().UTC(),
	}

	query := builder().Insert(tableListings).
		Columns(listingColumns...).
		Values(listing.ID, listing.UserID, listing.CropID, listing.Quantity, listing.PricePerUnit,
			listing.Location, listing.Description, listing.IsActive, listing.CreatedAt)

	if _, err := s.pool.Execx(ctx, query); err != nil {
		return nil, wrapErr(err)
	}

	return listing, nil
}

func (s *pgStore) UpdateListing(ctx context.Context, id string, update domain.ListingUpdate) (*domain.Listing, error) {
	query := builder().Update(tableListings).Where(sq.Eq{"id": id})

	changed := false
	if update.CropID != nil {
		query = query.Set("crop_id", *update.CropID)
		changed = true
	}
	if update.Quantity != nil {
		query = query.Set("quantity", *update.Quantity)
		changed = true
	}
	if update.PricePerUnit != nil {
		query = query.Set("price_per_unit", *update.PricePerUnit)
		changed = true
	}
	if update.Location != nil {
		query = query.Set("location", *update.Location)
		changed = true
	}
	if update.Description != nil {
		query = query.Set("description", *update.Description)
		changed = true
	}
	if update.IsActive != nil {
		query = query.Set("is_active", *update.IsActive)
		changed = true
	}

	if changed {
		tag, err := s.pool.Execx(ctx, query)
		if err != nil {
			return nil, wrapErr(err)
		}
		if tag.RowsAffected() == 0 {
			return nil, constants.ErrNotFound
		}
	}

	selectQuery := builder().Select(listingColumns...).
		From(tableListings).
		Where(sq.Eq{"id": id})

	listing, err := xpgx.Getx[domain.Listing](ctx, s.pool, selectQuery)
	if err != nil {
		return nil, wrapErr(err)
	}

	return listing, nil
}
