package store

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/ougirez/kisan/internal/domain"
	"github.com/ougirez/kisan/internal/pkg/store/xpgx"
)

var userColumns = []string{"id", "username", "password_hash", "phone", "location", "language", "created_at"}

func (s *pgStore) GetUser(ctx context.Context, id string) (*domain.User, error) {
	query := builder().Select(userColumns...).
		From(tableUsers).
		Where(sq.Eq{"id": id})

	user, err := xpgx.Getx[domain.User](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}

	return user, nil
}

func (s *pgStore) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := builder().Select(userColumns...).
		From(tableUsers).
		Where(sq.Eq{"username": username})

	user, err := xpgx.Getx[domain.User](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}

	return user, nil
}

func (s *pgStore) CreateUser(ctx context.Context, insert domain.InsertUser) (*domain.User, error) {
	user := &domain.User{
		ID:           uuid.NewString(),
		Username:     insert.Username,
		PasswordHash: insert.PasswordHash,
		Phone:        insert.Phone,
		Location:     insert.Location,
		Language:     insert.Language,
		CreatedAt:    time.Now().UTC(),
	}
	if user.Language == "" {
		user.Language = domain.LanguageEnglish
	}

	query := builder().Insert(tableUsers).
		Columns(userColumns...).
		Values(user.ID, user.Username, user.PasswordHash, user.Phone, user.Location, user.Language, user.CreatedAt)

	if _, err := s.pool.Execx(ctx, query); err != nil {
		return nil, wrapErr(err)
	}

	return user, nil
}
