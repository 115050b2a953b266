package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/ougirez/kisan/internal/domain"
	"github.com/ougirez/kisan/internal/pkg/constants"
	"github.com/ougirez/kisan/internal/pkg/logger"
	"github.com/ougirez/kisan/internal/pkg/store"
)

type Service struct {
	store store.Store
}

func NewService(store store.Store) *Service {
	return &Service{store: store}
}

// Register creates a user with a bcrypt password hash. Duplicate
// usernames are rejected before the insert; the unique constraint on the
// persistent backend is only a backstop.
func (svc *Service) Register(ctx context.Context, request *domain.RegisterRequest) (*domain.User, error) {
	if _, err := svc.store.GetUserByUsername(ctx, request.Username); !errors.Is(err, constants.ErrNotFound) {
		if err == nil {
			return nil, constants.ErrUsernameTaken
		}
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("bcrypt: %w", err)
	}

	language := request.Language
	if language == "" {
		language = domain.LanguageEnglish
	}

	user, err := svc.store.CreateUser(ctx, domain.InsertUser{
		Username:     request.Username,
		PasswordHash: string(hash),
		Phone:        request.Phone,
		Location:     request.Location,
		Language:     language,
	})
	if err != nil {
		return nil, fmt.Errorf("store.CreateUser: %w", err)
	}

	logger.Infof(ctx, "registered user %s", user.ID)
	return user, nil
}

// Login verifies credentials with a constant-time bcrypt compare. Unknown
// user and wrong password are indistinguishable to the caller.
func (svc *Service) Login(ctx context.Context, request *domain.LoginRequest) (*domain.User, error) {
	user, err := svc.store.GetUserByUsername(ctx, request.Username)
	if err != nil {
		if errors.Is(err, constants.ErrNotFound) {
			return nil, constants.ErrInvalidCreds
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(request.Password)); err != nil {
		return nil, constants.ErrInvalidCreds
	}

	logger.Debugf(ctx, "login: userID: [%v]", user.ID)
	return user, nil
}
