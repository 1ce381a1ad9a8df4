package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/collabster/backend/internal/models"
	pgrepo "github.com/collabster/backend/internal/repositories/postgres"
	"github.com/collabster/backend/internal/utils"
)

type SignUpInput struct {
	Email    string
	Password string

	// ExistingUserID is set when the request already carries a valid
	// session; sign-up then reuses that identity instead of creating a
	// duplicate credential.
	ExistingUserID string

	Name  string
	Role  string
	City  string
	Phone string
	About string
	Tags  []string
	Photo string
}

type AuthService interface {
	SignUp(ctx context.Context, in SignUpInput) (*models.Account, *models.Profile, error)
	SignIn(ctx context.Context, email, password string) (*models.Account, error)
	Account(ctx context.Context, userID string) (*models.Account, error)
}

type authService struct {
	accounts pgrepo.AccountRepository
	profiles ProfileService
}

func NewAuthService(accounts pgrepo.AccountRepository, profiles ProfileService) AuthService {
	return &authService{accounts: accounts, profiles: profiles}
}

func (s *authService) SignUp(ctx context.Context, in SignUpInput) (*models.Account, *models.Profile, error) {
	const op = "AuthService.SignUp"

	var acct *models.Account
	if in.ExistingUserID != "" {
		existing, err := s.accounts.GetByID(ctx, in.ExistingUserID)
		if err != nil {
			if errors.Is(err, utils.ErrNotFound) {
				return nil, nil, utils.E(utils.CodeUnauthorized, op, "session identity no longer exists", err)
			}
			return nil, nil, utils.E(utils.CodeInternal, op, "failed to load account", err)
		}
		acct = existing
	} else {
		email := strings.TrimSpace(strings.ToLower(in.Email))
		if email == "" || in.Password == "" {
			return nil, nil, utils.E(utils.CodeInvalidArgument, op, "email and password are required", nil)
		}
		if _, err := s.accounts.GetByEmail(ctx, email); err == nil {
			return nil, nil, utils.E(utils.CodeConflict, op, "email already registered", utils.ErrEmailExists)
		} else if !errors.Is(err, utils.ErrNotFound) {
			return nil, nil, utils.E(utils.CodeInternal, op, "failed to check email", err)
		}

		hash, err := utils.HashPassword(in.Password)
		if err != nil {
			return nil, nil, utils.E(utils.CodeInternal, op, "failed to hash password", err)
		}
		acct = &models.Account{
			ID:           uuid.NewString(),
			Email:        email,
			PasswordHash: hash,
			CreatedAt:    time.Now().UTC(),
		}
		if err := s.accounts.Create(ctx, acct); err != nil {
			if errors.Is(err, utils.ErrEmailExists) {
				return nil, nil, utils.E(utils.CodeConflict, op, "email already registered", err)
			}
			return nil, nil, utils.E(utils.CodeInternal, op, "failed to create account", err)
		}
	}

	photo := in.Photo
	if photo == "" {
		photo = models.DefaultPhotoURL
	}
	profile := &models.Profile{
		UserID:    acct.ID,
		Email:     acct.Email,
		Name:      in.Name,
		Role:      in.Role,
		City:      in.City,
		Phone:     in.Phone,
		About:     in.About,
		Tags:      in.Tags,
		Photo:     photo,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
	saved, err := s.profiles.Create(ctx, profile)
	if err != nil {
		return nil, nil, err
	}
	return acct, saved, nil
}

func (s *authService) SignIn(ctx context.Context, email, password string) (*models.Account, error) {
	const op = "AuthService.SignIn"

	email = strings.TrimSpace(strings.ToLower(email))
	acct, err := s.accounts.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeUnauthorized, op, "invalid email or password", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to load account", err)
	}
	if err := utils.CheckPassword(acct.PasswordHash, password); err != nil {
		return nil, utils.E(utils.CodeUnauthorized, op, "invalid email or password", err)
	}

	now := time.Now().UTC()
	if err := s.accounts.TouchSignIn(ctx, acct.ID, now); err == nil {
		acct.LastSignInAt = now
	}
	return acct, nil
}

func (s *authService) Account(ctx context.Context, userID string) (*models.Account, error) {
	const op = "AuthService.Account"

	if userID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "user_id is required", nil)
	}
	acct, err := s.accounts.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "account not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to load account", err)
	}
	return acct, nil
}
