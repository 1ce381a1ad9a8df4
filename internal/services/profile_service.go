package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/collabster/backend/internal/models"
	pgrepo "github.com/collabster/backend/internal/repositories/postgres"
	"github.com/collabster/backend/internal/utils"
)

type ProfileService interface {
	// GetOwn returns the caller's profile, creating it with defaults on
	// first read if absent.
	GetOwn(ctx context.Context, userID, email string) (*models.Profile, error)
	Get(ctx context.Context, userID string) (*models.Profile, error)
	Create(ctx context.Context, p *models.Profile) (*models.Profile, error)
	UpdateOwn(ctx context.Context, userID, email string, upd models.ProfileUpdate) (*models.Profile, error)
	AppendPortfolio(ctx context.Context, userID, email string, urls []string) (*models.Profile, error)
	RemovePortfolioURL(ctx context.Context, userID, email, url string) (*models.Profile, error)
}

type profileService struct {
	profiles pgrepo.ProfileRepository
}

func NewProfileService(profiles pgrepo.ProfileRepository) ProfileService {
	return &profileService{profiles: profiles}
}

func (s *profileService) Get(ctx context.Context, userID string) (*models.Profile, error) {
	const op = "ProfileService.Get"

	if userID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "user_id is required", nil)
	}
	p, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "profile not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to get profile", err)
	}
	return p, nil
}

func (s *profileService) GetOwn(ctx context.Context, userID, email string) (*models.Profile, error) {
	const op = "ProfileService.GetOwn"

	if userID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "user_id is required", nil)
	}
	p, err := s.profiles.GetByUserID(ctx, userID)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, utils.ErrNotFound) {
		return nil, utils.E(utils.CodeInternal, op, "failed to get profile", err)
	}
	return s.Create(ctx, defaultProfile(userID, email))
}

func (s *profileService) Create(ctx context.Context, p *models.Profile) (*models.Profile, error) {
	const op = "ProfileService.Create"

	if p == nil || p.UserID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "profile.user_id is required", nil)
	}
	if p.Photo == "" {
		p.Photo = models.DefaultPhotoURL
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}
	if p.Portfolio == nil {
		p.Portfolio = []string{}
	}
	now := time.Now().UTC()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now
	if err := s.profiles.Upsert(ctx, p); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to upsert profile", err)
	}
	return p, nil
}

func (s *profileService) UpdateOwn(ctx context.Context, userID, email string, upd models.ProfileUpdate) (*models.Profile, error) {
	const op = "ProfileService.UpdateOwn"

	p, err := s.GetOwn(ctx, userID, email)
	if err != nil {
		return nil, err
	}
	changes := upd.Changes()
	if len(changes) == 0 {
		return p, nil
	}
	if err := s.profiles.UpdateFields(ctx, userID, changes); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to update profile", err)
	}
	// keep the in-memory copy in step with the stored row
	upd.Apply(p)
	p.UpdatedAt = time.Now().UTC()
	return p, nil
}

func (s *profileService) AppendPortfolio(ctx context.Context, userID, email string, urls []string) (*models.Profile, error) {
	if len(urls) == 0 {
		return s.GetOwn(ctx, userID, email)
	}
	p, err := s.GetOwn(ctx, userID, email)
	if err != nil {
		return nil, err
	}
	merged := append([]string(p.Portfolio), urls...)
	return s.UpdateOwn(ctx, userID, email, models.ProfileUpdate{Portfolio: &merged})
}

// RemovePortfolioURL drops one URL from the portfolio. A URL that is not in
// the list is a no-op, not an error.
func (s *profileService) RemovePortfolioURL(ctx context.Context, userID, email, url string) (*models.Profile, error) {
	p, err := s.GetOwn(ctx, userID, email)
	if err != nil {
		return nil, err
	}
	kept := make([]string, 0, len(p.Portfolio))
	for _, u := range p.Portfolio {
		if u != url {
			kept = append(kept, u)
		}
	}
	if len(kept) == len(p.Portfolio) {
		return p, nil
	}
	return s.UpdateOwn(ctx, userID, email, models.ProfileUpdate{Portfolio: &kept})
}

func defaultProfile(userID, email string) *models.Profile {
	name := email
	if i := strings.Index(email, "@"); i > 0 {
		name = email[:i]
	}
	return &models.Profile{
		UserID:    userID,
		Email:     email,
		Name:      name,
		Photo:     models.DefaultPhotoURL,
		Tags:      []string{},
		Portfolio: []string{},
	}
}
