package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/collabster/backend/internal/cache"
	"github.com/collabster/backend/internal/models"
	mongorepo "github.com/collabster/backend/internal/repositories/mongo"
	pgrepo "github.com/collabster/backend/internal/repositories/postgres"
	"github.com/collabster/backend/internal/utils"
)

const (
	// MaxPageSize caps every listing; the two original screens disagreed
	// (100 vs 20), so the contract is one configurable limit with this cap.
	MaxPageSize     = 100
	DefaultPageSize = 100

	pageCacheTTL = 30 * time.Second
	handoffTTL   = 5 * time.Minute
)

// DiscoverService is the one listing contract behind the discovery, swipe
// and detail views.
type DiscoverService interface {
	List(ctx context.Context, requesterID string, limit int, query string) ([]models.Profile, error)
	CreateHandoff(ctx context.Context, targetUserID string) (*models.Handoff, error)
	TakeHandoff(ctx context.Context, token string) (*models.Profile, error)
}

type discoverService struct {
	profiles pgrepo.ProfileRepository
	handoffs mongorepo.HandoffRepository
	cache    cache.Cache
}

func NewDiscoverService(profiles pgrepo.ProfileRepository, handoffs mongorepo.HandoffRepository, c cache.Cache) DiscoverService {
	return &discoverService{profiles: profiles, handoffs: handoffs, cache: c}
}

func (s *discoverService) List(ctx context.Context, requesterID string, limit int, query string) ([]models.Profile, error) {
	const op = "DiscoverService.List"

	limit = ClampLimit(limit)

	// The cached page is requester-agnostic; self-exclusion and filtering
	// happen after the fetch.
	key := fmt.Sprintf("profiles:page:%d", MaxPageSize)
	var page []models.Profile
	hit := false
	if s.cache != nil {
		hit, _ = s.cache.GetJSON(ctx, key, &page)
	}
	if !hit {
		var err error
		page, err = s.profiles.List(ctx, MaxPageSize, "")
		if err != nil {
			return nil, utils.E(utils.CodeInternal, op, "failed to list profiles", err)
		}
		if s.cache != nil {
			_ = s.cache.SetJSON(ctx, key, page, pageCacheTTL)
		}
	}

	out := FilterProfiles(ExcludeUser(page, requesterID), query)
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *discoverService) CreateHandoff(ctx context.Context, targetUserID string) (*models.Handoff, error) {
	const op = "DiscoverService.CreateHandoff"

	p, err := s.profiles.GetByUserID(ctx, targetUserID)
	if err != nil {
		return nil, utils.E(utils.CodeNotFound, op, "profile not found", err)
	}
	h := &models.Handoff{
		Token:     uuid.NewString(),
		Profile:   *p,
		CreatedAt: time.Now().UTC(),
		ExpiresAt: time.Now().UTC().Add(handoffTTL),
	}
	if err := s.handoffs.Put(ctx, h); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to store handoff", err)
	}
	return h, nil
}

func (s *discoverService) TakeHandoff(ctx context.Context, token string) (*models.Profile, error) {
	const op = "DiscoverService.TakeHandoff"

	if token == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "token is required", nil)
	}
	h, err := s.handoffs.Take(ctx, token)
	if err != nil {
		return nil, utils.E(utils.CodeNotFound, op, "handoff expired or already used", err)
	}
	return &h.Profile, nil
}

// ClampLimit normalizes a caller-supplied page size.
func ClampLimit(limit int) int {
	if limit <= 0 {
		return DefaultPageSize
	}
	if limit > MaxPageSize {
		return MaxPageSize
	}
	return limit
}

// ExcludeUser drops the requester's own profile from a listing.
func ExcludeUser(in []models.Profile, userID string) []models.Profile {
	if userID == "" {
		return in
	}
	out := make([]models.Profile, 0, len(in))
	for _, p := range in {
		if p.UserID != userID {
			out = append(out, p)
		}
	}
	return out
}

// FilterProfiles keeps profiles whose name, role or any tag contains the
// query as a case-insensitive substring. An empty query keeps everything.
func FilterProfiles(in []models.Profile, query string) []models.Profile {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return in
	}
	out := make([]models.Profile, 0, len(in))
	for _, p := range in {
		if profileMatches(p, q) {
			out = append(out, p)
		}
	}
	return out
}

func profileMatches(p models.Profile, q string) bool {
	if strings.Contains(strings.ToLower(p.Name), q) {
		return true
	}
	if strings.Contains(strings.ToLower(p.Role), q) {
		return true
	}
	for _, t := range p.Tags {
		if strings.Contains(strings.ToLower(t), q) {
			return true
		}
	}
	return false
}
