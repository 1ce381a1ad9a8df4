package services

import (
	"context"
	"time"

	"github.com/collabster/backend/internal/cache"
	"github.com/collabster/backend/internal/models"
	"github.com/collabster/backend/internal/phone"
	"github.com/collabster/backend/internal/utils"
)

// cursorTTL bounds how long an idle swipe session keeps its position; after
// expiry the deck starts over, matching the original's reset-on-reload.
const cursorTTL = 30 * time.Minute

// LikeResult is everything the confirmation dialog needs. Likes are never
// persisted.
type LikeResult struct {
	Profile     *models.Profile `json:"profile"`
	ContactLink string          `json:"contact_link,omitempty"`
}

type SwipeService interface {
	Deck(ctx context.Context, userID string, limit int) ([]models.Profile, int, error)
	Skip(ctx context.Context, userID string, deckSize int) (int, error)
	Like(ctx context.Context, userID, targetUserID string) (*LikeResult, error)
	Reset(ctx context.Context, userID string) error
}

type swipeService struct {
	listing  DiscoverService
	profiles ProfileService
	cache    cache.Cache
	phones   phone.Formatter
}

func NewSwipeService(listing DiscoverService, profiles ProfileService, c cache.Cache, phones phone.Formatter) SwipeService {
	return &swipeService{listing: listing, profiles: profiles, cache: c, phones: phones}
}

func (s *swipeService) Deck(ctx context.Context, userID string, limit int) ([]models.Profile, int, error) {
	deck, err := s.listing.List(ctx, userID, limit, "")
	if err != nil {
		return nil, 0, err
	}
	cur := 0
	if s.cache != nil {
		var stored int
		if hit, _ := s.cache.GetJSON(ctx, cursorKey(userID), &stored); hit {
			cur = stored
		}
	}
	if len(deck) > 0 {
		cur = cur % len(deck)
	} else {
		cur = 0
	}
	return deck, cur, nil
}

func (s *swipeService) Skip(ctx context.Context, userID string, deckSize int) (int, error) {
	const op = "SwipeService.Skip"

	if deckSize <= 0 {
		return 0, utils.E(utils.CodeInvalidArgument, op, "deck is empty", nil)
	}
	cur := 0
	if s.cache != nil {
		var stored int
		if hit, _ := s.cache.GetJSON(ctx, cursorKey(userID), &stored); hit {
			cur = stored
		}
	}
	next := NextCursor(cur, deckSize)
	if s.cache != nil {
		if err := s.cache.SetJSON(ctx, cursorKey(userID), next, cursorTTL); err != nil {
			return 0, utils.E(utils.CodeUnavailable, op, "failed to store cursor", err)
		}
	}
	return next, nil
}

func (s *swipeService) Like(ctx context.Context, userID, targetUserID string) (*LikeResult, error) {
	const op = "SwipeService.Like"

	if targetUserID == "" || targetUserID == userID {
		return nil, utils.E(utils.CodeInvalidArgument, op, "target user is required", nil)
	}
	p, err := s.profiles.Get(ctx, targetUserID)
	if err != nil {
		return nil, err
	}
	res := &LikeResult{Profile: p}
	if p.Phone != "" && s.phones != nil {
		if n, err := s.phones.Format(p.Phone); err == nil {
			res.ContactLink = phone.WhatsAppLink(n)
		}
	}
	return res, nil
}

func (s *swipeService) Reset(ctx context.Context, userID string) error {
	if s.cache == nil {
		return nil
	}
	return s.cache.Del(ctx, cursorKey(userID))
}

// NextCursor advances cyclically: the card after the last one is the first.
func NextCursor(cur, size int) int {
	if size <= 0 {
		return 0
	}
	if cur < 0 {
		cur = 0
	}
	return (cur + 1) % size
}

func cursorKey(userID string) string { return "swipe:cursor:" + userID }
