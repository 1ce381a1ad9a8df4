package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/collabster/backend/internal/models"
	"github.com/collabster/backend/internal/phone"
)

func TestNextCursorWrapsAround(t *testing.T) {
	// N skips over a deck of N cards lands back on the first card
	const n = 5
	cur := 0
	for i := 0; i < n; i++ {
		cur = NextCursor(cur, n)
	}
	assert.Equal(t, 0, cur)

	assert.Equal(t, 0, NextCursor(0, 1))
	assert.Equal(t, 0, NextCursor(3, 0))
}

func newSwipeFixture(profiles ...models.Profile) (SwipeService, *fakeCache) {
	repo := newFakeProfileRepo(profiles...)
	c := newFakeCache()
	listing := NewDiscoverService(repo, newFakeHandoffRepo(), c)
	profileSvc := NewProfileService(repo)
	return NewSwipeService(listing, profileSvc, c, phone.ForLocale("ru")), c
}

func TestSwipeSkipCycles(t *testing.T) {
	svc, _ := newSwipeFixture(
		models.Profile{UserID: "u1"},
		models.Profile{UserID: "u2"},
		models.Profile{UserID: "u3"},
	)
	ctx := context.Background()

	deck, cursor, err := svc.Deck(ctx, "me", 10)
	require.NoError(t, err)
	require.Len(t, deck, 3)
	assert.Equal(t, 0, cursor)

	for want := 1; want < 3; want++ {
		got, err := svc.Skip(ctx, "me", len(deck))
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	got, err := svc.Skip(ctx, "me", len(deck))
	require.NoError(t, err)
	assert.Equal(t, 0, got, "cursor wraps from the last card to the first")
}

func TestSwipeCursorSurvivesDeckReload(t *testing.T) {
	svc, _ := newSwipeFixture(models.Profile{UserID: "u1"}, models.Profile{UserID: "u2"})
	ctx := context.Background()

	_, err := svc.Skip(ctx, "me", 2)
	require.NoError(t, err)

	_, cursor, err := svc.Deck(ctx, "me", 10)
	require.NoError(t, err)
	assert.Equal(t, 1, cursor)
}

func TestSwipeReset(t *testing.T) {
	svc, _ := newSwipeFixture(models.Profile{UserID: "u1"}, models.Profile{UserID: "u2"})
	ctx := context.Background()

	_, err := svc.Skip(ctx, "me", 2)
	require.NoError(t, err)
	require.NoError(t, svc.Reset(ctx, "me"))

	_, cursor, err := svc.Deck(ctx, "me", 10)
	require.NoError(t, err)
	assert.Equal(t, 0, cursor)
}

func TestSwipeSkipEmptyDeck(t *testing.T) {
	svc, _ := newSwipeFixture()
	_, err := svc.Skip(context.Background(), "me", 0)
	assert.Error(t, err)
}

func TestSwipeLike(t *testing.T) {
	svc, _ := newSwipeFixture(models.Profile{UserID: "u1", Name: "Ann", Phone: "89991234567"})

	res, err := svc.Like(context.Background(), "me", "u1")
	require.NoError(t, err)
	assert.Equal(t, "Ann", res.Profile.Name)
	assert.Equal(t, "https://wa.me/+79991234567", res.ContactLink)
}

func TestSwipeLikeWithoutPhone(t *testing.T) {
	svc, _ := newSwipeFixture(models.Profile{UserID: "u1", Name: "Ann"})

	res, err := svc.Like(context.Background(), "me", "u1")
	require.NoError(t, err)
	assert.Empty(t, res.ContactLink)
}

func TestSwipeLikeSelf(t *testing.T) {
	svc, _ := newSwipeFixture(models.Profile{UserID: "me"})
	_, err := svc.Like(context.Background(), "me", "me")
	assert.Error(t, err)
}
