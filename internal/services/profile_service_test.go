package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/collabster/backend/internal/models"
)

func strp(s string) *string { return &s }

func TestUpdateOwnMergesPartially(t *testing.T) {
	repo := newFakeProfileRepo(models.Profile{
		UserID:    "u1",
		Email:     "ann@example.com",
		Name:      "Ann",
		About:     "old about",
		Phone:     "111",
		Tags:      []string{"studio"},
		Portfolio: []string{"https://p/1.jpg", "https://p/2.jpg"},
	})
	svc := NewProfileService(repo)

	p, err := svc.UpdateOwn(context.Background(), "u1", "ann@example.com", models.ProfileUpdate{
		About: strp("new about"),
	})
	require.NoError(t, err)
	assert.Equal(t, "new about", p.About)

	// fields absent from the update stay untouched, in the returned copy
	// and in the stored row
	stored, err := repo.GetByUserID(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "Ann", stored.Name)
	assert.Equal(t, "111", stored.Phone)
	assert.Equal(t, []string{"studio"}, []string(stored.Tags))
	assert.Equal(t, []string{"https://p/1.jpg", "https://p/2.jpg"}, []string(stored.Portfolio))
	assert.Equal(t, "new about", stored.About)
}

func TestUpdateOwnNeverTouchesIdentity(t *testing.T) {
	repo := newFakeProfileRepo(models.Profile{UserID: "u1", Email: "ann@example.com"})
	svc := NewProfileService(repo)

	_, err := svc.UpdateOwn(context.Background(), "u1", "ann@example.com", models.ProfileUpdate{
		Name: strp("Ann"),
	})
	require.NoError(t, err)

	require.Len(t, repo.updates, 1)
	assert.NotContains(t, repo.updates[0], "user_id")
	assert.NotContains(t, repo.updates[0], "email")
	assert.NotContains(t, repo.updates[0], "created_at")
	assert.Contains(t, repo.updates[0], "updated_at")
}

func TestUpdateOwnEmptyUpdateIsNoop(t *testing.T) {
	repo := newFakeProfileRepo(models.Profile{UserID: "u1", Email: "ann@example.com"})
	svc := NewProfileService(repo)

	_, err := svc.UpdateOwn(context.Background(), "u1", "ann@example.com", models.ProfileUpdate{})
	require.NoError(t, err)
	assert.Empty(t, repo.updates)
}

func TestGetOwnCreatesLazily(t *testing.T) {
	repo := newFakeProfileRepo()
	svc := NewProfileService(repo)

	p, err := svc.GetOwn(context.Background(), "u1", "ann@example.com")
	require.NoError(t, err)
	assert.Equal(t, "u1", p.UserID)
	assert.Equal(t, "ann@example.com", p.Email)
	assert.Equal(t, "ann", p.Name, "name defaults to the email local part")
	assert.Equal(t, models.DefaultPhotoURL, p.Photo)
	assert.NotNil(t, p.Tags)
	assert.NotNil(t, p.Portfolio)
	assert.False(t, p.CreatedAt.IsZero())

	// second read returns the stored row, no second create
	again, err := svc.GetOwn(context.Background(), "u1", "ann@example.com")
	require.NoError(t, err)
	assert.Equal(t, p.UserID, again.UserID)
}

func TestRemovePortfolioURL(t *testing.T) {
	repo := newFakeProfileRepo(models.Profile{
		UserID:    "u1",
		Email:     "ann@example.com",
		Portfolio: []string{"https://p/1.jpg", "https://p/2.jpg"},
	})
	svc := NewProfileService(repo)

	p, err := svc.RemovePortfolioURL(context.Background(), "u1", "ann@example.com", "https://p/1.jpg")
	require.NoError(t, err)
	assert.Equal(t, []string{"https://p/2.jpg"}, []string(p.Portfolio))
}

func TestRemoveAbsentPortfolioURLIsNoop(t *testing.T) {
	repo := newFakeProfileRepo(models.Profile{
		UserID:    "u1",
		Email:     "ann@example.com",
		Portfolio: []string{"https://p/1.jpg"},
	})
	svc := NewProfileService(repo)

	p, err := svc.RemovePortfolioURL(context.Background(), "u1", "ann@example.com", "https://p/ghost.jpg")
	require.NoError(t, err)
	assert.Equal(t, []string{"https://p/1.jpg"}, []string(p.Portfolio))
	assert.Empty(t, repo.updates, "a miss writes nothing")
}

func TestAppendPortfolio(t *testing.T) {
	repo := newFakeProfileRepo(models.Profile{
		UserID:    "u1",
		Email:     "ann@example.com",
		Portfolio: []string{"https://p/1.jpg"},
	})
	svc := NewProfileService(repo)

	p, err := svc.AppendPortfolio(context.Background(), "u1", "ann@example.com", []string{"https://p/2.jpg", "https://p/3.jpg"})
	require.NoError(t, err)
	assert.Equal(t, []string{"https://p/1.jpg", "https://p/2.jpg", "https://p/3.jpg"}, []string(p.Portfolio))
}
