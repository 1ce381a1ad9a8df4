package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/collabster/backend/internal/models"
	"github.com/collabster/backend/internal/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProfileRepository is the single listing/lookup/update contract shared by
// every view (discovery, swipe, detail/edit).
type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID string) (*models.Profile, error)
	Upsert(ctx context.Context, p *models.Profile) error
	UpdateFields(ctx context.Context, userID string, changes map[string]any) error
	List(ctx context.Context, limit int, excludeUserID string) ([]models.Profile, error)
}

type profileRepo struct {
	db *gorm.DB
}

func NewProfileRepo(db *gorm.DB) ProfileRepository {
	return &profileRepo{db: db}
}

func (r *profileRepo) GetByUserID(ctx context.Context, userID string) (*models.Profile, error) {
	var p models.Profile
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Take(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	return &p, err
}

func (r *profileRepo) Upsert(ctx context.Context, p *models.Profile) error {
	// Identity columns (user_id, email, created_at) are set on insert only.
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "role", "city", "photo", "about", "phone", "tags", "portfolio", "updated_at"}),
		}).
		Create(p).Error
}

func (r *profileRepo) UpdateFields(ctx context.Context, userID string, changes map[string]any) error {
	if len(changes) == 0 {
		return nil
	}
	delete(changes, "user_id")
	delete(changes, "email")
	delete(changes, "created_at")
	changes["updated_at"] = time.Now().UTC()

	res := r.db.WithContext(ctx).
		Model(&models.Profile{}).
		Where("user_id = ?", userID).
		Updates(changes)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return utils.ErrNotFound
	}
	return nil
}

func (r *profileRepo) List(ctx context.Context, limit int, excludeUserID string) ([]models.Profile, error) {
	var out []models.Profile
	q := r.db.WithContext(ctx).Limit(limit)
	if excludeUserID != "" {
		q = q.Where("user_id <> ?", excludeUserID)
	}
	err := q.Find(&out).Error
	return out, err
}
