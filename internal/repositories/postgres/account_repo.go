package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/collabster/backend/internal/models"
	"github.com/collabster/backend/internal/utils"
	"gorm.io/gorm"
)

type AccountRepository interface {
	Create(ctx context.Context, a *models.Account) error
	GetByEmail(ctx context.Context, email string) (*models.Account, error)
	GetByID(ctx context.Context, id string) (*models.Account, error)
	TouchSignIn(ctx context.Context, id string, at time.Time) error
}

type accountRepo struct {
	db *gorm.DB
}

func NewAccountRepo(db *gorm.DB) AccountRepository {
	return &accountRepo{db: db}
}

func (r *accountRepo) Create(ctx context.Context, a *models.Account) error {
	err := r.db.WithContext(ctx).Create(a).Error
	if err != nil && errors.Is(err, gorm.ErrDuplicatedKey) {
		return utils.ErrEmailExists
	}
	return err
}

func (r *accountRepo) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	var a models.Account
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		Take(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	return &a, err
}

func (r *accountRepo) GetByID(ctx context.Context, id string) (*models.Account, error) {
	var a models.Account
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		Take(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	return &a, err
}

func (r *accountRepo) TouchSignIn(ctx context.Context, id string, at time.Time) error {
	return r.db.WithContext(ctx).
		Model(&models.Account{}).
		Where("id = ?", id).
		Update("last_sign_in_at", at.UTC()).Error
}
