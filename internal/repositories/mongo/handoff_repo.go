package mongo

import (
	"context"
	"errors"
	"time"

	"github.com/collabster/backend/internal/models"
	"github.com/collabster/backend/internal/utils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type HandoffRepository interface {
	Put(ctx context.Context, h *models.Handoff) error
	Take(ctx context.Context, token string) (*models.Handoff, error)
}

type handoffRepo struct {
	col *mongo.Collection
}

func NewHandoffRepo(db *mongo.Database) HandoffRepository {
	return &handoffRepo{col: db.Collection("handoffs")}
}

func (r *handoffRepo) Put(ctx context.Context, h *models.Handoff) error {
	if h.CreatedAt.IsZero() {
		h.CreatedAt = time.Now().UTC()
	}
	_, err := r.col.InsertOne(ctx, h)
	return err
}

// Take consumes a handoff: single use, like the navigation state it mirrors.
func (r *handoffRepo) Take(ctx context.Context, token string) (*models.Handoff, error) {
	var h models.Handoff
	err := r.col.FindOneAndDelete(ctx, bson.M{"token": token}).Decode(&h)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, utils.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if time.Now().UTC().After(h.ExpiresAt) {
		// Mongo TTL sweeps lag; treat an expired doc as already gone.
		return nil, utils.ErrNotFound
	}
	return &h, nil
}
