package repository

import (
	"context"
	"errors"
	"fmt"

	"food-ordering/internal/data/entity"
	"food-ordering/pkg/database"

	"go.uber.org/zap"
)

var (
	ErrDuplicateEmail  = errors.New("email already registered")
	ErrDuplicateReview = errors.New("review already exists")
	ErrUserNotFound    = errors.New("user not found")
	ErrUserHasOrders   = errors.New("user is referenced by orders")
)

type Repository struct {
	User       UserRepository
	Restaurant RestaurantRepository
	Food       FoodRepository
	Order      OrderRepository
	Review     ReviewRepository

	db  database.PgxIface
	log *zap.Logger
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	repo := newRepositories(db, log)
	repo.db = db
	return repo
}

func newRepositories(q database.Querier, log *zap.Logger) *Repository {
	return &Repository{
		User:       NewUserRepository(q, log),
		Restaurant: NewRestaurantRepository(q, log),
		Food:       NewFoodRepository(q, log),
		Order:      NewOrderRepository(q, log),
		Review:     NewReviewRepository(q, log),
		log:        log,
	}
}

// WithinTx runs fn against repositories bound to one transaction. The
// transaction commits when fn returns nil and rolls back otherwise.
// A Repository without a pool (assembled by hand in tests) runs fn directly.
func (r *Repository) WithinTx(ctx context.Context, fn func(tx *Repository) error) error {
	if r.db == nil {
		return fn(r)
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		// no-op once committed
		_ = tx.Rollback(ctx)
	}()

	if err := fn(newRepositories(tx, r.log)); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		r.log.Error("Failed to commit transaction", zap.Error(err))
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}

func imagesOrEmpty(images []entity.Image) []entity.Image {
	if images == nil {
		return []entity.Image{}
	}
	return images
}
