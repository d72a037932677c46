package repository

import (
	"context"
	"errors"
	"fmt"

	"food-ordering/internal/data/entity"
	"food-ordering/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type RestaurantRepository interface {
	Create(ctx context.Context, restaurant *entity.Restaurant) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Restaurant, error)
	FindByOwnerID(ctx context.Context, ownerID uuid.UUID) (*entity.Restaurant, error)
	FindAll(ctx context.Context) ([]*entity.Restaurant, error)
	Update(ctx context.Context, restaurant *entity.Restaurant) error
}

type restaurantRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewRestaurantRepository(db database.Querier, log *zap.Logger) RestaurantRepository {
	return &restaurantRepository{
		db:  db,
		log: log.With(zap.String("repository", "restaurant")),
	}
}

const restaurantColumns = `id, owner_id, name, description, location, cuisine_type,
	opening_hours, contact_number, images, created_at, updated_at`

func scanRestaurant(row pgx.Row) (*entity.Restaurant, error) {
	var restaurant entity.Restaurant
	err := row.Scan(
		&restaurant.ID,
		&restaurant.OwnerID,
		&restaurant.Name,
		&restaurant.Description,
		&restaurant.Location,
		&restaurant.CuisineType,
		&restaurant.OpeningHours,
		&restaurant.ContactNumber,
		&restaurant.Images,
		&restaurant.CreatedAt,
		&restaurant.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &restaurant, nil
}

func (rr *restaurantRepository) Create(ctx context.Context, restaurant *entity.Restaurant) error {
	query := `
		INSERT INTO restaurants (id, owner_id, name, description, location, cuisine_type,
		                         opening_hours, contact_number, images, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := rr.db.Exec(ctx, query,
		restaurant.ID,
		restaurant.OwnerID,
		restaurant.Name,
		restaurant.Description,
		restaurant.Location,
		restaurant.CuisineType,
		restaurant.OpeningHours,
		restaurant.ContactNumber,
		imagesOrEmpty(restaurant.Images),
		restaurant.CreatedAt,
		restaurant.UpdatedAt,
	)
	if err != nil {
		rr.log.Error("Failed to create restaurant",
			zap.Error(err),
			zap.String("owner_id", restaurant.OwnerID.String()),
		)
		return fmt.Errorf("create restaurant: %w", err)
	}

	return nil
}

func (rr *restaurantRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Restaurant, error) {
	query := `SELECT ` + restaurantColumns + ` FROM restaurants WHERE id = $1`

	restaurant, err := scanRestaurant(rr.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		rr.log.Error("Failed to find restaurant by ID",
			zap.Error(err),
			zap.String("restaurant_id", id.String()),
		)
		return nil, fmt.Errorf("find restaurant by ID %s: %w", id.String(), err)
	}

	return restaurant, nil
}

// FindByOwnerID returns the oldest restaurant of the owner.
func (rr *restaurantRepository) FindByOwnerID(ctx context.Context, ownerID uuid.UUID) (*entity.Restaurant, error) {
	query := `
		SELECT ` + restaurantColumns + `
		FROM restaurants
		WHERE owner_id = $1
		ORDER BY created_at ASC
		LIMIT 1
	`

	restaurant, err := scanRestaurant(rr.db.QueryRow(ctx, query, ownerID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		rr.log.Error("Failed to find restaurant by owner",
			zap.Error(err),
			zap.String("owner_id", ownerID.String()),
		)
		return nil, fmt.Errorf("find restaurant by owner %s: %w", ownerID.String(), err)
	}

	return restaurant, nil
}

func (rr *restaurantRepository) FindAll(ctx context.Context) ([]*entity.Restaurant, error) {
	query := `SELECT ` + restaurantColumns + ` FROM restaurants ORDER BY created_at DESC`

	rows, err := rr.db.Query(ctx, query)
	if err != nil {
		rr.log.Error("Failed to find restaurants", zap.Error(err))
		return nil, fmt.Errorf("find restaurants: %w", err)
	}
	defer rows.Close()

	var restaurants []*entity.Restaurant
	for rows.Next() {
		restaurant, err := scanRestaurant(rows)
		if err != nil {
			rr.log.Error("Failed to scan restaurant row", zap.Error(err))
			return nil, fmt.Errorf("scan restaurant row: %w", err)
		}
		restaurants = append(restaurants, restaurant)
	}

	return restaurants, rows.Err()
}

// Update overwrites every mutable column, images included.
func (rr *restaurantRepository) Update(ctx context.Context, restaurant *entity.Restaurant) error {
	query := `
		UPDATE restaurants
		SET name = $2, description = $3, location = $4, cuisine_type = $5,
		    opening_hours = $6, contact_number = $7, images = $8, updated_at = $9
		WHERE id = $1
	`

	result, err := rr.db.Exec(ctx, query,
		restaurant.ID,
		restaurant.Name,
		restaurant.Description,
		restaurant.Location,
		restaurant.CuisineType,
		restaurant.OpeningHours,
		restaurant.ContactNumber,
		imagesOrEmpty(restaurant.Images),
		restaurant.UpdatedAt,
	)
	if err != nil {
		rr.log.Error("Failed to update restaurant",
			zap.Error(err),
			zap.String("restaurant_id", restaurant.ID.String()),
		)
		return fmt.Errorf("update restaurant %s: %w", restaurant.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("restaurant %s not found", restaurant.ID.String())
	}

	return nil
}
