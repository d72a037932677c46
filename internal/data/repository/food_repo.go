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

type FoodRepository interface {
	Create(ctx context.Context, food *entity.Food) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Food, error)
	FindAll(ctx context.Context) ([]*entity.Food, error)
	FindByRestaurantID(ctx context.Context, restaurantID uuid.UUID) ([]*entity.Food, error)
	Update(ctx context.Context, food *entity.Food) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type foodRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewFoodRepository(db database.Querier, log *zap.Logger) FoodRepository {
	return &foodRepository{
		db:  db,
		log: log.With(zap.String("repository", "food")),
	}
}

const foodColumns = `id, restaurant_id, name, description, price, category, is_available,
	images, created_at, updated_at`

func scanFood(row pgx.Row) (*entity.Food, error) {
	var food entity.Food
	err := row.Scan(
		&food.ID,
		&food.RestaurantID,
		&food.Name,
		&food.Description,
		&food.Price,
		&food.Category,
		&food.IsAvailable,
		&food.Images,
		&food.CreatedAt,
		&food.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &food, nil
}

func (fr *foodRepository) Create(ctx context.Context, food *entity.Food) error {
	query := `
		INSERT INTO foods (id, restaurant_id, name, description, price, category,
		                   is_available, images, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := fr.db.Exec(ctx, query,
		food.ID,
		food.RestaurantID,
		food.Name,
		food.Description,
		food.Price,
		food.Category,
		food.IsAvailable,
		imagesOrEmpty(food.Images),
		food.CreatedAt,
		food.UpdatedAt,
	)
	if err != nil {
		fr.log.Error("Failed to create food",
			zap.Error(err),
			zap.String("restaurant_id", food.RestaurantID.String()),
		)
		return fmt.Errorf("create food: %w", err)
	}

	return nil
}

func (fr *foodRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Food, error) {
	query := `SELECT ` + foodColumns + ` FROM foods WHERE id = $1`

	food, err := scanFood(fr.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		fr.log.Error("Failed to find food by ID",
			zap.Error(err),
			zap.String("food_id", id.String()),
		)
		return nil, fmt.Errorf("find food by ID %s: %w", id.String(), err)
	}

	return food, nil
}

func (fr *foodRepository) FindAll(ctx context.Context) ([]*entity.Food, error) {
	query := `SELECT ` + foodColumns + ` FROM foods ORDER BY created_at DESC`
	return fr.list(ctx, query)
}

func (fr *foodRepository) FindByRestaurantID(ctx context.Context, restaurantID uuid.UUID) ([]*entity.Food, error) {
	query := `SELECT ` + foodColumns + ` FROM foods WHERE restaurant_id = $1 ORDER BY created_at ASC`
	return fr.list(ctx, query, restaurantID)
}

func (fr *foodRepository) list(ctx context.Context, query string, args ...any) ([]*entity.Food, error) {
	rows, err := fr.db.Query(ctx, query, args...)
	if err != nil {
		fr.log.Error("Failed to find foods", zap.Error(err))
		return nil, fmt.Errorf("find foods: %w", err)
	}
	defer rows.Close()

	var foods []*entity.Food
	for rows.Next() {
		food, err := scanFood(rows)
		if err != nil {
			fr.log.Error("Failed to scan food row", zap.Error(err))
			return nil, fmt.Errorf("scan food row: %w", err)
		}
		foods = append(foods, food)
	}

	return foods, rows.Err()
}

// Update overwrites every mutable column. restaurant_id never changes.
func (fr *foodRepository) Update(ctx context.Context, food *entity.Food) error {
	query := `
		UPDATE foods
		SET name = $2, description = $3, price = $4, category = $5,
		    is_available = $6, images = $7, updated_at = $8
		WHERE id = $1
	`

	result, err := fr.db.Exec(ctx, query,
		food.ID,
		food.Name,
		food.Description,
		food.Price,
		food.Category,
		food.IsAvailable,
		imagesOrEmpty(food.Images),
		food.UpdatedAt,
	)
	if err != nil {
		fr.log.Error("Failed to update food",
			zap.Error(err),
			zap.String("food_id", food.ID.String()),
		)
		return fmt.Errorf("update food %s: %w", food.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("food %s not found", food.ID.String())
	}

	return nil
}

func (fr *foodRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := fr.db.Exec(ctx, `DELETE FROM foods WHERE id = $1`, id)
	if err != nil {
		fr.log.Error("Failed to delete food",
			zap.Error(err),
			zap.String("food_id", id.String()),
		)
		return fmt.Errorf("delete food %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("food %s not found", id.String())
	}

	return nil
}
