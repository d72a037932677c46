package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"food-ordering/internal/data/entity"
	"food-ordering/internal/data/repository"
	"food-ordering/pkg/storage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// memStore backs the in-memory repositories used by service tests.
type memStore struct {
	mu          sync.Mutex
	users       map[uuid.UUID]entity.User
	restaurants map[uuid.UUID]entity.Restaurant
	foods       map[uuid.UUID]entity.Food
	orders      map[uuid.UUID]entity.Order
	reviews     map[uuid.UUID]entity.Review
	clock       time.Time
}

func newMemStore() *memStore {
	return &memStore{
		users:       make(map[uuid.UUID]entity.User),
		restaurants: make(map[uuid.UUID]entity.Restaurant),
		foods:       make(map[uuid.UUID]entity.Food),
		orders:      make(map[uuid.UUID]entity.Order),
		reviews:     make(map[uuid.UUID]entity.Review),
		clock:       time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

// tick returns strictly increasing timestamps for seeded records.
func (s *memStore) tick() time.Time {
	s.clock = s.clock.Add(time.Second)
	return s.clock
}

func newTestRepo(store *memStore) *repository.Repository {
	return &repository.Repository{
		User:       &memUserRepo{store},
		Restaurant: &memRestaurantRepo{store},
		Food:       &memFoodRepo{store},
		Order:      &memOrderRepo{store},
		Review:     &memReviewRepo{store},
	}
}

func cloneImages(images []entity.Image) []entity.Image {
	return append([]entity.Image{}, images...)
}

// ==================== USERS ====================

type memUserRepo struct{ s *memStore }

func (r *memUserRepo) Create(_ context.Context, user *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if strings.EqualFold(u.Email, user.Email) {
			return repository.ErrDuplicateEmail
		}
	}
	r.s.users[user.ID] = *user
	return nil
}

func (r *memUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *memUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if strings.EqualFold(u.Email, email) {
			return &u, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) FindAll(_ context.Context, limit, offset int) ([]*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	users := make([]*entity.User, 0, len(r.s.users))
	for _, u := range r.s.users {
		users = append(users, &u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].CreatedAt.After(users[j].CreatedAt) })
	if offset >= len(users) {
		return nil, nil
	}
	end := min(offset+limit, len(users))
	return users[offset:end], nil
}

func (r *memUserRepo) CountAll(_ context.Context) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return int64(len(r.s.users)), nil
}

func (r *memUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[id]; !ok {
		return repository.ErrUserNotFound
	}
	// orders restrict deleting their customer or the restaurant's owner
	for _, order := range r.s.orders {
		if order.UserID == id || r.s.restaurants[order.RestaurantID].OwnerID == id {
			return repository.ErrUserHasOrders
		}
	}
	delete(r.s.users, id)
	return nil
}

// ==================== RESTAURANTS ====================

type memRestaurantRepo struct{ s *memStore }

func (r *memRestaurantRepo) Create(_ context.Context, restaurant *entity.Restaurant) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	stored := *restaurant
	stored.Images = cloneImages(restaurant.Images)
	r.s.restaurants[restaurant.ID] = stored
	return nil
}

func (r *memRestaurantRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Restaurant, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	restaurant, ok := r.s.restaurants[id]
	if !ok {
		return nil, nil
	}
	restaurant.Images = cloneImages(restaurant.Images)
	return &restaurant, nil
}

func (r *memRestaurantRepo) FindByOwnerID(_ context.Context, ownerID uuid.UUID) (*entity.Restaurant, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var oldest *entity.Restaurant
	for _, restaurant := range r.s.restaurants {
		if restaurant.OwnerID != ownerID {
			continue
		}
		if oldest == nil || restaurant.CreatedAt.Before(oldest.CreatedAt) {
			restaurant.Images = cloneImages(restaurant.Images)
			oldest = &restaurant
		}
	}
	return oldest, nil
}

func (r *memRestaurantRepo) FindAll(_ context.Context) ([]*entity.Restaurant, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	restaurants := make([]*entity.Restaurant, 0, len(r.s.restaurants))
	for _, restaurant := range r.s.restaurants {
		restaurant.Images = cloneImages(restaurant.Images)
		restaurants = append(restaurants, &restaurant)
	}
	sort.Slice(restaurants, func(i, j int) bool {
		return restaurants[i].CreatedAt.After(restaurants[j].CreatedAt)
	})
	return restaurants, nil
}

func (r *memRestaurantRepo) Update(_ context.Context, restaurant *entity.Restaurant) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.restaurants[restaurant.ID]; !ok {
		return errors.New("restaurant not found")
	}
	stored := *restaurant
	stored.Images = cloneImages(restaurant.Images)
	r.s.restaurants[restaurant.ID] = stored
	return nil
}

// ==================== FOODS ====================

type memFoodRepo struct{ s *memStore }

func (r *memFoodRepo) Create(_ context.Context, food *entity.Food) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	stored := *food
	stored.Images = cloneImages(food.Images)
	r.s.foods[food.ID] = stored
	return nil
}

func (r *memFoodRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Food, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	food, ok := r.s.foods[id]
	if !ok {
		return nil, nil
	}
	food.Images = cloneImages(food.Images)
	return &food, nil
}

func (r *memFoodRepo) FindAll(ctx context.Context) ([]*entity.Food, error) {
	return r.filter(func(entity.Food) bool { return true }), nil
}

func (r *memFoodRepo) FindByRestaurantID(_ context.Context, restaurantID uuid.UUID) ([]*entity.Food, error) {
	return r.filter(func(f entity.Food) bool { return f.RestaurantID == restaurantID }), nil
}

func (r *memFoodRepo) filter(keep func(entity.Food) bool) []*entity.Food {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var foods []*entity.Food
	for _, food := range r.s.foods {
		if keep(food) {
			food.Images = cloneImages(food.Images)
			foods = append(foods, &food)
		}
	}
	sort.Slice(foods, func(i, j int) bool { return foods[i].CreatedAt.Before(foods[j].CreatedAt) })
	return foods
}

func (r *memFoodRepo) Update(_ context.Context, food *entity.Food) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.foods[food.ID]; !ok {
		return errors.New("food not found")
	}
	stored := *food
	stored.Images = cloneImages(food.Images)
	r.s.foods[food.ID] = stored
	return nil
}

func (r *memFoodRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.foods[id]; !ok {
		return errors.New("food not found")
	}
	delete(r.s.foods, id)
	return nil
}

// ==================== ORDERS ====================

type memOrderRepo struct{ s *memStore }

func (r *memOrderRepo) Create(_ context.Context, order *entity.Order) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	stored := *order
	stored.Items = append([]entity.OrderItem{}, order.Items...)
	r.s.orders[order.ID] = stored
	return nil
}

func (r *memOrderRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	order, ok := r.s.orders[id]
	if !ok {
		return nil, nil
	}
	order.Items = append([]entity.OrderItem{}, order.Items...)
	return &order, nil
}

func (r *memOrderRepo) FindByUserID(_ context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	return r.filter(func(o entity.Order) bool { return o.UserID == userID }), nil
}

func (r *memOrderRepo) FindByRestaurantID(_ context.Context, restaurantID uuid.UUID) ([]*entity.Order, error) {
	return r.filter(func(o entity.Order) bool { return o.RestaurantID == restaurantID }), nil
}

func (r *memOrderRepo) filter(keep func(entity.Order) bool) []*entity.Order {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var orders []*entity.Order
	for _, order := range r.s.orders {
		if keep(order) {
			order.Items = append([]entity.OrderItem{}, order.Items...)
			orders = append(orders, &order)
		}
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i].CreatedAt.After(orders[j].CreatedAt) })
	return orders
}

func (r *memOrderRepo) UpdateStatus(_ context.Context, order *entity.Order) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	stored, ok := r.s.orders[order.ID]
	if !ok {
		return errors.New("order not found")
	}
	stored.Status = order.Status
	stored.PaymentStatus = order.PaymentStatus
	stored.UpdatedAt = order.UpdatedAt
	r.s.orders[order.ID] = stored
	return nil
}

// ==================== REVIEWS ====================

type memReviewRepo struct{ s *memStore }

func (r *memReviewRepo) Create(_ context.Context, review *entity.Review) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.reviews {
		if existing.UserID != review.UserID {
			continue
		}
		if sameTarget(existing.RestaurantID, review.RestaurantID) || sameTarget(existing.FoodID, review.FoodID) {
			return repository.ErrDuplicateReview
		}
	}
	r.s.reviews[review.ID] = *review
	return nil
}

func sameTarget(a, b *uuid.UUID) bool {
	return a != nil && b != nil && *a == *b
}

func (r *memReviewRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Review, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	review, ok := r.s.reviews[id]
	if !ok {
		return nil, nil
	}
	return &review, nil
}

func (r *memReviewRepo) FindByRestaurantID(_ context.Context, restaurantID uuid.UUID) ([]*entity.Review, error) {
	return r.filter(func(rv entity.Review) bool { return sameTarget(rv.RestaurantID, &restaurantID) }), nil
}

func (r *memReviewRepo) FindByFoodID(_ context.Context, foodID uuid.UUID) ([]*entity.Review, error) {
	return r.filter(func(rv entity.Review) bool { return sameTarget(rv.FoodID, &foodID) }), nil
}

func (r *memReviewRepo) FindByUserID(_ context.Context, userID uuid.UUID) ([]*entity.Review, error) {
	return r.filter(func(rv entity.Review) bool { return rv.UserID == userID }), nil
}

func (r *memReviewRepo) FindByUserAndRestaurant(_ context.Context, userID, restaurantID uuid.UUID) (*entity.Review, error) {
	found := r.filter(func(rv entity.Review) bool {
		return rv.UserID == userID && sameTarget(rv.RestaurantID, &restaurantID)
	})
	if len(found) == 0 {
		return nil, nil
	}
	return found[0], nil
}

func (r *memReviewRepo) FindByUserAndFood(_ context.Context, userID, foodID uuid.UUID) (*entity.Review, error) {
	found := r.filter(func(rv entity.Review) bool {
		return rv.UserID == userID && sameTarget(rv.FoodID, &foodID)
	})
	if len(found) == 0 {
		return nil, nil
	}
	return found[0], nil
}

func (r *memReviewRepo) filter(keep func(entity.Review) bool) []*entity.Review {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var reviews []*entity.Review
	for _, review := range r.s.reviews {
		if keep(review) {
			reviews = append(reviews, &review)
		}
	}
	sort.Slice(reviews, func(i, j int) bool { return reviews[i].CreatedAt.After(reviews[j].CreatedAt) })
	return reviews
}

func (r *memReviewRepo) Update(_ context.Context, review *entity.Review) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	stored, ok := r.s.reviews[review.ID]
	if !ok {
		return errors.New("review not found")
	}
	stored.Rating = review.Rating
	stored.Comment = review.Comment
	r.s.reviews[review.ID] = stored
	return nil
}

func (r *memReviewRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.reviews[id]; !ok {
		return errors.New("review not found")
	}
	delete(r.s.reviews, id)
	return nil
}

// ==================== IMAGE HOST ====================

type mockImageHost struct {
	mock.Mock
}

func (m *mockImageHost) Upload(ctx context.Context, folder string, file storage.ImageUpload) (storage.StoredImage, error) {
	args := m.Called(ctx, folder, file)
	return args.Get(0).(storage.StoredImage), args.Error(1)
}

func (m *mockImageHost) Destroy(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func fileNamed(name string) any {
	return mock.MatchedBy(func(f storage.ImageUpload) bool { return f.Filename == name })
}

func uploads(names ...string) []storage.ImageUpload {
	files := make([]storage.ImageUpload, 0, len(names))
	for _, name := range names {
		files = append(files, storage.ImageUpload{
			Filename:    name,
			ContentType: "image/jpeg",
			Size:        int64(len(name)),
			Body:        strings.NewReader(name),
		})
	}
	return files
}

// ==================== SEEDING ====================

func seedUser(s *memStore, name string, role entity.UserRole) *entity.User {
	now := s.tick()
	user := entity.User{
		Base:         entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		Name:         name,
		Email:        strings.ToLower(name) + "@example.com",
		PasswordHash: "unused",
		Role:         role,
	}
	s.users[user.ID] = user
	return &user
}

func seedRestaurant(s *memStore, owner *entity.User, name string) *entity.Restaurant {
	now := s.tick()
	restaurant := entity.Restaurant{
		Base:     entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		OwnerID:  owner.ID,
		Name:     name,
		Location: "Main Street 1",
		Images:   []entity.Image{},
	}
	s.restaurants[restaurant.ID] = restaurant
	return &restaurant
}

func seedFood(s *memStore, restaurant *entity.Restaurant, name string, price float64, available bool) *entity.Food {
	now := s.tick()
	food := entity.Food{
		Base:         entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		RestaurantID: restaurant.ID,
		Name:         name,
		Price:        price,
		IsAvailable:  available,
		Images:       []entity.Image{},
	}
	s.foods[food.ID] = food
	return &food
}

func actorOf(user *entity.User) Actor {
	return Actor{ID: user.ID, Role: user.Role}
}

func requireKind(t *testing.T, err error, kind ErrorKind) {
	t.Helper()
	require.Error(t, err)
	require.Equal(t, kind.String(), KindOf(err).String(), "error: %v", err)
}

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

func intPtr(i int) *int { return &i }

func boolPtr(b bool) *bool { return &b }

func seedOrder(s *memStore, customer *entity.User, restaurant *entity.Restaurant) *entity.Order {
	now := s.tick()
	order := entity.Order{
		Base:            entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		UserID:          customer.ID,
		RestaurantID:    restaurant.ID,
		DeliveryAddress: "Main Street 2",
		PaymentMethod:   "cash",
		Status:          entity.OrderStatusPending,
	}
	s.orders[order.ID] = order
	return &order
}
