package usecase

import (
	"context"
	"testing"

	"food-ordering/internal/data/entity"
	"food-ordering/internal/data/repository"
	"food-ordering/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestGetProfile(t *testing.T) {
	store := newMemStore()
	service := NewUserService(newTestRepo(store), zap.NewNop())
	ctx := context.Background()

	customer := seedUser(store, "Customer", entity.RoleUser)
	owner := seedUser(store, "Owner", entity.RoleRestaurant)
	restaurant := seedRestaurant(store, owner, "Owner's Restaurant")

	profile, err := service.GetProfile(ctx, customer.ID)
	require.NoError(t, err)
	assert.Equal(t, "customer@example.com", profile.Email)
	assert.Nil(t, profile.Restaurant)

	profile, err = service.GetProfile(ctx, owner.ID)
	require.NoError(t, err)
	require.NotNil(t, profile.Restaurant)
	assert.Equal(t, restaurant.ID.String(), profile.Restaurant.ID)

	_, err = service.GetProfile(ctx, uuid.New())
	requireKind(t, err, KindNotFound)
}

func TestListUsers_Paginates(t *testing.T) {
	store := newMemStore()
	service := NewUserService(newTestRepo(store), zap.NewNop())

	for _, name := range []string{"Ann", "Ben", "Cat"} {
		seedUser(store, name, entity.RoleUser)
	}

	page, err := service.ListUsers(context.Background(), &request.PaginatedRequest{Page: 2, PerPage: 2})
	require.NoError(t, err)
	require.Len(t, page.Data, 1)
	assert.Equal(t, "Ann", page.Data[0].Name)
	assert.Equal(t, int64(3), page.Pagination.Total)
	assert.Equal(t, 2, page.Pagination.TotalPages)

	page, err = service.ListUsers(context.Background(), &request.PaginatedRequest{})
	require.NoError(t, err)
	assert.Len(t, page.Data, 3)
	assert.Equal(t, 1, page.Pagination.Page)
	assert.Equal(t, 10, page.Pagination.PerPage)
}

func TestDeleteUser(t *testing.T) {
	store := newMemStore()
	service := NewUserService(newTestRepo(store), zap.NewNop())
	ctx := context.Background()

	admin := seedUser(store, "Admin", entity.RoleAdmin)
	customer := seedUser(store, "Customer", entity.RoleUser)

	err := service.DeleteUser(ctx, actorOf(admin), admin.ID.String())
	requireKind(t, err, KindBadRequest)

	err = service.DeleteUser(ctx, actorOf(admin), "not-an-id")
	requireKind(t, err, KindBadRequest)

	err = service.DeleteUser(ctx, actorOf(admin), uuid.NewString())
	requireKind(t, err, KindNotFound)

	require.NoError(t, service.DeleteUser(ctx, actorOf(admin), customer.ID.String()))
	assert.NotContains(t, store.users, customer.ID)
	assert.Contains(t, store.users, admin.ID)
}

func TestDeleteUser_WithOrders(t *testing.T) {
	store := newMemStore()
	service := NewUserService(newTestRepo(store), zap.NewNop())
	ctx := context.Background()

	admin := seedUser(store, "Admin", entity.RoleAdmin)
	customer := seedUser(store, "Customer", entity.RoleUser)
	owner := seedUser(store, "Owner", entity.RoleRestaurant)
	seedOrder(store, customer, seedRestaurant(store, owner, "Diner"))

	err := service.DeleteUser(ctx, actorOf(admin), customer.ID.String())
	requireKind(t, err, KindConflict)

	err = service.DeleteUser(ctx, actorOf(admin), owner.ID.String())
	requireKind(t, err, KindConflict)

	assert.Contains(t, store.users, customer.ID)
	assert.Contains(t, store.users, owner.ID)
}

// vanishingUserRepo finds the user but loses the delete to a concurrent one.
type vanishingUserRepo struct {
	repository.UserRepository
}

func (vanishingUserRepo) Delete(context.Context, uuid.UUID) error {
	return repository.ErrUserNotFound
}

func TestDeleteUser_ConcurrentDelete(t *testing.T) {
	store := newMemStore()
	repo := newTestRepo(store)
	repo.User = vanishingUserRepo{repo.User}
	service := NewUserService(repo, zap.NewNop())

	admin := seedUser(store, "Admin", entity.RoleAdmin)
	customer := seedUser(store, "Customer", entity.RoleUser)

	err := service.DeleteUser(context.Background(), actorOf(admin), customer.ID.String())
	requireKind(t, err, KindNotFound)
}
