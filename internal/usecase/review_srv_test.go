package usecase

import (
	"context"
	"testing"
	"time"

	"food-ordering/internal/data/entity"
	"food-ordering/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type reviewFixture struct {
	store      *memStore
	service    ReviewService
	author     *entity.User
	restaurant *entity.Restaurant
	food       *entity.Food
}

func newReviewFixture(t *testing.T) *reviewFixture {
	t.Helper()
	store := newMemStore()
	owner := seedUser(store, "Owner", entity.RoleRestaurant)
	restaurant := seedRestaurant(store, owner, "Owner's Restaurant")

	return &reviewFixture{
		store:      store,
		service:    NewReviewService(newTestRepo(store), zap.NewNop()),
		author:     seedUser(store, "Alice", entity.RoleUser),
		restaurant: restaurant,
		food:       seedFood(store, restaurant, "Burger", 10, true),
	}
}

func TestCreateReview_OnePerTarget(t *testing.T) {
	f := newReviewFixture(t)
	ctx := context.Background()
	actor := actorOf(f.author)

	review, err := f.service.CreateReview(ctx, actor, &request.CreateReviewRequest{
		Restaurant: strPtr(f.restaurant.ID.String()),
		Rating:     5,
		Comment:    strPtr("Great"),
	})
	require.NoError(t, err)
	assert.Equal(t, f.restaurant.ID.String(), review.RestaurantID)
	assert.Empty(t, review.FoodID)

	_, err = f.service.CreateReview(ctx, actor, &request.CreateReviewRequest{
		Restaurant: strPtr(f.restaurant.ID.String()),
		Rating:     3,
	})
	requireKind(t, err, KindConflict)

	// the same user may still review a food of that restaurant
	_, err = f.service.CreateReview(ctx, actor, &request.CreateReviewRequest{
		Food:   strPtr(f.food.ID.String()),
		Rating: 4,
	})
	require.NoError(t, err)

	_, err = f.service.CreateReview(ctx, actor, &request.CreateReviewRequest{
		Food:   strPtr(f.food.ID.String()),
		Rating: 1,
	})
	requireKind(t, err, KindConflict)

	assert.Len(t, f.store.reviews, 2)
}

func TestCreateReview_Rejections(t *testing.T) {
	f := newReviewFixture(t)

	tests := []struct {
		name string
		req  request.CreateReviewRequest
		kind ErrorKind
	}{
		{
			name: "no target",
			req:  request.CreateReviewRequest{Rating: 4},
			kind: KindBadRequest,
		},
		{
			name: "both targets",
			req: request.CreateReviewRequest{
				Restaurant: strPtr(f.restaurant.ID.String()),
				Food:       strPtr(f.food.ID.String()),
				Rating:     4,
			},
			kind: KindBadRequest,
		},
		{
			name: "rating out of range",
			req:  request.CreateReviewRequest{Restaurant: strPtr(f.restaurant.ID.String()), Rating: 6},
			kind: KindBadRequest,
		},
		{
			name: "unknown restaurant",
			req:  request.CreateReviewRequest{Restaurant: strPtr(uuid.NewString()), Rating: 4},
			kind: KindNotFound,
		},
		{
			name: "unknown food",
			req:  request.CreateReviewRequest{Food: strPtr(uuid.NewString()), Rating: 4},
			kind: KindNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.service.CreateReview(context.Background(), actorOf(f.author), &tt.req)
			requireKind(t, err, tt.kind)
			assert.Empty(t, f.store.reviews)
		})
	}
}

func TestUpdateReview(t *testing.T) {
	f := newReviewFixture(t)
	ctx := context.Background()

	created, err := f.service.CreateReview(ctx, actorOf(f.author), &request.CreateReviewRequest{
		Restaurant: strPtr(f.restaurant.ID.String()),
		Rating:     4,
		Comment:    strPtr("Good"),
	})
	require.NoError(t, err)

	t.Run("empty fields keep stored values", func(t *testing.T) {
		review, err := f.service.UpdateReview(ctx, actorOf(f.author), created.ID, &request.UpdateReviewRequest{
			Rating:  intPtr(0),
			Comment: strPtr(""),
		})
		require.NoError(t, err)
		assert.Equal(t, 4, review.Rating)
		require.NotNil(t, review.Comment)
		assert.Equal(t, "Good", *review.Comment)
	})

	t.Run("author updates", func(t *testing.T) {
		review, err := f.service.UpdateReview(ctx, actorOf(f.author), created.ID, &request.UpdateReviewRequest{
			Rating: intPtr(2),
		})
		require.NoError(t, err)
		assert.Equal(t, 2, review.Rating)
		assert.Equal(t, 2, f.store.reviews[uuid.MustParse(created.ID)].Rating)
	})

	t.Run("nobody else updates, admins included", func(t *testing.T) {
		admin := seedUser(f.store, "Admin", entity.RoleAdmin)
		_, err := f.service.UpdateReview(ctx, actorOf(admin), created.ID, &request.UpdateReviewRequest{Rating: intPtr(5)})
		requireKind(t, err, KindUnauthorized)
	})

	t.Run("non-author is unauthorized whatever the body", func(t *testing.T) {
		other := seedUser(f.store, "Other", entity.RoleUser)
		for _, req := range []*request.UpdateReviewRequest{{Rating: intPtr(9)}, nil} {
			_, err := f.service.UpdateReview(ctx, actorOf(other), created.ID, req)
			requireKind(t, err, KindUnauthorized)
		}

		_, err := f.service.UpdateReview(ctx, actorOf(f.author), created.ID, &request.UpdateReviewRequest{Rating: intPtr(9)})
		requireKind(t, err, KindBadRequest)
	})

	t.Run("unknown review", func(t *testing.T) {
		_, err := f.service.UpdateReview(ctx, actorOf(f.author), uuid.NewString(), &request.UpdateReviewRequest{Rating: intPtr(5)})
		requireKind(t, err, KindNotFound)
	})
}

func TestDeleteReview(t *testing.T) {
	f := newReviewFixture(t)
	ctx := context.Background()
	stranger := seedUser(f.store, "Bob", entity.RoleUser)
	admin := seedUser(f.store, "Admin", entity.RoleAdmin)

	first, err := f.service.CreateReview(ctx, actorOf(f.author), &request.CreateReviewRequest{
		Restaurant: strPtr(f.restaurant.ID.String()),
		Rating:     4,
	})
	require.NoError(t, err)
	second, err := f.service.CreateReview(ctx, actorOf(f.author), &request.CreateReviewRequest{
		Food:   strPtr(f.food.ID.String()),
		Rating: 4,
	})
	require.NoError(t, err)

	err = f.service.DeleteReview(ctx, actorOf(stranger), first.ID)
	requireKind(t, err, KindUnauthorized)

	require.NoError(t, f.service.DeleteReview(ctx, actorOf(f.author), first.ID))
	require.NoError(t, f.service.DeleteReview(ctx, actorOf(admin), second.ID))
	assert.Empty(t, f.store.reviews)

	err = f.service.DeleteReview(ctx, actorOf(f.author), first.ID)
	requireKind(t, err, KindNotFound)
}

func TestListReviews(t *testing.T) {
	f := newReviewFixture(t)
	ctx := context.Background()
	bob := seedUser(f.store, "Bob", entity.RoleUser)

	base := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	for i, user := range []*entity.User{f.author, bob} {
		restaurantID := f.restaurant.ID
		id := uuid.New()
		f.store.reviews[id] = entity.Review{
			BaseSimple:   entity.BaseSimple{ID: id, CreatedAt: base.Add(time.Duration(i) * time.Hour)},
			UserID:       user.ID,
			RestaurantID: &restaurantID,
			Rating:       3 + i,
		}
	}

	reviews, err := f.service.ListByRestaurant(ctx, f.restaurant.ID.String())
	require.NoError(t, err)
	require.Len(t, reviews, 2)
	require.NotNil(t, reviews[0].User)
	assert.Equal(t, "Bob", reviews[0].User.Name)
	assert.Equal(t, "Alice", reviews[1].User.Name)

	_, err = f.service.CreateReview(ctx, actorOf(f.author), &request.CreateReviewRequest{
		Food:   strPtr(f.food.ID.String()),
		Rating: 5,
	})
	require.NoError(t, err)

	byFood, err := f.service.ListByFood(ctx, f.food.ID.String())
	require.NoError(t, err)
	require.Len(t, byFood, 1)
	assert.Equal(t, "Alice", byFood[0].User.Name)

	mine, err := f.service.ListByUser(ctx, actorOf(f.author))
	require.NoError(t, err)
	require.Len(t, mine, 2)
	require.NotNil(t, mine[0].Food)
	assert.Equal(t, "Burger", mine[0].Food.Name)
	require.NotNil(t, mine[1].Restaurant)
	assert.Equal(t, "Owner's Restaurant", mine[1].Restaurant.Name)
}
