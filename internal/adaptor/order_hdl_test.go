package adaptor

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"food-ordering/internal/data/entity"
	"food-ordering/internal/dto/request"
	"food-ordering/internal/dto/response"
	"food-ordering/internal/usecase"
	"food-ordering/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockOrderService struct {
	usecase.OrderService
	mock.Mock
}

func (m *mockOrderService) CreateOrder(ctx context.Context, actor usecase.Actor, req *request.CreateOrderRequest) (*response.OrderResponse, error) {
	args := m.Called(actor, req)
	resp, _ := args.Get(0).(*response.OrderResponse)
	return resp, args.Error(1)
}

func (m *mockOrderService) CancelOrder(ctx context.Context, actor usecase.Actor, id string) (*response.OrderResponse, error) {
	args := m.Called(actor, id)
	resp, _ := args.Get(0).(*response.OrderResponse)
	return resp, args.Error(1)
}

func (m *mockOrderService) UpdateStatus(ctx context.Context, actor usecase.Actor, id string, req *request.UpdateOrderStatusRequest) (*response.OrderResponse, error) {
	args := m.Called(actor, id, req)
	resp, _ := args.Get(0).(*response.OrderResponse)
	return resp, args.Error(1)
}

func authenticated(r *http.Request, actor usecase.Actor) *http.Request {
	return r.WithContext(utils.SetUserContext(r.Context(), actor.ID, string(actor.Role)))
}

func TestOrderHandler_CreateOrder(t *testing.T) {
	service := &mockOrderService{}
	handler := NewOrderHandler(service, zap.NewNop())
	actor := usecase.Actor{ID: uuid.New(), Role: entity.RoleUser}
	foodID := uuid.NewString()

	service.On("CreateOrder", actor, mock.MatchedBy(func(req *request.CreateOrderRequest) bool {
		return len(req.Items) == 1 && req.Items[0].Food == foodID && req.Items[0].Quantity == 3
	})).Return(&response.OrderResponse{ID: "order-1", TotalAmount: 30, Status: entity.OrderStatusPending}, nil).Once()

	body := `{"items":[{"food":"` + foodID + `","quantity":3}],"deliveryAddress":"Main Street 1","paymentMethod":"cash"}`
	req := authenticated(httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(body)), actor)
	rec := httptest.NewRecorder()
	handler.CreateOrder(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	var envelope struct {
		Status bool                   `json:"status"`
		Data   response.OrderResponse `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&envelope))
	assert.True(t, envelope.Status)
	assert.Equal(t, 30.0, envelope.Data.TotalAmount)
	service.AssertExpectations(t)
}

func TestOrderHandler_CreateOrder_BadBody(t *testing.T) {
	service := &mockOrderService{}
	handler := NewOrderHandler(service, zap.NewNop())
	actor := usecase.Actor{ID: uuid.New(), Role: entity.RoleUser}

	req := authenticated(httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(`{"items":`)), actor)
	rec := httptest.NewRecorder()
	handler.CreateOrder(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	service.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything)
}

func TestOrderHandler_CancelOrder_MapsServiceError(t *testing.T) {
	service := &mockOrderService{}
	handler := NewOrderHandler(service, zap.NewNop())
	actor := usecase.Actor{ID: uuid.New(), Role: entity.RoleUser}

	service.On("CancelOrder", actor, "order-1").
		Return(nil, usecase.ErrBadRequest("Order cannot be cancelled at this stage")).Once()

	router := chi.NewRouter()
	router.Put("/api/orders/{id}/cancel", handler.CancelOrder)

	req := authenticated(httptest.NewRequest(http.MethodPut, "/api/orders/order-1/cancel", nil), actor)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Order cannot be cancelled at this stage")
	service.AssertExpectations(t)
}

func TestOrderHandler_RequiresUser(t *testing.T) {
	handler := NewOrderHandler(&mockOrderService{}, zap.NewNop())

	rec := httptest.NewRecorder()
	handler.CreateOrder(rec, httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(`{}`)))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestOrderHandler_UpdateStatus_MalformedBodyReachesService(t *testing.T) {
	service := &mockOrderService{}
	handler := NewOrderHandler(service, zap.NewNop())
	actor := usecase.Actor{ID: uuid.New(), Role: entity.RoleRestaurant}

	service.On("UpdateStatus", actor, "order-1", (*request.UpdateOrderStatusRequest)(nil)).
		Return(nil, usecase.ErrUnauthorized("Not authorized to update this order")).Once()

	router := chi.NewRouter()
	router.Put("/api/orders/{id}/status", handler.UpdateStatus)

	req := authenticated(httptest.NewRequest(http.MethodPut, "/api/orders/order-1/status", strings.NewReader(`{"status":`)), actor)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	service.AssertExpectations(t)
}
