package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/courier-hub/internal/entities"
	"github.com/SergeyBogomolovv/courier-hub/internal/handler"
	"github.com/SergeyBogomolovv/courier-hub/internal/handler/mocks"
	"github.com/SergeyBogomolovv/courier-hub/internal/middleware"
	"github.com/SergeyBogomolovv/courier-hub/internal/repo"
	"github.com/SergeyBogomolovv/courier-hub/internal/service"
	"github.com/SergeyBogomolovv/courier-hub/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const secret = "0123456789abcdef"

type fixture struct {
	router http.Handler
	svc    *mocks.MockCoordinator
	riders *mocks.MockRiderDirectory
	auth   *middleware.Authenticator
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	f := fixture{
		svc:    mocks.NewMockCoordinator(t),
		riders: mocks.NewMockRiderDirectory(t),
		auth:   middleware.NewAuthenticator(secret),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	r := chi.NewRouter()
	handler.NewHTTPHandler(logger, f.auth, f.svc, f.riders).Init(r)
	f.router = r
	return f
}

func (f fixture) token(t *testing.T, id string, role entities.Role) string {
	t.Helper()
	token, err := f.auth.Issue(entities.Actor{ID: id, Role: role}, time.Hour)
	require.NoError(t, err)
	return token
}

func (f fixture) do(t *testing.T, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v))
	return v
}

func TestHTTPHandler_CreateOrder(t *testing.T) {
	testCases := []struct {
		name       string
		role       entities.Role
		body       string
		mockCall   func(f fixture)
		wantStatus int
	}{
		{
			name: "product order",
			role: entities.RoleBuyer,
			body: `{"deliveryType":"product","items":[{"productId":"p1","quantity":2}],"pickupAddress":"A","deliveryAddress":"B","deliveryFee":"40"}`,
			mockCall: func(f fixture) {
				f.svc.EXPECT().CreateOrder(mock.Anything, "u1", mock.AnythingOfType("service.OrderInput")).
					RunAndReturn(func(_ context.Context, buyerID string, in service.OrderInput) (entities.Order, error) {
						return entities.Order{
							ID:          "o1",
							BuyerID:     buyerID,
							Items:       []entities.OrderItem{{ProductID: in.Items[0].ProductID, Quantity: in.Items[0].Quantity}},
							DeliveryFee: in.DeliveryFee,
							Status:      entities.OrderPending,
						}, nil
					}).Once()
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "missing addresses",
			role:       entities.RoleBuyer,
			body:       `{"deliveryType":"product","items":[{"productId":"p1","quantity":1}]}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "bad quantity",
			role:       entities.RoleBuyer,
			body:       `{"deliveryType":"product","items":[{"productId":"p1","quantity":0}],"pickupAddress":"A","deliveryAddress":"B"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "broken json",
			role:       entities.RoleBuyer,
			body:       `{"deliveryType":`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "rider cannot order",
			role:       entities.RoleRider,
			body:       `{"deliveryType":"document"}`,
			wantStatus: http.StatusForbidden,
		},
		{
			name: "insufficient stock",
			role: entities.RoleBuyer,
			body: `{"deliveryType":"product","items":[{"productId":"p2","quantity":5}],"pickupAddress":"A","deliveryAddress":"B"}`,
			mockCall: func(f fixture) {
				f.svc.EXPECT().CreateOrder(mock.Anything, "u1", mock.Anything).
					Return(entities.Order{}, entities.ErrInsufficientStock).Once()
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "unknown product",
			role: entities.RoleBuyer,
			body: `{"deliveryType":"product","items":[{"productId":"nope","quantity":1}],"pickupAddress":"A","deliveryAddress":"B"}`,
			mockCall: func(f fixture) {
				f.svc.EXPECT().CreateOrder(mock.Anything, "u1", mock.Anything).
					Return(entities.Order{}, entities.ErrProductNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name: "store failure",
			role: entities.RoleBuyer,
			body: `{"deliveryType":"product","items":[{"productId":"p1","quantity":1}],"pickupAddress":"A","deliveryAddress":"B"}`,
			mockCall: func(f fixture) {
				f.svc.EXPECT().CreateOrder(mock.Anything, "u1", mock.Anything).
					Return(entities.Order{}, errors.New("connection reset")).Once()
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			if tc.mockCall != nil {
				tc.mockCall(f)
			}

			rec := f.do(t, http.MethodPost, "/orders", f.token(t, "u1", tc.role), tc.body)

			assert.Equal(t, tc.wantStatus, rec.Code)
			if tc.wantStatus == http.StatusCreated {
				order := decode[repo.Order](t, rec)
				assert.Equal(t, "o1", order.ID)
				assert.Equal(t, "u1", order.BuyerID)
				assert.Equal(t, "pending", order.Status)
			}
			if tc.wantStatus == http.StatusInternalServerError {
				res := decode[utils.ErrorResponse](t, rec)
				assert.Equal(t, "internal server error", res.Message)
			}
		})
	}
}

func TestHTTPHandler_Unauthenticated(t *testing.T) {
	f := newFixture(t)

	for _, path := range []string{"/orders", "/deliveries/pending", "/orders/o1"} {
		rec := f.do(t, http.MethodGet, path, "", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code, path)
	}
}

func TestHTTPHandler_AssignDelivery(t *testing.T) {
	testCases := []struct {
		name       string
		err        error
		wantStatus int
		wantState  string
	}{
		{name: "claimed", wantStatus: http.StatusOK},
		{name: "lost race", err: entities.NewAlreadyAssignedError(entities.DeliveryAssigned), wantStatus: http.StatusBadRequest, wantState: "assigned"},
		{name: "missing", err: entities.ErrDeliveryNotFound, wantStatus: http.StatusNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			f.svc.EXPECT().AssignDelivery(mock.Anything, "d1", "r1").
				Return(entities.Delivery{ID: "d1", RiderID: "r1", Status: entities.DeliveryAssigned}, tc.err).Once()

			rec := f.do(t, http.MethodPut, "/deliveries/d1/assign", f.token(t, "r1", entities.RoleRider), "")

			require.Equal(t, tc.wantStatus, rec.Code)
			switch {
			case tc.wantState != "":
				res := decode[handler.StateErrorResponse](t, rec)
				assert.Equal(t, tc.wantState, res.CurrentStatus)
			case tc.err == nil:
				d := decode[repo.Delivery](t, rec)
				assert.Equal(t, "r1", d.RiderID)
			}
		})
	}
}

func TestHTTPHandler_AssignDelivery_RidersOnly(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodPut, "/deliveries/d1/assign", f.token(t, "s1", entities.RoleSeller), "")

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestHTTPHandler_UpdateOrderStatus(t *testing.T) {
	testCases := []struct {
		name       string
		body       string
		err        error
		wantCall   bool
		wantStatus int
	}{
		{name: "confirm", body: `{"status":"confirmed"}`, wantCall: true, wantStatus: http.StatusOK},
		{name: "unknown status", body: `{"status":"shipped"}`, wantStatus: http.StatusBadRequest},
		{name: "backwards", body: `{"status":"confirmed"}`, err: entities.NewOrderStateError(entities.OrderReady, entities.OrderConfirmed), wantCall: true, wantStatus: http.StatusBadRequest},
		{name: "foreign order", body: `{"status":"ready"}`, err: entities.Forbiddenf("order belongs to another seller"), wantCall: true, wantStatus: http.StatusForbidden},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			if tc.wantCall {
				f.svc.EXPECT().UpdateOrderStatus(mock.Anything, "o1", entities.Actor{ID: "s1", Role: entities.RoleSeller}, mock.AnythingOfType("entities.OrderStatus"), "").
					Return(entities.Order{ID: "o1", Status: entities.OrderConfirmed}, tc.err).Once()
			}

			rec := f.do(t, http.MethodPut, "/orders/o1/status", f.token(t, "s1", entities.RoleSeller), tc.body)

			assert.Equal(t, tc.wantStatus, rec.Code)
		})
	}
}

func TestHTTPHandler_CancelOrder(t *testing.T) {
	f := newFixture(t)
	token := f.token(t, "b1", entities.RoleBuyer)

	f.svc.EXPECT().CancelOrder(mock.Anything, "o1", "b1", "").
		Return(entities.Order{ID: "o1", Status: entities.OrderCancelled}, nil).Once()
	f.svc.EXPECT().CancelOrder(mock.Anything, "o2", "b1", "changed my mind").
		Return(entities.Order{}, entities.NewOrderStateError(entities.OrderProcessing, entities.OrderCancelled)).Once()

	rec := f.do(t, http.MethodPut, "/orders/o1/cancel", token, "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(t, http.MethodPut, "/orders/o2/cancel", token, `{"reason":"changed my mind"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "processing", decode[handler.StateErrorResponse](t, rec).CurrentStatus)
}

func TestHTTPHandler_UpdateDeliveryStatus(t *testing.T) {
	f := newFixture(t)
	token := f.token(t, "r1", entities.RoleRider)

	f.svc.EXPECT().UpdateDeliveryStatus(mock.Anything, "d1", entities.Actor{ID: "r1", Role: entities.RoleRider}, mock.Anything).
		RunAndReturn(func(_ context.Context, id string, _ entities.Actor, in service.DeliveryStatusInput) (entities.Delivery, error) {
			assert.Equal(t, entities.DeliveryDelivered, in.Status)
			require.NotNil(t, in.Location)
			require.NotNil(t, in.ProofOfDelivery)
			assert.Equal(t, "signed", in.ProofOfDelivery.Signature)
			return entities.Delivery{ID: id, Status: in.Status, RiderID: "r1"}, nil
		}).Once()

	rec := f.do(t, http.MethodPut, "/deliveries/d1/status", token,
		`{"status":"delivered","location":{"latitude":14.5,"longitude":121},"proofOfDelivery":{"signature":"signed"}}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "delivered", decode[repo.Delivery](t, rec).Status)

	rec = f.do(t, http.MethodPut, "/deliveries/d1/status", token, `{"status":"pending"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHTTPHandler_UpdateRiderLocation(t *testing.T) {
	f := newFixture(t)
	token := f.token(t, "r1", entities.RoleRider)

	f.riders.EXPECT().UpdateRiderLocation(mock.Anything, "r1", 14.5, 0.0).
		Return(entities.Rider{ID: "r1", Location: &entities.Coordinates{Latitude: 14.5}}, nil).Once()

	// нулевая долгота допустима
	rec := f.do(t, http.MethodPut, "/deliveries/location", token, `{"latitude":14.5,"longitude":0}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	for _, body := range []string{`{"latitude":91,"longitude":0}`, `{"latitude":14.5}`} {
		rec = f.do(t, http.MethodPut, "/deliveries/location", token, body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
	}
}

func TestHTTPHandler_SetAvailability(t *testing.T) {
	f := newFixture(t)
	token := f.token(t, "r1", entities.RoleRider)

	f.riders.EXPECT().SetAvailability(mock.Anything, "r1", false).
		Return(entities.Rider{ID: "r1"}, nil).Once()

	rec := f.do(t, http.MethodPut, "/riders/availability", token, `{"available":false}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(t, http.MethodPut, "/riders/availability", token, `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHTTPHandler_TrackDelivery(t *testing.T) {
	f := newFixture(t)

	f.svc.EXPECT().TrackDelivery(mock.Anything, "d1").Return(entities.TrackView{
		Delivery: entities.Delivery{ID: "d1", Status: entities.DeliveryInTransit, RiderID: "r1"},
		Rider:    &entities.Rider{ID: "r1", Location: &entities.Coordinates{Latitude: 1, Longitude: 2}},
		Order:    &entities.Order{ID: "o1", Status: entities.OrderInTransit, TotalAmount: decimal.NewFromInt(180)},
	}, nil).Once()
	f.svc.EXPECT().TrackDelivery(mock.Anything, "missing").Return(entities.TrackView{}, entities.ErrDeliveryNotFound).Once()

	// токен не нужен
	rec := f.do(t, http.MethodGet, "/deliveries/d1/track", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	res := decode[handler.TrackResponse](t, rec)
	assert.Equal(t, "in_transit", res.Delivery.Status)
	require.NotNil(t, res.Rider)
	require.NotNil(t, res.Order)
	assert.Equal(t, "o1", res.Order.ID)

	rec = f.do(t, http.MethodGet, "/deliveries/missing/track", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHTTPHandler_ListOrders(t *testing.T) {
	f := newFixture(t)
	actor := entities.Actor{ID: "s1", Role: entities.RoleSeller}

	f.svc.EXPECT().ListOrders(mock.Anything, actor).Return([]entities.Order{{ID: "o2"}, {ID: "o1"}}, nil).Once()

	rec := f.do(t, http.MethodGet, "/orders", f.token(t, actor.ID, actor.Role), "")
	require.Equal(t, http.StatusOK, rec.Code)
	orders := decode[[]repo.Order](t, rec)
	require.Len(t, orders, 2)
	assert.Equal(t, "o2", orders[0].ID)
}

func TestHTTPHandler_AdminDelete(t *testing.T) {
	f := newFixture(t)

	f.svc.EXPECT().DeleteOrder(mock.Anything, "o1").Return(nil).Once()
	f.svc.EXPECT().DeleteDelivery(mock.Anything, "d1").Return(entities.ErrDeliveryNotFound).Once()

	admin := f.token(t, "root", entities.RoleSuperadmin)
	assert.Equal(t, http.StatusNoContent, f.do(t, http.MethodDelete, "/orders/o1", admin, "").Code)
	assert.Equal(t, http.StatusNotFound, f.do(t, http.MethodDelete, "/deliveries/d1", admin, "").Code)
	assert.Equal(t, http.StatusForbidden, f.do(t, http.MethodDelete, "/orders/o1", f.token(t, "b1", entities.RoleBuyer), "").Code)
}
