package service_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/courier-hub/internal/config"
	"github.com/SergeyBogomolovv/courier-hub/internal/docstore"
	"github.com/SergeyBogomolovv/courier-hub/internal/entities"
	"github.com/SergeyBogomolovv/courier-hub/internal/repo"
	"github.com/SergeyBogomolovv/courier-hub/internal/service"
	mocks "github.com/SergeyBogomolovv/courier-hub/internal/service/mocks"
	"github.com/SergeyBogomolovv/courier-hub/pkg/cache"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	buyer  = entities.Actor{ID: "b1", Role: entities.RoleBuyer}
	seller = entities.Actor{ID: "s1", Role: entities.RoleSeller}
	admin  = entities.Actor{ID: "root", Role: entities.RoleSuperadmin}
	riderA = entities.Actor{ID: "r1", Role: entities.RoleRider}
	riderB = entities.Actor{ID: "r2", Role: entities.RoleRider}
)

type fixture struct {
	coord     *service.Coordinator
	directory *service.RiderDirectory

	orders     *repo.OrderRepo
	deliveries *repo.DeliveryRepo
	products   *repo.ProductRepo
	riders     *repo.RiderRepo

	pub   *mocks.MockPublisher
	cache *cache.LRUCache
	logs  *bytes.Buffer
}

func newFixture(t *testing.T, dispatch config.Dispatch) *fixture {
	return newFixtureWithStore(t, docstore.NewMemoryStore(), dispatch)
}

func newFixtureWithStore(t *testing.T, store docstore.Store, dispatch config.Dispatch) *fixture {
	t.Helper()

	logs := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	f := &fixture{
		orders:     repo.NewOrderRepo(store),
		deliveries: repo.NewDeliveryRepo(store),
		products:   repo.NewProductRepo(store),
		riders:     repo.NewRiderRepo(store),
		pub:        mocks.NewMockPublisher(t),
		logs:       logs,
	}
	trackCache := cache.NewLRUCache(100, time.Minute)
	f.cache = trackCache

	f.coord = service.NewCoordinator(logger, service.Repos{
		Orders:     f.orders,
		Deliveries: f.deliveries,
		Products:   f.products,
		Riders:     f.riders,
	}, f.pub, trackCache, dispatch, time.Second)
	f.directory = service.NewRiderDirectory(logger, f.riders, f.deliveries, f.pub, trackCache, time.Second)

	ctx := context.Background()
	for _, p := range []entities.Product{
		{ID: "p1", SellerID: "s1", Name: "Mango", Price: decimal.NewFromInt(100), Stock: 5},
		{ID: "p2", SellerID: "s1", Name: "Banana", Price: decimal.NewFromInt(50), Stock: 1},
		{ID: "p3", SellerID: "s2", Name: "Coconut", Price: decimal.NewFromInt(80), Stock: 10},
	} {
		require.NoError(t, f.products.Create(ctx, p))
	}
	return f
}

// allowEvents accepts any publish. Register specific expectations before it:
// the first matching expectation wins.
func (f *fixture) allowEvents() {
	f.pub.EXPECT().PublishToUser(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
	f.pub.EXPECT().PublishToDelivery(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
}

func (f *fixture) stock(t *testing.T, productID string) int {
	t.Helper()
	p, err := f.products.GetByID(context.Background(), productID)
	require.NoError(t, err)
	return p.Stock
}

func productOrder(items ...service.OrderItemInput) service.OrderInput {
	return service.OrderInput{
		DeliveryType:    entities.DeliveryTypeProduct,
		Items:           items,
		PickupAddress:   "12 Market st.",
		DeliveryAddress: "7 Harbor rd.",
		Distance:        3,
	}
}

func item(productID string, quantity int) service.OrderItemInput {
	return service.OrderItemInput{ProductID: productID, Quantity: quantity}
}

// confirmedOrder creates an order and confirms it, which provisions its delivery.
func (f *fixture) confirmedOrder(t *testing.T) (entities.Order, entities.Delivery) {
	t.Helper()
	ctx := context.Background()

	order, err := f.coord.CreateOrder(ctx, buyer.ID, productOrder(item("p1", 1)))
	require.NoError(t, err)
	order, err = f.coord.UpdateOrderStatus(ctx, order.ID, seller, entities.OrderConfirmed, "")
	require.NoError(t, err)
	require.NotEmpty(t, order.DeliveryID)

	delivery, err := f.deliveries.GetByID(ctx, order.DeliveryID)
	require.NoError(t, err)
	return order, delivery
}

var orderRank = map[entities.OrderStatus]int{
	entities.OrderPending:    0,
	entities.OrderConfirmed:  1,
	entities.OrderProcessing: 2,
	entities.OrderReady:      3,
	entities.OrderPickedUp:   4,
	entities.OrderInTransit:  5,
	entities.OrderDelivered:  6,
}

// requireHistoryConsistent checks that history only moves forward, except for
// the cancelled exit, and ends with the current status.
func requireHistoryConsistent(t *testing.T, o entities.Order) {
	t.Helper()
	require.NotEmpty(t, o.StatusHistory)
	require.Equal(t, o.Status, o.StatusHistory[len(o.StatusHistory)-1].Status)

	for i := 1; i < len(o.StatusHistory); i++ {
		prev, next := o.StatusHistory[i-1].Status, o.StatusHistory[i].Status
		if next == entities.OrderCancelled {
			require.Equal(t, len(o.StatusHistory)-1, i, "cancelled must be the last entry")
			continue
		}
		require.GreaterOrEqual(t, orderRank[next], orderRank[prev], "history regressed from %s to %s", prev, next)
	}
}

// failingStore rejects inserts into one collection.
type failingStore struct {
	docstore.Store
	collection string
}

func (s failingStore) Insert(ctx context.Context, collection, id string, doc []byte) error {
	if collection == s.collection {
		return errors.New("store unavailable")
	}
	return s.Store.Insert(ctx, collection, id, doc)
}
