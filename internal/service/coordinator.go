package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/SergeyBogomolovv/courier-hub/internal/config"
	"github.com/SergeyBogomolovv/courier-hub/internal/entities"
	"github.com/SergeyBogomolovv/courier-hub/internal/fanout"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// errDeliveryLinked aborts linking a provisioned delivery to an order that
// already got one from a concurrent confirmation.
var errDeliveryLinked = errors.New("order already has a delivery")

type Repos struct {
	Orders     OrderRepo
	Deliveries DeliveryRepo
	Products   ProductRepo
	Riders     RiderRepo
}

// Coordinator drives orders and deliveries through their lifecycles and keeps
// the order status in step with its delivery.
type Coordinator struct {
	logger *slog.Logger
	notifier

	orders     OrderRepo
	deliveries DeliveryRepo
	products   ProductRepo
	riders     RiderRepo

	cache    Cache
	group    singleflight.Group
	dispatch config.Dispatch
}

func NewCoordinator(logger *slog.Logger, repos Repos, publisher Publisher, cache Cache, dispatch config.Dispatch, publishTimeout time.Duration) *Coordinator {
	logger = logger.With(slog.String("service", "coordinator"))
	return &Coordinator{
		logger:     logger,
		notifier:   notifier{logger: logger, publisher: publisher, timeout: publishTimeout},
		orders:     repos.Orders,
		deliveries: repos.Deliveries,
		products:   repos.Products,
		riders:     repos.Riders,
		cache:      cache,
		dispatch:   dispatch,
	}
}

func (c *Coordinator) CreateOrder(ctx context.Context, buyerID string, in OrderInput) (entities.Order, error) {
	if buyerID == "" {
		return entities.Order{}, entities.Validationf("buyer is required")
	}

	now := time.Now().UTC()
	order := entities.Order{
		ID:                  uuid.NewString(),
		OrderNumber:         newNumber("ORD", now),
		BuyerID:             buyerID,
		SellerID:            in.SellerID,
		PreferredRiderID:    in.PreferredRiderID,
		DeliveryType:        in.DeliveryType,
		DeliveryFee:         in.DeliveryFee,
		Distance:            in.Distance,
		PickupAddress:       in.PickupAddress,
		PickupCoordinates:   in.PickupCoordinates,
		DeliveryAddress:     in.DeliveryAddress,
		DeliveryCoordinates: in.DeliveryCoordinates,
		Status:              entities.OrderPending,
		StatusHistory: []entities.StatusEntry{
			{Status: entities.OrderPending, Note: "order placed", Timestamp: now},
		},
	}

	var reserved []OrderItemInput
	switch in.DeliveryType {
	case entities.DeliveryTypeProduct:
		items, sellerID, err := c.resolveItems(ctx, in)
		if err != nil {
			return entities.Order{}, err
		}
		if reserved, err = c.reserveStock(ctx, in.Items); err != nil {
			return entities.Order{}, err
		}
		order.Items = items
		order.SellerID = sellerID
		order.TotalAmount = orderTotal(items)

	case entities.DeliveryTypeDocument:
		if in.DocumentDetails == nil {
			return entities.Order{}, entities.Validationf("document details are required")
		}
		if in.SellerID == "" {
			return entities.Order{}, entities.Validationf("seller is required for document orders")
		}
		if in.TotalAmount.IsNegative() {
			return entities.Order{}, entities.Validationf("total amount must not be negative")
		}
		details := *in.DocumentDetails
		order.DocumentDetails = &details
		order.TotalAmount = in.TotalAmount

	default:
		return entities.Order{}, entities.Validationf("unknown delivery type %q", in.DeliveryType)
	}

	order, err := c.orders.Create(ctx, order)
	if err != nil {
		c.restoreStock(ctx, reserved)
		return entities.Order{}, fmt.Errorf("failed to create order: %w", err)
	}

	transitionsTotal.WithLabelValues("order", string(order.Status)).Inc()
	c.logger.InfoContext(ctx, "order created",
		slog.String("order_id", order.ID),
		slog.String("order_number", order.OrderNumber),
		slog.String("total", order.TotalAmount.String()),
	)

	doc := orderDocument(order)
	c.toUser(ctx, order.SellerID, fanout.EventNewOrderReceived, doc)
	c.toUser(ctx, order.PreferredRiderID, fanout.EventNewOrderNotification, doc)
	return order, nil
}

// resolveItems prices the line items from the catalog. All products must
// belong to a single seller.
func (c *Coordinator) resolveItems(ctx context.Context, in OrderInput) ([]entities.OrderItem, string, error) {
	if len(in.Items) == 0 {
		return nil, "", entities.Validationf("order has no items")
	}

	sellerID := in.SellerID
	items := make([]entities.OrderItem, 0, len(in.Items))
	for _, item := range in.Items {
		if item.ProductID == "" || item.Quantity <= 0 {
			return nil, "", entities.Validationf("item %q has invalid quantity %d", item.ProductID, item.Quantity)
		}

		product, err := c.products.GetByID(ctx, item.ProductID)
		if err != nil {
			return nil, "", fmt.Errorf("failed to get product %s: %w", item.ProductID, err)
		}
		if product.Stock < item.Quantity {
			return nil, "", fmt.Errorf("%w: %s has %d left", entities.ErrInsufficientStock, product.Name, product.Stock)
		}

		if sellerID == "" {
			sellerID = product.SellerID
		}
		if product.SellerID != sellerID {
			return nil, "", entities.Validationf("product %s is not sold by %s", product.ID, sellerID)
		}

		items = append(items, entities.OrderItem{
			ProductID: product.ID,
			Name:      product.Name,
			Quantity:  item.Quantity,
			Price:     product.Price,
			Image:     product.Image,
		})
	}
	return items, sellerID, nil
}

// reserveStock decrements stock item by item. If one decrement fails the
// already reserved items are put back.
func (c *Coordinator) reserveStock(ctx context.Context, items []OrderItemInput) ([]OrderItemInput, error) {
	reserved := make([]OrderItemInput, 0, len(items))
	for _, item := range items {
		if _, err := c.products.AdjustStock(ctx, item.ProductID, -item.Quantity); err != nil {
			c.restoreStock(ctx, reserved)
			return nil, fmt.Errorf("failed to reserve product %s: %w", item.ProductID, err)
		}
		reserved = append(reserved, item)
	}
	return reserved, nil
}

func (c *Coordinator) restoreStock(ctx context.Context, items []OrderItemInput) {
	for _, item := range items {
		if _, err := c.products.AdjustStock(ctx, item.ProductID, item.Quantity); err != nil {
			c.logger.ErrorContext(ctx, "failed to restore stock",
				slog.String("product_id", item.ProductID),
				slog.Int("quantity", item.Quantity),
				slog.Any("error", err),
			)
		}
	}
}

func (c *Coordinator) UpdateOrderStatus(ctx context.Context, orderID string, actor entities.Actor, status entities.OrderStatus, note string) (entities.Order, error) {
	if !status.Valid() {
		return entities.Order{}, entities.Validationf("unknown order status %q", status)
	}

	authorize := func(o *entities.Order) error {
		if !actor.IsSuperadmin() && o.SellerID != actor.ID {
			return entities.Forbiddenf("only the seller can update order %s", o.ID)
		}
		return nil
	}

	if status == entities.OrderCancelled {
		order, err := c.cancel(ctx, orderID, authorize, note)
		if err != nil {
			return entities.Order{}, err
		}
		c.toUser(ctx, order.BuyerID, fanout.EventOrderUpdate, orderUpdateEvent(order, note))
		return order, nil
	}

	order, err := c.orders.Update(ctx, orderID, func(o *entities.Order) error {
		if err := authorize(o); err != nil {
			return err
		}
		if !o.Status.CanTransition(status) {
			return entities.NewOrderStateError(o.Status, status)
		}
		o.Status = status
		o.StatusHistory = append(o.StatusHistory, entities.StatusEntry{
			Status:    status,
			Note:      note,
			Timestamp: time.Now().UTC(),
		})
		return nil
	})
	if err != nil {
		return entities.Order{}, err
	}

	transitionsTotal.WithLabelValues("order", string(status)).Inc()
	c.invalidateTrack(order.DeliveryID)

	if status == entities.OrderConfirmed && order.DeliveryID == "" {
		provisioned, err := c.provisionDelivery(ctx, order)
		if err != nil {
			c.logger.ErrorContext(ctx, "failed to provision delivery",
				slog.String("order_id", order.ID),
				slog.Any("error", fmt.Errorf("%w: %w", entities.ErrUpstream, err)),
			)
		} else {
			order = provisioned
		}
	}

	c.toUser(ctx, order.BuyerID, fanout.EventOrderUpdate, orderUpdateEvent(order, note))
	return order, nil
}

// provisionDelivery creates the pending delivery for a confirmed order and
// links it. The order keeps the first delivery linked to it. A non-zero
// delivery fee is charged on top of the order total and replaces the fee the
// order was placed with.
func (c *Coordinator) provisionDelivery(ctx context.Context, order entities.Order) (entities.Order, error) {
	fee := decimal.Max(order.DeliveryFee, c.quoteFee(order.Distance))
	now := time.Now().UTC()

	delivery, err := c.deliveries.Create(ctx, entities.Delivery{
		ID:                  uuid.NewString(),
		DeliveryNumber:      newNumber("DEL", now),
		OrderID:             order.ID,
		SenderID:            order.SellerID,
		BuyerID:             order.BuyerID,
		PickupAddress:       order.PickupAddress,
		PickupCoordinates:   order.PickupCoordinates,
		DeliveryAddress:     order.DeliveryAddress,
		DeliveryCoordinates: order.DeliveryCoordinates,
		DeliveryFee:         fee,
		Distance:            order.Distance,
		DocumentDetails:     order.DocumentDetails,
		OrderDetails: &entities.OrderDetails{
			OrderNumber: order.OrderNumber,
			Items:       order.Items,
			TotalAmount: order.TotalAmount,
		},
		Status: entities.DeliveryPending,
		Tracking: []entities.TrackingEntry{
			{Status: entities.DeliveryPending, Note: "delivery created", Timestamp: now},
		},
	})
	if err != nil {
		return entities.Order{}, err
	}

	linked, err := c.orders.Update(ctx, order.ID, func(o *entities.Order) error {
		if o.DeliveryID != "" {
			return errDeliveryLinked
		}
		o.DeliveryID = delivery.ID
		// сумма заказа до этого момента не включает доставку
		if delivery.DeliveryFee.IsPositive() {
			o.DeliveryFee = delivery.DeliveryFee
			o.TotalAmount = o.TotalAmount.Add(delivery.DeliveryFee)
		}
		return nil
	})
	if err != nil {
		if delErr := c.deliveries.Delete(ctx, delivery.ID); delErr != nil {
			c.logger.ErrorContext(ctx, "failed to remove unlinked delivery",
				slog.String("delivery_id", delivery.ID),
				slog.Any("error", delErr),
			)
		}
		if errors.Is(err, errDeliveryLinked) {
			return c.orders.GetByID(ctx, order.ID)
		}
		return entities.Order{}, fmt.Errorf("failed to link delivery: %w", err)
	}

	transitionsTotal.WithLabelValues("delivery", string(delivery.Status)).Inc()
	c.logger.InfoContext(ctx, "delivery provisioned",
		slog.String("order_id", order.ID),
		slog.String("delivery_id", delivery.ID),
	)

	c.requestRiders(ctx, delivery, order.PreferredRiderID)
	return linked, nil
}

// requestRiders offers a new delivery to the preferred rider, or to every
// available rider when none was named.
func (c *Coordinator) requestRiders(ctx context.Context, d entities.Delivery, preferredRiderID string) {
	doc := deliveryDocument(d)
	if preferredRiderID != "" {
		c.toUser(ctx, preferredRiderID, fanout.EventNewDeliveryRequest, doc)
		return
	}

	riders, err := c.riders.ListAvailable(ctx)
	if err != nil {
		c.logger.WarnContext(ctx, "failed to list available riders",
			slog.String("delivery_id", d.ID),
			slog.Any("error", fmt.Errorf("%w: %w", entities.ErrUpstream, err)),
		)
		return
	}
	for _, rider := range riders {
		c.toUser(ctx, rider.ID, fanout.EventNewDeliveryRequest, doc)
	}
}

func (c *Coordinator) CancelOrder(ctx context.Context, orderID, buyerID, reason string) (entities.Order, error) {
	return c.cancel(ctx, orderID, func(o *entities.Order) error {
		if o.BuyerID != buyerID {
			return entities.Forbiddenf("only the buyer can cancel order %s", o.ID)
		}
		return nil
	}, reason)
}

func (c *Coordinator) cancel(ctx context.Context, orderID string, authorize func(o *entities.Order) error, reason string) (entities.Order, error) {
	order, err := c.orders.Update(ctx, orderID, func(o *entities.Order) error {
		if err := authorize(o); err != nil {
			return err
		}
		if !o.Status.Cancellable() {
			return entities.NewOrderStateError(o.Status, entities.OrderCancelled)
		}
		o.Status = entities.OrderCancelled
		o.StatusHistory = append(o.StatusHistory, entities.StatusEntry{
			Status:    entities.OrderCancelled,
			Note:      reason,
			Timestamp: time.Now().UTC(),
		})
		return nil
	})
	if err != nil {
		return entities.Order{}, err
	}

	transitionsTotal.WithLabelValues("order", string(order.Status)).Inc()
	c.invalidateTrack(order.DeliveryID)

	if order.DeliveryType == entities.DeliveryTypeProduct {
		items := make([]OrderItemInput, 0, len(order.Items))
		for _, item := range order.Items {
			items = append(items, OrderItemInput{ProductID: item.ProductID, Quantity: item.Quantity})
		}
		c.restoreStock(ctx, items)
	}

	c.logger.InfoContext(ctx, "order cancelled", slog.String("order_id", order.ID), slog.String("reason", reason))
	c.toUser(ctx, order.SellerID, fanout.EventOrderCancelled, OrderCancelledEvent{
		OrderID:     order.ID,
		OrderNumber: order.OrderNumber,
		Reason:      reason,
	})
	return order, nil
}

func (c *Coordinator) GetOrder(ctx context.Context, orderID string, actor entities.Actor) (entities.Order, error) {
	order, err := c.orders.GetByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if !actor.IsSuperadmin() && order.BuyerID != actor.ID && order.SellerID != actor.ID {
		return entities.Order{}, entities.Forbiddenf("order %s belongs to another user", orderID)
	}
	return order, nil
}

// ListOrders returns orders where the actor is the buyer or the seller,
// newest first.
func (c *Coordinator) ListOrders(ctx context.Context, actor entities.Actor) ([]entities.Order, error) {
	var bought, sold []entities.Order

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		bought, err = c.orders.ListByBuyer(ctx, actor.ID)
		return err
	})
	eg.Go(func() error {
		var err error
		sold, err = c.orders.ListBySeller(ctx, actor.ID)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(bought))
	result := make([]entities.Order, 0, len(bought)+len(sold))
	for _, o := range append(bought, sold...) {
		if _, ok := seen[o.ID]; ok {
			continue
		}
		seen[o.ID] = struct{}{}
		result = append(result, o)
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (c *Coordinator) DeleteOrder(ctx context.Context, orderID string) error {
	order, err := c.orders.GetByID(ctx, orderID)
	if err != nil {
		return err
	}
	if err := c.orders.Delete(ctx, orderID); err != nil {
		return err
	}
	c.invalidateTrack(order.DeliveryID)
	c.logger.InfoContext(ctx, "order deleted", slog.String("order_id", orderID))
	return nil
}

// quoteFee prices a delivery by distance. A zero tariff quotes nothing and
// the fee recorded on the order stands.
func (c *Coordinator) quoteFee(distance float64) decimal.Decimal {
	base := decimal.NewFromFloat(c.dispatch.BaseFee)
	perKm := decimal.NewFromFloat(c.dispatch.PerKmFee)
	return base.Add(perKm.Mul(decimal.NewFromFloat(distance))).Round(2)
}

func (c *Coordinator) invalidateTrack(deliveryID string) {
	if deliveryID != "" {
		c.cache.Delete(trackKey(deliveryID))
	}
}

func orderTotal(items []entities.OrderItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}

// newNumber builds a human readable number like ORD-1718000000000-A1B2.
func newNumber(prefix string, now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:4])
	return fmt.Sprintf("%s-%d-%s", prefix, now.UnixMilli(), suffix)
}
