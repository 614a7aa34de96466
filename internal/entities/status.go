package entities

type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderConfirmed  OrderStatus = "confirmed"
	OrderProcessing OrderStatus = "processing"
	OrderReady      OrderStatus = "ready"
	OrderPickedUp   OrderStatus = "picked_up"
	OrderInTransit  OrderStatus = "in_transit"
	OrderDelivered  OrderStatus = "delivered"
	OrderCancelled  OrderStatus = "cancelled"
)

// порядок статусов заказа; cancelled вне порядка
var orderRank = map[OrderStatus]int{
	OrderPending:    0,
	OrderConfirmed:  1,
	OrderProcessing: 2,
	OrderReady:      3,
	OrderPickedUp:   4,
	OrderInTransit:  5,
	OrderDelivered:  6,
}

func (s OrderStatus) Valid() bool {
	_, ok := orderRank[s]
	return ok || s == OrderCancelled
}

func (s OrderStatus) Terminal() bool {
	return s == OrderDelivered || s == OrderCancelled
}

func (s OrderStatus) Cancellable() bool {
	return s == OrderPending || s == OrderConfirmed
}

// CanTransition reports whether an order may move from s to next.
// Repeating the current status is allowed, moving backwards is not.
func (s OrderStatus) CanTransition(next OrderStatus) bool {
	if s.Terminal() || !next.Valid() {
		return false
	}
	if next == OrderCancelled {
		return s.Cancellable()
	}
	return orderRank[next] >= orderRank[s]
}

type DeliveryStatus string

const (
	DeliveryPending   DeliveryStatus = "pending"
	DeliveryAssigned  DeliveryStatus = "assigned"
	DeliveryPickedUp  DeliveryStatus = "picked_up"
	DeliveryInTransit DeliveryStatus = "in_transit"
	DeliveryDelivered DeliveryStatus = "delivered"
	DeliveryFailed    DeliveryStatus = "failed"
)

var deliveryRank = map[DeliveryStatus]int{
	DeliveryPending:   0,
	DeliveryAssigned:  1,
	DeliveryPickedUp:  2,
	DeliveryInTransit: 3,
	DeliveryDelivered: 4,
}

func (s DeliveryStatus) Valid() bool {
	_, ok := deliveryRank[s]
	return ok || s == DeliveryFailed
}

func (s DeliveryStatus) Terminal() bool {
	return s == DeliveryDelivered || s == DeliveryFailed
}

// Active statuses are the ones where a rider is carrying the delivery.
func (s DeliveryStatus) Active() bool {
	return s == DeliveryAssigned || s == DeliveryPickedUp || s == DeliveryInTransit
}

// CanTransition reports whether a delivery may move from s to next through a
// status update. Repeating the current status is allowed, terminal ones included.
// Going back to pending is never allowed: reopening is not supported.
func (s DeliveryStatus) CanTransition(next DeliveryStatus) bool {
	if next == s {
		return s.Valid() && s != DeliveryPending
	}
	if s.Terminal() || !next.Valid() || next == DeliveryPending {
		return false
	}
	if next == DeliveryFailed {
		return true
	}
	return deliveryRank[next] >= deliveryRank[s]
}

// OrderStatusForDelivery is the mirroring table between the two state machines.
// Delivery statuses missing here leave the linked order untouched.
var OrderStatusForDelivery = map[DeliveryStatus]OrderStatus{
	DeliveryAssigned:  OrderPickedUp,
	DeliveryPickedUp:  OrderPickedUp,
	DeliveryInTransit: OrderInTransit,
	DeliveryDelivered: OrderDelivered,
}

// MirrorTarget returns the order status a delivery status forces on the linked
// order, or false when the order must stay as it is.
func MirrorTarget(current OrderStatus, ds DeliveryStatus) (OrderStatus, bool) {
	target, ok := OrderStatusForDelivery[ds]
	if !ok || current == target {
		return "", false
	}
	if !current.CanTransition(target) {
		return "", false
	}
	return target, true
}
