package entities

import (
	"bytes"
	"encoding/gob"
	"time"

	"github.com/shopspring/decimal"
)

type DeliveryType string

const (
	DeliveryTypeProduct  DeliveryType = "product"
	DeliveryTypeDocument DeliveryType = "document"
)

type Coordinates struct {
	Latitude  float64
	Longitude float64
}

type OrderItem struct {
	ProductID string
	Name      string
	Quantity  int
	Price     decimal.Decimal
	Image     string
}

type DocumentDetails struct {
	Description  string
	Quantity     int
	Fragile      bool
	Instructions string
}

type StatusEntry struct {
	Status    OrderStatus
	Note      string
	Timestamp time.Time
}

type Order struct {
	ID               string
	OrderNumber      string
	BuyerID          string
	SellerID         string
	PreferredRiderID string

	DeliveryType    DeliveryType
	Items           []OrderItem
	DocumentDetails *DocumentDetails

	TotalAmount decimal.Decimal
	DeliveryFee decimal.Decimal
	Distance    float64

	PickupAddress       string
	PickupCoordinates   *Coordinates
	DeliveryAddress     string
	DeliveryCoordinates *Coordinates

	Status        OrderStatus
	StatusHistory []StatusEntry

	// пустая строка, пока заказ не подтвержден
	DeliveryID string

	CreatedAt time.Time
	UpdatedAt time.Time
}

type TrackingEntry struct {
	Status    DeliveryStatus
	Location  *Coordinates
	Note      string
	Timestamp time.Time
}

type ProofOfDelivery struct {
	Signature string
	Photo     string
	Notes     string
}

// OrderDetails снимок заказа на момент создания доставки
type OrderDetails struct {
	OrderNumber string
	Items       []OrderItem
	TotalAmount decimal.Decimal
}

type Delivery struct {
	ID             string
	DeliveryNumber string

	OrderID  string
	SenderID string
	BuyerID  string
	RiderID  string

	PickupAddress       string
	PickupCoordinates   *Coordinates
	DeliveryAddress     string
	DeliveryCoordinates *Coordinates

	DeliveryFee     decimal.Decimal
	Distance        float64
	DocumentDetails *DocumentDetails
	OrderDetails    *OrderDetails

	Status   DeliveryStatus
	Tracking []TrackingEntry

	ActualDeliveryTime *time.Time
	ProofOfDelivery    *ProofOfDelivery

	CreatedAt time.Time
	UpdatedAt time.Time
}

type Location struct {
	Latitude    float64
	Longitude   float64
	LastUpdated time.Time
}

type Rider struct {
	ID        string
	Name      string
	Phone     string
	Available bool
	Location  *Location
	UpdatedAt time.Time
}

type Product struct {
	ID       string
	SellerID string
	Name     string
	Price    decimal.Decimal
	Image    string
	Stock    int
}

// TrackView доставка с подгруженными курьером и заказом
type TrackView struct {
	Delivery Delivery
	Rider    *Rider
	Order    *Order
}

func (v *TrackView) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (v *TrackView) Unmarshal(data []byte) error {
	buf := bytes.NewBuffer(data)
	dec := gob.NewDecoder(buf)
	return dec.Decode(v)
}

func init() {
	gob.Register(TrackView{})
	gob.Register(Delivery{})
	gob.Register(Order{})
	gob.Register(Rider{})
}
