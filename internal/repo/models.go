package repo

import (
	"time"

	"github.com/SergeyBogomolovv/courier-hub/internal/entities"

	"github.com/shopspring/decimal"
)

const (
	ordersCollection     = "orders"
	deliveriesCollection = "deliveries"
	productsCollection   = "products"
	ridersCollection     = "riders"
)

type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type OrderItem struct {
	ProductID string          `json:"productId"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	Image     string          `json:"image,omitempty"`
}

type DocumentDetails struct {
	Description  string `json:"description"`
	Quantity     int    `json:"quantity"`
	Fragile      bool   `json:"isFragile"`
	Instructions string `json:"specialInstructions,omitempty"`
}

type StatusEntry struct {
	Status    string    `json:"status"`
	Note      string    `json:"note,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type Order struct {
	ID               string `json:"id"`
	OrderNumber      string `json:"orderNumber"`
	BuyerID          string `json:"buyerId"`
	SellerID         string `json:"sellerId"`
	PreferredRiderID string `json:"preferredRiderId,omitempty"`

	DeliveryType    string           `json:"deliveryType"`
	Items           []OrderItem      `json:"items,omitempty"`
	DocumentDetails *DocumentDetails `json:"documentDetails,omitempty"`

	TotalAmount decimal.Decimal `json:"totalAmount"`
	DeliveryFee decimal.Decimal `json:"deliveryFee"`
	Distance    float64         `json:"distance"`

	PickupAddress       string       `json:"pickupAddress"`
	PickupCoordinates   *Coordinates `json:"pickupCoordinates,omitempty"`
	DeliveryAddress     string       `json:"deliveryAddress"`
	DeliveryCoordinates *Coordinates `json:"deliveryCoordinates,omitempty"`

	Status        string        `json:"status"`
	StatusHistory []StatusEntry `json:"statusHistory"`
	DeliveryID    string        `json:"deliveryId,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type TrackingEntry struct {
	Status    string       `json:"status"`
	Location  *Coordinates `json:"location,omitempty"`
	Note      string       `json:"note,omitempty"`
	Timestamp time.Time    `json:"timestamp"`
}

type ProofOfDelivery struct {
	Signature string `json:"signature,omitempty"`
	Photo     string `json:"photo,omitempty"`
	Notes     string `json:"notes,omitempty"`
}

type OrderDetails struct {
	OrderNumber string          `json:"orderNumber"`
	Items       []OrderItem     `json:"items,omitempty"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
}

type Delivery struct {
	ID             string `json:"id"`
	DeliveryNumber string `json:"deliveryNumber"`

	OrderID  string `json:"orderId,omitempty"`
	SenderID string `json:"senderId"`
	BuyerID  string `json:"buyerId,omitempty"`
	RiderID  string `json:"riderId,omitempty"`

	PickupAddress       string       `json:"pickupAddress"`
	PickupCoordinates   *Coordinates `json:"pickupCoordinates,omitempty"`
	DeliveryAddress     string       `json:"deliveryAddress"`
	DeliveryCoordinates *Coordinates `json:"deliveryCoordinates,omitempty"`

	DeliveryFee     decimal.Decimal  `json:"deliveryFee"`
	Distance        float64          `json:"distance"`
	DocumentDetails *DocumentDetails `json:"documentDetails,omitempty"`
	OrderDetails    *OrderDetails    `json:"orderDetails,omitempty"`

	Status   string          `json:"status"`
	Tracking []TrackingEntry `json:"tracking"`

	ActualDeliveryTime *time.Time       `json:"actualDeliveryTime,omitempty"`
	ProofOfDelivery    *ProofOfDelivery `json:"proofOfDelivery,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Location struct {
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	LastUpdated time.Time `json:"lastUpdated"`
}

type Rider struct {
	ID        string    `json:"id"`
	Name      string    `json:"name,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Available bool      `json:"available"`
	Location  *Location `json:"location,omitempty"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Product struct {
	ID       string          `json:"id"`
	SellerID string          `json:"sellerId"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Image    string          `json:"image,omitempty"`
	Stock    int             `json:"stock"`
}

func coordinatesToEntity(c *Coordinates) *entities.Coordinates {
	if c == nil {
		return nil
	}
	return &entities.Coordinates{Latitude: c.Latitude, Longitude: c.Longitude}
}

func coordinatesFromEntity(c *entities.Coordinates) *Coordinates {
	if c == nil {
		return nil
	}
	return &Coordinates{Latitude: c.Latitude, Longitude: c.Longitude}
}

func itemsToEntity(items []OrderItem) []entities.OrderItem {
	if len(items) == 0 {
		return nil
	}
	out := make([]entities.OrderItem, 0, len(items))
	for _, it := range items {
		out = append(out, entities.OrderItem{
			ProductID: it.ProductID,
			Name:      it.Name,
			Quantity:  it.Quantity,
			Price:     it.Price,
			Image:     it.Image,
		})
	}
	return out
}

func itemsFromEntity(items []entities.OrderItem) []OrderItem {
	if len(items) == 0 {
		return nil
	}
	out := make([]OrderItem, 0, len(items))
	for _, it := range items {
		out = append(out, OrderItem{
			ProductID: it.ProductID,
			Name:      it.Name,
			Quantity:  it.Quantity,
			Price:     it.Price,
			Image:     it.Image,
		})
	}
	return out
}

func documentDetailsToEntity(d *DocumentDetails) *entities.DocumentDetails {
	if d == nil {
		return nil
	}
	return &entities.DocumentDetails{
		Description:  d.Description,
		Quantity:     d.Quantity,
		Fragile:      d.Fragile,
		Instructions: d.Instructions,
	}
}

func documentDetailsFromEntity(d *entities.DocumentDetails) *DocumentDetails {
	if d == nil {
		return nil
	}
	return &DocumentDetails{
		Description:  d.Description,
		Quantity:     d.Quantity,
		Fragile:      d.Fragile,
		Instructions: d.Instructions,
	}
}

func OrderToEntity(o Order) entities.Order {
	history := make([]entities.StatusEntry, 0, len(o.StatusHistory))
	for _, h := range o.StatusHistory {
		history = append(history, entities.StatusEntry{
			Status:    entities.OrderStatus(h.Status),
			Note:      h.Note,
			Timestamp: h.Timestamp,
		})
	}

	return entities.Order{
		ID:                  o.ID,
		OrderNumber:         o.OrderNumber,
		BuyerID:             o.BuyerID,
		SellerID:            o.SellerID,
		PreferredRiderID:    o.PreferredRiderID,
		DeliveryType:        entities.DeliveryType(o.DeliveryType),
		Items:               itemsToEntity(o.Items),
		DocumentDetails:     documentDetailsToEntity(o.DocumentDetails),
		TotalAmount:         o.TotalAmount,
		DeliveryFee:         o.DeliveryFee,
		Distance:            o.Distance,
		PickupAddress:       o.PickupAddress,
		PickupCoordinates:   coordinatesToEntity(o.PickupCoordinates),
		DeliveryAddress:     o.DeliveryAddress,
		DeliveryCoordinates: coordinatesToEntity(o.DeliveryCoordinates),
		Status:              entities.OrderStatus(o.Status),
		StatusHistory:       history,
		DeliveryID:          o.DeliveryID,
		CreatedAt:           o.CreatedAt,
		UpdatedAt:           o.UpdatedAt,
	}
}

func OrderFromEntity(o entities.Order) Order {
	history := make([]StatusEntry, 0, len(o.StatusHistory))
	for _, h := range o.StatusHistory {
		history = append(history, StatusEntry{
			Status:    string(h.Status),
			Note:      h.Note,
			Timestamp: h.Timestamp,
		})
	}

	return Order{
		ID:                  o.ID,
		OrderNumber:         o.OrderNumber,
		BuyerID:             o.BuyerID,
		SellerID:            o.SellerID,
		PreferredRiderID:    o.PreferredRiderID,
		DeliveryType:        string(o.DeliveryType),
		Items:               itemsFromEntity(o.Items),
		DocumentDetails:     documentDetailsFromEntity(o.DocumentDetails),
		TotalAmount:         o.TotalAmount,
		DeliveryFee:         o.DeliveryFee,
		Distance:            o.Distance,
		PickupAddress:       o.PickupAddress,
		PickupCoordinates:   coordinatesFromEntity(o.PickupCoordinates),
		DeliveryAddress:     o.DeliveryAddress,
		DeliveryCoordinates: coordinatesFromEntity(o.DeliveryCoordinates),
		Status:              string(o.Status),
		StatusHistory:       history,
		DeliveryID:          o.DeliveryID,
		CreatedAt:           o.CreatedAt,
		UpdatedAt:           o.UpdatedAt,
	}
}

func DeliveryToEntity(d Delivery) entities.Delivery {
	tracking := make([]entities.TrackingEntry, 0, len(d.Tracking))
	for _, t := range d.Tracking {
		tracking = append(tracking, entities.TrackingEntry{
			Status:    entities.DeliveryStatus(t.Status),
			Location:  coordinatesToEntity(t.Location),
			Note:      t.Note,
			Timestamp: t.Timestamp,
		})
	}

	delivery := entities.Delivery{
		ID:                  d.ID,
		DeliveryNumber:      d.DeliveryNumber,
		OrderID:             d.OrderID,
		SenderID:            d.SenderID,
		BuyerID:             d.BuyerID,
		RiderID:             d.RiderID,
		PickupAddress:       d.PickupAddress,
		PickupCoordinates:   coordinatesToEntity(d.PickupCoordinates),
		DeliveryAddress:     d.DeliveryAddress,
		DeliveryCoordinates: coordinatesToEntity(d.DeliveryCoordinates),
		DeliveryFee:         d.DeliveryFee,
		Distance:            d.Distance,
		DocumentDetails:     documentDetailsToEntity(d.DocumentDetails),
		Status:              entities.DeliveryStatus(d.Status),
		Tracking:            tracking,
		ActualDeliveryTime:  d.ActualDeliveryTime,
		CreatedAt:           d.CreatedAt,
		UpdatedAt:           d.UpdatedAt,
	}

	if d.OrderDetails != nil {
		delivery.OrderDetails = &entities.OrderDetails{
			OrderNumber: d.OrderDetails.OrderNumber,
			Items:       itemsToEntity(d.OrderDetails.Items),
			TotalAmount: d.OrderDetails.TotalAmount,
		}
	}
	if d.ProofOfDelivery != nil {
		delivery.ProofOfDelivery = &entities.ProofOfDelivery{
			Signature: d.ProofOfDelivery.Signature,
			Photo:     d.ProofOfDelivery.Photo,
			Notes:     d.ProofOfDelivery.Notes,
		}
	}
	return delivery
}

func DeliveryFromEntity(d entities.Delivery) Delivery {
	tracking := make([]TrackingEntry, 0, len(d.Tracking))
	for _, t := range d.Tracking {
		tracking = append(tracking, TrackingEntry{
			Status:    string(t.Status),
			Location:  coordinatesFromEntity(t.Location),
			Note:      t.Note,
			Timestamp: t.Timestamp,
		})
	}

	delivery := Delivery{
		ID:                  d.ID,
		DeliveryNumber:      d.DeliveryNumber,
		OrderID:             d.OrderID,
		SenderID:            d.SenderID,
		BuyerID:             d.BuyerID,
		RiderID:             d.RiderID,
		PickupAddress:       d.PickupAddress,
		PickupCoordinates:   coordinatesFromEntity(d.PickupCoordinates),
		DeliveryAddress:     d.DeliveryAddress,
		DeliveryCoordinates: coordinatesFromEntity(d.DeliveryCoordinates),
		DeliveryFee:         d.DeliveryFee,
		Distance:            d.Distance,
		DocumentDetails:     documentDetailsFromEntity(d.DocumentDetails),
		Status:              string(d.Status),
		Tracking:            tracking,
		ActualDeliveryTime:  d.ActualDeliveryTime,
		CreatedAt:           d.CreatedAt,
		UpdatedAt:           d.UpdatedAt,
	}

	if d.OrderDetails != nil {
		delivery.OrderDetails = &OrderDetails{
			OrderNumber: d.OrderDetails.OrderNumber,
			Items:       itemsFromEntity(d.OrderDetails.Items),
			TotalAmount: d.OrderDetails.TotalAmount,
		}
	}
	if d.ProofOfDelivery != nil {
		delivery.ProofOfDelivery = &ProofOfDelivery{
			Signature: d.ProofOfDelivery.Signature,
			Photo:     d.ProofOfDelivery.Photo,
			Notes:     d.ProofOfDelivery.Notes,
		}
	}
	return delivery
}

func RiderToEntity(r Rider) entities.Rider {
	rider := entities.Rider{
		ID:        r.ID,
		Name:      r.Name,
		Phone:     r.Phone,
		Available: r.Available,
		UpdatedAt: r.UpdatedAt,
	}
	if r.Location != nil {
		rider.Location = &entities.Location{
			Latitude:    r.Location.Latitude,
			Longitude:   r.Location.Longitude,
			LastUpdated: r.Location.LastUpdated,
		}
	}
	return rider
}

func RiderFromEntity(r entities.Rider) Rider {
	rider := Rider{
		ID:        r.ID,
		Name:      r.Name,
		Phone:     r.Phone,
		Available: r.Available,
		UpdatedAt: r.UpdatedAt,
	}
	if r.Location != nil {
		rider.Location = &Location{
			Latitude:    r.Location.Latitude,
			Longitude:   r.Location.Longitude,
			LastUpdated: r.Location.LastUpdated,
		}
	}
	return rider
}

func ProductToEntity(p Product) entities.Product {
	return entities.Product{
		ID:       p.ID,
		SellerID: p.SellerID,
		Name:     p.Name,
		Price:    p.Price,
		Image:    p.Image,
		Stock:    p.Stock,
	}
}

func ProductFromEntity(p entities.Product) Product {
	return Product{
		ID:       p.ID,
		SellerID: p.SellerID,
		Name:     p.Name,
		Price:    p.Price,
		Image:    p.Image,
		Stock:    p.Stock,
	}
}
