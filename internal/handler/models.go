package handler

import (
	"github.com/SergeyBogomolovv/courier-hub/internal/entities"
	"github.com/SergeyBogomolovv/courier-hub/internal/repo"
	"github.com/SergeyBogomolovv/courier-hub/internal/service"

	"github.com/shopspring/decimal"
)

// Ответы отдаются в том же виде, в каком документы хранятся: repo.Order,
// repo.Delivery, repo.Rider.

// Coordinates точка на карте
type Coordinates struct {
	Latitude  float64 `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude float64 `json:"longitude" validate:"gte=-180,lte=180"`
}

// DocumentDetails описание отправляемого документа
type DocumentDetails struct {
	Description  string `json:"description" validate:"required"`
	Quantity     int    `json:"quantity" validate:"gte=1"`
	Fragile      bool   `json:"isFragile"`
	Instructions string `json:"specialInstructions,omitempty"`
}

// OrderItem позиция заказа
type OrderItem struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
}

// CreateOrderRequest новый заказ. Для товаров нужны items, для документов
// documentDetails, sellerId и totalAmount.
type CreateOrderRequest struct {
	DeliveryType     string `json:"deliveryType" validate:"required,oneof=product document"`
	SellerID         string `json:"sellerId,omitempty"`
	PreferredRiderID string `json:"preferredRiderId,omitempty"`

	Items           []OrderItem      `json:"items,omitempty" validate:"dive"`
	DocumentDetails *DocumentDetails `json:"documentDetails,omitempty"`

	TotalAmount decimal.Decimal `json:"totalAmount" swaggertype:"string"`
	DeliveryFee decimal.Decimal `json:"deliveryFee" swaggertype:"string"`
	Distance    float64         `json:"distance" validate:"gte=0"`

	PickupAddress       string       `json:"pickupAddress" validate:"required"`
	PickupCoordinates   *Coordinates `json:"pickupCoordinates,omitempty"`
	DeliveryAddress     string       `json:"deliveryAddress" validate:"required"`
	DeliveryCoordinates *Coordinates `json:"deliveryCoordinates,omitempty"`
}

// CreateDeliveryRequest отдельная доставка документа без заказа
type CreateDeliveryRequest struct {
	RecipientID      string `json:"recipientId,omitempty"`
	PreferredRiderID string `json:"preferredRiderId,omitempty"`

	DocumentDetails *DocumentDetails `json:"documentDetails" validate:"required"`
	DeliveryFee     decimal.Decimal  `json:"deliveryFee" swaggertype:"string"`
	Distance        float64          `json:"distance" validate:"gte=0"`

	PickupAddress       string       `json:"pickupAddress" validate:"required"`
	PickupCoordinates   *Coordinates `json:"pickupCoordinates,omitempty"`
	DeliveryAddress     string       `json:"deliveryAddress" validate:"required"`
	DeliveryCoordinates *Coordinates `json:"deliveryCoordinates,omitempty"`
}

type OrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed processing ready picked_up in_transit delivered cancelled"`
	Note   string `json:"note,omitempty" validate:"max=500"`
}

type CancelOrderRequest struct {
	Reason string `json:"reason" validate:"max=500"`
}

type ProofOfDelivery struct {
	Signature string `json:"signature,omitempty"`
	Photo     string `json:"photo,omitempty"`
	Notes     string `json:"notes,omitempty"`
}

type DeliveryStatusRequest struct {
	Status          string           `json:"status" validate:"required,oneof=assigned picked_up in_transit delivered failed"`
	Location        *Coordinates     `json:"location,omitempty"`
	Note            string           `json:"note,omitempty" validate:"max=500"`
	ProofOfDelivery *ProofOfDelivery `json:"proofOfDelivery,omitempty"`
}

type LocationRequest struct {
	Latitude  *float64 `json:"latitude" validate:"required,gte=-90,lte=90"`
	Longitude *float64 `json:"longitude" validate:"required,gte=-180,lte=180"`
}

type AvailabilityRequest struct {
	Available *bool `json:"available" validate:"required"`
}

// TrackResponse доставка вместе с курьером и заказом
type TrackResponse struct {
	Delivery repo.Delivery `json:"delivery"`
	Rider    *repo.Rider   `json:"rider,omitempty"`
	Order    *repo.Order   `json:"order,omitempty"`
}

func coordinatesToEntity(c *Coordinates) *entities.Coordinates {
	if c == nil {
		return nil
	}
	return &entities.Coordinates{Latitude: c.Latitude, Longitude: c.Longitude}
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

func (req CreateOrderRequest) toInput() service.OrderInput {
	items := make([]service.OrderItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, service.OrderItemInput{ProductID: item.ProductID, Quantity: item.Quantity})
	}
	return service.OrderInput{
		DeliveryType:        entities.DeliveryType(req.DeliveryType),
		SellerID:            req.SellerID,
		PreferredRiderID:    req.PreferredRiderID,
		Items:               items,
		DocumentDetails:     documentDetailsToEntity(req.DocumentDetails),
		TotalAmount:         req.TotalAmount,
		DeliveryFee:         req.DeliveryFee,
		Distance:            req.Distance,
		PickupAddress:       req.PickupAddress,
		PickupCoordinates:   coordinatesToEntity(req.PickupCoordinates),
		DeliveryAddress:     req.DeliveryAddress,
		DeliveryCoordinates: coordinatesToEntity(req.DeliveryCoordinates),
	}
}

func (req CreateDeliveryRequest) toInput() service.DeliveryInput {
	return service.DeliveryInput{
		RecipientID:         req.RecipientID,
		PreferredRiderID:    req.PreferredRiderID,
		DocumentDetails:     documentDetailsToEntity(req.DocumentDetails),
		DeliveryFee:         req.DeliveryFee,
		Distance:            req.Distance,
		PickupAddress:       req.PickupAddress,
		PickupCoordinates:   coordinatesToEntity(req.PickupCoordinates),
		DeliveryAddress:     req.DeliveryAddress,
		DeliveryCoordinates: coordinatesToEntity(req.DeliveryCoordinates),
	}
}

func (req DeliveryStatusRequest) toInput() service.DeliveryStatusInput {
	in := service.DeliveryStatusInput{
		Status:   entities.DeliveryStatus(req.Status),
		Location: coordinatesToEntity(req.Location),
		Note:     req.Note,
	}
	if req.ProofOfDelivery != nil {
		in.ProofOfDelivery = &entities.ProofOfDelivery{
			Signature: req.ProofOfDelivery.Signature,
			Photo:     req.ProofOfDelivery.Photo,
			Notes:     req.ProofOfDelivery.Notes,
		}
	}
	return in
}

func ordersToJSON(orders []entities.Order) []repo.Order {
	result := make([]repo.Order, 0, len(orders))
	for _, o := range orders {
		result = append(result, repo.OrderFromEntity(o))
	}
	return result
}

func deliveriesToJSON(deliveries []entities.Delivery) []repo.Delivery {
	result := make([]repo.Delivery, 0, len(deliveries))
	for _, d := range deliveries {
		result = append(result, repo.DeliveryFromEntity(d))
	}
	return result
}

func trackToJSON(v entities.TrackView) TrackResponse {
	res := TrackResponse{Delivery: repo.DeliveryFromEntity(v.Delivery)}
	if v.Rider != nil {
		rider := repo.RiderFromEntity(*v.Rider)
		res.Rider = &rider
	}
	if v.Order != nil {
		order := repo.OrderFromEntity(*v.Order)
		res.Order = &order
	}
	return res
}
