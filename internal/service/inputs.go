package service

import (
	"github.com/SergeyBogomolovv/courier-hub/internal/entities"

	"github.com/shopspring/decimal"
)

type OrderItemInput struct {
	ProductID string
	Quantity  int
}

type OrderInput struct {
	DeliveryType     entities.DeliveryType
	SellerID         string
	PreferredRiderID string

	Items           []OrderItemInput
	DocumentDetails *entities.DocumentDetails

	// TotalAmount is the flat amount of a document order. Product order totals
	// are computed from catalog prices.
	TotalAmount decimal.Decimal
	DeliveryFee decimal.Decimal
	Distance    float64

	PickupAddress       string
	PickupCoordinates   *entities.Coordinates
	DeliveryAddress     string
	DeliveryCoordinates *entities.Coordinates
}

// DeliveryInput describes a standalone document delivery.
type DeliveryInput struct {
	RecipientID      string
	PreferredRiderID string

	DocumentDetails *entities.DocumentDetails
	DeliveryFee     decimal.Decimal
	Distance        float64

	PickupAddress       string
	PickupCoordinates   *entities.Coordinates
	DeliveryAddress     string
	DeliveryCoordinates *entities.Coordinates
}

type DeliveryStatusInput struct {
	Status          entities.DeliveryStatus
	Location        *entities.Coordinates
	Note            string
	ProofOfDelivery *entities.ProofOfDelivery
}
