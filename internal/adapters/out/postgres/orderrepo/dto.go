// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. Orders and their lines live in two tables; lines are
// written once at creation and never updated afterwards.
package orderrepo

import (
	"time"

	"veggo/internal/core/domain/model/kernel"
	"veggo/internal/core/domain/model/order"
	"veggo/internal/core/domain/model/product"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order
// aggregates. The order number carries a unique index; checkout relies on
// the resulting conflict to retry with a fresh number.
type OrderDTO struct {
	ID              uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Number          string         `gorm:"uniqueIndex;not null"`
	UserID          uuid.UUID      `gorm:"type:uuid;index;not null"`
	Items           []OrderItemDTO `gorm:"foreignKey:OrderID;references:ID"`
	Subtotal        float64
	DeliveryFee     float64
	DistanceKm      float64
	FinalPrice      float64
	Status          string `gorm:"index;not null"`
	DeliveryAddress string
	DestLat         float64
	DestLng         float64
	Phone           string
	Notes           string
	AgentID         *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
	CancelledAt     *time.Time
	CancelledBy     string
}

// TableName overrides GORM's default naming convention.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one priced order line. The surrogate key preserves
// the sequence the lines were placed in.
type OrderItemDTO struct {
	ID           uint      `gorm:"primaryKey;autoIncrement"`
	OrderID      uuid.UUID `gorm:"type:uuid;index;not null"`
	ProductID    uuid.UUID `gorm:"type:uuid;not null"`
	ProductName  string
	Quantity     float64
	Unit         string
	PricePerUnit float64
	Total        float64
}

// TableName overrides GORM's default naming convention.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

func fromDomain(o *order.Order) OrderDTO {
	var agentID *uuid.UUID
	if id := o.Agent(); id != nil {
		raw := id.Bytes()
		agentID = &raw
	}

	items := make([]OrderItemDTO, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, OrderItemDTO{
			OrderID:      o.ID().Bytes(),
			ProductID:    item.ProductID().Bytes(),
			ProductName:  item.ProductName(),
			Quantity:     item.Quantity(),
			Unit:         item.Unit().String(),
			PricePerUnit: item.PricePerUnit(),
			Total:        item.Total(),
		})
	}

	return OrderDTO{
		ID:              o.ID().Bytes(),
		Number:          o.Number(),
		UserID:          o.UserID().Bytes(),
		Items:           items,
		Subtotal:        o.Subtotal(),
		DeliveryFee:     o.DeliveryFee(),
		DistanceKm:      o.DistanceKm(),
		FinalPrice:      o.FinalPrice(),
		Status:          o.Status().String(),
		DeliveryAddress: o.DeliveryAddress(),
		DestLat:         o.Destination().Lat(),
		DestLng:         o.Destination().Lng(),
		Phone:           o.Phone(),
		Notes:           o.Notes(),
		AgentID:         agentID,
		CreatedAt:       o.CreatedAt(),
		UpdatedAt:       o.UpdatedAt(),
		CancelledAt:     o.CancelledAt(),
		CancelledBy:     o.CancelledBy(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	var agentID *kernel.UUID
	if dto.AgentID != nil {
		aID, agentErr := kernel.UUIDFromBytes((*dto.AgentID)[:])
		if agentErr != nil {
			return nil, agentErr
		}
		agentID = &aID
	}

	destination, err := kernel.NewGeoPoint(dto.DestLat, dto.DestLng)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		productID, itemErr := kernel.UUIDFromBytes(itemDTO.ProductID[:])
		if itemErr != nil {
			return nil, itemErr
		}
		item, itemErr := order.RestoreItem(
			productID,
			itemDTO.ProductName,
			itemDTO.Quantity,
			product.UnitKind(itemDTO.Unit),
			itemDTO.PricePerUnit,
			itemDTO.Total,
		)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id,
		dto.Number,
		userID,
		items,
		dto.Subtotal,
		dto.DeliveryFee,
		dto.DistanceKm,
		dto.FinalPrice,
		order.Status(dto.Status),
		dto.DeliveryAddress,
		destination,
		dto.Phone,
		dto.Notes,
		agentID,
		dto.CreatedAt,
		dto.UpdatedAt,
		dto.CancelledAt,
		dto.CancelledBy,
	)
}
