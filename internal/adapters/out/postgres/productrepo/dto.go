// Package productrepo provides data transfer objects and mapping functions
// for catalog persistence. It converts between product domain aggregates and
// their relational representation.
package productrepo

import (
	"time"

	"veggo/internal/core/domain/model/kernel"
	"veggo/internal/core/domain/model/product"

	"github.com/google/uuid"
)

// ProductDTO represents the database structure for persisting product
// aggregates. Stock for each sale unit lives in its own column so the
// conditional decrement can target exactly one of them.
type ProductDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name          string    `gorm:"not null"`
	ImageURL      string
	UnitType      string `gorm:"not null"`
	PricePerKg    *float64
	PricePerPiece *float64
	StockKg       float64
	StockPieces   int
	Category      string `gorm:"index;not null"`
	IsAvailable   bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName overrides GORM's default naming convention.
func (ProductDTO) TableName() string {
	return "products"
}

func fromDomain(p *product.Product) ProductDTO {
	return ProductDTO{
		ID:            p.ID().Bytes(),
		Name:          p.Name(),
		ImageURL:      p.ImageURL(),
		UnitType:      p.Kind().String(),
		PricePerKg:    p.PricePerKg(),
		PricePerPiece: p.PricePerPiece(),
		StockKg:       p.StockKg(),
		StockPieces:   p.StockPieces(),
		Category:      p.Category(),
		IsAvailable:   p.IsAvailable(),
		CreatedAt:     p.CreatedAt(),
		UpdatedAt:     p.UpdatedAt(),
	}
}

func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	kind, err := product.ParseUnitKind(dto.UnitType)
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(
		id,
		dto.Name,
		dto.ImageURL,
		kind,
		dto.PricePerKg,
		dto.PricePerPiece,
		dto.StockKg,
		dto.StockPieces,
		dto.Category,
		dto.IsAvailable,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
