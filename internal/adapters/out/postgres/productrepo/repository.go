package productrepo

import (
	"context"
	"errors"
	"fmt"

	"veggo/internal/core/domain/model/kernel"
	"veggo/internal/core/domain/model/product"
	"veggo/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormProductRepository implements ProductRepository using GORM.
type GormProductRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormProductRepository creates a new GORM product repository.
func NewGormProductRepository(db *gorm.DB, tracker aggregateTracker) *GormProductRepository {
	return &GormProductRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new product to the database.
func (r *GormProductRepository) Add(ctx context.Context, aggregate *product.Product) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing product to the database. All columns are written,
// including ones that hold their zero value.
func (r *GormProductRepository) Update(ctx context.Context, aggregate *product.Product) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&ProductDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("productId", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a product by ID.
func (r *GormProductRepository) Get(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ProductDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("productId", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetMany retrieves the products with the given identifiers. Missing
// identifiers are silently absent from the result.
func (r *GormProductRepository) GetMany(ctx context.Context, ids []kernel.UUID) ([]*product.Product, error) {
	if len(ids) == 0 {
		return []*product.Product{}, nil
	}

	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		raw = append(raw, id.Bytes())
	}

	var dtos []ProductDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "id IN ?", raw).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetAll retrieves every product, optionally filtered by category.
func (r *GormProductRepository) GetAll(ctx context.Context, category string) ([]*product.Product, error) {
	query := r.db.WithContext(ctx).Order("name")
	if category != "" {
		query = query.Where("category = ?", category)
	}

	var dtos []ProductDTO
	if err := query.Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetCategories retrieves the distinct product categories in storage.
func (r *GormProductRepository) GetCategories(ctx context.Context) ([]string, error) {
	var categories []string
	err := r.db.WithContext(ctx).
		Model(&ProductDTO{}).
		Distinct("category").
		Order("category").
		Pluck("category", &categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

// Delete removes a product from storage.
func (r *GormProductRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&ProductDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("productId", id.String())
	}
	return nil
}

// DecrementStock atomically subtracts quantity from the product's stock in
// the given unit. The WHERE clause guards against going negative under
// concurrent checkouts; a decrement that matches no row means the stock ran
// out between pricing and persistence.
func (r *GormProductRepository) DecrementStock(
	ctx context.Context,
	id kernel.UUID,
	unit product.UnitKind,
	quantity float64,
) error {
	if err := id.Validate(); err != nil {
		return err
	}
	col, err := stockColumn(unit)
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&ProductDTO{}).
		Where(fmt.Sprintf("id = ? AND %s >= ?", col), id.Bytes(), quantity).
		UpdateColumn(col, gorm.Expr(col+" - ?", quantity))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewStockError(id.String(), errs.ErrInsufficientStock,
			"stock changed before the order could be saved")
	}
	return nil
}

// RestoreStock adds quantity back to the product's stock in the given unit.
func (r *GormProductRepository) RestoreStock(
	ctx context.Context,
	id kernel.UUID,
	unit product.UnitKind,
	quantity float64,
) error {
	if err := id.Validate(); err != nil {
		return err
	}
	col, err := stockColumn(unit)
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&ProductDTO{}).
		Where("id = ?", id.Bytes()).
		UpdateColumn(col, gorm.Expr(col+" + ?", quantity))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("productId", id.String())
	}
	return nil
}

func stockColumn(unit product.UnitKind) (string, error) {
	switch unit {
	case product.UnitKg:
		return "stock_kg", nil
	case product.UnitPiece:
		return "stock_pieces", nil
	default:
		return "", errs.NewStockError("", errs.ErrInvalidUnit, "unit must be 'Kg' or 'Piece'")
	}
}

func toDomainSlice(dtos []ProductDTO) ([]*product.Product, error) {
	products := make([]*product.Product, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, nil
}
