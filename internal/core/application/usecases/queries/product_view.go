package queries

import "time"

// ProductView is the read model for catalog listings.
type ProductView struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	ImageURL      string    `json:"image_url"`
	UnitType      string    `json:"unit_type"`
	PricePerKg    *float64  `json:"price_per_kg"`
	PricePerPiece *float64  `json:"price_per_piece"`
	StockKg       float64   `json:"stock_kg"`
	StockPieces   float64   `json:"stock_pieces"`
	Category      string    `json:"category"`
	IsAvailable   bool      `json:"is_available"`
	InStock       bool      `json:"in_stock"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type productRow struct {
	ID            string
	Name          string
	ImageURL      string
	UnitType      string
	PricePerKg    *float64
	PricePerPiece *float64
	StockKg       float64
	StockPieces   float64
	Category      string
	IsAvailable   bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

const productColumns = `id, name, image_url, unit_type, price_per_kg, price_per_piece,
		stock_kg, stock_pieces, category, is_available, created_at, updated_at`

func productViewFromRow(row productRow) ProductView {
	return ProductView{
		ID:            row.ID,
		Name:          row.Name,
		ImageURL:      row.ImageURL,
		UnitType:      row.UnitType,
		PricePerKg:    row.PricePerKg,
		PricePerPiece: row.PricePerPiece,
		StockKg:       row.StockKg,
		StockPieces:   row.StockPieces,
		Category:      row.Category,
		IsAvailable:   row.IsAvailable,
		InStock:       inStock(row.UnitType, row.StockKg, row.StockPieces),
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}
}

// inStock reports whether at least one sellable unit remains for the
// product's unit type.
func inStock(unitType string, stockKg, stockPieces float64) bool {
	switch unitType {
	case "Kg":
		return stockKg > 0
	case "Piece":
		return stockPieces > 0
	default:
		return stockKg > 0 || stockPieces > 0
	}
}
