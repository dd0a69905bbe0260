package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"veggo/internal/core/application/usecases/queries"
	"veggo/internal/core/domain/model/kernel"
)

// GetProducts handles GET /api/products. Supports ?category= and
// ?available=true filters.
func (s *Server) GetProducts(ctx echo.Context) error {
	onlyAvailable := ctx.QueryParam("available") == "true"

	query, err := queries.NewGetProductsQuery(ctx.QueryParam("category"), onlyAvailable)
	if err != nil {
		return s.writeError(ctx, err)
	}

	views, err := s.handlers.GetProducts.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, views)
}

// GetProduct handles GET /api/product/:id.
func (s *Server) GetProduct(ctx echo.Context) error {
	productID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid product id")
	}

	query, err := queries.NewGetProductQuery(productID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	view, err := s.handlers.GetProduct.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, view)
}

// GetCategories handles GET /api/categories.
func (s *Server) GetCategories(ctx echo.Context) error {
	query, err := queries.NewGetCategoriesQuery()
	if err != nil {
		return s.writeError(ctx, err)
	}

	categories, err := s.handlers.GetCategories.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, categories)
}
