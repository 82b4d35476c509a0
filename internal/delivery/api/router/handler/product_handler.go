package handler

import (
	"net/http"

	"storefront/internal/delivery/api/resource"
	"storefront/internal/delivery/api/response"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/query"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProductHandlerParams holds dependencies for ProductHandler, injected by Fx.
type ProductHandlerParams struct {
	fx.In

	ProductUC usecase.ProductUsecase
	Parser    *query.Parser
	Resources *query.Resources
}

// ProductHandler serves the product catalog.
type ProductHandler struct {
	productUC usecase.ProductUsecase
	parser    *query.Parser
	schema    *query.Schema
}

// NewProductHandler is the constructor for ProductHandler
func NewProductHandler(params ProductHandlerParams) *ProductHandler {
	return &ProductHandler{
		productUC: params.ProductUC,
		parser:    params.Parser,
		schema:    params.Resources.Products,
	}
}

// CreateProductRequest represents the request body for creating a product
type CreateProductRequest struct {
	Label    string `json:"label" validate:"required,min=2,max=255"`
	Qty      *int   `json:"qty" validate:"required,min=0,max=2147483647"`
	Price    *int   `json:"price" validate:"required,min=0,max=2147483647"`
	Size     *int   `json:"size" validate:"required,min=0,max=2147483647"`
	Detail   string `json:"detail" validate:"required,min=2,max=65535"`
	Category string `json:"category" validate:"required,min=2,max=65535"`
	Image    string `json:"image" validate:"required,min=2,max=65535"`
}

// UpdateProductRequest represents the request body for updating a product
type UpdateProductRequest struct {
	Label    *string `json:"label" validate:"omitempty,min=2,max=255"`
	Qty      *int    `json:"qty" validate:"omitempty,min=0,max=2147483647"`
	Price    *int    `json:"price" validate:"omitempty,min=0,max=2147483647"`
	Size     *int    `json:"size" validate:"omitempty,min=0,max=2147483647"`
	Detail   *string `json:"detail" validate:"omitempty,min=2,max=65535"`
	Category *string `json:"category" validate:"omitempty,min=2,max=65535"`
	Image    *string `json:"image" validate:"omitempty,min=2,max=65535"`
}

// Index lists products.
func (h *ProductHandler) Index(c echo.Context) error {
	spec, err := h.parser.Parse(c.QueryParams(), h.schema)
	if err != nil {
		return errors.WithStack(err)
	}

	out, err := h.productUC.List(c.Request().Context(), spec)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Page(c, resource.Collection(out.Items, spec, resource.Product), out.Meta)
}

// Store creates a product.
func (h *ProductHandler) Store(c echo.Context) error {
	var req CreateProductRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	product, err := h.productUC.Store(c.Request().Context(), &usecase.CreateProductInput{
		Label:    req.Label,
		Qty:      *req.Qty,
		Price:    *req.Price,
		Size:     *req.Size,
		Detail:   req.Detail,
		Category: req.Category,
		Image:    req.Image,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Saved(c, http.StatusCreated, resource.Product(product, nil), "The new product has been saved.")
}

// Show returns one product.
func (h *ProductHandler) Show(c echo.Context) error {
	id, err := pathID(c, domainerrors.ErrProductNotFound)
	if err != nil {
		return err
	}

	spec, err := h.parser.ParseShow(c.QueryParams(), h.schema)
	if err != nil {
		return errors.WithStack(err)
	}

	product, err := h.productUC.Show(c.Request().Context(), id, spec)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, resource.Product(product, spec))
}

// Update changes the given fields of a product.
func (h *ProductHandler) Update(c echo.Context) error {
	id, err := pathID(c, domainerrors.ErrProductNotFound)
	if err != nil {
		return err
	}

	var req UpdateProductRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	product, err := h.productUC.Update(c.Request().Context(), id, &usecase.UpdateProductInput{
		Label:    req.Label,
		Qty:      req.Qty,
		Price:    req.Price,
		Size:     req.Size,
		Detail:   req.Detail,
		Category: req.Category,
		Image:    req.Image,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Saved(c, http.StatusOK, resource.Product(product, nil), "The product has been updated.")
}

// Destroy deletes a product together with its carts and ratings.
func (h *ProductHandler) Destroy(c echo.Context) error {
	id, err := pathID(c, domainerrors.ErrProductNotFound)
	if err != nil {
		return err
	}

	product, err := h.productUC.Destroy(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Saved(c, http.StatusOK, resource.Product(product, nil), "The product has been deleted.")
}
